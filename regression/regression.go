// This file is part of SceneVM.
//
// SceneVM is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// SceneVM is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with SceneVM.  If not, see <https://www.gnu.org/licenses/>.

package regression

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/scenevm/scenevm/curated"
	"github.com/scenevm/scenevm/database"
	"github.com/scenevm/scenevm/debugger/terminal/colorterm/easyterm/ansi"
)

// DefaultDatabase is the name of the regression database in the resource
// directory.
const DefaultDatabase = "regressionDB"

// Regressor represents the generic entry in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression test for the regression type. the newRegression
	// flag indicates that the entry is being added to the database and that
	// the results of the run should be recorded rather than compared
	//
	// message is the string that is to be printed during the regression
	regress(newRegression bool, output io.Writer, message string) (bool, error)
}

// when starting a database session we need to register what entries we will
// find in the database
func initDBSession(db *database.Session) error {
	return db.RegisterEntryType(sceneEntryType, deserialiseSceneEntry)
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer, dbPath string) error {
	db, err := database.StartSession(dbPath, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressDelete removes an entry from the regression database. The entry is
// only removed if the confirmation reader supplies a line beginning with 'y'.
func RegressDelete(output io.Writer, confirmation io.Reader, dbPath string, key string) error {
	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf(InvalidKey, key)
	}

	db, err := database.StartSession(dbPath, database.ActivityModifying, initDBSession)
	if err != nil {
		return err
	}

	reg, err := db.Get(v)
	if err != nil {
		db.EndSession(false)
		return err
	}

	fmt.Fprintf(output, "%s\ndelete? (y/n): ", reg)

	confirm, err := bufio.NewReader(confirmation).ReadString('\n')
	if err != nil && err != io.EOF {
		db.EndSession(false)
		return curated.Errorf(RegressionError, err)
	}

	confirm = strings.TrimSpace(confirm)
	if confirm == "" || (confirm[0] != 'y' && confirm[0] != 'Y') {
		fmt.Fprintln(output)
		return db.EndSession(false)
	}

	if err := db.Delete(v); err != nil {
		db.EndSession(false)
		return err
	}
	fmt.Fprintf(output, "deleted test #%s from regression database\n", key)

	return db.EndSession(true)
}

// RegressAdd adds a new regression entry to the database. The regression is
// run once and the result recorded in the entry.
func RegressAdd(output io.Writer, dbPath string, reg Regressor) error {
	db, err := database.StartSession(dbPath, database.ActivityCreating, initDBSession)
	if err != nil {
		return err
	}

	msg := fmt.Sprintf("adding: %s", reg)
	if _, err := reg.regress(true, output, msg); err != nil {
		db.EndSession(false)
		return err
	}

	key, err := db.Add(reg)
	if err != nil {
		db.EndSession(false)
		return err
	}

	io.WriteString(output, ansi.ClearLine)
	fmt.Fprintf(output, "\radded: %03d %s\n", key, reg)

	return db.EndSession(true)
}

// RegressRun runs the tests in the regression database. The filterKeys list
// specifies which entries to test. An empty keys list means that every entry
// should be tested.
//
// An error is returned if any test did not succeed.
func RegressRun(output io.Writer, dbPath string, verbose bool, failOnError bool, filterKeys []string) error {
	db, err := database.StartSession(dbPath, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	keys := make([]int, 0, len(filterKeys))
	for _, k := range filterKeys {
		v, err := strconv.Atoi(k)
		if err != nil {
			return curated.Errorf(InvalidKey, k)
		}
		keys = append(keys, v)
	}

	var numSucceed int
	var numFail int
	var numError int

	onSelect := func(ent database.Entry) error {
		reg, ok := ent.(Regressor)
		if !ok {
			return curated.Errorf(RegressionError, fmt.Sprintf("entry is not a regressor (%s)", ent.EntryType()))
		}

		msg := fmt.Sprintf("running: %s", reg)
		ok, err := reg.regress(false, output, msg)

		// once regress() has completed we clear the line ready for the
		// completion message
		io.WriteString(output, ansi.ClearLine)

		switch {
		case err != nil:
			numError++
			fmt.Fprintf(output, "\r ERROR: %s\n", reg)
			if verbose {
				fmt.Fprintf(output, "%s\n", err)
			}
			if failOnError {
				return err
			}
		case !ok:
			numFail++
			fmt.Fprintf(output, "\rfailure: %s\n", reg)
		default:
			numSucceed++
			fmt.Fprintf(output, "\rsucceed: %s\n", reg)
		}

		return nil
	}

	if len(keys) == 0 {
		_, err = db.SelectAll(onSelect)
	} else {
		_, err = db.SelectKeys(onSelect, keys...)
	}

	fmt.Fprintf(output, "regression tests: %d succeed, %d fail", numSucceed, numFail)
	if numError > 0 {
		io.WriteString(output, " [with errors]")
	}
	io.WriteString(output, "\n")

	if err != nil {
		return err
	}

	if numFail+numError > 0 {
		return curated.Errorf(RegressionFail, numFail+numError, numSucceed+numFail+numError)
	}

	return nil
}
