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

// Package easyterm is a wrapper for "github.com/pkg/term". It puts the
// controlling terminal into cbreak mode and wraps the term methods in
// functions with friendlier names.
package easyterm

import (
	"fmt"
	"io"

	"github.com/pkg/term"
)

// TTY is the device opened by Initialise().
const TTY = "/dev/tty"

// EasyTerm is the main container for posix terminals. Usually embedded in
// other struct types.
type EasyTerm struct {
	tty    *term.Term
	output io.Writer

	// single byte buffer for ReadKey()
	key []byte
}

// Initialise opens the controlling terminal. Output is sent to the writer.
func (et *EasyTerm) Initialise(output io.Writer) error {
	if output == nil {
		return fmt.Errorf("easyterm: requires an output writer")
	}

	tty, err := term.Open(TTY)
	if err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}

	et.tty = tty
	et.output = output
	et.key = make([]byte, 1)

	return nil
}

// CleanUp restores the terminal to the mode it was in when Initialise() was
// called.
func (et *EasyTerm) CleanUp() {
	if et.tty == nil {
		return
	}
	_ = et.tty.Restore()
	_ = et.tty.Close()
	et.tty = nil
}

// CBreakMode puts the terminal into cbreak mode. Input is available a
// character at a time and is not echoed.
func (et *EasyTerm) CBreakMode() error {
	return et.tty.SetCbreak()
}

// CanonicalMode puts the terminal into the mode it was in when Initialise()
// was called.
func (et *EasyTerm) CanonicalMode() error {
	return et.tty.Restore()
}

// Flush makes sure the terminal's input/output buffers are empty.
func (et *EasyTerm) Flush() error {
	return et.tty.Flush()
}

// TermPrint writes the string to the output.
func (et *EasyTerm) TermPrint(s string) {
	io.WriteString(et.output, s)
}

// ReadKey returns the next byte from the terminal.
func (et *EasyTerm) ReadKey() (byte, error) {
	if _, err := et.tty.Read(et.key); err != nil {
		return 0, err
	}
	return et.key[0], nil
}
