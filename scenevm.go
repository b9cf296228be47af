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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/scenevm/scenevm/debugger"
	"github.com/scenevm/scenevm/debugger/terminal"
	"github.com/scenevm/scenevm/debugger/terminal/colorterm"
	"github.com/scenevm/scenevm/debugger/terminal/plainterm"
	"github.com/scenevm/scenevm/hiscore"
	"github.com/scenevm/scenevm/logger"
	"github.com/scenevm/scenevm/modalflag"
	"github.com/scenevm/scenevm/paths"
	"github.com/scenevm/scenevm/performance"
	"github.com/scenevm/scenevm/performance/limiter"
	"github.com/scenevm/scenevm/prefs"
	"github.com/scenevm/scenevm/regression"
	"github.com/scenevm/scenevm/rewind"
	"github.com/scenevm/scenevm/scene"
	"github.com/scenevm/scenevm/simulation"
	"github.com/scenevm/scenevm/snapshot"
	"github.com/scenevm/scenevm/sound"
	"github.com/scenevm/scenevm/statsview"
	"github.com/scenevm/scenevm/version"
	"github.com/scenevm/scenevm/wavwriter"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "STEP", "PERFORMANCE", "REGRESS", "DUMP", "SCENES", "HISCORE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "STEP":
		err = step(md)
	case "PERFORMANCE":
		err = perform(md)
	case "REGRESS":
		err = regress(md)
	case "DUMP":
		err = dump(md)
	case "SCENES":
		err = scenes(md)
	case "HISCORE":
		err = hiscores(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(20)
	}
}

// flags common to the modes that load a scene
type sceneFlags struct {
	original *bool
	prefs    *string
	log      *bool
}

func addSceneFlags(md *modalflag.Modes) sceneFlags {
	return sceneFlags{
		original: md.AddBool("original", false, "play the scene as it was originally released"),
		prefs:    md.AddString("prefs", "", "preferences for this run: \"key::value; key::value\""),
		log:      md.AddBool("log", false, "echo log to stdout"),
	}
}

// create the simulation and load the scene named by the first remaining
// argument. the argument is the path to a scene file or the name of a
// built-in scene
func newSimulation(md *modalflag.Modes, f sceneFlags) (*simulation.State, error) {
	if *f.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("scene required for %s mode", md)
	case 1:
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	if *f.prefs != "" {
		prefs.PushCommandLineStack(*f.prefs)
	}

	prf, err := simulation.NewPreferences()
	if err != nil {
		logger.Logf(logger.Allow, "scenevm", "using default preferences: %v", err)
		prf = simulation.DefaultPreferences()
	}

	original := *f.original || prf.StrictOriginalBehavior.Get().(bool)

	sc, err := scene.Open(md.GetArg(0), original)
	if err != nil {
		return nil, err
	}

	st := simulation.NewState(prf)
	if err := st.LoadScene(sc); err != nil {
		return nil, err
	}

	return st, nil
}

// record the result in the hiscore ledger
func recordResult(r simulation.Result) error {
	prf, err := hiscore.NewPreferences()
	if err != nil {
		return err
	}
	pth, err := prf.Path()
	if err != nil {
		return err
	}

	l, err := hiscore.Open(pth)
	if err != nil {
		return err
	}
	defer l.Close()

	e, err := l.Record(r)
	if err != nil {
		return err
	}
	fmt.Printf("! recorded %s\n", e)

	if best, err := l.Best(r.Scene, r.Original); err == nil && best.ID == e.ID {
		fmt.Println("! new best result")
	}

	return nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	f := addSceneFlags(md)
	frames := md.AddInt("frames", 3000, "number of frames to run")
	clicks := md.AddString("clicks", "", "items to click on: \"frame:item, frame:item\"")
	exit := md.AddInt("exit", -1, "exit to leave the scene by after the last frame")
	sounds := md.AddString("sounds", "", "directory of sound files")
	wav := md.AddString("wav", "", "record audio to wav file (requires -sounds)")
	fpsCap := md.AddBool("fpscap", false, "run the scene in real time")
	restore := md.AddString("restore", "", "snapshot file to start from")
	save := md.AddString("save", "", "save a snapshot after the last frame")
	record := md.AddBool("hiscore", false, "record the result in the hiscore ledger")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	cl, err := simulation.ParseClicks(*clicks)
	if err != nil {
		return err
	}

	st, err := newSimulation(md, f)
	if err != nil {
		return err
	}

	frameDuration := st.Preferences().FrameDuration.Get().(int)

	// add wavwriter mixer if wav argument has been specified
	var aw *wavwriter.WavWriter
	var bank *sound.Bank
	if *sounds != "" {
		var mix sound.Mixer = sound.NullMixer{}
		if *wav != "" {
			aw, err = wavwriter.New(*wav)
			if err != nil {
				return err
			}
			mix = aw
		}
		bank = sound.NewBank(st.Mem(), *sounds, mix)
		bank.Permission = st
		st.AttachAudio(bank)
	} else if *wav != "" {
		return fmt.Errorf("-wav requires -sounds")
	}

	if *restore != "" {
		s, err := snapshot.Load(*restore)
		if err != nil {
			return err
		}
		if err := st.Restore(s); err != nil {
			return err
		}
	}

	var lim *limiter.Limiter
	if *fpsCap {
		lim = limiter.NewLimiter(time.Duration(frameDuration) * time.Millisecond)
		defer lim.Close()
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	end := st.Frame() + *frames
	for st.Frame() < end {
		select {
		case <-intChan:
			fmt.Println("\r! interrupted")
			end = st.Frame()
			continue
		default:
		}

		if lim != nil {
			lim.Wait()
		}
		cl, err = st.Run(1, cl)
		if err != nil {
			return err
		}
		if aw != nil {
			aw.Advance(frameDuration)
		}
	}

	if *exit >= 0 {
		r, err := st.Exit(*exit)
		if err != nil {
			return err
		}
		fmt.Printf("! %s\n", r)
		if *record {
			if err := recordResult(r); err != nil {
				return err
			}
		}
	} else {
		fmt.Printf("! %d frames\n", st.Frame())
	}

	if *save != "" {
		if err := snapshot.Save(*save, st.Snapshot()); err != nil {
			return err
		}
	}

	if bank != nil {
		fmt.Printf("! %d sound files decoded\n", bank.Decodes())
	}

	if aw != nil {
		return aw.EndMixing()
	}

	return nil
}

func step(md *modalflag.Modes) error {
	md.NewMode()

	f := addSceneFlags(md)
	termType := md.AddString("term", "COLOR", "terminal type to use in step mode: COLOR, PLAIN")
	record := md.AddBool("hiscore", false, "record the result in the hiscore ledger")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	st, err := newSimulation(md, f)
	if err != nil {
		return err
	}

	var term terminal.Terminal
	switch strings.ToUpper(*termType) {
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		term = plainterm.NewPlainTerminal(os.Stdin, os.Stdout, true)
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	}

	rprf, err := rewind.NewPreferences()
	if err != nil {
		logger.Logf(logger.Allow, "scenevm", "using default rewind preferences: %v", err)
		rprf = nil
	}

	dbg := debugger.NewDebugger(st, term, rprf)
	if *record {
		dbg.OnExit = recordResult
	}

	return dbg.Start()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	f := addSceneFlags(md)
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "NONE", "run performance check with profiling: command separated CPU, MEM, TRACE or ALL")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	st, err := newSimulation(md, f)
	if err != nil {
		return err
	}
	st.Silence(true)

	frameDuration := time.Duration(st.Preferences().FrameDuration.Get().(int)) * time.Millisecond
	return performance.Check(os.Stdout, prof, st, frameDuration, *duration)
}

// path to the regression database. the default database is in the resource
// directory
func regressionDB(pth string) (string, error) {
	if pth != "" {
		return pth, nil
	}
	return paths.ResourcePath("", regression.DefaultDatabase)
}

func regress(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()

		db := md.AddString("db", "", "path to regression database")
		verbose := md.AddBool("verbose", false, "output more detail (eg. error messages)")
		failOnError := md.AddBool("fail", false, "stop at the first test that produces an error")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		pth, err := regressionDB(*db)
		if err != nil {
			return err
		}

		return regression.RegressRun(md.Output, pth, *verbose, *failOnError, md.RemainingArgs())

	case "LIST":
		md.NewMode()

		db := md.AddString("db", "", "path to regression database")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		if len(md.RemainingArgs()) > 0 {
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}

		pth, err := regressionDB(*db)
		if err != nil {
			return err
		}

		return regression.RegressList(md.Output, pth)

	case "DELETE":
		md.NewMode()

		db := md.AddString("db", "", "path to regression database")
		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("database key required for %s mode", md)
		case 1:
		default:
			return fmt.Errorf("only one entry can be deleted at at time")
		}

		pth, err := regressionDB(*db)
		if err != nil {
			return err
		}

		// use stdin for confirmation unless "yes" flag has been sent
		var confirmation io.Reader = os.Stdin
		if *answerYes {
			confirmation = strings.NewReader("y\n")
		}

		return regression.RegressDelete(md.Output, confirmation, pth, md.GetArg(0))

	case "ADD":
		return regressAdd(md)
	}

	return nil
}

func regressAdd(md *modalflag.Modes) error {
	md.NewMode()

	db := md.AddString("db", "", "path to regression database")
	original := md.AddBool("original", false, "run the scene as it was originally released")
	frames := md.AddInt("frames", 300, "number of frames to run")
	clicks := md.AddString("clicks", "", "clicks to make during the run: \"frame:item, frame:item\"")
	exit := md.AddInt("exit", regression.NoExit, "leave the scene through the exit after the last frame")
	notes := md.AddString("notes", "", "additional annotation for the database")

	md.AdditionalHelp(
		`The regression test to be added is the name of a builtin scene or the path
to a scene file. The run always uses the default preferences.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("scene required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("regression tests can only be added one at a time")
	}

	cl, err := simulation.ParseClicks(*clicks)
	if err != nil {
		return err
	}

	pth, err := regressionDB(*db)
	if err != nil {
		return err
	}

	reg := regression.NewSceneRegression(md.GetArg(0), *original, *frames, cl, *exit)
	reg.Notes = *notes

	if err := regression.RegressAdd(md.Output, pth, reg); err != nil {
		// using carriage return (without newline) at beginning of error
		// message because we want to overwrite the last output from
		// RegressAdd()
		return fmt.Errorf("\rerror adding regression test: %v", err)
	}

	return nil
}

func dump(md *modalflag.Modes) error {
	md.NewMode()

	f := addSceneFlags(md)
	frames := md.AddInt("frames", 0, "number of frames to run before the dump")
	out := md.AddString("out", "", "file to write the graphviz output to (default stdout)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	st, err := newSimulation(md, f)
	if err != nil {
		return err
	}

	for range *frames {
		if err := st.Step(); err != nil {
			return err
		}
	}

	if *out == "" {
		st.Mem().Visualise(os.Stdout)
		return nil
	}

	fo, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer fo.Close()
	st.Mem().Visualise(fo)

	return nil
}

func scenes(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	for _, n := range scene.Builtins() {
		sc, err := scene.Builtin(n, false)
		if err != nil {
			return err
		}
		fmt.Println(sc)
	}

	return nil
}

func hiscores(md *modalflag.Modes) error {
	md.NewMode()

	original := md.AddBool("original", false, "show the best result for the original release of the scene")
	num := md.AddInt("n", 10, "number of recent results to show")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := hiscore.NewPreferences()
	if err != nil {
		return err
	}
	pth, err := prf.Path()
	if err != nil {
		return err
	}

	l, err := hiscore.Open(pth)
	if err != nil {
		return err
	}
	defer l.Close()

	switch len(md.RemainingArgs()) {
	case 0:
		entries, err := l.Recent(*num, false)
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Println(e)
		}
	case 1:
		e, err := l.Best(strings.ToUpper(md.GetArg(0)), *original)
		if err != nil {
			return err
		}
		fmt.Println(e)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control system (if available)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ver, rev, _ := version.Version()
	fmt.Printf("%s %s\n", version.ApplicationName, ver)
	if *revision {
		fmt.Println(rev)
	}

	return nil
}
