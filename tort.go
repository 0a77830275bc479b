// This file is part of Tort.
//
// Tort is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tort is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tort.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/tort-lang/tort/curated"
	"github.com/tort-lang/tort/logger"
	"github.com/tort-lang/tort/modalflag"
	"github.com/tort-lang/tort/performance"
	"github.com/tort-lang/tort/quiz"
	"github.com/tort-lang/tort/quiz/terminal"
	"github.com/tort-lang/tort/quiz/terminal/colorterm"
	"github.com/tort-lang/tort/quiz/terminal/plainterm"
	"github.com/tort-lang/tort/script"
	"github.com/tort-lang/tort/statsview"
	"github.com/tort-lang/tort/version"

	"golang.org/x/term"
)

const noScriptFiles = "no script files specified"

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "CHECK", "VERSION")
	md.AdditionalHelp("The RUN mode is assumed if no mode is explicitly given.")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Fprintf(os.Stderr, "* %s\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "CHECK":
		err = check(md)
	case "VERSION":
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, version.Version, version.Revision)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "* %s\n", err)
		os.Exit(10)
	}
}

// loadScripts loads and parses every named file, concatenating the parsed
// lines into a single script.
func loadScripts(files []string) ([]script.Line, []error) {
	lines := make([]script.Line, 0)
	errs := make([]error, 0)

	for _, fn := range files {
		src, err := script.Load(fn)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		ln, lnErrs := src.Parse()
		lines = append(lines, ln...)
		errs = append(errs, lnErrs...)
	}

	return lines, errs
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	random := md.AddBool("random", false, "ask the questions in a random order")
	limit := md.AddInt("n", 0, "end the session after this many questions (0 means no limit)")
	plain := md.AddBool("plain", false, "use the plain terminal even when attached to a real one")
	profile := md.AddBool("profile", false, "run with cpu and memory profiling")
	echoLog := md.AddBool("log", false, "echo log entries to stderr")
	stats := md.AddBool("stats", false, fmt.Sprintf("run the stats server (available: %t)", statsview.Available()))

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	files := md.RemainingArgs()
	if len(files) == 0 {
		return curated.Errorf(noScriptFiles)
	}

	if *echoLog {
		logger.SetEcho(os.Stderr)
	}

	if *stats {
		statsview.Launch(os.Stderr)
	}

	lines, errs := loadScripts(files)
	if len(errs) > 0 {
		return errs[0]
	}

	var trm terminal.Terminal
	if *plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		trm = &plainterm.PlainTerminal{}
	} else {
		trm = &colorterm.ColorTerminal{}
	}

	if err := trm.Initialise(); err != nil {
		return err
	}
	defer trm.CleanUp()

	// a ctrl-c caught by the operating system (rather than by the raw mode
	// terminal) ends the session in the same way
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	events := &terminal.ReadEvents{
		Signal: intChan,
		SignalHandler: func(_ os.Signal) error {
			return curated.Errorf(terminal.UserInterrupt)
		},
	}

	session := quiz.NewSession(trm, events, lines, quiz.Options{
		Shuffle: *random,
		Limit:   *limit,
	})

	if *profile {
		if err := performance.ProfileCPU("tort_cpu.profile", session.Run); err != nil {
			return err
		}
		return performance.ProfileMem("tort_mem.profile")
	}

	return session.Run()
}

func check(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	files := md.RemainingArgs()
	if len(files) == 0 {
		return curated.Errorf(noScriptFiles)
	}

	_, errs := loadScripts(files)
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "* %s\n", e)
	}

	if len(errs) > 0 {
		return curated.Errorf("check: %d defective lines", len(errs))
	}

	fmt.Fprintln(md.Output, "no defects found")

	return nil
}
