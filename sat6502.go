// This file is part of sat6502.
//
// sat6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sat6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sat6502.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"golang.org/x/term"

	"github.com/jetsetilly/sat6502/cartridgeloader"
	"github.com/jetsetilly/sat6502/curated"
	"github.com/jetsetilly/sat6502/hardware/memory/cartridge"
	"github.com/jetsetilly/sat6502/logger"
	"github.com/jetsetilly/sat6502/modalflag"
	"github.com/jetsetilly/sat6502/smt"
	"github.com/jetsetilly/sat6502/solver"
	"github.com/jetsetilly/sat6502/statsview"
	"github.com/jetsetilly/sat6502/verification"
	"github.com/jetsetilly/sat6502/version"
)

// exit values
const (
	exitArguments = 10
	exitRun       = 20
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Stdout, os.Args[1:])
	stop()
	os.Exit(exitVal)
}

// launch parses the arguments and runs the selected mode. returns the exit
// value for the program.
func launch(ctx context.Context, output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("VERIFY", "EMIT", "GRAPH", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArguments
	}

	switch md.Mode() {
	case "VERIFY":
		err = verify(ctx, output, md)
	case "EMIT":
		err = emit(output, md)
	case "GRAPH":
		err = graph(output, md)
	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
		if _, ok := err.(argumentError); ok {
			return exitArguments
		}
		return exitRun
	}

	return 0
}

// argumentError is returned by the modes for problems with the command line
type argumentError string

func (e argumentError) Error() string {
	return string(e)
}

// compilation flags shared by every mode
type compileFlags struct {
	extensionality *bool
	rom            *string
	log            *bool
}

func addCompileFlags(md *modalflag.Modes) compileFlags {
	return compileFlags{
		extensionality: md.AddBool("extensionality", false, "compare RAM contents cell by cell"),
		rom:            md.AddString("rom", "", "iNES file to use as the cartridge"),
		log:            md.AddBool("log", false, "echo log to stdout"),
	}
}

func (f compileFlags) options(output io.Writer) (verification.Options, error) {
	opts := verification.Options{Extensionality: *f.extensionality}

	if *f.log {
		logger.SetEcho(output)
		opts.Log = logger.Allow
	} else {
		logger.SetEcho(nil)
	}

	if *f.rom != "" {
		rom, err := loadROM(*f.rom)
		if err != nil {
			return opts, err
		}
		opts.ROM = &rom
	}

	return opts, nil
}

func loadROM(filename string) (cartridge.ROM, error) {
	cl := cartridgeloader.NewLoader(filename)
	if err := cl.Load(); err != nil {
		return cartridge.ROM{}, err
	}
	return cl.ROM()
}

// the scenarios named by the arguments. the built-in scenarios are used if
// there are no arguments
func scenarios(files []string) ([]verification.Scenario, error) {
	if len(files) == 0 {
		return verification.Builtin, nil
	}

	var all []verification.Scenario
	for _, f := range files {
		s, err := verification.LoadScenarioFile(f)
		if err != nil {
			return nil, err
		}
		all = append(all, s...)
	}
	return all, nil
}

// select one scenario by name. an empty name selects the first scenario
func selectScenario(files []string, name string) (verification.Scenario, error) {
	all, err := scenarios(files)
	if err != nil {
		return verification.Scenario{}, err
	}
	if len(all) == 0 {
		return verification.Scenario{}, argumentError("no scenarios")
	}
	if name == "" {
		return all[0], nil
	}
	for _, s := range all {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return verification.Scenario{}, argumentError(fmt.Sprintf("no scenario named %q", name))
}

func verify(ctx context.Context, output io.Writer, md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Checks every scenario in the YAML files. The built-in scenarios are\nchecked if no file is given.")

	backendName := md.AddChoice("solver", "z3", solver.Backends, "solver backend")
	timeout := md.AddDuration("timeout", 0, "time allowed for each scenario")
	parallel := md.AddInt("parallel", 1, "number of scenarios checked at the same time")
	stats := md.AddBool("statsview", false, "run the runtime statistics viewer")
	cf := addCompileFlags(md)

	p, err := md.Parse()
	if err != nil {
		return argumentError(err.Error())
	}
	if p != modalflag.ParseContinue {
		return nil
	}

	opts, err := cf.options(output)
	if err != nil {
		return err
	}

	all, err := scenarios(md.RemainingArgs())
	if err != nil {
		return err
	}

	backend, err := solver.NewBackend(*backendName)
	if err != nil {
		return argumentError(err.Error())
	}

	// a missing solver fails every scenario in the same way
	if e, ok := backend.(solver.Executable); ok && !e.Available() {
		return curated.Errorf(solver.NotFound, e.Command)
	}
	cache := solver.NewCache(backend)

	if *stats {
		v := statsview.Launch(output, "")
		defer v.Stop()
	}

	results := verification.Run(ctx, cache, all, verification.RunOptions{
		Options:  opts,
		Parallel: *parallel,
		Timeout:  *timeout,
	})

	colour := isTerminal(output)
	for _, r := range results {
		fmt.Fprintln(output, report(r, colour))
	}
	fmt.Fprintln(output, results)
	logger.Log(logger.Allow, "solver", cache)

	if n := results.Failed(); n > 0 {
		return fmt.Errorf("%d of %d scenarios failed", n, len(results))
	}
	return nil
}

const (
	ansiGreen = "\033[32m"
	ansiRed   = "\033[31m"
	ansiReset = "\033[0m"
)

func isTerminal(output io.Writer) bool {
	f, ok := output.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func report(r verification.Result, colour bool) string {
	if !colour {
		return r.String()
	}
	if r.Passed() {
		return ansiGreen + r.String() + ansiReset
	}
	return ansiRed + r.String() + ansiReset
}

func emit(output io.Writer, md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Writes the SMT-LIB2 of one scenario. The goal is negated so an unsat\nverdict means the expectations hold.")

	name := md.AddString("name", "", "name of the scenario (default is the first)")
	holds := md.AddBool("holds", false, "assert the goal instead of its negation")
	cf := addCompileFlags(md)

	p, err := md.Parse()
	if err != nil {
		return argumentError(err.Error())
	}
	if p != modalflag.ParseContinue {
		return nil
	}

	opts, err := cf.options(output)
	if err != nil {
		return err
	}

	s, err := selectScenario(md.RemainingArgs(), *name)
	if err != nil {
		return err
	}

	sys, goal, err := s.Compile(opts)
	if err != nil {
		return err
	}

	q := verification.Query(sys.Formula(), goal, *holds)
	q = append(q, smt.CheckSat{}, smt.Exit{})
	return q.Write(output)
}

func graph(output io.Writer, md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Writes a graphviz rendering of the goal of one scenario. The whole\nformula is rendered with -formula.")

	name := md.AddString("name", "", "name of the scenario (default is the first)")
	formula := md.AddBool("formula", false, "render the whole formula")
	cf := addCompileFlags(md)

	p, err := md.Parse()
	if err != nil {
		return argumentError(err.Error())
	}
	if p != modalflag.ParseContinue {
		return nil
	}

	opts, err := cf.options(output)
	if err != nil {
		return err
	}

	s, err := selectScenario(md.RemainingArgs(), *name)
	if err != nil {
		return err
	}

	sys, goal, err := s.Compile(opts)
	if err != nil {
		return err
	}

	if *formula {
		f := sys.Formula()
		memviz.Map(output, &f)
	} else {
		memviz.Map(output, &goal)
	}

	return nil
}
