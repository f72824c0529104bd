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

package statevar

import (
	"fmt"
	"sort"

	"github.com/jetsetilly/sat6502/curated"
	"github.com/jetsetilly/sat6502/logger"
	"github.com/jetsetilly/sat6502/smt"
)

// UndefinedBeforeUse is the pattern of the error returned by Apply() when a
// unit reads a variable that has never been written.
const UndefinedBeforeUse = "statevar: %s undefined before use"

// VersionedName returns the name of the symbol for the version of the
// variable.
func VersionedName(name string, version int) string {
	return fmt.Sprintf("%s_%d", name, version)
}

// Registry maps the name of every state variable to its most recently
// allocated version. Not safe for concurrent use.
type Registry struct {
	versions map[string]int

	// number of calls to Apply() that have succeeded
	applied int

	// logging permission. defaults to logger.Deny because of the volume of log
	// entries a long timeline produces
	Perm logger.Permission
}

// NewRegistry is the preferred method of initialisation for the Registry type.
func NewRegistry() *Registry {
	return &Registry{
		versions: make(map[string]int),
		Perm:     logger.Deny,
	}
}

// Apply resolves the reads and writes of the unit and returns the fragments
// generated by it.
//
// The versions of written variables are only committed if every read
// variable has been defined and the unit generates without error.
func (r *Registry) Apply(unit CodeGenerator) ([]smt.Command, error) {
	in := make(map[string]smt.Symbol, len(unit.Reads()))
	for _, name := range unit.Reads() {
		v, ok := r.versions[name]
		if !ok {
			return nil, curated.Errorf(UndefinedBeforeUse, name)
		}
		sym, err := smt.ParseSymbol(VersionedName(name, v))
		if err != nil {
			return nil, curated.Errorf("statevar: %v", err)
		}
		in[name] = sym
	}

	out := make(map[string]smt.Symbol, len(unit.Writes()))
	for _, name := range unit.Writes() {
		if _, ok := out[name]; ok {
			continue
		}
		sym, err := smt.ParseSymbol(VersionedName(name, r.next(name)))
		if err != nil {
			return nil, curated.Errorf("statevar: %v", err)
		}
		out[name] = sym
	}

	frags, err := generate(unit, in, out)
	if err != nil {
		return nil, curated.Errorf("statevar: %v", err)
	}

	for name, sym := range out {
		r.versions[name] = r.next(name)
		logger.Logf(r.Perm, "statevar", "%s", sym.Name())
	}
	r.applied++

	return frags, nil
}

// generate calls the Generate() function of the unit and returns any
// construction error as an error.
func generate(unit CodeGenerator, in map[string]smt.Symbol, out map[string]smt.Symbol) (frags []smt.Command, err error) {
	defer func() {
		err = smt.Recover(recover(), err)
		if err != nil {
			frags = nil
		}
	}()
	return unit.Generate(in, out), nil
}

func (r *Registry) next(name string) int {
	if c, ok := r.versions[name]; ok {
		return c + 1
	}
	return 0
}

// ApplyAll calls Apply() for each unit in turn and concatenates the
// fragments. Stops on the first error.
func (r *Registry) ApplyAll(units ...CodeGenerator) ([]smt.Command, error) {
	var frags []smt.Command
	for _, u := range units {
		f, err := r.Apply(u)
		if err != nil {
			return nil, err
		}
		frags = append(frags, f...)
	}
	return frags, nil
}

// Current returns the symbol of the current version of the variable.
func (r *Registry) Current(name string) (smt.Symbol, error) {
	v, ok := r.versions[name]
	if !ok {
		return smt.Symbol{}, curated.Errorf(UndefinedBeforeUse, name)
	}
	sym, err := smt.ParseSymbol(VersionedName(name, v))
	if err != nil {
		return smt.Symbol{}, curated.Errorf("statevar: %v", err)
	}
	return sym, nil
}

// Version returns the current version of the variable. The boolean result is
// false if the variable has never been written.
func (r *Registry) Version(name string) (int, bool) {
	v, ok := r.versions[name]
	return v, ok
}

// Names returns the sorted list of variables that have been written at least
// once.
func (r *Registry) Names() []string {
	n := make([]string, 0, len(r.versions))
	for k := range r.versions {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

// Versions returns a copy of the current version of every variable.
func (r *Registry) Versions() map[string]int {
	m := make(map[string]int, len(r.versions))
	for k, v := range r.versions {
		m[k] = v
	}
	return m
}

// Applied returns the number of units successfully applied.
func (r *Registry) Applied() int {
	return r.applied
}

func (r *Registry) String() string {
	return fmt.Sprintf("%d variables, %d units applied", len(r.versions), r.applied)
}
