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

package statevar_test

import (
	"testing"

	"github.com/jetsetilly/sat6502/curated"
	"github.com/jetsetilly/sat6502/smt"
	"github.com/jetsetilly/sat6502/statevar"
	"github.com/jetsetilly/sat6502/test"
)

// counter reads and writes the same variable
func counter(name string) statevar.Generator {
	return statevar.Generator{
		ReadNames:  []string{name},
		WriteNames: []string{name},
		Fn: func(in, out map[string]smt.Symbol) []smt.Command {
			return []smt.Command{
				smt.DeclareBV(out[name], 8),
				smt.Assert(smt.Eq(out[name], smt.BVAdd(in[name], smt.BV(1, 8)))),
			}
		},
	}
}

func define(name string) statevar.Generator {
	return statevar.Generator{
		WriteNames: []string{name},
		Fn: func(_, out map[string]smt.Symbol) []smt.Command {
			return []smt.Command{smt.DeclareBV(out[name], 8)}
		},
	}
}

func TestUndefinedBeforeUse(t *testing.T) {
	r := statevar.NewRegistry()

	for _, name := range []string{"CPU_A", "CPU_X", "RAM_Memory", "Page7_ChipSelect"} {
		_, err := r.Apply(counter(name))
		test.ExpectSuccess(t, curated.Is(err, statevar.UndefinedBeforeUse), name)

		_, err = r.Current(name)
		test.ExpectSuccess(t, curated.Is(err, statevar.UndefinedBeforeUse), name)

		// a failed apply does not allocate the written variable
		_, ok := r.Version(name)
		test.ExpectFailure(t, ok, name)

		_, err = r.Apply(define(name))
		test.ExpectSuccess(t, err, name)

		_, err = r.Apply(counter(name))
		test.ExpectSuccess(t, err, name)
	}
}

func TestVersionThreading(t *testing.T) {
	r := statevar.NewRegistry()

	frags, err := r.Apply(define("CPU_A"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, frags[0].String(), "(declare-fun CPU_A_0 () (_ BitVec 8))")

	var firstOut, secondIn, secondOut smt.Symbol
	capture := func(in, out *smt.Symbol) statevar.Generator {
		return statevar.Generator{
			ReadNames:  []string{"CPU_A"},
			WriteNames: []string{"CPU_A"},
			Fn: func(i, o map[string]smt.Symbol) []smt.Command {
				if in != nil {
					*in = i["CPU_A"]
				}
				*out = o["CPU_A"]
				return nil
			},
		}
	}

	_, err = r.Apply(capture(nil, &firstOut))
	test.DemandSuccess(t, err)
	_, err = r.Apply(capture(&secondIn, &secondOut))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, firstOut.Name(), "CPU_A_1")
	test.ExpectEquality(t, secondIn.Name(), firstOut.Name())
	test.ExpectEquality(t, secondOut.Name(), "CPU_A_2")
	test.ExpectInequality(t, firstOut.Name(), secondOut.Name())

	v, ok := r.Version("CPU_A")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 2)

	cur, err := r.Current("CPU_A")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cur.Name(), "CPU_A_2")
	test.ExpectEquality(t, r.Applied(), 3)
}

func TestFragmentsUnchanged(t *testing.T) {
	r := statevar.NewRegistry()
	frags, err := r.ApplyAll(define("CPU_X"), counter("CPU_X"), counter("CPU_X"))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(frags), 5)
	test.ExpectEquality(t, frags[4].String(), "(assert (= CPU_X_2 (bvadd CPU_X_1 #x01)))")
	test.ExpectEquality(t, len(r.Names()), 1)
}

func TestConstructionErrorsAreReturned(t *testing.T) {
	r := statevar.NewRegistry()
	bad := statevar.Generator{
		WriteNames: []string{"CPU_A"},
		Fn: func(_, out map[string]smt.Symbol) []smt.Command {
			return []smt.Command{smt.DeclareBV(out["CPU_A"], 0)}
		},
	}
	_, err := r.Apply(bad)
	test.ExpectSuccess(t, curated.Has(err, smt.InvalidWidth))

	// the failed unit allocates no versions
	_, ok := r.Version("CPU_A")
	test.ExpectFailure(t, ok)
	_, err = r.Current("CPU_A")
	test.ExpectSuccess(t, curated.Is(err, statevar.UndefinedBeforeUse))

	// and the next unit allocates the first version
	_, err = r.Apply(define("CPU_A"))
	test.DemandSuccess(t, err)
	v, _ := r.Version("CPU_A")
	test.ExpectEquality(t, v, 0)
}

func TestInvalidName(t *testing.T) {
	r := statevar.NewRegistry()
	_, err := r.Apply(define("CPU A"))
	test.ExpectSuccess(t, curated.Has(err, smt.InvalidSymbol))
}

func TestVersions(t *testing.T) {
	r := statevar.NewRegistry()
	_, err := r.ApplyAll(define("CPU_A"), counter("CPU_A"), define("CPU_X"))
	test.DemandSuccess(t, err)

	v := r.Versions()
	test.ExpectEquality(t, len(v), 2)
	test.ExpectEquality(t, v["CPU_A"], 1)
	test.ExpectEquality(t, v["CPU_X"], 0)

	// the map is a copy
	v["CPU_A"] = 10
	n, _ := r.Version("CPU_A")
	test.ExpectEquality(t, n, 1)
}
