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

package smt_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/sat6502/curated"
	"github.com/jetsetilly/sat6502/smt"
	"github.com/jetsetilly/sat6502/test"
)

func TestSymbol(t *testing.T) {
	s, err := smt.ParseSymbol("CPU_A_3")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.String(), "CPU_A_3")

	for _, name := range []string{"", "3CPU", "CPU A", "CPU(A)", "CPU|A"} {
		_, err := smt.ParseSymbol(name)
		test.ExpectSuccess(t, curated.Is(err, smt.InvalidSymbol), name)
	}

	_, err = smt.ParseSymbol("a.b-c+d<e>f?g/h")
	test.ExpectSuccess(t, err)
}

func TestNumeral(t *testing.T) {
	n, err := smt.ParseNumeral("0")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n.String(), "0")

	n, err = smt.ParseNumeral("120")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n.Uint(), uint64(120))

	for _, d := range []string{"", "01", "1a", "-1"} {
		_, err := smt.ParseNumeral(d)
		test.ExpectSuccess(t, curated.Is(err, smt.InvalidNumeral), d)
	}
}

func TestConstants(t *testing.T) {
	b, err := smt.ParseBinary("0110")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b.String(), "#b0110")
	test.ExpectEquality(t, b.Width(), 4)

	h, err := smt.ParseHex("5A")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.String(), "#x5A")
	test.ExpectEquality(t, h.Width(), 8)

	_, err = smt.ParseBinary("")
	test.ExpectFailure(t, err)
	_, err = smt.ParseBinary("012")
	test.ExpectFailure(t, err)
	_, err = smt.ParseHex("5g")
	test.ExpectFailure(t, err)

	test.ExpectEquality(t, smt.BV(0x5a, 8).String(), "#x5a")
	test.ExpectEquality(t, smt.BV(5, 3).String(), "#b101")
	test.ExpectEquality(t, smt.BV(0, 16).String(), "#x0000")
	test.ExpectEquality(t, smt.BV(1, 1).String(), "#b1")
	test.ExpectEquality(t, smt.Bit(false).String(), "#b0")
}

func expectPanic(t *testing.T, pattern string, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		ce, ok := r.(smt.ConstructionError)
		if !ok {
			t.Errorf("expected ConstructionError panic, got %v", r)
			return
		}
		test.ExpectSuccess(t, curated.Is(ce.Err, pattern), ce.Err)
	}()
	f()
}

func TestBuilderPanics(t *testing.T) {
	expectPanic(t, smt.InvalidSymbol, func() { smt.Sym("") })
	expectPanic(t, smt.InvalidSymbol, func() { smt.Sym("0abc") })
	expectPanic(t, smt.InvalidNumeral, func() { smt.Num(-1) })
	expectPanic(t, smt.InvalidWidth, func() { smt.BV(0, 0) })
	expectPanic(t, smt.InvalidConstant, func() { smt.BV(0x100, 8) })
	expectPanic(t, smt.InvalidArity, func() { smt.Distinct(smt.True) })
	expectPanic(t, smt.NilTerm, func() { smt.Not(nil) })
	expectPanic(t, smt.InvalidIndex, func() { smt.Extract(0, 7, smt.Sym("a")) })
}

func TestRecover(t *testing.T) {
	f := func() (err error) {
		defer func() {
			err = smt.Recover(recover(), err)
		}()
		smt.Sym("")
		return nil
	}
	test.ExpectSuccess(t, curated.Is(f(), smt.InvalidSymbol))
}

func TestDeclarations(t *testing.T) {
	a := smt.Sym("CPU_A_0")

	_, err := smt.ParseDeclareBitVec(a, 0)
	test.ExpectSuccess(t, curated.Is(err, smt.InvalidWidth))
	_, err = smt.ParseDeclareArray(a, 0, 8)
	test.ExpectSuccess(t, curated.Is(err, smt.InvalidWidth))
	_, err = smt.ParseDeclareArray(a, 11, 0)
	test.ExpectSuccess(t, curated.Is(err, smt.InvalidWidth))
	_, err = smt.ParseDeclareBitVec(smt.Symbol{}, 8)
	test.ExpectSuccess(t, curated.Is(err, smt.InvalidSymbol))

	test.ExpectEquality(t, smt.DeclareBV(a, 8).String(), "(declare-fun CPU_A_0 () (_ BitVec 8))")
	test.ExpectEquality(t, smt.DeclareArr(smt.Sym("RAM_Memory_0"), 11, 8).String(),
		"(declare-fun RAM_Memory_0 () (Array (_ BitVec 11) (_ BitVec 8)))")
}

func TestIndexedIdentifier(t *testing.T) {
	_, err := smt.ParseApplication(smt.OpExtract, nil, smt.Sym("a"))
	test.ExpectSuccess(t, curated.Is(err, smt.InvalidIndex))
	_, err = smt.ParseApplication(smt.OpAnd, []smt.Numeral{smt.Num(1)}, smt.True, smt.False)
	test.ExpectSuccess(t, curated.Is(err, smt.InvalidIndex))

	e := smt.Extract(7, 0, smt.Sym("CPU_PC_1"))
	test.ExpectEquality(t, e.String(), "((_ extract 7 0) CPU_PC_1)")
	test.ExpectEquality(t, smt.ZeroExtend(8, smt.Sym("x")).String(), "((_ zero_extend 8) x)")
}

func TestSerialisation(t *testing.T) {
	s := smt.Sym("CPU_State_4")
	x := smt.Implies(smt.And(smt.Eq(s, smt.BV(1, 7)), smt.BVUge(smt.Sym("sum"), smt.BV(0x100, 12))),
		smt.Eq(smt.Sym("CPU_A_5"), smt.Ite(smt.Eq(smt.Bit(true), smt.Bin("1")), smt.Hex("5A"), smt.BV(0, 8))))

	test.ExpectEquality(t, smt.Assert(x).String(),
		"(assert (=> (and (= CPU_State_4 #b0000001) (bvuge sum #x100)) (= CPU_A_5 (ite (= #b1 #b1) #x5A #x00))))")

	test.ExpectEquality(t, smt.And().String(), "true")
	test.ExpectEquality(t, smt.Or().String(), "false")
	test.ExpectEquality(t, smt.And(s).String(), "CPU_State_4")

	st := smt.Store(smt.Sym("m"), smt.BV(3, 11), smt.Select(smt.Sym("n"), smt.BV(2, 11)))
	test.ExpectEquality(t, st.String(), "(store m #b00000000011 (select n #b00000000010))")
}

func TestFormula(t *testing.T) {
	f := smt.Formula{
		smt.Logic("QF_ABV"),
		smt.Note("power on"),
		smt.DeclareBV(smt.Sym("a"), 8),
		smt.Assert(smt.Eq(smt.Sym("a"), smt.BV(1, 8))),
		smt.CheckSat{},
		smt.Exit{},
	}

	w := &strings.Builder{}
	test.DemandSuccess(t, f.Write(w))
	test.ExpectEquality(t, w.String(), "(set-logic QF_ABV)\n; power on\n(declare-fun a () (_ BitVec 8))\n(assert (= a #x01))\n(check-sat)\n(exit)\n")

	d, a := f.Count()
	test.ExpectEquality(t, d, 1)
	test.ExpectEquality(t, a, 1)

	// comments do not change the digest
	g := append(smt.Formula{}, f...)
	g[1] = smt.Note("something else")
	test.ExpectEquality(t, f.Digest(), g.Digest())

	g[3] = smt.Assert(smt.Eq(smt.Sym("a"), smt.BV(2, 8)))
	test.ExpectInequality(t, f.Digest(), g.Digest())
}
