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

package smt

import (
	"strconv"
	"strings"

	"github.com/jetsetilly/sat6502/curated"
)

// Op is the function symbol of an Application.
type Op string

// List of valid Op values.
const (
	OpAnd      Op = "and"
	OpOr       Op = "or"
	OpNot      Op = "not"
	OpXor      Op = "xor"
	OpDistinct Op = "distinct"
	OpEq       Op = "="
	OpImplies  Op = "=>"
	OpIte      Op = "ite"

	OpBVAdd  Op = "bvadd"
	OpBVSub  Op = "bvsub"
	OpBVAnd  Op = "bvand"
	OpBVOr   Op = "bvor"
	OpBVXor  Op = "bvxor"
	OpBVNot  Op = "bvnot"
	OpBVShl  Op = "bvshl"
	OpBVLshr Op = "bvlshr"
	OpBVUlt  Op = "bvult"
	OpBVUle  Op = "bvule"
	OpBVUgt  Op = "bvugt"
	OpBVUge  Op = "bvuge"

	OpConcat     Op = "concat"
	OpExtract    Op = "extract"
	OpZeroExtend Op = "zero_extend"

	OpSelect Op = "select"
	OpStore  Op = "store"
)

type signature struct {
	indices int
	min     int
	max     int
}

var signatures = map[Op]signature{
	OpAnd:        {min: 2, max: -1},
	OpOr:         {min: 2, max: -1},
	OpNot:        {min: 1, max: 1},
	OpXor:        {min: 2, max: -1},
	OpDistinct:   {min: 2, max: -1},
	OpEq:         {min: 2, max: -1},
	OpImplies:    {min: 2, max: 2},
	OpIte:        {min: 3, max: 3},
	OpBVAdd:      {min: 2, max: 2},
	OpBVSub:      {min: 2, max: 2},
	OpBVAnd:      {min: 2, max: 2},
	OpBVOr:       {min: 2, max: 2},
	OpBVXor:      {min: 2, max: 2},
	OpBVNot:      {min: 1, max: 1},
	OpBVShl:      {min: 2, max: 2},
	OpBVLshr:     {min: 2, max: 2},
	OpBVUlt:      {min: 2, max: 2},
	OpBVUle:      {min: 2, max: 2},
	OpBVUgt:      {min: 2, max: 2},
	OpBVUge:      {min: 2, max: 2},
	OpConcat:     {min: 2, max: 2},
	OpExtract:    {indices: 2, min: 1, max: 1},
	OpZeroExtend: {indices: 1, min: 1, max: 1},
	OpSelect:     {min: 2, max: 2},
	OpStore:      {min: 3, max: 3},
}

// Application of an Op to a list of argument terms. Indexed operators
// (extract and zero_extend) also carry a list of numeral indices.
type Application struct {
	op      Op
	indices []Numeral
	args    []Term
}

// ParseApplication validates the operator, indices and arguments and returns a
// new Application.
func ParseApplication(op Op, indices []Numeral, args ...Term) (Application, error) {
	sig, ok := signatures[op]
	if !ok {
		return Application{}, curated.Errorf(InvalidSymbol, string(op))
	}

	if len(indices) != sig.indices {
		if sig.indices == 0 {
			return Application{}, curated.Errorf(InvalidIndex, op, "not an indexed identifier")
		}
		return Application{}, curated.Errorf(InvalidIndex, op, "requires "+strconv.Itoa(sig.indices)+" indices")
	}

	if len(args) < sig.min || (sig.max >= 0 && len(args) > sig.max) {
		return Application{}, curated.Errorf(InvalidArity, op, arityString(sig.min, sig.max), len(args))
	}

	for i, a := range args {
		if a == nil {
			return Application{}, curated.Errorf(NilTerm, i, op)
		}
	}

	if op == OpExtract && indices[0].Uint() < indices[1].Uint() {
		return Application{}, curated.Errorf(InvalidIndex, op, indices[0].String()+" is less than "+indices[1].String())
	}

	app := Application{
		op:   op,
		args: make([]Term, len(args)),
	}
	copy(app.args, args)
	if len(indices) > 0 {
		app.indices = make([]Numeral, len(indices))
		copy(app.indices, indices)
	}

	return app, nil
}

// Op returns the function symbol of the application.
func (a Application) Op() Op {
	return a.op
}

// Indices returns the values of the indices of an indexed operator.
func (a Application) Indices() []int {
	idx := make([]int, len(a.indices))
	for i := range a.indices {
		idx[i] = int(a.indices[i].Uint())
	}
	return idx
}

// Args returns the argument terms. The returned slice should not be modified.
func (a Application) Args() []Term {
	return a.args
}

func (a Application) String() string {
	b := &strings.Builder{}
	a.write(b)
	return b.String()
}

func (a Application) write(b *strings.Builder) {
	b.WriteString("(")
	if len(a.indices) > 0 {
		b.WriteString("(_ ")
		b.WriteString(string(a.op))
		for _, i := range a.indices {
			b.WriteString(" ")
			i.write(b)
		}
		b.WriteString(")")
	} else {
		b.WriteString(string(a.op))
	}
	for _, t := range a.args {
		b.WriteString(" ")
		t.write(b)
	}
	b.WriteString(")")
}

func (Application) term() {}

func apply(op Op, args ...Term) Term {
	return must(ParseApplication(op, nil, args...))
}

// And of terms. A single term is returned unchanged and no terms is the
// literal true.
func And(terms ...Term) Term {
	switch len(terms) {
	case 0:
		return True
	case 1:
		return terms[0]
	}
	return apply(OpAnd, terms...)
}

// Or of terms. A single term is returned unchanged and no terms is the
// literal false.
func Or(terms ...Term) Term {
	switch len(terms) {
	case 0:
		return False
	case 1:
		return terms[0]
	}
	return apply(OpOr, terms...)
}

func Not(t Term) Term {
	return apply(OpNot, t)
}

func Xor(a, b Term) Term {
	return apply(OpXor, a, b)
}

func Distinct(terms ...Term) Term {
	return apply(OpDistinct, terms...)
}

func Eq(a, b Term) Term {
	return apply(OpEq, a, b)
}

func Implies(antecedent, consequent Term) Term {
	return apply(OpImplies, antecedent, consequent)
}

func Ite(condition, then, otherwise Term) Term {
	return apply(OpIte, condition, then, otherwise)
}

func BVAdd(a, b Term) Term {
	return apply(OpBVAdd, a, b)
}

func BVSub(a, b Term) Term {
	return apply(OpBVSub, a, b)
}

func BVAnd(a, b Term) Term {
	return apply(OpBVAnd, a, b)
}

func BVOr(a, b Term) Term {
	return apply(OpBVOr, a, b)
}

func BVXor(a, b Term) Term {
	return apply(OpBVXor, a, b)
}

func BVNot(a Term) Term {
	return apply(OpBVNot, a)
}

func BVShl(a, b Term) Term {
	return apply(OpBVShl, a, b)
}

func BVLshr(a, b Term) Term {
	return apply(OpBVLshr, a, b)
}

func BVUlt(a, b Term) Term {
	return apply(OpBVUlt, a, b)
}

func BVUle(a, b Term) Term {
	return apply(OpBVUle, a, b)
}

func BVUgt(a, b Term) Term {
	return apply(OpBVUgt, a, b)
}

func BVUge(a, b Term) Term {
	return apply(OpBVUge, a, b)
}

// Concat places the high term to the left of the low term.
func Concat(high, low Term) Term {
	return apply(OpConcat, high, low)
}

// Extract bits hi down to lo inclusive.
func Extract(hi, lo int, t Term) Term {
	return must(ParseApplication(OpExtract, []Numeral{Num(hi), Num(lo)}, t))
}

// ZeroExtend widens the term by n bits.
func ZeroExtend(n int, t Term) Term {
	return must(ParseApplication(OpZeroExtend, []Numeral{Num(n)}, t))
}

// Select reads the array at the index.
func Select(array, index Term) Term {
	return apply(OpSelect, array, index)
}

// Store returns the array with the value written at the index.
func Store(array, index, value Term) Term {
	return apply(OpStore, array, index, value)
}
