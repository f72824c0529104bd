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
	"strings"

	"github.com/jetsetilly/sat6502/curated"
)

// Command is a top-level SMT-LIB2 command.
type Command interface {
	String() string
	write(*strings.Builder)
	command()
}

// DeclareBitVec declares a symbol of bit-vector sort.
type DeclareBitVec struct {
	symbol Symbol
	width  Numeral
}

// ParseDeclareBitVec validates the width and returns a new declaration.
func ParseDeclareBitVec(symbol Symbol, width int) (DeclareBitVec, error) {
	if width <= 0 {
		return DeclareBitVec{}, curated.Errorf(InvalidWidth, width)
	}
	if symbol.name == "" {
		return DeclareBitVec{}, curated.Errorf(InvalidSymbol, "empty")
	}
	return DeclareBitVec{symbol: symbol, width: Num(width)}, nil
}

// DeclareBV is the short builder for DeclareBitVec.
func DeclareBV(symbol Symbol, width int) DeclareBitVec {
	return must(ParseDeclareBitVec(symbol, width))
}

// Symbol being declared.
func (d DeclareBitVec) Symbol() Symbol {
	return d.symbol
}

// Width of the bit-vector sort.
func (d DeclareBitVec) Width() int {
	return int(d.width.Uint())
}

func (d DeclareBitVec) String() string {
	b := &strings.Builder{}
	d.write(b)
	return b.String()
}

func (d DeclareBitVec) write(b *strings.Builder) {
	b.WriteString("(declare-fun ")
	d.symbol.write(b)
	b.WriteString(" () (_ BitVec ")
	d.width.write(b)
	b.WriteString("))")
}

func (DeclareBitVec) command() {}

// DeclareArray declares a symbol of array sort, mapping bit-vectors of the
// address width to bit-vectors of the data width.
type DeclareArray struct {
	symbol  Symbol
	address Numeral
	data    Numeral
}

// ParseDeclareArray validates the widths and returns a new declaration.
func ParseDeclareArray(symbol Symbol, addressWidth int, dataWidth int) (DeclareArray, error) {
	if addressWidth <= 0 {
		return DeclareArray{}, curated.Errorf(InvalidWidth, addressWidth)
	}
	if dataWidth <= 0 {
		return DeclareArray{}, curated.Errorf(InvalidWidth, dataWidth)
	}
	if symbol.name == "" {
		return DeclareArray{}, curated.Errorf(InvalidSymbol, "empty")
	}
	return DeclareArray{symbol: symbol, address: Num(addressWidth), data: Num(dataWidth)}, nil
}

// DeclareArr is the short builder for DeclareArray.
func DeclareArr(symbol Symbol, addressWidth int, dataWidth int) DeclareArray {
	return must(ParseDeclareArray(symbol, addressWidth, dataWidth))
}

// Symbol being declared.
func (d DeclareArray) Symbol() Symbol {
	return d.symbol
}

// AddressWidth is the width of the index sort.
func (d DeclareArray) AddressWidth() int {
	return int(d.address.Uint())
}

// DataWidth is the width of the element sort.
func (d DeclareArray) DataWidth() int {
	return int(d.data.Uint())
}

func (d DeclareArray) String() string {
	b := &strings.Builder{}
	d.write(b)
	return b.String()
}

func (d DeclareArray) write(b *strings.Builder) {
	b.WriteString("(declare-fun ")
	d.symbol.write(b)
	b.WriteString(" () (Array (_ BitVec ")
	d.address.write(b)
	b.WriteString(") (_ BitVec ")
	d.data.write(b)
	b.WriteString(")))")
}

func (DeclareArray) command() {}

// Assertion of a boolean term.
type Assertion struct {
	t Term
}

// ParseAssertion returns a new Assertion of the term.
func ParseAssertion(t Term) (Assertion, error) {
	if t == nil {
		return Assertion{}, curated.Errorf(NilTerm, 0, "assert")
	}
	return Assertion{t: t}, nil
}

// Assert is the short builder for Assertion.
func Assert(t Term) Assertion {
	return must(ParseAssertion(t))
}

// Term being asserted.
func (a Assertion) Term() Term {
	return a.t
}

func (a Assertion) String() string {
	b := &strings.Builder{}
	a.write(b)
	return b.String()
}

func (a Assertion) write(b *strings.Builder) {
	b.WriteString("(assert ")
	a.t.write(b)
	b.WriteString(")")
}

func (Assertion) command() {}

// SetLogic names the logic of the formula.
type SetLogic struct {
	logic Symbol
}

// Logic is the short builder for SetLogic.
func Logic(name string) SetLogic {
	return SetLogic{logic: Sym(name)}
}

func (s SetLogic) String() string {
	return "(set-logic " + s.logic.name + ")"
}

func (s SetLogic) write(b *strings.Builder) {
	b.WriteString(s.String())
}

func (SetLogic) command() {}

// CheckSat asks the solver for a satisfiability verdict.
type CheckSat struct{}

func (CheckSat) String() string {
	return "(check-sat)"
}

func (c CheckSat) write(b *strings.Builder) {
	b.WriteString(c.String())
}

func (CheckSat) command() {}

// Exit ends the solver session.
type Exit struct{}

func (Exit) String() string {
	return "(exit)"
}

func (e Exit) write(b *strings.Builder) {
	b.WriteString(e.String())
}

func (Exit) command() {}

// Comment is a single line comment. Newlines in the text are replaced with
// spaces.
type Comment struct {
	text string
}

// Note is the short builder for Comment.
func Note(text string) Comment {
	return Comment{text: strings.ReplaceAll(text, "\n", " ")}
}

// Text of the comment.
func (c Comment) Text() string {
	return c.text
}

func (c Comment) String() string {
	return "; " + c.text
}

func (c Comment) write(b *strings.Builder) {
	b.WriteString(c.String())
}

func (Comment) command() {}
