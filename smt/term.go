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

// Term is an SMT-LIB2 term.
type Term interface {
	String() string
	write(*strings.Builder)
	term()
}

// characters other than letters and digits allowed in a simple symbol
const symbolPunctuation = "~!@$%^&*_-+=<>.?/"

// Symbol is a validated SMT-LIB2 simple symbol.
type Symbol struct {
	name string
}

// ParseSymbol validates the name and returns a new Symbol.
func ParseSymbol(name string) (Symbol, error) {
	if name == "" {
		return Symbol{}, curated.Errorf(InvalidSymbol, "empty")
	}
	if name[0] >= '0' && name[0] <= '9' {
		return Symbol{}, curated.Errorf(InvalidSymbol, name)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case strings.ContainsRune(symbolPunctuation, r):
		default:
			return Symbol{}, curated.Errorf(InvalidSymbol, name)
		}
	}
	return Symbol{name: name}, nil
}

// Sym is the short builder for Symbol.
func Sym(name string) Symbol {
	return must(ParseSymbol(name))
}

// Name returns the symbol text.
func (s Symbol) Name() string {
	return s.name
}

func (s Symbol) String() string {
	return s.name
}

func (s Symbol) write(b *strings.Builder) {
	b.WriteString(s.name)
}

func (Symbol) term() {}

// Numeral is a non-negative decimal integer.
type Numeral struct {
	digits string
}

// ParseNumeral validates the decimal digits and returns a new Numeral.
func ParseNumeral(digits string) (Numeral, error) {
	if digits == "" {
		return Numeral{}, curated.Errorf(InvalidNumeral, "empty")
	}
	if len(digits) > 1 && digits[0] == '0' {
		return Numeral{}, curated.Errorf(InvalidNumeral, digits)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return Numeral{}, curated.Errorf(InvalidNumeral, digits)
		}
	}
	if _, err := strconv.ParseUint(digits, 10, 64); err != nil {
		return Numeral{}, curated.Errorf(InvalidNumeral, digits)
	}
	return Numeral{digits: digits}, nil
}

// Num is the short builder for Numeral.
func Num(n int) Numeral {
	if n < 0 {
		panic(ConstructionError{Err: curated.Errorf(InvalidNumeral, strconv.Itoa(n))})
	}
	return Numeral{digits: strconv.Itoa(n)}
}

// Uint returns the value of the numeral.
func (n Numeral) Uint() uint64 {
	v, _ := strconv.ParseUint(n.digits, 10, 64)
	return v
}

func (n Numeral) String() string {
	return n.digits
}

func (n Numeral) write(b *strings.Builder) {
	b.WriteString(n.digits)
}

func (Numeral) term() {}

// BinaryConstant is a bit-vector literal written in binary. The width of the
// constant is the number of digits.
type BinaryConstant struct {
	digits string
}

// ParseBinary validates the binary digits and returns a new BinaryConstant.
func ParseBinary(digits string) (BinaryConstant, error) {
	if digits == "" {
		return BinaryConstant{}, curated.Errorf(InvalidConstant, "empty binary")
	}
	for _, r := range digits {
		if r != '0' && r != '1' {
			return BinaryConstant{}, curated.Errorf(InvalidConstant, "#b"+digits)
		}
	}
	return BinaryConstant{digits: digits}, nil
}

// Bin is the short builder for BinaryConstant.
func Bin(digits string) BinaryConstant {
	return must(ParseBinary(digits))
}

// Digits returns the digits of the constant without prefix.
func (c BinaryConstant) Digits() string {
	return c.digits
}

// Width of the constant in bits.
func (c BinaryConstant) Width() int {
	return len(c.digits)
}

func (c BinaryConstant) String() string {
	return "#b" + c.digits
}

func (c BinaryConstant) write(b *strings.Builder) {
	b.WriteString("#b")
	b.WriteString(c.digits)
}

func (BinaryConstant) term() {}

// HexConstant is a bit-vector literal written in hexadecimal. The width of
// the constant is four times the number of digits.
type HexConstant struct {
	digits string
}

// ParseHex validates the hexadecimal digits and returns a new HexConstant.
func ParseHex(digits string) (HexConstant, error) {
	if digits == "" {
		return HexConstant{}, curated.Errorf(InvalidConstant, "empty hex")
	}
	for _, r := range digits {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return HexConstant{}, curated.Errorf(InvalidConstant, "#x"+digits)
		}
	}
	return HexConstant{digits: digits}, nil
}

// Hex is the short builder for HexConstant.
func Hex(digits string) HexConstant {
	return must(ParseHex(digits))
}

// Digits returns the digits of the constant without prefix.
func (c HexConstant) Digits() string {
	return c.digits
}

// Width of the constant in bits.
func (c HexConstant) Width() int {
	return len(c.digits) * 4
}

func (c HexConstant) String() string {
	return "#x" + c.digits
}

func (c HexConstant) write(b *strings.Builder) {
	b.WriteString("#x")
	b.WriteString(c.digits)
}

func (HexConstant) term() {}

// BV returns a bit-vector constant of the value with exactly width bits.
// Widths divisible by four are written in hexadecimal.
func BV(value uint64, width int) Term {
	if width <= 0 || width > 64 {
		panic(ConstructionError{Err: curated.Errorf(InvalidWidth, width)})
	}
	if width < 64 && value>>uint(width) != 0 {
		panic(ConstructionError{Err: curated.Errorf(InvalidConstant, strconv.FormatUint(value, 10)+" does not fit")})
	}
	if width%4 == 0 {
		s := strconv.FormatUint(value, 16)
		return HexConstant{digits: strings.Repeat("0", width/4-len(s)) + s}
	}
	s := strconv.FormatUint(value, 2)
	return BinaryConstant{digits: strings.Repeat("0", width-len(s)) + s}
}

// Bit returns the single bit constant #b1 or #b0.
func Bit(b bool) BinaryConstant {
	if b {
		return BinaryConstant{digits: "1"}
	}
	return BinaryConstant{digits: "0"}
}

// BoolConstant is the literal true or false.
type BoolConstant struct {
	value bool
}

// True and False literals.
var (
	True  = BoolConstant{value: true}
	False = BoolConstant{value: false}
)

// Value of the literal.
func (c BoolConstant) Value() bool {
	return c.value
}

func (c BoolConstant) String() string {
	if c.value {
		return "true"
	}
	return "false"
}

func (c BoolConstant) write(b *strings.Builder) {
	b.WriteString(c.String())
}

func (BoolConstant) term() {}
