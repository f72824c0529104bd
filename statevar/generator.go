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

import "github.com/jetsetilly/sat6502/smt"

// CodeGenerator is implemented by every hardware unit.
type CodeGenerator interface {
	// the names of the variables read and written by the unit. the same name
	// can appear in both lists
	Reads() []string
	Writes() []string

	// generate the fragments of the formula. the in map contains a symbol for
	// every name in Reads() and the out map contains a symbol for every name
	// in Writes()
	Generate(in map[string]smt.Symbol, out map[string]smt.Symbol) []smt.Command
}

// PageHandler is a CodeGenerator responsible for the read/write semantics of
// one page of the CPU address space. The names of the bus signals of a page
// handler all begin with the prefix.
type PageHandler interface {
	CodeGenerator
	Prefix() string
}

// Generator is a CodeGenerator built from two lists of names and a function.
// Useful for small units that have no other state, such as assertions and
// initialisers.
type Generator struct {
	ReadNames  []string
	WriteNames []string
	Fn         func(in map[string]smt.Symbol, out map[string]smt.Symbol) []smt.Command
}

// Reads implements the CodeGenerator interface.
func (g Generator) Reads() []string {
	return g.ReadNames
}

// Writes implements the CodeGenerator interface.
func (g Generator) Writes() []string {
	return g.WriteNames
}

// Generate implements the CodeGenerator interface.
func (g Generator) Generate(in map[string]smt.Symbol, out map[string]smt.Symbol) []smt.Command {
	if g.Fn == nil {
		return nil
	}
	return g.Fn(in, out)
}

// Pin returns a Generator that declares a new version of a bit-vector
// variable and constrains it to the value.
func Pin(name string, width int, value uint64) Generator {
	return Generator{
		WriteNames: []string{name},
		Fn: func(_ map[string]smt.Symbol, out map[string]smt.Symbol) []smt.Command {
			return []smt.Command{
				smt.DeclareBV(out[name], width),
				smt.Assert(smt.Eq(out[name], smt.BV(value, width))),
			}
		},
	}
}
