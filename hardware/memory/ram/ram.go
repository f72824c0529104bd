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

package ram

import (
	"fmt"

	"github.com/jetsetilly/sat6502/curated"
	"github.com/jetsetilly/sat6502/hardware/memory/bus"
	"github.com/jetsetilly/sat6502/hardware/memory/memorymap"
	"github.com/jetsetilly/sat6502/smt"
	"github.com/jetsetilly/sat6502/statevar"
)

// Memory is the name of the array variable holding the content of RAM.
const Memory = "RAM_Memory"

// RAM is the shared state of all RAM handlers.
type RAM struct {
	// express array equality as the equality of every cell
	Extensionality bool
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM(extensionality bool) *RAM {
	return &RAM{Extensionality: extensionality}
}

func (r *RAM) String() string {
	if r.Extensionality {
		return fmt.Sprintf("RAM (%d bytes, extensional)", memorymap.RAMSize)
	}
	return fmt.Sprintf("RAM (%d bytes)", memorymap.RAMSize)
}

// PowerOn returns the code generator for the content of RAM when power is
// applied. The content is unconstrained.
func (r *RAM) PowerOn() statevar.CodeGenerator {
	return statevar.Generator{
		WriteNames: []string{Memory},
		Fn: func(_ map[string]smt.Symbol, out map[string]smt.Symbol) []smt.Command {
			return []smt.Command{
				smt.Note("ram power on"),
				smt.DeclareArr(out[Memory], memorymap.RAMBits, 8),
			}
		},
	}
}

// Contents returns a code generator that pins the cells of RAM starting at
// the origin to the data. The origin is a RAM address and is not mirrored.
func (r *RAM) Contents(origin uint16, data []uint8) (statevar.CodeGenerator, error) {
	if int(origin)+len(data) > memorymap.RAMSize {
		return nil, curated.Errorf("ram: contents do not fit (%d bytes at %#04x)", len(data), origin)
	}

	d := make([]uint8, len(data))
	copy(d, data)

	return statevar.Generator{
		ReadNames: []string{Memory},
		Fn: func(in map[string]smt.Symbol, _ map[string]smt.Symbol) []smt.Command {
			frags := make([]smt.Command, 0, len(d)+1)
			frags = append(frags, smt.Note(fmt.Sprintf("ram contents (%d bytes at %#04x)", len(d), origin)))
			for i, v := range d {
				cell := smt.Select(in[Memory], smt.BV(uint64(int(origin)+i), memorymap.RAMBits))
				frags = append(frags, smt.Assert(smt.Eq(cell, smt.BV(uint64(v), 8))))
			}
			return frags
		},
	}, nil
}

// Handler returns the page handler for RAM mapped to the page.
func (r *RAM) Handler(page int) statevar.PageHandler {
	return handler{ram: r, prefix: bus.Prefix(page)}
}

type handler struct {
	ram    *RAM
	prefix string
}

func (h handler) Prefix() string {
	return h.prefix
}

func (h handler) Reads() []string {
	return []string{
		bus.ChipSelect(h.prefix),
		bus.Address(h.prefix),
		bus.WriteEnable(h.prefix),
		bus.DataIn(h.prefix),
		Memory,
	}
}

func (h handler) Writes() []string {
	return []string{Memory, bus.DataOut(h.prefix)}
}

func (h handler) Generate(in map[string]smt.Symbol, out map[string]smt.Symbol) []smt.Command {
	mem := in[Memory]
	next := out[Memory]
	data := in[bus.DataIn(h.prefix)]
	dataOut := out[bus.DataOut(h.prefix)]

	window := smt.Extract(memorymap.RAMBits-1, 0, in[bus.Address(h.prefix)])
	selected := smt.Eq(in[bus.ChipSelect(h.prefix)], smt.Bit(true))
	writing := smt.Eq(in[bus.WriteEnable(h.prefix)], smt.Bit(true))

	return []smt.Command{
		smt.Note(fmt.Sprintf("ram handler %s", h.prefix)),
		smt.DeclareArr(next, memorymap.RAMBits, 8),
		smt.DeclareBV(dataOut, 8),

		smt.Assert(smt.Implies(smt.Not(selected),
			smt.And(h.ram.unchanged(next, mem), smt.Eq(dataOut, smt.BV(0, 8))))),

		smt.Assert(smt.Implies(smt.And(selected, smt.Not(writing)),
			smt.And(h.ram.unchanged(next, mem), smt.Eq(dataOut, smt.Select(mem, window))))),

		smt.Assert(smt.Implies(smt.And(selected, writing),
			smt.And(h.ram.stored(next, mem, window, data), smt.Eq(dataOut, data)))),
	}
}

func cellIndex(i int) smt.Term {
	return smt.BV(uint64(i), memorymap.RAMBits)
}

// unchanged is the constraint that next is equal to mem
func (r *RAM) unchanged(next smt.Term, mem smt.Term) smt.Term {
	if !r.Extensionality {
		return smt.Eq(next, mem)
	}

	c := make([]smt.Term, memorymap.RAMSize)
	for i := range c {
		c[i] = smt.Eq(smt.Select(next, cellIndex(i)), smt.Select(mem, cellIndex(i)))
	}
	return smt.And(c...)
}

// stored is the constraint that next is equal to mem with one cell replaced
func (r *RAM) stored(next smt.Term, mem smt.Term, address smt.Term, data smt.Term) smt.Term {
	if !r.Extensionality {
		return smt.Eq(next, smt.Store(mem, address, data))
	}

	c := make([]smt.Term, memorymap.RAMSize)
	for i := range c {
		c[i] = smt.Eq(smt.Select(next, cellIndex(i)),
			smt.Ite(smt.Eq(address, cellIndex(i)), data, smt.Select(mem, cellIndex(i))))
	}
	return smt.And(c...)
}
