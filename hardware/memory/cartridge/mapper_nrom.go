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

package cartridge

import (
	"fmt"

	"github.com/jetsetilly/sat6502/curated"
	"github.com/jetsetilly/sat6502/hardware/memory/bus"
	"github.com/jetsetilly/sat6502/hardware/memory/memorymap"
	"github.com/jetsetilly/sat6502/smt"
	"github.com/jetsetilly/sat6502/statevar"
)

// PRG is the name of the array variable holding the PRG-ROM of a mapper 0
// cartridge.
const PRG = "Mapper0_PRG"

type nrom struct {
	rom ROM

	// number of bits in the PRG-ROM address. 14 for 16 KiB and 15 for 32 KiB
	addressBits int
}

func newNROM(rom ROM) (*nrom, error) {
	m := &nrom{rom: rom}

	switch rom.Size() {
	case BankSize:
		m.addressBits = 14
	case BankSize * 2:
		m.addressBits = 15
	default:
		return nil, curated.Errorf("NROM: %v", fmt.Sprintf("PRG must be 16k or 32k (%d bytes)", rom.Size()))
	}

	return m, nil
}

func (m *nrom) ID() string {
	return "NROM"
}

func (m *nrom) String() string {
	return fmt.Sprintf("%s [%s]", m.rom, m.ID())
}

func (m *nrom) Initialiser() statevar.CodeGenerator {
	return statevar.Generator{
		WriteNames: []string{PRG},
		Fn: func(_ map[string]smt.Symbol, out map[string]smt.Symbol) []smt.Command {
			prg := out[PRG]

			frags := make([]smt.Command, 0, m.rom.Size()+2)
			frags = append(frags, smt.Note(fmt.Sprintf("cartridge %s", m)))
			frags = append(frags, smt.DeclareArr(prg, m.addressBits, 8))

			for i := 0; i < m.rom.Size(); i++ {
				cell := smt.Select(prg, smt.BV(uint64(i), m.addressBits))
				frags = append(frags, smt.Assert(smt.Eq(cell, smt.BV(uint64(m.rom.Read(i)), 8))))
			}

			return frags
		},
	}
}

func (m *nrom) PageHandler(page int) (statevar.PageHandler, bool) {
	if memorymap.PageArea(page) != memorymap.Cartridge {
		return nil, false
	}
	return nromHandler{nrom: m, prefix: bus.Prefix(page)}, true
}

// the output of the handler is the addressed byte of PRG-ROM whether the page
// is selected or not. writes are ignored
type nromHandler struct {
	nrom   *nrom
	prefix string
}

func (h nromHandler) Prefix() string {
	return h.prefix
}

func (h nromHandler) Reads() []string {
	return []string{bus.Address(h.prefix), PRG}
}

func (h nromHandler) Writes() []string {
	return []string{bus.DataOut(h.prefix)}
}

func (h nromHandler) Generate(in map[string]smt.Symbol, out map[string]smt.Symbol) []smt.Command {
	d := out[bus.DataOut(h.prefix)]

	// the address modulo the size of the ROM
	offset := smt.Extract(h.nrom.addressBits-1, 0, in[bus.Address(h.prefix)])

	return []smt.Command{
		smt.DeclareBV(d, 8),
		smt.Assert(smt.Eq(d, smt.Select(in[PRG], offset))),
	}
}
