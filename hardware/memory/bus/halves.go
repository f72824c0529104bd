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

package bus

import (
	"fmt"

	"github.com/jetsetilly/sat6502/hardware/cpu"
	"github.com/jetsetilly/sat6502/smt"
	"github.com/jetsetilly/sat6502/statevar"
)

type frontHalf struct {
	slots  []Slot
	writes []string
}

// FrontHalf returns the code generator for the first half of a bus phase.
func FrontHalf(slots []Slot) statevar.CodeGenerator {
	f := frontHalf{slots: slots}
	for _, s := range slots {
		f.writes = append(f.writes,
			ChipSelect(s.Prefix), Address(s.Prefix),
			WriteEnable(s.Prefix), DataIn(s.Prefix))
	}
	return f
}

func (f frontHalf) Reads() []string {
	return []string{cpu.AddressBus, cpu.WriteEnable, cpu.DataOut}
}

func (f frontHalf) Writes() []string {
	return f.writes
}

func (f frontHalf) Generate(in map[string]smt.Symbol, out map[string]smt.Symbol) []smt.Command {
	frags := make([]smt.Command, 0, len(f.slots)*8+1)
	frags = append(frags, smt.Note("bus front half"))

	page := smt.Extract(15, 12, in[cpu.AddressBus])

	for _, s := range f.slots {
		cs := out[ChipSelect(s.Prefix)]
		addr := out[Address(s.Prefix)]
		we := out[WriteEnable(s.Prefix)]
		data := out[DataIn(s.Prefix)]

		frags = append(frags,
			smt.DeclareBV(cs, 1),
			smt.DeclareBV(addr, cpu.Width(cpu.AddressBus)),
			smt.DeclareBV(we, 1),
			smt.DeclareBV(data, 8),
		)

		selected := smt.Eq(page, smt.BV(uint64(s.Page), 4))

		frags = append(frags,
			smt.Assert(smt.Eq(cs, smt.Ite(selected, smt.Bit(true), smt.Bit(false)))),
			smt.Assert(smt.Eq(addr, in[cpu.AddressBus])),
			smt.Assert(smt.Eq(we, in[cpu.WriteEnable])),
			smt.Assert(smt.Eq(data, in[cpu.DataOut])),
		)
	}

	return frags
}

type backHalf struct {
	slots []Slot
	reads []string
}

// BackHalf returns the code generator for the second half of a bus phase. The
// data output of the selected handler is written to CPU_DataIn.
func BackHalf(slots []Slot) statevar.CodeGenerator {
	b := backHalf{slots: slots}
	for _, s := range slots {
		b.reads = append(b.reads, ChipSelect(s.Prefix), DataOut(s.Prefix))
	}
	return b
}

func (b backHalf) Reads() []string {
	return b.reads
}

func (b backHalf) Writes() []string {
	return []string{cpu.DataIn}
}

func (b backHalf) Generate(in map[string]smt.Symbol, out map[string]smt.Symbol) []smt.Command {
	frags := make([]smt.Command, 0, len(b.slots)+2)
	frags = append(frags, smt.Note("bus back half"))
	frags = append(frags, smt.DeclareBV(out[cpu.DataIn], cpu.Width(cpu.DataIn)))

	for _, s := range b.slots {
		cs := in[ChipSelect(s.Prefix)]
		frags = append(frags, smt.Assert(smt.Implies(
			smt.Eq(cs, smt.Bit(true)),
			smt.Eq(out[cpu.DataIn], in[DataOut(s.Prefix)]),
		)))
	}

	return frags
}

// String implementations are used in log entries.

func (f frontHalf) String() string {
	return fmt.Sprintf("bus front half (%d slots)", len(f.slots))
}

func (b backHalf) String() string {
	return fmt.Sprintf("bus back half (%d slots)", len(b.slots))
}
