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

package instructions

import "fmt"

// AddressingMode describes the method by which an instruction receives its
// operand.
type AddressingMode int

// List of valid AddressingMode values.
const (
	Implied AddressingMode = iota
	Immediate

	ZeroPage         // zpg
	ZeroPageIndexedX // zpg,X
	ZeroPageIndexedY // zpg,Y

	Absolute         // abs
	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y

	IndexedIndirect // (ind,X)
	IndirectIndexed // (ind),Y
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Immediate:
		return "Immediate"
	case ZeroPage:
		return "ZeroPage"
	case ZeroPageIndexedX:
		return "ZeroPageIndexedX"
	case ZeroPageIndexedY:
		return "ZeroPageIndexedY"
	case Absolute:
		return "Absolute"
	case AbsoluteIndexedX:
		return "AbsoluteIndexedX"
	case AbsoluteIndexedY:
		return "AbsoluteIndexedY"
	case IndexedIndirect:
		return "IndexedIndirect"
	case IndirectIndexed:
		return "IndirectIndexed"
	}
	return "unknown addressing mode"
}

// Abbreviation is the short form of the addressing mode used in the names of
// micro-states.
func (m AddressingMode) Abbreviation() string {
	switch m {
	case Implied:
		return "IMP"
	case Immediate:
		return "IMM"
	case ZeroPage:
		return "ZP"
	case ZeroPageIndexedX:
		return "ZPX"
	case ZeroPageIndexedY:
		return "ZPY"
	case Absolute:
		return "ABS"
	case AbsoluteIndexedX:
		return "ABX"
	case AbsoluteIndexedY:
		return "ABY"
	case IndexedIndirect:
		return "INX"
	case IndirectIndexed:
		return "INY"
	}
	return "UNK"
}

// Indexed returns true if the addressing mode adds an index register to the
// effective address.
func (m AddressingMode) Indexed() bool {
	switch m {
	case ZeroPageIndexedX, ZeroPageIndexedY, AbsoluteIndexedX, AbsoluteIndexedY, IndexedIndirect, IndirectIndexed:
		return true
	}
	return false
}

// EffectCategory categorises an instruction by the effect it has on the
// memory bus.
type EffectCategory int

// List of valid EffectCategory values.
const (
	Read EffectCategory = iota
	Write

	// instructions that only affect the registers of the CPU. the bus is only
	// used for opcode fetches and dummy reads
	Internal
)

func (e EffectCategory) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case Internal:
		return "Internal"
	}
	return "unknown effect"
}

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Mnemonic       string
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s]", defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// Label is the name of the instruction used as the prefix of micro-state
// names. For example, LDA_ABX.
func (defn Definition) Label() string {
	return fmt.Sprintf("%s_%s", defn.Mnemonic, defn.AddressingMode.Abbreviation())
}
