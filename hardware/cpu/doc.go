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

// Package cpu is the cycle compiler of the 6502 CPU model.
//
// The CPU is not executed. Instead, every cycle of the CPU is described by a
// CodeGenerator (see the statevar package) that emits the complete next-state
// relation of the CPU for that cycle. The relation is a conjunction of
// implications of the form:
//
//	(state == S) and (guard) => (constraints on every output variable)
//
// The antecedents of the implications are mutually exclusive and so the
// conjunction behaves like a deterministic transition function.
//
// Every consequent constrains every output variable. Variables that are not
// the subject of a write are preserved with an identity constraint. This is
// the most important property of the compiler. Forgetting to preserve a
// register leaves it unconstrained in the next cycle.
//
// The execution schedule of an instruction is a sequence of micro-states. The
// micro-states are enumerated from the instructions table: Resetting and
// InstructionFetch, followed by every cycle of every implemented instruction.
// For example, "LDA_ABX_Cycle2x" is the page-crossing fix-up cycle of the
// absolute,X addressing mode of the LDA instruction.
//
// An opcode that has no definition contributes no implication. The state of
// the CPU after fetching such an opcode is therefore unconstrained and any
// claim about it will not be forced by the formula.
//
// The CPU communicates with the memory bus through the CPU_AddressBus,
// CPU_WriteEnable, CPU_DataOut and CPU_DataIn variables. The address driven in
// one cycle is the address whose data is seen on CPU_DataIn in the next
// cycle.
package cpu
