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

// Package verification checks claims about the final state of a compiled
// timeline.
//
// A claim is checked by Contingent(). The setup is the formula of the
// timeline and the goal is a boolean term over the final state. The solver is
// asked twice: once with the goal asserted and once with the negation of the
// goal asserted. The goal is a necessary consequence of the setup only if the
// first formula is satisfiable and the second is not. The other outcomes are
// failures, each with its own error pattern:
//
//	sat, sat	Vacuous: the setup does not force the goal
//	unsat, unsat	Contradictory: the setup itself is unsatisfiable
//	unsat, sat	Refuted: the setup forces the negation of the goal
//
// A Scenario is a complete description of a claim: a short program, the bytes
// in memory, the number of cycles to run after the reset sequence and the
// expected values of registers and memory. Scenarios can be read from YAML
// files with LoadScenarios(). The Builtin list contains scenarios for every
// addressing mode of the implemented instructions.
//
// Run() checks a list of scenarios, one after the other or in parallel.
package verification
