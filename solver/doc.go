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

// Package solver sends formulas to an SMT solver and returns the verdict.
//
// A solver is represented by the Backend interface. Two kinds of backend are
// provided. An Executable is an external solver that reads SMT-LIB2 on its
// standard input: the Z3 and CVC5 values describe the command lines for the
// z3 and cvc5 solvers. Propagate is an in-process backend built on the
// smt/propagate package, which can only decide formulas with a fully known
// initial state.
//
// The protocol with an external solver is simple. The formula is written one
// command per line and is followed by (check-sat) and (exit). The first line
// of the reply must be "sat" or "unsat". Any other reply is a protocol error.
// A solver that is still running when the context is done is killed.
//
// The location of an executable is checked before a process is started and a
// missing executable is reported with the NotFound pattern.
//
// Cache wraps a Backend and remembers verdicts by the digest of the formula.
package solver
