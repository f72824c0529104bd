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

// Package logger is the central log for sat6502. Log entries are tagged and
// held in a bounded list. Adjacent duplicate entries are folded into a single
// entry with a repeat count.
//
// Logging is gated by the Permission interface. A code generator or a solver
// backend can implement AllowLogging() to silence its output during bulk
// operations, for example while a worker builds thousands of formulas. The
// Allow value always permits logging.
//
// The central log is accessed through the package level functions. Independent
// logs can be created with NewLogger(), which is mostly useful for testing.
package logger
