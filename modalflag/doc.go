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


// Package modalflag wraps the flag package with program modes. Each mode has
// its own set of flags and may have its own sub-modes.
//
// Arguments are given once with NewArgs() and are consumed by successive
// calls to Parse(). A call to NewMode() starts a new set of flags for the
// following call to Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("VERIFY", "EMIT", "GRAPH")
//	if r, err := md.Parse(); r != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "VERIFY":
//		md.NewMode()
//		solver := md.AddChoice("solver", "z3", []string{"z3", "cvc5"}, "solver backend")
//		...
//	}
//
// The first sub-mode is the default and is selected if the argument after the
// flags is not a sub-mode. Sub-mode comparisons are case insensitive. The
// modes found so far are available with Path(), separated by a slash.
//
// A help flag prints the flags and sub-modes of the current mode to Output
// and Parse() returns ParseHelp.
package modalflag
