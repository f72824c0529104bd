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

// Package smt is the expression AST for SMT-LIB2 formulas over fixed-width
// bit-vectors and arrays.
//
// The AST is a closed sum type. Terms implement the Term interface and
// top-level commands implement the Command interface. Neither interface can be
// implemented outside of this package. All nodes are immutable once
// constructed.
//
// Every node type has a Parse constructor that validates the syntax of the
// node and returns a curated error on violation. Code generators, which build
// formulas from fixed and known-good parts, will more commonly use the short
// builders (Sym(), Num(), Bin(), Hex(), BV(), And(), Eq(), etc.). The short
// builders panic with a ConstructionError on violation because a malformed
// node always indicates a bug in the code generator.
//
// Serialisation is a pure tree-walk. The String() function of every node
// produces the same text for the same tree, with single spaces between
// elements. Formulas are written one command per line by the Write()
// function. The Digest() function hashes the serialised formula.
//
// Nothing outside of this package should depend on the form of the
// serialisation except for the purpose of sending a formula to a solver.
package smt
