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

// Package propagate decides formulas without an external solver by forward
// propagation of known values.
//
// The formulas produced for a deterministic hardware timeline define every
// variable in terms of earlier variables. When the initial state is fully
// known, each assertion either defines a new variable or can be evaluated to
// true or false. Solve() exploits this: it evaluates every assertion with a
// three-valued logic (true, false or unknown) and uses equalities in which one
// side is an undefined variable, or an undefined cell of an array, as
// definitions. Conjunctions are split into independent assertions and the
// consequent of an implication becomes an assertion once the antecedent is
// known to be true.
//
// Every definition made this way is forced by the formula and so a
// contradiction proves that the formula is unsatisfiable. If every assertion
// evaluates to true the defined values, together with arbitrary values for
// everything else, are a model.
//
// Propagation is not complete. If neither outcome is reached the formula is
// undetermined and an error with the Undetermined pattern is returned. This
// happens when the initial state is not fully pinned or when a formula uses a
// constraint that is not a definition, eg. (bvult x #x10) for an undefined x.
package propagate
