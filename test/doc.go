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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectSuccess() family of functions report a
// failure with t.Errorf() and allow the test to continue. The Demand family
// of functions stops the test immediately with t.FailNow(). Use Demand where
// later checks would only cascade from the first failure.
//
// Success and failure values can be of type bool or error. A nil value is
// considered a success.
//
// The tags argument of the Expect and Demand functions is optional. Tags are
// prepended to the failure message and help identify which iteration of a
// table-driven test failed.
package test
