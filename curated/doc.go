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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. The Has() function is similar but checks if a pattern
// occurs somewhere in the error chain. For example:
//
//	const UndefinedBeforeUse = "statevar: %s undefined before use"
//
//	e := curated.Errorf(UndefinedBeforeUse, "CPU_A")
//	f := curated.Errorf("system: %v", e)
//
//	curated.Is(e, UndefinedBeforeUse)  // true
//	curated.Is(f, UndefinedBeforeUse)  // false
//	curated.Has(f, UndefinedBeforeUse) // true
//
// Sentinel patterns are stored as exported const strings in the package that
// raises them. Every failure in sat6502 is a curated error: AST construction
// errors, composition errors, solver protocol errors and resource-discovery
// errors are all distinguished by pattern rather than by type.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For the purposes of this package we think of
// chains as being composed of parts separated by the sub-string ": ". For
// example:
//
//	solver: solver: unexpected response (error)
//
// is reported as:
//
//	solver: unexpected response (error)
//
// Curated errors support the Unwrap() convention so the standard errors.Is()
// and errors.As() functions can see through them to wrapped plain errors.
package curated
