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

package smt

import "fmt"

// Sentinel patterns for curated errors raised during AST construction.
const (
	InvalidSymbol   = "smt: invalid symbol (%s)"
	InvalidNumeral  = "smt: invalid numeral (%s)"
	InvalidConstant = "smt: invalid constant (%s)"
	InvalidWidth    = "smt: invalid width (%d)"
	InvalidIndex    = "smt: invalid index for %s: %s"
	InvalidArity    = "smt: %s takes %s arguments (got %d)"
	NilTerm         = "smt: nil term in argument %d of %s"
)

// ConstructionError is the panic value of the short builders. It wraps the
// curated error that the equivalent Parse constructor would have returned.
type ConstructionError struct {
	Err error
}

func (e ConstructionError) Error() string {
	return e.Err.Error()
}

func (e ConstructionError) Unwrap() error {
	return e.Err
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(ConstructionError{Err: err})
	}
	return v
}

// Recover converts a recovered ConstructionError back into an error. Any
// other panic value is re-raised.
//
// Should be used in a deferred function:
//
//	defer func() {
//		err = smt.Recover(recover(), err)
//	}()
func Recover(r interface{}, err error) error {
	if r == nil {
		return err
	}
	if ce, ok := r.(ConstructionError); ok {
		return ce.Err
	}
	panic(r)
}

func arityString(min, max int) string {
	switch {
	case max < 0:
		return fmt.Sprintf("at least %d", min)
	case min == max:
		return fmt.Sprintf("exactly %d", min)
	}
	return fmt.Sprintf("between %d and %d", min, max)
}
