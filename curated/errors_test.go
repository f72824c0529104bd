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

package curated_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/sat6502/curated"
	"github.com/jetsetilly/sat6502/test"
)

const testPattern = "test: %d"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, "other: %d"))
	test.ExpectEquality(t, e.Error(), "test: 10")

	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	f := curated.Errorf("wrapped: %v", e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectFailure(t, curated.Has(f, "other: %d"))
}

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf("solver: %v", curated.Errorf("solver: %v", curated.Errorf("no reply")))
	test.ExpectEquality(t, e.Error(), "solver: no reply")
}

func TestUnwrap(t *testing.T) {
	plain := errors.New("plain")
	e := curated.Errorf("wrapped: %v", plain)
	test.ExpectSuccess(t, errors.Is(e, plain))
}

func TestPattern(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	test.ExpectEquality(t, curated.Pattern(e), testPattern)
	test.ExpectEquality(t, curated.Pattern(errors.New("plain")), "")

	// curated errors inside other wrapped errors are found
	f := fmt.Errorf("outer: %w", e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))

	// the second error value is searched
	g := curated.Errorf("two: %v %v", errors.New("first"), e)
	test.ExpectSuccess(t, curated.Has(g, testPattern))
}
