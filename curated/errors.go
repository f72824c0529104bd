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

package curated

import (
	"errors"
	"fmt"
	"strings"
)

// the separator between the parts of an error message
const separator = ": "

type curated struct {
	pattern string
	values  []interface{}
}

// Errorf creates a new curated error. The pattern is a fmt format string and
// is also the identity of the error for Is() and Has().
func Errorf(pattern string, values ...interface{}) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error formats the message and removes a part that repeats the part before
// it. For example, "solver: solver: no reply" becomes "solver: no reply".
func (er curated) Error() string {
	parts := strings.Split(fmt.Sprintf(er.pattern, er.values...), separator)

	j := 0
	for i := 1; i < len(parts); i++ {
		if parts[i] != parts[j] {
			j++
			parts[j] = parts[i]
		}
	}

	return strings.Join(parts[:j+1], separator)
}

// Unwrap returns the first value that is an error.
func (er curated) Unwrap() error {
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			return e
		}
	}
	return nil
}

// IsAny returns true if the error is a curated error.
func IsAny(err error) bool {
	_, ok := err.(curated)
	return ok
}

// Pattern returns the pattern of a curated error. Returns the empty string if
// the error is not a curated error.
func Pattern(err error) string {
	if er, ok := err.(curated); ok {
		return er.pattern
	}
	return ""
}

// Is returns true if the error is a curated error created with the pattern.
func Is(err error, pattern string) bool {
	return IsAny(err) && Pattern(err) == pattern
}

// Has returns true if the error or any of the errors it wraps is a curated
// error created with the pattern. Every error value of a curated error is
// searched, not just the first.
func Has(err error, pattern string) bool {
	for err != nil {
		if Is(err, pattern) {
			return true
		}

		if er, ok := err.(curated); ok {
			for _, v := range er.values {
				if e, ok := v.(error); ok && Has(e, pattern) {
					return true
				}
			}
			return false
		}

		err = errors.Unwrap(err)
	}
	return false
}
