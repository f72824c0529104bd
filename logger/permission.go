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

package logger

// Permission is implemented by anything that makes log requests. A request is
// ignored if AllowLogging() returns false.
type Permission interface {
	AllowLogging() bool
}

// fixed is a Permission that never changes
type fixed bool

func (p fixed) AllowLogging() bool {
	return bool(p)
}

// Allow and Deny are permissions that always allow or always deny logging.
var (
	Allow Permission = fixed(true)
	Deny  Permission = fixed(false)
)

// a nil permission denies logging
func permitted(perm Permission) bool {
	return perm != nil && perm.AllowLogging()
}
