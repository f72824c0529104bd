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

import "io"

// the central log is large enough for the diagnostics of a complete
// verification run
const maxCentral = 512

var central = NewLogger(maxCentral)

// Log adds an entry to the central log.
func Log(perm Permission, tag string, detail interface{}) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central log.
func Logf(perm Permission, tag string, detail string, args ...interface{}) {
	central.Logf(perm, tag, detail, args...)
}

// Clear the central log.
func Clear() {
	central.Clear()
}

// Write every entry of the central log to output.
func Write(output io.Writer) {
	central.Write(output)
}

// Tail writes the most recent entries of the central log to output.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho writes new entries of the central log to output as they are added.
// A nil output stops the echo.
func SetEcho(output io.Writer) {
	central.SetEcho(output)
}
