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

// Package null implements the page handler for pages of the address space
// that have no modelled hardware. Reading a null page returns zero and writing
// to a null page has no effect.
package null

import (
	"fmt"

	"github.com/jetsetilly/sat6502/hardware/memory/bus"
	"github.com/jetsetilly/sat6502/smt"
	"github.com/jetsetilly/sat6502/statevar"
)

var _ statevar.PageHandler = (*Null)(nil)

// Null is the page handler for a page with no modelled hardware.
type Null struct {
	prefix string
}

// NewNull is the preferred method of initialisation for the Null type.
func NewNull(page int) *Null {
	return &Null{prefix: bus.Prefix(page)}
}

func (n *Null) String() string {
	return fmt.Sprintf("null handler %s", n.prefix)
}

// Prefix implements the statevar.PageHandler interface.
func (n *Null) Prefix() string {
	return n.prefix
}

// Reads implements the statevar.PageHandler interface.
func (n *Null) Reads() []string {
	return nil
}

// Writes implements the statevar.PageHandler interface.
func (n *Null) Writes() []string {
	return []string{bus.DataOut(n.prefix)}
}

// Generate implements the statevar.PageHandler interface.
func (n *Null) Generate(_ map[string]smt.Symbol, out map[string]smt.Symbol) []smt.Command {
	d := out[bus.DataOut(n.prefix)]
	return []smt.Command{
		smt.DeclareBV(d, 8),
		smt.Assert(smt.Eq(d, smt.BV(0, 8))),
	}
}
