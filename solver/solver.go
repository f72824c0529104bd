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

package solver

import (
	"context"
	"strings"

	"github.com/jetsetilly/sat6502/curated"
	"github.com/jetsetilly/sat6502/smt"
)

// Sentinel patterns for solver errors.
const (
	NotFound       = "solver: %s not found"
	ProtocolError  = "solver: protocol error (%s)"
	Timeout        = "solver: %s timed out"
	UnknownBackend = "solver: unknown backend (%s)"
)

// Result is the verdict of a solver.
type Result int

func (r Result) String() string {
	switch r {
	case Sat:
		return "sat"
	case Unsat:
		return "unsat"
	}
	return "unknown"
}

// List of valid Result values.
const (
	Sat Result = iota
	Unsat
)

// Backend is implemented by every solver.
type Backend interface {
	Name() string

	// decide the satisfiability of the formula. the formula should not
	// contain the check-sat command
	Check(ctx context.Context, f smt.Formula) (Result, error)
}

// Backends is the list of names accepted by NewBackend().
var Backends = []string{"z3", "cvc5", "propagate"}

// NewBackend returns the backend with the name.
func NewBackend(name string) (Backend, error) {
	switch strings.ToLower(name) {
	case "z3":
		return Z3, nil
	case "cvc5":
		return CVC5, nil
	case "propagate":
		return Propagate{}, nil
	}
	return nil, curated.Errorf(UnknownBackend, name)
}
