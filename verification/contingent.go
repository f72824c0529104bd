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

package verification

import (
	"context"

	"github.com/jetsetilly/sat6502/curated"
	"github.com/jetsetilly/sat6502/smt"
	"github.com/jetsetilly/sat6502/solver"
)

// Sentinel patterns for the outcomes of Contingent() that are not a pass.
const (
	Vacuous       = "verification: %s: vacuous (the goal is not forced by the setup)"
	Contradictory = "verification: %s: contradictory setup"
	Refuted       = "verification: %s: goal refuted"
)

// Query returns the setup with the goal asserted, or with the negation of the
// goal asserted if holds is false. The setup is not changed.
func Query(setup smt.Formula, goal smt.Term, holds bool) smt.Formula {
	if !holds {
		goal = smt.Not(goal)
	}
	q := make(smt.Formula, 0, len(setup)+1)
	q = append(q, setup...)
	return append(q, smt.Assert(goal))
}

// Contingent checks that the goal is a necessary consequence of the setup.
// Returns nil if it is and an error with one of the outcome patterns if it is
// not. The label is used in the error message.
func Contingent(ctx context.Context, backend solver.Backend, setup smt.Formula, goal smt.Term, label string) error {
	h, err := backend.Check(ctx, Query(setup, goal, true))
	if err != nil {
		return curated.Errorf("verification: %v", err)
	}

	f, err := backend.Check(ctx, Query(setup, goal, false))
	if err != nil {
		return curated.Errorf("verification: %v", err)
	}

	switch {
	case h == solver.Sat && f == solver.Unsat:
		return nil
	case h == solver.Sat && f == solver.Sat:
		return curated.Errorf(Vacuous, label)
	case h == solver.Unsat && f == solver.Unsat:
		return curated.Errorf(Contradictory, label)
	}
	return curated.Errorf(Refuted, label)
}
