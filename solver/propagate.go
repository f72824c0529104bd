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
	"time"

	"github.com/jetsetilly/sat6502/curated"
	"github.com/jetsetilly/sat6502/logger"
	"github.com/jetsetilly/sat6502/smt"
	"github.com/jetsetilly/sat6502/smt/propagate"
)

// Propagate is the in-process backend. It can only decide formulas in which
// the initial state is fully known.
type Propagate struct{}

// Name implements the Backend interface.
func (Propagate) Name() string {
	return "propagate"
}

// Check implements the Backend interface.
func (b Propagate) Check(ctx context.Context, f smt.Formula) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Unsat, curated.Errorf(Timeout, b.Name())
	}

	start := time.Now()

	s, err := propagate.Solve(f)
	if err != nil {
		return Unsat, curated.Errorf("solver: %v", err)
	}

	r := Sat
	if s.Verdict == propagate.Unsat {
		r = Unsat
		logger.Logf(logger.Allow, "solver", "%s: contradiction in %.60s", b.Name(), s.Contradiction)
	}

	logger.Logf(logger.Allow, "solver", "%s: %s in %v (%016x)", b.Name(), r, time.Since(start).Round(time.Millisecond), f.Digest())

	return r, nil
}
