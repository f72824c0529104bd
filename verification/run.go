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
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jetsetilly/sat6502/logger"
	"github.com/jetsetilly/sat6502/solver"
)

// RunOptions controls how a list of scenarios is checked.
type RunOptions struct {
	Options

	// maximum number of scenarios checked at the same time. a value of one
	// or less means the scenarios are checked one after the other
	Parallel int

	// time allowed for each scenario. zero means no limit
	Timeout time.Duration
}

// Result of checking a single scenario.
type Result struct {
	Scenario Scenario
	Err      error
	Duration time.Duration
}

// Passed returns true if the expectations of the scenario were shown to be
// a necessary consequence of the program.
func (r Result) Passed() bool {
	return r.Err == nil
}

func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("FAIL %s: %v", r.Scenario.Name, r.Err)
	}
	return fmt.Sprintf("ok   %s (%v)", r.Scenario.Name, r.Duration.Round(time.Millisecond))
}

// Results of a call to Run(). In the same order as the scenarios.
type Results []Result

// Failed returns the number of scenarios that did not pass.
func (rs Results) Failed() int {
	n := 0
	for _, r := range rs {
		if !r.Passed() {
			n++
		}
	}
	return n
}

func (rs Results) String() string {
	return fmt.Sprintf("%d scenarios, %d passed, %d failed", len(rs), len(rs)-rs.Failed(), rs.Failed())
}

func check(ctx context.Context, backend solver.Backend, s Scenario, opts RunOptions) Result {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	err := s.Check(ctx, backend, opts.Options)
	r := Result{Scenario: s, Err: err, Duration: time.Since(start)}

	logger.Log(logger.Allow, "verification", r.String())

	return r
}

// Run checks every scenario with the backend. A failing scenario does not
// stop the other scenarios from being checked.
//
// The backend must be safe for concurrent use if opts.Parallel is more than
// one.
func Run(ctx context.Context, backend solver.Backend, scenarios []Scenario, opts RunOptions) Results {
	results := make(Results, len(scenarios))

	if opts.Parallel <= 1 {
		for i, s := range scenarios {
			results[i] = check(ctx, backend, s, opts)
		}
		return results
	}

	var g errgroup.Group
	g.SetLimit(opts.Parallel)
	for i, s := range scenarios {
		i, s := i, s
		g.Go(func() error {
			results[i] = check(ctx, backend, s, opts)
			return nil
		})
	}

	// the result of each scenario is recorded in the results slice
	_ = g.Wait()

	return results
}
