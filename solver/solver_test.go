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

package solver_test

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jetsetilly/sat6502/curated"
	"github.com/jetsetilly/sat6502/smt"
	"github.com/jetsetilly/sat6502/solver"
	"github.com/jetsetilly/sat6502/test"
)

// fake returns an Executable that runs the test binary as a solver. the
// reply of the solver is given by the argument
func fake(reply string) solver.Executable {
	return solver.Executable{
		ID:      "fake",
		Command: os.Args[0],
		Args:    []string{"-test.run=TestHelperProcess", "--", reply},
		Env:     []string{"SAT6502_HELPER_PROCESS=1"},
	}
}

// TestHelperProcess is not a real test. It is the fake solver started by the
// other tests of the package.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("SAT6502_HELPER_PROCESS") != "1" {
		return
	}

	var reply string
	for i, a := range os.Args {
		if a == "--" && i+1 < len(os.Args) {
			reply = os.Args[i+1]
		}
	}

	var lines []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	switch reply {
	case "hang":
		time.Sleep(time.Minute)
	case "silent":
	default:
		n := len(lines)
		if n < 2 || lines[n-2] != "(check-sat)" || lines[n-1] != "(exit)" {
			fmt.Println("(error \"missing check-sat\")")
		} else {
			fmt.Println(reply)
		}
	}

	os.Exit(0)
}

func formula() smt.Formula {
	a := smt.Sym("a")
	return smt.Formula{
		smt.Logic("QF_BV"),
		smt.DeclareBV(a, 8),
		smt.Assert(smt.Eq(a, smt.BV(1, 8))),
	}
}

func TestProtocol(t *testing.T) {
	ctx := context.Background()

	r, err := fake("sat").Check(ctx, formula())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r, solver.Sat)

	r, err = fake("unsat").Check(ctx, formula())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r, solver.Unsat)

	_, err = fake("unknown").Check(ctx, formula())
	test.ExpectSuccess(t, curated.Is(err, solver.ProtocolError))

	_, err = fake("silent").Check(ctx, formula())
	test.ExpectSuccess(t, curated.Is(err, solver.ProtocolError))
}

func TestProcess(t *testing.T) {
	p, err := solver.Open(context.Background(), fake("sat"))
	test.DemandSuccess(t, err)
	defer p.Close()

	for _, l := range formula().Lines() {
		test.DemandSuccess(t, p.WriteLine(l))
	}

	r, err := p.CheckSat()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r, solver.Sat)
}

func TestTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()

	_, err := fake("hang").Check(ctx, formula())
	test.ExpectSuccess(t, curated.Is(err, solver.Timeout))
}

func TestNotFound(t *testing.T) {
	e := solver.Executable{ID: "missing", Command: "sat6502-no-such-solver"}
	test.ExpectFailure(t, e.Available())

	_, err := e.Check(context.Background(), formula())
	test.ExpectSuccess(t, curated.Is(err, solver.NotFound))
}

func TestNewBackend(t *testing.T) {
	for _, n := range solver.Backends {
		b, err := solver.NewBackend(n)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, b.Name(), n)
	}

	_, err := solver.NewBackend("minisat")
	test.ExpectSuccess(t, curated.Is(err, solver.UnknownBackend))
}

func TestPropagate(t *testing.T) {
	b := solver.Propagate{}

	r, err := b.Check(context.Background(), formula())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r, solver.Sat)

	f := append(formula(), smt.Assert(smt.Eq(smt.Sym("a"), smt.BV(2, 8))))
	r, err = b.Check(context.Background(), f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r, solver.Unsat)

	f = append(formula(), smt.DeclareBV(smt.Sym("b"), 8), smt.Assert(smt.BVUlt(smt.Sym("b"), smt.BV(2, 8))))
	_, err = b.Check(context.Background(), f)
	test.ExpectFailure(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = b.Check(ctx, formula())
	test.ExpectSuccess(t, curated.Is(err, solver.Timeout))
}

// counts the checks that reach the backend
type counter struct {
	solver.Propagate
	n int
}

func (c *counter) Check(ctx context.Context, f smt.Formula) (solver.Result, error) {
	c.n++
	return c.Propagate.Check(ctx, f)
}

func TestCache(t *testing.T) {
	b := &counter{}
	c := solver.NewCache(b)

	for i := 0; i < 3; i++ {
		r, err := c.Check(context.Background(), formula())
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, r, solver.Sat)
	}

	// comments do not change the digest
	f := append(smt.Formula{smt.Note("comment")}, formula()...)
	_, err := c.Check(context.Background(), f)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, b.n, 1)
	hits, misses := c.Stats()
	test.ExpectEquality(t, hits, 3)
	test.ExpectEquality(t, misses, 1)
	test.ExpectEquality(t, c.Name(), "propagate")
}

func TestZ3(t *testing.T) {
	if !solver.Z3.Available() {
		t.Skip("z3 not available")
	}

	r, err := solver.Z3.Check(context.Background(), formula())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r, solver.Sat)
}

func TestCVC5(t *testing.T) {
	if !solver.CVC5.Available() {
		t.Skip("cvc5 not available")
	}

	r, err := solver.CVC5.Check(context.Background(), append(formula(), smt.Assert(smt.False)))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r, solver.Unsat)
}
