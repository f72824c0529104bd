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
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/jetsetilly/sat6502/curated"
	"github.com/jetsetilly/sat6502/logger"
	"github.com/jetsetilly/sat6502/smt"
)

// Executable is a solver that runs as a separate process and reads SMT-LIB2
// on its standard input.
type Executable struct {
	// name used in messages
	ID string

	Command string
	Args    []string

	// additional environment variables in the form "key=value"
	Env []string
}

// The supported external solvers.
var (
	Z3   = Executable{ID: "z3", Command: "z3", Args: []string{"-in", "-smt2"}}
	CVC5 = Executable{ID: "cvc5", Command: "cvc5", Args: []string{"--lang", "smt2"}}
)

// Name implements the Backend interface.
func (e Executable) Name() string {
	return e.ID
}

// Available returns true if the command can be found.
func (e Executable) Available() bool {
	_, err := exec.LookPath(e.Command)
	return err == nil
}

// Check implements the Backend interface. A new process is started for every
// check.
func (e Executable) Check(ctx context.Context, f smt.Formula) (Result, error) {
	p, err := Open(ctx, e)
	if err != nil {
		return Unsat, err
	}
	defer p.Close()

	start := time.Now()

	for _, c := range f {
		if err := p.WriteLine(c.String()); err != nil {
			return Unsat, err
		}
	}

	r, err := p.CheckSat()
	if err != nil {
		return Unsat, err
	}

	logger.Logf(logger.Allow, "solver", "%s: %s in %v (%016x)", e.ID, r, time.Since(start).Round(time.Millisecond), f.Digest())

	return r, nil
}

// Process is a running solver.
type Process struct {
	ctx context.Context
	id  string
	cmd *exec.Cmd

	stdin  io.WriteCloser
	w      *bufio.Writer
	stdout *bufio.Reader
}

// Open starts the solver process. The process is killed when the context is
// done.
func Open(ctx context.Context, e Executable) (*Process, error) {
	path, err := exec.LookPath(e.Command)
	if err != nil {
		return nil, curated.Errorf(NotFound, e.Command)
	}

	p := &Process{
		ctx: ctx,
		id:  e.ID,
		cmd: exec.CommandContext(ctx, path, e.Args...),
	}

	if len(e.Env) > 0 {
		p.cmd.Env = append(os.Environ(), e.Env...)
	}

	p.stdin, err = p.cmd.StdinPipe()
	if err != nil {
		return nil, curated.Errorf("solver: %v", err)
	}

	stdout, err := p.cmd.StdoutPipe()
	if err != nil {
		return nil, curated.Errorf("solver: %v", err)
	}

	if err := p.cmd.Start(); err != nil {
		return nil, curated.Errorf("solver: %v", err)
	}

	p.w = bufio.NewWriter(p.stdin)
	p.stdout = bufio.NewReader(stdout)

	return p, nil
}

// WriteLine sends one line to the solver. The line should not include the
// newline character.
func (p *Process) WriteLine(line string) error {
	if _, err := p.w.WriteString(line); err != nil {
		return p.failure(err)
	}
	if err := p.w.WriteByte('\n'); err != nil {
		return p.failure(err)
	}
	return nil
}

// CheckSat sends the check-sat and exit commands and waits for the verdict.
func (p *Process) CheckSat() (Result, error) {
	if err := p.WriteLine(smt.CheckSat{}.String()); err != nil {
		return Unsat, err
	}
	if err := p.WriteLine(smt.Exit{}.String()); err != nil {
		return Unsat, err
	}
	if err := p.w.Flush(); err != nil {
		return Unsat, p.failure(err)
	}
	if err := p.stdin.Close(); err != nil {
		return Unsat, p.failure(err)
	}

	line, err := p.stdout.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if p.ctx.Err() != nil {
			return Unsat, curated.Errorf(Timeout, p.id)
		}
		return Unsat, curated.Errorf(ProtocolError, "no reply")
	}

	switch reply := strings.TrimSpace(line); reply {
	case "sat":
		return Sat, nil
	case "unsat":
		return Unsat, nil
	default:
		return Unsat, curated.Errorf(ProtocolError, reply)
	}
}

// Close kills the process if it is still running and releases resources.
func (p *Process) Close() error {
	if p.cmd.Process != nil {
		_ = p.cmd.Process.Kill()
	}
	_ = p.cmd.Wait()
	return nil
}

// failure converts an error from the pipes into a curated error. a failure
// caused by the end of the context is reported as a timeout
func (p *Process) failure(err error) error {
	if p.ctx.Err() != nil {
		return curated.Errorf(Timeout, p.id)
	}
	return curated.Errorf("solver: %v", err)
}
