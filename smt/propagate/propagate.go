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

package propagate

import (
	"github.com/jetsetilly/sat6502/curated"
	"github.com/jetsetilly/sat6502/smt"
)

// Sentinel patterns of the errors returned by Solve().
const (
	Undetermined = "propagate: undetermined (%d assertions unresolved, first is %s)"
	Unsupported  = "propagate: unsupported (%v)"
	Undeclared   = "propagate: undeclared symbol (%s)"
	Redeclared   = "propagate: symbol declared twice (%s)"
	Mismatch     = "propagate: sort mismatch in definition of %s"
)

// Verdict of a successful Solve().
type Verdict int

func (v Verdict) String() string {
	switch v {
	case Sat:
		return "sat"
	case Unsat:
		return "unsat"
	}
	return "unknown"
}

// List of valid Verdict values.
const (
	Sat Verdict = iota
	Unsat
)

// Solution is the result of Solve().
type Solution struct {
	Verdict Verdict

	// the values found for a satisfiable formula
	Model *Model

	// the first assertion found to be false for an unsatisfiable formula
	Contradiction smt.Term
}

type declaration struct {
	array        bool
	width        int
	addressWidth int
}

type propagator struct {
	declarations map[string]declaration
	values       map[string]uint64
	arrays       map[string]*memory

	// number of definitions made. used to detect progress
	definitions int
}

// maximum length of an assertion quoted in an Undetermined error
const maxQuote = 80

// Solve decides the formula by propagation. An error is returned if the
// formula can not be decided or if it uses a construct that is not supported.
func Solve(f smt.Formula) (Solution, error) {
	p := &propagator{
		declarations: make(map[string]declaration),
		values:       make(map[string]uint64),
		arrays:       make(map[string]*memory),
	}

	var work []smt.Term

	for _, c := range f {
		switch c := c.(type) {
		case smt.DeclareBitVec:
			if err := p.declare(c.Symbol().Name(), declaration{width: c.Width()}); err != nil {
				return Solution{}, err
			}
		case smt.DeclareArray:
			if err := p.declare(c.Symbol().Name(), declaration{
				array:        true,
				width:        c.DataWidth(),
				addressWidth: c.AddressWidth(),
			}); err != nil {
				return Solution{}, err
			}
		case smt.Assertion:
			work = append(work, c.Term())
		}
	}

	for len(work) > 0 {
		definitions := p.definitions

		var pending []smt.Term
		for _, t := range work {
			contradiction, err := p.settle(t, &pending)
			if err != nil {
				return Solution{}, err
			}
			if contradiction != nil {
				return Solution{Verdict: Unsat, Contradiction: contradiction}, nil
			}
		}

		if len(pending) == len(work) && p.definitions == definitions {
			quote := pending[0].String()
			if len(quote) > maxQuote {
				quote = quote[:maxQuote] + "..."
			}
			return Solution{}, curated.Errorf(Undetermined, len(pending), quote)
		}

		work = pending
	}

	return Solution{Verdict: Sat, Model: &Model{p: p}}, nil
}

func (p *propagator) declare(name string, d declaration) error {
	if _, ok := p.declarations[name]; ok {
		return curated.Errorf(Redeclared, name)
	}
	p.declarations[name] = d
	return nil
}

// settle an assertion. assertions that can not be decided yet are added to
// the pending list and a contradicted assertion is returned.
func (p *propagator) settle(t smt.Term, pending *[]smt.Term) (smt.Term, error) {
	if app, ok := t.(smt.Application); ok {
		switch app.Op() {
		case smt.OpAnd:
			for _, a := range app.Args() {
				c, err := p.settle(a, pending)
				if err != nil || c != nil {
					return c, err
				}
			}
			return nil, nil

		case smt.OpImplies:
			a, err := p.eval(app.Args()[0])
			if err != nil {
				return nil, err
			}
			if !a.known() {
				*pending = append(*pending, t)
				return nil, nil
			}
			if !a.b {
				return nil, nil
			}
			return p.settle(app.Args()[1], pending)

		case smt.OpEq:
			if len(app.Args()) == 2 {
				ok, err := p.define(app.Args()[0], app.Args()[1])
				if err != nil {
					return nil, err
				}

				// the equality holds by the definition it made
				if ok {
					return nil, nil
				}
			}
		}
	}

	v, err := p.eval(t)
	if err != nil {
		return nil, err
	}
	if !v.known() {
		*pending = append(*pending, t)
		return nil, nil
	}
	if v.kind != boolean {
		return nil, curated.Errorf(Unsupported, "assertion is not boolean")
	}
	if !v.b {
		return t, nil
	}
	return nil, nil
}

// define attempts to use the equality of two terms as the definition of an
// undefined symbol or array cell. Returns true if a definition was made.
func (p *propagator) define(a, b smt.Term) (bool, error) {
	ok, err := p.defineTerm(a, b)
	if ok || err != nil {
		return ok, err
	}
	return p.defineTerm(b, a)
}

func (p *propagator) defineTerm(target smt.Term, other smt.Term) (bool, error) {
	switch target := target.(type) {
	case smt.Symbol:
		name := target.Name()
		d, ok := p.declarations[name]
		if !ok {
			return false, curated.Errorf(Undeclared, name)
		}

		if d.array {
			if _, ok := p.arrays[name]; ok {
				return false, nil
			}
		} else if _, ok := p.values[name]; ok {
			return false, nil
		}

		v, err := p.eval(other)
		if err != nil || !v.known() {
			return false, err
		}

		switch {
		case d.array && v.kind == array:
			p.arrays[name] = v.arr
		case !d.array && v.kind == bitvec && v.width == d.width:
			p.values[name] = v.v
		default:
			return false, curated.Errorf(Mismatch, name)
		}

		p.definitions++
		return true, nil

	case smt.Application:
		if target.Op() != smt.OpSelect {
			return false, nil
		}

		sym, ok := target.Args()[0].(smt.Symbol)
		if !ok {
			return false, nil
		}
		name := sym.Name()
		d, ok := p.declarations[name]
		if !ok {
			return false, curated.Errorf(Undeclared, name)
		}
		if !d.array {
			return false, curated.Errorf(Mismatch, name)
		}

		// only the cells of root arrays can be defined. an array that is
		// defined by a store or by an alias is fully determined by its
		// definition
		m, ok := p.arrays[name]
		if ok && m.parent != nil {
			return false, nil
		}

		idx, err := p.eval(target.Args()[1])
		if err != nil || !idx.known() {
			return false, err
		}
		if m != nil {
			if _, ok := m.lookup(idx.v); ok {
				return false, nil
			}
		}

		v, err := p.eval(other)
		if err != nil || !v.known() {
			return false, err
		}
		if v.kind != bitvec || v.width != d.width {
			return false, curated.Errorf(Mismatch, name)
		}

		if m == nil {
			m = newMemory(d.addressWidth, d.width)
			p.arrays[name] = m
		}
		m.cells[idx.v] = v.v

		p.definitions++
		return true, nil
	}

	return false, nil
}
