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
	"strconv"

	"github.com/jetsetilly/sat6502/curated"
	"github.com/jetsetilly/sat6502/smt"
)

func (p *propagator) eval(t smt.Term) (value, error) {
	switch t := t.(type) {
	case smt.BoolConstant:
		return boolValue(t.Value()), nil

	case smt.BinaryConstant:
		return constant(t.Digits(), 2, t.Width())

	case smt.HexConstant:
		return constant(t.Digits(), 16, t.Width())

	case smt.Symbol:
		return p.lookup(t.Name())

	case smt.Application:
		return p.apply(t)
	}

	return value{}, curated.Errorf(Unsupported, t)
}

func constant(digits string, base int, width int) (value, error) {
	if width > 64 {
		return value{}, curated.Errorf(Unsupported, "constant wider than 64 bits")
	}
	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return value{}, curated.Errorf(Unsupported, err)
	}
	return bvValue(v, width), nil
}

func (p *propagator) lookup(name string) (value, error) {
	d, ok := p.declarations[name]
	if !ok {
		return value{}, curated.Errorf(Undeclared, name)
	}
	if d.array {
		if m, ok := p.arrays[name]; ok {
			return value{kind: array, arr: m}, nil
		}
		return value{}, nil
	}
	if v, ok := p.values[name]; ok {
		return bvValue(v, d.width), nil
	}
	return value{}, nil
}

func (p *propagator) args(app smt.Application) ([]value, error) {
	vals := make([]value, len(app.Args()))
	for i, a := range app.Args() {
		v, err := p.eval(a)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

func allKnown(vals []value) bool {
	for _, v := range vals {
		if !v.known() {
			return false
		}
	}
	return true
}

func (p *propagator) apply(app smt.Application) (value, error) {
	// operators that do not need every argument
	switch app.Op() {
	case smt.OpImplies:
		a, err := p.eval(app.Args()[0])
		if err != nil {
			return value{}, err
		}
		if a.known() && !a.b {
			return boolValue(true), nil
		}
		c, err := p.eval(app.Args()[1])
		if err != nil {
			return value{}, err
		}
		if c.known() && c.b {
			return boolValue(true), nil
		}
		if a.known() && c.known() {
			return boolValue(false), nil
		}
		return value{}, nil

	case smt.OpIte:
		c, err := p.eval(app.Args()[0])
		if err != nil {
			return value{}, err
		}
		if c.known() {
			if c.b {
				return p.eval(app.Args()[1])
			}
			return p.eval(app.Args()[2])
		}
		a, err := p.eval(app.Args()[1])
		if err != nil {
			return value{}, err
		}
		b, err := p.eval(app.Args()[2])
		if err != nil {
			return value{}, err
		}
		if equal(a, b) == yes {
			return a, nil
		}
		return value{}, nil
	}

	vals, err := p.args(app)
	if err != nil {
		return value{}, err
	}

	switch app.Op() {
	case smt.OpAnd:
		r := yes
		for _, v := range vals {
			if !v.known() {
				r = maybe
			} else if !v.b {
				return boolValue(false), nil
			}
		}
		return r.value(), nil

	case smt.OpOr:
		r := no
		for _, v := range vals {
			if !v.known() {
				r = maybe
			} else if v.b {
				return boolValue(true), nil
			}
		}
		return r.value(), nil

	case smt.OpEq:
		r := yes
		for i := 1; i < len(vals); i++ {
			switch equal(vals[i-1], vals[i]) {
			case no:
				return boolValue(false), nil
			case maybe:
				r = maybe
			}
		}
		return r.value(), nil

	case smt.OpDistinct:
		r := yes
		for i := range vals {
			for j := i + 1; j < len(vals); j++ {
				switch equal(vals[i], vals[j]) {
				case yes:
					return boolValue(false), nil
				case maybe:
					r = maybe
				}
			}
		}
		return r.value(), nil
	}

	if !allKnown(vals) {
		return value{}, nil
	}

	switch app.Op() {
	case smt.OpNot:
		return boolValue(!vals[0].b), nil

	case smt.OpXor:
		b := false
		for _, v := range vals {
			b = b != v.b
		}
		return boolValue(b), nil

	case smt.OpBVAdd:
		return bvValue(vals[0].v+vals[1].v, vals[0].width), nil
	case smt.OpBVSub:
		return bvValue(vals[0].v-vals[1].v, vals[0].width), nil
	case smt.OpBVAnd:
		return bvValue(vals[0].v&vals[1].v, vals[0].width), nil
	case smt.OpBVOr:
		return bvValue(vals[0].v|vals[1].v, vals[0].width), nil
	case smt.OpBVXor:
		return bvValue(vals[0].v^vals[1].v, vals[0].width), nil
	case smt.OpBVNot:
		return bvValue(^vals[0].v, vals[0].width), nil

	case smt.OpBVShl:
		if vals[1].v >= uint64(vals[0].width) {
			return bvValue(0, vals[0].width), nil
		}
		return bvValue(vals[0].v<<vals[1].v, vals[0].width), nil
	case smt.OpBVLshr:
		if vals[1].v >= uint64(vals[0].width) {
			return bvValue(0, vals[0].width), nil
		}
		return bvValue(vals[0].v>>vals[1].v, vals[0].width), nil

	case smt.OpBVUlt:
		return boolValue(vals[0].v < vals[1].v), nil
	case smt.OpBVUle:
		return boolValue(vals[0].v <= vals[1].v), nil
	case smt.OpBVUgt:
		return boolValue(vals[0].v > vals[1].v), nil
	case smt.OpBVUge:
		return boolValue(vals[0].v >= vals[1].v), nil

	case smt.OpConcat:
		w := vals[0].width + vals[1].width
		if w > 64 {
			return value{}, curated.Errorf(Unsupported, "concatenation wider than 64 bits")
		}
		return bvValue(vals[0].v<<uint(vals[1].width)|vals[1].v, w), nil

	case smt.OpExtract:
		idx := app.Indices()
		return bvValue(vals[0].v>>uint(idx[1]), idx[0]-idx[1]+1), nil

	case smt.OpZeroExtend:
		w := vals[0].width + app.Indices()[0]
		if w > 64 {
			return value{}, curated.Errorf(Unsupported, "extension wider than 64 bits")
		}
		return bvValue(vals[0].v, w), nil

	case smt.OpSelect:
		if vals[0].kind != array {
			return value{}, curated.Errorf(Unsupported, "select from a non-array")
		}
		m := vals[0].arr
		if v, ok := m.lookup(vals[1].v); ok {
			return bvValue(v, m.dataWidth), nil
		}
		return value{}, nil

	case smt.OpStore:
		if vals[0].kind != array {
			return value{}, curated.Errorf(Unsupported, "store to a non-array")
		}
		return value{kind: array, arr: vals[0].arr.store(vals[1].v, vals[2].v)}, nil
	}

	return value{}, curated.Errorf(Unsupported, app.Op())
}
