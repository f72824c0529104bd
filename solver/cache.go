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
	"fmt"
	"sync"

	"github.com/jetsetilly/sat6502/smt"
)

// Cache remembers the verdicts of a backend. Formulas are identified by their
// digest. Errors are not remembered.
//
// A Cache is safe for concurrent use.
type Cache struct {
	backend Backend

	crit     sync.Mutex
	verdicts map[uint64]Result
	hits     int
	misses   int
}

// NewCache is the preferred method of initialisation for the Cache type.
func NewCache(backend Backend) *Cache {
	return &Cache{
		backend:  backend,
		verdicts: make(map[uint64]Result),
	}
}

// Name implements the Backend interface.
func (c *Cache) Name() string {
	return c.backend.Name()
}

// Check implements the Backend interface.
func (c *Cache) Check(ctx context.Context, f smt.Formula) (Result, error) {
	digest := f.Digest()

	c.crit.Lock()
	r, ok := c.verdicts[digest]
	if ok {
		c.hits++
	}
	c.crit.Unlock()

	if ok {
		return r, nil
	}

	r, err := c.backend.Check(ctx, f)
	if err != nil {
		return r, err
	}

	c.crit.Lock()
	defer c.crit.Unlock()
	c.verdicts[digest] = r
	c.misses++

	return r, nil
}

// Stats returns the number of verdicts found in the cache and the number of
// verdicts that were not.
func (c *Cache) Stats() (hits int, misses int) {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.hits, c.misses
}

func (c *Cache) String() string {
	h, m := c.Stats()
	return fmt.Sprintf("%s cache: %d hits, %d misses", c.backend.Name(), h, m)
}
