// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package lookup

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/VolodymyrBg/nexus-zkvm/pkg/field"
)

// TraceGenerator accumulates the auxiliary logup interaction columns of one
// proving session.  Each checked limb column contributes exactly one
// interaction column holding, per lane of sixteen rows, the fraction sum
// Σ numerator/denominator over that lane.  The generator also maintains the
// session claimed sum, i.e. the total of every finalized column.
//
// Fractions are written at lane granularity and reduced pairwise before
// inversion, so the whole column costs one field inversion per lane batch
// (amortized further by batch inversion across lanes).
type TraceGenerator struct {
	logSize uint
	// Finalized interaction columns, one fraction sum per lane row.
	columns [][]field.Ext
	// Running total over all finalized columns.
	claimedSum field.Ext
	// Tracks the column currently being generated, if any.
	open bool
}

// NewTraceGenerator constructs an empty generator for traces of 2^logSize
// rows.
func NewTraceGenerator(logSize uint) *TraceGenerator {
	if logSize < field.LogLanes {
		panic(fmt.Sprintf("trace log size %d smaller than lane log size %d", logSize, field.LogLanes))
	}
	//
	return &TraceGenerator{logSize: logSize}
}

// LogSize returns the log2 of the number of trace rows.
func (g *TraceGenerator) LogSize() uint {
	return g.logSize
}

// NumLaneRows returns the number of sixteen-row lanes per column.
func (g *TraceGenerator) NumLaneRows() uint {
	return 1 << (g.logSize - field.LogLanes)
}

// NewCol opens the next interaction column.  Only one column can be open at a
// time; opening a second before finalizing the first is a contract violation.
func (g *TraceGenerator) NewCol() *ColGen {
	if g.open {
		panic("opening interaction column while previous column unfinalized")
	}
	//
	g.open = true
	//
	return &ColGen{
		gen:     g,
		nums:    make([]field.ExtLane, g.NumLaneRows()),
		denoms:  make([]field.ExtLane, g.NumLaneRows()),
		written: bitset.New(g.NumLaneRows()),
	}
}

// Columns returns all finalized interaction columns.
func (g *TraceGenerator) Columns() [][]field.Ext {
	return g.columns
}

// NumCols returns the number of finalized interaction columns.
func (g *TraceGenerator) NumCols() uint {
	return uint(len(g.columns))
}

// ClaimedSum returns the total fraction sum over all finalized columns.  For
// a valid proof this must equal the multiplicity-weighted reference table
// sum.
func (g *TraceGenerator) ClaimedSum() field.Ext {
	if g.open {
		panic("claimed sum requested while an interaction column is unfinalized")
	}
	//
	return g.claimedSum
}

// ColGen generates one interaction column.  Every lane row must be written
// before the column is finalized, and each column is finalized exactly once.
type ColGen struct {
	gen    *TraceGenerator
	nums   []field.ExtLane
	denoms []field.ExtLane
	// Lane rows written so far.
	written *bitset.BitSet
	done    bool
}

// WriteFrac records the sixteen fractions of one lane row.  Denominators are
// combined challenge values and are nonzero except with negligible
// probability; a zero denominator here means the transcript was misused.
func (c *ColGen) WriteFrac(vecRow uint, num field.ExtLane, denom field.ExtLane) {
	if c.done {
		panic("writing to finalized interaction column")
	}
	//
	for i := range denom {
		if denom[i].IsZero() {
			panic(fmt.Sprintf("zero logup denominator at lane row %d", vecRow))
		}
	}
	//
	c.nums[vecRow] = num
	c.denoms[vecRow] = denom
	c.written.Set(vecRow)
}

// FinalizeCol reduces all written fractions, appends the finished column to
// the generator and folds its total into the claimed sum.  Must be called
// exactly once per column.
func (c *ColGen) FinalizeCol() {
	if c.done {
		panic("interaction column finalized twice")
	}
	//
	if missing := uint(len(c.nums)) - c.written.Count(); missing != 0 {
		panic(fmt.Sprintf("finalizing interaction column with %d unwritten lane rows", missing))
	}
	//
	var (
		col    = make([]field.Ext, len(c.nums))
		denoms = make([]field.Ext, len(c.nums))
	)
	// Reduce each lane to a single fraction, then invert all lane
	// denominators with one field inversion.
	for vecRow := range c.nums {
		col[vecRow], denoms[vecRow] = reduceLane(c.nums[vecRow], c.denoms[vecRow])
	}
	//
	field.BatchInvert(denoms)
	//
	for vecRow := range col {
		col[vecRow] = col[vecRow].Mul(denoms[vecRow])
		c.gen.claimedSum = c.gen.claimedSum.Add(col[vecRow])
	}
	//
	c.gen.columns = append(c.gen.columns, col)
	c.gen.open = false
	c.done = true
}

// reduceLane folds sixteen fractions nᵢ/dᵢ into a single numerator and
// denominator by pairwise combination: a/b + c/d = (ad + cb)/bd.  Four
// halving levels take the lane down to one fraction without any inversion.
func reduceLane(nums field.ExtLane, denoms field.ExtLane) (field.Ext, field.Ext) {
	var (
		n = nums[:]
		d = denoms[:]
	)
	//
	for width := len(n); width > 1; width /= 2 {
		half := width / 2
		//
		for i := 0; i < half; i++ {
			a, b := n[2*i], d[2*i]
			c, e := n[2*i+1], d[2*i+1]
			//
			n[i] = a.Mul(e).Add(c.Mul(b))
			d[i] = b.Mul(e)
		}
	}
	//
	return n[0], d[0]
}
