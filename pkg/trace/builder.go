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
package trace

import (
	"fmt"

	"github.com/VolodymyrBg/nexus-zkvm/pkg/field"
)

// TracesBuilder is the shared mutable table into which every chip writes its
// main trace columns.  It holds 2^logSize rows of RowWidth() limbs each,
// stored row-major.  Filling is strictly sequential in row order; once all
// chips have written their final values the builder is finalized into an
// immutable, lane-organized trace.
type TracesBuilder struct {
	logSize uint
	data    []field.Element
}

// NewTracesBuilder constructs a zeroed builder with 2^logSize rows.  The row
// count must cover at least one full lane.
func NewTracesBuilder(logSize uint) *TracesBuilder {
	if logSize < field.LogLanes {
		panic(fmt.Sprintf("trace log size %d smaller than lane log size %d", logSize, field.LogLanes))
	}
	//
	return &TracesBuilder{
		logSize: logSize,
		data:    make([]field.Element, (1<<logSize)*rowWidth),
	}
}

// LogSize returns the log2 of the number of rows.
func (p *TracesBuilder) LogSize() uint {
	return p.logSize
}

// NumRows returns the number of rows in this builder.
func (p *TracesBuilder) NumRows() uint {
	return 1 << p.logSize
}

// Column returns the limbs of the given column at the given row.  The slice
// aliases the builder, so writes through it mutate the trace.
func (p *TracesBuilder) Column(row uint, col Column) []field.Element {
	start := row*rowWidth + col.Offset()
	//
	return p.data[start : start+col.Size()]
}

// FillColumnBytes writes one byte per limb of the given column at the given
// row.  The byte count must match the column width.
func (p *TracesBuilder) FillColumnBytes(row uint, col Column, bytes []byte) {
	if uint(len(bytes)) != col.Size() {
		panic(fmt.Sprintf("filling %d bytes into column %s of width %d", len(bytes), col, col.Size()))
	}
	//
	limbs := p.Column(row, col)
	//
	for i, b := range bytes {
		limbs[i] = field.NewElement(uint64(b))
	}
}

// FillColumn writes a single-limb column at the given row.
func (p *TracesBuilder) FillColumn(row uint, col Column, value field.Element) {
	if col.Size() != 1 {
		panic(fmt.Sprintf("filling single value into column %s of width %d", col, col.Size()))
	}
	//
	p.Column(row, col)[0] = value
}

// SetRaw writes an arbitrary field element into one limb slot, bypassing the
// byte-width laundering of FillColumnBytes.  Only tests injecting
// out-of-range values have a legitimate use for this.
func (p *TracesBuilder) SetRaw(row uint, col Column, limb uint, value field.Element) {
	p.Column(row, col)[limb] = value
}

// Finalize reorganizes the builder into an immutable trace whose limb
// columns are stored as lanes of sixteen consecutive rows, ready for
// vectorized interaction trace generation.
func (p *TracesBuilder) Finalize() *FinalizedTraces {
	var (
		laneRows = p.NumRows() >> field.LogLanes
		lanes    = make([][]field.Lane, rowWidth)
	)
	//
	for offset := uint(0); offset < rowWidth; offset++ {
		lanes[offset] = make([]field.Lane, laneRows)
		//
		for row := uint(0); row < p.NumRows(); row++ {
			lanes[offset][row>>field.LogLanes][row%field.NumLanes] = p.data[row*rowWidth+offset]
		}
	}
	//
	return &FinalizedTraces{p.logSize, lanes}
}
