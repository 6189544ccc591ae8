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
	"github.com/VolodymyrBg/nexus-zkvm/pkg/field"
)

// FinalizedTraces is the immutable, lane-organized form of a fully filled
// main trace.  Limb column data is stored as batches of sixteen consecutive
// rows, which is the access pattern of interaction trace generation.
type FinalizedTraces struct {
	logSize uint
	// lanes[offset][vecRow] holds rows 16*vecRow..16*vecRow+15 of the limb
	// column at the given offset.
	lanes [][]field.Lane
}

// LogSize returns the log2 of the number of rows.
func (p *FinalizedTraces) LogSize() uint {
	return p.logSize
}

// NumRows returns the number of rows in this trace.
func (p *FinalizedTraces) NumRows() uint {
	return 1 << p.logSize
}

// NumLaneRows returns the number of sixteen-row lanes per column.
func (p *FinalizedTraces) NumLaneRows() uint {
	return p.NumRows() >> field.LogLanes
}

// LaneColumn returns all lanes of one limb of the given column.
func (p *FinalizedTraces) LaneColumn(col Column, limb uint) []field.Lane {
	return p.lanes[col.Offset()+limb]
}

// Lane returns rows 16*vecRow..16*vecRow+15 of one limb of the given column.
func (p *FinalizedTraces) Lane(col Column, limb uint, vecRow uint) field.Lane {
	return p.lanes[col.Offset()+limb][vecRow]
}

// At returns the value of one limb of the given column at the given row.
// This is the scalar access path used by constraint evaluation; it reads the
// same lane storage as the vectorized path.
func (p *FinalizedTraces) At(row uint, col Column, limb uint) field.Element {
	return p.lanes[col.Offset()+limb][row>>field.LogLanes][row%field.NumLanes]
}
