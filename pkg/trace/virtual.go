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

// IsTypeU is the derived indicator of U-type instructions (LUI and AUIPC).
// It is not stored as a trace column; it is recomputed on demand from the
// opcode flag columns during main trace filling, interaction trace
// generation and constraint evaluation.  All three paths reduce to the one
// scalar kernel below, which guarantees they agree bit-for-bit.
type IsTypeU struct{}

// typeU is the scalar kernel of the predicate.  IsLui and IsAuipc are
// mutually exclusive 0/1 flags, so their sum is itself a 0/1 value.
func typeU(isLui field.Element, isAuipc field.Element) field.Element {
	return isLui.Add(isAuipc)
}

// FromFlags evaluates the predicate from already-read flag values.  This is
// the form used during constraint evaluation, where column values arrive
// through the evaluator rather than the trace.
func (v IsTypeU) FromFlags(isLui field.Element, isAuipc field.Element) field.Element {
	return typeU(isLui, isAuipc)
}

// FromBuilder evaluates the predicate at one row of a trace under
// construction.
func (v IsTypeU) FromBuilder(builder *TracesBuilder, row uint) field.Element {
	return typeU(builder.Column(row, IsLui)[0], builder.Column(row, IsAuipc)[0])
}

// FromFinalized evaluates the predicate for a whole lane of sixteen rows of
// a finalized trace.
func (v IsTypeU) FromFinalized(traces *FinalizedTraces, vecRow uint) field.Lane {
	return field.MapLane(typeU, traces.Lane(IsLui, 0, vecRow), traces.Lane(IsAuipc, 0, vecRow))
}
