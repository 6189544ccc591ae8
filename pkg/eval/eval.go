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

// Package eval provides the scalar constraint-evaluation side of the lookup
// argument.  During AIR assembly every chip re-registers, row by row, the
// exact relation contributions its interaction trace made at lane
// granularity; the two paths must produce identical sums.
package eval

import (
	"github.com/VolodymyrBg/nexus-zkvm/pkg/field"
	"github.com/VolodymyrBg/nexus-zkvm/pkg/lookup"
	"github.com/VolodymyrBg/nexus-zkvm/pkg/trace"
)

// RowView gives scalar access to the finalized trace values of one row.  It
// is the non-vectorized counterpart of lane access.
type RowView struct {
	traces *trace.FinalizedTraces
	row    uint
}

// NewRowView constructs a view of the given row.
func NewRowView(traces *trace.FinalizedTraces, row uint) RowView {
	return RowView{traces, row}
}

// Row returns the viewed row index.
func (p RowView) Row() uint {
	return p.row
}

// Column returns all limbs of the given column on this row.
func (p RowView) Column(col trace.Column) []field.Element {
	limbs := make([]field.Element, col.Size())
	//
	for i := range limbs {
		limbs[i] = p.traces.At(p.row, col, uint(i))
	}
	//
	return limbs
}

// RelationAccumulator collects multiset-equality relation contributions
// during constraint evaluation.  Its final sum must match the interaction
// trace's claimed sum exactly; any extra, missing or differently-weighted
// contribution breaks soundness of the composed proof.
type RelationAccumulator struct {
	sum           field.Ext
	contributions uint
}

// NewRelationAccumulator constructs an empty accumulator.
func NewRelationAccumulator() *RelationAccumulator {
	return &RelationAccumulator{}
}

// AddToRelation registers one contribution numerator/(z - tuple) against the
// given lookup relation.
func (p *RelationAccumulator) AddToRelation(elems lookup.Elements, numerator field.Ext, tuple []field.Element) {
	denom := elems.Combine(tuple)
	//
	p.sum = p.sum.Add(numerator.Mul(denom.Inverse()))
	p.contributions++
}

// Sum returns the accumulated relation total.
func (p *RelationAccumulator) Sum() field.Ext {
	return p.sum
}

// NumContributions returns how many contributions have been registered.
func (p *RelationAccumulator) NumContributions() uint {
	return p.contributions
}
