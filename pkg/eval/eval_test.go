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
package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VolodymyrBg/nexus-zkvm/pkg/field"
	"github.com/VolodymyrBg/nexus-zkvm/pkg/lookup"
	"github.com/VolodymyrBg/nexus-zkvm/pkg/trace"
)

func TestRowView(t *testing.T) {
	builder := trace.NewTracesBuilder(field.LogLanes)
	//
	builder.FillColumnBytes(7, trace.ValueA, []byte{10, 20, 30, 40})
	builder.FillColumn(7, trace.Ram1ValCur, field.NewElement(99))
	//
	view := NewRowView(builder.Finalize(), 7)
	//
	assert.Equal(t, uint(7), view.Row())
	assert.Equal(t, []field.Element{
		field.NewElement(10), field.NewElement(20), field.NewElement(30), field.NewElement(40),
	}, view.Column(trace.ValueA))
	assert.Equal(t, []field.Element{field.NewElement(99)}, view.Column(trace.Ram1ValCur))
}

func TestRelationAccumulator(t *testing.T) {
	transcript := lookup.NewTranscript(lookup.ChallengeNames("test")...)
	//
	elems, err := lookup.DrawElements(transcript, "test", 1)
	require.NoError(t, err)
	//
	var (
		acc    = NewRelationAccumulator()
		one    = field.ExtOne()
		values = []uint64{3, 3, 250}
	)
	//
	var expected field.Ext
	//
	for _, v := range values {
		tuple := []field.Element{field.NewElement(v)}
		acc.AddToRelation(elems, one, tuple)
		//
		expected = expected.Add(elems.Combine(tuple).Inverse())
	}
	//
	assert.Equal(t, expected, acc.Sum())
	assert.Equal(t, uint(3), acc.NumContributions())
	// Weighted contributions scale the fraction.
	weight := field.FromElement(field.NewElement(5))
	tuple := []field.Element{field.NewElement(7)}
	//
	acc.AddToRelation(elems, weight, tuple)
	assert.Equal(t, expected.Add(weight.Mul(elems.Combine(tuple).Inverse())), acc.Sum())
}
