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
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VolodymyrBg/nexus-zkvm/pkg/field"
)

func TestColumnLayout(t *testing.T) {
	// Word columns occupy four limbs, byte and flag columns one.
	assert.Equal(t, uint(WordSize), Pc.Size())
	assert.Equal(t, uint(1), Ram1ValCur.Size())
	assert.Equal(t, uint(1), IsLui.Size())
	assert.Equal(t, "ValueB", ValueB.Name())
	// Offsets are consecutive and non-overlapping.
	assert.Equal(t, uint(0), Pc.Offset())
	assert.Equal(t, Pc.Offset()+Pc.Size(), PcNextAux.Offset())
	assert.Equal(t, IsAuipc.Offset()+IsAuipc.Size(), RowWidth())
}

func TestBuilderFillColumnBytes(t *testing.T) {
	builder := NewTracesBuilder(field.LogLanes)
	//
	builder.FillColumnBytes(3, ValueA, []byte{1, 2, 3, 4})
	//
	limbs := builder.Column(3, ValueA)
	require.Len(t, limbs, WordSize)
	//
	for i, limb := range limbs {
		assert.Equal(t, field.NewElement(uint64(i+1)), limb)
	}
	// Width mismatch is a programming error.
	assert.Panics(t, func() {
		builder.FillColumnBytes(0, ValueA, []byte{1})
	})
	assert.Panics(t, func() {
		builder.FillColumn(0, ValueA, field.NewElement(1))
	})
}

func TestBuilderMinimumSize(t *testing.T) {
	assert.Panics(t, func() {
		NewTracesBuilder(field.LogLanes - 1)
	})
}

func TestFinalizedLaneOrganization(t *testing.T) {
	const logSize = 6
	//
	builder := NewTracesBuilder(logSize)
	//
	for row := uint(0); row < builder.NumRows(); row++ {
		var word [WordSize]byte
		//
		for i := range word {
			word[i] = byte(row + uint(i))
		}
		//
		builder.FillColumnBytes(row, ValueB, word[:])
		builder.FillColumn(row, Ram1ValCur, field.NewElement(uint64(row%256)))
	}
	//
	finalized := builder.Finalize()
	require.Equal(t, uint(1)<<(logSize-field.LogLanes), finalized.NumLaneRows())
	// Scalar access must agree with lane access on every row.
	for row := uint(0); row < finalized.NumRows(); row++ {
		lane := finalized.Lane(ValueB, 2, row>>field.LogLanes)
		//
		assert.Equal(t, lane[row%field.NumLanes], finalized.At(row, ValueB, 2))
		assert.Equal(t, field.NewElement(uint64(row+2)), finalized.At(row, ValueB, 2))
		assert.Equal(t, field.NewElement(uint64(row%256)), finalized.At(row, Ram1ValCur, 0))
	}
}

func TestPreprocessedTraces(t *testing.T) {
	var counts [256]uint32
	//
	counts[9] = 4
	//
	preprocessed := NewPreprocessedTraces(counts)
	//
	assert.Equal(t, PreprocessedLogSize, preprocessed.LogSize())
	assert.Equal(t, field.NewElement(9), preprocessed.Value(9))
	assert.Equal(t, field.NewElement(4), preprocessed.Multiplicity(9))
	assert.True(t, preprocessed.Multiplicity(10).IsZero())
}

func TestTypeUFromBuilder(t *testing.T) {
	builder := NewTracesBuilder(field.LogLanes)
	//
	builder.FillColumn(1, IsLui, field.NewElement(1))
	builder.FillColumn(2, IsAuipc, field.NewElement(1))
	//
	assert.True(t, IsTypeU{}.FromBuilder(builder, 0).IsZero())
	assert.True(t, IsTypeU{}.FromBuilder(builder, 1).IsOne())
	assert.True(t, IsTypeU{}.FromBuilder(builder, 2).IsOne())
}

// The scalar and lane evaluation paths of the type-U predicate must agree on
// every row for any trace.
func TestTypeUScalarLaneEquivalence(t *testing.T) {
	const logSize = 5
	//
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 64
	//
	properties := gopter.NewProperties(parameters)
	//
	properties.Property("scalar and lane predicate paths agree", prop.ForAll(
		func(flags []bool) bool {
			builder := NewTracesBuilder(logSize)
			// Flags are mutually exclusive per row: even rows use IsLui, odd
			// rows IsAuipc.
			for row := uint(0); row < builder.NumRows(); row++ {
				if !flags[row] {
					continue
				}
				//
				if row%2 == 0 {
					builder.FillColumn(row, IsLui, field.NewElement(1))
				} else {
					builder.FillColumn(row, IsAuipc, field.NewElement(1))
				}
			}
			//
			finalized := builder.Finalize()
			//
			for row := uint(0); row < builder.NumRows(); row++ {
				scalar := IsTypeU{}.FromBuilder(builder, row)
				lane := IsTypeU{}.FromFinalized(finalized, row>>field.LogLanes)
				//
				if scalar != lane[row%field.NumLanes] {
					return false
				}
			}
			//
			return true
		},
		gen.SliceOfN(1<<logSize, gen.Bool()),
	))
	//
	properties.TestingRun(t)
}
