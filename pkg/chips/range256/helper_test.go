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
package range256

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/VolodymyrBg/nexus-zkvm/pkg/chips"
	"github.com/VolodymyrBg/nexus-zkvm/pkg/eval"
	"github.com/VolodymyrBg/nexus-zkvm/pkg/field"
	"github.com/VolodymyrBg/nexus-zkvm/pkg/lookup"
	"github.com/VolodymyrBg/nexus-zkvm/pkg/trace"
)

// committedTraces bundles everything the interaction and constraint phases
// produce for one finalized trace.
type committedTraces struct {
	registry   *lookup.Registry
	elements   lookup.Elements
	generator  *lookup.TraceGenerator
	finalized  *trace.FinalizedTraces
	claimedSum field.Ext
	// Multiplicity-weighted sum of the reference table.
	referenceSum field.Ext
}

// commitTraces runs the challenge and interaction phases over a finalized
// trace, mimicking the commitment step of the surrounding proof system.
func commitTraces(t *testing.T, builder *trace.TracesBuilder, side *trace.SideNote) committedTraces {
	t.Helper()
	//
	var (
		chip      = Chip{}
		registry  = lookup.NewRegistry()
		channel   = lookup.NewTranscript(lookup.ChallengeNames(Name)...)
		generator = lookup.NewTraceGenerator(builder.LogSize())
		finalized = builder.Finalize()
	)
	//
	require.NoError(t, chip.DrawLookupElements(registry, channel))
	require.NoError(t, chip.FillInteractionTrace(generator, finalized, registry))
	//
	elements, err := registry.Get(Name)
	require.NoError(t, err)
	//
	return committedTraces{
		registry:     registry,
		elements:     elements,
		generator:    generator,
		finalized:    finalized,
		claimedSum:   generator.ClaimedSum(),
		referenceSum: lookup.ReferenceSum(side.Range256.Counts(), elements),
	}
}

// assertChip checks the two soundness-critical identities of the chip over a
// fully filled builder: the constraint-side relation sum reproduces the
// interaction claimed sum exactly, and the claimed sum cancels against the
// reference table.
func assertChip(t *testing.T, builder *trace.TracesBuilder, side *trace.SideNote) {
	t.Helper()
	//
	committed := commitTraces(t, builder, side)
	//
	accumulator := eval.NewRelationAccumulator()
	require.NoError(t, chips.AddAllConstraints([]chips.MachineChip{Chip{}}, accumulator,
		committed.finalized, committed.registry))
	//
	require.Equal(t, committed.claimedSum, accumulator.Sum(),
		"constraint evaluation diverged from interaction trace")
	//
	diff := committed.claimedSum.Sub(committed.referenceSum)
	require.True(t, diff.IsZero(), "claimed-sum check failed (difference %s)", diff)
}

// fillDemoTrace drives the composition over a trace whose ValueA, ValueB and
// ValueC columns hold the rotating byte pattern (row + limb) mod 256.
func fillDemoTrace(t *testing.T, logSize uint, strict bool) (*trace.TracesBuilder, *trace.SideNote) {
	t.Helper()
	//
	var (
		builder = trace.NewTracesBuilder(logSize)
		side    = trace.NewSideNote(builder.NumRows(), strict)
	)
	//
	for row := uint(0); row < builder.NumRows(); row++ {
		var word [trace.WordSize]byte
		//
		for i := range word {
			word[i] = byte(row + uint(i))
		}
		//
		builder.FillColumnBytes(row, trace.ValueA, word[:])
		builder.FillColumnBytes(row, trace.ValueB, word[:])
		builder.FillColumnBytes(row, trace.ValueC, word[:])
	}
	//
	return builder, side
}

// numUnconditionalLimbs is the number of limbs checked unconditionally on
// every row.
const numUnconditionalLimbs = len(checkedWords)*trace.WordSize + len(checkedBytes)
