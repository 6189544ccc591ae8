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

// Package chips defines the uniform contract implemented by every trace
// producing and checking chip, together with the driver which composes an
// ordered list of chips into one proving pipeline.
package chips

import (
	log "github.com/sirupsen/logrus"

	"github.com/VolodymyrBg/nexus-zkvm/pkg/eval"
	"github.com/VolodymyrBg/nexus-zkvm/pkg/lookup"
	"github.com/VolodymyrBg/nexus-zkvm/pkg/trace"
)

// MachineChip is the four-phase contract of one chip.  The driver invokes the
// phases once per proving session, in declaration order: challenges are drawn
// before any interaction trace is generated, main trace filling proceeds in
// ascending row order, and the finalize phase runs once after every chip has
// written its final values for every row.
type MachineChip interface {
	// Name identifies this chip in the lookup challenge registry.
	Name() string
	// DrawLookupElements samples this chip's lookup challenge from the
	// channel and registers it for the later phases.
	DrawLookupElements(registry *lookup.Registry, channel lookup.Channel) error
	// FillMainTrace writes this chip's main trace values for one row.
	FillMainTrace(builder *trace.TracesBuilder, row uint, side *trace.SideNote)
	// FinalizeMainTrace runs once after all rows have been filled by all
	// chips.  Accumulators which must observe every producer's final writes
	// do their work here.
	FinalizeMainTrace(builder *trace.TracesBuilder, side *trace.SideNote) error
	// FillInteractionTrace generates this chip's logup interaction columns
	// from the finalized main trace.
	FillInteractionTrace(gen *lookup.TraceGenerator, traces *trace.FinalizedTraces, registry *lookup.Registry) error
	// AddConstraints registers this chip's relation contributions for one
	// row during AIR assembly.  The contributions must mirror those of
	// FillInteractionTrace exactly.
	AddConstraints(acc *eval.RelationAccumulator, view eval.RowView, registry *lookup.Registry) error
}

// TranscriptChallengeNames returns the ordered challenge identifiers the
// given chip composition consumes, for constructing the session transcript.
func TranscriptChallengeNames(chips []MachineChip) []string {
	var names []string
	//
	for _, chip := range chips {
		names = append(names, lookup.ChallengeNames(chip.Name())...)
	}
	//
	return names
}

// DrawAllLookupElements runs the challenge phase for every chip.
func DrawAllLookupElements(chips []MachineChip, registry *lookup.Registry, channel lookup.Channel) error {
	for _, chip := range chips {
		if err := chip.DrawLookupElements(registry, channel); err != nil {
			return err
		}
	}
	//
	return nil
}

// FillMainTraces drives the two-phase main trace protocol: every chip's fill
// hook for every row in ascending order, then every chip's finalize hook
// exactly once.
func FillMainTraces(chips []MachineChip, builder *trace.TracesBuilder, side *trace.SideNote) error {
	for row := uint(0); row < builder.NumRows(); row++ {
		for _, chip := range chips {
			chip.FillMainTrace(builder, row, side)
		}
	}
	//
	for _, chip := range chips {
		if err := chip.FinalizeMainTrace(builder, side); err != nil {
			return err
		}
	}
	//
	log.Debugf("filled main trace (%d rows, %d chips)", builder.NumRows(), len(chips))
	//
	return nil
}

// FillInteractionTraces runs the interaction phase for every chip against the
// finalized main trace.
func FillInteractionTraces(chips []MachineChip, gen *lookup.TraceGenerator, traces *trace.FinalizedTraces,
	registry *lookup.Registry) error {
	//
	for _, chip := range chips {
		if err := chip.FillInteractionTrace(gen, traces, registry); err != nil {
			return err
		}
	}
	//
	log.Debugf("generated %d interaction columns", gen.NumCols())
	//
	return nil
}

// AddAllConstraints evaluates every chip's relation contributions on every
// row of the finalized trace.
func AddAllConstraints(chips []MachineChip, acc *eval.RelationAccumulator, traces *trace.FinalizedTraces,
	registry *lookup.Registry) error {
	//
	for row := uint(0); row < traces.NumRows(); row++ {
		view := eval.NewRowView(traces, row)
		//
		for _, chip := range chips {
			if err := chip.AddConstraints(acc, view, registry); err != nil {
				return err
			}
		}
	}
	//
	return nil
}
