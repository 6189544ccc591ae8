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

// Package range256 proves that every checked trace cell holds a byte value.
// Rather than one constraint per cell, it runs a single logup multiset
// argument: each checked limb contributes 1/(z - value) to a claimed sum,
// which must cancel against the multiplicity-weighted reference table of all
// 256 byte values.
package range256

import (
	"fmt"

	"github.com/VolodymyrBg/nexus-zkvm/pkg/eval"
	"github.com/VolodymyrBg/nexus-zkvm/pkg/field"
	"github.com/VolodymyrBg/nexus-zkvm/pkg/lookup"
	"github.com/VolodymyrBg/nexus-zkvm/pkg/trace"
)

// Name keys this chip's lookup challenge in the session registry.
const Name = "Range256"

// LookupArity is the tuple width of the range lookup relation: a single
// checked value per contribution.
const LookupArity = 1

// Columns whose every limb must hold a byte value.
var checkedWords = [...]trace.Column{
	trace.Pc,
	trace.PcNextAux,
	trace.InstrVal,
	trace.PrevCtr,
	trace.ValueA,
	trace.ValueB,
	trace.ValueC,
	trace.Reg1TsPrev,
	trace.Reg2TsPrev,
	trace.Reg3TsPrev,
	trace.Helper1,
	trace.ProgCtrCur,
	trace.ProgCtrPrev,
	trace.FinalPrgMemoryCtr,
	trace.CReg1TsPrev,
	trace.CReg2TsPrev,
	trace.CReg3TsPrev,
	trace.RamBaseAddr,
	trace.Ram1TsPrev,
	trace.Ram2TsPrev,
	trace.Ram3TsPrev,
	trace.Ram4TsPrev,
	trace.Ram1TsPrevAux,
	trace.Ram2TsPrevAux,
	trace.Ram3TsPrevAux,
	trace.Ram4TsPrevAux,
	trace.Rem,
	trace.Qt,
	trace.RemDiff,
	trace.RamInitFinalAddr,
	trace.RamFinalCounter,
}

// Single-limb columns whose value must be a byte.
var checkedBytes = [...]trace.Column{
	trace.Ram1ValCur,
	trace.Ram2ValCur,
	trace.Ram3ValCur,
	trace.Ram4ValCur,
	trace.Ram1ValPrev,
	trace.Ram2ValPrev,
	trace.Ram3ValPrev,
	trace.Ram4ValPrev,
	trace.RamFinalValue,
}

// Single-limb columns checked only on rows executing a U-type instruction.
var typeUCheckedBytes = [...]trace.Column{
	trace.OpC16To23,
	trace.OpC24To31,
}

// NumInteractionColumns is the exact number of interaction columns this chip
// emits: one per checked word limb, byte column and conditional column.
const NumInteractionColumns = len(checkedWords)*trace.WordSize + len(checkedBytes) + len(typeUCheckedBytes)

// Chip is the byte range-check chip.  It must be composed after every chip
// which writes into checked columns, since its finalize sweep reads their
// final values.
type Chip struct{}

// Name implementation for the MachineChip interface.
func (c Chip) Name() string {
	return Name
}

// DrawLookupElements samples the range lookup challenge and registers it for
// the interaction and constraint phases.
func (c Chip) DrawLookupElements(registry *lookup.Registry, channel lookup.Channel) error {
	elements, err := lookup.DrawElements(channel, Name, LookupArity)
	//
	if err != nil {
		return err
	}
	//
	return registry.Insert(Name, elements)
}

// FillMainTrace implementation for the MachineChip interface.  All work is
// deferred to FinalizeMainTrace: other chips may still write checked bytes
// above or below the current row during the same filling pass.
func (c Chip) FillMainTrace(builder *trace.TracesBuilder, row uint, side *trace.SideNote) {
}

// FinalizeMainTrace sweeps the fully filled trace and counts every checked
// occurrence into the multiplicity table.  Conditional columns contribute
// only on rows where the type-U predicate holds.
func (c Chip) FinalizeMainTrace(builder *trace.TracesBuilder, side *trace.SideNote) error {
	for row := uint(0); row < builder.NumRows(); row++ {
		for _, col := range checkedWords {
			if err := fillMainCols(builder.Column(row, col), row, col, side); err != nil {
				return err
			}
		}
		//
		for _, col := range checkedBytes {
			if err := fillMainCols(builder.Column(row, col), row, col, side); err != nil {
				return err
			}
		}
		//
		typeU := trace.IsTypeU{}.FromBuilder(builder, row)
		//
		if !typeU.IsZero() {
			side.TypeURows.Set(row)
			//
			for _, col := range typeUCheckedBytes {
				if err := fillMainCols(builder.Column(row, col), row, col, side); err != nil {
					return err
				}
			}
		}
	}
	//
	return nil
}

// fillMainCols counts the limbs of one checked column occurrence.  In strict
// validation mode an out-of-range limb is reported with its exact location;
// otherwise the unsound multiplicity flows through to a failing claimed-sum
// check.
func fillMainCols(limbs []field.Element, row uint, col trace.Column, side *trace.SideNote) error {
	for i, limb := range limbs {
		if err := side.Range256.Increment(limb.Uint64()); err != nil {
			return fmt.Errorf("row %d, column %s, limb %d: %w", row, col, i, err)
		}
	}
	//
	return nil
}

// FillInteractionTrace emits one logup interaction column per checked limb,
// processing sixteen rows per write.  Unconditional columns use numerator 1;
// conditional columns use the type-U predicate as numerator, so that rows
// where the predicate is 0 contribute nothing.
func (c Chip) FillInteractionTrace(gen *lookup.TraceGenerator, traces *trace.FinalizedTraces,
	registry *lookup.Registry) error {
	//
	elements, err := registry.Get(Name)
	//
	if err != nil {
		return err
	}
	// Add checked occurrences to the logup sum.
	for _, col := range checkedWords {
		for limb := uint(0); limb < col.Size(); limb++ {
			checkLimb(gen, traces, elements, col, limb)
		}
	}
	//
	for _, col := range checkedBytes {
		checkLimb(gen, traces, elements, col, 0)
	}
	//
	for _, col := range typeUCheckedBytes {
		colGen := gen.NewCol()
		//
		for vecRow, lane := range traces.LaneColumn(col, 0) {
			denom := elements.CombineLane([]field.Lane{lane})
			typeU := trace.IsTypeU{}.FromFinalized(traces, uint(vecRow))
			//
			colGen.WriteFrac(uint(vecRow), field.ExtendLane(typeU), denom)
		}
		//
		colGen.FinalizeCol()
	}
	//
	return nil
}

// checkLimb emits the interaction column of one unconditional checked limb.
func checkLimb(gen *lookup.TraceGenerator, traces *trace.FinalizedTraces, elements lookup.Elements,
	col trace.Column, limb uint) {
	//
	var (
		colGen = gen.NewCol()
		ones   = field.LaneOfOnes()
	)
	//
	for vecRow, lane := range traces.LaneColumn(col, limb) {
		denom := elements.CombineLane([]field.Lane{lane})
		//
		colGen.WriteFrac(uint(vecRow), ones, denom)
	}
	//
	colGen.FinalizeCol()
}

// AddConstraints registers, for one row, exactly the relation contributions
// which FillInteractionTrace made for that row.
func (c Chip) AddConstraints(acc *eval.RelationAccumulator, view eval.RowView, registry *lookup.Registry) error {
	elements, err := registry.Get(Name)
	//
	if err != nil {
		return err
	}
	//
	one := field.ExtOne()
	// Add checked occurrences to the logup sum.
	for _, col := range checkedWords {
		for _, limb := range view.Column(col) {
			acc.AddToRelation(elements, one, []field.Element{limb})
		}
	}
	//
	for _, col := range checkedBytes {
		acc.AddToRelation(elements, one, view.Column(col))
	}
	//
	numerator := trace.IsTypeU{}.FromFlags(view.Column(trace.IsLui)[0], view.Column(trace.IsAuipc)[0])
	//
	for _, col := range typeUCheckedBytes {
		acc.AddToRelation(elements, field.FromElement(numerator), view.Column(col))
	}
	//
	return nil
}
