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

// WordSize is the number of byte limbs occupied by one machine word column.
const WordSize = 4

// Column identifies one named column of the execution trace.  A column
// occupies one or more consecutive limb slots per row: word columns hold one
// limb per byte of the word, byte and flag columns hold a single limb.
type Column uint

const (
	// Pc is the current program counter.
	Pc Column = iota
	// PcNextAux is the auxiliary next program counter.
	PcNextAux
	// InstrVal is the raw instruction word.
	InstrVal
	// PrevCtr is the previous access counter.
	PrevCtr
	// ValueA is the first arithmetic operand.
	ValueA
	// ValueB is the second arithmetic operand.
	ValueB
	// ValueC is the third arithmetic operand.
	ValueC
	// Reg1TsPrev..Reg3TsPrev are previous register access timestamps.
	Reg1TsPrev
	Reg2TsPrev
	Reg3TsPrev
	// Helper1 is an arithmetic helper word.
	Helper1
	// ProgCtrCur is the current program memory access counter.
	ProgCtrCur
	// ProgCtrPrev is the previous program memory access counter.
	ProgCtrPrev
	// FinalPrgMemoryCtr is the final program memory access counter.
	FinalPrgMemoryCtr
	// CReg1TsPrev..CReg3TsPrev are carry helpers for register timestamps.
	CReg1TsPrev
	CReg2TsPrev
	CReg3TsPrev
	// RamBaseAddr is the base address of a RAM access.
	RamBaseAddr
	// Ram1TsPrev..Ram4TsPrev are previous RAM access timestamps.
	Ram1TsPrev
	Ram2TsPrev
	Ram3TsPrev
	Ram4TsPrev
	// Ram1TsPrevAux..Ram4TsPrevAux are timestamp comparison helpers.
	Ram1TsPrevAux
	Ram2TsPrevAux
	Ram3TsPrevAux
	Ram4TsPrevAux
	// Rem is the division remainder helper.
	Rem
	// Qt is the division quotient helper.
	Qt
	// RemDiff is the remainder comparison helper.
	RemDiff
	// RamInitFinalAddr is the initial/final RAM address column.
	RamInitFinalAddr
	// RamFinalCounter is the final RAM access counter.
	RamFinalCounter
	// Ram1ValCur..Ram4ValCur are current RAM byte values.
	Ram1ValCur
	Ram2ValCur
	Ram3ValCur
	Ram4ValCur
	// Ram1ValPrev..Ram4ValPrev are previous RAM byte values.
	Ram1ValPrev
	Ram2ValPrev
	Ram3ValPrev
	Ram4ValPrev
	// RamFinalValue is the final RAM byte value.
	RamFinalValue
	// OpC16To23 holds bits 16..23 of the immediate operand.
	OpC16To23
	// OpC24To31 holds bits 24..31 of the immediate operand.
	OpC24To31
	// IsLui flags LUI instructions.
	IsLui
	// IsAuipc flags AUIPC instructions.
	IsAuipc
	// NumColumns counts the named columns above.
	NumColumns
)

type columnInfo struct {
	name string
	size uint
}

var columns = [NumColumns]columnInfo{
	Pc:                {"Pc", WordSize},
	PcNextAux:         {"PcNextAux", WordSize},
	InstrVal:          {"InstrVal", WordSize},
	PrevCtr:           {"PrevCtr", WordSize},
	ValueA:            {"ValueA", WordSize},
	ValueB:            {"ValueB", WordSize},
	ValueC:            {"ValueC", WordSize},
	Reg1TsPrev:        {"Reg1TsPrev", WordSize},
	Reg2TsPrev:        {"Reg2TsPrev", WordSize},
	Reg3TsPrev:        {"Reg3TsPrev", WordSize},
	Helper1:           {"Helper1", WordSize},
	ProgCtrCur:        {"ProgCtrCur", WordSize},
	ProgCtrPrev:       {"ProgCtrPrev", WordSize},
	FinalPrgMemoryCtr: {"FinalPrgMemoryCtr", WordSize},
	CReg1TsPrev:       {"CReg1TsPrev", WordSize},
	CReg2TsPrev:       {"CReg2TsPrev", WordSize},
	CReg3TsPrev:       {"CReg3TsPrev", WordSize},
	RamBaseAddr:       {"RamBaseAddr", WordSize},
	Ram1TsPrev:        {"Ram1TsPrev", WordSize},
	Ram2TsPrev:        {"Ram2TsPrev", WordSize},
	Ram3TsPrev:        {"Ram3TsPrev", WordSize},
	Ram4TsPrev:        {"Ram4TsPrev", WordSize},
	Ram1TsPrevAux:     {"Ram1TsPrevAux", WordSize},
	Ram2TsPrevAux:     {"Ram2TsPrevAux", WordSize},
	Ram3TsPrevAux:     {"Ram3TsPrevAux", WordSize},
	Ram4TsPrevAux:     {"Ram4TsPrevAux", WordSize},
	Rem:               {"Rem", WordSize},
	Qt:                {"Qt", WordSize},
	RemDiff:           {"RemDiff", WordSize},
	RamInitFinalAddr:  {"RamInitFinalAddr", WordSize},
	RamFinalCounter:   {"RamFinalCounter", WordSize},
	Ram1ValCur:        {"Ram1ValCur", 1},
	Ram2ValCur:        {"Ram2ValCur", 1},
	Ram3ValCur:        {"Ram3ValCur", 1},
	Ram4ValCur:        {"Ram4ValCur", 1},
	Ram1ValPrev:       {"Ram1ValPrev", 1},
	Ram2ValPrev:       {"Ram2ValPrev", 1},
	Ram3ValPrev:       {"Ram3ValPrev", 1},
	Ram4ValPrev:       {"Ram4ValPrev", 1},
	RamFinalValue:     {"RamFinalValue", 1},
	OpC16To23:         {"OpC16To23", 1},
	OpC24To31:         {"OpC24To31", 1},
	IsLui:             {"IsLui", 1},
	IsAuipc:           {"IsAuipc", 1},
}

// Limb offset of each column within one row, and the total row width.
var (
	offsets  [NumColumns]uint
	rowWidth uint
)

func init() {
	var offset uint
	//
	for col := Column(0); col < NumColumns; col++ {
		offsets[col] = offset
		offset += columns[col].size
	}
	//
	rowWidth = offset
}

// Name returns the name of this column.
func (c Column) Name() string {
	return columns[c].name
}

// Size returns the number of limbs this column occupies per row.
func (c Column) Size() uint {
	return columns[c].size
}

// Offset returns the limb offset of this column within a row.
func (c Column) Offset() uint {
	return offsets[c]
}

func (c Column) String() string {
	return columns[c].name
}

// RowWidth returns the total number of limb slots per trace row.
func RowWidth() uint {
	return rowWidth
}
