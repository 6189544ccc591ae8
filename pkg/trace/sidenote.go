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
	"github.com/bits-and-blooms/bitset"

	"github.com/VolodymyrBg/nexus-zkvm/pkg/lookup"
)

// SideNote is the cross-chip scratch state of one proving session.  It is
// created fresh per session, mutated only during main trace filling, and
// owned by a single goroutine throughout.
type SideNote struct {
	// Range256 counts checked byte occurrences for the range lookup.
	Range256 *lookup.MultiplicityTable
	// TypeURows records the rows on which the type-U predicate held during
	// the finalize sweep.
	TypeURows *bitset.BitSet
}

// NewSideNote constructs the session scratch state for a trace of the given
// number of rows.  The strict flag selects the validation mode of the
// multiplicity table.
func NewSideNote(numRows uint, strict bool) *SideNote {
	return &SideNote{
		Range256:  lookup.NewMultiplicityTable(strict),
		TypeURows: bitset.New(numRows),
	}
}
