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
package lookup

import (
	"errors"
	"fmt"
)

// TableSize is the number of distinct byte values covered by the reference
// range table.
const TableSize = 256

// ErrOutOfRange signals that a checked value fell outside [0,256).  Such a
// value is always a defect in an upstream trace producer, never valid data.
var ErrOutOfRange = errors.New("checked value out of byte range")

// MultiplicityTable counts, per byte value, how many checked occurrences the
// main trace contains.  One table is exclusively owned by one proving
// session: it is mutated only during the main-trace finalize sweep and read
// once when the preprocessed range table is built.
//
// The table carries a validation mode rather than relying on build tags, so
// both behaviours are exercisable by the same test binary.  In strict mode an
// out-of-range value fails immediately; in permissive mode the increment is
// skipped, leaving the logup claimed sum provably nonzero so that
// verification of the final proof fails instead.
type MultiplicityTable struct {
	strict bool
	counts [TableSize]uint32
}

// NewMultiplicityTable constructs a zeroed table in the given validation
// mode.
func NewMultiplicityTable(strict bool) *MultiplicityTable {
	return &MultiplicityTable{strict: strict}
}

// Reset zeroes all counters, keeping the validation mode.
func (t *MultiplicityTable) Reset() {
	t.counts = [TableSize]uint32{}
}

// Strict reports the validation mode of this table.
func (t *MultiplicityTable) Strict() bool {
	return t.strict
}

// Increment records one checked occurrence of the given value.
func (t *MultiplicityTable) Increment(value uint64) error {
	if value >= TableSize {
		if t.strict {
			return fmt.Errorf("%w: %d", ErrOutOfRange, value)
		}
		// Permissive mode: drop the occurrence.  The interaction trace still
		// includes the offending value, so the claimed-sum check cannot
		// balance.
		return nil
	}
	//
	t.counts[value]++
	//
	return nil
}

// Counts returns a read-only snapshot of all counters.
func (t *MultiplicityTable) Counts() [TableSize]uint32 {
	return t.counts
}

// Total returns the number of recorded occurrences across all values.
func (t *MultiplicityTable) Total() uint64 {
	var total uint64
	//
	for _, c := range t.counts {
		total += uint64(c)
	}
	//
	return total
}
