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
	"github.com/VolodymyrBg/nexus-zkvm/pkg/lookup"
)

// PreprocessedLogSize is the log2 of the preprocessed range table height,
// which holds one row per byte value.
const PreprocessedLogSize uint = 8

// PreprocessedTraces holds the reference side of the range lookup: the fixed
// column of all byte values 0..255 and the multiplicity column snapshotted
// from the session's multiplicity table once main trace filling completes.
type PreprocessedTraces struct {
	values         []field.Element
	multiplicities []field.Element
}

// NewPreprocessedTraces builds the reference table from a multiplicity
// snapshot.
func NewPreprocessedTraces(counts [lookup.TableSize]uint32) *PreprocessedTraces {
	var (
		values         = make([]field.Element, lookup.TableSize)
		multiplicities = make([]field.Element, lookup.TableSize)
	)
	//
	for v := range values {
		values[v] = field.NewElement(uint64(v))
		multiplicities[v] = field.NewElement(uint64(counts[v]))
	}
	//
	return &PreprocessedTraces{values, multiplicities}
}

// LogSize returns the log2 of the table height.
func (p *PreprocessedTraces) LogSize() uint {
	return PreprocessedLogSize
}

// Value returns the byte value on the given table row.
func (p *PreprocessedTraces) Value(row uint) field.Element {
	return p.values[row]
}

// Multiplicity returns the occurrence count on the given table row.
func (p *PreprocessedTraces) Multiplicity(row uint) field.Element {
	return p.multiplicities[row]
}
