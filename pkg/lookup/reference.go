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
	"github.com/VolodymyrBg/nexus-zkvm/pkg/field"
)

// ReferenceSum computes the multiplicity-weighted fraction sum of the
// reference range table, Σ_{v=0}^{255} count[v]/(z - v).  The multiset
// equality statement of the whole argument is that the interaction claimed
// sum equals this value exactly.
func ReferenceSum(counts [TableSize]uint32, elems Elements) field.Ext {
	denoms := make([]field.Ext, TableSize)
	//
	for v := range denoms {
		denoms[v] = elems.Combine([]field.Element{field.NewElement(uint64(v))})
	}
	//
	field.BatchInvert(denoms)
	//
	var sum field.Ext
	//
	for v, count := range counts {
		if count == 0 {
			continue
		}
		//
		sum = sum.Add(denoms[v].MulElement(field.NewElement(uint64(count))))
	}
	//
	return sum
}
