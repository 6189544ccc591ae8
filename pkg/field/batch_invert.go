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
package field

import (
	"github.com/bits-and-blooms/bitset"
)

// BatchInvert efficiently inverts the list of extension elements s, in place,
// using a single field inversion.  Zero entries are preserved as zero.
func BatchInvert(s []Ext) {
	if len(s) == 0 {
		return
	}
	//
	var (
		zero Ext
		one  = ExtOne()
		// identifies entries which are zero
		isZero = bitset.New(uint(len(s)))

		m = make([]Ext, len(s)) // m[i] = s[i] * s[i+1] * ...
	)
	//
	n := len(s) - 1
	//
	if s[n].IsZero() {
		isZero.Set(uint(n))
		s[n] = one
	}

	m[n] = s[n]

	for i := n - 1; i >= 0; i-- {
		if s[i].IsZero() {
			isZero.Set(uint(i))
			s[i] = one
		}

		m[i] = m[i+1].Mul(s[i])
	}

	inv := m[0].Inverse() // inv = s[0]⁻¹ * s[1]⁻¹ * ...

	for i := 0; i < n; i++ {
		// inv = s[i]⁻¹ * s[i+1]⁻¹ * ...
		newInv := inv.Mul(s[i])
		s[i] = inv.Mul(m[i+1])
		inv = newInv
		// inv = s[i+1]⁻¹ * s[i+2]⁻¹ * ...
		if isZero.Test(uint(i)) {
			s[i] = zero
		}
	}

	s[n] = inv

	if isZero.Test(uint(n)) {
		s[n] = zero
	}
}
