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
	"github.com/consensys/gnark-crypto/field/koalabear"
)

// Element wraps koalabear.Element (the 31-bit field of order 2³¹ - 2²⁴ + 1)
// to provide value semantics for trace and lookup arithmetic.  Elements are
// comparable, so == gives canonical equality.
type Element struct {
	koalabear.Element
}

// NewElement constructs a base field element from a given uint64.
func NewElement(val uint64) Element {
	return Element{koalabear.NewElement(val)}
}

// Add x + y
func (x Element) Add(y Element) Element {
	var res koalabear.Element
	//
	res.Add(&x.Element, &y.Element)
	//
	return Element{res}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var res koalabear.Element
	//
	res.Sub(&x.Element, &y.Element)
	//
	return Element{res}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var res koalabear.Element
	//
	res.Mul(&x.Element, &y.Element)
	//
	return Element{res}
}

// Inverse x⁻¹, or 0 if x = 0.
func (x Element) Inverse() Element {
	var res koalabear.Element
	//
	res.Inverse(&x.Element)
	//
	return Element{res}
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element) Cmp(y Element) int {
	return x.Element.Cmp(&y.Element)
}

// IsZero implementation for the Element interface
func (x Element) IsZero() bool {
	return x.Element.IsZero()
}

// IsOne implementation for the Element interface
func (x Element) IsOne() bool {
	return x.Element.IsOne()
}

// Uint64 returns the numerical (non-Montgomery) value of x.
func (x Element) Uint64() uint64 {
	return x.Element.Uint64()
}

// IsByte checks whether x lies in the range [0,256).
func (x Element) IsByte() bool {
	return x.Element.Uint64() < 256
}

func (x Element) String() string {
	return x.Element.String()
}
