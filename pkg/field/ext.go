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
	"fmt"

	"github.com/consensys/gnark-crypto/field/koalabear/extensions"
)

// Ext wraps the degree-4 extension of the koalabear field.  Lookup challenges
// and logup fractions live here: soundness of the multiset argument requires
// the challenge to be drawn from a field much larger than the base field.
// Like Element, Ext is comparable and == gives canonical equality.
type Ext struct {
	extensions.E4
}

// ExtZero constructs the additive identity of the extension field.
func ExtZero() Ext {
	var res Ext
	//
	return res
}

// ExtOne constructs the multiplicative identity of the extension field.
func ExtOne() Ext {
	var res extensions.E4
	//
	res.B0.A0.SetOne()
	//
	return Ext{res}
}

// FromElement embeds a base field element into the extension field.
func FromElement(x Element) Ext {
	var res extensions.E4
	//
	res.B0.A0 = x.Element
	//
	return Ext{res}
}

// FromLimbs constructs an extension element from its four base field limbs.
func FromLimbs(limbs [4]Element) Ext {
	var res extensions.E4
	//
	res.B0.A0 = limbs[0].Element
	res.B0.A1 = limbs[1].Element
	res.B1.A0 = limbs[2].Element
	res.B1.A1 = limbs[3].Element
	//
	return Ext{res}
}

// Add x + y
func (x Ext) Add(y Ext) Ext {
	var res extensions.E4
	//
	res.Add(&x.E4, &y.E4)
	//
	return Ext{res}
}

// Sub x - y
func (x Ext) Sub(y Ext) Ext {
	var res extensions.E4
	//
	res.Sub(&x.E4, &y.E4)
	//
	return Ext{res}
}

// Mul x * y
func (x Ext) Mul(y Ext) Ext {
	var res extensions.E4
	//
	res.Mul(&x.E4, &y.E4)
	//
	return Ext{res}
}

// Inverse x⁻¹, or 0 if x = 0.
func (x Ext) Inverse() Ext {
	if x.IsZero() {
		return Ext{}
	}
	//
	var res extensions.E4
	//
	res.Inverse(&x.E4)
	//
	return Ext{res}
}

// SubElement x - y, where y is a base field element.
func (x Ext) SubElement(y Element) Ext {
	var res extensions.E4 = x.E4
	//
	res.B0.A0.Sub(&res.B0.A0, &y.Element)
	//
	return Ext{res}
}

// MulElement x * y, where y is a base field element.
func (x Ext) MulElement(y Element) Ext {
	var res extensions.E4 = x.E4
	//
	res.B0.A0.Mul(&res.B0.A0, &y.Element)
	res.B0.A1.Mul(&res.B0.A1, &y.Element)
	res.B1.A0.Mul(&res.B1.A0, &y.Element)
	res.B1.A1.Mul(&res.B1.A1, &y.Element)
	//
	return Ext{res}
}

// IsZero checks whether this value is zero (or not).
func (x Ext) IsZero() bool {
	return x.B0.A0.IsZero() && x.B0.A1.IsZero() && x.B1.A0.IsZero() && x.B1.A1.IsZero()
}

func (x Ext) String() string {
	return fmt.Sprintf("(%s,%s,%s,%s)",
		x.B0.A0.String(), x.B0.A1.String(), x.B1.A0.String(), x.B1.A1.String())
}

// Limbs returns the four base field limbs of x.
func (x Ext) Limbs() [4]Element {
	return [4]Element{
		{x.B0.A0}, {x.B0.A1}, {x.B1.A0}, {x.B1.A1},
	}
}
