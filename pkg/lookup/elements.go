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
	"fmt"

	"github.com/VolodymyrBg/nexus-zkvm/pkg/field"
)

// Elements is one chip's drawn lookup challenge: a random point z at which
// the multiset equality is probed, and a batching coefficient alpha for
// combining tuple entries into a single denominator.  The same Elements value
// must flow through interaction trace generation and constraint evaluation;
// any divergence breaks soundness of the composed proof.
type Elements struct {
	arity uint
	// Random evaluation point.
	Z field.Ext
	// Random linear combination coefficient.
	Alpha field.Ext
}

// DrawElements samples the challenge pair for a relation of the given arity
// from the channel.  The two draws are domain-separated under the chip name.
func DrawElements(ch Channel, name string, arity uint) (Elements, error) {
	var (
		elems Elements
		err   error
	)
	//
	elems.arity = arity
	//
	if elems.Z, err = ch.Draw(name + "/z"); err != nil {
		return elems, err
	}
	//
	if elems.Alpha, err = ch.Draw(name + "/alpha"); err != nil {
		return elems, err
	}
	//
	return elems, nil
}

// ChallengeNames returns the ordered transcript challenge identifiers
// consumed by DrawElements for a given chip name.
func ChallengeNames(name string) []string {
	return []string{name + "/z", name + "/alpha"}
}

// Arity returns the tuple width this challenge was drawn for.
func (e Elements) Arity() uint {
	return e.arity
}

// Combine folds a checked tuple into the denominator z - Σᵢ alphaⁱ·tᵢ.
// Passing a tuple of the wrong width is a programming contract violation and
// panics rather than silently producing an unsound denominator.
func (e Elements) Combine(tuple []field.Element) field.Ext {
	if uint(len(tuple)) != e.arity {
		panic(fmt.Sprintf("combining tuple of width %d against relation of arity %d", len(tuple), e.arity))
	}
	//
	var (
		res   = e.Z
		coeff = field.ExtOne()
	)
	//
	for _, t := range tuple {
		res = res.Sub(coeff.MulElement(t))
		coeff = coeff.Mul(e.Alpha)
	}
	//
	return res
}

// CombineLane is the lane-batched form of Combine, folding sixteen rows of a
// checked tuple at once.
func (e Elements) CombineLane(tuple []field.Lane) field.ExtLane {
	if uint(len(tuple)) != e.arity {
		panic(fmt.Sprintf("combining tuple of width %d against relation of arity %d", len(tuple), e.arity))
	}
	//
	var res field.ExtLane
	//
	for i := range res {
		scalar := make([]field.Element, len(tuple))
		//
		for j := range tuple {
			scalar[j] = tuple[j][i]
		}
		//
		res[i] = e.Combine(scalar)
	}
	//
	return res
}
