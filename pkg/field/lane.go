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

// LogLanes is the log2 of the number of rows processed together in one lane.
const LogLanes uint = 4

// NumLanes is the number of consecutive trace rows making up one lane.  All
// lane operations are elementwise with no cross-lane dependency, so they can
// be freely vectorized by the compiler.
const NumLanes uint = 1 << LogLanes

// Lane holds the base field values of sixteen consecutive trace rows.
type Lane [NumLanes]Element

// ExtLane holds sixteen consecutive extension field values.
type ExtLane [NumLanes]Ext

// LaneOfOnes constructs an extension lane with every entry set to one.
func LaneOfOnes() ExtLane {
	var (
		res ExtLane
		one = ExtOne()
	)
	//
	for i := range res {
		res[i] = one
	}
	//
	return res
}

// ZeroLane constructs an extension lane with every entry set to zero.
func ZeroLane() ExtLane {
	return ExtLane{}
}

// ExtendLane embeds a base field lane into the extension field, entry by
// entry.
func ExtendLane(x Lane) ExtLane {
	var res ExtLane
	//
	for i := range x {
		res[i] = FromElement(x[i])
	}
	//
	return res
}

// MapLane applies a scalar kernel to every entry of a pair of lanes.  The
// scalar and lane evaluation paths of a derived column both go through the
// same kernel, which keeps the two bit-for-bit identical.
func MapLane(fn func(Element, Element) Element, x Lane, y Lane) Lane {
	var res Lane
	//
	for i := range x {
		res[i] = fn(x[i], y[i])
	}
	//
	return res
}

// Sum folds the lane into a single extension field value.
func (x ExtLane) Sum() Ext {
	var res Ext
	//
	for i := range x {
		res = res.Add(x[i])
	}
	//
	return res
}
