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
)

// Registry holds the lookup challenges drawn by every chip in one proving
// session, keyed by chip name.  Later pipeline phases retrieve the exact
// value drawn during the challenge phase; a missing entry is a phase-ordering
// bug and is reported as an error rather than substituted with a default.
type Registry struct {
	elements map[string]Elements
}

// NewRegistry constructs an empty challenge registry for one session.
func NewRegistry() *Registry {
	return &Registry{make(map[string]Elements)}
}

// Insert registers a freshly drawn challenge under the given chip name.
// Drawing twice for the same chip is a contract violation.
func (r *Registry) Insert(name string, elems Elements) error {
	if _, ok := r.elements[name]; ok {
		return fmt.Errorf("lookup elements for %q drawn twice", name)
	}
	//
	r.elements[name] = elems
	//
	return nil
}

// Get retrieves the challenge drawn for the given chip name.
func (r *Registry) Get(name string) (Elements, error) {
	elems, ok := r.elements[name]
	//
	if !ok {
		return Elements{}, fmt.Errorf("lookup elements for %q requested before being drawn", name)
	}
	//
	return elems, nil
}

// Len returns the number of registered challenges.
func (r *Registry) Len() uint {
	return uint(len(r.elements))
}
