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
	"crypto/sha256"
	"fmt"

	fiatshamir "github.com/consensys/gnark-crypto/fiat-shamir"

	"github.com/VolodymyrBg/nexus-zkvm/pkg/field"
)

// Channel is a Fiat-Shamir transcript from which lookup challenges are drawn.
// Each named challenge can be drawn at most once, and drawing advances the
// transcript so that later challenges depend on earlier ones.
type Channel interface {
	// Draw samples the named extension field challenge from the transcript.
	Draw(name string) (field.Ext, error)
}

// Transcript implements Channel on top of the gnark-crypto Fiat-Shamir
// transcript, hashing with SHA-256.  The 32-byte challenge digest is split
// into four 8-byte chunks, each reduced into one base field limb of the
// extension element.
type Transcript struct {
	fs *fiatshamir.Transcript
}

// NewTranscript constructs a transcript with the given ordered challenge
// names.  Challenges must be drawn in registration order.
func NewTranscript(names ...string) *Transcript {
	return &Transcript{fiatshamir.NewTranscript(sha256.New(), names...)}
}

// Bind commits the given session data (e.g. a trace commitment) to the named
// challenge before it is drawn.
func (t *Transcript) Bind(name string, data []byte) error {
	return t.fs.Bind(name, data)
}

// Draw implementation for the Channel interface.
func (t *Transcript) Draw(name string) (field.Ext, error) {
	bytes, err := t.fs.ComputeChallenge(name)
	//
	if err != nil {
		return field.Ext{}, fmt.Errorf("drawing challenge %q: %w", name, err)
	}
	//
	var limbs [4]field.Element
	// Reduce each 8-byte chunk into one limb.
	for i := range limbs {
		limbs[i].SetBytes(bytes[i*8 : (i+1)*8])
	}
	//
	return field.FromLimbs(limbs), nil
}
