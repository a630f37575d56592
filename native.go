// Copyright (C) 2017. See AUTHORS.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package md4digest

import (
	"hash"

	"golang.org/x/crypto/md4"
)

// nativeJob adapts the external MD4 digest context to the Session
// contract. The underlying hash.Hash allows writes after Sum; the adapter
// enforces this package's stricter lifecycle on top of it.
type nativeJob struct {
	ctx      hash.Hash
	finished bool
	sum      [Size]byte
}

func newNativeJob() (*nativeJob, error) {
	return &nativeJob{ctx: md4.New()}, nil
}

// Reset initialises (and therefore resets) the digest
func (d *nativeJob) Reset() error {
	d.ctx.Reset()
	d.finished = false
	return nil
}

// Update updates a digest job
func (d *nativeJob) Update(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if d.finished {
		return ErrDigestFinalised
	}
	_, err := d.ctx.Write(data)
	return err
}

// Write writes data to be digested and returns number of bytes written
func (d *nativeJob) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if err := d.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Final finalises the digest job and returns the digest sum. Subsequent
// calls return the same sum.
func (d *nativeJob) Final() ([]byte, error) {
	if !d.finished {
		copy(d.sum[:], d.ctx.Sum(nil))
		d.finished = true
	}
	result := make([]byte, Size)
	copy(result, d.sum[:])
	return result, nil
}

// Sum finalises the digest job and returns the digest sum
func (d *nativeJob) Sum() ([]byte, error) {
	return d.Final()
}

// Size returns the size of the digest
func (d *nativeJob) Size() int { return Size }

// BlockSize returns the size of a digest block
func (d *nativeJob) BlockSize() int { return BlockSize }
