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
	"encoding/binary"
)

// bitCount accumulates the number of bits processed as an 8-byte
// little-endian integer, carrying across byte boundaries. Its value is
// embedded verbatim in the final padding block. Streams longer than 2^64
// bits wrap the counter and produce a wrong length field; no practical
// stream reaches that.
type bitCount [8]byte

// add advances the counter by nbytes * 8 bits.
func (c *bitCount) add(nbytes uint64) {
	t := nbytes << 3
	for i := 0; i < len(c) && t != 0; i++ {
		t += uint64(c[i])
		c[i] = byte(t)
		t >>= 8
	}
}

// fallbackJob is the self-contained MD4 implementation, for builds that
// must not depend on the external library's behaviour.
type fallbackJob struct {
	state    [4]uint32
	count    bitCount
	buf      [BlockSize]byte
	bufLen   int
	finished bool
	sum      [Size]byte
}

func newFallbackJob() *fallbackJob {
	d := new(fallbackJob)
	d.state = initState
	return d
}

// Reset initialises (and therefore resets) the digest
func (d *fallbackJob) Reset() error {
	*d = fallbackJob{state: initState}
	return nil
}

// Update updates a digest job. Full 64-byte blocks are compressed as they
// accumulate; up to 63 trailing bytes stay buffered until more data or
// finalisation arrives.
func (d *fallbackJob) Update(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if d.finished {
		return ErrDigestFinalised
	}
	if d.bufLen > 0 {
		n := copy(d.buf[d.bufLen:], data)
		d.bufLen += n
		data = data[n:]
		if d.bufLen == BlockSize {
			compressBlock(&d.state, &d.buf)
			d.count.add(BlockSize)
			d.bufLen = 0
		}
	}
	for len(data) >= BlockSize {
		compressBlock(&d.state, (*[BlockSize]byte)(data))
		d.count.add(BlockSize)
		data = data[BlockSize:]
	}
	if len(data) > 0 {
		d.bufLen = copy(d.buf[:], data)
	}
	return nil
}

// Write writes data to be digested and returns number of bytes written
func (d *fallbackJob) Write(p []byte) (int, error) {
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
func (d *fallbackJob) Final() ([]byte, error) {
	if !d.finished {
		d.finalise()
	}
	result := make([]byte, Size)
	copy(result, d.sum[:])
	return result, nil
}

// Sum finalises the digest job and returns the digest sum
func (d *fallbackJob) Sum() ([]byte, error) {
	return d.Final()
}

// finalise pads the buffered tail per RFC 1320: a 0x80 marker byte, zero
// fill, and the 64-bit bit count at offset 56. When 56 or more bytes are
// buffered the count no longer fits and a second padding block is needed.
func (d *fallbackJob) finalise() {
	d.count.add(uint64(d.bufLen))

	var blk [BlockSize]byte
	copy(blk[:], d.buf[:d.bufLen])
	blk[d.bufLen] = 0x80
	if d.bufLen <= 55 {
		copy(blk[56:], d.count[:])
		compressBlock(&d.state, &blk)
	} else {
		compressBlock(&d.state, &blk)
		blk = [BlockSize]byte{}
		copy(blk[56:], d.count[:])
		compressBlock(&d.state, &blk)
	}

	for i, s := range d.state {
		binary.LittleEndian.PutUint32(d.sum[i*4:], s)
	}
	d.bufLen = 0
	d.finished = true
}

// Size returns the size of the digest
func (d *fallbackJob) Size() int { return Size }

// BlockSize returns the size of a digest block
func (d *fallbackJob) BlockSize() int { return BlockSize }
