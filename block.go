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
	"math/bits"
)

// initState is the fixed MD4 initialisation vector (RFC 1320 section 3.3).
var initState = [4]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}

// Per-round step parameters: the order in which the 16 input words are
// consumed, the left-rotation schedule (repeating every 4 steps), and the
// additive constant. The round 2 and 3 constants are the fixed-point
// representations of sqrt(2) and sqrt(3).
var (
	wordOrder = [3][16]int{
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
		{0, 4, 8, 12, 1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15},
		{0, 8, 4, 12, 2, 10, 6, 14, 1, 9, 5, 13, 3, 11, 7, 15},
	}
	shiftSched = [3][4]int{
		{3, 7, 11, 19},
		{3, 5, 9, 13},
		{3, 9, 11, 15},
	}
	roundConst = [3]uint32{0, 0x5a827999, 0x6ed9eba1}
)

// compressBlock mixes one 64-byte block into the running state: three
// 16-step rounds over the block's 16 little-endian words, then wraparound
// addition of the working variables back into the state. The state is
// never reset between blocks; the accumulation is what chains them.
func compressBlock(state *[4]uint32, block *[BlockSize]byte) {
	var x [16]uint32
	for i := range x {
		x[i] = binary.LittleEndian.Uint32(block[i*4:])
	}

	w := *state
	for round := 0; round < 3; round++ {
		for step := 0; step < 16; step++ {
			// The updated variable cycles A, D, C, B; the mixing
			// inputs are the following three variables in order.
			t := (4 - step&3) & 3
			b, c, d := w[(t+1)&3], w[(t+2)&3], w[(t+3)&3]
			var mix uint32
			switch round {
			case 0:
				mix = b&c | ^b&d
			case 1:
				mix = b&c | b&d | c&d
			default:
				mix = b ^ c ^ d
			}
			sum := w[t] + mix + x[wordOrder[round][step]] + roundConst[round]
			w[t] = bits.RotateLeft32(sum, shiftSched[round][step&3])
		}
	}

	for i := range state {
		state[i] += w[i]
	}
}
