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
	"encoding/hex"
)

// MD4 computes the MD4 digest of data in one shot, using DefaultBackend.
func MD4(data []byte) (result [Size]byte, err error) {
	hash, err := NewHash()
	if err != nil {
		return result, err
	}
	if err = hash.Update(data); err != nil {
		return result, err
	}
	resultBuffer, err := hash.Sum()
	if err != nil {
		return result, err
	}
	return *(*[Size]byte)(resultBuffer), err
}

// MD4Hex computes the MD4 digest of data and renders it as 32 lowercase
// hex digits, low-order byte of each state word first.
func MD4Hex(data []byte) (string, error) {
	sum, err := MD4(data)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sum[:]), nil
}
