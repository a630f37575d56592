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
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

var allBackends = []Backend{BackendNative, BackendFallback}

func expectError(t *testing.T, err error, expErr error) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error %s, but got none", expErr)
	}
	if !errors.Is(err, expErr) {
		t.Fatalf("Expected error %s, but got %s", expErr, err)
	}
}

func mustHash(t *testing.T, backend Backend) Session {
	t.Helper()
	hash, err := NewHashWithBackend(backend)
	if err != nil {
		t.Fatalf("Failed making %s hash: %s", backend, err)
	}
	return hash
}

func TestKnownVectors(t *testing.T) {
	for _, backend := range allBackends {
		t.Run(backend.String(), func(t *testing.T) {
			for _, v := range knownAnswers {
				got, err := backendSum(backend, []byte(v.in))
				if err != nil {
					t.Fatalf("MD4(%q): %s", v.in, err)
				}
				if got != v.sum {
					t.Errorf("MD4(%q) = %s, want %s", v.in, got, v.sum)
				}
			}
		})
	}
}

func TestOneShot(t *testing.T) {
	sum, err := MD4([]byte("abc"))
	if err != nil {
		t.Fatalf("MD4 failed: %s", err)
	}
	if len(sum) != Size {
		t.Fatalf("digest is %d bytes, want %d", len(sum), Size)
	}
	hexSum, err := MD4Hex([]byte("abc"))
	if err != nil {
		t.Fatalf("MD4Hex failed: %s", err)
	}
	if hexSum != "a448017aaf21d8525fc10ae87aa6729d" {
		t.Errorf("MD4Hex(abc) = %s", hexSum)
	}
}

func TestDefaultBackendSwitch(t *testing.T) {
	saved := DefaultBackend
	defer func() { DefaultBackend = saved }()

	DefaultBackend = BackendFallback
	hexSum, err := MD4Hex([]byte("message digest"))
	if err != nil {
		t.Fatalf("MD4Hex failed: %s", err)
	}
	if hexSum != "d9130a8164549fe818874806e1c7014b" {
		t.Errorf("fallback MD4Hex = %s", hexSum)
	}
}

func TestUnknownBackend(t *testing.T) {
	_, err := NewHashWithBackend(Backend(42))
	expectError(t, err, ErrUnknownBackend)
}

func TestDigestLength(t *testing.T) {
	for _, backend := range allBackends {
		t.Run(backend.String(), func(t *testing.T) {
			for _, n := range []int{0, 1, 63, 64, 65, 1000} {
				hash := mustHash(t, backend)
				if err := hash.Update(bytes.Repeat([]byte{0xa5}, n)); err != nil {
					t.Fatalf("Update of %d bytes failed: %s", n, err)
				}
				sum, err := hash.Final()
				if err != nil {
					t.Fatalf("Final failed: %s", err)
				}
				if len(sum) != Size {
					t.Errorf("digest of %d-byte input is %d bytes, want %d",
						n, len(sum), Size)
				}
			}
		})
	}
}

func TestPostFinalise(t *testing.T) {
	for _, backend := range allBackends {
		t.Run(backend.String(), func(t *testing.T) {
			hash := mustHash(t, backend)
			if err := hash.Update([]byte("abc")); err != nil {
				t.Fatalf("Update failed: %s", err)
			}
			first, err := hash.Final()
			if err != nil {
				t.Fatalf("Final failed: %s", err)
			}

			// Courtesy close: empty updates stay accepted.
			if err := hash.Update(nil); err != nil {
				t.Errorf("empty Update after Final failed: %s", err)
			}
			if err := hash.Update([]byte{}); err != nil {
				t.Errorf("empty Update after Final failed: %s", err)
			}

			expectError(t, hash.Update([]byte("more")), ErrDigestFinalised)
			_, err = hash.Write([]byte("more"))
			expectError(t, err, ErrDigestFinalised)

			second, err := hash.Final()
			if err != nil {
				t.Fatalf("second Final failed: %s", err)
			}
			if !bytes.Equal(first, second) {
				t.Errorf("second Final returned %x, want %x", second, first)
			}
		})
	}
}

func TestReset(t *testing.T) {
	for _, backend := range allBackends {
		t.Run(backend.String(), func(t *testing.T) {
			hash := mustHash(t, backend)
			if err := hash.Update([]byte("garbage to be discarded")); err != nil {
				t.Fatalf("Update failed: %s", err)
			}
			if _, err := hash.Final(); err != nil {
				t.Fatalf("Final failed: %s", err)
			}
			if err := hash.Reset(); err != nil {
				t.Fatalf("Reset failed: %s", err)
			}
			if err := hash.Update([]byte("a")); err != nil {
				t.Fatalf("Update after Reset failed: %s", err)
			}
			sum, err := hash.Final()
			if err != nil {
				t.Fatalf("Final after Reset failed: %s", err)
			}
			want, _ := MD4([]byte("a"))
			if !bytes.Equal(sum, want[:]) {
				t.Errorf("digest after Reset = %x, want %x", sum, want)
			}
		})
	}
}

func TestWriter(t *testing.T) {
	for _, backend := range allBackends {
		t.Run(backend.String(), func(t *testing.T) {
			hash := mustHash(t, backend)
			input := strings.Repeat("streamed input ", 100)
			if _, err := io.Copy(hash, strings.NewReader(input)); err != nil {
				t.Fatalf("io.Copy failed: %s", err)
			}
			sum, err := hash.Final()
			if err != nil {
				t.Fatalf("Final failed: %s", err)
			}
			want, err := MD4([]byte(input))
			if err != nil {
				t.Fatalf("MD4 failed: %s", err)
			}
			if !bytes.Equal(sum, want[:]) {
				t.Errorf("io.Copy digest = %x, want %x", sum, want)
			}
		})
	}
}

func TestVerifyBackends(t *testing.T) {
	if err := VerifyBackends(); err != nil {
		t.Fatalf("VerifyBackends failed: %s", err)
	}
}
