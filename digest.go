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

// Package md4digest computes MD4 message digests behind a pluggable
// backend: the external implementation from golang.org/x/crypto, or a
// self-contained fallback derived from RFC 1320. MD4 is cryptographically
// broken; this package exists for compatibility with legacy authentication
// protocols, not for security.
package md4digest

import (
	"errors"
	"io"
)

const (
	// Size is the size of an MD4 digest in bytes.
	Size = 16
	// BlockSize is the MD4 block size in bytes.
	BlockSize = 64
)

var (
	ErrUnknownBackend  = errors.New("unknown digest backend")
	ErrDigestFinalised = errors.New("digest job already finalised")
)

// Backend selects which implementation computes the digest. The choice is
// made when a job is constructed and is fixed for the job's lifetime.
type Backend int

const (
	// BackendNative adapts the MD4 digest context from golang.org/x/crypto.
	BackendNative Backend = iota
	// BackendFallback uses the self-contained implementation in this package.
	BackendFallback
)

func (b Backend) String() string {
	switch b {
	case BackendNative:
		return "native"
	case BackendFallback:
		return "fallback"
	}
	return "unknown"
}

// DefaultBackend is the backend used by NewHash and the one-shot helpers.
// It is intended to be set at most once, during process configuration,
// before any jobs are created.
var DefaultBackend = BackendNative

// A Session is a running MD4 digest computation: feed data with Update (or
// Write), then call Final once to obtain the 16-byte digest. After Final
// the session is terminal: further Final calls return the same digest,
// Update with data fails with ErrDigestFinalised, and Update with an empty
// slice is a harmless no-op. Reset returns the session to its initial
// state.
//
// Sessions are not safe for concurrent use; callers must serialise access
// or use one session per stream.
type Session interface {
	io.Writer
	Update(data []byte) error
	Final() ([]byte, error)
	Sum() ([]byte, error)
	Reset() error
	Size() int
	BlockSize() int
}

// NewHash returns a new MD4 digest session using DefaultBackend.
func NewHash() (Session, error) {
	return NewHashWithBackend(DefaultBackend)
}

// NewHashWithBackend returns a new MD4 digest session computed by the
// given backend. Both backends produce identical digests for identical
// inputs.
func NewHashWithBackend(backend Backend) (Session, error) {
	switch backend {
	case BackendNative:
		return newNativeJob()
	case BackendFallback:
		return newFallbackJob(), nil
	}
	return nil, ErrUnknownBackend
}
