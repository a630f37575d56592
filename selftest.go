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
	"fmt"

	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"
)

// RFC 1320 appendix A.5 test vectors.
var knownAnswers = []struct {
	in  string
	sum string
}{
	{"", "31d6cfe0d16ae931b73c59d7e0c089c0"},
	{"a", "bde52cb31de33e46245e05fbdbd6fb24"},
	{"abc", "a448017aaf21d8525fc10ae87aa6729d"},
	{"message digest", "d9130a8164549fe818874806e1c7014b"},
	{"abcdefghijklmnopqrstuvwxyz", "d79e1c308aa5bbcdeea8ed63df412da9"},
	{"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789",
		"043f8582f241db351ce627e153e7f0e4"},
	{"12345678901234567890123456789012345678901234567890123456789012345678901234567890",
		"e33b4ddc9c38f2199c3e7b164fcc0536"},
}

// VerifyBackends runs the RFC 1320 test vectors through every backend and
// returns the aggregated mismatches, or nil when all digests check out.
// Callers embedding this package can run it once at startup as an
// integrity probe before trusting either backend.
func VerifyBackends() error {
	var result *multierror.Error
	for _, backend := range []Backend{BackendNative, BackendFallback} {
		for _, v := range knownAnswers {
			got, err := backendSum(backend, []byte(v.in))
			if err != nil {
				result = multierror.Append(result, fmt.Errorf(
					"%s backend: MD4(%q): %w", backend, v.in, err))
				continue
			}
			if got != v.sum {
				log.WithFields(log.Fields{
					"backend": backend.String(),
					"got":     got,
					"want":    v.sum,
				}).Warnf("MD4 known-answer mismatch for %q", v.in)
				result = multierror.Append(result, fmt.Errorf(
					"%s backend: MD4(%q) = %s, want %s", backend, v.in, got, v.sum))
			}
		}
	}
	return result.ErrorOrNil()
}

func backendSum(backend Backend, data []byte) (string, error) {
	hash, err := NewHashWithBackend(backend)
	if err != nil {
		return "", err
	}
	if err := hash.Update(data); err != nil {
		return "", err
	}
	sum, err := hash.Final()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sum), nil
}
