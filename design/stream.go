// SPDX-License-Identifier: MIT
// Package design: deterministic pseudo-random stream derivation.
//
// Every sampled value comes from a stream keyed by (seed, sensitivity,
// parameter-or-group, repeat index). The key is hashed with FNV-1a into the
// two PCG state words, so streams are independent of evaluation order and a
// given key always reproduces the same draw sequence.

package design

import (
	"hash/fnv"
	"math/rand/v2"
	"strconv"
)

// streamMix decouples the second PCG word from the first.
const streamMix = 0x9e3779b97f4a7c15

// streamSeed hashes the numeric seed and the key parts, separated by '|',
// into a 64-bit stream identity.
func streamSeed(seed int64, parts ...string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(strconv.FormatInt(seed, 10)))
	for _, p := range parts {
		h.Write([]byte{'|'})
		h.Write([]byte(p))
	}
	return h.Sum64()
}

// newStream builds the deterministic generator for one key.
func newStream(seed int64, parts ...string) *rand.Rand {
	s := streamSeed(seed, parts...)
	return rand.New(rand.NewPCG(s, s^streamMix))
}

// repeatKey renders a repeat index as a stream key part.
func repeatKey(i int) string { return strconv.Itoa(i) }
