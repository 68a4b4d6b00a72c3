// File: random.go
// Title: Random Hexadecimal String Generation
// Description: Generates random strings over the lowercase hexadecimal
//              alphabet by hashing blocks read from crypto/rand. Falls back
//              to a time-based unique id seed when the secure source fails.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with UUID fallback seeding

package stringx

import (
	"crypto/md5"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	coreerror "github.com/murtho/utility/core/error"
	"github.com/murtho/utility/core/log"
)

// HexAlphabet is the set of characters RandomString draws from
const HexAlphabet = "0123456789abcdef"

// blockSize is the number of random bytes hashed into each 32 character
// chunk of output
const blockSize = 32

var (
	// entropy is crypto/rand.Reader outside of tests
	entropy io.Reader = rand.Reader

	// fallbackCounter keeps fallback seeds distinct when the clock does not
	// advance between blocks
	fallbackCounter atomic.Uint64
)

// RandomString returns exactly length characters from HexAlphabet, or ""
// for length <= 0. Each 32 characters are the MD5 hex digest of a fresh
// block from crypto/rand. If the secure source fails, blocks are seeded
// from a version 1 UUID, the clock and a counter instead, and a warning is
// logged; the length guarantee holds either way.
//
// Example: RandomString(8) -> "3f9c01ab"
func RandomString(length int) string {
	if length <= 0 {
		return ""
	}

	var result strings.Builder
	result.Grow(length + md5.Size*2)

	block := make([]byte, blockSize)
	for result.Len() < length {
		sum := md5.Sum(nextBlock(block))
		result.WriteString(hex.EncodeToString(sum[:]))
	}

	return result.String()[:length]
}

// nextBlock fills block from the secure source, or returns a fallback seed
// if that fails
func nextBlock(block []byte) []byte {
	_, err := io.ReadFull(entropy, block)
	if err == nil {
		return block
	}

	log.GetDefault().WithName("stringx").LogError(
		coreerror.Wrap(err, "secure random source unavailable, using fallback seed").
			WithCode(coreerror.CodeEntropyUnavailable).
			WithSeverity(coreerror.SeverityMedium).
			WithOperation("stringx.RandomString"))

	return fallbackSeed()
}

// fallbackSeed is the low entropy seed used without a secure source. It is
// unique per call, not unpredictable.
func fallbackSeed() []byte {
	seed := make([]byte, 0, 16+8+8)

	if id, ok := timeUUID(); ok {
		seed = append(seed, id[:]...)
	}

	seed = binary.BigEndian.AppendUint64(seed, uint64(time.Now().UnixNano()))
	seed = binary.BigEndian.AppendUint64(seed, fallbackCounter.Add(1))

	return seed
}

// timeUUID returns a version 1 UUID. uuid panics when it cannot read
// crypto/rand to initialise its clock sequence or node id, which is exactly
// the situation the fallback runs in.
func timeUUID() (id uuid.UUID, ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	id, err := uuid.NewUUID()
	return id, err == nil
}
