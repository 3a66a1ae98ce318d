package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool is a package-level pool of reusable SHA-256 hash instances.
// Image payloads can be megabytes large, so the clipboard monitor
// fingerprints every sample; pooling avoids reallocating the hash state
// on each poll tick.
var hasherPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// Fingerprint computes the SHA-256 digest of data and returns it as a
// hex-encoded string.
//
// It is used to compare clipboard samples without retaining full copies
// of their content: two samples are considered identical when their
// fingerprints match.
//
// Behavior:
//   - Retrieves a hash.Hash instance from sync.Pool
//   - Resets it, writes the data, computes the sum
//   - Resets again and returns it to the pool
//
// Example usage:
//
//	fp := utils.Fingerprint(imageBytes)
func Fingerprint(data []byte) string {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return hex.EncodeToString(sum)
}

// FingerprintString computes the SHA-256 digest of the given string.
// It is a convenience wrapper around Fingerprint for text payloads.
//
// Example usage:
//
//	fp := utils.FingerprintString("clipboard text")
func FingerprintString(data string) string {
	return Fingerprint([]byte(data))
}
