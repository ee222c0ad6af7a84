package backend

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Fingerprint is a stable content hash of a value. Incremental-recompute
// caches key on fingerprints, so two structurally equal values must always
// produce the same fingerprint across processes and releases.
type Fingerprint [sha256.Size]byte

// String returns the full hex form of the fingerprint.
func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// Short returns an abbreviated hex form for logs.
func (f Fingerprint) Short() string {
	return hex.EncodeToString(f[:4])
}

// IsZero reports whether the fingerprint is unset.
func (f Fingerprint) IsZero() bool {
	return f == Fingerprint{}
}

// FingerprintOf hashes the canonical JSON encoding of v. encoding/json
// emits map keys in sorted order, so map-valued fields hash
// deterministically. Values that cannot be marshaled fall back to their Go
// syntax representation; slot types are expected to be plain data for which
// marshaling never fails.
func FingerprintOf(v any) Fingerprint {
	data, err := json.Marshal(v)
	if err != nil {
		data = []byte(fmt.Sprintf("%#v", v))
	}
	return sha256.Sum256(data)
}

// CombineFingerprints derives a single fingerprint from an ordered sequence
// of part fingerprints. Order is significant.
func CombineFingerprints(parts ...Fingerprint) Fingerprint {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p[:])
	}
	var out Fingerprint
	h.Sum(out[:0])
	return out
}
