package qr

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
)

// ErrChecksumMismatch means the submission carried a checksum that does not
// match the salted hash of its canonical string. This is a hard rejection.
var ErrChecksumMismatch = errors.New("invalid QR checksum")

// Checksum returns hex(sha256(salt || canonical)).
func Checksum(salt, canonical string) string {
	sum := sha256.Sum256([]byte(salt + canonical))
	return hex.EncodeToString(sum[:])
}

// Verify checks a submitted checksum against the configured salt.
//
// When no salt is configured or the submission carries no checksum,
// verification is skipped and (false, nil) is returned. Only a
// present-and-wrong checksum fails.
func Verify(salt, checksum, canonical string) (bool, error) {
	if salt == "" || checksum == "" {
		return false, nil
	}
	want := Checksum(salt, canonical)
	if subtle.ConstantTimeCompare([]byte(want), []byte(checksum)) != 1 {
		return false, ErrChecksumMismatch
	}
	return true, nil
}
