package mldsa

import "errors"

// Errors returned for malformed caller input and for the internal signing
// retry limit. Verification failure is never an error: Verify returns false.
var (
	// ErrInvalidSeedLength is returned when a key generation seed is not
	// SeedSize bytes.
	ErrInvalidSeedLength = errors.New("mldsa: invalid seed length")

	// ErrContextTooLong is returned when a signing or verification context
	// exceeds 255 bytes.
	ErrContextTooLong = errors.New("mldsa: context longer than 255 bytes")

	// ErrRetryLimit is returned when the signing rejection loop exceeds its
	// internal attempt bound. This is astronomically unlikely with correct
	// key material and indicates a defect, not a transient condition.
	ErrRetryLimit = errors.New("mldsa: signing retry limit exceeded")
)

// DecodeError reports an encoded key or signature that failed structural
// validation. It is raised before any decoded value participates in
// further arithmetic.
type DecodeError struct {
	// Field names the component that failed validation, e.g. "s1" or "hint".
	Field string
}

func (e *DecodeError) Error() string {
	return "mldsa: invalid encoding of " + e.Field
}
