package bip32

import "github.com/pkg/errors"

// Derivation errors. These are returned from key derivation when the
// requested operation is impossible for the given key, or when the HMAC
// output does not map to a valid key on the curve. Derivation is never
// retried internally with a different index; the caller decides.
var (
	// ErrPrivateKeyRequired is returned when hardened derivation is
	// attempted on a public-only extended key.
	ErrPrivateKeyRequired = errors.New("private key required for hardened derivation")

	// ErrUnhardenedNotSupported is returned for a non-hardened child index
	// on a curve that only supports hardened derivation.
	ErrUnhardenedNotSupported = errors.New("curve does not support unhardened derivation")

	// ErrInvalidDerivedKey is returned when the derived scalar is zero or
	// not lower than the curve order.
	ErrInvalidDerivedKey = errors.New("derived key is invalid for the curve")

	// ErrInvalidDerivedPoint is returned when public derivation results in
	// the point at infinity.
	ErrInvalidDerivedPoint = errors.New("derived point is invalid for the curve")

	// ErrDeriveBeyondMaxDepth is returned when the parent key already has
	// the maximum possible depth.
	ErrDeriveBeyondMaxDepth = errors.New("cannot derive a key with depth greater than 255")
)

// Validation errors, returned when decoding serialized key material.
var (
	// ErrInvalidKeyLength is returned when a serialized extended key does
	// not decode to exactly 82 bytes.
	ErrInvalidKeyLength = errors.New("invalid extended key length")

	// ErrBadChecksum is returned when the embedded checksum of a
	// serialized extended key does not match its payload.
	ErrBadChecksum = errors.New("bad extended key checksum")

	// ErrUnknownVersion is returned when the version bytes of a serialized
	// extended key match neither the expected private nor public version.
	ErrUnknownVersion = errors.New("unknown extended key version")

	// ErrInvalidSeedLength is returned when a master key seed is shorter
	// than MinSeedBytes.
	ErrInvalidSeedLength = errors.New("seed must be at least 16 bytes")

	// ErrNotPrivate is returned when an operation that needs the private
	// key is called on a public-only extended key.
	ErrNotPrivate = errors.New("extended key is public-only")
)
