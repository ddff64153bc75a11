package bip32

// Curve supplies the per-curve key and point arithmetic that child key
// derivation is built on. Implementations must be stateless and safe for
// concurrent use; an ExtendedKey holds a single Curve for its whole
// derivation subtree.
type Curve interface {
	// Name returns the curve name, e.g. "secp256k1".
	Name() string

	// SeedKey returns the HMAC-SHA512 key used to expand a seed into a
	// master key, e.g. "Bitcoin seed" for secp256k1.
	SeedKey() []byte

	// SupportsUnhardenedDerivation reports whether the curve allows
	// deriving non-hardened children. SLIP-0010 ed25519 does not.
	SupportsUnhardenedDerivation() bool

	// ValidatePrivateKey reports whether the given 32 bytes are a valid
	// private key for the curve.
	ValidatePrivateKey(privateKey []byte) error

	// ValidatePublicKey reports whether the given serialized point is a
	// valid public key for the curve.
	ValidatePublicKey(publicKey []byte) error

	// ChildPrivateKey computes a child private key from the parent private
	// key and the left half of the derivation HMAC output. For secp256k1
	// this is (il + parent) mod N; for ed25519 it is il itself.
	ChildPrivateKey(parentPrivateKey []byte, il [32]byte) ([]byte, error)

	// PublicKey returns the 33-byte serialized public key of the given
	// private key. For secp256k1 this is the compressed point; for
	// ed25519 it is the point prefixed with a zero byte.
	PublicKey(privateKey []byte) ([]byte, error)

	// UncompressedPublicKey returns the uncompressed serialization of the
	// given 33-byte public key, on curves that define one.
	UncompressedPublicKey(publicKey []byte) ([]byte, error)

	// PointAdd computes serialize(point + il*G) for public parent
	// derivation. Curves without unhardened derivation return
	// ErrUnhardenedNotSupported.
	PointAdd(publicKey []byte, il [32]byte) ([]byte, error)
}
