package bip32

import (
	"sync"

	"github.com/pkg/errors"
)

const (
	privateKeyLen = 32
	publicKeyLen  = 33

	// MinSeedBytes is the minimum allowed seed length for NewMaster.
	MinSeedBytes = 16
)

// KeyVersions is the pair of network version bytes that select the textual
// prefix of a serialized extended key, e.g. xprv/xpub for Bitcoin mainnet.
type KeyVersions struct {
	Private [4]byte
	Public  [4]byte
}

// ExtendedKey is a private or public key together with the metadata needed
// to derive children from it: chain code, depth, parent fingerprint and
// child number. Instances are immutable; every derivation returns a new
// independent key, so an ExtendedKey is safe for concurrent use.
type ExtendedKey struct {
	curve      Curve
	privateKey []byte // 32-byte scalar, nil for public-only keys
	publicKey  []byte // 33-byte serialized point, computed lazily for private keys

	pubKeyOnce sync.Once
	pubKeyErr  error

	Versions          KeyVersions
	Depth             uint8
	ParentFingerprint [4]byte
	ChildNumber       uint32
	ChainCode         [32]byte
}

// NewMaster expands a seed into a master extended private key for the given
// curve, as HMAC-SHA512 of the seed under the curve's fixed key. The seed
// must be at least MinSeedBytes long; anything beyond that is up to the
// caller (typically a BIP39 seed generator).
func NewMaster(seed []byte, versions KeyVersions, curve Curve) (*ExtendedKey, error) {
	if len(seed) < MinSeedBytes {
		return nil, errors.Wrapf(ErrInvalidSeedLength, "got %d bytes", len(seed))
	}

	mac := newHMACWriter(curve.SeedKey())
	mac.InfallibleWrite(seed)
	I := mac.Sum(nil)

	var iL, iR [32]byte
	copy(iL[:], I[:32])
	copy(iR[:], I[32:])

	err := curve.ValidatePrivateKey(iL[:])
	if err != nil {
		return nil, errors.Wrap(err, "seed produced an invalid master key")
	}

	return &ExtendedKey{
		curve:             curve,
		privateKey:        iL[:],
		Versions:          versions,
		Depth:             0,
		ParentFingerprint: [4]byte{},
		ChildNumber:       0,
		ChainCode:         iR,
	}, nil
}

// FromPrivateKey wraps a raw private key as a depth-0 extended key with a
// zero chain code. The result has no real derivation history, so anything
// derived from it is specific to this library rather than to a seed.
func FromPrivateKey(privateKey []byte, versions KeyVersions, curve Curve) (*ExtendedKey, error) {
	err := curve.ValidatePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}

	key := make([]byte, privateKeyLen)
	copy(key, privateKey)

	return &ExtendedKey{
		curve:      curve,
		privateKey: key,
		Versions:   versions,
	}, nil
}

// Curve returns the curve capability this key derives with.
func (extKey *ExtendedKey) Curve() Curve {
	return extKey.curve
}

// IsPrivate reports whether the key holds a private scalar.
func (extKey *ExtendedKey) IsPrivate() bool {
	return extKey.privateKey != nil
}

// IsPublicOnly reports whether only the public point is known.
func (extKey *ExtendedKey) IsPublicOnly() bool {
	return !extKey.IsPrivate()
}

// PrivateKey returns a copy of the raw 32-byte private key.
func (extKey *ExtendedKey) PrivateKey() ([]byte, error) {
	if extKey.IsPublicOnly() {
		return nil, errors.WithStack(ErrNotPrivate)
	}

	key := make([]byte, privateKeyLen)
	copy(key, extKey.privateKey)
	return key, nil
}

// PublicKey returns the 33-byte serialized public key. For private keys the
// point is computed once and memoized; recomputation would yield the same
// bytes, the cache is just a convenience.
func (extKey *ExtendedKey) PublicKey() ([]byte, error) {
	extKey.pubKeyOnce.Do(func() {
		if extKey.publicKey != nil {
			return
		}
		extKey.publicKey, extKey.pubKeyErr = extKey.curve.PublicKey(extKey.privateKey)
	})

	return extKey.publicKey, extKey.pubKeyErr
}

// UncompressedPublicKey returns the uncompressed serialization of the
// public key, on curves that define one.
func (extKey *ExtendedKey) UncompressedPublicKey() ([]byte, error) {
	publicKey, err := extKey.PublicKey()
	if err != nil {
		return nil, err
	}

	return extKey.curve.UncompressedPublicKey(publicKey)
}

// Public strips the private key, returning an extended key from which only
// non-hardened public derivation is possible. Calling Public on a
// public-only key returns the key itself.
func (extKey *ExtendedKey) Public() (*ExtendedKey, error) {
	if extKey.IsPublicOnly() {
		return extKey, nil
	}

	publicKey, err := extKey.PublicKey()
	if err != nil {
		return nil, err
	}

	return &ExtendedKey{
		curve:             extKey.curve,
		publicKey:         publicKey,
		Versions:          extKey.Versions,
		Depth:             extKey.Depth,
		ParentFingerprint: extKey.ParentFingerprint,
		ChildNumber:       extKey.ChildNumber,
		ChainCode:         extKey.ChainCode,
	}, nil
}
