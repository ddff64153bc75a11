package bip32

import (
	"crypto/ed25519"

	"github.com/pkg/errors"
)

// Ed25519 returns the ed25519 curve capability, following SLIP-0010.
// Only hardened derivation is possible, so public parent derivation and
// uncompressed serialization are not supported.
func Ed25519() Curve {
	return ed25519Curve{}
}

type ed25519Curve struct{}

func (ed25519Curve) Name() string {
	return "ed25519"
}

func (ed25519Curve) SeedKey() []byte {
	return []byte("ed25519 seed")
}

func (ed25519Curve) SupportsUnhardenedDerivation() bool {
	return false
}

func (ed25519Curve) ValidatePrivateKey(privateKey []byte) error {
	// Per SLIP-0010, every 32-byte string is a valid ed25519 private key.
	if len(privateKey) != privateKeyLen {
		return errors.Wrapf(ErrInvalidDerivedKey, "private key length must be %d bytes but got %d",
			privateKeyLen, len(privateKey))
	}

	return nil
}

func (ed25519Curve) ValidatePublicKey(publicKey []byte) error {
	if len(publicKey) != publicKeyLen || publicKey[0] != 0 {
		return errors.Errorf("ed25519 public key must be %d bytes with a leading zero byte", publicKeyLen)
	}

	return nil
}

func (ed25519Curve) ChildPrivateKey(parentPrivateKey []byte, il [32]byte) ([]byte, error) {
	// SLIP-0010 replaces the key entirely instead of tweaking the parent.
	child := make([]byte, privateKeyLen)
	copy(child, il[:])
	return child, nil
}

func (ed25519Curve) PublicKey(privateKey []byte) ([]byte, error) {
	if len(privateKey) != privateKeyLen {
		return nil, errors.Wrapf(ErrInvalidDerivedKey, "private key length must be %d bytes but got %d",
			privateKeyLen, len(privateKey))
	}

	point := ed25519.NewKeyFromSeed(privateKey).Public().(ed25519.PublicKey)
	return append([]byte{0x00}, point...), nil
}

func (ed25519Curve) UncompressedPublicKey(publicKey []byte) ([]byte, error) {
	return nil, errors.Errorf("ed25519 does not define an uncompressed public key form")
}

func (ed25519Curve) PointAdd(publicKey []byte, il [32]byte) ([]byte, error) {
	return nil, errors.WithStack(ErrUnhardenedNotSupported)
}
