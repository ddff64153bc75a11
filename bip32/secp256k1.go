package bip32

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/pkg/errors"
)

// Secp256k1 returns the secp256k1 curve capability, following the rules of
// the original BIP32 specification.
func Secp256k1() Curve {
	return secp256k1Curve{}
}

type secp256k1Curve struct{}

func (secp256k1Curve) Name() string {
	return "secp256k1"
}

func (secp256k1Curve) SeedKey() []byte {
	return []byte("Bitcoin seed")
}

func (secp256k1Curve) SupportsUnhardenedDerivation() bool {
	return true
}

func (secp256k1Curve) ValidatePrivateKey(privateKey []byte) error {
	if len(privateKey) != privateKeyLen {
		return errors.Wrapf(ErrInvalidDerivedKey, "private key length must be %d bytes but got %d",
			privateKeyLen, len(privateKey))
	}

	var scalar btcec.ModNScalar
	overflow := scalar.SetByteSlice(privateKey)
	if overflow || scalar.IsZero() {
		return errors.WithStack(ErrInvalidDerivedKey)
	}

	return nil
}

func (secp256k1Curve) ValidatePublicKey(publicKey []byte) error {
	_, err := btcec.ParsePubKey(publicKey)
	if err != nil {
		return errors.Wrap(err, "invalid secp256k1 public key")
	}

	return nil
}

func (secp256k1Curve) ChildPrivateKey(parentPrivateKey []byte, il [32]byte) ([]byte, error) {
	var tweak btcec.ModNScalar
	if overflow := tweak.SetBytes(&il); overflow != 0 {
		return nil, errors.WithStack(ErrInvalidDerivedKey)
	}

	var parent btcec.ModNScalar
	if overflow := parent.SetByteSlice(parentPrivateKey); overflow {
		return nil, errors.WithStack(ErrInvalidDerivedKey)
	}

	tweak.Add(&parent)
	if tweak.IsZero() {
		return nil, errors.WithStack(ErrInvalidDerivedKey)
	}

	child := tweak.Bytes()
	return child[:], nil
}

func (secp256k1Curve) PublicKey(privateKey []byte) ([]byte, error) {
	_, pubKey := btcec.PrivKeyFromBytes(privateKey)
	return pubKey.SerializeCompressed(), nil
}

func (secp256k1Curve) UncompressedPublicKey(publicKey []byte) ([]byte, error) {
	pubKey, err := btcec.ParsePubKey(publicKey)
	if err != nil {
		return nil, errors.Wrap(err, "invalid secp256k1 public key")
	}

	return pubKey.SerializeUncompressed(), nil
}

func (secp256k1Curve) PointAdd(publicKey []byte, il [32]byte) ([]byte, error) {
	var tweak btcec.ModNScalar
	if overflow := tweak.SetBytes(&il); overflow != 0 {
		return nil, errors.WithStack(ErrInvalidDerivedKey)
	}

	pubKey, err := btcec.ParsePubKey(publicKey)
	if err != nil {
		return nil, errors.Wrap(err, "invalid secp256k1 public key")
	}

	var tweakPoint, parentPoint, childPoint btcec.JacobianPoint
	btcec.ScalarBaseMultNonConst(&tweak, &tweakPoint)
	pubKey.AsJacobian(&parentPoint)
	btcec.AddNonConst(&tweakPoint, &parentPoint, &childPoint)

	if childPoint.Z.IsZero() {
		return nil, errors.WithStack(ErrInvalidDerivedPoint)
	}
	childPoint.ToAffine()

	return btcec.NewPublicKey(&childPoint.X, &childPoint.Y).SerializeCompressed(), nil
}
