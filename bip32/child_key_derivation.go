package bip32

import (
	"encoding/binary"
	"math"

	"github.com/hdvault/hdvault/util"
	"github.com/pkg/errors"
)

// HardenedIndexStart is the first hardened child index. The top bit of the
// 32-bit child number marks hardened derivation.
const HardenedIndexStart = 0x80000000

// HardenIndex sets the hardened bit on a child index.
func HardenIndex(i uint32) uint32 {
	return i | HardenedIndexStart
}

// IsHardened reports whether the given child index is hardened.
func IsHardened(i uint32) bool {
	return i >= HardenedIndexStart
}

// Child derives the child extended key at index i. The derivation is a pure
// function of the parent key and index: repeated calls yield byte-identical
// results and the parent is never modified. Indexes at or above
// HardenedIndexStart use hardened derivation, which requires the private
// key. An invalid derived key or point is surfaced as an error; this
// function never retries with another index.
func (extKey *ExtendedKey) Child(i uint32) (*ExtendedKey, error) {
	if extKey.Depth == math.MaxUint8 {
		return nil, errors.WithStack(ErrDeriveBeyondMaxDepth)
	}

	I, err := extKey.calcI(i)
	if err != nil {
		return nil, err
	}

	var iL, iR [32]byte
	copy(iL[:], I[:32])
	copy(iR[:], I[32:])

	fingerprint, err := extKey.calcFingerprint()
	if err != nil {
		return nil, err
	}

	childExt := &ExtendedKey{
		curve:             extKey.curve,
		Versions:          extKey.Versions,
		Depth:             extKey.Depth + 1,
		ParentFingerprint: fingerprint,
		ChildNumber:       i,
		ChainCode:         iR,
	}

	if extKey.IsPrivate() {
		childExt.privateKey, err = extKey.curve.ChildPrivateKey(extKey.privateKey, iL)
		if err != nil {
			return nil, errors.Wrapf(err, "deriving private child %d", i)
		}
	} else {
		publicKey, err := extKey.PublicKey()
		if err != nil {
			return nil, err
		}

		childExt.publicKey, err = extKey.curve.PointAdd(publicKey, iL)
		if err != nil {
			return nil, errors.Wrapf(err, "deriving public child %d", i)
		}
	}

	return childExt, nil
}

func (extKey *ExtendedKey) calcI(i uint32) ([]byte, error) {
	if IsHardened(i) && !extKey.IsPrivate() {
		return nil, errors.Wrapf(ErrPrivateKeyRequired, "cannot derive hardened child %d", i)
	}
	if !IsHardened(i) && !extKey.curve.SupportsUnhardenedDerivation() {
		return nil, errors.Wrapf(ErrUnhardenedNotSupported, "cannot derive unhardened child %d on %s",
			i, extKey.curve.Name())
	}

	mac := newHMACWriter(extKey.ChainCode[:])
	if IsHardened(i) {
		mac.InfallibleWrite([]byte{0x00})
		mac.InfallibleWrite(extKey.privateKey)
	} else {
		publicKey, err := extKey.PublicKey()
		if err != nil {
			return nil, err
		}

		mac.InfallibleWrite(publicKey)
	}

	mac.InfallibleWrite(serializeUint32(i))
	return mac.Sum(nil), nil
}

func (extKey *ExtendedKey) calcFingerprint() ([4]byte, error) {
	publicKey, err := extKey.PublicKey()
	if err != nil {
		return [4]byte{}, err
	}

	hash := util.Hash160(publicKey)
	var fingerprint [4]byte
	copy(fingerprint[:], hash[:4])
	return fingerprint, nil
}

func serializeUint32(v uint32) []byte {
	serialized := make([]byte, 4)
	binary.BigEndian.PutUint32(serialized, v)
	return serialized
}
