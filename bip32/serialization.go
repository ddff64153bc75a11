package bip32

import (
	"encoding/binary"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/pkg/errors"
)

const (
	versionSerializationLen     = 4
	depthSerializationLen       = 1
	fingerprintSerializationLen = 4
	childNumberSerializationLen = 4
	chainCodeSerializationLen   = 32
	keySerializationLen         = 33
	checkSumLen                 = 4
)

const (
	depthOffset       = versionSerializationLen
	fingerprintOffset = depthOffset + depthSerializationLen
	childNumberOffset = fingerprintOffset + fingerprintSerializationLen
	chainCodeOffset   = childNumberOffset + childNumberSerializationLen
	keyDataOffset     = chainCodeOffset + chainCodeSerializationLen
	checkSumOffset    = keyDataOffset + keySerializationLen
)

const extendedKeySerializationLen = checkSumOffset + checkSumLen

func (extKey *ExtendedKey) serialize() ([]byte, error) {
	var serialized [extendedKeySerializationLen]byte

	if extKey.IsPrivate() {
		copy(serialized[:versionSerializationLen], extKey.Versions.Private[:])
		serialized[keyDataOffset] = 0
		copy(serialized[keyDataOffset+1:], extKey.privateKey)
	} else {
		copy(serialized[:versionSerializationLen], extKey.Versions.Public[:])
		publicKey, err := extKey.PublicKey()
		if err != nil {
			return nil, err
		}
		copy(serialized[keyDataOffset:], publicKey)
	}

	serialized[depthOffset] = extKey.Depth
	copy(serialized[fingerprintOffset:], extKey.ParentFingerprint[:])
	binary.BigEndian.PutUint32(serialized[childNumberOffset:], extKey.ChildNumber)
	copy(serialized[chainCodeOffset:], extKey.ChainCode[:])

	checkSum := calcChecksum(serialized[:checkSumOffset])
	copy(serialized[checkSumOffset:], checkSum)

	return serialized[:], nil
}

// String returns the Base58Check textual form of the extended key, selecting
// the private or public version bytes according to the key material.
func (extKey *ExtendedKey) String() string {
	serialized, err := extKey.serialize()
	if err != nil {
		panic(errors.Wrap(err, "serializing an extended key should never fail"))
	}

	return base58.Encode(serialized)
}

// Decode parses a Base58Check extended key string for the given curve. The
// version bytes must match either the private or the public member of
// versions; length, checksum and version are the only hard checks, so a
// depth-0 key with a non-zero parent fingerprint or child number is accepted
// as-is.
func Decode(extKeyString string, versions KeyVersions, curve Curve) (*ExtendedKey, error) {
	serialized := base58.Decode(extKeyString)
	if len(serialized) != extendedKeySerializationLen {
		return nil, errors.Wrapf(ErrInvalidKeyLength, "expected %d bytes but got %d",
			extendedKeySerializationLen, len(serialized))
	}

	err := validateChecksum(serialized)
	if err != nil {
		return nil, err
	}

	var version [4]byte
	copy(version[:], serialized[:versionSerializationLen])

	extKey := &ExtendedKey{
		curve:       curve,
		Versions:    versions,
		Depth:       serialized[depthOffset],
		ChildNumber: binary.BigEndian.Uint32(serialized[childNumberOffset:]),
	}
	copy(extKey.ParentFingerprint[:], serialized[fingerprintOffset:childNumberOffset])
	copy(extKey.ChainCode[:], serialized[chainCodeOffset:keyDataOffset])

	keyData := serialized[keyDataOffset:checkSumOffset]
	switch version {
	case versions.Private:
		if keyData[0] != 0 {
			return nil, errors.Errorf("expected 0 padding for private key but got %d", keyData[0])
		}

		privateKey := make([]byte, privateKeyLen)
		copy(privateKey, keyData[1:])
		err = curve.ValidatePrivateKey(privateKey)
		if err != nil {
			return nil, err
		}
		extKey.privateKey = privateKey

	case versions.Public:
		publicKey := make([]byte, keySerializationLen)
		copy(publicKey, keyData)
		err = curve.ValidatePublicKey(publicKey)
		if err != nil {
			return nil, err
		}
		extKey.publicKey = publicKey

	default:
		return nil, errors.Wrapf(ErrUnknownVersion, "version %x matches neither %x nor %x",
			version, versions.Private, versions.Public)
	}

	return extKey, nil
}
