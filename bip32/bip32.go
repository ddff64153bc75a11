// Package bip32 implements hierarchical deterministic key derivation as
// described in BIP32 and SLIP-0010: seed expansion into a master key, child
// key derivation over a pluggable elliptic curve, and the 78-byte
// Base58Check extended key serialization.
package bip32

import "crypto/rand"

// RecommendedSeedLen is the seed length GenerateSeed produces.
const RecommendedSeedLen = 32

// GenerateSeed generates a cryptographically random seed that can be used
// to initialize a master key.
func GenerateSeed() ([]byte, error) {
	randBytes := make([]byte, RecommendedSeedLen)
	_, err := rand.Read(randBytes)
	if err != nil {
		return nil, err
	}

	return randBytes, nil
}

// NewMasterWithPath returns a new master key based on the given seed,
// versions and curve, derived to the given path.
func NewMasterWithPath(seed []byte, versions KeyVersions, curve Curve, pathString string) (*ExtendedKey, error) {
	masterKey, err := NewMaster(seed, versions, curve)
	if err != nil {
		return nil, err
	}

	return masterKey.Path(pathString)
}
