// Package mnemonic wraps BIP39 mnemonic generation and seed expansion for
// callers that start from a phrase instead of raw seed bytes.
package mnemonic

import (
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
)

// Generate creates a new random mnemonic with the given number of words.
// Valid word counts are 12, 15, 18, 21 and 24.
func Generate(wordCount int) (string, error) {
	if wordCount < 12 || wordCount > 24 || wordCount%3 != 0 {
		return "", errors.Errorf("word count must be 12, 15, 18, 21 or 24 but got %d", wordCount)
	}

	// 11 bits per word, of which one third is checksum.
	entropyBits := wordCount * 11 * 32 / 33
	entropy, err := bip39.NewEntropy(entropyBits)
	if err != nil {
		return "", err
	}

	return bip39.NewMnemonic(entropy)
}

// Validate reports whether the given string is a well-formed BIP39 mnemonic.
func Validate(mnemonic string) error {
	if !bip39.IsMnemonicValid(mnemonic) {
		return errors.Errorf("invalid mnemonic phrase")
	}

	return nil
}

// Seed expands a mnemonic and optional passphrase into the 64-byte seed
// used for master key generation. The mnemonic is validated first.
func Seed(mnemonic, passphrase string) ([]byte, error) {
	err := Validate(mnemonic)
	if err != nil {
		return nil, err
	}

	return bip39.NewSeed(mnemonic, passphrase), nil
}
