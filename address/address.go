// Package address converts serialized public keys produced by the
// derivation engine into blockchain address strings. Each encoder is a
// small immutable value capturing the network parameters it needs.
package address

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/btcsuite/btcd/txscript"
	"github.com/hdvault/hdvault/util"
	"github.com/pkg/errors"
)

const serializedPubKeyLen = 33

// Encoder encodes a 33-byte serialized public key into an address string.
type Encoder interface {
	Encode(publicKey []byte) (string, error)
}

// P2PKH encodes pay-to-pubkey-hash addresses with Base58Check.
type P2PKH struct {
	Version byte
}

// Encode implements Encoder.
func (e P2PKH) Encode(publicKey []byte) (string, error) {
	err := checkKeyLen(publicKey)
	if err != nil {
		return "", err
	}

	return base58.CheckEncode(util.Hash160(publicKey), e.Version), nil
}

// P2SHP2WPKH encodes pay-to-witness-pubkey-hash nested in pay-to-script-hash
// (BIP49) addresses with Base58Check.
type P2SHP2WPKH struct {
	Version byte
}

// Encode implements Encoder.
func (e P2SHP2WPKH) Encode(publicKey []byte) (string, error) {
	err := checkKeyLen(publicKey)
	if err != nil {
		return "", err
	}

	// Redeem script: OP_0 OP_DATA_20 <hash160(pubkey)>
	redeemScript := append([]byte{0x00, 0x14}, util.Hash160(publicKey)...)
	return base58.CheckEncode(util.Hash160(redeemScript), e.Version), nil
}

// P2WPKH encodes native segwit v0 pay-to-witness-pubkey-hash (BIP84)
// addresses with bech32.
type P2WPKH struct {
	HRP string
}

// Encode implements Encoder.
func (e P2WPKH) Encode(publicKey []byte) (string, error) {
	err := checkKeyLen(publicKey)
	if err != nil {
		return "", err
	}

	converted, err := bech32.ConvertBits(util.Hash160(publicKey), 8, 5, true)
	if err != nil {
		return "", errors.Wrap(err, "converting witness program")
	}

	return bech32.Encode(e.HRP, append([]byte{0x00}, converted...))
}

// P2TR encodes taproot (BIP86) addresses: the key-path-only tweaked output
// key as a segwit v1 program with bech32m.
type P2TR struct {
	HRP string
}

// Encode implements Encoder.
func (e P2TR) Encode(publicKey []byte) (string, error) {
	internalKey, err := btcec.ParsePubKey(publicKey)
	if err != nil {
		return "", errors.Wrap(err, "invalid internal key")
	}

	outputKey := txscript.ComputeTaprootKeyNoScript(internalKey)
	converted, err := bech32.ConvertBits(schnorr.SerializePubKey(outputKey), 8, 5, true)
	if err != nil {
		return "", errors.Wrap(err, "converting witness program")
	}

	return bech32.EncodeM(e.HRP, append([]byte{0x01}, converted...))
}

// Ed25519Raw encodes an ed25519 public key as plain Base58 of the 32-byte
// point, the form used by Solana.
type Ed25519Raw struct{}

// Encode implements Encoder.
func (e Ed25519Raw) Encode(publicKey []byte) (string, error) {
	if len(publicKey) != serializedPubKeyLen || publicKey[0] != 0 {
		return "", errors.Errorf("expected a zero-prefixed %d-byte ed25519 key", serializedPubKeyLen)
	}

	return base58.Encode(publicKey[1:]), nil
}

func checkKeyLen(publicKey []byte) error {
	if len(publicKey) != serializedPubKeyLen {
		return errors.Errorf("public key must be %d bytes but got %d", serializedPubKeyLen, len(publicKey))
	}

	return nil
}
