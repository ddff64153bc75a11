package bip32

import (
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/pkg/errors"
)

const wifCompressedFlag = 0x01

// EncodeWIF serializes a raw private key in wallet import format under the
// given network version byte. The compressed flag records that addresses
// are derived from the compressed public key.
func EncodeWIF(privateKey []byte, version byte, compressed bool) (string, error) {
	if len(privateKey) != privateKeyLen {
		return "", errors.Errorf("private key length must be %d bytes but got %d",
			privateKeyLen, len(privateKey))
	}

	payload := make([]byte, 0, privateKeyLen+1)
	payload = append(payload, privateKey...)
	if compressed {
		payload = append(payload, wifCompressedFlag)
	}

	return base58.CheckEncode(payload, version), nil
}

// DecodeWIF parses a wallet import format string, returning the network
// version byte, the raw private key and the compression flag.
func DecodeWIF(wif string) (version byte, privateKey []byte, compressed bool, err error) {
	payload, version, err := base58.CheckDecode(wif)
	if err != nil {
		return 0, nil, false, errors.Wrap(err, "invalid WIF string")
	}

	switch len(payload) {
	case privateKeyLen:
		return version, payload, false, nil
	case privateKeyLen + 1:
		if payload[privateKeyLen] != wifCompressedFlag {
			return 0, nil, false, errors.Errorf("unknown WIF suffix byte 0x%02x", payload[privateKeyLen])
		}
		return version, payload[:privateKeyLen], true, nil
	default:
		return 0, nil, false, errors.Errorf("invalid WIF payload length %d", len(payload))
	}
}
