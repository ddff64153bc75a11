// Package coinconf holds the per-coin, per-standard configuration consumed
// by the derivation layer: key version bytes, purpose and coin indexes,
// default paths, curve and address encoder selection. Params values are
// immutable and constructed once per coin/network pair.
package coinconf

import (
	"github.com/hdvault/hdvault/address"
	"github.com/hdvault/hdvault/bip32"
	"github.com/pkg/errors"
)

// Params describes how keys and addresses are derived and formatted for one
// coin on one network under one derivation standard.
type Params struct {
	// Name uniquely identifies the configuration, e.g. "bitcoin-bip84".
	Name string

	// Symbol is the coin ticker symbol.
	Symbol string

	// Purpose is the BIP43 purpose number (44, 49, 84, 86), without the
	// hardened bit.
	Purpose uint32

	// CoinIndex is the SLIP-0044 coin type, without the hardened bit.
	CoinIndex uint32

	// KeyVersions selects the extended key prefixes, e.g. xprv/xpub.
	KeyVersions bip32.KeyVersions

	// WIFVersion is the version byte for wallet import format private
	// keys. Only meaningful when SupportsWIF is set.
	WIFVersion byte

	// SupportsWIF reports whether the coin defines a WIF encoding.
	SupportsWIF bool

	// DefaultPath is the relative derivation path below the coin level
	// used by default-path derivation, e.g. "0'/0/0".
	DefaultPath string

	// Curve is the elliptic curve capability keys derive with.
	Curve bip32.Curve

	// AddressEncoder formats derived public keys as addresses.
	AddressEncoder address.Encoder

	// Testnet is set for test network configurations.
	Testnet bool
}

// Lookup returns the registered configuration with the given name.
func Lookup(name string) (*Params, error) {
	for _, params := range AllParams {
		if params.Name == name {
			return params, nil
		}
	}

	return nil, errors.Errorf("unknown coin configuration %q", name)
}
