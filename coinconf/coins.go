package coinconf

import (
	"github.com/hdvault/hdvault/address"
	"github.com/hdvault/hdvault/bip32"
)

// Extended key version byte pairs, per SLIP-0132.
var (
	bitcoinMainNetVersions = bip32.KeyVersions{ // xprv / xpub
		Private: [4]byte{0x04, 0x88, 0xAD, 0xE4},
		Public:  [4]byte{0x04, 0x88, 0xB2, 0x1E},
	}
	bitcoinTestNetVersions = bip32.KeyVersions{ // tprv / tpub
		Private: [4]byte{0x04, 0x35, 0x83, 0x94},
		Public:  [4]byte{0x04, 0x35, 0x87, 0xCF},
	}
	bitcoinMainNetP2SHVersions = bip32.KeyVersions{ // yprv / ypub
		Private: [4]byte{0x04, 0x9D, 0x78, 0x78},
		Public:  [4]byte{0x04, 0x9D, 0x7C, 0xB2},
	}
	bitcoinTestNetP2SHVersions = bip32.KeyVersions{ // uprv / upub
		Private: [4]byte{0x04, 0x4A, 0x4E, 0x28},
		Public:  [4]byte{0x04, 0x4A, 0x52, 0x62},
	}
	bitcoinMainNetSegwitVersions = bip32.KeyVersions{ // zprv / zpub
		Private: [4]byte{0x04, 0xB2, 0x43, 0x0C},
		Public:  [4]byte{0x04, 0xB2, 0x47, 0x46},
	}
	bitcoinTestNetSegwitVersions = bip32.KeyVersions{ // vprv / vpub
		Private: [4]byte{0x04, 0x5F, 0x18, 0xBC},
		Public:  [4]byte{0x04, 0x5F, 0x1C, 0xF6},
	}
	dogecoinMainNetVersions = bip32.KeyVersions{ // dgpv / dgub
		Private: [4]byte{0x02, 0xFA, 0xC3, 0x98},
		Public:  [4]byte{0x02, 0xFA, 0xCA, 0xFD},
	}
)

const notHardenedDefaultPath = "0'/0/0"

// BitcoinMainNetBIP44 is the configuration for BIP44 (P2PKH) Bitcoin.
var BitcoinMainNetBIP44 = &Params{
	Name:           "bitcoin-bip44",
	Symbol:         "BTC",
	Purpose:        44,
	CoinIndex:      0,
	KeyVersions:    bitcoinMainNetVersions,
	WIFVersion:     0x80,
	SupportsWIF:    true,
	DefaultPath:    notHardenedDefaultPath,
	Curve:          bip32.Secp256k1(),
	AddressEncoder: address.P2PKH{Version: 0x00},
}

// BitcoinMainNetBIP49 is the configuration for BIP49 (P2SH-P2WPKH) Bitcoin.
var BitcoinMainNetBIP49 = &Params{
	Name:           "bitcoin-bip49",
	Symbol:         "BTC",
	Purpose:        49,
	CoinIndex:      0,
	KeyVersions:    bitcoinMainNetP2SHVersions,
	WIFVersion:     0x80,
	SupportsWIF:    true,
	DefaultPath:    notHardenedDefaultPath,
	Curve:          bip32.Secp256k1(),
	AddressEncoder: address.P2SHP2WPKH{Version: 0x05},
}

// BitcoinMainNetBIP84 is the configuration for BIP84 (P2WPKH) Bitcoin.
var BitcoinMainNetBIP84 = &Params{
	Name:           "bitcoin-bip84",
	Symbol:         "BTC",
	Purpose:        84,
	CoinIndex:      0,
	KeyVersions:    bitcoinMainNetSegwitVersions,
	WIFVersion:     0x80,
	SupportsWIF:    true,
	DefaultPath:    notHardenedDefaultPath,
	Curve:          bip32.Secp256k1(),
	AddressEncoder: address.P2WPKH{HRP: "bc"},
}

// BitcoinMainNetBIP86 is the configuration for BIP86 (P2TR) Bitcoin.
var BitcoinMainNetBIP86 = &Params{
	Name:           "bitcoin-bip86",
	Symbol:         "BTC",
	Purpose:        86,
	CoinIndex:      0,
	KeyVersions:    bitcoinMainNetVersions,
	WIFVersion:     0x80,
	SupportsWIF:    true,
	DefaultPath:    notHardenedDefaultPath,
	Curve:          bip32.Secp256k1(),
	AddressEncoder: address.P2TR{HRP: "bc"},
}

// BitcoinTestNetBIP44 is the configuration for BIP44 Bitcoin testnet.
var BitcoinTestNetBIP44 = &Params{
	Name:           "bitcoin-testnet-bip44",
	Symbol:         "BTC",
	Purpose:        44,
	CoinIndex:      1,
	KeyVersions:    bitcoinTestNetVersions,
	WIFVersion:     0xEF,
	SupportsWIF:    true,
	DefaultPath:    notHardenedDefaultPath,
	Curve:          bip32.Secp256k1(),
	AddressEncoder: address.P2PKH{Version: 0x6F},
	Testnet:        true,
}

// BitcoinTestNetBIP49 is the configuration for BIP49 Bitcoin testnet.
var BitcoinTestNetBIP49 = &Params{
	Name:           "bitcoin-testnet-bip49",
	Symbol:         "BTC",
	Purpose:        49,
	CoinIndex:      1,
	KeyVersions:    bitcoinTestNetP2SHVersions,
	WIFVersion:     0xEF,
	SupportsWIF:    true,
	DefaultPath:    notHardenedDefaultPath,
	Curve:          bip32.Secp256k1(),
	AddressEncoder: address.P2SHP2WPKH{Version: 0xC4},
	Testnet:        true,
}

// BitcoinTestNetBIP84 is the configuration for BIP84 Bitcoin testnet.
var BitcoinTestNetBIP84 = &Params{
	Name:           "bitcoin-testnet-bip84",
	Symbol:         "BTC",
	Purpose:        84,
	CoinIndex:      1,
	KeyVersions:    bitcoinTestNetSegwitVersions,
	WIFVersion:     0xEF,
	SupportsWIF:    true,
	DefaultPath:    notHardenedDefaultPath,
	Curve:          bip32.Secp256k1(),
	AddressEncoder: address.P2WPKH{HRP: "tb"},
	Testnet:        true,
}

// BitcoinTestNetBIP86 is the configuration for BIP86 Bitcoin testnet.
var BitcoinTestNetBIP86 = &Params{
	Name:           "bitcoin-testnet-bip86",
	Symbol:         "BTC",
	Purpose:        86,
	CoinIndex:      1,
	KeyVersions:    bitcoinTestNetVersions,
	WIFVersion:     0xEF,
	SupportsWIF:    true,
	DefaultPath:    notHardenedDefaultPath,
	Curve:          bip32.Secp256k1(),
	AddressEncoder: address.P2TR{HRP: "tb"},
	Testnet:        true,
}

// LitecoinMainNetBIP44 is the configuration for BIP44 Litecoin.
var LitecoinMainNetBIP44 = &Params{
	Name:           "litecoin-bip44",
	Symbol:         "LTC",
	Purpose:        44,
	CoinIndex:      2,
	KeyVersions:    bitcoinMainNetVersions,
	WIFVersion:     0xB0,
	SupportsWIF:    true,
	DefaultPath:    notHardenedDefaultPath,
	Curve:          bip32.Secp256k1(),
	AddressEncoder: address.P2PKH{Version: 0x30},
}

// LitecoinMainNetBIP84 is the configuration for BIP84 Litecoin.
var LitecoinMainNetBIP84 = &Params{
	Name:           "litecoin-bip84",
	Symbol:         "LTC",
	Purpose:        84,
	CoinIndex:      2,
	KeyVersions:    bitcoinMainNetSegwitVersions,
	WIFVersion:     0xB0,
	SupportsWIF:    true,
	DefaultPath:    notHardenedDefaultPath,
	Curve:          bip32.Secp256k1(),
	AddressEncoder: address.P2WPKH{HRP: "ltc"},
}

// DogecoinMainNetBIP44 is the configuration for BIP44 Dogecoin.
var DogecoinMainNetBIP44 = &Params{
	Name:           "dogecoin-bip44",
	Symbol:         "DOGE",
	Purpose:        44,
	CoinIndex:      3,
	KeyVersions:    dogecoinMainNetVersions,
	WIFVersion:     0x9E,
	SupportsWIF:    true,
	DefaultPath:    notHardenedDefaultPath,
	Curve:          bip32.Secp256k1(),
	AddressEncoder: address.P2PKH{Version: 0x1E},
}

// SolanaMainNetBIP44 is the configuration for BIP44 Solana. The ed25519
// curve permits hardened derivation only, and the conventional default path
// stops at the account level.
var SolanaMainNetBIP44 = &Params{
	Name:           "solana-bip44",
	Symbol:         "SOL",
	Purpose:        44,
	CoinIndex:      501,
	KeyVersions:    bitcoinMainNetVersions,
	DefaultPath:    "0'",
	Curve:          bip32.Ed25519(),
	AddressEncoder: address.Ed25519Raw{},
}

// AllParams lists every registered coin configuration.
var AllParams = []*Params{
	BitcoinMainNetBIP44,
	BitcoinMainNetBIP49,
	BitcoinMainNetBIP84,
	BitcoinMainNetBIP86,
	BitcoinTestNetBIP44,
	BitcoinTestNetBIP49,
	BitcoinTestNetBIP84,
	BitcoinTestNetBIP86,
	LitecoinMainNetBIP44,
	LitecoinMainNetBIP84,
	DogecoinMainNetBIP44,
	SolanaMainNetBIP44,
}
