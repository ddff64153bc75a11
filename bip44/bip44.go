// Package bip44 layers the standard wallet key hierarchy of BIP44 and its
// sibling standards (BIP49/84/86) on top of the bip32 derivation engine:
// each Key tracks its level in the tree and only permits the transition the
// next level calls for. Keys are immutable; every derivation returns a new
// Key and never touches its parent.
package bip44

import (
	"github.com/hdvault/hdvault/bip32"
	"github.com/hdvault/hdvault/coinconf"
	"github.com/pkg/errors"
)

// ErrDepth is returned when the current tree depth does not support the
// requested operation, or when a key is constructed at a depth inconsistent
// with its public/private status.
var ErrDepth = errors.New("current depth is not suitable for the requested operation")

// Key is an extended key at a known level of the wallet hierarchy, bound to
// the coin configuration it derives for.
type Key struct {
	extKey *bip32.ExtendedKey
	conf   *coinconf.Params
}

func newKey(extKey *bip32.ExtendedKey, conf *coinconf.Params) (*Key, error) {
	depth := Level(extKey.Depth)

	// A public-only key must sit at or below the account level: everything
	// above it is reached through hardened derivation, which public keys
	// cannot perform.
	if extKey.IsPublicOnly() {
		if depth < LevelAccount || depth > LevelAddressIndex {
			return nil, errors.Wrapf(ErrDepth,
				"public-only key depth (%d) is below the account level or beyond the address index level",
				extKey.Depth)
		}
	} else if depth > LevelAddressIndex {
		return nil, errors.Wrapf(ErrDepth, "key depth (%d) is beyond the address index level", extKey.Depth)
	}

	return &Key{extKey: extKey, conf: conf}, nil
}

// FromSeed creates a master Key from a seed (e.g. a BIP39 seed) and a coin
// configuration.
func FromSeed(seed []byte, conf *coinconf.Params) (*Key, error) {
	extKey, err := bip32.NewMaster(seed, conf.KeyVersions, conf.Curve)
	if err != nil {
		return nil, err
	}

	return newKey(extKey, conf)
}

// FromExtendedKey creates a Key from a serialized extended key string. The
// depth encoded in the string must be consistent with its public/private
// status, per the newKey invariants.
func FromExtendedKey(extKeyString string, conf *coinconf.Params) (*Key, error) {
	extKey, err := bip32.Decode(extKeyString, conf.KeyVersions, conf.Curve)
	if err != nil {
		return nil, err
	}

	return newKey(extKey, conf)
}

// FromPrivateKey creates a master Key from a raw private key. The chain
// code is zero and the depth is forced to master, since the derivation
// history of the key cannot be recovered.
func FromPrivateKey(privateKey []byte, conf *coinconf.Params) (*Key, error) {
	extKey, err := bip32.FromPrivateKey(privateKey, conf.KeyVersions, conf.Curve)
	if err != nil {
		return nil, err
	}

	return newKey(extKey, conf)
}

// Level returns the key's level in the hierarchy.
func (k *Key) Level() Level {
	return Level(k.extKey.Depth)
}

// IsLevel reports whether the key sits at the given level.
func (k *Key) IsLevel(level Level) bool {
	return k.Level() == level
}

// IsPublicOnly reports whether only the public key is known.
func (k *Key) IsPublicOnly() bool {
	return k.extKey.IsPublicOnly()
}

// CoinConf returns the coin configuration the key derives for.
func (k *Key) CoinConf() *coinconf.Params {
	return k.conf
}

// ExtendedKey returns the underlying extended key.
func (k *Key) ExtendedKey() *bip32.ExtendedKey {
	return k.extKey
}

// String returns the Base58Check extended key string.
func (k *Key) String() string {
	return k.extKey.String()
}

// Purpose derives the purpose level key m/purpose' using the purpose number
// of the coin configuration. The key must be a master key.
func (k *Key) Purpose() (*Key, error) {
	err := k.checkLevel(LevelMaster, "purpose")
	if err != nil {
		return nil, err
	}

	return k.child(bip32.HardenIndex(k.conf.Purpose))
}

// Coin derives the coin type level key m/purpose'/coin'. The key must be a
// purpose key.
func (k *Key) Coin() (*Key, error) {
	err := k.checkLevel(LevelPurpose, "coin")
	if err != nil {
		return nil, err
	}

	return k.child(bip32.HardenIndex(k.conf.CoinIndex))
}

// Account derives the hardened account key at the given index. The key must
// be a coin type key.
func (k *Key) Account(accountIndex uint32) (*Key, error) {
	err := k.checkLevel(LevelCoin, "account")
	if err != nil {
		return nil, err
	}

	if accountIndex >= bip32.HardenedIndexStart {
		return nil, errors.Errorf("account index %d must be lower than %d",
			accountIndex, uint32(bip32.HardenedIndexStart))
	}

	return k.child(bip32.HardenIndex(accountIndex))
}

// Change derives the change chain key for the given change type. The key
// must be an account key. The index is hardened if and only if the curve
// does not support unhardened derivation.
func (k *Key) Change(changeType ChangeType) (*Key, error) {
	if changeType != ChangeExternal && changeType != ChangeInternal {
		return nil, errors.Errorf("unknown change type %d", changeType)
	}

	err := k.checkLevel(LevelAccount, "change")
	if err != nil {
		return nil, err
	}

	return k.child(k.resolveIndex(uint32(changeType)))
}

// AddressIndex derives the address key at the given index, the terminal
// level of the hierarchy. The key must be a change chain key.
func (k *Key) AddressIndex(addressIndex uint32) (*Key, error) {
	err := k.checkLevel(LevelChange, "address index")
	if err != nil {
		return nil, err
	}

	if addressIndex >= bip32.HardenedIndexStart {
		return nil, errors.Errorf("address index %d must be lower than %d",
			addressIndex, uint32(bip32.HardenedIndexStart))
	}

	return k.child(k.resolveIndex(addressIndex))
}

// DeriveDefaultPath derives purpose, coin and then the coin's default
// relative path in one call. The key must be a master key. The first
// failing step aborts the whole derivation.
func (k *Key) DeriveDefaultPath() (*Key, error) {
	err := k.checkLevel(LevelMaster, "default path")
	if err != nil {
		return nil, err
	}

	purposeKey, err := k.Purpose()
	if err != nil {
		return nil, err
	}

	coinKey, err := purposeKey.Coin()
	if err != nil {
		return nil, err
	}

	path, err := bip32.ParseRelativePath(k.conf.DefaultPath, false)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid default path for %s", k.conf.Name)
	}

	// Hardened-ness of the remaining levels must resolve exactly as it
	// does for the explicit Change and AddressIndex calls.
	if !k.conf.Curve.SupportsUnhardenedDerivation() {
		for i, index := range path.Indexes {
			path.Indexes[i] = bip32.HardenIndex(index)
		}
	}

	extKey, err := coinKey.extKey.DerivePath(path)
	if err != nil {
		return nil, err
	}

	return newKey(extKey, k.conf)
}

// Public returns the public-only counterpart of the key. The key must
// already be at the account level or below, the same invariant newKey
// enforces for any public-only key.
func (k *Key) Public() (*Key, error) {
	extKey, err := k.extKey.Public()
	if err != nil {
		return nil, err
	}

	return newKey(extKey, k.conf)
}

// Address encodes the key's public key with the coin's address encoder.
func (k *Key) Address() (string, error) {
	publicKey, err := k.extKey.PublicKey()
	if err != nil {
		return "", err
	}

	return k.conf.AddressEncoder.Encode(publicKey)
}

// WIF returns the private key in wallet import format, for coins that
// define one.
func (k *Key) WIF() (string, error) {
	if !k.conf.SupportsWIF {
		return "", errors.Errorf("%s does not define a WIF encoding", k.conf.Name)
	}

	privateKey, err := k.extKey.PrivateKey()
	if err != nil {
		return "", err
	}

	return bip32.EncodeWIF(privateKey, k.conf.WIFVersion, true)
}

// resolveIndex hardens change and address indexes for curves that cannot
// derive unhardened children.
func (k *Key) resolveIndex(index uint32) uint32 {
	if !k.conf.Curve.SupportsUnhardenedDerivation() {
		return bip32.HardenIndex(index)
	}

	return index
}

func (k *Key) checkLevel(expected Level, operation string) error {
	if k.Level() != expected {
		return errors.Wrapf(ErrDepth, "current depth (%d) is not suitable for deriving %s",
			k.extKey.Depth, operation)
	}

	return nil
}

func (k *Key) child(index uint32) (*Key, error) {
	extKey, err := k.extKey.Child(index)
	if err != nil {
		return nil, err
	}

	return &Key{extKey: extKey, conf: k.conf}, nil
}
