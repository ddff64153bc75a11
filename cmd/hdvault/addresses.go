package main

import (
	"fmt"

	"github.com/hdvault/hdvault/bip44"
	"github.com/hdvault/hdvault/coinconf"
	"github.com/hdvault/hdvault/mnemonic"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func addresses(conf *addressesConfig) error {
	initLog(conf.Verbose)

	params, err := coinconf.Lookup(conf.Coin)
	if err != nil {
		return err
	}

	changeKey, err := changeKeyFromConfig(conf, params)
	if err != nil {
		return err
	}

	for i := uint32(0); i < conf.Count; i++ {
		addressKey, err := changeKey.AddressIndex(i)
		if err != nil {
			return err
		}

		addr, err := addressKey.Address()
		if err != nil {
			return err
		}

		fmt.Printf("%d. %s\n", i, addr)
	}

	return nil
}

// changeKeyFromConfig builds the change-level key the addresses hang off,
// starting from either a mnemonic or an extended key. An extended key may
// enter the hierarchy at any level from master to change.
func changeKeyFromConfig(conf *addressesConfig, params *coinconf.Params) (*bip44.Key, error) {
	changeType := bip44.ChangeExternal
	if conf.Internal {
		changeType = bip44.ChangeInternal
	}

	var key *bip44.Key
	switch {
	case conf.Mnemonic != "":
		seed, err := mnemonic.Seed(conf.Mnemonic, conf.Passphrase)
		if err != nil {
			return nil, err
		}

		key, err = bip44.FromSeed(seed, params)
		if err != nil {
			return nil, err
		}

	case conf.Key != "":
		var err error
		key, err = bip44.FromExtendedKey(conf.Key, params)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("either --mnemonic or --key is required")
	}

	logrus.Debugf("starting derivation at the %s level", key.Level())

	for {
		switch key.Level() {
		case bip44.LevelMaster:
			var err error
			key, err = key.Purpose()
			if err != nil {
				return nil, err
			}
		case bip44.LevelPurpose:
			var err error
			key, err = key.Coin()
			if err != nil {
				return nil, err
			}
		case bip44.LevelCoin:
			var err error
			key, err = key.Account(conf.Account)
			if err != nil {
				return nil, err
			}
		case bip44.LevelAccount:
			var err error
			key, err = key.Change(changeType)
			if err != nil {
				return nil, err
			}
		case bip44.LevelChange:
			return key, nil
		default:
			return nil, errors.Errorf("cannot derive addresses from a key at the %s level", key.Level())
		}
	}
}
