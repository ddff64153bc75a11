package main

import (
	"encoding/hex"
	"fmt"

	"github.com/hdvault/hdvault/bip32"
	"github.com/hdvault/hdvault/coinconf"
	"github.com/hdvault/hdvault/mnemonic"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func derive(conf *deriveConfig) error {
	initLog(conf.Verbose)

	params, err := coinconf.Lookup(conf.Coin)
	if err != nil {
		return err
	}

	var seed []byte
	switch {
	case conf.Mnemonic != "":
		seed, err = mnemonic.Seed(conf.Mnemonic, conf.Passphrase)
		if err != nil {
			return err
		}
	case conf.Seed != "":
		seed, err = hex.DecodeString(conf.Seed)
		if err != nil {
			return errors.Wrap(err, "seed must be a hex string")
		}
	default:
		return errors.Errorf("either --mnemonic or --seed is required")
	}

	logrus.Debugf("deriving %s with %s versions", conf.Path, params.Name)

	extKey, err := bip32.NewMasterWithPath(seed, params.KeyVersions, params.Curve, conf.Path)
	if err != nil {
		return err
	}

	fmt.Printf("Key at %s:\n%s\n", conf.Path, extKey)

	if extKey.IsPrivate() {
		publicExtKey, err := extKey.Public()
		if err != nil {
			return err
		}

		fmt.Printf("Public key:\n%s\n", publicExtKey)
	}

	return nil
}
