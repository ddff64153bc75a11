package main

import (
	"fmt"

	"github.com/hdvault/hdvault/bip44"
	"github.com/hdvault/hdvault/coinconf"
	"github.com/hdvault/hdvault/mnemonic"
	"github.com/sirupsen/logrus"
)

func create(conf *createConfig) error {
	initLog(conf.Verbose)

	params, err := coinconf.Lookup(conf.Coin)
	if err != nil {
		return err
	}

	phrase, err := mnemonic.Generate(conf.Words)
	if err != nil {
		return err
	}

	seed, err := mnemonic.Seed(phrase, "")
	if err != nil {
		return err
	}

	logrus.Debugf("generated %d-word mnemonic for %s", conf.Words, params.Name)

	masterKey, err := bip44.FromSeed(seed, params)
	if err != nil {
		return err
	}

	fmt.Printf("Mnemonic:\n%s\n\n", phrase)
	fmt.Printf("Master private key (%s):\n%s\n\n", params.Name, masterKey)

	defaultKey, err := masterKey.DeriveDefaultPath()
	if err != nil {
		return err
	}

	addr, err := defaultKey.Address()
	if err != nil {
		return err
	}

	fmt.Printf("First address:\n%s\n", addr)
	return nil
}
