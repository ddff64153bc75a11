package main

import (
	"fmt"

	"github.com/hdvault/hdvault/bip32"
	"github.com/hdvault/hdvault/coinconf"
)

func inspect(conf *inspectConfig) error {
	initLog(conf.Verbose)

	params, err := coinconf.Lookup(conf.Coin)
	if err != nil {
		return err
	}

	extKey, err := bip32.Decode(conf.Key, params.KeyVersions, params.Curve)
	if err != nil {
		return err
	}

	keyType := "private"
	if extKey.IsPublicOnly() {
		keyType = "public"
	}

	publicKey, err := extKey.PublicKey()
	if err != nil {
		return err
	}

	fmt.Printf("Type:               %s\n", keyType)
	fmt.Printf("Curve:              %s\n", extKey.Curve().Name())
	fmt.Printf("Depth:              %d\n", extKey.Depth)
	fmt.Printf("Parent fingerprint: %x\n", extKey.ParentFingerprint)
	fmt.Printf("Child number:       %d\n", extKey.ChildNumber)
	fmt.Printf("Chain code:         %x\n", extKey.ChainCode)
	fmt.Printf("Public key:         %x\n", publicKey)
	return nil
}
