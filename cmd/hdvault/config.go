package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	createSubCmd    = "create"
	addressesSubCmd = "addresses"
	deriveSubCmd    = "derive"
	inspectSubCmd   = "inspect"
)

type createConfig struct {
	Words   int    `long:"words" short:"w" default:"24" description:"Number of mnemonic words (12, 15, 18, 21 or 24)"`
	Coin    string `long:"coin" short:"c" default:"bitcoin-bip44" description:"Coin configuration to print master keys for"`
	Verbose bool   `long:"verbose" short:"v" description:"Print verbose diagnostics"`
}

type addressesConfig struct {
	Mnemonic   string `long:"mnemonic" short:"m" description:"Mnemonic phrase to derive from"`
	Passphrase string `long:"passphrase" description:"Optional BIP39 passphrase"`
	Key        string `long:"key" short:"k" description:"Extended key to derive from instead of a mnemonic"`
	Coin       string `long:"coin" short:"c" default:"bitcoin-bip44" description:"Coin configuration to derive for"`
	Account    uint32 `long:"account" short:"a" default:"0" description:"Account index"`
	Internal   bool   `long:"internal" description:"Derive the internal (change) chain instead of the external one"`
	Count      uint32 `long:"count" short:"n" default:"10" description:"Number of addresses to derive"`
	Verbose    bool   `long:"verbose" short:"v" description:"Print verbose diagnostics"`
}

type deriveConfig struct {
	Mnemonic   string `long:"mnemonic" short:"m" description:"Mnemonic phrase to derive from"`
	Passphrase string `long:"passphrase" description:"Optional BIP39 passphrase"`
	Seed       string `long:"seed" short:"s" description:"Hex seed to derive from instead of a mnemonic"`
	Path       string `long:"path" short:"p" required:"true" description:"Derivation path, e.g. m/44'/0'/0'/0/0"`
	Coin       string `long:"coin" short:"c" default:"bitcoin-bip44" description:"Coin configuration supplying versions and curve"`
	Verbose    bool   `long:"verbose" short:"v" description:"Print verbose diagnostics"`
}

type inspectConfig struct {
	Key     string `long:"key" short:"k" required:"true" description:"Extended key string to decode"`
	Coin    string `long:"coin" short:"c" default:"bitcoin-bip44" description:"Coin configuration supplying versions and curve"`
	Verbose bool   `long:"verbose" short:"v" description:"Print verbose diagnostics"`
}

func parseCommandLine() (subCommand string, config interface{}) {
	parser := flags.NewParser(nil, flags.PrintErrors|flags.HelpFlag)

	createConf := &createConfig{}
	_, err := parser.AddCommand(createSubCmd, "Creates a new wallet mnemonic",
		"Creates a new random mnemonic and prints its master keys", createConf)
	if err != nil {
		printErrorAndExit(err)
	}

	addressesConf := &addressesConfig{}
	_, err = parser.AddCommand(addressesSubCmd, "Shows addresses of a wallet",
		"Derives and prints the first addresses of a wallet account", addressesConf)
	if err != nil {
		printErrorAndExit(err)
	}

	deriveConf := &deriveConfig{}
	_, err = parser.AddCommand(deriveSubCmd, "Derives a key at an arbitrary path",
		"Derives the key at the given derivation path and prints it", deriveConf)
	if err != nil {
		printErrorAndExit(err)
	}

	inspectConf := &inspectConfig{}
	_, err = parser.AddCommand(inspectSubCmd, "Decodes an extended key",
		"Decodes an extended key string and prints its fields", inspectConf)
	if err != nil {
		printErrorAndExit(err)
	}

	_, err = parser.Parse()
	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
		return "", nil
	}

	switch parser.Command.Active.Name {
	case createSubCmd:
		config = createConf
	case addressesSubCmd:
		config = addressesConf
	case deriveSubCmd:
		config = deriveConf
	case inspectSubCmd:
		config = inspectConf
	}

	return parser.Command.Active.Name, config
}
