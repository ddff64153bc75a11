package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	subCmd, config := parseCommandLine()

	var err error
	switch subCmd {
	case createSubCmd:
		err = create(config.(*createConfig))
	case addressesSubCmd:
		err = addresses(config.(*addressesConfig))
	case deriveSubCmd:
		err = derive(config.(*deriveConfig))
	case inspectSubCmd:
		err = inspect(config.(*inspectConfig))
	}

	if err != nil {
		printErrorAndExit(err)
	}
}

func initLog(verbose bool) {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}
}

func printErrorAndExit(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}
