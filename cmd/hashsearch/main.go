package main

import (
	"os"

	urfave "github.com/urfave/cli"

	"github.com/rickgorman/hashsearch/internal/cli"
	"github.com/rickgorman/hashsearch/internal/ui"
)

const version = "3.0.0-dev"

const description = `Searches through hash domains for inputs similar to their own digest.
   Multiple algorithms available, defaults to MD5.

   Examples:
     hashsearch                          MD5 from 0x00, report every hit
     hashsearch -t 16 sha1 0x10000       SHA-1 from 0x010000, 16 matching bits
     hashsearch -e -b crc32 0xDEADBEEF   chase CRC-32 digests, byte similarity
     hashsearch -L -m 100000 crc16       chain lengths through the CRC-16 domain
     hashsearch -d --checkpoint 30s md5  record the session in ~/.hashsearch/db

   Keys: C current value, P pause, Q quit.`

func main() {
	app := cli.NewApp("hashsearch", "Searches through hash domains", version)
	app.UsageText = "hashsearch [options] [algorithm] [seed] [threshold]"
	app.Description = description
	app.Flags = cli.SearchFlags
	app.Action = searchAction
	app.Commands = []urfave.Command{
		sessionsCommand,
		hitsCommand,
		chainsCommand,
		configCommand,
	}

	if err := app.Run(os.Args); err != nil {
		p := ui.NewPrinter(os.Stderr, ui.DefaultStyle)
		p.Fail("%v", err)
		code := cli.ExitCode(err)
		if code == cli.ExitArguments {
			p.Info("Run %s for usage information", "hashsearch --help")
		}
		os.Exit(code)
	}
}
