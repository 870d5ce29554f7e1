package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/AlexZinkM/local-nano/internal/account"
	"github.com/AlexZinkM/local-nano/internal/config"
	"github.com/AlexZinkM/local-nano/nano"

	"github.com/urfave/cli"
)

// readSecret prompts for a hidden value; replaced in tests
var readSecret = config.PromptForPassword

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[nanocli] %v\n", err)
	os.Exit(1)
}

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fatal(err)
	}
}

func newApp(w io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "nanocli"
	app.Usage = "offline Nano seed, key, account and amount tool"
	app.Writer = w
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "prefix",
			Value:  account.PrefixNano,
			EnvVar: "NANO_ACCOUNT_PREFIX",
			Usage:  "Account prefix used for output, nano_ or xrb_.",
		},
	}
	app.Commands = []cli.Command{
		toRawCommand,
		toNanoCommand,
		addCommand,
		subtractCommand,
		compareCommand,
		unitToRawCommand,
		newSeedCommand,
		deriveCommand,
		accountCommand,
		pubKeyCommand,
		fromPrivateKeyCommand,
		sha256Command,
		encryptCommand,
		decryptCommand,
		mnemonicCommand,
		fromMnemonicCommand,
	}
	return app
}

func getService(ctx *cli.Context) (*nano.Service, error) {
	return nano.New(nano.WithPrefix(ctx.GlobalString("prefix")))
}

func printJSON(ctx *cli.Context, resp any) error {
	b, err := json.MarshalIndent(resp, "", "    ")
	if err != nil {
		return fmt.Errorf("unable to encode response: %w", err)
	}
	_, err = fmt.Fprintln(ctx.App.Writer, string(b))
	return err
}
