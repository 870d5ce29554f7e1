package main

import (
	"fmt"
	"math"

	"github.com/AlexZinkM/local-nano/internal/model"
	"github.com/AlexZinkM/local-nano/nano"

	"github.com/urfave/cli"
)

var toRawCommand = cli.Command{
	Name:      "toraw",
	Category:  "Amounts",
	Usage:     "Convert a Nano amount to raw.",
	ArgsUsage: "amount",
	Action: amountAction(func(s *nano.Service, args cli.Args) (string, error) {
		return s.NanoToRaw(args.First())
	}, 1),
}

var toNanoCommand = cli.Command{
	Name:      "tonano",
	Category:  "Amounts",
	Usage:     "Convert raw to a Nano amount.",
	ArgsUsage: "raw",
	Action: amountAction(func(s *nano.Service, args cli.Args) (string, error) {
		return s.RawToNano(args.First())
	}, 1),
}

var unitToRawCommand = cli.Command{
	Name:      "unittoraw",
	Category:  "Amounts",
	Usage:     "Convert whole legacy nano units (10^24 raw) to raw.",
	ArgsUsage: "units",
	Action: amountAction(func(s *nano.Service, args cli.Args) (string, error) {
		return s.ConvertUnitToRaw(args.First())
	}, 1),
}

var addCommand = cli.Command{
	Name:      "add",
	Category:  "Amounts",
	Usage:     "Add two raw amounts.",
	ArgsUsage: "raw1 raw2",
	Action: amountAction(func(s *nano.Service, args cli.Args) (string, error) {
		return s.Add(args.Get(0), args.Get(1))
	}, 2),
}

var subtractCommand = cli.Command{
	Name:      "subtract",
	Category:  "Amounts",
	Usage:     "Subtract raw2 from raw1.",
	ArgsUsage: "raw1 raw2",
	Action: amountAction(func(s *nano.Service, args cli.Args) (string, error) {
		return s.Subtract(args.Get(0), args.Get(1))
	}, 2),
}

var compareCommand = cli.Command{
	Name:      "compare",
	Category:  "Amounts",
	Usage:     "Compare two raw amounts.",
	ArgsUsage: "raw baseraw",
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 2 {
			return cli.ShowCommandHelp(ctx, "compare")
		}
		s, err := getService(ctx)
		if err != nil {
			return err
		}
		cmp, err := s.Compare(ctx.Args().Get(0), ctx.Args().Get(1))
		if err != nil {
			return err
		}
		return printJSON(ctx, model.CompareResponse{
			Cmp:            cmp,
			Greater:        cmp > 0,
			GreaterOrEqual: cmp >= 0,
		})
	},
}

var newSeedCommand = cli.Command{
	Name:     "newseed",
	Category: "Seeds",
	Usage:    "Generate a random seed with its mnemonic and first account.",
	Action: func(ctx *cli.Context) error {
		s, err := getService(ctx)
		if err != nil {
			return err
		}
		resp, err := s.GenerateWallet()
		if err != nil {
			return err
		}
		// the QR code is only useful to API clients
		resp.QR = ""
		return printJSON(ctx, resp)
	},
}

var deriveCommand = cli.Command{
	Name:     "derive",
	Category: "Keys",
	Usage:    "Derive accounts from a seed.",
	Description: `
	Derives count accounts starting at index. The seed is read from a
	hidden prompt unless --seed is given.`,
	Flags: []cli.Flag{
		cli.StringFlag{Name: "seed", Usage: "Hex seed."},
		cli.Uint64Flag{Name: "index", Usage: "First account index."},
		cli.IntFlag{Name: "count", Value: 1, Usage: "Number of accounts."},
		cli.BoolFlag{Name: "private", Usage: "Also print the private key of a single account."},
	},
	Action: func(ctx *cli.Context) error {
		index := ctx.Uint64("index")
		if index > math.MaxUint32 {
			return fmt.Errorf("index %d exceeds 32 bits", index)
		}
		seed, err := seedFlag(ctx)
		if err != nil {
			return err
		}
		s, err := getService(ctx)
		if err != nil {
			return err
		}

		if ctx.Bool("private") {
			if ctx.Int("count") != 1 {
				return fmt.Errorf("--private requires --count=1")
			}
			priv, err := s.PrivateKeyFromSeed(seed, uint32(index))
			if err != nil {
				return err
			}
			pub, err := s.PublicKeyFromPrivateKey(priv)
			if err != nil {
				return err
			}
			acct, err := s.AccountFromPublicKey(pub)
			if err != nil {
				return err
			}
			return printJSON(ctx, model.KeyResponse{PrivateKey: priv, PublicKey: pub, Account: acct})
		}

		accounts, err := s.DeriveAccounts(seed, uint32(index), ctx.Int("count"))
		if err != nil {
			return err
		}
		return printJSON(ctx, model.AccountsResponse{Accounts: accounts})
	},
}

var accountCommand = cli.Command{
	Name:      "account",
	Category:  "Accounts",
	Usage:     "Encode a hex public key as an account.",
	ArgsUsage: "pubkey",
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 1 {
			return cli.ShowCommandHelp(ctx, "account")
		}
		s, err := getService(ctx)
		if err != nil {
			return err
		}
		acct, err := s.AccountFromPublicKey(ctx.Args().First())
		if err != nil {
			return err
		}
		return printJSON(ctx, model.KeyResponse{Account: acct})
	},
}

var pubKeyCommand = cli.Command{
	Name:      "pubkey",
	Category:  "Accounts",
	Usage:     "Decode an account to its hex public key.",
	ArgsUsage: "account",
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 1 {
			return cli.ShowCommandHelp(ctx, "pubkey")
		}
		s, err := getService(ctx)
		if err != nil {
			return err
		}
		pub, err := s.PublicKeyFromAccount(ctx.Args().First())
		if err != nil {
			return err
		}
		return printJSON(ctx, model.KeyResponse{PublicKey: pub, Account: ctx.Args().First()})
	},
}

var fromPrivateKeyCommand = cli.Command{
	Name:     "fromprivkey",
	Category: "Keys",
	Usage:    "Print the public key and account of a private key read from a hidden prompt.",
	Action: func(ctx *cli.Context) error {
		priv, err := readSecret("Private key")
		if err != nil {
			return err
		}
		defer clear(priv)

		s, err := getService(ctx)
		if err != nil {
			return err
		}
		pub, err := s.PublicKeyFromPrivateKey(string(priv))
		if err != nil {
			return err
		}
		acct, err := s.AccountFromPrivateKey(string(priv))
		if err != nil {
			return err
		}
		return printJSON(ctx, model.KeyResponse{PublicKey: pub, Account: acct})
	},
}

var sha256Command = cli.Command{
	Name:      "sha256",
	Category:  "Util",
	Usage:     "Print the SHA-256 digest of a string.",
	ArgsUsage: "data",
	Action: func(ctx *cli.Context) error {
		s, err := getService(ctx)
		if err != nil {
			return err
		}
		return printJSON(ctx, model.DigestResponse{Digest: s.Sha256(ctx.Args().First())})
	},
}

var encryptCommand = cli.Command{
	Name:     "encrypt",
	Category: "Seeds",
	Usage:    "Encrypt a seed with a password.",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "seed", Usage: "Hex seed; prompted for when omitted."},
	},
	Action: func(ctx *cli.Context) error {
		seed, err := seedFlag(ctx)
		if err != nil {
			return err
		}
		password, err := readSecret("Password")
		if err != nil {
			return err
		}
		defer clear(password)

		s, err := getService(ctx)
		if err != nil {
			return err
		}
		cipherText, err := s.Encrypt(seed, string(password))
		if err != nil {
			return err
		}
		return printJSON(ctx, model.CipherResponse{CipherText: cipherText})
	},
}

var decryptCommand = cli.Command{
	Name:      "decrypt",
	Category:  "Seeds",
	Usage:     "Decrypt an encrypted seed with a password.",
	ArgsUsage: "ciphertext",
	Description: `
	A wrong password is not detected: it prints a different seed. Check
	the derived account before using the result.`,
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 1 {
			return cli.ShowCommandHelp(ctx, "decrypt")
		}
		password, err := readSecret("Password")
		if err != nil {
			return err
		}
		defer clear(password)

		s, err := getService(ctx)
		if err != nil {
			return err
		}
		seed, err := s.Decrypt(ctx.Args().First(), string(password))
		if err != nil {
			return err
		}
		acct, err := s.AccountFromSeed(seed, 0)
		if err != nil {
			return err
		}
		return printJSON(ctx, struct {
			Seed    string `json:"seed"`
			Account string `json:"account"`
		}{seed, acct})
	},
}

var mnemonicCommand = cli.Command{
	Name:     "mnemonic",
	Category: "Seeds",
	Usage:    "Print the 24-word mnemonic of a seed.",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "seed", Usage: "Hex seed; prompted for when omitted."},
	},
	Action: func(ctx *cli.Context) error {
		seed, err := seedFlag(ctx)
		if err != nil {
			return err
		}
		s, err := getService(ctx)
		if err != nil {
			return err
		}
		m, err := s.SeedToMnemonic(seed)
		if err != nil {
			return err
		}
		return printJSON(ctx, model.MnemonicResponse{Mnemonic: m})
	},
}

var fromMnemonicCommand = cli.Command{
	Name:      "frommnemonic",
	Category:  "Seeds",
	Usage:     "Recover a seed from a 24-word mnemonic.",
	ArgsUsage: "\"word1 word2 ... word24\"",
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 1 {
			return cli.ShowCommandHelp(ctx, "frommnemonic")
		}
		s, err := getService(ctx)
		if err != nil {
			return err
		}
		seed, err := s.MnemonicToSeed(ctx.Args().First())
		if err != nil {
			return err
		}
		return printJSON(ctx, model.SeedResponse{Seed: seed})
	},
}

// amountAction wraps an amount operation taking nargs positional arguments
func amountAction(op func(*nano.Service, cli.Args) (string, error), nargs int) func(*cli.Context) error {
	return func(ctx *cli.Context) error {
		if ctx.NArg() != nargs {
			return cli.ShowCommandHelp(ctx, ctx.Command.Name)
		}
		s, err := getService(ctx)
		if err != nil {
			return err
		}
		amount, err := op(s, ctx.Args())
		if err != nil {
			return err
		}
		return printJSON(ctx, model.AmountResponse{Amount: amount})
	}
}

// seedFlag returns --seed or prompts for the seed
func seedFlag(ctx *cli.Context) (string, error) {
	if seed := ctx.String("seed"); seed != "" {
		return seed, nil
	}
	b, err := readSecret("Seed")
	if err != nil {
		return "", err
	}
	defer clear(b)
	return string(b), nil
}
