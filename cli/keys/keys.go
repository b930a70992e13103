// Package keys implements key management CLI commands.
package keys

import (
	"errors"
	"fmt"

	"github.com/frol/nearlib/cli/input"
	"github.com/frol/nearlib/cli/options"
	"github.com/frol/nearlib/pkg/crypto/keys"
	"github.com/frol/nearlib/pkg/wallet"
	"github.com/urfave/cli"
)

var (
	errNoAccountID    = errors.New("account ID is mandatory and should be passed using (--account, -a) flags")
	errPhraseMismatch = errors.New("the entered pass-phrases do not match, maybe you have misspelled them")
)

var accountIDFlag = cli.StringFlag{
	Name:  "account, a",
	Usage: "Account ID the key belongs to.",
}

// NewCommands returns the 'keys' command.
func NewCommands() []cli.Command {
	return []cli.Command{{
		Name:  "keys",
		Usage: "manage signing keys in the key store",
		Subcommands: []cli.Command{
			{
				Name:   "new",
				Usage:  "generate a new key pair",
				Action: newKey,
				Flags: append([]cli.Flag{
					accountIDFlag,
					cli.StringFlag{
						Name:  "seed-phrase",
						Usage: "Derive the key from a BIP-39 seed phrase instead of generating a random one.",
					},
				}, options.Config...),
			},
			{
				Name:   "import",
				Usage:  "import a passphrase-protected key into the key store",
				Action: importKey,
				Flags:  append([]cli.Flag{accountIDFlag}, options.Config...),
			},
			{
				Name:   "export",
				Usage:  "export a key in a passphrase-protected form",
				Action: exportKey,
				Flags:  append([]cli.Flag{accountIDFlag}, options.Config...),
			},
			{
				Name:   "list",
				Usage:  "list account IDs present in the key store",
				Action: listKeys,
				Flags:  options.Config,
			},
		},
	}}
}

func openStore(ctx *cli.Context) (wallet.KeyStore, cli.ExitCoder) {
	cfg, err := options.GetConfig(ctx)
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	store, err := options.GetKeyStore(cfg)
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	return store, nil
}

func closeStore(store wallet.KeyStore) {
	if bs, ok := store.(*wallet.BoltStore); ok {
		_ = bs.Close()
	}
}

func newKey(ctx *cli.Context) error {
	var (
		priv *keys.PrivateKey
		err  error
	)
	if phrase := ctx.String("seed-phrase"); phrase != "" {
		priv, err = keys.NewPrivateKeyFromSeedPhrase(phrase, "")
	} else {
		priv, err = keys.NewPrivateKey()
	}
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	fmt.Printf("Public key:  %s\n", priv.PublicKey())
	fmt.Printf("Private key: %s\n", priv)

	if account := ctx.String("account"); account != "" {
		store, exitErr := openStore(ctx)
		if exitErr != nil {
			return exitErr
		}
		defer closeStore(store)
		if err := store.SetKey(account, priv); err != nil {
			return cli.NewExitError(err, 1)
		}
		fmt.Printf("Key stored for %s\n", account)
	}
	return nil
}

func importKey(ctx *cli.Context) error {
	account := ctx.String("account")
	if account == "" {
		return cli.NewExitError(errNoAccountID, 1)
	}
	encrypted, err := input.ReadLine("Enter the encrypted key > ")
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	pass, err := input.ReadPassword("Enter passphrase > ")
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	priv, err := wallet.DecryptKey(encrypted, pass)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	store, exitErr := openStore(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer closeStore(store)
	if err := store.SetKey(account, priv); err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Printf("Key %s imported for %s\n", priv.PublicKey(), account)
	return nil
}

func exportKey(ctx *cli.Context) error {
	account := ctx.String("account")
	if account == "" {
		return cli.NewExitError(errNoAccountID, 1)
	}
	store, exitErr := openStore(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer closeStore(store)
	priv, err := store.GetKey(account)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	pass, err := input.ReadPassword("Enter passphrase > ")
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	passCheck, err := input.ReadPassword("Confirm passphrase > ")
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	if pass != passCheck {
		return cli.NewExitError(errPhraseMismatch, 1)
	}

	encrypted, err := wallet.EncryptKey(priv, pass)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Println(encrypted)
	return nil
}

func listKeys(ctx *cli.Context) error {
	store, exitErr := openStore(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer closeStore(store)
	accounts, err := store.Accounts()
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	for _, acc := range accounts {
		fmt.Println(acc)
	}
	return nil
}
