// Package account implements account management CLI commands.
package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/frol/nearlib/cli/options"
	"github.com/frol/nearlib/pkg/nearrpc/result"
	"github.com/frol/nearlib/pkg/rpcclient"
	"github.com/frol/nearlib/pkg/rpcclient/account"
	"github.com/frol/nearlib/pkg/rpcclient/waiter"
	"github.com/urfave/cli"
)

var (
	errNoAccountID = errors.New("account ID is mandatory and should be passed using (--id, -i) flags")
	errNoPublicKey = errors.New("public key is mandatory and should be passed using (--public-key, -k) flags")
	errNoSigner    = errors.New("signer account is mandatory and should be passed using (--signer, -s) flags")
)

var (
	accountIDFlag = cli.StringFlag{
		Name:  "id, i",
		Usage: "Account ID to operate on.",
	}
	publicKeyFlag = cli.StringFlag{
		Name:  "public-key, k",
		Usage: "Base58 public key with the 'ed25519:' prefix.",
	}
	signerFlag = cli.StringFlag{
		Name:  "signer, s",
		Usage: "Account ID whose key signs the transaction.",
	}
	amountFlag = cli.Uint64Flag{
		Name:  "amount",
		Usage: "Amount of tokens to attach.",
	}
	awaitFlag = cli.BoolFlag{
		Name:  "await",
		Usage: "Poll the transaction status until it is finalized.",
	}
)

// NewCommands returns the 'account' command.
func NewCommands() []cli.Command {
	rpcFlags := append([]cli.Flag{}, options.Config...)
	rpcFlags = append(rpcFlags, options.RPC...)
	return []cli.Command{{
		Name:  "account",
		Usage: "create and inspect accounts, manage their access keys",
		Subcommands: []cli.Command{
			{
				Name:   "create",
				Usage:  "create a new account with the given public key",
				Action: createAccount,
				Flags:  append([]cli.Flag{accountIDFlag, publicKeyFlag, signerFlag, amountFlag, awaitFlag}, rpcFlags...),
			},
			{
				Name:   "create-random",
				Usage:  "create a new account with a freshly generated key",
				Action: createAccountRandom,
				Flags:  append([]cli.Flag{accountIDFlag, signerFlag, amountFlag, awaitFlag}, rpcFlags...),
			},
			{
				Name:   "view",
				Usage:  "print the state of an account",
				Action: viewAccount,
				Flags:  append([]cli.Flag{accountIDFlag}, rpcFlags...),
			},
			{
				Name:   "details",
				Usage:  "print the access keys of an account",
				Action: accountDetails,
				Flags:  append([]cli.Flag{accountIDFlag}, rpcFlags...),
			},
			{
				Name:   "add-key",
				Usage:  "add an access key to an account",
				Action: addKey,
				Flags: append([]cli.Flag{
					accountIDFlag, publicKeyFlag, amountFlag, awaitFlag,
					cli.StringFlag{
						Name:  "contract",
						Usage: "Contract the key is restricted to (unrestricted key when empty).",
					},
					cli.StringFlag{
						Name:  "method",
						Usage: "Contract method the key is restricted to.",
					},
					cli.StringFlag{
						Name:  "balance-owner",
						Usage: "Account the attached amount is refunded to.",
					},
				}, rpcFlags...),
			},
			{
				Name:   "delete-key",
				Usage:  "remove an access key from an account",
				Action: deleteKey,
				Flags:  append([]cli.Flag{accountIDFlag, publicKeyFlag, awaitFlag}, rpcFlags...),
			},
		},
	}}
}

func getClient(ctx *cli.Context) (*rpcclient.Client, *account.Account, cli.ExitCoder) {
	c, exitErr := options.GetRPCClient(context.Background(), ctx)
	if exitErr != nil {
		return nil, nil, exitErr
	}
	return c, account.New(c), nil
}

// finalize optionally polls the transaction status until it's final and
// prints the outcome.
func finalize(ctx *cli.Context, c *rpcclient.Client, res *result.TransactionResult) error {
	if ctx.Bool("await") && !res.Status.Final() {
		var err error
		res, err = waiter.New(c, waiter.PollConfig{}).Wait(context.Background(), res.Hash)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
	}
	fmt.Printf("Transaction %s: %s\n", res.Hash, res.Status)
	return nil
}

func createAccount(ctx *cli.Context) error {
	newID := ctx.String("id")
	if newID == "" {
		return cli.NewExitError(errNoAccountID, 1)
	}
	pub := ctx.String("public-key")
	if pub == "" {
		return cli.NewExitError(errNoPublicKey, 1)
	}
	signer := ctx.String("signer")
	if signer == "" {
		return cli.NewExitError(errNoSigner, 1)
	}

	c, acc, exitErr := getClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer c.Close()

	res, err := acc.CreateAccount(context.Background(), newID, pub, ctx.Uint64("amount"), signer)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return finalize(ctx, c, res)
}

func createAccountRandom(ctx *cli.Context) error {
	newID := ctx.String("id")
	if newID == "" {
		return cli.NewExitError(errNoAccountID, 1)
	}
	signer := ctx.String("signer")
	if signer == "" {
		return cli.NewExitError(errNoSigner, 1)
	}

	c, acc, exitErr := getClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer c.Close()

	priv, res, err := acc.CreateAccountWithRandomKey(context.Background(), newID, ctx.Uint64("amount"), signer)
	if priv != nil {
		// Print the key even on failure, it's the only copy.
		fmt.Printf("Public key:  %s\n", priv.PublicKey())
		fmt.Printf("Private key: %s\n", priv)
	}
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return finalize(ctx, c, res)
}

func viewAccount(ctx *cli.Context) error {
	id := ctx.String("id")
	if id == "" {
		return cli.NewExitError(errNoAccountID, 1)
	}
	c, acc, exitErr := getClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer c.Close()

	view, err := acc.ViewAccount(context.Background(), id)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Printf("Account: %s\n", view.AccountID)
	fmt.Printf("Amount:  %d\n", view.Amount)
	fmt.Printf("Nonce:   %d\n", view.Nonce)
	for _, pub := range view.PublicKeys {
		fmt.Printf("Key:     %s\n", pub)
	}
	return nil
}

func accountDetails(ctx *cli.Context) error {
	id := ctx.String("id")
	if id == "" {
		return cli.NewExitError(errNoAccountID, 1)
	}
	c, acc, exitErr := getClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer c.Close()

	details, err := acc.GetAccountDetails(context.Background(), id)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	for _, app := range details.AuthorizedApps {
		contract := app.ContractID
		if contract == "" {
			contract = "<unrestricted>"
		}
		fmt.Printf("%s\tcontract: %s\tamount: %d\n", app.PublicKey, contract, app.Amount)
	}
	return nil
}

func addKey(ctx *cli.Context) error {
	owner := ctx.String("id")
	if owner == "" {
		return cli.NewExitError(errNoAccountID, 1)
	}
	pub := ctx.String("public-key")
	if pub == "" {
		return cli.NewExitError(errNoPublicKey, 1)
	}
	c, acc, exitErr := getClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer c.Close()

	res, err := acc.AddAccessKey(context.Background(), owner, pub,
		ctx.String("contract"), ctx.String("method"),
		ctx.String("balance-owner"), ctx.Uint64("amount"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return finalize(ctx, c, res)
}

func deleteKey(ctx *cli.Context) error {
	owner := ctx.String("id")
	if owner == "" {
		return cli.NewExitError(errNoAccountID, 1)
	}
	pub := ctx.String("public-key")
	if pub == "" {
		return cli.NewExitError(errNoPublicKey, 1)
	}
	c, acc, exitErr := getClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer c.Close()

	res, err := acc.RemoveAccessKey(context.Background(), owner, pub)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return finalize(ctx, c, res)
}
