/*
Package options contains a set of common CLI options and helper functions to
use them.
*/
package options

import (
	"context"
	"errors"
	"fmt"

	"github.com/frol/nearlib/pkg/config"
	"github.com/frol/nearlib/pkg/rpcclient"
	"github.com/frol/nearlib/pkg/wallet"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

// RPCEndpointFlag is a long flag name for an RPC endpoint. It can be used to
// check for flag presence in the context.
const RPCEndpointFlag = "rpc-endpoint"

// Config is a set of flags for choosing the configuration.
var Config = []cli.Flag{
	cli.StringFlag{
		Name:  "config-file, c",
		Usage: "path to the yaml configuration file",
	},
}

// RPC is a set of flags for RPC-calling commands.
var RPC = []cli.Flag{
	cli.StringFlag{
		Name:  RPCEndpointFlag + ", r",
		Usage: "RPC node address to use instead of the configured one",
	},
}

var errNoEndpoint = errors.New("no RPC endpoint specified, use option '--" + RPCEndpointFlag + "' or the configuration file")

// GetConfig loads the configuration for the given CLI context. Without the
// config-file flag the defaults are used.
func GetConfig(ctx *cli.Context) (config.Config, error) {
	path := ctx.String("config-file")
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// GetLogger creates a logger honoring the configured level.
func GetLogger(cfg config.Config) (*zap.Logger, error) {
	level, err := cfg.ZapLevel()
	if err != nil {
		return nil, err
	}
	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(level)
	return c.Build()
}

// GetKeyStore opens the key store named in the configuration. An empty
// KeyStorePath gives an in-memory store.
func GetKeyStore(cfg config.Config) (wallet.KeyStore, error) {
	if cfg.KeyStorePath == "" {
		return wallet.NewMemoryStore(), nil
	}
	store, err := wallet.NewBoltStore(cfg.KeyStorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open key store %s: %w", cfg.KeyStorePath, err)
	}
	return store, nil
}

// GetRPCClient assembles an RPC client from the configuration and the CLI
// flags, the rpc-endpoint flag overriding the configured endpoint.
func GetRPCClient(gctx context.Context, ctx *cli.Context) (*rpcclient.Client, cli.ExitCoder) {
	cfg, err := GetConfig(ctx)
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	endpoint := cfg.RPC.Endpoint
	if addr := ctx.String(RPCEndpointFlag); addr != "" {
		endpoint = addr
	}
	if endpoint == "" {
		return nil, cli.NewExitError(errNoEndpoint, 1)
	}
	logger, err := GetLogger(cfg)
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	store, err := GetKeyStore(cfg)
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	c, err := rpcclient.New(gctx, endpoint, rpcclient.Options{
		DialTimeout:    cfg.RPC.DialTimeout,
		RequestTimeout: cfg.RPC.RequestTimeout,
		KeyStore:       store,
		Logger:         logger,
	})
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	return c, nil
}
