/*
Package rpcclient implements a NEAR JSON-RPC client. It only covers the
transport and the raw RPC surface; account-level orchestration lives in the
account subpackage.

Client is safe for use from multiple goroutines. It performs no retries: any
transport or remote failure propagates to the caller unchanged.
*/
package rpcclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/frol/nearlib/pkg/nearrpc"
	"github.com/frol/nearlib/pkg/wallet"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

const (
	defaultDialTimeout    = 4 * time.Second
	defaultRequestTimeout = 4 * time.Second
)

// Client represents the middleman for executing JSON-RPC calls against
// remote NEAR RPC nodes.
type Client struct {
	cli      *http.Client
	endpoint *url.URL
	ctx      context.Context
	opts     Options
	log      *zap.Logger
	requestF func(context.Context, *nearrpc.Request) (*nearrpc.Response, error)

	keys wallet.KeyStore

	latestReqID *atomic.Uint64
	// getNextRequestID returns an ID to be used for the subsequent request
	// creation. It is defined on Client, so that our testing code can
	// override it for the sake of more predictable request ID generation.
	getNextRequestID func() uint64
}

// Options defines options for the RPC client. All values are optional. If
// any duration is not specified, a default of 4 seconds will be used.
type Options struct {
	DialTimeout    time.Duration
	RequestTimeout time.Duration
	// Limit total number of connections per host. No limit by default.
	MaxConnsPerHost int
	// KeyStore supplies signing keys for SignAndSubmitTransaction. Read
	// calls and pre-signed submissions work without it.
	KeyStore wallet.KeyStore
	// Logger enables debug logging of performed requests. Discarded by
	// default.
	Logger *zap.Logger
}

// New returns a new Client ready to use.
func New(ctx context.Context, endpoint string, opts Options) (*Client, error) {
	cl := new(Client)
	err := initClient(ctx, cl, endpoint, opts)
	if err != nil {
		return nil, err
	}
	return cl, nil
}

func initClient(ctx context.Context, cl *Client, endpoint string, opts Options) error {
	url, err := url.Parse(endpoint)
	if err != nil {
		return err
	}

	if opts.DialTimeout <= 0 {
		opts.DialTimeout = defaultDialTimeout
	}

	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaultRequestTimeout
	}

	cl.log = opts.Logger
	if cl.log == nil {
		cl.log = zap.NewNop()
	}

	cl.ctx = ctx
	cl.cli = &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: opts.DialTimeout,
			}).DialContext,
			MaxConnsPerHost: opts.MaxConnsPerHost,
		},
		Timeout: opts.RequestTimeout,
	}
	cl.endpoint = url
	cl.opts = opts
	cl.keys = opts.KeyStore
	cl.latestReqID = atomic.NewUint64(0)
	cl.getNextRequestID = (cl).getRequestID
	cl.requestF = cl.makeHTTPRequest
	return nil
}

func (c *Client) getRequestID() uint64 {
	return c.latestReqID.Inc()
}

// Endpoint returns the address this client sends requests to.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// Context returns the context the client was created with.
func (c *Client) Context() context.Context {
	return c.ctx
}

// Close closes unused underlying network connections.
func (c *Client) Close() {
	c.cli.CloseIdleConnections()
}

func (c *Client) performRequest(ctx context.Context, method string, p []interface{}, v interface{}) error {
	if p == nil {
		p = []interface{}{}
	}
	var r = nearrpc.Request{
		JSONRPC: nearrpc.JSONRPCVersion,
		Method:  method,
		Params:  p,
		ID:      c.getNextRequestID(),
	}

	start := time.Now()
	raw, err := c.requestF(ctx, &r)
	addReqTimeMetric(method, time.Since(start))

	if raw != nil && raw.Error != nil {
		c.log.Debug("RPC request failed remotely",
			zap.String("method", method), zap.Error(raw.Error))
		return raw.Error
	} else if err != nil {
		c.log.Debug("RPC request failed",
			zap.String("method", method), zap.Error(err))
		return err
	} else if raw == nil || raw.Result == nil {
		return errors.New("no result returned")
	}
	return json.Unmarshal(raw.Result, v)
}

func (c *Client) makeHTTPRequest(ctx context.Context, r *nearrpc.Request) (*nearrpc.Response, error) {
	var (
		buf = new(bytes.Buffer)
		raw = new(nearrpc.Response)
	)

	if err := json.NewEncoder(buf).Encode(r); err != nil {
		return nil, err
	}

	if ctx == nil {
		ctx = c.ctx
	}
	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint.String(), buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.cli.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// The node might send us a proper JSON anyway, so look there first and if
	// it parses, it has more relevant data than the HTTP error code.
	err = json.NewDecoder(resp.Body).Decode(raw)
	if err != nil {
		if resp.StatusCode != http.StatusOK {
			err = fmt.Errorf("HTTP %d/%s", resp.StatusCode, http.StatusText(resp.StatusCode))
		} else {
			err = fmt.Errorf("JSON decoding: %w", err)
		}
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// Ping attempts to create a connection to the endpoint and returns an error
// if there is any.
func (c *Client) Ping() error {
	conn, err := net.DialTimeout("tcp", c.endpoint.Host, defaultDialTimeout)
	if err != nil {
		return err
	}
	_ = conn.Close()
	return nil
}
