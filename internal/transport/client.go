// Package transport executes single HTTP verbs against a cluster of REST
// gateway hosts. It owns host failover, authentication, TLS trust and static
// header injection; interpreting response status codes is left to the calling
// operation.
package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/litetable/litetable-rest-client/internal/auth"
)

const (
	// ProtocolHTTP and ProtocolHTTPS are the accepted gateway schemes.
	ProtocolHTTP  = "http"
	ProtocolHTTPS = "https"

	requestIDHeader = "X-Request-Id"

	defaultConnectionTimeout = 1 * time.Second
)

// Config wires a transport client.
type Config struct {
	// Protocol is the gateway scheme, http or https.
	Protocol string
	// Cluster lists the gateway host:port candidates. At least one required.
	Cluster *Cluster
	// ConnectionTimeout bounds each individual HTTP attempt. There is no
	// cross-attempt deadline; callers needing one enforce it via context.
	ConnectionTimeout time.Duration
	// AllowSelfSigned trusts self-signed server certificates. Only valid
	// together with the https protocol.
	AllowSelfSigned bool
	// Credentials, when set, wraps every request in a fresh Kerberos login.
	Credentials auth.Provider
	// Username and Password enable preemptive basic auth on every request.
	Username string
	Password string
	// ExtraHeaders are static headers injected into every request.
	ExtraHeaders map[string]string
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Protocol != ProtocolHTTP && c.Protocol != ProtocolHTTPS {
		errGrp = append(errGrp, fmt.Errorf("protocol must be %q or %q, got %q",
			ProtocolHTTP, ProtocolHTTPS, c.Protocol))
	}
	if c.Cluster == nil || len(c.Cluster.Nodes()) == 0 {
		errGrp = append(errGrp, errors.New("cluster cannot be empty"))
	}
	if c.AllowSelfSigned && c.Protocol != ProtocolHTTPS {
		// Refusing beats silently trusting nothing over plaintext.
		errGrp = append(errGrp, errors.New("self-signed certificate trust requires the https protocol"))
	}
	return errors.Join(errGrp...)
}

// Client executes logical HTTP verbs against a cluster. One instance may be
// shared by concurrent operations.
type Client struct {
	httpClient *http.Client
	cluster    *Cluster
	protocol   string
	creds      auth.Provider
	basicAuth  string

	mu           sync.RWMutex
	extraHeaders map[string]string
}

// New creates a transport client from the given configuration.
func New(cfg *Config) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	timeout := cfg.ConnectionTimeout
	if timeout <= 0 {
		timeout = defaultConnectionTimeout
	}
	httpTransport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.AllowSelfSigned {
		httpTransport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	c := &Client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: httpTransport,
		},
		cluster:      cfg.Cluster,
		protocol:     cfg.Protocol,
		creds:        cfg.Credentials,
		extraHeaders: make(map[string]string),
	}
	if cfg.Username != "" {
		token := base64.StdEncoding.EncodeToString([]byte(cfg.Username + ":" + cfg.Password))
		c.basicAuth = "Basic " + token
	}
	for k, v := range cfg.ExtraHeaders {
		c.extraHeaders[k] = v
	}
	return c, nil
}

// Cluster returns the cluster definition this client fails over across.
func (c *Client) Cluster() *Cluster {
	return c.cluster
}

// AddExtraHeader registers a static header applied to every subsequent
// request. Safe for concurrent use.
func (c *Client) AddExtraHeader(name, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.extraHeaders[name] = value
}

// RemoveExtraHeader stops injecting a previously added header.
func (c *Client) RemoveExtraHeader(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.extraHeaders, name)
}

// Get issues a GET for path with the given Accept header.
func (c *Client) Get(ctx context.Context, path, accept string) (*Response, error) {
	h := http.Header{}
	if accept != "" {
		h.Set("Accept", accept)
	}
	return c.execute(ctx, http.MethodGet, path, h, nil)
}

// Head issues a HEAD for path.
func (c *Client) Head(ctx context.Context, path string) (*Response, error) {
	return c.execute(ctx, http.MethodHead, path, nil, nil)
}

// Put issues a PUT for path with the given body and Content-Type.
func (c *Client) Put(ctx context.Context, path, contentType string, body []byte) (*Response, error) {
	h := http.Header{}
	h.Set("Content-Type", contentType)
	return c.execute(ctx, http.MethodPut, path, h, body)
}

// Post issues a POST for path with the given body and Content-Type.
func (c *Client) Post(ctx context.Context, path, contentType string, body []byte) (*Response, error) {
	h := http.Header{}
	h.Set("Content-Type", contentType)
	return c.execute(ctx, http.MethodPost, path, h, body)
}

// Delete issues a DELETE for path.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.execute(ctx, http.MethodDelete, path, nil, nil)
}

// execute runs one logical verb against the cluster. It starts at a random
// host and advances through the list on connection errors until every host has
// been tried once; the first completed HTTP exchange wins irrespective of its
// status code. Exhausting the whole list surfaces the last connection error.
func (c *Client) execute(ctx context.Context, method, path string, header http.Header, body []byte) (*Response, error) {
	nodes := c.cluster.Nodes()
	start := c.cluster.randomStart()

	var lastErr error
	for i := 0; i < len(nodes); i++ {
		host := nodes[(start+i)%len(nodes)]
		c.cluster.markLastHost(host)

		uri := c.protocol + "://" + host + path
		resp, err := c.executeURI(ctx, method, uri, header, body)
		if err == nil {
			return resp, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Debug().Str("host", host).Str("path", path).Err(err).
			Msg("gateway host unreachable, failing over")
		lastErr = err
	}
	return nil, fmt.Errorf("%s %s failed on all %d cluster hosts: %w",
		method, path, len(nodes), lastErr)
}

// executeURI performs a single HTTP attempt against a fully qualified URI.
func (c *Client) executeURI(ctx context.Context, method, uri string, header http.Header, body []byte) (*Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, uri, reader)
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	for k, v := range c.extraHeaders {
		req.Header.Set(k, v)
	}
	c.mu.RUnlock()
	for k, values := range header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}
	if c.basicAuth != "" {
		req.Header.Set("Authorization", c.basicAuth)
	}
	req.Header.Set(requestIDHeader, uuid.NewString())

	if c.creds != nil {
		creds, err := c.creds.AcquireCredentials()
		if err != nil {
			return nil, err
		}
		defer creds.Destroy()
		if err := creds.SetAuthHeader(req); err != nil {
			return nil, fmt.Errorf("setting auth header: %w", err)
		}
	}

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	log.Debug().
		Str("method", method).
		Str("uri", uri).
		Int("status", resp.StatusCode).
		Str("requestId", req.Header.Get(requestIDHeader)).
		Dur("elapsed", time.Since(startTime)).
		Msg("gateway request")

	return &Response{
		Code:   resp.StatusCode,
		Header: resp.Header,
		Body:   respBody,
	}, nil
}
