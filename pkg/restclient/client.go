// Package restclient is the public entry point of the gateway client. It
// turns a Config into a cluster-aware transport and hands out table and admin
// handles that share it.
package restclient

import (
	"errors"
	"time"

	"github.com/litetable/litetable-rest-client/internal/auth"
	"github.com/litetable/litetable-rest-client/internal/codec"
	"github.com/litetable/litetable-rest-client/internal/transport"
	"github.com/litetable/litetable-rest-client/pkg/table"
)

// Client holds the shared transport and codec behind every table and admin
// handle it creates. Safe for concurrent use.
type Client struct {
	cfg       *Config
	transport *transport.Client
	codec     table.WireCodec
}

// New validates the configuration and builds a client. No network activity
// happens until the first operation.
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	tr, err := transport.New(&transport.Config{
		Protocol:          cfg.Protocol,
		Cluster:           transport.NewCluster(cfg.Hosts...),
		ConnectionTimeout: time.Duration(cfg.ConnectionTimeoutMs) * time.Millisecond,
		AllowSelfSigned:   cfg.AllowSelfSignedCertificates,
		Credentials:       credentialsProvider(cfg),
		Username:          cfg.Username,
		Password:          cfg.Password,
		ExtraHeaders:      cfg.ExtraHeaders,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		cfg:       cfg,
		transport: tr,
		codec:     codec.JSON{},
	}, nil
}

// credentialsProvider maps the Kerberos configuration onto one of the three
// login variants, or nil when Kerberos is off.
func credentialsProvider(cfg *Config) auth.Provider {
	switch {
	case cfg.JAASEntryName != "":
		return &auth.NamedConfigProvider{
			EntryName:  cfg.JAASEntryName,
			ConfigPath: cfg.LoginConfigPath,
		}
	case !cfg.UseKerberos:
		return nil
	case cfg.UserPrincipal != "" && cfg.KeyTabLocation != "":
		return &auth.KeytabProvider{
			Principal:  cfg.UserPrincipal,
			KeytabPath: cfg.KeyTabLocation,
		}
	default:
		return &auth.TicketCacheProvider{}
	}
}

// Table returns an operation handle for the named table.
func (c *Client) Table(name string) (*table.RemoteTable, error) {
	return table.New(&table.Config{
		Name:        name,
		Transport:   c.transport,
		Codec:       c.codec,
		AccessToken: c.cfg.AccessToken,
		MaxRetries:  c.cfg.MaxRetries,
		SleepTime:   time.Duration(c.cfg.SleepTimeMs) * time.Millisecond,
	})
}

// Admin returns the cluster admin handle.
func (c *Client) Admin() (*table.RemoteAdmin, error) {
	return table.NewAdmin(&table.AdminConfig{
		Transport:   c.transport,
		Codec:       c.codec,
		AccessToken: c.cfg.AccessToken,
		MaxRetries:  c.cfg.MaxRetries,
		SleepTime:   time.Duration(c.cfg.SleepTimeMs) * time.Millisecond,
	})
}

// AddExtraHeader registers a static header applied to every subsequent
// request issued through this client.
func (c *Client) AddExtraHeader(name, value string) {
	c.transport.AddExtraHeader(name, value)
}
