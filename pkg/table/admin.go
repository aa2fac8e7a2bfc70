package table

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

// AdminConfig wires a RemoteAdmin.
type AdminConfig struct {
	Transport   gatewayClient
	Codec       WireCodec
	AccessToken string
	MaxRetries  int
	SleepTime   time.Duration
}

func (c *AdminConfig) validate() error {
	var errGrp []error
	if c.Transport == nil {
		errGrp = append(errGrp, errors.New("transport cannot be nil"))
	}
	if c.Codec == nil {
		errGrp = append(errGrp, errors.New("codec cannot be nil"))
	}
	return errors.Join(errGrp...)
}

// RemoteAdmin issues cluster-level admin operations against the gateway.
type RemoteAdmin struct {
	client      gatewayClient
	codec       WireCodec
	accessToken string
	maxRetries  int
	sleepTime   time.Duration
}

// NewAdmin creates a remote admin handle.
func NewAdmin(cfg *AdminConfig) (*RemoteAdmin, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	sleepTime := cfg.SleepTime
	if sleepTime <= 0 {
		sleepTime = defaultSleepTime
	}
	return &RemoteAdmin{
		client:      cfg.Transport,
		codec:       cfg.Codec,
		accessToken: cfg.AccessToken,
		maxRetries:  maxRetries,
		sleepTime:   sleepTime,
	}, nil
}

// RestVersion returns the gateway's REST interface version. An absent
// endpoint is an error: a caller asking for the version needs one.
func (a *RemoteAdmin) RestVersion(ctx context.Context) (string, error) {
	path := basePath(a.accessToken) + "version/rest"
	for i := 0; i < a.maxRetries; i++ {
		resp, err := a.client.Get(ctx, path, a.codec.ContentType())
		if err != nil {
			return "", err
		}
		switch resp.Code {
		case http.StatusOK:
			version, err := a.codec.DecodeVersion(bytes.NewReader(resp.Body))
			if err != nil {
				return "", fmt.Errorf("decoding version: %w", err)
			}
			return version, nil
		case http.StatusNotFound:
			return "", newError(ErrNotFound, "rest version endpoint at %s", path)
		case statusOverloaded:
			log.Warn().Str("path", path).Msg("gateway overloaded, backing off")
			if err := sleepBackoff(ctx, a.sleepTime); err != nil {
				return "", err
			}
		default:
			return "", &StatusError{Method: http.MethodGet, Path: path, Code: resp.Code}
		}
	}
	return "", newError(ErrRetryTimeout, "GET %s", path)
}

// TableList returns the names of the tables the gateway serves.
func (a *RemoteAdmin) TableList(ctx context.Context) ([]string, error) {
	path := basePath(a.accessToken)
	for i := 0; i < a.maxRetries; i++ {
		resp, err := a.client.Get(ctx, path, a.codec.ContentType())
		if err != nil {
			return nil, err
		}
		switch resp.Code {
		case http.StatusOK:
			tables, err := a.codec.DecodeTableList(bytes.NewReader(resp.Body))
			if err != nil {
				return nil, fmt.Errorf("decoding table list: %w", err)
			}
			return tables, nil
		case http.StatusNotFound:
			return nil, newError(ErrNotFound, "table list at %s", path)
		case statusOverloaded:
			log.Warn().Str("path", path).Msg("gateway overloaded, backing off")
			if err := sleepBackoff(ctx, a.sleepTime); err != nil {
				return nil, err
			}
		default:
			return nil, &StatusError{Method: http.MethodGet, Path: path, Code: resp.Code}
		}
	}
	return nil, newError(ErrRetryTimeout, "GET %s", path)
}

// TableAvailable checks whether all regions of a table are being served:
// 200 means available, 404 means not.
func (a *RemoteAdmin) TableAvailable(ctx context.Context, name string) (bool, error) {
	path := basePath(a.accessToken) + url.PathEscape(name) + "/exists"
	for i := 0; i < a.maxRetries; i++ {
		resp, err := a.client.Get(ctx, path, a.codec.ContentType())
		if err != nil {
			return false, err
		}
		switch resp.Code {
		case http.StatusOK:
			return true, nil
		case http.StatusNotFound:
			return false, nil
		case statusOverloaded:
			log.Warn().Str("path", path).Msg("gateway overloaded, backing off")
			if err := sleepBackoff(ctx, a.sleepTime); err != nil {
				return false, err
			}
		default:
			return false, &StatusError{Method: http.MethodGet, Path: path, Code: resp.Code}
		}
	}
	return false, newError(ErrRetryTimeout, "GET %s", path)
}
