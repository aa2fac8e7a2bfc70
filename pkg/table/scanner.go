package table

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"
)

// Scanner iterates the rows a Scan selected. Fetch batches with Next until it
// returns nil, then Close to release the server-side scanner.
type Scanner struct {
	table    *RemoteTable
	location string
	closed   bool
}

// Scan opens a server-side scanner for the given specification.
func (t *RemoteTable) Scan(ctx context.Context, s *Scan) (*Scanner, error) {
	body, err := t.codec.EncodeScanner(s)
	if err != nil {
		return nil, fmt.Errorf("encoding scanner spec: %w", err)
	}
	path := basePath(t.accessToken) + url.PathEscape(t.name.String()) + "/scanner"
	for i := 0; i < t.maxRetries; i++ {
		resp, err := t.client.Post(ctx, path, t.codec.ContentType(), body)
		if err != nil {
			return nil, err
		}
		switch resp.Code {
		case http.StatusOK, http.StatusCreated:
			location := resp.Location()
			if location == "" {
				return nil, newError(ErrNotFound, "scanner location missing for POST %s", path)
			}
			// The gateway answers with an absolute URL; keep only the path
			// so follow-up fetches go through cluster failover again.
			parsed, err := url.Parse(location)
			if err != nil {
				return nil, fmt.Errorf("parsing scanner location %q: %w", location, err)
			}
			return &Scanner{table: t, location: parsed.Path}, nil
		case statusOverloaded:
			log.Warn().Str("path", path).Msg("gateway overloaded, backing off")
			if err := sleepBackoff(ctx, t.sleepTime); err != nil {
				return nil, err
			}
		default:
			return nil, &StatusError{Method: http.MethodPost, Path: path, Code: resp.Code}
		}
	}
	return nil, newError(ErrRetryTimeout, "POST %s", path)
}

// Next fetches the next batch of rows. A nil slice with a nil error means the
// scanner is exhausted.
func (s *Scanner) Next(ctx context.Context) ([]*Result, error) {
	if s.closed {
		return nil, nil
	}
	t := s.table
	for i := 0; i < t.maxRetries; i++ {
		resp, err := t.client.Get(ctx, s.location, t.codec.ContentType())
		if err != nil {
			return nil, err
		}
		switch resp.Code {
		case http.StatusOK:
			rows, err := t.codec.DecodeCellSet(bytes.NewReader(resp.Body))
			if err != nil {
				return nil, fmt.Errorf("decoding cell set: %w", err)
			}
			results := make([]*Result, 0, len(rows))
			for _, row := range rows {
				results = append(results, NewResultWithComparer(row.Cells, t.comparer))
			}
			return results, nil
		case http.StatusNoContent:
			s.closed = true
			return nil, nil
		case http.StatusNotFound:
			return nil, newError(errScannerExpired, "GET %s", s.location)
		case statusOverloaded:
			log.Warn().Str("path", s.location).Msg("gateway overloaded, backing off")
			if err := sleepBackoff(ctx, t.sleepTime); err != nil {
				return nil, err
			}
		default:
			return nil, &StatusError{Method: http.MethodGet, Path: s.location, Code: resp.Code}
		}
	}
	return nil, newError(ErrRetryTimeout, "GET %s", s.location)
}

// Close releases the server-side scanner. Closing an exhausted scanner is a
// no-op.
func (s *Scanner) Close(ctx context.Context) error {
	if s.closed {
		return nil
	}
	s.closed = true
	resp, err := s.table.client.Delete(ctx, s.location)
	if err != nil {
		return err
	}
	if resp.Code != http.StatusOK {
		return &StatusError{Method: http.MethodDelete, Path: s.location, Code: resp.Code}
	}
	return nil
}
