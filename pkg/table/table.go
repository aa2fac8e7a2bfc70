// Package table implements the client-facing table and admin operations of
// the REST gateway: single-row reads and writes, scans and the small admin
// surface, each built from a mutation model object, a wire codec and the
// cluster transport.
package table

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/litetable/litetable-rest-client/internal/transport"
	"github.com/litetable/litetable-rest-client/pkg/cell"
)

//go:generate mockgen -destination=table_mock.go -package=table -source=table.go

// statusOverloaded is the code the gateway signals transient overload with.
// It is the only status worth sleeping and retrying on.
const statusOverloaded = 509

const (
	defaultMaxRetries = 10
	defaultSleepTime  = 1 * time.Second
)

// gatewayClient executes one HTTP verb against the gateway cluster, failing
// over across hosts on connection errors.
type gatewayClient interface {
	Get(ctx context.Context, path, accept string) (*transport.Response, error)
	Head(ctx context.Context, path string) (*transport.Response, error)
	Put(ctx context.Context, path, contentType string, body []byte) (*transport.Response, error)
	Post(ctx context.Context, path, contentType string, body []byte) (*transport.Response, error)
	Delete(ctx context.Context, path string) (*transport.Response, error)
}

// Config wires a RemoteTable.
type Config struct {
	// Name is the qualified table name.
	Name string
	// Transport executes requests against the cluster.
	Transport gatewayClient
	// Codec translates domain objects to and from the wire.
	Codec WireCodec
	// AccessToken, when set, prefixes every request path.
	AccessToken string
	// MaxRetries bounds attempts against the overloaded status. Default 10.
	MaxRetries int
	// SleepTime is the fixed pause between overload retries. Default 1s.
	SleepTime time.Duration
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Name == "" {
		errGrp = append(errGrp, errors.New("table name cannot be empty"))
	}
	if c.Transport == nil {
		errGrp = append(errGrp, errors.New("transport cannot be nil"))
	}
	if c.Codec == nil {
		errGrp = append(errGrp, errors.New("codec cannot be nil"))
	}
	return errors.Join(errGrp...)
}

// RemoteTable issues row operations against one gateway table. Safe for
// concurrent use; each call is independent and retries are scoped to it.
type RemoteTable struct {
	name        *cell.TableName
	client      gatewayClient
	codec       WireCodec
	accessToken string
	maxRetries  int
	sleepTime   time.Duration
	comparer    cell.Comparer
}

// New creates a remote table handle.
func New(cfg *Config) (*RemoteTable, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	name, err := cell.NewTableName(cfg.Name)
	if err != nil {
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
	var comparer cell.Comparer = cell.Comparator{}
	if name.IsCatalog() {
		comparer = cell.CatalogComparator{}
	}

	return &RemoteTable{
		name:        name,
		client:      cfg.Transport,
		codec:       cfg.Codec,
		accessToken: cfg.AccessToken,
		maxRetries:  maxRetries,
		sleepTime:   sleepTime,
		comparer:    comparer,
	}, nil
}

// Name returns the qualified table name.
func (t *RemoteTable) Name() string {
	return t.name.String()
}

// sleep pauses one backoff interval, aborting early when the context ends.
func sleepBackoff(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// basePath returns "/" or "/<token>/" per the access token configuration.
func basePath(accessToken string) string {
	var sb strings.Builder
	sb.WriteByte('/')
	if accessToken != "" {
		sb.WriteString(accessToken)
		sb.WriteByte('/')
	}
	return sb.String()
}

// Exists checks whether the table is available on the gateway: 200 means it
// is, 404 means it is not.
func (t *RemoteTable) Exists(ctx context.Context) (bool, error) {
	path := basePath(t.accessToken) + url.PathEscape(t.name.String()) + "/exists"
	for i := 0; i < t.maxRetries; i++ {
		resp, err := t.client.Get(ctx, path, t.codec.ContentType())
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
			if err := sleepBackoff(ctx, t.sleepTime); err != nil {
				return false, err
			}
		default:
			return false, &StatusError{Method: http.MethodGet, Path: path, Code: resp.Code}
		}
	}
	return false, newError(ErrRetryTimeout, "GET %s", path)
}

// rowPath builds /<token>/<table>/<row>[/<columns>[/<start>,<end>]]?v=n from
// a Get specification.
func (t *RemoteTable) rowPath(g *Get) string {
	var sb strings.Builder
	sb.WriteString(basePath(t.accessToken))
	sb.WriteString(url.PathEscape(t.name.String()))
	sb.WriteByte('/')
	sb.WriteString(url.PathEscape(string(g.Row())))

	if g.HasFamilies() {
		sb.WriteByte('/')
		first := true
		for _, family := range g.cols.sortedFamilies() {
			quals, all := g.cols.qualifiers(family)
			if all {
				if !first {
					sb.WriteByte(',')
				}
				first = false
				sb.WriteString(url.PathEscape(family))
				continue
			}
			for _, q := range quals {
				if !first {
					sb.WriteByte(',')
				}
				first = false
				sb.WriteString(url.PathEscape(family + ":" + string(q)))
			}
		}
	}
	if !g.TimeRange().IsAllTime() {
		if !g.HasFamilies() {
			sb.WriteString("/*")
		}
		fmt.Fprintf(&sb, "/%d,%d", g.TimeRange().Min, g.TimeRange().Max)
	}
	if g.MaxVersions() > 1 {
		sb.WriteString("?v=")
		sb.WriteString(strconv.Itoa(g.MaxVersions()))
	}
	return sb.String()
}

// Get reads one row. An absent row yields an empty (not nil) result.
func (t *RemoteTable) Get(ctx context.Context, g *Get) (*Result, error) {
	path := t.rowPath(g)
	for i := 0; i < t.maxRetries; i++ {
		resp, err := t.client.Get(ctx, path, t.codec.ContentType())
		if err != nil {
			return nil, err
		}
		switch resp.Code {
		case http.StatusOK:
			rows, err := t.codec.DecodeCellSet(bytes.NewReader(resp.Body))
			if err != nil {
				return nil, fmt.Errorf("decoding cell set: %w", err)
			}
			if len(rows) == 0 {
				return NewResultWithComparer(nil, t.comparer), nil
			}
			return NewResultWithComparer(rows[0].Cells, t.comparer), nil
		case http.StatusNotFound:
			return NewResultWithComparer(nil, t.comparer), nil
		case statusOverloaded:
			log.Warn().Str("path", path).Msg("gateway overloaded, backing off")
			if err := sleepBackoff(ctx, t.sleepTime); err != nil {
				return nil, err
			}
		default:
			return nil, &StatusError{Method: http.MethodGet, Path: path, Code: resp.Code}
		}
	}
	return nil, newError(ErrRetryTimeout, "GET %s", path)
}

// Put applies the staged cells of one row.
func (t *RemoteTable) Put(ctx context.Context, p *Put) error {
	if p.IsEmpty() {
		return newError(errEmptyPut, "row %q", p.Row())
	}
	body, err := t.codec.EncodeCellSet([]RowCells{{Row: p.Row(), Cells: p.Cells()}})
	if err != nil {
		return fmt.Errorf("encoding cell set: %w", err)
	}
	path := basePath(t.accessToken) + url.PathEscape(t.name.String()) +
		"/" + url.PathEscape(string(p.Row()))
	for i := 0; i < t.maxRetries; i++ {
		resp, err := t.client.Put(ctx, path, t.codec.ContentType(), body)
		if err != nil {
			return err
		}
		switch resp.Code {
		case http.StatusOK:
			return nil
		case statusOverloaded:
			log.Warn().Str("path", path).Msg("gateway overloaded, backing off")
			if err := sleepBackoff(ctx, t.sleepTime); err != nil {
				return err
			}
		default:
			return &StatusError{Method: http.MethodPut, Path: path, Code: resp.Code}
		}
	}
	return newError(ErrRetryTimeout, "PUT %s", path)
}

// deletePath builds the row/column/timestamp path of a delete. The REST
// surface addresses at most one column spec per request.
func (t *RemoteTable) deletePath(d *Delete) (string, error) {
	var sb strings.Builder
	sb.WriteString(basePath(t.accessToken))
	sb.WriteString(url.PathEscape(t.name.String()))
	sb.WriteByte('/')
	sb.WriteString(url.PathEscape(string(d.Row())))

	if d.IsEmpty() {
		if d.Timestamp() != cell.LatestTimestamp {
			fmt.Fprintf(&sb, "/%d", d.Timestamp())
		}
		return sb.String(), nil
	}
	cells := d.Cells()
	if len(cells) > 1 {
		return "", newError(errUnsupportedDelete,
			"the gateway addresses one column spec per delete, got %d markers", len(cells))
	}
	marker := cells[0]
	sb.WriteByte('/')
	column := string(marker.Family())
	if len(marker.Qualifier()) > 0 {
		column += ":" + string(marker.Qualifier())
	}
	sb.WriteString(url.PathEscape(column))
	if marker.Timestamp() != cell.LatestTimestamp {
		fmt.Fprintf(&sb, "/%d", marker.Timestamp())
	}
	return sb.String(), nil
}

// Delete removes the row, family or column the delete addresses.
func (t *RemoteTable) Delete(ctx context.Context, d *Delete) error {
	path, err := t.deletePath(d)
	if err != nil {
		return err
	}
	for i := 0; i < t.maxRetries; i++ {
		resp, err := t.client.Delete(ctx, path)
		if err != nil {
			return err
		}
		switch resp.Code {
		case http.StatusOK:
			return nil
		case statusOverloaded:
			log.Warn().Str("path", path).Msg("gateway overloaded, backing off")
			if err := sleepBackoff(ctx, t.sleepTime); err != nil {
				return err
			}
		default:
			return &StatusError{Method: http.MethodDelete, Path: path, Code: resp.Code}
		}
	}
	return newError(ErrRetryTimeout, "DELETE %s", path)
}
