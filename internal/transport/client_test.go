package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// newGateway spins up an in-process gateway and returns its host:port.
func newGateway(t *testing.T, router chi.Router) string {
	t.Helper()
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return strings.TrimPrefix(srv.URL, "http://")
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		cfg     Config
		wantErr string
	}{
		"unknown protocol": {
			cfg:     Config{Protocol: "ftp", Cluster: NewCluster("h:1")},
			wantErr: "protocol",
		},
		"empty cluster": {
			cfg:     Config{Protocol: ProtocolHTTP, Cluster: NewCluster()},
			wantErr: "cluster cannot be empty",
		},
		"nil cluster": {
			cfg:     Config{Protocol: ProtocolHTTP},
			wantErr: "cluster cannot be empty",
		},
		"self-signed over http": {
			cfg: Config{
				Protocol:        ProtocolHTTP,
				Cluster:         NewCluster("h:1"),
				AllowSelfSigned: true,
			},
			wantErr: "self-signed certificate trust requires the https protocol",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := New(&tc.cfg)
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestFailoverSkipsDeadHosts(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Get("/version/rest", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"REST":"0.0.3"}`))
	})
	live := newGateway(t, router)

	// Two unroutable hosts plus one live one; whatever the random starting
	// index, every request must land on the live host.
	client, err := New(&Config{
		Protocol:          ProtocolHTTP,
		Cluster:           NewCluster("127.0.0.1:1", "127.0.0.1:2", live),
		ConnectionTimeout: 2 * time.Second,
	})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		resp, err := client.Get(context.Background(), "/version/rest", "application/json")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.Code)
		require.JSONEq(t, `{"REST":"0.0.3"}`, string(resp.Body))
		require.Equal(t, live, client.Cluster().LastHost())
	}
}

func TestAllHostsDown(t *testing.T) {
	t.Parallel()

	client, err := New(&Config{
		Protocol:          ProtocolHTTP,
		Cluster:           NewCluster("127.0.0.1:1", "127.0.0.1:2"),
		ConnectionTimeout: time.Second,
	})
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "/", "")
	require.ErrorContains(t, err, "failed on all 2 cluster hosts")
}

func TestNonOKStatusIsNotFailedOver(t *testing.T) {
	t.Parallel()

	var hits int32
	router := chi.NewRouter()
	router.Head("/missing", func(w http.ResponseWriter, _ *http.Request) {
		hits++
		w.WriteHeader(http.StatusNotFound)
	})
	host := newGateway(t, router)

	client, err := New(&Config{
		Protocol: ProtocolHTTP,
		Cluster:  NewCluster(host),
	})
	require.NoError(t, err)

	resp, err := client.Head(context.Background(), "/missing")
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.Code)
	require.EqualValues(t, 1, hits)
}

func TestHeaderInjection(t *testing.T) {
	t.Parallel()

	var got http.Header
	router := chi.NewRouter()
	router.Put("/t/r", func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	})
	host := newGateway(t, router)

	client, err := New(&Config{
		Protocol:     ProtocolHTTP,
		Cluster:      NewCluster(host),
		Username:     "bob",
		Password:     "sekret",
		ExtraHeaders: map[string]string{"X-Tenant": "acme"},
	})
	require.NoError(t, err)
	client.AddExtraHeader("X-Trace", "on")

	_, err = client.Put(context.Background(), "/t/r", "application/json", []byte(`{}`))
	require.NoError(t, err)

	require.Equal(t, "application/json", got.Get("Content-Type"))
	require.Equal(t, "acme", got.Get("X-Tenant"))
	require.Equal(t, "on", got.Get("X-Trace"))
	// bob:sekret base64 encoded.
	require.Equal(t, "Basic Ym9iOnNla3JldA==", got.Get("Authorization"))
	require.NotEmpty(t, got.Get("X-Request-Id"))

	client.RemoveExtraHeader("X-Trace")
	_, err = client.Put(context.Background(), "/t/r", "application/json", []byte(`{}`))
	require.NoError(t, err)
	require.Empty(t, got.Get("X-Trace"))
}

func TestRequestIDsAreUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	router := chi.NewRouter()
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		seen[r.Header.Get("X-Request-Id")] = true
		w.WriteHeader(http.StatusOK)
	})
	host := newGateway(t, router)

	client, err := New(&Config{Protocol: ProtocolHTTP, Cluster: NewCluster(host)})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := client.Get(context.Background(), "/", "")
		require.NoError(t, err)
	}
	require.Len(t, seen, 3)
}

func TestExecuteHonorsContext(t *testing.T) {
	t.Parallel()

	client, err := New(&Config{
		Protocol: ProtocolHTTP,
		Cluster:  NewCluster("127.0.0.1:1", "127.0.0.1:2", "127.0.0.1:3"),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = client.Delete(ctx, "/t/r")
	require.ErrorIs(t, err, context.Canceled)
}

func TestClusterLastHost(t *testing.T) {
	t.Parallel()

	c := NewCluster("a:1").Add("b:2")
	require.Equal(t, []string{"a:1", "b:2"}, c.Nodes())
	require.Empty(t, c.LastHost())
	c.markLastHost("b:2")
	require.Equal(t, "b:2", c.LastHost())
}

func TestResponseLocation(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Post("/t/scanner", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Location", "http://gw/t/scanner/abc123")
		w.WriteHeader(http.StatusCreated)
	})
	host := newGateway(t, router)

	client, err := New(&Config{Protocol: ProtocolHTTP, Cluster: NewCluster(host)})
	require.NoError(t, err)

	resp, err := client.Post(context.Background(), "/t/scanner", "application/json", []byte(`{}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.Code)
	require.Equal(t, "http://gw/t/scanner/abc123", resp.Location())
}
