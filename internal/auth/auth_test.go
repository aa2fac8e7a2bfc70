package auth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitPrincipal(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		principal string
		wantUser  string
		wantRealm string
	}{
		"with realm":         {"alice@EXAMPLE.COM", "alice", "EXAMPLE.COM"},
		"without realm":      {"alice", "alice", ""},
		"service principal":  {"svc/gw.example.com@EXAMPLE.COM", "svc/gw.example.com", "EXAMPLE.COM"},
		"realm wins last at": {"odd@name@REALM", "odd@name", "REALM"},
		"empty":              {"", "", ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			user, realm := splitPrincipal(tc.principal)
			require.Equal(t, tc.wantUser, user)
			require.Equal(t, tc.wantRealm, realm)
		})
	}
}

func TestLoadKrb5ConfMissingFile(t *testing.T) {
	t.Parallel()
	_, err := loadKrb5Conf(filepath.Join(t.TempDir(), "absent.conf"))
	require.ErrorIs(t, err, ErrLoginFailed)
}

func TestKeytabProviderMissingKeytab(t *testing.T) {
	krb5 := writeKrb5Conf(t)

	p := &KeytabProvider{
		Principal:    "alice@EXAMPLE.COM",
		KeytabPath:   filepath.Join(t.TempDir(), "absent.keytab"),
		Krb5ConfPath: krb5,
	}
	_, err := p.AcquireCredentials()
	require.ErrorIs(t, err, ErrLoginFailed)
	require.ErrorContains(t, err, "keytab")
}

func TestTicketCacheProvider(t *testing.T) {
	krb5 := writeKrb5Conf(t)

	t.Run("no cache configured", func(t *testing.T) {
		t.Setenv("KRB5CCNAME", "")
		p := &TicketCacheProvider{Krb5ConfPath: krb5}
		_, err := p.AcquireCredentials()
		require.ErrorIs(t, err, ErrLoginFailed)
		require.ErrorIs(t, err, errNoTicketCache)
	})

	t.Run("env cache path missing on disk", func(t *testing.T) {
		t.Setenv("KRB5CCNAME", "FILE:"+filepath.Join(t.TempDir(), "absent_ccache"))
		p := &TicketCacheProvider{Krb5ConfPath: krb5}
		_, err := p.AcquireCredentials()
		require.ErrorIs(t, err, errNoTicketCache)
	})
}

func TestNamedConfigProvider(t *testing.T) {
	krb5 := writeKrb5Conf(t)

	t.Run("no config path anywhere", func(t *testing.T) {
		t.Setenv(loginConfigEnv, "")
		p := &NamedConfigProvider{EntryName: "client"}
		_, err := p.AcquireCredentials()
		require.ErrorIs(t, err, errMissingLoginConfig)
	})

	t.Run("entry not found", func(t *testing.T) {
		path := writeLoginConfig(t, krb5)
		p := &NamedConfigProvider{EntryName: "nosuch", ConfigPath: path}
		_, err := p.AcquireCredentials()
		require.ErrorIs(t, err, errMissingLoginConfig)
		require.ErrorContains(t, err, `entry "nosuch"`)
	})

	t.Run("entry resolved from env path", func(t *testing.T) {
		path := writeLoginConfig(t, krb5)
		t.Setenv(loginConfigEnv, path)

		// Resolution succeeds; the login then fails on the absent keytab,
		// proving the entry's fields reached the keytab provider.
		p := &NamedConfigProvider{EntryName: "client"}
		_, err := p.AcquireCredentials()
		require.ErrorIs(t, err, ErrLoginFailed)
		require.ErrorContains(t, err, "keytab")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "login.yaml")
		require.NoError(t, os.WriteFile(path, []byte("client: [not a map"), 0o600))
		p := &NamedConfigProvider{EntryName: "client", ConfigPath: path}
		_, err := p.AcquireCredentials()
		require.ErrorIs(t, err, ErrLoginFailed)
	})
}

func writeKrb5Conf(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "krb5.conf")
	conf := "[libdefaults]\n  default_realm = EXAMPLE.COM\n\n[realms]\n  EXAMPLE.COM = {\n    kdc = kdc.example.com\n  }\n"
	require.NoError(t, os.WriteFile(path, []byte(conf), 0o600))
	return path
}

func writeLoginConfig(t *testing.T, krb5Path string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "login.yaml")
	cfg := "client:\n" +
		"  principal: alice@EXAMPLE.COM\n" +
		"  keytab: " + filepath.Join(t.TempDir(), "absent.keytab") + "\n" +
		"  krb5Conf: " + krb5Path + "\n"
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))
	return path
}
