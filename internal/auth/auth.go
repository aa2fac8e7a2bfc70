// Package auth acquires Kerberos credentials for gateway requests. Three
// provider variants cover the supported login modes: an explicit principal and
// keytab pair, the ambient ticket cache left behind by kinit, and an entry in
// an external login configuration file.
//
// Credentials are acquired fresh for every logical call and destroyed after
// it, trading per-call cost for never serving a stale ticket.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	krbclient "github.com/jcmturner/gokrb5/v8/client"
	krbconfig "github.com/jcmturner/gokrb5/v8/config"
	"github.com/jcmturner/gokrb5/v8/credentials"
	"github.com/jcmturner/gokrb5/v8/keytab"
	"github.com/jcmturner/gokrb5/v8/spnego"
)

const defaultKrb5Conf = "/etc/krb5.conf"

var (
	// ErrLoginFailed wraps every credential acquisition failure.
	ErrLoginFailed = errors.New("kerberos login failed")

	errNoTicketCache = errors.New("no principal/keytab configured and no ticket cache found; " +
		"run kinit before executing or configure a principal and keytab")
	errMissingLoginConfig = errors.New("missing external login configuration; " +
		"set the login config path or create the named entry")
)

// Credentials is an authenticated Kerberos context able to sign requests.
type Credentials struct {
	client *krbclient.Client
}

// SetAuthHeader attaches a SPNEGO Authorization header to req.
func (c *Credentials) SetAuthHeader(req *http.Request) error {
	return spnego.SetSPNEGOHeader(c.client, req, "")
}

// Destroy releases the session keys held by the credentials.
func (c *Credentials) Destroy() {
	c.client.Destroy()
}

// Provider acquires credentials for one logical call.
type Provider interface {
	AcquireCredentials() (*Credentials, error)
}

// splitPrincipal separates "user@REALM" into its parts. An absent realm is
// left empty and resolved from the krb5 configuration default.
func splitPrincipal(principal string) (user, realm string) {
	if i := strings.LastIndexByte(principal, '@'); i >= 0 {
		return principal[:i], principal[i+1:]
	}
	return principal, ""
}

func loadKrb5Conf(path string) (*krbconfig.Config, error) {
	if path == "" {
		if env := os.Getenv("KRB5_CONFIG"); env != "" {
			path = env
		} else {
			path = defaultKrb5Conf
		}
	}
	cfg, err := krbconfig.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: loading krb5 config %s: %v", ErrLoginFailed, path, err)
	}
	return cfg, nil
}

// KeytabProvider logs in with an explicit principal and keytab file.
type KeytabProvider struct {
	Principal    string
	KeytabPath   string
	Krb5ConfPath string
}

// AcquireCredentials performs a fresh keytab login.
func (p *KeytabProvider) AcquireCredentials() (*Credentials, error) {
	cfg, err := loadKrb5Conf(p.Krb5ConfPath)
	if err != nil {
		return nil, err
	}
	kt, err := keytab.Load(p.KeytabPath)
	if err != nil {
		return nil, fmt.Errorf("%w: loading keytab %s: %v", ErrLoginFailed, p.KeytabPath, err)
	}
	user, realm := splitPrincipal(p.Principal)
	if realm == "" {
		realm = cfg.LibDefaults.DefaultRealm
	}
	cl := krbclient.NewWithKeytab(user, realm, kt, cfg, krbclient.DisablePAFXFAST(true))
	if err := cl.Login(); err != nil {
		return nil, fmt.Errorf("%w: principal %s: %v", ErrLoginFailed, p.Principal, err)
	}
	return &Credentials{client: cl}, nil
}

// TicketCacheProvider reuses a ticket cache established by a prior kinit.
// The principal is taken from the cache itself.
type TicketCacheProvider struct {
	CachePath    string
	Krb5ConfPath string
}

// AcquireCredentials loads the ticket cache and builds a client from it.
func (p *TicketCacheProvider) AcquireCredentials() (*Credentials, error) {
	cfg, err := loadKrb5Conf(p.Krb5ConfPath)
	if err != nil {
		return nil, err
	}
	path := p.CachePath
	if path == "" {
		path = strings.TrimPrefix(os.Getenv("KRB5CCNAME"), "FILE:")
	}
	if path == "" {
		return nil, fmt.Errorf("%w: %w", ErrLoginFailed, errNoTicketCache)
	}
	cache, err := credentials.LoadCCache(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %v", ErrLoginFailed, errNoTicketCache, err)
	}
	cl, err := krbclient.NewFromCCache(cache, cfg, krbclient.DisablePAFXFAST(true))
	if err != nil {
		return nil, fmt.Errorf("%w: ticket cache %s: %v", ErrLoginFailed, path, err)
	}
	return &Credentials{client: cl}, nil
}
