package auth

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// loginConfigEnv points at the external login configuration file when no path
// is configured explicitly.
const loginConfigEnv = "LITETABLE_LOGIN_CONFIG"

// loginEntry is one named entry in the external login configuration file:
//
//	client:
//	  principal: svc/gateway@EXAMPLE.COM
//	  keytab: /etc/security/keytabs/svc.keytab
//	  krb5Conf: /etc/krb5.conf
type loginEntry struct {
	Principal string `yaml:"principal"`
	Keytab    string `yaml:"keytab"`
	Krb5Conf  string `yaml:"krb5Conf"`
}

// NamedConfigProvider resolves a named entry in an external login
// configuration file and logs in with the principal and keytab it names.
type NamedConfigProvider struct {
	EntryName  string
	ConfigPath string
}

// AcquireCredentials resolves the entry and performs a keytab login with it.
func (p *NamedConfigProvider) AcquireCredentials() (*Credentials, error) {
	path := p.ConfigPath
	if path == "" {
		path = os.Getenv(loginConfigEnv)
	}
	if path == "" {
		return nil, fmt.Errorf("%w: %w (set %s)", ErrLoginFailed, errMissingLoginConfig, loginConfigEnv)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %v", ErrLoginFailed, errMissingLoginConfig, err)
	}
	entries := map[string]loginEntry{}
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: parsing login config %s: %v", ErrLoginFailed, path, err)
	}
	entry, ok := entries[p.EntryName]
	if !ok {
		return nil, fmt.Errorf("%w: %w: entry %q not found in %s",
			ErrLoginFailed, errMissingLoginConfig, p.EntryName, path)
	}
	kp := &KeytabProvider{
		Principal:    entry.Principal,
		KeytabPath:   entry.Keytab,
		Krb5ConfPath: entry.Krb5Conf,
	}
	return kp.AcquireCredentials()
}
