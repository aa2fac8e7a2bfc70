package restclient

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

const (
	defaultMaxRetries          = 10
	defaultSleepTimeMs         = 1000
	defaultConnectionTimeoutMs = 1000
)

// Config is the client configuration surface, loadable from a YAML file:
//
//	protocol: https
//	hosts:
//	  - gateway-1:8080
//	  - gateway-2:8080
//	maxRetries: 10
//	sleepTimeMs: 1000
//	connectionTimeoutMs: 1000
//	useKerberos: true
//	userPrincipal: svc/client@EXAMPLE.COM
//	keyTabLocation: /etc/security/keytabs/svc.keytab
//	extraHeaders:
//	  X-Tenant: analytics
type Config struct {
	// Protocol is the gateway scheme, http or https. Required.
	Protocol string `yaml:"protocol"`
	// Hosts lists the gateway host:port candidates. At least one required.
	Hosts []string `yaml:"hosts"`
	// MaxRetries bounds retries against the overloaded status.
	MaxRetries int `yaml:"maxRetries"`
	// SleepTimeMs is the fixed pause between overload retries.
	SleepTimeMs int64 `yaml:"sleepTimeMs"`
	// ConnectionTimeoutMs bounds each individual HTTP attempt.
	ConnectionTimeoutMs int `yaml:"connectionTimeoutMs"`

	// UseKerberos wraps every request in a Kerberos login. With both
	// UserPrincipal and KeyTabLocation set the login uses the keytab;
	// otherwise the ambient ticket cache from a prior kinit.
	UseKerberos    bool   `yaml:"useKerberos"`
	UserPrincipal  string `yaml:"userPrincipal"`
	KeyTabLocation string `yaml:"keyTabLocation"`
	// JAASEntryName names an entry in the external login configuration file,
	// superseding the principal/keytab pair.
	JAASEntryName string `yaml:"jaasEntryName"`
	// LoginConfigPath locates the external login configuration file used
	// with JAASEntryName. Defaults to $LITETABLE_LOGIN_CONFIG.
	LoginConfigPath string `yaml:"loginConfigPath"`

	// Username and Password enable preemptive basic auth.
	Username string `yaml:"username"`
	Password string `yaml:"password"`

	// AllowSelfSignedCertificates trusts self-signed gateway certificates.
	// Only valid together with the https protocol.
	AllowSelfSignedCertificates bool `yaml:"allowSelfSignedCertificates"`

	// ExtraHeaders are static headers injected into every request.
	ExtraHeaders map[string]string `yaml:"extraHeaders"`

	// AccessToken, when set, prefixes every request path.
	AccessToken string `yaml:"accessToken"`
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.MaxRetries <= 0 {
		c.MaxRetries = defaultMaxRetries
	}
	if c.SleepTimeMs <= 0 {
		c.SleepTimeMs = defaultSleepTimeMs
	}
	if c.ConnectionTimeoutMs <= 0 {
		c.ConnectionTimeoutMs = defaultConnectionTimeoutMs
	}
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Protocol != "http" && c.Protocol != "https" {
		errGrp = append(errGrp, fmt.Errorf("protocol must be http or https, got %q", c.Protocol))
	}
	if len(c.Hosts) == 0 {
		errGrp = append(errGrp, errors.New("at least one host is required"))
	}
	for _, h := range c.Hosts {
		if h == "" {
			errGrp = append(errGrp, errors.New("hosts cannot contain empty entries"))
			break
		}
	}
	if c.AllowSelfSignedCertificates && c.Protocol != "https" {
		errGrp = append(errGrp, errors.New("allowSelfSignedCertificates requires the https protocol"))
	}
	if c.KeyTabLocation != "" && c.UserPrincipal == "" {
		errGrp = append(errGrp, errors.New("keyTabLocation requires userPrincipal"))
	}
	return errors.Join(errGrp...)
}
