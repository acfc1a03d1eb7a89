// Package config loads the glossary-sync configuration from a local YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Spreadsheet identifies the source of the glossary terms - either a local TSV
// file or a Google Sheets worksheet (URL + range).
type Spreadsheet struct {
	File  string `yaml:"file"`
	URL   string `yaml:"url"`
	Range string `yaml:"range"`
}

// Config is the run configuration - the service principal for the catalog, the
// catalog account, the default governance domain and the spreadsheet source. It is
// loaded once at startup and immutable thereafter.
type Config struct {
	TenantID     string `yaml:"tenant-id" validate:"required,uuid"`
	ClientID     string `yaml:"client-id" validate:"required,uuid"`
	ClientSecret string `yaml:"client-secret" validate:"required"`
	Resource     string `yaml:"resource" validate:"required,url"`
	Account      string `yaml:"account" validate:"required"`

	// Endpoint overrides the catalog API base URL derived from the account name.
	Endpoint string `yaml:"endpoint" validate:"omitempty,url"`

	// Domain is the GUID of the default governance domain for terms without a
	// 'domain' column.
	Domain string `yaml:"domain" validate:"omitempty,uuid"`

	Spreadsheet Spreadsheet `yaml:"spreadsheet"`

	// Credentials is the path of the Google API 'credentials.json' file, used only
	// when the spreadsheet source is a Google Sheets worksheet.
	Credentials string `yaml:"credentials"`

	Workdir string `yaml:"workdir"`
}

func NewConfig() *Config {
	return &Config{}
}

// Load reads and validates the configuration file.
func (c *Config) Load(path string) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(bytes, c); err != nil {
		return fmt.Errorf("invalid configuration file %s (%v)", path, err)
	}

	return c.Validate()
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrors validator.ValidationErrors
		if errors.As(err, &verrors) && len(verrors) > 0 {
			e := verrors[0]
			return fmt.Errorf("invalid configuration - '%s' fails '%s' validation", key(e.Namespace()), e.Tag())
		}

		return err
	}

	return nil
}

// Namespace is e.g. 'Config.TenantID' - map it back to the YAML key.
func key(namespace string) string {
	parts := strings.Split(namespace, ".")
	field := parts[len(parts)-1]

	keys := map[string]string{
		"TenantID":     "tenant-id",
		"ClientID":     "client-id",
		"ClientSecret": "client-secret",
		"Resource":     "resource",
		"Account":      "account",
		"Endpoint":     "endpoint",
		"Domain":       "domain",
	}

	if k, ok := keys[field]; ok {
		return k
	}

	return strings.ToLower(field)
}
