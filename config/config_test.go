package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() Config {
	return Config{
		AppPort:       "4000",
		DatabaseURL:   "mongodb://localhost:27017",
		DatabaseName:  "prescripto",
		Env:           "development",
		JWTSecret:     "test-secret",
		AdminEmail:    "admin@example.com",
		AdminPassword: "admin-password",
	}
}

func TestValidateAcceptsCompleteConfig(t *testing.T) {
	require.NoError(t, Validate(validTestConfig()))
}

func TestValidateRefusesMissingSecrets(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing jwt secret", func(c *Config) { c.JWTSecret = "" }},
		{"missing admin email", func(c *Config) { c.AdminEmail = "" }},
		{"missing admin password", func(c *Config) { c.AdminPassword = "" }},
		{"missing database url", func(c *Config) { c.DatabaseURL = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validTestConfig()
			tc.mutate(&cfg)
			assert.Error(t, Validate(cfg))
		})
	}
}

func TestValidateRefusesMissingSecretsInProduction(t *testing.T) {
	// The policy holds in every environment, not just production; a
	// production Env must make no difference.
	cfg := validTestConfig()
	cfg.Env = "production"
	cfg.JWTSecret = ""
	assert.Error(t, Validate(cfg))
}
