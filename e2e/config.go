package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// GUESTPUSH_E2E_ADDR points the suite at a running instance,
	// e.g. "http://localhost:8080". Empty skips the suite.
	ServerAddr string `envconfig:"GUESTPUSH_E2E_ADDR"`
	// E2E_DEBUG_JSON allows dumping full request/response bodies
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
