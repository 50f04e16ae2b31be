// Package cfg
package cfg

import (
	"os"
	"strconv"
	"time"
)

const (
	ModeDev        = "dev"
	ModeProduction = "prod"
)

const (
	// Governance canister of the IC mainnet NNS.
	DefaultGovernanceCanisterID = "rrkah-fqaaa-aaaaa-aaaaq-cai"
	DefaultICURL                = "https://ic0.app"
)

type BackendConfig struct {
	ServerMode string
	Port       string

	LogLevel  string
	SentryDSN string

	GovernanceCanisterID string
	ICURL                string

	DefaultAPITimeout time.Duration

	// Detail-fetch pool size, 1 keeps the sequential reference behavior.
	FetchWorkers int
}

func New() (BackendConfig, error) {
	apiDefaultTimeoutStr := os.Getenv("DEFAULT_API_TIMEOUT")
	apiDefaultTimeout, err := strconv.Atoi(apiDefaultTimeoutStr)
	if err != nil {
		apiDefaultTimeout = 10
	}

	fetchWorkersStr := os.Getenv("FETCH_WORKERS")
	fetchWorkers, err := strconv.Atoi(fetchWorkersStr)
	if err != nil || fetchWorkers < 1 {
		fetchWorkers = 1
	}

	icURL := os.Getenv("IC_URL")
	if icURL == "" {
		icURL = DefaultICURL
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	cfg := BackendConfig{
		ServerMode: os.Getenv("SERVER_MODE"),
		Port:       port,
		LogLevel:   os.Getenv("LOG_LEVEL"),
		SentryDSN:  os.Getenv("SENTRY_DSN"),

		GovernanceCanisterID: os.Getenv("GOVERNANCE_CANISTER_ID"),
		ICURL:                icURL,

		DefaultAPITimeout: time.Duration(apiDefaultTimeout) * time.Second,
		FetchWorkers:      fetchWorkers,
	}

	return cfg, nil
}

// IsComplete reports whether the config carries a canister target. A missing
// target is a warning at startup, not an abort, live queries will fail on
// first use instead.
func (c BackendConfig) IsComplete() bool {
	return c.GovernanceCanisterID != ""
}
