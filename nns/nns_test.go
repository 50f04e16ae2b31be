// Package nns
package nns

import (
	"time"

	"go.uber.org/zap"

	"github.com/icpkit/nns-proposals-backend/cfg"
)

// SetupNodeClient builds a client against the live NNS governance canister.
// Tests using it need network access.
func SetupNodeClient() (ClientInterface, error) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return NewClient(Config{
		CanisterID: cfg.DefaultGovernanceCanisterID,
		ICURL:      cfg.DefaultICURL,
		Timeout:    10 * time.Second,
		Logger:     logger,
	})
}
