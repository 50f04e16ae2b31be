// Package handler
package handler

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/icpkit/nns-proposals-backend/nns"
	"github.com/icpkit/nns-proposals-backend/types"
)

type Config struct {
	// Detail-fetch pool size, minimum 1.
	Workers int

	Logger *zap.Logger
}

// Handler is the capability interface a host (chat plugin, REST server)
// invokes. Handle takes raw command text, Proposals takes a structured
// request for hosts that already speak the filter dialect.
type Handler interface {
	Handle(ctx context.Context, commandText string) (*types.ProposalsResult, error)
	Proposals(ctx context.Context, req *types.ProposalsRequest) (*types.ProposalsResult, error)
	ProposalInfo(ctx context.Context, proposalID uint64) (*types.ProposalSummary, error)
}

type handler struct {
	client  nns.ClientInterface
	workers int

	logger *zap.Logger
}

func New(cfg Config, client nns.ClientInterface) (Handler, error) {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &handler{
		client:  client,
		workers: workers,
		logger:  logger,
	}, nil
}

// Handle parses command text and runs the query. Text that is not a
// !proposals command at all is returned untouched as types.ErrNoCommand so
// the host takes no action. A recognized command with malformed arguments
// falls back to the default request, mirroring the lenient upstream posture.
func (h *handler) Handle(ctx context.Context, commandText string) (*types.ProposalsResult, error) {
	req, err := ParseCommand(commandText)
	switch {
	case err == nil:
	case errors.Is(err, types.ErrMalformedCommand):
		h.logger.Warn("Malformed proposals command, using defaults", zap.String("command", commandText))
		req = types.DefaultProposalsRequest()
	default:
		return nil, err
	}
	return h.Proposals(ctx, req)
}
