// Package nns
package nns

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/aviate-labs/agent-go"
	"github.com/aviate-labs/agent-go/principal"
	"go.uber.org/zap"

	"github.com/icpkit/nns-proposals-backend/types"
)

type Config struct {
	CanisterID string
	ICURL      string

	// Per-remote-call deadline, applied on top of any caller deadline.
	Timeout time.Duration

	Logger *zap.Logger
}

// Client is a narrow facade over the governance canister query interface.
type Client struct {
	agent      *agent.Agent
	canisterID principal.Principal
	timeout    time.Duration

	lgr *zap.Logger
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.CanisterID == "" {
		return nil, fmt.Errorf("%w: missing canister ID", types.ErrInvalidConfig)
	}
	canisterID, err := principal.Decode(cfg.CanisterID)
	if err != nil {
		return nil, fmt.Errorf("%w: canister ID %q: %s", types.ErrInvalidConfig, cfg.CanisterID, err)
	}
	host, err := url.Parse(cfg.ICURL)
	if err != nil {
		return nil, fmt.Errorf("%w: IC URL %q: %s", types.ErrInvalidConfig, cfg.ICURL, err)
	}
	a, err := agent.New(agent.Config{
		ClientConfig: &agent.ClientConfig{Host: host},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", types.ErrInvalidConfig, err)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		agent:      a,
		canisterID: canisterID,
		timeout:    timeout,
		lgr:        cfg.Logger,
	}, nil
}

// ListProposals issues list_proposals and converts the response down to
// handles. No retry on failure, the error is terminal for the query.
func (c *Client) ListProposals(ctx context.Context, req ListRequest) ([]*types.ProposalHandle, error) {
	arg := listProposalInfo{
		Limit:               req.Limit,
		ExcludeTopic:        req.ExcludeTopic,
		IncludeStatus:       req.IncludeStatus,
		IncludeRewardStatus: []int32{},
	}
	if arg.ExcludeTopic == nil {
		arg.ExcludeTopic = []int32{}
	}
	if arg.IncludeStatus == nil {
		arg.IncludeStatus = []int32{}
	}
	var resp listProposalInfoResponse
	if err := c.query(ctx, "list_proposals", []any{arg}, []any{&resp}); err != nil {
		return nil, err
	}
	handles := make([]*types.ProposalHandle, 0, len(resp.ProposalInfo))
	for i := range resp.ProposalInfo {
		handles = append(handles, convertHandle(&resp.ProposalInfo[i]))
	}
	return handles, nil
}

// GetProposalInfo issues get_proposal_info for a single proposal. An empty
// opt reply maps to types.ErrProposalNotFound.
func (c *Client) GetProposalInfo(ctx context.Context, proposalID uint64) (*types.ProposalDetail, error) {
	var resp *proposalInfo
	if err := c.query(ctx, "get_proposal_info", []any{proposalID}, []any{&resp}); err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, fmt.Errorf("%w: id %d", types.ErrProposalNotFound, proposalID)
	}
	return convertDetail(resp), nil
}

// query runs one candid query call under the client's deadline. The agent
// call is raced against the context so a stuck transport surfaces as a
// distinct timeout error instead of hanging the whole query.
func (c *Client) query(ctx context.Context, method string, args, values []any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- c.agent.Query(c.canisterID, method, args, values)
	}()
	select {
	case <-ctx.Done():
		if c.lgr != nil {
			c.lgr.Warn("Governance call timed out", zap.String("method", method))
		}
		return fmt.Errorf("%w: %s: %s", types.ErrTimeout, method, ctx.Err())
	case err := <-errCh:
		if err != nil {
			if c.lgr != nil {
				c.lgr.Error("Governance call failed", zap.String("method", method), zap.Error(err))
			}
			return fmt.Errorf("%w: %s: %s", types.ErrTransportFailure, method, err)
		}
		return nil
	}
}
