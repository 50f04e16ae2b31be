// Package nns
package nns

import (
	"context"

	"github.com/icpkit/nns-proposals-backend/types"
)

// ListRequest carries the ledger-native filter dialect: topic filtering is
// exclusion-based, status filtering is inclusion-based.
type ListRequest struct {
	Limit         uint32
	ExcludeTopic  []int32
	IncludeStatus []int32
}

type ClientInterface interface {
	ListProposals(ctx context.Context, req ListRequest) ([]*types.ProposalHandle, error)
	GetProposalInfo(ctx context.Context, proposalID uint64) (*types.ProposalDetail, error)
}
