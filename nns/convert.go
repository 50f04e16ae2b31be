// Package nns
package nns

import (
	"github.com/icpkit/nns-proposals-backend/types"
)

func convertHandle(info *proposalInfo) *types.ProposalHandle {
	h := &types.ProposalHandle{}
	if info.ID != nil {
		h.ID = info.ID.ID
	}
	if info.Proposal != nil {
		if info.Proposal.Title != nil {
			h.Title = *info.Proposal.Title
		}
		h.Summary = info.Proposal.Summary
	}
	return h
}

func convertDetail(info *proposalInfo) *types.ProposalDetail {
	d := &types.ProposalDetail{
		Topic:            info.Topic,
		Status:           info.Status,
		TimestampSeconds: info.ProposalTimestampSeconds,
	}
	if info.ID != nil {
		d.ID = info.ID.ID
	}
	if info.Proposal != nil {
		if info.Proposal.Title != nil {
			d.Title = *info.Proposal.Title
		}
		d.Summary = info.Proposal.Summary
	}
	return d
}
