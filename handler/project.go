// Package handler
package handler

import (
	"strconv"

	"github.com/icpkit/nns-proposals-backend/types"
)

// project maps a resolved detail plus its originating handle into the
// external summary shape. The 64-bit id is stringified for transports that
// cannot carry full uint64 precision, topic/status carry both the resolved
// name and the raw code.
func project(handle *types.ProposalHandle, detail *types.ProposalDetail) *types.ProposalSummary {
	title := detail.Title
	if title == "" {
		title = handle.Title
	}
	summary := detail.Summary
	if summary == "" {
		summary = handle.Summary
	}
	return &types.ProposalSummary{
		ID:               strconv.FormatUint(handle.ID, 10),
		Title:            title,
		Summary:          summary,
		Topic:            types.TopicName(detail.Topic),
		TopicCode:        detail.Topic,
		Status:           types.StatusName(detail.Status),
		StatusCode:       detail.Status,
		TimestampSeconds: detail.TimestampSeconds,
	}
}
