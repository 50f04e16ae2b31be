// Package nns
package nns

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/icpkit/nns-proposals-backend/types"
)

func TestConvertDetail(t *testing.T) {
	title := "Upgrade replica to release 2026-08-20"
	info := &proposalInfo{
		ID:                       &proposalID{ID: 137432},
		Status:                   types.StatusExecuted,
		Topic:                    types.TopicIcOsVersionElection,
		ProposalTimestampSeconds: 1756080000,
		Proposal: &proposalData{
			Title:   &title,
			Summary: "Elect new GuestOS version",
		},
	}

	d := convertDetail(info)
	assert.Equal(t, uint64(137432), d.ID)
	assert.Equal(t, title, d.Title)
	assert.Equal(t, "Elect new GuestOS version", d.Summary)
	assert.Equal(t, types.TopicIcOsVersionElection, d.Topic)
	assert.Equal(t, types.StatusExecuted, d.Status)
	assert.Equal(t, uint64(1756080000), d.TimestampSeconds)
}

func TestConvertDetailAbsentFields(t *testing.T) {
	d := convertDetail(&proposalInfo{Status: types.StatusOpen, Topic: types.TopicGovernance})
	assert.Equal(t, uint64(0), d.ID)
	assert.Equal(t, "", d.Title)
	assert.Equal(t, "", d.Summary)
}

func TestConvertHandle(t *testing.T) {
	h := convertHandle(&proposalInfo{
		ID:       &proposalID{ID: 9},
		Proposal: &proposalData{Summary: "motion text"},
	})
	assert.Equal(t, uint64(9), h.ID)
	assert.Equal(t, "", h.Title)
	assert.Equal(t, "motion text", h.Summary)
}
