// file: internals/features/crm/leads/model/lead_model_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPipelineMovesForwardOnly(t *testing.T) {
	assert.True(t, ValidNextStatus(LeadStatusNew, LeadStatusContacted))
	assert.True(t, ValidNextStatus(LeadStatusNew, LeadStatusQuoted))
	assert.True(t, ValidNextStatus(LeadStatusQualified, LeadStatusWon))

	assert.False(t, ValidNextStatus(LeadStatusQuoted, LeadStatusContacted))
	assert.False(t, ValidNextStatus(LeadStatusContacted, LeadStatusContacted))
}

func TestPipelineLostIsReachableFromAnyOpenStage(t *testing.T) {
	for _, from := range []string{LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusQuoted} {
		assert.True(t, ValidNextStatus(from, LeadStatusLost), "from %s", from)
	}
}

func TestPipelineTerminalStatesAreFinal(t *testing.T) {
	assert.False(t, ValidNextStatus(LeadStatusWon, LeadStatusLost))
	assert.False(t, ValidNextStatus(LeadStatusLost, LeadStatusNew))
	assert.False(t, ValidNextStatus(LeadStatusLost, LeadStatusContacted))
}

func TestPipelineRejectsUnknownStatuses(t *testing.T) {
	assert.False(t, ValidNextStatus("NEW", "ARCHIVED"))
	assert.False(t, ValidNextStatus("GARBAGE", "WON"))
}
