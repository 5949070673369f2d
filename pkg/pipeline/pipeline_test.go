package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		part, whole, want int
	}{
		{0, 0, 0},
		{5, 0, 0},
		{0, 3, 0},
		{1, 3, 33},
		{2, 3, 67},
		{3, 3, 100},
		{1, 2, 50},
		{1, 8, 13},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Percent(tt.part, tt.whole), "%d/%d", tt.part, tt.whole)
	}
}

func TestStageValid(t *testing.T) {
	for _, s := range Stages {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, Stage("archived").Valid())
	assert.False(t, Stage("").Valid())
}

func TestReconcileIndependent(t *testing.T) {
	p := Policy{}
	stage, status, err := p.Reconcile(StageHired, StatusActive, true, false)
	require.NoError(t, err)
	assert.Equal(t, StageHired, stage)
	assert.Equal(t, StatusActive, status)
}

func TestReconcileCoupled(t *testing.T) {
	p := Policy{SyncStatus: true}

	tests := []struct {
		name       string
		stage      Stage
		status     Status
		stageSet   bool
		statusSet  bool
		wantStage  Stage
		wantStatus Status
		wantErr    bool
	}{
		{"stage hired", StageHired, StatusActive, true, false, StageHired, StatusHired, false},
		{"stage rejected", StageRejected, StatusActive, true, false, StageRejected, StatusRejected, false},
		{"back to interviewing", StageInterviewing, StatusRejected, true, false, StageInterviewing, StatusActive, false},
		{"status hired only", StageOffer, StatusHired, false, true, StageHired, StatusHired, false},
		{"status rejected only", StageScreening, StatusRejected, false, true, StageRejected, StatusRejected, false},
		{"status active only", StageHired, StatusActive, false, true, StageHired, StatusHired, false},
		{"explicit conflict", StageOffer, StatusHired, true, true, StageOffer, StatusHired, true},
		{"explicit agreement", StageHired, StatusHired, true, true, StageHired, StatusHired, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stage, status, err := p.Reconcile(tt.stage, tt.status, tt.stageSet, tt.statusSet)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrStatusConflict)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStage, stage)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}
