package jobs

import (
	"testing"

	"github.com/fassou200-cloud/Servispro-Guinee/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandshakeOrdering(t *testing.T) {
	// The only path to Completed runs through every intermediate state.
	status := models.JobPending

	status, err := Accept(status)
	require.NoError(t, err)
	assert.Equal(t, models.JobAccepted, status)

	status, err = ProviderComplete(status)
	require.NoError(t, err)
	assert.Equal(t, models.JobProviderCompleted, status)

	status, err = CustomerConfirm(status)
	require.NoError(t, err)
	assert.Equal(t, models.JobCompleted, status)
}

func TestAccept(t *testing.T) {
	for _, current := range []models.JobStatus{
		models.JobAccepted, models.JobRejected, models.JobProviderCompleted, models.JobCompleted,
	} {
		_, err := Accept(current)

		var invalidState *models.InvalidStateError
		require.ErrorAs(t, err, &invalidState, string(current))
		assert.Equal(t, string(current), invalidState.Current)
	}
}

func TestReject(t *testing.T) {
	t.Run("From Pending", func(t *testing.T) {
		status, err := Reject(models.JobPending)
		require.NoError(t, err)
		assert.Equal(t, models.JobRejected, status)
	})

	t.Run("From Accepted", func(t *testing.T) {
		status, err := Reject(models.JobAccepted)
		require.NoError(t, err)
		assert.Equal(t, models.JobRejected, status)
	})

	t.Run("Not After Completion Assertion", func(t *testing.T) {
		for _, current := range []models.JobStatus{
			models.JobProviderCompleted, models.JobCompleted, models.JobRejected,
		} {
			_, err := Reject(current)
			assert.Error(t, err, string(current))
		}
	})
}

func TestCustomerConfirm(t *testing.T) {
	t.Run("Requires Provider Assertion First", func(t *testing.T) {
		_, err := CustomerConfirm(models.JobAccepted)

		var invalidState *models.InvalidStateError
		require.ErrorAs(t, err, &invalidState)
		assert.Equal(t, "provider must mark the job complete first", invalidState.Reason)
	})

	t.Run("Completed Is Terminal", func(t *testing.T) {
		_, err := CustomerConfirm(models.JobCompleted)
		assert.Error(t, err)
	})
}

func TestProviderComplete(t *testing.T) {
	// A provider cannot assert completion on a job it never accepted.
	_, err := ProviderComplete(models.JobPending)
	assert.Error(t, err)

	// Asserting twice fails; the state has already moved on.
	_, err = ProviderComplete(models.JobProviderCompleted)
	assert.Error(t, err)
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(models.JobRejected))
	assert.True(t, IsTerminal(models.JobCompleted))
	assert.False(t, IsTerminal(models.JobPending))
	assert.False(t, IsTerminal(models.JobAccepted))
	assert.False(t, IsTerminal(models.JobProviderCompleted))
}

func TestReviewEligible(t *testing.T) {
	assert.True(t, ReviewEligible(models.JobAccepted))
	assert.True(t, ReviewEligible(models.JobCompleted))
	assert.False(t, ReviewEligible(models.JobPending))
	assert.False(t, ReviewEligible(models.JobRejected))
	assert.False(t, ReviewEligible(models.JobProviderCompleted))
}
