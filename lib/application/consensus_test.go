package application

import (
	"testing"

	"academy-apply-backend/models"
	dbmodels "academy-apply-backend/models/db"

	"github.com/stretchr/testify/require"
)

func completed(decision models.EvaluationDecision) dbmodels.JuryAssignment {
	return dbmodels.JuryAssignment{
		EvaluationStatus: models.EvaluationStatusCompleted,
		Decision:         decision,
	}
}

func pending() dbmodels.JuryAssignment {
	return dbmodels.JuryAssignment{EvaluationStatus: models.EvaluationStatusPending}
}

func TestDecideConsensus(t *testing.T) {
	t.Run("unanimous approval", func(t *testing.T) {
		panel := []dbmodels.JuryAssignment{
			completed(models.DecisionPositive),
			completed(models.DecisionPositive),
			completed(models.DecisionPositive),
		}
		done, positive, negative, outcome := decideConsensus(panel)
		require.True(t, done)
		require.Equal(t, 3, positive)
		require.Equal(t, 0, negative)
		require.Equal(t, models.ApplicationStatusApproved, outcome)
		require.Equal(t, "3 olumlu, 0 olumsuz", consensusExplanation(positive, negative))
	})

	t.Run("majority rejection", func(t *testing.T) {
		panel := []dbmodels.JuryAssignment{
			completed(models.DecisionPositive),
			completed(models.DecisionNegative),
			completed(models.DecisionNegative),
			completed(models.DecisionPositive),
			completed(models.DecisionNegative),
		}
		done, positive, negative, outcome := decideConsensus(panel)
		require.True(t, done)
		require.Equal(t, 2, positive)
		require.Equal(t, 3, negative)
		require.Equal(t, models.ApplicationStatusRejected, outcome)
	})

	t.Run("tie rejects", func(t *testing.T) {
		panel := []dbmodels.JuryAssignment{
			completed(models.DecisionPositive),
			completed(models.DecisionNegative),
		}
		done, positive, negative, outcome := decideConsensus(panel)
		require.True(t, done)
		require.Equal(t, 1, positive)
		require.Equal(t, 1, negative)
		require.Equal(t, models.ApplicationStatusRejected, outcome)
	})

	t.Run("no decision while a vote is pending", func(t *testing.T) {
		panel := []dbmodels.JuryAssignment{
			completed(models.DecisionPositive),
			completed(models.DecisionPositive),
			pending(),
		}
		done, _, _, _ := decideConsensus(panel)
		require.False(t, done)
	})

	t.Run("no decision on empty panel", func(t *testing.T) {
		done, _, _, _ := decideConsensus(nil)
		require.False(t, done)
	})
}

func TestPreviousStatus(t *testing.T) {
	t.Run("returns the status before the review", func(t *testing.T) {
		statusLog := []dbmodels.ApplicationStatusEntry{
			{Status: models.ApplicationStatusJuryReview},
			{Status: models.ApplicationStatusPending},
		}
		require.Equal(t, models.ApplicationStatusPending, previousStatus(statusLog))
	})

	t.Run("skips consecutive review entries", func(t *testing.T) {
		statusLog := []dbmodels.ApplicationStatusEntry{
			{Status: models.ApplicationStatusJuryReview},
			{Status: models.ApplicationStatusJuryReview},
			{Status: models.ApplicationStatusPending},
		}
		require.Equal(t, models.ApplicationStatusPending, previousStatus(statusLog))
	})

	t.Run("defaults to pending on empty history", func(t *testing.T) {
		require.Equal(t, models.ApplicationStatusPending, previousStatus(nil))
	})
}
