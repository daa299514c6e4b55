package application

import (
	"fmt"

	"academy-apply-backend/models"
	dbmodels "academy-apply-backend/models/db"
)

// decideConsensus is the single place the majority rule lives. It fires
// only when every panel slot is completed; until then done is false and
// the remaining values carry no meaning. The canonical rule is
// "positive votes > negative votes", so a tie rejects.
func decideConsensus(panel []dbmodels.JuryAssignment) (done bool, positive, negative int, outcome models.ApplicationStatus) {
	if len(panel) == 0 {
		return false, 0, 0, ""
	}
	for _, member := range panel {
		if !member.IsCompleted() {
			return false, 0, 0, ""
		}
		if member.Decision == models.DecisionPositive {
			positive++
		} else {
			negative++
		}
	}
	if positive > negative {
		outcome = models.ApplicationStatusApproved
	} else {
		outcome = models.ApplicationStatusRejected
	}
	return true, positive, negative, outcome
}

func consensusExplanation(positive, negative int) string {
	return fmt.Sprintf("%d olumlu, %d olumsuz", positive, negative)
}

// previousStatus picks the status to restore after the last juror is
// removed. Entries arrive most recent first; the first entry that is not
// the review status is the one to go back to.
func previousStatus(log []dbmodels.ApplicationStatusEntry) models.ApplicationStatus {
	for _, entry := range log {
		if entry.Status != models.ApplicationStatusJuryReview {
			return entry.Status
		}
	}
	return models.ApplicationStatusPending
}
