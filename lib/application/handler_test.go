package application

import (
	"context"
	"testing"
	"time"

	applicationstore "academy-apply-backend/lib/application/store"
	postingstore "academy-apply-backend/lib/posting/store"
	usersstore "academy-apply-backend/lib/users/store"
	"academy-apply-backend/models"
	applicationapimodels "academy-apply-backend/models/api/application"
	dbmodels "academy-apply-backend/models/db"
	"academy-apply-backend/models/errs"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubAppStore struct {
	applicationstore.Provider
	rec       *dbmodels.Application
	exists    bool
	statusLog []dbmodels.ApplicationStatusEntry

	created        []dbmodels.Application
	updates        []map[string]interface{}
	statusChanges  []models.ApplicationStatus
	memberUpdates  []map[string]interface{}
	removedMembers []string
}

func (s *stubAppStore) Create(rec dbmodels.Application) (string, error) {
	s.created = append(s.created, rec)
	return "app-1", nil
}

func (s *stubAppStore) GetByID(string) (*dbmodels.Application, error) {
	return s.rec, nil
}

func (s *stubAppStore) IsExist(string, string) (bool, error) {
	return s.exists, nil
}

func (s *stubAppStore) Update(id string, updMap map[string]interface{}) error {
	s.updates = append(s.updates, updMap)
	return nil
}

func (s *stubAppStore) SetStatus(id string, status models.ApplicationStatus, note, authorName string) error {
	s.statusChanges = append(s.statusChanges, status)
	return nil
}

func (s *stubAppStore) StatusLog(string) ([]dbmodels.ApplicationStatusEntry, error) {
	return s.statusLog, nil
}

func (s *stubAppStore) UpdateJuryMember(id string, updMap map[string]interface{}) error {
	s.memberUpdates = append(s.memberUpdates, updMap)
	return nil
}

func (s *stubAppStore) DeleteJuryMember(id string) error {
	s.removedMembers = append(s.removedMembers, id)
	return nil
}

type stubPostingStore struct {
	postingstore.Provider
	posting *dbmodels.Posting
}

func (s *stubPostingStore) GetByID(string) (*dbmodels.Posting, error) {
	return s.posting, nil
}

type stubUserStore struct {
	usersstore.Provider
}

func (s *stubUserStore) GetByID(string) (*dbmodels.User, error) {
	return nil, nil
}

func newTestHandler(store *stubAppStore, posting *dbmodels.Posting) impl {
	return impl{
		store:        store,
		postingStore: &stubPostingStore{posting: posting},
		userStore:    &stubUserStore{},
		transact: func(fn func(tx *gorm.DB) error) error {
			return fn(nil)
		},
		txStore: func(*gorm.DB) applicationstore.Provider {
			return store
		},
	}
}

func slot(id, jurorID string, status models.EvaluationStatus, decision models.EvaluationDecision) dbmodels.JuryAssignment {
	return dbmodels.JuryAssignment{
		BaseModel:        dbmodels.BaseModel{ID: id},
		ApplicationID:    "app-1",
		JurorID:          jurorID,
		EvaluationStatus: status,
		Decision:         decision,
	}
}

func TestSubmitDuplicateApplication(t *testing.T) {
	store := &stubAppStore{exists: true}
	handler := newTestHandler(store, &dbmodels.Posting{Status: models.PostingStatusOpen})

	_, err := handler.Submit(context.Background(), "cand-1", applicationapimodels.ApplyRequest{
		PostingID:      "post-1",
		LanguageExam:   models.ExamYDS,
		LanguageScore:  80,
		PublicationIDs: []string{"pub-1"},
	})
	require.True(t, errors.Is(err, errs.ErrConflict))
	require.Empty(t, store.created)
}

func TestRemoveJuror(t *testing.T) {
	t.Run("last juror removed rolls the status back", func(t *testing.T) {
		store := &stubAppStore{
			rec: &dbmodels.Application{
				BaseModel: dbmodels.BaseModel{ID: "app-1"},
				Status:    models.ApplicationStatusJuryReview,
				Jury: []dbmodels.JuryAssignment{
					slot("slot-1", "jury-1", models.EvaluationStatusPending, ""),
				},
			},
			statusLog: []dbmodels.ApplicationStatusEntry{
				{Status: models.ApplicationStatusJuryReview},
				{Status: models.ApplicationStatusPending},
			},
		}
		handler := newTestHandler(store, nil)

		err := handler.RemoveJuror(context.Background(), "app-1", "jury-1", "")
		require.NoError(t, err)
		require.Equal(t, []string{"slot-1"}, store.removedMembers)
		require.Equal(t, []models.ApplicationStatus{models.ApplicationStatusPending}, store.statusChanges)
		require.Empty(t, store.updates)
	})

	t.Run("removing the only pending juror fires consensus", func(t *testing.T) {
		store := &stubAppStore{
			rec: &dbmodels.Application{
				BaseModel: dbmodels.BaseModel{ID: "app-1"},
				Status:    models.ApplicationStatusJuryReview,
				Jury: []dbmodels.JuryAssignment{
					slot("slot-1", "jury-1", models.EvaluationStatusCompleted, models.DecisionPositive),
					slot("slot-2", "jury-2", models.EvaluationStatusCompleted, models.DecisionPositive),
					slot("slot-3", "jury-3", models.EvaluationStatusPending, ""),
				},
			},
		}
		handler := newTestHandler(store, nil)

		err := handler.RemoveJuror(context.Background(), "app-1", "jury-3", "")
		require.NoError(t, err)
		require.Equal(t, []string{"slot-3"}, store.removedMembers)
		require.Len(t, store.updates, 1)
		require.Equal(t, models.ApplicationStatusApproved, store.updates[0]["final_status"])
		require.Equal(t, []models.ApplicationStatus{models.ApplicationStatusApproved}, store.statusChanges)
	})

	t.Run("unknown juror", func(t *testing.T) {
		store := &stubAppStore{
			rec: &dbmodels.Application{
				BaseModel: dbmodels.BaseModel{ID: "app-1"},
				Status:    models.ApplicationStatusJuryReview,
				Jury: []dbmodels.JuryAssignment{
					slot("slot-1", "jury-1", models.EvaluationStatusPending, ""),
				},
			},
		}
		handler := newTestHandler(store, nil)

		err := handler.RemoveJuror(context.Background(), "app-1", "jury-9", "")
		require.True(t, errors.Is(err, errs.ErrNotFound))
		require.Empty(t, store.removedMembers)
	})
}

func TestSubmitEvaluation(t *testing.T) {
	t.Run("caller outside the panel", func(t *testing.T) {
		store := &stubAppStore{
			rec: &dbmodels.Application{
				BaseModel: dbmodels.BaseModel{ID: "app-1"},
				Status:    models.ApplicationStatusJuryReview,
				Jury: []dbmodels.JuryAssignment{
					slot("slot-1", "jury-1", models.EvaluationStatusPending, ""),
				},
			},
		}
		handler := newTestHandler(store, nil)

		err := handler.SubmitEvaluation(context.Background(), "app-1", "jury-9",
			applicationapimodels.EvaluationRequest{Decision: models.DecisionPositive}, "")
		require.True(t, errors.Is(err, errs.ErrForbidden))
		require.Empty(t, store.memberUpdates)
	})

	t.Run("final decision already recorded", func(t *testing.T) {
		finalDate := time.Now()
		store := &stubAppStore{
			rec: &dbmodels.Application{
				BaseModel:   dbmodels.BaseModel{ID: "app-1"},
				Status:      models.ApplicationStatusApproved,
				FinalStatus: models.ApplicationStatusApproved,
				FinalDate:   &finalDate,
				Jury: []dbmodels.JuryAssignment{
					slot("slot-1", "jury-1", models.EvaluationStatusPending, ""),
				},
			},
		}
		handler := newTestHandler(store, nil)

		err := handler.SubmitEvaluation(context.Background(), "app-1", "jury-1",
			applicationapimodels.EvaluationRequest{Decision: models.DecisionPositive}, "")
		require.True(t, errors.Is(err, errs.ErrConflict))
		require.Empty(t, store.memberUpdates)
		require.Empty(t, store.updates)
	})

	t.Run("final decision is written exactly once", func(t *testing.T) {
		store := &stubAppStore{
			rec: &dbmodels.Application{
				BaseModel: dbmodels.BaseModel{ID: "app-1"},
				Status:    models.ApplicationStatusJuryReview,
				Jury: []dbmodels.JuryAssignment{
					slot("slot-1", "jury-1", models.EvaluationStatusCompleted, models.DecisionNegative),
					slot("slot-2", "jury-2", models.EvaluationStatusPending, ""),
				},
			},
		}
		handler := newTestHandler(store, nil)

		err := handler.SubmitEvaluation(context.Background(), "app-1", "jury-2",
			applicationapimodels.EvaluationRequest{Decision: models.DecisionPositive}, "")
		require.NoError(t, err)
		require.Len(t, store.memberUpdates, 1)
		require.Len(t, store.updates, 1)
		// 1 olumlu, 1 olumsuz: a tie rejects
		require.Equal(t, models.ApplicationStatusRejected, store.updates[0]["final_status"])

		// the slot is completed now, a repeat submission changes nothing
		err = handler.SubmitEvaluation(context.Background(), "app-1", "jury-2",
			applicationapimodels.EvaluationRequest{Decision: models.DecisionPositive}, "")
		require.True(t, errors.Is(err, errs.ErrConflict))
		require.Len(t, store.memberUpdates, 1)
		require.Len(t, store.updates, 1)
	})
}
