package publicationhandler

import (
	"testing"
	"time"

	applicationstore "academy-apply-backend/lib/application/store"
	publicationstore "academy-apply-backend/lib/publication/store"
	"academy-apply-backend/models"
	dbmodels "academy-apply-backend/models/db"
	"academy-apply-backend/models/errs"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubPubStore struct {
	publicationstore.Provider
	rec       *dbmodels.Publication
	remaining []dbmodels.Publication
	deleted   []string
}

func (s *stubPubStore) GetByID(string) (*dbmodels.Publication, error) {
	return s.rec, nil
}

func (s *stubPubStore) Delete(id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubPubStore) ListByApplication(string) ([]dbmodels.Publication, error) {
	return s.remaining, nil
}

type stubAppStore struct {
	applicationstore.Provider
	rec     *dbmodels.Application
	updates []map[string]interface{}
}

func (s *stubAppStore) GetByID(string) (*dbmodels.Application, error) {
	return s.rec, nil
}

func (s *stubAppStore) Update(id string, updMap map[string]interface{}) error {
	s.updates = append(s.updates, updMap)
	return nil
}

func newTestHandler(pubStore *stubPubStore, appStore *stubAppStore) impl {
	return impl{
		store:            pubStore,
		applicationStore: appStore,
		transact: func(fn func(tx *gorm.DB) error) error {
			return fn(nil)
		},
		txStore: func(*gorm.DB) publicationstore.Provider {
			return pubStore
		},
		txAppStore: func(*gorm.DB) applicationstore.Provider {
			return appStore
		},
	}
}

func TestDelete(t *testing.T) {
	appID := "app-1"

	t.Run("unlinked publication is removed directly", func(t *testing.T) {
		pubStore := &stubPubStore{
			rec: &dbmodels.Publication{
				BaseModel: dbmodels.BaseModel{ID: "pub-1"},
				OwnerID:   "cand-1",
			},
		}
		appStore := &stubAppStore{}
		handler := newTestHandler(pubStore, appStore)

		require.NoError(t, handler.Delete("cand-1", "pub-1"))
		require.Equal(t, []string{"pub-1"}, pubStore.deleted)
		require.Empty(t, appStore.updates)
	})

	t.Run("finalized application blocks deletion", func(t *testing.T) {
		finalDate := time.Now()
		pubStore := &stubPubStore{
			rec: &dbmodels.Publication{
				BaseModel:     dbmodels.BaseModel{ID: "pub-1"},
				OwnerID:       "cand-1",
				ApplicationID: &appID,
			},
		}
		appStore := &stubAppStore{
			rec: &dbmodels.Application{
				BaseModel: dbmodels.BaseModel{ID: appID},
				FinalDate: &finalDate,
			},
		}
		handler := newTestHandler(pubStore, appStore)

		err := handler.Delete("cand-1", "pub-1")
		require.True(t, errors.Is(err, errs.ErrConflict))
		require.Empty(t, pubStore.deleted)
	})

	t.Run("pending application gets its score recomputed", func(t *testing.T) {
		pubStore := &stubPubStore{
			rec: &dbmodels.Publication{
				BaseModel:     dbmodels.BaseModel{ID: "pub-1"},
				OwnerID:       "cand-1",
				ApplicationID: &appID,
			},
			remaining: []dbmodels.Publication{
				{Category: models.CategoryA1, IsMainAuthor: true}, // 60 + 10
			},
		}
		appStore := &stubAppStore{
			rec: &dbmodels.Application{
				BaseModel: dbmodels.BaseModel{ID: appID},
				Status:    models.ApplicationStatusPending,
			},
		}
		handler := newTestHandler(pubStore, appStore)

		require.NoError(t, handler.Delete("cand-1", "pub-1"))
		require.Equal(t, []string{"pub-1"}, pubStore.deleted)
		require.Len(t, appStore.updates, 1)
		require.Equal(t, 70, appStore.updates[0]["total_score"])
	})

	t.Run("foreign publication is rejected", func(t *testing.T) {
		pubStore := &stubPubStore{
			rec: &dbmodels.Publication{
				BaseModel: dbmodels.BaseModel{ID: "pub-1"},
				OwnerID:   "cand-2",
			},
		}
		handler := newTestHandler(pubStore, &stubAppStore{})

		err := handler.Delete("cand-1", "pub-1")
		require.True(t, errors.Is(err, errs.ErrForbidden))
		require.Empty(t, pubStore.deleted)
	})
}
