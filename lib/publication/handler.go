package publicationhandler

import (
	"context"

	"academy-apply-backend/db"
	applicationstore "academy-apply-backend/lib/application/store"
	filestorage "academy-apply-backend/lib/file-storage"
	publicationstore "academy-apply-backend/lib/publication/store"
	"academy-apply-backend/lib/scoring"
	publicationapimodels "academy-apply-backend/models/api/publication"
	dbmodels "academy-apply-backend/models/db"
	"academy-apply-backend/models/errs"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(ownerID string, data dbmodels.PublicationData) (id string, err error)
	GetByID(ownerID, id string) (publicationapimodels.PublicationView, error)
	ListByOwner(ownerID string) ([]publicationapimodels.PublicationView, error)
	AttachProof(ctx context.Context, ownerID, id, fileName, contentType string, file []byte) (fileID string, err error)
	Delete(ownerID, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:            publicationstore.NewInstance(db.DB),
		applicationStore: applicationstore.NewInstance(db.DB),
		transact: func(fn func(tx *gorm.DB) error) error {
			return db.DB.Transaction(fn)
		},
		txStore:    publicationstore.NewInstance,
		txAppStore: applicationstore.NewInstance,
	}
}

type impl struct {
	store            publicationstore.Provider
	applicationStore applicationstore.Provider
	transact         func(fn func(tx *gorm.DB) error) error
	txStore          func(tx *gorm.DB) publicationstore.Provider
	txAppStore       func(tx *gorm.DB) applicationstore.Provider
}

func (i impl) Create(ownerID string, data dbmodels.PublicationData) (id string, err error) {
	if err = data.Validate(); err != nil {
		return "", errs.Validation(err.Error())
	}
	id, err = i.store.Create(dbmodels.Publication{
		OwnerID:      ownerID,
		Category:     data.Category,
		IndexName:    data.Category.Index(),
		Title:        data.Title,
		DOI:          data.DOI,
		Year:         data.Year,
		IsMainAuthor: data.IsMainAuthor,
	})
	if err != nil {
		if publicationstore.IsUniqueViolation(err) {
			return "", errs.Conflict("a publication with this DOI is already registered")
		}
		return "", err
	}
	log.
		WithField("publication_id", id).
		WithField("category", data.Category).
		Info("publication registered")
	return id, nil
}

func (i impl) GetByID(ownerID, id string) (publicationapimodels.PublicationView, error) {
	rec, err := i.getOwned(ownerID, id)
	if err != nil {
		return publicationapimodels.PublicationView{}, err
	}
	return publicationapimodels.Convert(*rec, scoring.Score(rec.Category, rec.IsMainAuthor)), nil
}

func (i impl) ListByOwner(ownerID string) ([]publicationapimodels.PublicationView, error) {
	list, err := i.store.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	result := make([]publicationapimodels.PublicationView, 0, len(list))
	for _, rec := range list {
		result = append(result, publicationapimodels.Convert(rec, scoring.Score(rec.Category, rec.IsMainAuthor)))
	}
	return result, nil
}

func (i impl) AttachProof(ctx context.Context, ownerID, id, fileName, contentType string, file []byte) (fileID string, err error) {
	rec, err := i.getOwned(ownerID, id)
	if err != nil {
		return "", err
	}
	fileID, err = filestorage.Instance.Upload(ctx, filestorage.UploadMeta{
		Name:        fileName,
		OwnerID:     ownerID,
		Type:        dbmodels.PublicationProof,
		ContentType: contentType,
	}, file)
	if err != nil {
		return "", err
	}
	if rec.ProofFileID != "" {
		if err = filestorage.Instance.DeleteFile(ctx, rec.ProofFileID); err != nil {
			log.WithError(err).WithField("file_id", rec.ProofFileID).Error("failed to delete replaced proof file")
		}
	}
	return fileID, i.store.Update(id, map[string]interface{}{"proof_file_id": fileID})
}

// Delete removes the candidate's publication. A linked publication stays
// deletable until the owning application is finalized: the row is removed
// and the application score recomputed over the remaining publications.
func (i impl) Delete(ownerID, id string) error {
	rec, err := i.getOwned(ownerID, id)
	if err != nil {
		return err
	}
	if rec.ApplicationID == nil {
		return i.store.Delete(id)
	}
	applicationID := *rec.ApplicationID
	app, err := i.applicationStore.GetByID(applicationID)
	if err != nil {
		return err
	}
	if app == nil {
		return i.store.Delete(id)
	}
	if app.HasFinalDecision() {
		return errs.Conflict("publication belongs to a finalized application and cannot be deleted")
	}
	err = i.transact(func(tx *gorm.DB) error {
		store := i.txStore(tx)
		if err := store.Delete(id); err != nil {
			return err
		}
		remaining, err := store.ListByApplication(applicationID)
		if err != nil {
			return err
		}
		stats := scoring.Aggregate(remaining)
		return i.txAppStore(tx).Update(applicationID, map[string]interface{}{
			"total_score":     stats.TotalScore,
			"score_breakdown": scoring.Breakdown(remaining),
		})
	})
	if err != nil {
		return err
	}
	log.
		WithField("publication_id", id).
		WithField("application_id", applicationID).
		Info("linked publication deleted, application score recomputed")
	return nil
}

func (i impl) getOwned(ownerID, id string) (*dbmodels.Publication, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errs.NotFound("publication not found")
	}
	if rec.OwnerID != ownerID {
		return nil, errs.Forbidden("publication belongs to another candidate")
	}
	return rec, nil
}
