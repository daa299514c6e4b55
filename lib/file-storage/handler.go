package filestorage

import (
	"bytes"
	"context"

	"academy-apply-backend/config"
	"academy-apply-backend/db"
	filesstore "academy-apply-backend/lib/file-storage/store"
	dbmodels "academy-apply-backend/models/db"
	"academy-apply-backend/models/errs"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Upload(ctx context.Context, meta UploadMeta, file []byte) (id string, err error)
	GetFile(ctx context.Context, fileID string) (*dbmodels.FileDocument, []byte, error)
	ListByApplication(applicationID string) ([]dbmodels.FileDocument, error)
	DeleteFile(ctx context.Context, fileID string) error
	DeleteByApplication(ctx context.Context, applicationID string) error
}

var Instance Provider

type UploadMeta struct {
	Name          string
	OwnerID       string
	ApplicationID *string
	Type          dbmodels.FileType
	ContentType   string
}

func NewHandler(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
		store:    filesstore.NewInstance(db.DB),
	}
}

type impl struct {
	s3client *minio.Client
	store    filesstore.Provider
}

func (i impl) Upload(ctx context.Context, meta UploadMeta, file []byte) (id string, err error) {
	contentType := meta.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	objectKey := uuid.NewString()
	_, err = i.s3client.PutObject(ctx, config.Conf.S3.BucketName, objectKey,
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to store object")
	}
	id, err = i.store.SaveFile(dbmodels.FileDocument{
		Name:          meta.Name,
		OwnerID:       meta.OwnerID,
		ApplicationID: meta.ApplicationID,
		Type:          meta.Type,
		ContentType:   contentType,
		ObjectKey:     objectKey,
	})
	if err != nil {
		return "", err
	}
	log.
		WithField("file_id", id).
		WithField("type", meta.Type).
		Info("file stored")
	return id, nil
}

func (i impl) GetFile(ctx context.Context, fileID string) (*dbmodels.FileDocument, []byte, error) {
	rec, err := i.store.GetByID(fileID)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, errs.NotFound("file not found")
	}
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, rec.ObjectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read object")
	}
	defer object.Close()
	buf := new(bytes.Buffer)
	if _, err = buf.ReadFrom(object); err != nil {
		return nil, nil, errors.Wrap(err, "failed to read object")
	}
	return rec, buf.Bytes(), nil
}

func (i impl) ListByApplication(applicationID string) ([]dbmodels.FileDocument, error) {
	return i.store.ListByApplication(applicationID)
}

func (i impl) DeleteFile(ctx context.Context, fileID string) error {
	rec, err := i.store.GetByID(fileID)
	if err != nil {
		return err
	}
	if rec == nil {
		return nil
	}
	return i.deleteRec(ctx, *rec)
}

func (i impl) DeleteByApplication(ctx context.Context, applicationID string) error {
	list, err := i.store.ListByApplication(applicationID)
	if err != nil {
		return err
	}
	for _, rec := range list {
		if err = i.deleteRec(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

func (i impl) deleteRec(ctx context.Context, rec dbmodels.FileDocument) error {
	err := i.s3client.RemoveObject(ctx, config.Conf.S3.BucketName, rec.ObjectKey, minio.RemoveObjectOptions{})
	if err != nil {
		return errors.Wrap(err, "failed to remove object")
	}
	return i.store.Delete(rec.ID)
}
