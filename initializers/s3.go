package initializers

import (
	"context"

	s3client "academy-apply-backend/s3"

	log "github.com/sirupsen/logrus"
)

func InitS3(ctx context.Context) {
	if err := s3client.Connect(ctx); err != nil {
		log.WithError(err).Error("failed to initialize s3 client")
		return
	}
	log.Info("s3 client initialized")
}
