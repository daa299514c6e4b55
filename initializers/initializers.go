package initializers

import (
	"context"

	"academy-apply-backend/config"
	"academy-apply-backend/fiberlog"
	applicationhandler "academy-apply-backend/lib/application"
	authhandler "academy-apply-backend/lib/auth"
	criteriahandler "academy-apply-backend/lib/criteria"
	"academy-apply-backend/lib/eligibility"
	xlsexport "academy-apply-backend/lib/export/xls"
	filestorage "academy-apply-backend/lib/file-storage"
	postinghandler "academy-apply-backend/lib/posting"
	publicationhandler "academy-apply-backend/lib/publication"
	"academy-apply-backend/lib/rbac"
	usershandler "academy-apply-backend/lib/users"
	s3client "academy-apply-backend/s3"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	filestorage.NewHandler(s3client.Client)
	authhandler.NewHandler()
	usershandler.NewHandler()
	criteriahandler.NewHandler()
	postinghandler.NewHandler()
	publicationhandler.NewHandler()
	eligibility.NewHandler()
	applicationhandler.NewHandler()
	xlsexport.NewHandler()
	rbac.NewHandler()
}
