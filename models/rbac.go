package models

type RbacFunc func(userID string, role UserRole, path string) bool

type Module string

const (
	UsersModule       Module = "USERS"
	PostingModule     Module = "POSTING"
	CriteriaModule    Module = "CRITERIA"
	PublicationModule Module = "PUBLICATION"
	ApplicationModule Module = "APPLICATION"
	EligibilityModule Module = "ELIGIBILITY"
	FilesModule       Module = "FILES"
)

type Permission string

const (
	CreatePermission   Permission = "CREATE"
	EditPermission     Permission = "EDIT"
	ViewPermission     Permission = "VIEW"
	ManagePermission   Permission = "MANAGE"
	EvaluatePermission Permission = "EVALUATE"
	ExportPermission   Permission = "EXPORT"
	FilesPermission    Permission = "FILES"
)
