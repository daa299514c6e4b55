package rbac

import (
	"academy-apply-backend/models"
)

var (
	StaffRoleSet     = []models.UserRole{models.AdminRole, models.ManagerRole}
	ReviewerRoleSet  = []models.UserRole{models.AdminRole, models.ManagerRole, models.JuryRole}
	CandidateRoleSet = []models.UserRole{models.CandidateRole}
	JuryRoleSet      = []models.UserRole{models.JuryRole}
	AdminRoleSet     = []models.UserRole{models.AdminRole}
	AllRoles         = []models.UserRole{models.AdminRole, models.ManagerRole, models.JuryRole, models.CandidateRole}
)

func (i *impl) initRules() {
	i.addUsersRbac()
	i.addPostingRbac()
	i.addCriteriaRbac()
	i.addPublicationRbac()
	i.addApplicationRbac()
	i.addFilesRbac()
}

func (i *impl) addUsersRbac() {
	//VIEW
	i.RegisterRule(models.UsersModule, models.ViewPermission, StaffRoleSet, "/api/v1/users/list [post]", nil)
	i.RegisterRule(models.UsersModule, models.ViewPermission, StaffRoleSet, "/api/v1/users/{id} [get]", nil)
	//MANAGE
	i.RegisterRule(models.UsersModule, models.ManagePermission, AdminRoleSet, "/api/v1/users [post]", nil)
	i.RegisterRule(models.UsersModule, models.ManagePermission, AdminRoleSet, "/api/v1/users/{id} [put]", nil)
}

func (i *impl) addPostingRbac() {
	//VIEW
	i.RegisterRule(models.PostingModule, models.ViewPermission, AllRoles, "/api/v1/postings/list [post]", nil)
	i.RegisterRule(models.PostingModule, models.ViewPermission, AllRoles, "/api/v1/postings/{id} [get]", nil)
	//CREATE/EDIT
	i.RegisterRule(models.PostingModule, models.CreatePermission, StaffRoleSet, "/api/v1/postings [post]", nil)
	i.RegisterRule(models.PostingModule, models.EditPermission, StaffRoleSet, "/api/v1/postings/{id} [put]", nil)
	i.RegisterRule(models.PostingModule, models.EditPermission, StaffRoleSet, "/api/v1/postings/{id} [delete]", nil)
	i.RegisterRule(models.PostingModule, models.EditPermission, StaffRoleSet, "/api/v1/postings/{id}/change_status [put]", nil)
}

func (i *impl) addCriteriaRbac() {
	//VIEW
	i.RegisterRule(models.CriteriaModule, models.ViewPermission, AllRoles, "/api/v1/criteria [get]", nil)
	i.RegisterRule(models.CriteriaModule, models.ViewPermission, AllRoles, "/api/v1/criteria/{field_group} [get]", nil)
	//MANAGE
	i.RegisterRule(models.CriteriaModule, models.ManagePermission, AdminRoleSet, "/api/v1/criteria/{field_group} [put]", nil)
	i.RegisterRule(models.CriteriaModule, models.ManagePermission, AdminRoleSet, "/api/v1/criteria/reseed [post]", nil)
}

func (i *impl) addPublicationRbac() {
	i.RegisterRule(models.PublicationModule, models.ViewPermission, CandidateRoleSet, "/api/v1/publications [get]", nil)
	i.RegisterRule(models.PublicationModule, models.ViewPermission, CandidateRoleSet, "/api/v1/publications/{id} [get]", nil)
	i.RegisterRule(models.PublicationModule, models.CreatePermission, CandidateRoleSet, "/api/v1/publications [post]", nil)
	i.RegisterRule(models.PublicationModule, models.EditPermission, CandidateRoleSet, "/api/v1/publications/{id} [delete]", nil)
	i.RegisterRule(models.PublicationModule, models.FilesPermission, CandidateRoleSet, "/api/v1/publications/{id}/upload-proof [post]", nil)
	//ELIGIBILITY
	i.RegisterRule(models.EligibilityModule, models.ViewPermission, CandidateRoleSet, "/api/v1/eligibility/check [post]", nil)
}

func (i *impl) addApplicationRbac() {
	//CREATE
	i.RegisterRule(models.ApplicationModule, models.CreatePermission, CandidateRoleSet, "/api/v1/applications [post]", nil)
	//VIEW, detail access is narrowed per record in the handler
	i.RegisterRule(models.ApplicationModule, models.ViewPermission, CandidateRoleSet, "/api/v1/applications/my [get]", nil)
	i.RegisterRule(models.ApplicationModule, models.ViewPermission, JuryRoleSet, "/api/v1/applications/assigned [get]", nil)
	i.RegisterRule(models.ApplicationModule, models.ViewPermission, StaffRoleSet, "/api/v1/applications/list [post]", nil)
	i.RegisterRule(models.ApplicationModule, models.ViewPermission, AllRoles, "/api/v1/applications/{id} [get]", nil)
	//MANAGE
	i.RegisterRule(models.ApplicationModule, models.ManagePermission, StaffRoleSet, "/api/v1/applications/{id}/jury [put]", nil)
	i.RegisterRule(models.ApplicationModule, models.ManagePermission, StaffRoleSet, "/api/v1/applications/{id}/jury/{juror_id} [delete]", nil)
	i.RegisterRule(models.ApplicationModule, models.ManagePermission, ReviewerRoleSet, "/api/v1/applications/{id}/status [put]", nil)
	i.RegisterRule(models.ApplicationModule, models.ManagePermission, StaffRoleSet, "/api/v1/applications/{id} [delete]", nil)
	//EVALUATE
	i.RegisterRule(models.ApplicationModule, models.EvaluatePermission, JuryRoleSet, "/api/v1/applications/{id}/evaluation [post]", nil)
	//EXPORT
	i.RegisterRule(models.ApplicationModule, models.ExportPermission, StaffRoleSet, "/api/v1/applications/export [post]", nil)
}

func (i *impl) addFilesRbac() {
	i.RegisterRule(models.FilesModule, models.ViewPermission, AllRoles, "/api/v1/files/{id} [get]", nil)
}
