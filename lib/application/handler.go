package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"academy-apply-backend/db"
	applicationstore "academy-apply-backend/lib/application/store"
	criteriastore "academy-apply-backend/lib/criteria/store"
	"academy-apply-backend/lib/eligibility"
	filestorage "academy-apply-backend/lib/file-storage"
	postingstore "academy-apply-backend/lib/posting/store"
	publicationstore "academy-apply-backend/lib/publication/store"
	"academy-apply-backend/lib/scoring"
	"academy-apply-backend/lib/smtp"
	usersstore "academy-apply-backend/lib/users/store"
	"academy-apply-backend/lib/utils/lock"
	"academy-apply-backend/models"
	applicationapimodels "academy-apply-backend/models/api/application"
	dbmodels "academy-apply-backend/models/db"
	"academy-apply-backend/models/errs"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const consensusLockWait = 5 * time.Second

type Provider interface {
	Submit(ctx context.Context, candidateID string, data applicationapimodels.ApplyRequest) (id string, err error)
	GetByID(id string) (applicationapimodels.ApplicationView, error)
	List(filter dbmodels.ApplicationFilter) (list []applicationapimodels.ApplicationView, rowCount int64, err error)
	ListRecords(filter dbmodels.ApplicationFilter) ([]dbmodels.Application, error)
	AssignJury(id, authorID string, data applicationapimodels.AssignJuryRequest) error
	RemoveJuror(ctx context.Context, id, jurorID, authorID string) error
	SubmitEvaluation(ctx context.Context, id, jurorID string, data applicationapimodels.EvaluationRequest, reportFileID string) error
	UpdateStatus(id, authorID string, data applicationapimodels.StatusUpdateRequest) error
	Delete(ctx context.Context, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:            applicationstore.NewInstance(db.DB),
		postingStore:     postingstore.NewInstance(db.DB),
		publicationStore: publicationstore.NewInstance(db.DB),
		criteriaStore:    criteriastore.NewInstance(db.DB),
		userStore:        usersstore.NewInstance(db.DB),
		transact: func(fn func(tx *gorm.DB) error) error {
			return db.DB.Transaction(fn)
		},
		txStore: applicationstore.NewInstance,
	}
}

type impl struct {
	store            applicationstore.Provider
	postingStore     postingstore.Provider
	publicationStore publicationstore.Provider
	criteriaStore    criteriastore.Provider
	userStore        usersstore.Provider
	transact         func(fn func(tx *gorm.DB) error) error
	txStore          func(tx *gorm.DB) applicationstore.Provider
}

func (i impl) getLogger(applicationID string) *log.Entry {
	return log.WithField("application_id", applicationID)
}

// Submit re-runs the eligibility evaluator authoritatively before any
// record is written; the client-side check gates the UI only.
func (i impl) Submit(ctx context.Context, candidateID string, data applicationapimodels.ApplyRequest) (id string, err error) {
	if err = data.Validate(); err != nil {
		return "", errs.Validation(err.Error())
	}
	posting, err := i.postingStore.GetByID(data.PostingID)
	if err != nil {
		return "", err
	}
	if posting == nil {
		return "", errs.NotFound("posting not found")
	}
	if !posting.IsOpen() {
		return "", errs.Validation("posting is not open for applications")
	}
	found, err := i.store.IsExist(candidateID, data.PostingID)
	if err != nil {
		return "", err
	}
	if found {
		return "", errs.Conflict("an application for this posting already exists")
	}
	criteria, err := i.criteriaStore.GetByFieldGroup(posting.FieldGroup)
	if err != nil {
		return "", err
	}
	if criteria == nil {
		return "", errs.NotFound(fmt.Sprintf("criteria for field group %v not found", posting.FieldGroup))
	}

	pubs, err := i.collectPublications(candidateID, data.PublicationIDs)
	if err != nil {
		return "", err
	}
	stats := scoring.Aggregate(pubs)
	verdict := eligibility.Evaluate(*criteria, eligibility.Input{
		FieldGroup:    posting.FieldGroup,
		LanguageExam:  data.LanguageExam,
		LanguageScore: data.LanguageScore,
		Stats:         stats,
	})
	if !verdict.Eligible {
		reasons := make([]string, 0, len(verdict.Failed))
		for _, failed := range verdict.Failed {
			reasons = append(reasons, failed.Message)
		}
		return "", errs.Validation("eligibility criteria not met: " + strings.Join(reasons, "; "))
	}

	recID := ""
	err = i.transact(func(tx *gorm.DB) error {
		store := i.txStore(tx)
		rec := dbmodels.Application{
			CandidateID:    candidateID,
			PostingID:      data.PostingID,
			FieldGroup:     posting.FieldGroup,
			Status:         models.ApplicationStatusPending,
			LanguageExam:   data.LanguageExam,
			LanguageScore:  data.LanguageScore,
			TotalScore:     stats.TotalScore,
			ScoreBreakdown: scoring.Breakdown(pubs),
		}
		recID, err = store.Create(rec)
		if err != nil {
			if publicationstore.IsUniqueViolation(err) {
				return errs.Conflict("an application for this posting already exists")
			}
			return err
		}
		if err = store.SetStatus(recID, models.ApplicationStatusPending, "Başvuru alındı", models.SystemUser); err != nil {
			return err
		}
		if err = publicationstore.NewInstance(tx).LinkToApplication(candidateID, recID, data.PublicationIDs); err != nil {
			return errors.Wrap(err, "failed to link publications")
		}
		return postingstore.NewInstance(tx).IncApplicationsCount(data.PostingID, 1)
	})
	if err != nil {
		return "", err
	}
	i.getLogger(recID).
		WithField("posting_id", data.PostingID).
		Info("application submitted")
	return recID, nil
}

func (i impl) collectPublications(candidateID string, ids []string) ([]dbmodels.Publication, error) {
	idSet := map[string]bool{}
	for _, id := range ids {
		idSet[id] = true
	}
	owned, err := i.publicationStore.ListByOwner(candidateID)
	if err != nil {
		return nil, err
	}
	result := make([]dbmodels.Publication, 0, len(ids))
	for _, pub := range owned {
		if !idSet[pub.ID] {
			continue
		}
		if pub.ApplicationID != nil {
			return nil, errs.Conflict(fmt.Sprintf("publication %v is already linked to an application", pub.ID))
		}
		result = append(result, pub)
		delete(idSet, pub.ID)
	}
	if len(idSet) != 0 {
		return nil, errs.NotFound("some publications were not found among the candidate's records")
	}
	return result, nil
}

func (i impl) GetByID(id string) (applicationapimodels.ApplicationView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	if rec == nil {
		return applicationapimodels.ApplicationView{}, errs.NotFound("application not found")
	}
	return applicationapimodels.Convert(*rec), nil
}

func (i impl) List(filter dbmodels.ApplicationFilter) ([]applicationapimodels.ApplicationView, int64, error) {
	list, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	rowCount, err := i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]applicationapimodels.ApplicationView, 0, len(list))
	for _, rec := range list {
		result = append(result, applicationapimodels.Convert(rec))
	}
	return result, rowCount, nil
}

func (i impl) ListRecords(filter dbmodels.ApplicationFilter) ([]dbmodels.Application, error) {
	return i.store.ListAll(filter)
}

func (i impl) AssignJury(id, authorID string, data applicationapimodels.AssignJuryRequest) error {
	if err := data.Validate(); err != nil {
		return errs.Validation(err.Error())
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errs.NotFound("application not found")
	}
	if rec.HasFinalDecision() {
		return errs.Conflict("final decision already recorded")
	}

	jurors := make([]dbmodels.User, 0, len(data.JurorIDs))
	for _, jurorID := range data.JurorIDs {
		user, err := i.userStore.GetByID(jurorID)
		if err != nil {
			return err
		}
		if user == nil || user.Role != models.JuryRole {
			return errs.Validation(fmt.Sprintf("user %v does not hold the jury role", jurorID))
		}
		jurors = append(jurors, *user)
	}

	added := make([]dbmodels.User, 0, len(jurors))
	err = i.transact(func(tx *gorm.DB) error {
		store := i.txStore(tx)
		for _, juror := range jurors {
			// re-assigning an already present juror is a no-op
			if rec.JuryMember(juror.ID) != nil {
				continue
			}
			memberRole := models.JuryMemberRegular
			if juror.ID == data.ChairID {
				memberRole = models.JuryMemberChair
			}
			_, err := store.AddJuryMember(dbmodels.JuryAssignment{
				ApplicationID:    id,
				JurorID:          juror.ID,
				MemberRole:       memberRole,
				EvaluationStatus: models.EvaluationStatusPending,
			})
			if err != nil {
				return err
			}
			added = append(added, juror)
		}
		if rec.Status != models.ApplicationStatusJuryReview {
			return store.SetStatus(id, models.ApplicationStatusJuryReview, "Jüri ataması yapıldı", i.authorName(authorID))
		}
		return nil
	})
	if err != nil {
		return err
	}
	for _, juror := range added {
		i.notify(juror.Email, "Jüri Görevlendirmesi",
			fmt.Sprintf("Sayın %v, bir başvurunun değerlendirmesi için jüri üyesi olarak atandınız.", juror.GetFullName()))
	}
	i.getLogger(id).WithField("assigned", len(added)).Info("jury panel updated")
	return nil
}

// RemoveJuror shares the per-application lock with SubmitEvaluation: a
// removal racing an in-flight evaluation could otherwise leave every
// surviving slot completed with no consensus ever fired.
func (i impl) RemoveJuror(ctx context.Context, id, jurorID, authorID string) error {
	locked, err := lock.WithDelay(ctx, "application:"+id, consensusLockWait, func() error {
		return i.removeJuror(id, jurorID, authorID)
	})
	if err != nil {
		return err
	}
	if !locked {
		return errs.Conflict("application is being updated, try again")
	}
	return nil
}

func (i impl) removeJuror(id, jurorID, authorID string) error {
	decided := false
	explanation := ""
	outcome := models.ApplicationStatus("")
	candidateEmail := ""
	err := i.transact(func(tx *gorm.DB) error {
		store := i.txStore(tx)
		rec, err := store.GetByID(id)
		if err != nil {
			return err
		}
		if rec == nil {
			return errs.NotFound("application not found")
		}
		member := rec.JuryMember(jurorID)
		if member == nil {
			return errs.NotFound("juror is not on the panel")
		}
		if rec.HasFinalDecision() {
			return errs.Conflict("final decision already recorded")
		}
		if err := store.DeleteJuryMember(member.ID); err != nil {
			return err
		}
		survivors := make([]dbmodels.JuryAssignment, 0, len(rec.Jury)-1)
		for _, slot := range rec.Jury {
			if slot.ID != member.ID {
				survivors = append(survivors, slot)
			}
		}
		if len(survivors) == 0 {
			if rec.Status == models.ApplicationStatusJuryReview {
				// last juror removed, go back to the status before the review
				statusLog, err := store.StatusLog(id)
				if err != nil {
					return err
				}
				restored := previousStatus(statusLog)
				return store.SetStatus(id, restored, "Jüri ataması kaldırıldı", i.authorName(authorID))
			}
			return nil
		}
		if rec.Status != models.ApplicationStatusJuryReview {
			return nil
		}
		// the removed juror may have held the only pending vote
		done, positive, negative, status := decideConsensus(survivors)
		if !done {
			return nil
		}
		decided = true
		outcome = status
		explanation = consensusExplanation(positive, negative)
		if rec.Candidate != nil {
			candidateEmail = rec.Candidate.Email
		}
		err = store.Update(id, map[string]interface{}{
			"final_status":      status,
			"final_date":        time.Now(),
			"final_explanation": explanation,
		})
		if err != nil {
			return err
		}
		return store.SetStatus(id, status, explanation, models.SystemUser)
	})
	if err != nil {
		return err
	}
	logger := i.getLogger(id).WithField("juror_id", jurorID)
	logger.Info("juror removed from panel")
	if decided {
		logger.WithField("outcome", outcome).Info("jury consensus reached")
		i.notify(candidateEmail, "Başvuru Sonucu",
			fmt.Sprintf("Başvurunuz sonuçlandı: %v (%v)", outcome.ToHuman(), explanation))
	}
	return nil
}

// SubmitEvaluation records the juror's verdict and runs the consensus
// check. The per-application lock plus the final-decision guard keep two
// concurrent last evaluations from both appending a terminal status.
func (i impl) SubmitEvaluation(ctx context.Context, id, jurorID string, data applicationapimodels.EvaluationRequest, reportFileID string) error {
	if err := data.Validate(); err != nil {
		return errs.Validation(err.Error())
	}
	locked, err := lock.WithDelay(ctx, "application:"+id, consensusLockWait, func() error {
		return i.submitEvaluation(id, jurorID, data, reportFileID)
	})
	if err != nil {
		return err
	}
	if !locked {
		return errs.Conflict("application is being updated, try again")
	}
	return nil
}

func (i impl) submitEvaluation(id, jurorID string, data applicationapimodels.EvaluationRequest, reportFileID string) error {
	decided := false
	explanation := ""
	outcome := models.ApplicationStatus("")
	candidateEmail := ""
	err := i.transact(func(tx *gorm.DB) error {
		store := i.txStore(tx)
		// guards run on the row read in this transaction, so the
		// final decision is written at most once even across server
		// instances
		rec, err := store.GetByID(id)
		if err != nil {
			return err
		}
		if rec == nil {
			return errs.NotFound("application not found")
		}
		member := rec.JuryMember(jurorID)
		if member == nil {
			return errs.Forbidden("caller is not a member of the jury panel")
		}
		if member.IsCompleted() {
			return errs.Conflict("evaluation already submitted")
		}
		if rec.HasFinalDecision() {
			return errs.Conflict("final decision already recorded")
		}
		now := time.Now()
		err = store.UpdateJuryMember(member.ID, map[string]interface{}{
			"evaluation_status": models.EvaluationStatusCompleted,
			"decision":          data.Decision,
			"comments":          data.Comments,
			"report_file_id":    reportFileID,
			"submitted_at":      now,
		})
		if err != nil {
			return err
		}
		member.EvaluationStatus = models.EvaluationStatusCompleted
		member.Decision = data.Decision

		done, positive, negative, status := decideConsensus(rec.Jury)
		if !done {
			return nil
		}
		decided = true
		outcome = status
		explanation = consensusExplanation(positive, negative)
		if rec.Candidate != nil {
			candidateEmail = rec.Candidate.Email
		}
		err = store.Update(id, map[string]interface{}{
			"final_status":      status,
			"final_date":        now,
			"final_explanation": explanation,
		})
		if err != nil {
			return err
		}
		return store.SetStatus(id, status, explanation, models.SystemUser)
	})
	if err != nil {
		return err
	}
	logger := i.getLogger(id).WithField("juror_id", jurorID)
	logger.Info("evaluation recorded")
	if decided {
		logger.WithField("outcome", outcome).Info("jury consensus reached")
		i.notify(candidateEmail, "Başvuru Sonucu",
			fmt.Sprintf("Başvurunuz sonuçlandı: %v (%v)", outcome.ToHuman(), explanation))
	}
	return nil
}

func (i impl) UpdateStatus(id, authorID string, data applicationapimodels.StatusUpdateRequest) error {
	if err := data.Validate(); err != nil {
		return errs.Validation(err.Error())
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errs.NotFound("application not found")
	}
	err = i.transact(func(tx *gorm.DB) error {
		return i.txStore(tx).SetStatus(id, data.Status, data.Note, i.authorName(authorID))
	})
	if err != nil {
		return err
	}
	i.getLogger(id).WithField("status", data.Status).Info("application status updated")
	return nil
}

// Delete cascades: publications are detached but preserved, documents and
// their files are removed, the posting counter is decremented.
func (i impl) Delete(ctx context.Context, id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errs.NotFound("application not found")
	}
	if err = filestorage.Instance.DeleteByApplication(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete application documents")
	}
	err = i.transact(func(tx *gorm.DB) error {
		if err := publicationstore.NewInstance(tx).DetachFromApplication(id); err != nil {
			return err
		}
		if err := i.txStore(tx).Delete(id); err != nil {
			return err
		}
		return postingstore.NewInstance(tx).IncApplicationsCount(rec.PostingID, -1)
	})
	if err != nil {
		return err
	}
	i.getLogger(id).Info("application deleted")
	return nil
}

func (i impl) authorName(userID string) string {
	if userID == "" {
		return models.SystemUser
	}
	user, err := i.userStore.GetByID(userID)
	if err != nil || user == nil {
		return models.SystemUser
	}
	return user.GetFullName()
}

// notify sends a best-effort mail; failures are logged and swallowed.
func (i impl) notify(email, subject, message string) {
	if email == "" || smtp.Instance == nil {
		return
	}
	if err := smtp.Instance.SendEMail(email, subject, message); err != nil {
		log.WithError(err).WithField("email", email).Error("notification mail failed")
	}
}
