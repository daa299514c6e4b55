package models

type ApplicationStatus string

const (
	ApplicationStatusPending    ApplicationStatus = "PENDING"
	ApplicationStatusJuryReview ApplicationStatus = "UNDER_JURY_REVIEW"
	ApplicationStatusApproved   ApplicationStatus = "APPROVED"
	ApplicationStatusRejected   ApplicationStatus = "REJECTED"
)

var applicationStatusHumanName = map[ApplicationStatus]string{
	ApplicationStatusPending:    "Beklemede",
	ApplicationStatusJuryReview: "Jüri Değerlendirmesinde",
	ApplicationStatusApproved:   "Onaylandı",
	ApplicationStatusRejected:   "Reddedildi",
}

func (s ApplicationStatus) ToHuman() string {
	if human, exist := applicationStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s ApplicationStatus) IsValid() bool {
	_, exist := applicationStatusHumanName[s]
	return exist
}

func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusApproved || s == ApplicationStatusRejected
}

type EvaluationStatus string

const (
	EvaluationStatusPending   EvaluationStatus = "PENDING"
	EvaluationStatusCompleted EvaluationStatus = "COMPLETED"
)

type EvaluationDecision string

const (
	DecisionPositive EvaluationDecision = "POSITIVE"
	DecisionNegative EvaluationDecision = "NEGATIVE"
)

var decisionHumanName = map[EvaluationDecision]string{
	DecisionPositive: "Olumlu",
	DecisionNegative: "Olumsuz",
}

func (d EvaluationDecision) ToHuman() string {
	if human, exist := decisionHumanName[d]; exist {
		return human
	}
	return string(d)
}

func (d EvaluationDecision) IsValid() bool {
	_, exist := decisionHumanName[d]
	return exist
}

type JuryMemberRole string

const (
	JuryMemberRegular JuryMemberRole = "MEMBER"
	JuryMemberChair   JuryMemberRole = "CHAIR"
)
