package models

type UserRole string

const (
	CandidateRole UserRole = "CANDIDATE_ROLE"
	JuryRole      UserRole = "JURY_ROLE"
	ManagerRole   UserRole = "MANAGER_ROLE"
	AdminRole     UserRole = "ADMIN_ROLE"
)

var roleHumanName = map[UserRole]string{
	CandidateRole: "Aday",
	JuryRole:      "Jüri Üyesi",
	ManagerRole:   "Yönetici",
	AdminRole:     "Admin",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, exist := roleHumanName[r]
	return exist
}

const SystemUser = "Sistem"
