package dbmodels

type FileDocument struct {
	BaseModel
	Name          string
	OwnerID       string  `gorm:"type:varchar(36);index"`
	ApplicationID *string `gorm:"type:varchar(36);index"`
	Type          FileType
	ContentType   string
	ObjectKey     string `gorm:"type:varchar(255)"` // key in the s3 bucket
}

type FileType string

const (
	PublicationProof  FileType = "publication_proof"
	CandidateDocument FileType = "candidate_document"
	JuryReport        FileType = "jury_report"
)
