package models

// FieldGroup is one of the four fixed discipline clusters the criteria
// catalog is keyed by.
type FieldGroup string

const (
	FieldGroupHealth      FieldGroup = "HEALTH_SCIENCES"
	FieldGroupScience     FieldGroup = "SCIENCE_MATH"
	FieldGroupEngineering FieldGroup = "ENGINEERING"
	FieldGroupSocial      FieldGroup = "SOCIAL_SCIENCES"
)

var fieldGroupHumanName = map[FieldGroup]string{
	FieldGroupHealth:      "Sağlık Bilimleri",
	FieldGroupScience:     "Fen Bilimleri ve Matematik",
	FieldGroupEngineering: "Mühendislik",
	FieldGroupSocial:      "Sosyal ve Beşeri Bilimler",
}

func (g FieldGroup) ToHuman() string {
	if human, exist := fieldGroupHumanName[g]; exist {
		return human
	}
	return string(g)
}

func (g FieldGroup) IsValid() bool {
	_, exist := fieldGroupHumanName[g]
	return exist
}

func FieldGroupList() []FieldGroup {
	return []FieldGroup{FieldGroupHealth, FieldGroupScience, FieldGroupEngineering, FieldGroupSocial}
}

// PublicationCategory is the ordinal quality tier, A1 strongest down to A8.
type PublicationCategory string

const (
	CategoryA1 PublicationCategory = "A1"
	CategoryA2 PublicationCategory = "A2"
	CategoryA3 PublicationCategory = "A3"
	CategoryA4 PublicationCategory = "A4"
	CategoryA5 PublicationCategory = "A5"
	CategoryA6 PublicationCategory = "A6"
	CategoryA7 PublicationCategory = "A7"
	CategoryA8 PublicationCategory = "A8"
)

// venue index classification derived from the category
var categoryIndex = map[PublicationCategory]string{
	CategoryA1: "SCI-E/SSCI/AHCI Q1",
	CategoryA2: "SCI-E/SSCI/AHCI Q2",
	CategoryA3: "SCI-E/SSCI/AHCI Q3",
	CategoryA4: "SCI-E/SSCI/AHCI Q4",
	CategoryA5: "ESCI",
	CategoryA6: "Scopus",
	CategoryA7: "Diğer Uluslararası İndeksler",
	CategoryA8: "TR Dizin",
}

func (c PublicationCategory) Index() string {
	if index, exist := categoryIndex[c]; exist {
		return index
	}
	return "İndeks Dışı"
}

func (c PublicationCategory) IsValid() bool {
	_, exist := categoryIndex[c]
	return exist
}

type LanguageExam string

const (
	ExamYDS    LanguageExam = "YDS"
	ExamYOKDIL LanguageExam = "YOKDIL"
	ExamTOEFL  LanguageExam = "TOEFL_IBT"
	ExamEYDS   LanguageExam = "E_YDS"
)

func LanguageExamList() []LanguageExam {
	return []LanguageExam{ExamYDS, ExamYOKDIL, ExamTOEFL, ExamEYDS}
}

type PostingStatus string

const (
	PostingStatusOpen   PostingStatus = "OPEN"
	PostingStatusClosed PostingStatus = "CLOSED"
)
