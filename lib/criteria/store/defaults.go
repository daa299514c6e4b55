package criteriastore

import (
	"academy-apply-backend/models"
	dbmodels "academy-apply-backend/models/db"
)

func allExams() dbmodels.ExamSet {
	return dbmodels.ExamSet(models.LanguageExamList())
}

// DefaultSet is the bootstrap criteria table, one row per field group.
// Values follow the published minimum requirements for each discipline
// cluster; administrators tune them afterwards through the API.
func DefaultSet() []dbmodels.FieldGroupCriteria {
	return []dbmodels.FieldGroupCriteria{
		{
			FieldGroup:           models.FieldGroupHealth,
			MinLanguageScore:     65,
			AcceptedExams:        allExams(),
			MinTotalPublications: 7,
			MinCountA1A2:         2,
			MinCountA1A4:         4,
			MinCountA1A5:         5,
			MinMainAuthor:        2,
			MinPointsA1A4:        150,
			MinPointsA1A5:        180,
			MinTotalPoints:       250,
			MaxTotalPoints:       2000,
		},
		{
			FieldGroup:           models.FieldGroupScience,
			MinLanguageScore:     65,
			AcceptedExams:        allExams(),
			MinTotalPublications: 7,
			MinCountA1A2:         2,
			MinCountA1A4:         4,
			MinCountA1A5:         5,
			MinMainAuthor:        2,
			MinPointsA1A4:        150,
			MinPointsA1A5:        180,
			MinTotalPoints:       250,
			MaxTotalPoints:       2000,
		},
		{
			FieldGroup:           models.FieldGroupEngineering,
			MinLanguageScore:     65,
			AcceptedExams:        allExams(),
			MinTotalPublications: 6,
			MinCountA1A2:         1,
			MinCountA1A4:         4,
			MinCountA1A5:         5,
			MinMainAuthor:        2,
			MinPointsA1A4:        130,
			MinPointsA1A5:        160,
			MinTotalPoints:       220,
			MaxTotalPoints:       2000,
		},
		{
			FieldGroup:           models.FieldGroupSocial,
			MinLanguageScore:     65,
			AcceptedExams:        allExams(),
			MinTotalPublications: 5,
			MinCountA1A2:         1,
			MinCountA1A4:         3,
			MinCountA1A5:         4,
			MinMainAuthor:        1,
			MinPointsA1A4:        100,
			MinPointsA1A5:        130,
			MinTotalPoints:       200,
			MaxTotalPoints:       2000,
		},
	}
}
