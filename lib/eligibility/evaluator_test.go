package eligibility

import (
	"testing"

	"academy-apply-backend/lib/scoring"
	"academy-apply-backend/models"
	dbmodels "academy-apply-backend/models/db"

	"github.com/stretchr/testify/require"
)

func passingCriteria() dbmodels.FieldGroupCriteria {
	return dbmodels.FieldGroupCriteria{
		FieldGroup:           models.FieldGroupEngineering,
		MinLanguageScore:     65,
		AcceptedExams:        dbmodels.ExamSet{models.ExamYDS, models.ExamYOKDIL},
		MinTotalPublications: 5,
		MinCountA1A2:         1,
		MinCountA1A4:         3,
		MinCountA1A5:         4,
		MinMainAuthor:        2,
		MinPointsA1A4:        100,
		MinPointsA1A5:        120,
		MinTotalPoints:       150,
		MaxTotalPoints:       1000,
	}
}

func passingInput() Input {
	return Input{
		FieldGroup:    models.FieldGroupEngineering,
		LanguageExam:  models.ExamYDS,
		LanguageScore: 70,
		Stats: scoring.Stats{
			CountA1A2:       2,
			CountA1A4:       4,
			CountA1A5:       5,
			MainAuthorCount: 3,
			TotalCount:      6,
			PointsA1A4:      180,
			PointsA1A5:      205,
			TotalScore:      260,
		},
	}
}

func TestEvaluate(t *testing.T) {
	t.Run(`all checks pass`, func(t *testing.T) {
		result := Evaluate(passingCriteria(), passingInput())
		require.Equal(t, true, result.Eligible)
		require.Empty(t, result.Failed)
	})

	t.Run(`flipping any single threshold flips the verdict`, func(t *testing.T) {
		cases := map[CheckCode]func(*dbmodels.FieldGroupCriteria){
			CheckLanguage:        func(c *dbmodels.FieldGroupCriteria) { c.MinLanguageScore = 71 },
			CheckTotalCount:      func(c *dbmodels.FieldGroupCriteria) { c.MinTotalPublications = 7 },
			CheckCountA1A2:       func(c *dbmodels.FieldGroupCriteria) { c.MinCountA1A2 = 3 },
			CheckCountPointsA1A4: func(c *dbmodels.FieldGroupCriteria) { c.MinPointsA1A4 = 181 },
			CheckCountPointsA1A5: func(c *dbmodels.FieldGroupCriteria) { c.MinCountA1A5 = 6 },
			CheckMainAuthor:      func(c *dbmodels.FieldGroupCriteria) { c.MinMainAuthor = 4 },
			CheckTotalScore:      func(c *dbmodels.FieldGroupCriteria) { c.MinTotalPoints = 261 },
		}
		for code, mutate := range cases {
			criteria := passingCriteria()
			mutate(&criteria)
			result := Evaluate(criteria, passingInput())
			require.Equal(t, false, result.Eligible, string(code))
			require.Len(t, result.Failed, 1, string(code))
			require.Equal(t, code, result.Failed[0].Code)
		}
	})

	t.Run(`upper bound of the score range is inclusive`, func(t *testing.T) {
		criteria := passingCriteria()
		criteria.MaxTotalPoints = 260
		result := Evaluate(criteria, passingInput())
		require.Equal(t, true, result.Eligible)

		criteria.MaxTotalPoints = 259
		result = Evaluate(criteria, passingInput())
		require.Equal(t, false, result.Eligible)
		require.Equal(t, CheckTotalScore, result.Failed[0].Code)
	})

	t.Run(`unknown field group is a configuration error`, func(t *testing.T) {
		in := passingInput()
		in.FieldGroup = models.FieldGroup("FINE_ARTS")
		result := Evaluate(passingCriteria(), in)
		require.Equal(t, false, result.Eligible)
		require.Equal(t, CheckFieldGroup, result.Failed[0].Code)
	})

	t.Run(`unaccepted exam fails the language check`, func(t *testing.T) {
		in := passingInput()
		in.LanguageExam = models.ExamTOEFL
		result := Evaluate(passingCriteria(), in)
		require.Equal(t, false, result.Eligible)
		require.Equal(t, CheckLanguage, result.Failed[0].Code)
	})

	t.Run(`default minimum language score applies when unset`, func(t *testing.T) {
		criteria := passingCriteria()
		criteria.MinLanguageScore = 0
		in := passingInput()
		in.LanguageScore = 64
		result := Evaluate(criteria, in)
		require.Equal(t, false, result.Eligible)
		require.Equal(t, CheckLanguage, result.Failed[0].Code)

		in.LanguageScore = 65
		require.Equal(t, true, Evaluate(criteria, in).Eligible)
	})

	t.Run(`every failing check is reported, not only the first`, func(t *testing.T) {
		in := Input{
			FieldGroup:    models.FieldGroupEngineering,
			LanguageExam:  models.ExamYDS,
			LanguageScore: 10,
			Stats:         scoring.Stats{},
		}
		result := Evaluate(passingCriteria(), in)
		require.Equal(t, false, result.Eligible)
		require.Len(t, result.Failed, 7)
	})
}
