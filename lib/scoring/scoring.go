package scoring

import (
	"academy-apply-backend/models"
	dbmodels "academy-apply-backend/models/db"
)

// Base point table per category tier, strictly decreasing A1..A8.
var basePoints = map[models.PublicationCategory]int{
	models.CategoryA1: 60,
	models.CategoryA2: 55,
	models.CategoryA3: 40,
	models.CategoryA4: 30,
	models.CategoryA5: 25,
	models.CategoryA6: 20,
	models.CategoryA7: 15,
	models.CategoryA8: 10,
}

const (
	// categories outside the known enumeration still score a token value
	unknownCategoryPoints = 5
	mainAuthorBonus       = 10
)

// Score returns the point value of a single publication.
func Score(category models.PublicationCategory, isMainAuthor bool) int {
	points, ok := basePoints[category]
	if !ok {
		points = unknownCategoryPoints
	}
	if isMainAuthor {
		points += mainAuthorBonus
	}
	return points
}

// Stats is the aggregate the eligibility evaluator consumes.
type Stats struct {
	CountA1A2       int
	CountA1A4       int
	CountA1A5       int
	MainAuthorCount int
	TotalCount      int
	PointsA1A4      int
	PointsA1A5      int
	TotalScore      int
}

var (
	tierA1A2 = map[models.PublicationCategory]bool{
		models.CategoryA1: true,
		models.CategoryA2: true,
	}
	tierA1A4 = map[models.PublicationCategory]bool{
		models.CategoryA1: true,
		models.CategoryA2: true,
		models.CategoryA3: true,
		models.CategoryA4: true,
	}
	tierA1A5 = map[models.PublicationCategory]bool{
		models.CategoryA1: true,
		models.CategoryA2: true,
		models.CategoryA3: true,
		models.CategoryA4: true,
		models.CategoryA5: true,
	}
)

// Aggregate folds a publication set into summary statistics. The fold is
// order independent and an empty set yields all zeroes.
func Aggregate(list []dbmodels.Publication) Stats {
	stats := Stats{}
	for _, pub := range list {
		points := Score(pub.Category, pub.IsMainAuthor)
		stats.TotalCount++
		stats.TotalScore += points
		if pub.IsMainAuthor {
			stats.MainAuthorCount++
		}
		if tierA1A2[pub.Category] {
			stats.CountA1A2++
		}
		if tierA1A4[pub.Category] {
			stats.CountA1A4++
			stats.PointsA1A4 += points
		}
		if tierA1A5[pub.Category] {
			stats.CountA1A5++
			stats.PointsA1A5 += points
		}
	}
	return stats
}

// Breakdown builds the itemized score list persisted with an application.
func Breakdown(list []dbmodels.Publication) dbmodels.ScoreBreakdown {
	result := make(dbmodels.ScoreBreakdown, 0, len(list))
	for _, pub := range list {
		item := dbmodels.ScoreItem{
			Category:  pub.Category,
			Criterion: pub.Category.Index(),
			Points:    Score(pub.Category, pub.IsMainAuthor),
		}
		if pub.ProofFileID != "" {
			item.Documents = []string{pub.ProofFileID}
		}
		result = append(result, item)
	}
	return result
}
