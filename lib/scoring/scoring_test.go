package scoring

import (
	"testing"

	"academy-apply-backend/models"
	dbmodels "academy-apply-backend/models/db"

	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	t.Run(`base points strictly decrease by tier`, func(t *testing.T) {
		ordered := []models.PublicationCategory{
			models.CategoryA1, models.CategoryA2, models.CategoryA3, models.CategoryA4,
			models.CategoryA5, models.CategoryA6, models.CategoryA7, models.CategoryA8,
		}
		expected := []int{60, 55, 40, 30, 25, 20, 15, 10}
		prev := 0
		for idx, category := range ordered {
			points := Score(category, false)
			require.Equal(t, expected[idx], points)
			if idx > 0 {
				require.Less(t, points, prev)
			}
			prev = points
		}
	})

	t.Run(`unknown category scores the token value`, func(t *testing.T) {
		require.Equal(t, 5, Score(models.PublicationCategory("B3"), false))
		require.Equal(t, 15, Score(models.PublicationCategory("B3"), true))
	})

	t.Run(`main author bonus is a flat +10 on every tier`, func(t *testing.T) {
		for category := range map[models.PublicationCategory]bool{
			models.CategoryA1: true, models.CategoryA4: true, models.CategoryA8: true,
		} {
			require.Equal(t, Score(category, false)+10, Score(category, true))
		}
	})
}

func TestAggregate(t *testing.T) {
	t.Run(`empty set yields zero stats`, func(t *testing.T) {
		require.Equal(t, Stats{}, Aggregate(nil))
		require.Equal(t, Stats{}, Aggregate([]dbmodels.Publication{}))
	})

	t.Run(`tier subsets and point sub-totals`, func(t *testing.T) {
		list := []dbmodels.Publication{
			{Category: models.CategoryA1, IsMainAuthor: true},  // 70
			{Category: models.CategoryA2, IsMainAuthor: false}, // 55
			{Category: models.CategoryA4, IsMainAuthor: true},  // 40
			{Category: models.CategoryA5, IsMainAuthor: false}, // 25
			{Category: models.CategoryA8, IsMainAuthor: false}, // 10
		}
		stats := Aggregate(list)
		require.Equal(t, 2, stats.CountA1A2)
		require.Equal(t, 3, stats.CountA1A4)
		require.Equal(t, 4, stats.CountA1A5)
		require.Equal(t, 2, stats.MainAuthorCount)
		require.Equal(t, 5, stats.TotalCount)
		require.Equal(t, 70+55+40, stats.PointsA1A4)
		require.Equal(t, 70+55+40+25, stats.PointsA1A5)
		require.Equal(t, 70+55+40+25+10, stats.TotalScore)
	})

	t.Run(`sub-total equals the fold over the tier members only`, func(t *testing.T) {
		list := []dbmodels.Publication{
			{Category: models.CategoryA3, IsMainAuthor: true},
			{Category: models.CategoryA6, IsMainAuthor: true},
			{Category: models.CategoryA7, IsMainAuthor: false},
		}
		stats := Aggregate(list)
		require.Equal(t, Score(models.CategoryA3, true), stats.PointsA1A4)
		require.Equal(t, Score(models.CategoryA3, true), stats.PointsA1A5)
	})

	t.Run(`aggregation is order independent`, func(t *testing.T) {
		forward := []dbmodels.Publication{
			{Category: models.CategoryA1, IsMainAuthor: true},
			{Category: models.CategoryA5},
			{Category: models.CategoryA8},
		}
		backward := []dbmodels.Publication{forward[2], forward[1], forward[0]}
		require.Equal(t, Aggregate(forward), Aggregate(backward))
	})
}

func TestBreakdown(t *testing.T) {
	list := []dbmodels.Publication{
		{Category: models.CategoryA1, IsMainAuthor: true, ProofFileID: "file-1"},
		{Category: models.CategoryA6},
	}
	breakdown := Breakdown(list)
	require.Len(t, breakdown, 2)
	require.Equal(t, 70, breakdown[0].Points)
	require.Equal(t, []string{"file-1"}, breakdown[0].Documents)
	require.Equal(t, "Scopus", breakdown[1].Criterion)
	require.Empty(t, breakdown[1].Documents)
}
