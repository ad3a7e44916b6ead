// Package score ranks repositories by popularity and freshness.
package score

import (
	"cmp"
	"math"
	"slices"
	"time"

	"github.com/m-mizutani/reposcore/pkg/domain/model"
)

const (
	starWeight = 2.0
	forkWeight = 0.5
	// dampingDays keeps the denominator away from zero for freshly updated repositories
	dampingDays = 5.0

	scorePrecision  = 2
	scaledPrecision = 4
)

// Calculate returns (stars*2 + forks*0.5) / (daysSinceUpdate + 5) rounded to 2 decimal places.
// daysSinceUpdate is fractional and becomes negative when LastUpdatedAt is after now.
func Calculate(repo *model.RepositorySummary, now time.Time) float64 {
	days := float64(now.Sub(repo.LastUpdatedAt)) / float64(24*time.Hour)
	raw := (float64(repo.Stars)*starWeight + float64(repo.Forks)*forkWeight) / (days + dampingDays)
	return round(raw, scorePrecision)
}

// ScaleToInterval rescales scores linearly so that the lowest score becomes newMin and the
// highest becomes newMax, rounded to 4 decimal places. When all scores are equal, every
// score is set to newMin. Order and length of repos are preserved; scores are updated in place.
func ScaleToInterval(repos []*model.ScoredRepository, newMin, newMax float64) []*model.ScoredRepository {
	if len(repos) == 0 {
		return repos
	}

	oldMin, oldMax := repos[0].Score, repos[0].Score
	for _, repo := range repos[1:] {
		oldMin = math.Min(oldMin, repo.Score)
		oldMax = math.Max(oldMax, repo.Score)
	}

	oldRange := oldMax - oldMin
	newRange := newMax - newMin

	if oldRange == 0 {
		for _, repo := range repos {
			repo.Score = newMin
		}
		return repos
	}

	for _, repo := range repos {
		normalized := (repo.Score - oldMin) / oldRange
		repo.Score = round(normalized*newRange+newMin, scaledPrecision)
	}

	return repos
}

// Rank scores every repository against the same now and sorts them by score in
// descending order. Repositories with equal scores keep their input order.
func Rank(repos []*model.RepositorySummary, now time.Time) []*model.ScoredRepository {
	scored := make([]*model.ScoredRepository, len(repos))
	for i, repo := range repos {
		scored[i] = &model.ScoredRepository{
			Name:  repo.Name,
			Score: Calculate(repo, now),
		}
	}

	slices.SortStableFunc(scored, func(a, b *model.ScoredRepository) int {
		return cmp.Compare(b.Score, a.Score)
	})

	return scored
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
