package model

import (
	"time"
)

// RepositorySummary is the subset of an upstream search record used for scoring
type RepositorySummary struct {
	Name          string
	Stars         int
	Forks         int
	LastUpdatedAt time.Time
}

// ScoredRepository is one entry of a search or aggregate response
type ScoredRepository struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}
