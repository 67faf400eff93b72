package domain

import "fmt"

// LeaderboardEntry - производная запись, целиком пересоздается при каждом пересчете
type LeaderboardEntry struct {
	ID     string
	UserID string
	Score  float64
	Rank   int
}

// Describe повторяет формат "<user> - Rank <n> (Score: <score>)"
func (e *LeaderboardEntry) Describe(userName string) string {
	return fmt.Sprintf("%s - Rank %d (Score: %s)", userName, e.Rank, formatNumber(e.Score))
}

// ScoreMetric задает, как из одной активности получается вклад в итоговый балл
type ScoreMetric string

const (
	MetricDuration ScoreMetric = "duration"
	MetricSessions ScoreMetric = "sessions"
)

func (m ScoreMetric) Valid() bool {
	return m == MetricDuration || m == MetricSessions
}

// ScoreFunc возвращает вклад одной активности в балл пользователя
type ScoreFunc func(a *Activity) float64

func DurationScore(a *Activity) float64 {
	return a.Duration
}

func SessionScore(*Activity) float64 {
	return 1
}

func (m ScoreMetric) ScoreFunc() ScoreFunc {
	if m == MetricSessions {
		return SessionScore
	}
	return DurationScore
}
