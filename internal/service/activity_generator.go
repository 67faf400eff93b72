package service

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
)

const (
	minGeneratedActivities = 5
	maxGeneratedActivities = 10
	minGeneratedMinutes    = 15
	maxGeneratedMinutes    = 120
	maxGeneratedDaysAgo    = 30
)

// GenerateActivities создает от 5 до 10 случайных активностей пользователя за последние 30 дней
func GenerateActivities(rng *rand.Rand, userID string, now time.Time) []*domain.Activity {
	count := minGeneratedActivities + rng.Intn(maxGeneratedActivities-minGeneratedActivities+1)

	activities := make([]*domain.Activity, 0, count)
	for i := 0; i < count; i++ {
		daysAgo := rng.Intn(maxGeneratedDaysAgo + 1)
		activities = append(activities, &domain.Activity{
			UserID:       userID,
			ActivityType: domain.ActivityTypes[rng.Intn(len(domain.ActivityTypes))],
			Duration:     float64(minGeneratedMinutes + rng.Intn(maxGeneratedMinutes-minGeneratedMinutes+1)),
			Date:         now.AddDate(0, 0, -daysAgo),
			Notes:        fmt.Sprintf("Great workout session #%d", i+1),
		})
	}

	return activities
}
