package domain

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

type ActivityType string

const (
	ActivityRunning          ActivityType = "running"
	ActivityCycling          ActivityType = "cycling"
	ActivitySwimming         ActivityType = "swimming"
	ActivityStrengthTraining ActivityType = "strength_training"
	ActivityYoga             ActivityType = "yoga"
	ActivityWalking          ActivityType = "walking"
	ActivityOther            ActivityType = "other"
)

// ActivityTypes перечисляет все допустимые типы в порядке объявления
var ActivityTypes = []ActivityType{
	ActivityRunning,
	ActivityCycling,
	ActivitySwimming,
	ActivityStrengthTraining,
	ActivityYoga,
	ActivityWalking,
	ActivityOther,
}

func (t ActivityType) Valid() bool {
	for _, known := range ActivityTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Activity - одна залогированная тренировка. Duration в минутах
type Activity struct {
	ID           string
	UserID       string
	ActivityType ActivityType
	Duration     float64
	Date         time.Time
	Notes        string
}

type ActivityPatch struct {
	UserID       *string
	ActivityType *ActivityType
	Duration     *float64
	Date         *time.Time
	Notes        *string
}

type ActivityFilter struct {
	UserID       string
	ActivityType ActivityType
}

func (a *Activity) Validate() error {
	if a.UserID == "" {
		return NewValidationError("activity user is required")
	}
	if !a.ActivityType.Valid() {
		return NewValidationError("invalid activity_type %q", a.ActivityType)
	}
	if a.Duration < 0 || math.IsNaN(a.Duration) || math.IsInf(a.Duration, 0) {
		return NewValidationError("duration must be a non-negative number of minutes")
	}
	if a.Date.IsZero() {
		return NewValidationError("activity date is required")
	}
	return nil
}

func (p ActivityPatch) Apply(a *Activity) {
	if p.UserID != nil {
		a.UserID = *p.UserID
	}
	if p.ActivityType != nil {
		a.ActivityType = *p.ActivityType
	}
	if p.Duration != nil {
		a.Duration = *p.Duration
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Describe повторяет формат "<user> - <type> (<duration> min)"
func (a *Activity) Describe(userName string) string {
	return fmt.Sprintf("%s - %s (%s min)", userName, a.ActivityType, formatNumber(a.Duration))
}
