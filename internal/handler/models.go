package handler

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
)

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NullableString различает отсутствующее поле и явный null
type NullableString struct {
	Set   bool
	Value *string
}

func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, []byte("null")) {
		n.Value = nil
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

type TeamRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type TeamResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type UserRequest struct {
	Name         *string              `json:"name"`
	Email        *string              `json:"email"`
	Team         NullableString       `json:"team"`
	Avatar       *string              `json:"avatar"`
	FitnessLevel *domain.FitnessLevel `json:"fitness_level"`
}

type UserResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Team         *string   `json:"team"`
	TeamName     *string   `json:"team_name"`
	Avatar       string    `json:"avatar"`
	FitnessLevel string    `json:"fitness_level"`
	CreatedAt    time.Time `json:"created_at"`
}

type ActivityRequest struct {
	User         *string              `json:"user"`
	ActivityType *domain.ActivityType `json:"activity_type"`
	Duration     *float64             `json:"duration"`
	Date         *time.Time           `json:"date"`
	Notes        *string              `json:"notes"`
}

type ActivityResponse struct {
	ID           string    `json:"id"`
	User         string    `json:"user"`
	UserName     *string   `json:"user_name"`
	ActivityType string    `json:"activity_type"`
	Duration     float64   `json:"duration"`
	Date         time.Time `json:"date"`
	Notes        string    `json:"notes"`
}

type WorkoutRequest struct {
	Name        *string            `json:"name"`
	Description *string            `json:"description"`
	Exercises   *[]domain.Exercise `json:"exercises"`
	Difficulty  *domain.Difficulty `json:"difficulty"`
}

type WorkoutResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Exercises   []domain.Exercise `json:"exercises"`
	Difficulty  string            `json:"difficulty"`
}

type LeaderboardResponse struct {
	ID       string  `json:"id"`
	User     string  `json:"user"`
	UserName *string `json:"user_name"`
	TeamName *string `json:"team_name"`
	Score    float64 `json:"score"`
	Rank     int     `json:"rank"`
}

type TeamStatResponse struct {
	TeamID        string  `json:"team"`
	TeamName      string  `json:"team_name"`
	MemberCount   int     `json:"member_count"`
	ActivityCount int     `json:"activity_count"`
	TotalMinutes  float64 `json:"total_minutes"`
}

type ActivityTypeStatResponse struct {
	ActivityType string  `json:"activity_type"`
	Count        int     `json:"count"`
	TotalMinutes float64 `json:"total_minutes"`
}

type StatsResponse struct {
	Teams         []TeamStatResponse         `json:"teams"`
	ActivityTypes []ActivityTypeStatResponse `json:"activity_types"`
}
