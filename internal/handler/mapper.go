package handler

import (
	"github.com/bagdasarian/octofit-tracker/internal/domain"
	"github.com/bagdasarian/octofit-tracker/internal/service"
)

func domainTeamToHTTP(team *domain.Team) TeamResponse {
	return TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		CreatedAt:   team.CreatedAt,
	}
}

func httpTeamToDomain(req TeamRequest) *domain.Team {
	team := &domain.Team{}
	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Description != nil {
		team.Description = *req.Description
	}
	return team
}

func httpTeamToPatch(req TeamRequest) domain.TeamPatch {
	return domain.TeamPatch{
		Name:        req.Name,
		Description: req.Description,
	}
}

func domainUserToHTTP(view *domain.UserView) UserResponse {
	user := view.User
	return UserResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Team:         user.TeamID,
		TeamName:     view.TeamName,
		Avatar:       user.Avatar,
		FitnessLevel: string(user.FitnessLevel),
		CreatedAt:    user.CreatedAt,
	}
}

func httpUserToDomain(req UserRequest) *domain.User {
	user := &domain.User{TeamID: req.Team.Value}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	if req.FitnessLevel != nil {
		user.FitnessLevel = *req.FitnessLevel
	}
	return user
}

func httpUserToPatch(req UserRequest) domain.UserPatch {
	patch := domain.UserPatch{
		Name:         req.Name,
		Email:        req.Email,
		Avatar:       req.Avatar,
		FitnessLevel: req.FitnessLevel,
	}
	if req.Team.Set {
		none := ""
		patch.TeamID = &none
		if req.Team.Value != nil {
			patch.TeamID = req.Team.Value
		}
	}
	return patch
}

func domainActivityToHTTP(view *domain.ActivityView) ActivityResponse {
	activity := view.Activity
	return ActivityResponse{
		ID:           activity.ID,
		User:         activity.UserID,
		UserName:     view.UserName,
		ActivityType: string(activity.ActivityType),
		Duration:     activity.Duration,
		Date:         activity.Date,
		Notes:        activity.Notes,
	}
}

func httpActivityToDomain(req ActivityRequest) *domain.Activity {
	activity := &domain.Activity{}
	if req.User != nil {
		activity.UserID = *req.User
	}
	if req.ActivityType != nil {
		activity.ActivityType = *req.ActivityType
	}
	if req.Duration != nil {
		activity.Duration = *req.Duration
	}
	if req.Date != nil {
		activity.Date = *req.Date
	}
	if req.Notes != nil {
		activity.Notes = *req.Notes
	}
	return activity
}

func httpActivityToPatch(req ActivityRequest) domain.ActivityPatch {
	return domain.ActivityPatch{
		UserID:       req.User,
		ActivityType: req.ActivityType,
		Duration:     req.Duration,
		Date:         req.Date,
		Notes:        req.Notes,
	}
}

func domainWorkoutToHTTP(workout *domain.Workout) WorkoutResponse {
	exercises := workout.Exercises
	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	return WorkoutResponse{
		ID:          workout.ID,
		Name:        workout.Name,
		Description: workout.Description,
		Exercises:   exercises,
		Difficulty:  string(workout.Difficulty),
	}
}

func httpWorkoutToDomain(req WorkoutRequest) *domain.Workout {
	workout := &domain.Workout{}
	if req.Name != nil {
		workout.Name = *req.Name
	}
	if req.Description != nil {
		workout.Description = *req.Description
	}
	if req.Exercises != nil {
		workout.Exercises = *req.Exercises
	}
	if req.Difficulty != nil {
		workout.Difficulty = *req.Difficulty
	}
	return workout
}

func httpWorkoutToPatch(req WorkoutRequest) domain.WorkoutPatch {
	return domain.WorkoutPatch{
		Name:        req.Name,
		Description: req.Description,
		Exercises:   req.Exercises,
		Difficulty:  req.Difficulty,
	}
}

func domainLeaderboardToHTTP(view *domain.LeaderboardView) LeaderboardResponse {
	return LeaderboardResponse{
		ID:       view.Entry.ID,
		User:     view.Entry.UserID,
		UserName: view.UserName,
		TeamName: view.TeamName,
		Score:    view.Entry.Score,
		Rank:     view.Entry.Rank,
	}
}

func domainLeaderboardListToHTTP(views []*domain.LeaderboardView) []LeaderboardResponse {
	response := make([]LeaderboardResponse, 0, len(views))
	for _, view := range views {
		response = append(response, domainLeaderboardToHTTP(view))
	}
	return response
}

func domainStatsToHTTP(stats *service.Stats) StatsResponse {
	response := StatsResponse{
		Teams:         make([]TeamStatResponse, len(stats.Teams)),
		ActivityTypes: make([]ActivityTypeStatResponse, len(stats.ActivityTypes)),
	}

	for i, stat := range stats.Teams {
		response.Teams[i] = TeamStatResponse{
			TeamID:        stat.TeamID,
			TeamName:      stat.TeamName,
			MemberCount:   stat.MemberCount,
			ActivityCount: stat.ActivityCount,
			TotalMinutes:  stat.TotalMinutes,
		}
	}

	for i, stat := range stats.ActivityTypes {
		response.ActivityTypes[i] = ActivityTypeStatResponse{
			ActivityType: string(stat.ActivityType),
			Count:        stat.Count,
			TotalMinutes: stat.TotalMinutes,
		}
	}

	return response
}
