package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
	"github.com/bagdasarian/octofit-tracker/internal/repository"
)

// Resolver дополняет записи отображаемыми полями связанных сущностей (имя команды, имя пользователя).
// Поля вычисляются при каждом чтении и никогда не сохраняются. Отсутствующая связь дает nil, а не ошибку
type Resolver struct {
	teamRepo repository.TeamRepository
	userRepo repository.UserRepository
}

func NewResolver(teamRepo repository.TeamRepository, userRepo repository.UserRepository) *Resolver {
	return &Resolver{
		teamRepo: teamRepo,
		userRepo: userRepo,
	}
}

// lookup кеширует найденные записи в пределах одного вызова, включая отсутствующие (nil)
type lookup struct {
	r     *Resolver
	teams map[string]*domain.Team
	users map[string]*domain.User
}

func (r *Resolver) newLookup() *lookup {
	return &lookup{
		r:     r,
		teams: make(map[string]*domain.Team),
		users: make(map[string]*domain.User),
	}
}

func (l *lookup) team(ctx context.Context, id *string) (*domain.Team, error) {
	if id == nil || *id == "" {
		return nil, nil
	}
	if team, ok := l.teams[*id]; ok {
		return team, nil
	}

	team, err := l.r.teamRepo.GetByID(ctx, *id)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("resolve team %s: %w", *id, err)
	}
	l.teams[*id] = team
	return team, nil
}

func (l *lookup) user(ctx context.Context, id string) (*domain.User, error) {
	if id == "" {
		return nil, nil
	}
	if user, ok := l.users[id]; ok {
		return user, nil
	}

	user, err := l.r.userRepo.GetByID(ctx, id)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("resolve user %s: %w", id, err)
	}
	l.users[id] = user
	return user, nil
}

func teamName(team *domain.Team) *string {
	if team == nil {
		return nil
	}
	name := team.Name
	return &name
}

func userName(user *domain.User) *string {
	if user == nil {
		return nil
	}
	name := user.Name
	return &name
}

func (r *Resolver) User(ctx context.Context, user *domain.User) (*domain.UserView, error) {
	views, err := r.Users(ctx, []*domain.User{user})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (r *Resolver) Users(ctx context.Context, users []*domain.User) ([]*domain.UserView, error) {
	l := r.newLookup()
	views := make([]*domain.UserView, 0, len(users))
	for _, user := range users {
		team, err := l.team(ctx, user.TeamID)
		if err != nil {
			return nil, err
		}
		views = append(views, &domain.UserView{User: user, TeamName: teamName(team)})
	}
	return views, nil
}

func (r *Resolver) Activity(ctx context.Context, activity *domain.Activity) (*domain.ActivityView, error) {
	views, err := r.Activities(ctx, []*domain.Activity{activity})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (r *Resolver) Activities(ctx context.Context, activities []*domain.Activity) ([]*domain.ActivityView, error) {
	l := r.newLookup()
	views := make([]*domain.ActivityView, 0, len(activities))
	for _, activity := range activities {
		user, err := l.user(ctx, activity.UserID)
		if err != nil {
			return nil, err
		}
		views = append(views, &domain.ActivityView{Activity: activity, UserName: userName(user)})
	}
	return views, nil
}

func (r *Resolver) LeaderboardEntry(ctx context.Context, entry *domain.LeaderboardEntry) (*domain.LeaderboardView, error) {
	views, err := r.Leaderboard(ctx, []*domain.LeaderboardEntry{entry})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// Leaderboard разрешает цепочку entry -> user -> team
func (r *Resolver) Leaderboard(ctx context.Context, entries []*domain.LeaderboardEntry) ([]*domain.LeaderboardView, error) {
	l := r.newLookup()
	views := make([]*domain.LeaderboardView, 0, len(entries))
	for _, entry := range entries {
		user, err := l.user(ctx, entry.UserID)
		if err != nil {
			return nil, err
		}

		view := &domain.LeaderboardView{Entry: entry, UserName: userName(user)}
		if user != nil {
			team, err := l.team(ctx, user.TeamID)
			if err != nil {
				return nil, err
			}
			view.TeamName = teamName(team)
		}
		views = append(views, view)
	}
	return views, nil
}
