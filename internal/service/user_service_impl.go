package service

import (
	"context"
	"errors"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
	"github.com/bagdasarian/octofit-tracker/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
	teamRepo repository.TeamRepository
	resolver *Resolver
}

func NewUserService(userRepo repository.UserRepository, teamRepo repository.TeamRepository, resolver *Resolver) UserService {
	return &userService{
		userRepo: userRepo,
		teamRepo: teamRepo,
		resolver: resolver,
	}
}

func (s *userService) CreateUser(ctx context.Context, user *domain.User) (*domain.UserView, error) {
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkTeam(ctx, user.TeamID); err != nil {
		return nil, err
	}

	user.ID = ""
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, s.writeError(err, user)
	}

	return s.resolver.User(ctx, user)
}

func (s *userService) GetUser(ctx context.Context, id string) (*domain.UserView, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateError(err, "user with id "+id)
	}
	return s.resolver.User(ctx, user)
}

func (s *userService) ListUsers(ctx context.Context, filter domain.UserFilter) ([]*domain.UserView, error) {
	if filter.FitnessLevel != "" && !filter.FitnessLevel.Valid() {
		return nil, domain.NewValidationError("invalid fitness_level %q", filter.FitnessLevel)
	}

	users, err := s.userRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.resolver.Users(ctx, users)
}

func (s *userService) UpdateUser(ctx context.Context, id string, patch domain.UserPatch) (*domain.UserView, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateError(err, "user with id "+id)
	}

	patch.Apply(user)
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if patch.TeamID != nil {
		if err := s.checkTeam(ctx, user.TeamID); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("user with id " + id)
		}
		return nil, s.writeError(err, user)
	}

	return s.resolver.User(ctx, user)
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	return translateError(s.userRepo.Delete(ctx, id), "user with id "+id)
}

// checkTeam проверяет, что команда, на которую ссылается пользователь, существует
func (s *userService) checkTeam(ctx context.Context, teamID *string) error {
	if teamID == nil {
		return nil
	}
	_, err := s.teamRepo.GetByID(ctx, *teamID)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.NewValidationError("team %s does not exist", *teamID)
	}
	return err
}

func (s *userService) writeError(err error, user *domain.User) error {
	if errors.Is(err, repository.ErrDuplicateKey) {
		return domain.NewDuplicateKeyError("user with email %s already exists", user.Email)
	}
	if errors.Is(err, repository.ErrForeignKey) {
		return domain.NewValidationError("team of user %s does not exist", user.Email)
	}
	return err
}
