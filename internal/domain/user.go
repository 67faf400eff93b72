package domain

import (
	"net/mail"
	"time"
)

type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"
	LevelGodTier      FitnessLevel = "god-tier"
)

// Difficulty использует ту же шкалу, что и уровень подготовки пользователя
type Difficulty = FitnessLevel

func (l FitnessLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelGodTier:
		return true
	}
	return false
}

type User struct {
	ID           string
	Name         string
	Email        string
	TeamID       *string
	Avatar       string
	FitnessLevel FitnessLevel
	CreatedAt    time.Time
}

// UserPatch - частичное обновление. TeamID, указывающий на пустую строку, отвязывает пользователя от команды
type UserPatch struct {
	Name         *string
	Email        *string
	TeamID       *string
	Avatar       *string
	FitnessLevel *FitnessLevel
}

type UserFilter struct {
	TeamID       string
	FitnessLevel FitnessLevel
}

func (u *User) Validate() error {
	if u.Name == "" {
		return NewValidationError("user name is required")
	}
	if u.Email == "" {
		return NewValidationError("user email is required")
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return NewValidationError("invalid email %q", u.Email)
	}
	if u.FitnessLevel == "" {
		u.FitnessLevel = LevelBeginner
	}
	if !u.FitnessLevel.Valid() {
		return NewValidationError("invalid fitness_level %q", u.FitnessLevel)
	}
	if u.TeamID != nil && *u.TeamID == "" {
		u.TeamID = nil
	}
	return nil
}

func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.TeamID != nil {
		if *p.TeamID == "" {
			u.TeamID = nil
		} else {
			id := *p.TeamID
			u.TeamID = &id
		}
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.FitnessLevel != nil {
		u.FitnessLevel = *p.FitnessLevel
	}
}

func (u *User) String() string {
	return u.Name
}
