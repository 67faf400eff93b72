package domain

import (
	"strings"
	"time"
)

type Team struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}

type TeamPatch struct {
	Name        *string
	Description *string
}

func (t *Team) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return NewValidationError("team name is required")
	}
	return nil
}

func (p TeamPatch) Apply(t *Team) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
}

func (t *Team) String() string {
	return t.Name
}
