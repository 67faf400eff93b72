package domain

// Exercise - элемент программы тренировки. Необязательные атрибуты могут отсутствовать
type Exercise struct {
	Name     string  `json:"name"`
	Reps     *int    `json:"reps,omitempty"`
	Sets     *int    `json:"sets,omitempty"`
	Duration *string `json:"duration,omitempty"`
	Distance *string `json:"distance,omitempty"`
}

func (e Exercise) Validate() error {
	if e.Name == "" {
		return NewValidationError("exercise name is required")
	}
	if e.Reps == nil && e.Sets == nil && e.Duration == nil && e.Distance == nil {
		return NewValidationError("exercise %q needs at least one of reps, sets, duration, distance", e.Name)
	}
	if e.Reps != nil && *e.Reps < 0 {
		return NewValidationError("exercise %q: reps must be non-negative", e.Name)
	}
	if e.Sets != nil && *e.Sets < 0 {
		return NewValidationError("exercise %q: sets must be non-negative", e.Name)
	}
	return nil
}

type Workout struct {
	ID          string
	Name        string
	Description string
	Exercises   []Exercise
	Difficulty  Difficulty
}

type WorkoutPatch struct {
	Name        *string
	Description *string
	Exercises   *[]Exercise
	Difficulty  *Difficulty
}

type WorkoutFilter struct {
	Difficulty Difficulty
}

func (w *Workout) Validate() error {
	if w.Name == "" {
		return NewValidationError("workout name is required")
	}
	if w.Difficulty == "" {
		w.Difficulty = LevelBeginner
	}
	if !w.Difficulty.Valid() {
		return NewValidationError("invalid difficulty %q", w.Difficulty)
	}
	if w.Exercises == nil {
		w.Exercises = []Exercise{}
	}
	for _, e := range w.Exercises {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (p WorkoutPatch) Apply(w *Workout) {
	if p.Name != nil {
		w.Name = *p.Name
	}
	if p.Description != nil {
		w.Description = *p.Description
	}
	if p.Exercises != nil {
		w.Exercises = *p.Exercises
	}
	if p.Difficulty != nil {
		w.Difficulty = *p.Difficulty
	}
}

func (w *Workout) String() string {
	return w.Name
}
