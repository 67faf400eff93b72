package service

import "github.com/bagdasarian/octofit-tracker/internal/domain"

type seedUser struct {
	team int
	user domain.User
}

func seedTeams() []*domain.Team {
	return []*domain.Team{
		{Name: "Team Marvel", Description: "Earth's Mightiest Heroes"},
		{Name: "Team DC", Description: "Justice League United"},
	}
}

// seedUsers возвращает пользователей в порядке вставки. team - индекс в seedTeams()
func seedUsers() []seedUser {
	return []seedUser{
		{0, domain.User{Name: "Tony Stark", Email: "ironman@avengers.com", Avatar: "🦾", FitnessLevel: domain.LevelAdvanced}},
		{0, domain.User{Name: "Steve Rogers", Email: "captain@avengers.com", Avatar: "🛡️", FitnessLevel: domain.LevelAdvanced}},
		{0, domain.User{Name: "Natasha Romanoff", Email: "blackwidow@avengers.com", Avatar: "🕷️", FitnessLevel: domain.LevelAdvanced}},
		{0, domain.User{Name: "Bruce Banner", Email: "hulk@avengers.com", Avatar: "💚", FitnessLevel: domain.LevelAdvanced}},
		{0, domain.User{Name: "Thor Odinson", Email: "thor@asgard.com", Avatar: "⚡", FitnessLevel: domain.LevelGodTier}},
		{1, domain.User{Name: "Clark Kent", Email: "superman@justiceleague.com", Avatar: "🦸", FitnessLevel: domain.LevelGodTier}},
		{1, domain.User{Name: "Bruce Wayne", Email: "batman@gotham.com", Avatar: "🦇", FitnessLevel: domain.LevelAdvanced}},
		{1, domain.User{Name: "Diana Prince", Email: "wonderwoman@themyscira.com", Avatar: "⭐", FitnessLevel: domain.LevelGodTier}},
		{1, domain.User{Name: "Barry Allen", Email: "flash@speedforce.com", Avatar: "⚡", FitnessLevel: domain.LevelAdvanced}},
		{1, domain.User{Name: "Arthur Curry", Email: "aquaman@atlantis.com", Avatar: "🔱", FitnessLevel: domain.LevelAdvanced}},
	}
}

func ptrInt(v int) *int {
	return &v
}

func ptrText(v string) *string {
	return &v
}

func seedWorkouts() []*domain.Workout {
	return []*domain.Workout{
		{
			Name:        "Super Soldier Circuit",
			Description: "Captain America's legendary training routine",
			Difficulty:  domain.LevelAdvanced,
			Exercises: []domain.Exercise{
				{Name: "Push-ups", Reps: ptrInt(50), Sets: ptrInt(4)},
				{Name: "Pull-ups", Reps: ptrInt(20), Sets: ptrInt(4)},
				{Name: "Squats", Reps: ptrInt(50), Sets: ptrInt(4)},
				{Name: "Burpees", Reps: ptrInt(30), Sets: ptrInt(3)},
			},
		},
		{
			Name:        "Speedster Sprint Training",
			Description: "Barry Allen's speed-building workout",
			Difficulty:  domain.LevelIntermediate,
			Exercises: []domain.Exercise{
				{Name: "Sprint Intervals", Duration: ptrText("30 sec"), Sets: ptrInt(10)},
				{Name: "High Knees", Duration: ptrText("1 min"), Sets: ptrInt(5)},
				{Name: "Mountain Climbers", Reps: ptrInt(40), Sets: ptrInt(4)},
			},
		},
		{
			Name:        "Amazonian Warrior Training",
			Description: "Wonder Woman's combat conditioning",
			Difficulty:  domain.LevelAdvanced,
			Exercises: []domain.Exercise{
				{Name: "Sword Swings (weighted)", Reps: ptrInt(30), Sets: ptrInt(5)},
				{Name: "Shield Holds", Duration: ptrText("2 min"), Sets: ptrInt(3)},
				{Name: "Battle Rope", Duration: ptrText("1 min"), Sets: ptrInt(5)},
				{Name: "Box Jumps", Reps: ptrInt(25), Sets: ptrInt(4)},
			},
		},
		{
			Name:        "Atlantean Swim Power",
			Description: "Aquaman's underwater endurance training",
			Difficulty:  domain.LevelIntermediate,
			Exercises: []domain.Exercise{
				{Name: "Freestyle Swimming", Distance: ptrText("1000m"), Sets: ptrInt(3)},
				{Name: "Underwater Breath Hold", Duration: ptrText("2 min"), Sets: ptrInt(5)},
				{Name: "Treading Water", Duration: ptrText("5 min"), Sets: ptrInt(3)},
			},
		},
		{
			Name:        "Zen Master Flow",
			Description: "Black Widow's flexibility and balance routine",
			Difficulty:  domain.LevelBeginner,
			Exercises: []domain.Exercise{
				{Name: "Sun Salutations", Reps: ptrInt(10), Sets: ptrInt(3)},
				{Name: "Warrior Poses", Duration: ptrText("1 min each"), Sets: ptrInt(3)},
				{Name: "Tree Pose", Duration: ptrText("1 min"), Sets: ptrInt(3)},
				{Name: "Cobra Stretch", Duration: ptrText("30 sec"), Sets: ptrInt(4)},
			},
		},
		{
			Name:        "Dark Knight Conditioning",
			Description: "Batman's stealth and agility training",
			Difficulty:  domain.LevelAdvanced,
			Exercises: []domain.Exercise{
				{Name: "Parkour Drills", Duration: ptrText("10 min"), Sets: ptrInt(1)},
				{Name: "Rope Climbing", Reps: ptrInt(10), Sets: ptrInt(3)},
				{Name: "Handstand Push-ups", Reps: ptrInt(15), Sets: ptrInt(3)},
				{Name: "Ninja Rolls", Reps: ptrInt(20), Sets: ptrInt(4)},
			},
		},
		{
			Name:        "Arc Reactor Cardio",
			Description: "Iron Man's heart-healthy workout",
			Difficulty:  domain.LevelIntermediate,
			Exercises: []domain.Exercise{
				{Name: "Cycling", Duration: ptrText("20 min"), Sets: ptrInt(1)},
				{Name: "Jumping Jacks", Reps: ptrInt(50), Sets: ptrInt(3)},
				{Name: "Step-ups", Reps: ptrInt(30), Sets: ptrInt(4)},
			},
		},
	}
}
