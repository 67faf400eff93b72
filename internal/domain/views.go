package domain

// Представления для чтения: отображаемые поля вычисляются при каждом чтении и не сохраняются

type UserView struct {
	User     *User
	TeamName *string
}

type ActivityView struct {
	Activity *Activity
	UserName *string
}

type LeaderboardView struct {
	Entry    *LeaderboardEntry
	UserName *string
	TeamName *string
}
