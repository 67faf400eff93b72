package domain

type TeamStat struct {
	TeamID        string
	TeamName      string
	MemberCount   int
	ActivityCount int
	TotalMinutes  float64
}

type ActivityTypeStat struct {
	ActivityType ActivityType
	Count        int
	TotalMinutes float64
}
