package domain

// ExperiencePerLevel is the accumulated experience needed per level.
const ExperiencePerLevel = 1000

// ZoneProgress tracks a user's advancement inside one zone.
// Absence of a row is a valid zero-state: zero tasks, level 1.
type ZoneProgress struct {
	UserID         string `json:"user_id"`
	ZoneID         string `json:"zone_id"`
	TasksCompleted int    `json:"tasks_completed"`
	Experience     int    `json:"experience"`
	Level          int    `json:"level"`
}

// ZeroProgress returns the default progress for a user with no row.
func ZeroProgress(userID, zoneID string) *ZoneProgress {
	return &ZoneProgress{UserID: userID, ZoneID: zoneID, Level: 1}
}

// LevelForExperience derives the display level from total experience.
func LevelForExperience(exp int) int {
	if exp < 0 {
		exp = 0
	}
	return exp/ExperiencePerLevel + 1
}

// ProgressPercent is the 0-100 progress toward the next level.
func (p *ZoneProgress) ProgressPercent() int {
	return (p.Experience % ExperiencePerLevel) / 10
}
