package model

// Level is a game difficulty, fixing the attempt budget
type Level string

const (
	LevelEasy   Level = "Easy"
	LevelMedium Level = "Medium"
	LevelHard   Level = "Hard"
)

// Secret number bounds (inclusive)
const (
	SecretMin = 1
	SecretMax = 100
)

// AttemptBudget returns the number of guesses allowed at this level
func (l Level) AttemptBudget() int {
	switch l {
	case LevelEasy:
		return 10
	case LevelMedium:
		return 5
	case LevelHard:
		return 3
	default:
		return 0
	}
}

// Valid returns true if l is one of the three known levels
func (l Level) Valid() bool {
	return l == LevelEasy || l == LevelMedium || l == LevelHard
}

// Levels returns all levels in display order
func Levels() []Level {
	return []Level{LevelEasy, LevelMedium, LevelHard}
}
