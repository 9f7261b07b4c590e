package domain

import (
	"errors"
	"time"
)

// GameKind identifies one of the fixed mini-games whose progress is tracked.
type GameKind string

const (
	GameMemoryMatch   GameKind = "memoryMatch"
	GameMathChallenge GameKind = "mathChallenge"
	GameColorMatch    GameKind = "colorMatch"
	GameSpeedClick    GameKind = "speedClick"
)

// AllGameKinds lists every tracked game. Adding a game means adding a
// constant here, a field to GameProgress, and a case to ForKind.
var AllGameKinds = []GameKind{
	GameMemoryMatch,
	GameMathChallenge,
	GameColorMatch,
	GameSpeedClick,
}

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUnknownGame = errors.New("unknown game kind")

// ParseGameKind validates a wire-format game identifier.
func ParseGameKind(s string) (GameKind, error) {
	for _, k := range AllGameKinds {
		if GameKind(s) == k {
			return k, nil
		}
	}
	return "", ErrUnknownGame
}

// Progress is the per-game record for one user.
// Score only ever grows; Played counts completed sessions.
type Progress struct {
	Score  int `json:"score" bson:"score"`
	Played int `json:"played" bson:"played"`
}

// GameProgress holds one Progress record per game kind. All four records are
// always present, zero-initialized at registration, never partially absent.
type GameProgress struct {
	MemoryMatch   Progress `json:"memoryMatch" bson:"memoryMatch"`
	MathChallenge Progress `json:"mathChallenge" bson:"mathChallenge"`
	ColorMatch    Progress `json:"colorMatch" bson:"colorMatch"`
	SpeedClick    Progress `json:"speedClick" bson:"speedClick"`
}

// ForKind returns the record for the given game kind.
func (g GameProgress) ForKind(kind GameKind) Progress {
	switch kind {
	case GameMemoryMatch:
		return g.MemoryMatch
	case GameMathChallenge:
		return g.MathChallenge
	case GameColorMatch:
		return g.ColorMatch
	case GameSpeedClick:
		return g.SpeedClick
	}
	return Progress{}
}

// Questionnaire holds the one-time onboarding answers.
type Questionnaire struct {
	Goal     string   `json:"goal" bson:"goal"`
	Concerns []string `json:"concerns" bson:"concerns"`
	PlayTime string   `json:"playTime" bson:"playTime"`
}

// User is the identity and progress aggregate. One document per registered
// user; the progress store is its exclusive owner.
type User struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	PasswordHash  string         `json:"-"`
	Age           *int           `json:"age,omitempty"`
	Questionnaire *Questionnaire `json:"questionnaire,omitempty"`
	GameProgress  GameProgress   `json:"gameProgress"`
	CreatedAt     time.Time      `json:"created_at"`
}
