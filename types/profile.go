package types

import (
	"time"

	"github.com/google/uuid"
)

type RiskProfile string

const (
	RiskProfileConservative RiskProfile = "conservative"
	RiskProfileModerate     RiskProfile = "moderate"
	RiskProfileAggressive   RiskProfile = "aggressive"
)

// Valid reports whether the risk profile is one of the known values.
func (r RiskProfile) Valid() bool {
	switch r {
	case RiskProfileConservative, RiskProfileModerate, RiskProfileAggressive:
		return true
	}
	return false
}

// Profile is a registered app user: a display name plus the risk profile the
// client-side quiz produced.
type Profile struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	Name        string      `json:"name" db:"name"`
	RiskProfile RiskProfile `json:"riskProfile" db:"risk_profile"`
	QuizScore   int         `json:"quizScore" db:"quiz_score"`
	Language    string      `json:"language" db:"language"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time   `json:"updatedAt" db:"updated_at"`
}

type ProfileCreateRequest struct {
	Name        string      `json:"name" binding:"required,min=1,max=64"`
	RiskProfile RiskProfile `json:"riskProfile" binding:"required"`
	QuizScore   int         `json:"quizScore"`
	Language    string      `json:"language"`
}
