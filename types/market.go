package types

import (
	"time"
)

// MarketUpdate is the once-a-day AI generated market brief for one risk
// profile. Generated at most once per (profile, calendar day) pair; every
// later request the same day is served from the durable cache.
type MarketUpdate struct {
	RiskProfile RiskProfile `json:"riskProfile" db:"risk_profile"`
	UpdateDate  string      `json:"updateDate" db:"update_date"` // YYYY-MM-DD, local day
	Content     string      `json:"content" db:"content"`
	TokensUsed  int         `json:"tokensUsed" db:"tokens_used"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
}
