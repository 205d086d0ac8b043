package MarketRepository

import (
	"time"

	"github.com/callmev1nc/SmartInvest/types"
	"github.com/callmev1nc/SmartInvest/utils"
)

// UpsertDailyUpdate stores a freshly generated update. Two racing generations
// for the same profile/day resolve to last-writer-wins; both payloads are
// equally valid for the day.
func (r *Repository) UpsertDailyUpdate(update types.MarketUpdate) error {
	defer utils.TimeTrack(time.Now(), "Market -> Upsert Daily Update")

	query := `INSERT INTO market_updates (risk_profile, update_date, content, tokens_used)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (risk_profile, update_date)
		DO UPDATE SET content = EXCLUDED.content, tokens_used = EXCLUDED.tokens_used`

	_, err := r.db.Exec(query, update.RiskProfile, update.UpdateDate, update.Content, update.TokensUsed)
	return err
}
