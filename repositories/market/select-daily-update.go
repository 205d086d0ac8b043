package MarketRepository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/callmev1nc/SmartInvest/types"
	"github.com/callmev1nc/SmartInvest/utils"
)

// SelectDailyUpdate returns the stored update for the profile/day pair. A
// missing row is a cache miss, not an error. Rows for other days never match,
// which is the whole expiry mechanism: yesterday's row simply stops being
// asked for.
func (r *Repository) SelectDailyUpdate(riskProfile types.RiskProfile, updateDate string) (types.MarketUpdate, bool, error) {
	defer utils.TimeTrack(time.Now(), "Market -> Select Daily Update")

	var update types.MarketUpdate

	query := `SELECT risk_profile, update_date, content, tokens_used, created_at
		FROM market_updates WHERE risk_profile = $1 AND update_date = $2`

	row := r.db.QueryRow(query, riskProfile, updateDate)
	err := row.Scan(
		&update.RiskProfile,
		&update.UpdateDate,
		&update.Content,
		&update.TokensUsed,
		&update.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return update, false, nil
	}
	if err != nil {
		return update, false, err
	}

	return update, true, nil
}
