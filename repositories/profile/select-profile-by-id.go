package ProfileRepository

import (
	"time"

	"github.com/google/uuid"

	"github.com/callmev1nc/SmartInvest/types"
	"github.com/callmev1nc/SmartInvest/utils"
)

func (r *Repository) SelectProfileByID(id uuid.UUID) (types.Profile, error) {
	defer utils.TimeTrack(time.Now(), "Profile -> Select Profile By ID")

	var profile types.Profile

	query := `SELECT id, name, risk_profile, quiz_score, language, created_at, updated_at
		FROM profiles WHERE id = $1`

	row := r.db.QueryRow(query, id)
	err := row.Scan(
		&profile.ID,
		&profile.Name,
		&profile.RiskProfile,
		&profile.QuizScore,
		&profile.Language,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return profile, err
	}

	return profile, nil
}
