package ProfileRepository

import (
	"time"

	"github.com/callmev1nc/SmartInvest/types"
	"github.com/callmev1nc/SmartInvest/utils"
)

func (r *Repository) CreateProfile(request types.ProfileCreateRequest) (types.Profile, error) {
	defer utils.TimeTrack(time.Now(), "Profile -> Create Profile")

	var profile types.Profile

	language := request.Language
	if language == "" {
		language = "en"
	}

	query := `INSERT INTO profiles (name, risk_profile, quiz_score, language)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, risk_profile, quiz_score, language, created_at, updated_at`

	row := r.db.QueryRow(query, request.Name, request.RiskProfile, request.QuizScore, language)
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
