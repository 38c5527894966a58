package assessment

import (
	"math"
	"math/rand"

	"github.com/yungbote/asmtgen/internal/domain"
)

// DrawCapability samples the latent ability scalar for one outcome. The
// draw is bell-shaped around 0 with nearly all mass in [-4, 4]; the same
// value drives every item response and score of that outcome.
func DrawCapability(rng *rand.Rand) float64 {
	return clampFloat(rng.NormFloat64()*4.0/3.0, -4.0, 4.0)
}

// correctProbability is the chance of a fully-correct response: a logistic
// curve in (capability - difficulty), strictly inside (0, 1).
func correctProbability(capability, difficulty float64) float64 {
	return 1.0 / (1.0 + math.Exp(-(capability - difficulty)))
}

// scaleScore maps capability from [-4, 4] linearly onto the scorable's
// range, with a small noise term, clamped to the range.
func scaleScore(rng *rand.Rand, s *domain.Scorable, capability float64) int {
	span := s.ScoreMax - s.ScoreMin
	frac := (capability + 4.0) / 8.0
	noise := (rng.Float64() - 0.5) * 0.04 * float64(span)
	score := s.ScoreMin + int(math.Round(frac*float64(span)+noise))
	return clampInt(score, s.ScoreMin, s.ScoreMax)
}

// scoreBand builds the simulated confidence band around a point score,
// bounded by the scorable's range.
func scoreBand(s *domain.Scorable, score int) (int, int) {
	delta := (s.ScoreMax - s.ScoreMin) * 5 / 100
	return clampInt(score-delta, s.ScoreMin, s.ScoreMax),
		clampInt(score+delta, s.ScoreMin, s.ScoreMax)
}

// claimPerfLevel maps a claim score to Below/At-Near/Above Standard using
// the overall scale's outer cut points.
func claimPerfLevel(overall *domain.Scorable, score int) int {
	switch {
	case score < overall.CutPoints[0]:
		return 1
	case score >= overall.CutPoints[2]:
		return 3
	default:
		return 2
	}
}

// composeScores fills the overall and per-claim scores of one outcome from
// the assessment's scoring definition and the capability draw. Every score
// and band bound lands inside [ScoreMin, ScoreMax].
func composeScores(rng *rand.Rand, asmt *domain.Assessment, capability float64, out *domain.AssessmentOutcome) {
	overall := &asmt.Overall
	out.OverallScore = scaleScore(rng, overall, capability)
	out.OverallRangeMin, out.OverallRangeMax = scoreBand(overall, out.OverallScore)
	out.OverallPerfLvl = overall.PerfLevel(out.OverallScore)

	span := overall.ScoreMax - overall.ScoreMin
	for _, claim := range asmt.Claims {
		if claim == nil {
			out.ClaimScores = append(out.ClaimScores, nil)
			continue
		}
		jitter := int(math.Round((rng.Float64() - 0.5) * 0.16 * float64(span)))
		score := clampInt(out.OverallScore+jitter, claim.ScoreMin, claim.ScoreMax)
		lo, hi := scoreBand(claim, score)
		out.ClaimScores = append(out.ClaimScores, &domain.ClaimScore{
			Name:      claim.Name,
			Score:     score,
			RangeMin:  lo,
			RangeMax:  hi,
			PerfLevel: claimPerfLevel(overall, score),
		})
	}
}
