package assessment

import (
	"fmt"
	"math/rand"

	"github.com/yungbote/asmtgen/internal/domain"
	"github.com/yungbote/asmtgen/internal/pkg/errors"
)

// PickAccommodationCode samples one accommodation-usage counter. Band 0
// means "not applicable" and returns exactly 0; bands 1..4 request a usage
// count, uniform over [4, 26]. Any other band is a contract violation.
func PickAccommodationCode(rng *rand.Rand, band int) (int, error) {
	if band < 0 || band > 4 {
		return 0, fmt.Errorf("accommodation band %d outside {0..4}: %w", band, errors.ErrInvalidArgument)
	}
	if band == 0 {
		return 0, nil
	}
	return 4 + rng.Intn(23), nil
}

// generateAccommodations samples every usage counter of one outcome.
// Subject applicability picks the band: calculator, abacus and
// multiplication table are Math-only; captioning, text-to-speech,
// read-aloud, scribe and speech-to-text are ELA-only; the rest apply to
// both subjects.
func generateAccommodations(rng *rand.Rand, subject string) (domain.Accommodations, error) {
	mathBand := 0
	elaBand := 0
	switch subject {
	case domain.SubjectMath:
		mathBand = 4
	case domain.SubjectELA:
		elaBand = 4
	}

	var acc domain.Accommodations
	var err error
	pick := func(dst *int, band int) {
		if err != nil {
			return
		}
		*dst, err = PickAccommodationCode(rng, band)
	}

	pick(&acc.ASLVideoEmbed, 4)
	pick(&acc.BrailleEmbed, 4)
	pick(&acc.ClosedCaptioningEmbed, elaBand)
	pick(&acc.TextToSpeechEmbed, elaBand)
	pick(&acc.AbacusNonEmbed, mathBand)
	pick(&acc.AlternateResponseNonEmbed, 4)
	pick(&acc.CalculatorNonEmbed, mathBand)
	pick(&acc.MultiplicationTblNonEmbed, mathBand)
	pick(&acc.PrintOnDemandNonEmbed, 4)
	pick(&acc.PrintOnDemandItemsNonEmbed, 4)
	pick(&acc.ReadAloudNonEmbed, elaBand)
	pick(&acc.ScribeNonEmbed, elaBand)
	pick(&acc.SpeechToTextNonEmbed, elaBand)
	pick(&acc.NoiseBufferNonEmbed, 4)
	pick(&acc.StreamlineMode, 4)

	return acc, err
}
