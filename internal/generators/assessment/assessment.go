package assessment

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/yungbote/asmtgen/internal/domain"
	"github.com/yungbote/asmtgen/internal/pkg/errors"
	"github.com/yungbote/asmtgen/internal/platform/idgen"
	"github.com/yungbote/asmtgen/internal/platform/logger"
)

// openEndedDate is the sentinel "no expiry" validity date.
var openEndedDate = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

// Engine generates assessment definitions and outcome histories. It owns no
// mutable state beyond the shared ID generator, so one Engine may serve many
// concurrent workers as long as each call gets its own rng.
type Engine struct {
	idg      *idgen.IDGen
	log      *logger.Logger
	bankSize int
}

// NewEngine builds an engine. bankSize <= 0 selects DefaultItemBankSize.
func NewEngine(idg *idgen.IDGen, log *logger.Logger, bankSize int) *Engine {
	if bankSize <= 0 {
		bankSize = DefaultItemBankSize
	}
	return &Engine{
		idg:      idg,
		log:      log.With("service", "AssessmentEngine"),
		bankSize: bankSize,
	}
}

func typeCode(typ string) (string, error) {
	switch typ {
	case domain.TypeSummative:
		return "SUM", nil
	case domain.TypeInterimComprehensive:
		return "ICA", nil
	case domain.TypeInterimBlock:
		return "IAB", nil
	}
	return "", fmt.Errorf("assessment type %q: %w", typ, errors.ErrUnsupportedAssessmentType)
}

// GenerateAssessment builds one assessment definition for the given type,
// academic year, subject and grade. With genItem set, the definition carries
// a segment and a populated item bank.
func (e *Engine) GenerateAssessment(rng *rand.Rand, typ string, year int, subject string, grade int, genItem bool) (*domain.Assessment, error) {
	code, err := typeCode(typ)
	if err != nil {
		return nil, err
	}
	scales, ok := overallScales[subject]
	if !ok {
		return nil, fmt.Errorf("subject %q: %w", subject, errors.ErrUnknownSubject)
	}
	scale, ok := scales[grade]
	if !ok {
		return nil, fmt.Errorf("subject %q grade %d: %w", subject, grade, errors.ErrUnknownSubject)
	}

	asmt := &domain.Assessment{
		RecID:   e.idg.NextRecID(),
		Guid:    e.idg.NewGUID(),
		ID:      fmt.Sprintf("(TS)%s-%s-%d-%d", code, subject, grade, year),
		Name:    fmt.Sprintf("%s %s Grade %d %d-%d", code, subject, grade, year-1, year),
		BankKey: "200",
		Type:    typ,
		Subject: subject,
		Grade:   grade,
		Year:    year,
		Version: "V1",

		Contract: "STATE",
		Mode:     "online",

		// Validity runs from August 15 preceding the academic year, for
		// every assessment type.
		EffectiveDate: time.Date(year-1, time.August, 15, 0, 0, 0, 0, time.UTC),
		FromDate:      time.Date(year-1, time.August, 15, 0, 0, 0, 0, time.UTC),
		ToDate:        openEndedDate,

		Overall: domain.Scorable{
			Code:      "Overall",
			Name:      "Overall",
			ScoreMin:  scale.min,
			ScoreMax:  scale.max,
			CutPoints: scale.cuts[:],
		},
		PerfLevelNames:      perfLevelNames,
		ClaimPerfLevelNames: claimPerfLevelNames,
	}

	// IABs report no claim structure regardless of subject.
	if !asmt.IsIAB() {
		names := claimNames[subject]
		for i, name := range names {
			if name == "" {
				asmt.Claims = append(asmt.Claims, nil)
				continue
			}
			asmt.Claims = append(asmt.Claims, &domain.Scorable{
				Code:     fmt.Sprintf("Claim%d", i+1),
				Name:     name,
				ScoreMin: scale.min,
				ScoreMax: scale.max,
			})
		}
	}

	if genItem {
		e.generateItemBank(rng, asmt)
	}
	return asmt, nil
}

func (e *Engine) generateItemBank(rng *rand.Rand, asmt *domain.Assessment) {
	asmt.Segment = &domain.AssessmentSegment{
		ID:               fmt.Sprintf("(TS)%s-S1-%s-%d-%d", asmt.BankKey, asmt.Subject, asmt.Grade, asmt.Year),
		Position:         1,
		Algorithm:        "adaptive",
		AlgorithmVersion: "2",
	}

	total := 0
	for _, t := range itemTypes {
		total += t.weight
	}

	for pos := 1; pos <= e.bankSize; pos++ {
		def := itemTypes[0]
		r := rng.Intn(total)
		for _, t := range itemTypes {
			if r < t.weight {
				def = t
				break
			}
			r -= t.weight
		}

		item := &domain.AssessmentItem{
			BankKey:      asmt.BankKey,
			ItemKey:      fmt.Sprintf("%d", e.idg.NextRecID()),
			Type:         def.format,
			Position:     pos,
			SegmentID:    asmt.Segment.ID,
			MaxScore:     def.maxScore,
			DOK:          1 + rng.Intn(4),
			Difficulty:   clampFloat(rng.NormFloat64()*1.5, -3.0, 3.5),
			Operational:  "1",
			OptionsCount: def.optionsCount,
			Target:       fmt.Sprintf("%d|%d", 1+rng.Intn(4), pos),
		}
		if rng.Float64() < 0.1 {
			item.Operational = "0"
		}
		switch def.format {
		case "MC":
			item.AnswerKey = string(optionLetters[rng.Intn(def.optionsCount)])
		case "MS":
			item.AnswerKey = multiSelectKey(rng, def.optionsCount)
		}
		asmt.ItemBank = append(asmt.ItemBank, item)
		asmt.ItemTotalScore += item.MaxScore
	}
}

// multiSelectKey picks 2 or 3 distinct option letters in order, joined by
// commas ("B,F").
func multiSelectKey(rng *rand.Rand, optionsCount int) string {
	want := 2 + rng.Intn(2)
	key := ""
	for i := 0; i < optionsCount && want > 0; i++ {
		remaining := optionsCount - i
		if rng.Intn(remaining) < want {
			if key != "" {
				key += ","
			}
			key += string(optionLetters[i])
			want--
		}
	}
	return key
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
