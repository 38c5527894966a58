package assessment

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/yungbote/asmtgen/internal/domain"
)

// Rates are the four independent probability gates of the outcome
// versioning state machine, each in [0, 1].
type Rates struct {
	Skip   float64
	Retake float64
	Delete float64
	Update float64
}

// OutcomeMap is the append-only revision log: assessment guid to the
// chronologically ordered outcome records of one student population slice.
// Single writer; merge maps across workers after generation.
type OutcomeMap map[string][]*domain.AssessmentOutcome

// Merge appends every entry of other into m, preserving order.
func (m OutcomeMap) Merge(other OutcomeMap) {
	for guid, outcomes := range other {
		m[guid] = append(m[guid], outcomes...)
	}
}

// GenerateOutcome composes one complete outcome record dated at date:
// a fresh capability draw, overall and claim scores, accommodation
// counters, and (when genItem is set) one simulated response per item in
// the assessment's bank. Result status starts as complete.
func (e *Engine) GenerateOutcome(rng *rand.Rand, date time.Time, student *domain.Student, hier *domain.InstitutionHierarchy, asmt *domain.Assessment, genItem bool) (*domain.AssessmentOutcome, error) {
	capability := DrawCapability(rng)

	out := &domain.AssessmentOutcome{
		RecID:      e.idg.NextRecID(),
		Guid:       e.idg.NewGUID(),
		Assessment: asmt,
		Student:    student,
		Hierarchy:  hier,

		ResultStatus: domain.StatusComplete,
		DateTaken:    date,
		StartDate:    date,
		StatusDate:   date,
		SubmitDate:   date,

		Server:       "ip-10-113-148-45",
		Database:     "session",
		ClientName:   "STATE",
		Status:       "scored",
		Completeness: "Complete",
	}

	composeScores(rng, asmt, capability, out)

	acc, err := generateAccommodations(rng, asmt.Subject)
	if err != nil {
		return nil, fmt.Errorf("accommodations for %s: %w", asmt.Guid, err)
	}
	out.Accommodations = acc

	if genItem {
		for _, item := range asmt.ItemBank {
			data := &domain.AssessmentOutcomeItemData{
				Key:          e.idg.NextRecID(),
				Item:         item,
				SegmentID:    item.SegmentID,
				Position:     item.Position,
				Format:       item.Type,
				ResponseDate: date,
				AdminDate:    date,
			}
			GenerateResponse(rng, data, item, capability)
			out.ItemData = append(out.ItemData, data)
		}
	}

	return out, nil
}

// AppendOutcomeHistory runs the versioning state machine for one (student,
// assessment, date) triple and appends the resulting records under the
// assessment's guid. The four outer branches:
//
//	skip           -> no records
//	plain complete -> [C @ date]
//	retake         -> [I @ date, C @ date+7d], retake wins over delete/update
//	delete/update  -> delete and update compose: [D], [D, C] or [D, D]
//
// Records are appended only after the whole history composed cleanly, so a
// failed call leaves the map untouched.
func (e *Engine) AppendOutcomeHistory(rng *rand.Rand, date time.Time, student *domain.Student, hier *domain.InstitutionHierarchy, asmt *domain.Assessment, results OutcomeMap, rates Rates, genItem bool) error {
	if rng.Float64() < rates.Skip {
		return nil
	}

	first, err := e.GenerateOutcome(rng, date, student, hier, asmt, genItem)
	if err != nil {
		return err
	}
	history := []*domain.AssessmentOutcome{first}

	if rng.Float64() < rates.Retake {
		first.ResultStatus = domain.StatusInProgress
		retake, err := e.GenerateOutcome(rng, date.AddDate(0, 0, 7), student, hier, asmt, genItem)
		if err != nil {
			return err
		}
		history = append(history, retake)
	} else {
		if rng.Float64() < rates.Update {
			first.ResultStatus = domain.StatusDeleted
			update, err := e.GenerateOutcome(rng, date, student, hier, asmt, genItem)
			if err != nil {
				return err
			}
			history = append(history, update)
		}
		// The delete gate supersedes whichever record is currently
		// active, so after an update it lands on the replacement.
		if rng.Float64() < rates.Delete {
			history[len(history)-1].ResultStatus = domain.StatusDeleted
		}
	}

	results[asmt.Guid] = append(results[asmt.Guid], history...)
	return nil
}

// GenerateStudentOutcomes runs the state machine once for the summative
// assessment and once per interim assessment, accumulating everything in
// the same map. A definition the engine cannot handle aborts only that
// assessment; the rest of the student's outcomes still generate.
func (e *Engine) GenerateStudentOutcomes(rng *rand.Rand, date time.Time, student *domain.Student, hier *domain.InstitutionHierarchy, summative *domain.Assessment, interims []*domain.Assessment, results OutcomeMap, rates Rates, genItem bool) error {
	if err := e.AppendOutcomeHistory(rng, date, student, hier, summative, results, rates, genItem); err != nil {
		return err
	}
	for _, interim := range interims {
		if err := e.AppendOutcomeHistory(rng, date, student, hier, interim, results, rates, genItem); err != nil {
			return err
		}
	}
	return nil
}
