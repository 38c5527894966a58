package domain

import "time"

// Assessment types as they appear in definitions and reporting output.
const (
	TypeSummative            = "SUMMATIVE"
	TypeInterimComprehensive = "INTERIM COMPREHENSIVE"
	TypeInterimBlock         = "INTERIM ASSESSMENT BLOCK"
)

// Subjects with claim/scoring tables.
const (
	SubjectMath = "Math"
	SubjectELA  = "ELA"
)

// Scorable is a scored dimension: the overall scale or one claim. Cut points
// are strictly increasing and bounded by [ScoreMin, ScoreMax].
type Scorable struct {
	Code      string
	Name      string
	ScoreMin  int
	ScoreMax  int
	CutPoints []int
	Weight    float64
}

// InRange reports whether score lies within the scorable's bounds.
func (s *Scorable) InRange(score int) bool {
	return score >= s.ScoreMin && score <= s.ScoreMax
}

// PerfLevel maps a score to a 1-based performance level using the cut
// points: level n means the score cleared n-1 cut points.
func (s *Scorable) PerfLevel(score int) int {
	lvl := 1
	for _, cut := range s.CutPoints {
		if score >= cut {
			lvl++
		}
	}
	return lvl
}

type AssessmentSegment struct {
	ID               string
	Position         int
	Algorithm        string
	AlgorithmVersion string
}

// AssessmentItem is an immutable item-bank entry. Read-only to the outcome
// engine.
type AssessmentItem struct {
	BankKey      string
	ItemKey      string
	Type         string
	Position     int
	SegmentID    string
	MaxScore     int
	DOK          int
	Difficulty   float64
	Operational  string
	AnswerKey    string
	OptionsCount int
	Target       string
}

// Assessment is one administered test definition: scoring scale, claims and
// an optional item bank. Supplied to the engine read-only.
type Assessment struct {
	RecID   int64
	Guid    string
	ID      string
	Name    string
	BankKey string
	Type    string
	Subject string
	Grade   int
	Year    int
	Version string

	Contract string
	Mode     string

	EffectiveDate time.Time
	FromDate      time.Time
	ToDate        time.Time

	Overall Scorable

	// Claims holds up to four entries. A nil entry is a placeholder for a
	// subject with fewer than four claims (Math carries 3 + one nil).
	Claims []*Scorable

	PerfLevelNames      []string
	ClaimPerfLevelNames []string

	Segment        *AssessmentSegment
	ItemBank       []*AssessmentItem
	ItemTotalScore int
}

// IsIAB reports whether this is an interim assessment block.
func (a *Assessment) IsIAB() bool {
	return a.Type == TypeInterimBlock
}

// ClaimCount returns the number of non-placeholder claims.
func (a *Assessment) ClaimCount() int {
	n := 0
	for _, c := range a.Claims {
		if c != nil {
			n++
		}
	}
	return n
}
