package domain

import "time"

// Result status of one outcome record.
const (
	StatusComplete   = "C"
	StatusInProgress = "I"
	StatusDeleted    = "D"
)

// ClaimScore is one claim's simulated score with its confidence band.
// Bounds inherit the overall scale of the assessment.
type ClaimScore struct {
	Name      string
	Score     int
	RangeMin  int
	RangeMax  int
	PerfLevel int
}

// Accommodations holds the usage counters tracked per outcome. A zero value
// means the accommodation does not apply to the outcome's subject; applied
// accommodations carry a count in [4, 26].
type Accommodations struct {
	ASLVideoEmbed              int
	BrailleEmbed               int
	ClosedCaptioningEmbed      int
	TextToSpeechEmbed          int
	AbacusNonEmbed             int
	AlternateResponseNonEmbed  int
	CalculatorNonEmbed         int
	MultiplicationTblNonEmbed  int
	PrintOnDemandNonEmbed      int
	PrintOnDemandItemsNonEmbed int
	ReadAloudNonEmbed          int
	ScribeNonEmbed             int
	SpeechToTextNonEmbed       int
	NoiseBufferNonEmbed        int
	StreamlineMode             int
}

// AssessmentOutcomeItemData is one simulated response to one item within one
// outcome. Created fresh per (outcome, item) pair and never mutated after
// the response simulator fills it in.
type AssessmentOutcomeItemData struct {
	Key       int64
	Item      *AssessmentItem
	SegmentID string
	Position  int
	Format    string

	IsSelected    bool
	Score         int
	ScoreStatus   string
	SubScores     []int
	ResponseValue string

	// PageTime is milliseconds spent on the item's page. Always positive;
	// above 1000 for free-response formats.
	PageTime     int
	NumberVisits int
	PageNumber   int
	PageVisits   int
	Dropped      string

	ResponseDate time.Time
	AdminDate    time.Time
}

// AssessmentOutcome is one data-entry snapshot of a student's attempt.
// Multiple outcomes for the same (student, assessment) pair form an ordered,
// append-only revision history keyed by assessment guid.
type AssessmentOutcome struct {
	RecID int64
	Guid  string

	Assessment *Assessment
	Student    *Student
	Hierarchy  *InstitutionHierarchy

	ResultStatus string
	DateTaken    time.Time
	StartDate    time.Time
	StatusDate   time.Time
	SubmitDate   time.Time

	Server       string
	Database     string
	ClientName   string
	Status       string
	Completeness string

	OverallScore    int
	OverallRangeMin int
	OverallRangeMax int
	OverallPerfLvl  int

	// ClaimScores aligns with Assessment.Claims; a nil entry mirrors a nil
	// claim placeholder.
	ClaimScores []*ClaimScore

	Accommodations Accommodations

	ItemData []*AssessmentOutcomeItemData
}
