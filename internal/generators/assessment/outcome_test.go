package assessment

import (
	"math/rand"
	"testing"
	"time"

	"github.com/yungbote/asmtgen/internal/domain"
)

var testDate = time.Date(2016, time.May, 15, 0, 0, 0, 0, time.UTC)

func statuses(outcomes []*domain.AssessmentOutcome) []string {
	out := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		out = append(out, o.ResultStatus)
	}
	return out
}

func sameStatuses(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func historyFor(t *testing.T, rates Rates) []*domain.AssessmentOutcome {
	t.Helper()
	e := newTestEngine(t, 5)
	rng := rand.New(rand.NewSource(21))
	student, hier := testStudent()
	asmt, err := e.GenerateAssessment(rng, domain.TypeSummative, 2016, domain.SubjectMath, 8, false)
	if err != nil {
		t.Fatalf("generate assessment: %v", err)
	}
	results := OutcomeMap{}
	if err := e.AppendOutcomeHistory(rng, testDate, student, hier, asmt, results, rates, false); err != nil {
		t.Fatalf("append history: %v", err)
	}
	return results[asmt.Guid]
}

func TestAppendOutcomeHistory_Plain(t *testing.T) {
	history := historyFor(t, Rates{})
	if !sameStatuses(statuses(history), []string{"C"}) {
		t.Fatalf("expected [C], got %v", statuses(history))
	}
	if !history[0].DateTaken.Equal(testDate) {
		t.Fatalf("date taken %v", history[0].DateTaken)
	}
}

func TestAppendOutcomeHistory_Skip(t *testing.T) {
	history := historyFor(t, Rates{Skip: 1})
	if len(history) != 0 {
		t.Fatalf("expected no records, got %d", len(history))
	}
}

func TestAppendOutcomeHistory_Retake(t *testing.T) {
	history := historyFor(t, Rates{Retake: 1})
	if !sameStatuses(statuses(history), []string{"I", "C"}) {
		t.Fatalf("expected [I, C], got %v", statuses(history))
	}
	if !history[0].DateTaken.Equal(testDate) {
		t.Fatalf("first attempt date %v", history[0].DateTaken)
	}
	if !history[1].DateTaken.Equal(testDate.AddDate(0, 0, 7)) {
		t.Fatalf("retake date %v, expected a week later", history[1].DateTaken)
	}
}

func TestAppendOutcomeHistory_RetakeWinsOverDeleteAndUpdate(t *testing.T) {
	history := historyFor(t, Rates{Retake: 1, Delete: 1, Update: 1})
	if !sameStatuses(statuses(history), []string{"I", "C"}) {
		t.Fatalf("expected [I, C], got %v", statuses(history))
	}
}

func TestAppendOutcomeHistory_Delete(t *testing.T) {
	history := historyFor(t, Rates{Delete: 1})
	if !sameStatuses(statuses(history), []string{"D"}) {
		t.Fatalf("expected [D], got %v", statuses(history))
	}
}

func TestAppendOutcomeHistory_Update(t *testing.T) {
	history := historyFor(t, Rates{Update: 1})
	if !sameStatuses(statuses(history), []string{"D", "C"}) {
		t.Fatalf("expected [D, C], got %v", statuses(history))
	}
	if !history[1].DateTaken.Equal(history[0].DateTaken) {
		t.Fatalf("replacement record shifted dates: %v vs %v", history[1].DateTaken, history[0].DateTaken)
	}
	if history[1].Guid == history[0].Guid {
		t.Fatalf("replacement reuses guid")
	}
}

func TestAppendOutcomeHistory_DeleteAndUpdate(t *testing.T) {
	history := historyFor(t, Rates{Delete: 1, Update: 1})
	if !sameStatuses(statuses(history), []string{"D", "D"}) {
		t.Fatalf("expected [D, D], got %v", statuses(history))
	}
}

func TestGenerateOutcome_Fields(t *testing.T) {
	e := newTestEngine(t, 20)
	rng := rand.New(rand.NewSource(31))
	student, hier := testStudent()

	asmt, err := e.GenerateAssessment(rng, domain.TypeSummative, 2016, domain.SubjectMath, 8, true)
	if err != nil {
		t.Fatalf("generate assessment: %v", err)
	}
	out, err := e.GenerateOutcome(rng, testDate, student, hier, asmt, true)
	if err != nil {
		t.Fatalf("generate outcome: %v", err)
	}

	if out.ResultStatus != domain.StatusComplete {
		t.Fatalf("result status %q", out.ResultStatus)
	}
	if !asmt.Overall.InRange(out.OverallScore) {
		t.Fatalf("overall score %d out of range", out.OverallScore)
	}
	if out.OverallRangeMin < asmt.Overall.ScoreMin || out.OverallRangeMax > asmt.Overall.ScoreMax {
		t.Fatalf("band %d-%d escapes scale", out.OverallRangeMin, out.OverallRangeMax)
	}
	if len(out.ClaimScores) != 4 {
		t.Fatalf("expected 4 claim score slots, got %d", len(out.ClaimScores))
	}
	if out.ClaimScores[3] != nil {
		t.Fatalf("expected nil 4th claim score for math")
	}
	if len(out.ItemData) != len(asmt.ItemBank) {
		t.Fatalf("item data %d, bank %d", len(out.ItemData), len(asmt.ItemBank))
	}
	for i, data := range out.ItemData {
		if data.Item != asmt.ItemBank[i] {
			t.Fatalf("item data %d points at wrong item", i)
		}
		if data.Score < 0 || data.Score > data.Item.MaxScore {
			t.Fatalf("item %d score %d outside [0, %d]", i, data.Score, data.Item.MaxScore)
		}
		if !data.ResponseDate.Equal(testDate) {
			t.Fatalf("item %d response date %v", i, data.ResponseDate)
		}
	}
	if out.Accommodations.CalculatorNonEmbed < 4 {
		t.Fatalf("math outcome missing calculator counter: %d", out.Accommodations.CalculatorNonEmbed)
	}
}

func TestGenerateOutcome_WithoutItems(t *testing.T) {
	e := newTestEngine(t, 20)
	rng := rand.New(rand.NewSource(32))
	student, hier := testStudent()

	asmt, err := e.GenerateAssessment(rng, domain.TypeSummative, 2016, domain.SubjectELA, 8, false)
	if err != nil {
		t.Fatalf("generate assessment: %v", err)
	}
	out, err := e.GenerateOutcome(rng, testDate, student, hier, asmt, false)
	if err != nil {
		t.Fatalf("generate outcome: %v", err)
	}
	if len(out.ItemData) != 0 {
		t.Fatalf("expected no item data, got %d", len(out.ItemData))
	}
}

func TestGenerateStudentOutcomes_CoversInterims(t *testing.T) {
	e := newTestEngine(t, 5)
	rng := rand.New(rand.NewSource(41))
	student, hier := testStudent()

	summative, err := e.GenerateAssessment(rng, domain.TypeSummative, 2016, domain.SubjectELA, 8, false)
	if err != nil {
		t.Fatalf("summative: %v", err)
	}
	ica, err := e.GenerateAssessment(rng, domain.TypeInterimComprehensive, 2016, domain.SubjectELA, 8, false)
	if err != nil {
		t.Fatalf("ica: %v", err)
	}
	iab, err := e.GenerateAssessment(rng, domain.TypeInterimBlock, 2016, domain.SubjectELA, 8, false)
	if err != nil {
		t.Fatalf("iab: %v", err)
	}

	results := OutcomeMap{}
	err = e.GenerateStudentOutcomes(rng, testDate, student, hier, summative, []*domain.Assessment{ica, iab}, results, Rates{}, false)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 assessments in map, got %d", len(results))
	}
	for _, asmt := range []*domain.Assessment{summative, ica, iab} {
		if len(results[asmt.Guid]) != 1 {
			t.Fatalf("%s: expected one record, got %d", asmt.Guid, len(results[asmt.Guid]))
		}
	}
}

func TestOutcomeMap_Merge(t *testing.T) {
	a := OutcomeMap{"x": {{Guid: "1"}, {Guid: "2"}}}
	b := OutcomeMap{"x": {{Guid: "3"}}, "y": {{Guid: "4"}}}
	a.Merge(b)

	if len(a["x"]) != 3 {
		t.Fatalf("expected 3 records under x, got %d", len(a["x"]))
	}
	if a["x"][2].Guid != "3" {
		t.Fatalf("merge broke ordering: %v", a["x"][2].Guid)
	}
	if len(a["y"]) != 1 {
		t.Fatalf("expected y merged in")
	}
}
