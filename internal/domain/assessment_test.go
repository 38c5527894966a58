package domain

import "testing"

func TestScorable_InRange(t *testing.T) {
	s := &Scorable{ScoreMin: 2265, ScoreMax: 2802}
	if !s.InRange(2265) || !s.InRange(2802) || !s.InRange(2500) {
		t.Fatalf("bounds should be inclusive")
	}
	if s.InRange(2264) || s.InRange(2803) {
		t.Fatalf("out-of-range scores accepted")
	}
}

func TestScorable_PerfLevelCountsClearedCuts(t *testing.T) {
	s := &Scorable{ScoreMin: 2265, ScoreMax: 2802, CutPoints: []int{2504, 2586, 2653}}
	cases := map[int]int{
		2265: 1,
		2504: 2,
		2585: 2,
		2586: 3,
		2653: 4,
	}
	for score, want := range cases {
		if got := s.PerfLevel(score); got != want {
			t.Fatalf("score %d: level %d, expected %d", score, got, want)
		}
	}
}

func TestAssessment_IsIAB(t *testing.T) {
	if (&Assessment{Type: TypeSummative}).IsIAB() {
		t.Fatalf("summative flagged as block")
	}
	if !(&Assessment{Type: TypeInterimBlock}).IsIAB() {
		t.Fatalf("block not flagged")
	}
}

func TestAssessment_ClaimCountSkipsPlaceholders(t *testing.T) {
	a := &Assessment{Claims: []*Scorable{{Name: "Reading"}, nil, {Name: "Writing"}}}
	if got := a.ClaimCount(); got != 2 {
		t.Fatalf("claim count %d", got)
	}
}
