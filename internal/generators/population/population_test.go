package population

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/yungbote/asmtgen/internal/domain"
	"github.com/yungbote/asmtgen/internal/platform/idgen"
)

func testSchool() *domain.School {
	state := &domain.State{Code: "ES", Name: "Example State"}
	district := &domain.District{RecID: 1, Guid: "district-guid", State: state}
	return &domain.School{RecID: 2, Guid: "school-guid", Name: "Oak Hill Middle School", District: district}
}

func TestGenerateStudent_Identity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	idg := idgen.New()
	school := testSchool()

	s := GenerateStudent(rng, school, 8, idg, 2016)
	if s.School != school || s.Grade != 8 {
		t.Fatalf("enrollment wrong: %+v", s)
	}
	if s.FirstName == "" || s.LastName == "" {
		t.Fatalf("missing name: %+v", s)
	}
	if s.Gender != "female" && s.Gender != "male" {
		t.Fatalf("gender %q", s.Gender)
	}
	if !strings.HasPrefix(s.ExternalSSID, "ES") || len(s.ExternalSSID) != 11 {
		t.Fatalf("ssid %q", s.ExternalSSID)
	}
}

func TestGenerateStudent_BirthYearTracksGrade(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	idg := idgen.New()
	school := testSchool()

	for _, grade := range []int{3, 8, 11} {
		s := GenerateStudent(rng, school, grade, idg, 2016)
		want := 2016 - grade - 6
		if s.DOB.Year() != want {
			t.Fatalf("grade %d: birth year %d, expected %d", grade, s.DOB.Year(), want)
		}
	}
}

func TestGenerateStudent_OnePrimaryEthnicity(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	idg := idgen.New()
	school := testSchool()

	for i := 0; i < 200; i++ {
		s := GenerateStudent(rng, school, 5, idg, 2016)
		buckets := 0
		for _, set := range []bool{s.EthWhite, s.EthBlack, s.EthAsian, s.EthAmerInd, s.EthPacific, s.EthMulti} {
			if set {
				buckets++
			}
		}
		if buckets != 1 {
			t.Fatalf("expected exactly one primary ethnicity bucket, got %d", buckets)
		}
	}
}

func TestGenerateStudent_LanguageFollowsLEP(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	idg := idgen.New()
	school := testSchool()

	for i := 0; i < 200; i++ {
		s := GenerateStudent(rng, school, 5, idg, 2016)
		if s.PrgLEP {
			if s.LangCode == "eng" {
				t.Fatalf("LEP student coded eng")
			}
			if s.LangProfLevel == "" {
				t.Fatalf("LEP student missing proficiency level")
			}
		} else if s.LangCode != "eng" {
			t.Fatalf("non-LEP student coded %q", s.LangCode)
		}
	}
}
