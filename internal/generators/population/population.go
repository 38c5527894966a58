package population

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/yungbote/asmtgen/internal/domain"
	"github.com/yungbote/asmtgen/internal/platform/idgen"
)

var firstNamesFemale = []string{
	"Ava", "Camila", "Emma", "Harper", "Isabella", "Mia", "Nora", "Olivia", "Sofia", "Zoe",
}

var firstNamesMale = []string{
	"Aiden", "Carlos", "Elijah", "Ethan", "James", "Liam", "Mateo", "Noah", "Oliver", "William",
}

var lastNames = []string{
	"Anderson", "Brown", "Garcia", "Johnson", "Lee", "Martinez", "Nguyen", "Smith", "Williams", "Wilson",
}

var langCodes = []string{"eng", "spa", "vie", "cmn", "ara"}

// GenerateStudent builds one student enrolled at the given school for the
// given grade and academic year. Demographic and program flags are sampled
// independently; ethnicity picks exactly one primary bucket plus an optional
// hispanic flag, mirroring how reporting systems code race.
func GenerateStudent(rng *rand.Rand, school *domain.School, grade int, idg *idgen.IDGen, year int) *domain.Student {
	s := &domain.Student{
		RecID:  idg.NextRecID(),
		Guid:   idg.NewGUID(),
		Grade:  grade,
		School: school,
	}
	s.ExternalSSID = fmt.Sprintf("%s%09d", school.District.State.Code, s.RecID)

	if rng.Intn(2) == 0 {
		s.Gender = "female"
		s.FirstName = firstNamesFemale[rng.Intn(len(firstNamesFemale))]
	} else {
		s.Gender = "male"
		s.FirstName = firstNamesMale[rng.Intn(len(firstNamesMale))]
	}
	if rng.Float64() < 0.6 {
		s.MiddleName = lastNames[rng.Intn(len(lastNames))]
	}
	s.LastName = lastNames[rng.Intn(len(lastNames))]

	// Age tracks grade: a 3rd grader in year Y was born roughly Y-9.
	birthYear := year - grade - 6
	s.DOB = time.Date(birthYear, time.Month(1+rng.Intn(12)), 1+rng.Intn(28), 0, 0, 0, 0, time.UTC)

	s.EthHispanic = rng.Float64() < 0.24
	switch r := rng.Float64(); {
	case r < 0.52:
		s.EthWhite = true
	case r < 0.68:
		s.EthBlack = true
	case r < 0.78:
		s.EthAsian = true
	case r < 0.84:
		s.EthAmerInd = true
	case r < 0.89:
		s.EthPacific = true
	default:
		s.EthMulti = true
	}

	s.PrgIEP = rng.Float64() < 0.13
	s.PrgSec504 = rng.Float64() < 0.02
	s.PrgLEP = rng.Float64() < 0.09
	s.PrgEconDisad = rng.Float64() < 0.35
	s.HeldBack = rng.Float64() < 0.01

	if s.PrgLEP {
		s.LangCode = langCodes[1+rng.Intn(len(langCodes)-1)]
		s.LangProfLevel = fmt.Sprintf("%d", 1+rng.Intn(5))
	} else {
		s.LangCode = "eng"
	}

	return s
}
