package hierarchy

import (
	"fmt"
	"math/rand"

	"github.com/yungbote/asmtgen/internal/domain"
	"github.com/yungbote/asmtgen/internal/platform/idgen"
)

var districtNames = []string{
	"Big Bend", "Cedar Grove", "Dry Creek", "Eastwood", "Harrison Valley",
	"Lakeview", "North Ridge", "Pinecrest", "Riverside", "Sunnydale",
}

var schoolNames = []string{
	"Adams", "Blue Heron", "Canyon Trail", "Douglas", "Franklin",
	"Hawthorne", "Jefferson", "Maple Leaf", "Oak Hill", "Washington",
}

// GenerateState builds the state entity at the top of the hierarchy.
func GenerateState(name, code string) *domain.State {
	return &domain.State{Code: code, Name: name}
}

// GenerateDistrict builds one district under the given state.
func GenerateDistrict(rng *rand.Rand, state *domain.State, idg *idgen.IDGen) *domain.District {
	return &domain.District{
		RecID: idg.NextRecID(),
		Guid:  idg.NewGUID(),
		Name:  fmt.Sprintf("%s School District", districtNames[rng.Intn(len(districtNames))]),
		State: state,
	}
}

// GenerateSchool builds one school under the given district. Roughly half of
// the schools administer interim assessments.
func GenerateSchool(rng *rand.Rand, district *domain.District, idg *idgen.IDGen, interimRate float64) *domain.School {
	types := []string{"Elementary School", "Middle School", "High School"}
	typ := types[rng.Intn(len(types))]
	return &domain.School{
		RecID:         idg.NextRecID(),
		Guid:          idg.NewGUID(),
		Name:          fmt.Sprintf("%s %s", schoolNames[rng.Intn(len(schoolNames))], typ),
		Type:          typ,
		District:      district,
		TakesInterims: rng.Float64() < interimRate,
	}
}

// GenerateInstitutionHierarchy denormalizes one school's lineage into the
// row consumed by dim_hier and the XML path derivation.
func GenerateInstitutionHierarchy(school *domain.School, idg *idgen.IDGen) *domain.InstitutionHierarchy {
	return &domain.InstitutionHierarchy{
		RecID:    idg.NextRecID(),
		Guid:     idg.NewGUID(),
		State:    school.District.State,
		District: school.District,
		School:   school,
	}
}
