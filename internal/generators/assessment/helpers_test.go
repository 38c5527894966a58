package assessment

import (
	"testing"
	"time"

	"github.com/yungbote/asmtgen/internal/domain"
	"github.com/yungbote/asmtgen/internal/platform/idgen"
	"github.com/yungbote/asmtgen/internal/platform/logger"
)

func newTestEngine(t *testing.T, bankSize int) *Engine {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return NewEngine(idgen.New(), log, bankSize)
}

func testStudent() (*domain.Student, *domain.InstitutionHierarchy) {
	state := &domain.State{Code: "ES", Name: "Example State"}
	district := &domain.District{RecID: 1, Guid: "district-guid", Name: "Lakeview School District", State: state}
	school := &domain.School{
		RecID:         2,
		Guid:          "school-guid",
		Name:          "Oak Hill Middle School",
		Type:          "Middle School",
		District:      district,
		TakesInterims: true,
	}
	hier := &domain.InstitutionHierarchy{
		RecID:    3,
		Guid:     "hier-guid",
		State:    state,
		District: district,
		School:   school,
	}
	student := &domain.Student{
		RecID:        4,
		Guid:         "student-guid",
		ExternalSSID: "ES000000004",
		FirstName:    "Ava",
		LastName:     "Smith",
		Gender:       "female",
		Grade:        8,
		School:       school,
		DOB:          time.Date(2002, time.March, 5, 0, 0, 0, 0, time.UTC),
		LangCode:     "eng",
	}
	return student, hier
}
