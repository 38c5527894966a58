package runner

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/yungbote/asmtgen/internal/config"
	"github.com/yungbote/asmtgen/internal/generators/assessment"
	"github.com/yungbote/asmtgen/internal/platform/idgen"
	"github.com/yungbote/asmtgen/internal/platform/logger"
	"github.com/yungbote/asmtgen/internal/writers/csvstar"
	"github.com/yungbote/asmtgen/internal/writers/xmlout"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		State:              config.StateConfig{Name: "Example State", Code: "ES"},
		Districts:          1,
		SchoolsPerDistrict: 2,
		StudentsPerGrade:   3,
		Grades:             []int{8},
		Subjects:           []string{"Math", "ELA"},
		AcademicYear:       2016,
		InterimRate:        1.0,
		GenerateItems:      false,
		Outputs: config.OutputConfig{
			CSVRoot: filepath.Join(t.TempDir(), "csv"),
			XMLRoot: filepath.Join(t.TempDir(), "xml"),
		},
		Workers: 3,
		Seed:    42,
	}
}

func runOnce(t *testing.T, cfg config.Config) Stats {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	idg := idgen.New()
	engine := assessment.NewEngine(idg, log, 5)
	outputs := []OutputWorker{
		csvstar.New(cfg.Outputs.CSVRoot, idg.NewGUID(), log),
		xmlout.New(cfg.Outputs.XMLRoot, log),
	}
	run := New(cfg, engine, idg, log, outputs...)
	stats, err := run.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	return stats
}

func TestRun_Counts(t *testing.T) {
	cfg := testConfig(t)
	stats := runOnce(t, cfg)

	if stats.Schools != 2 {
		t.Fatalf("schools %d", stats.Schools)
	}
	if stats.Students != 6 {
		t.Fatalf("students %d", stats.Students)
	}
	// Two subjects, one grade, four definitions each.
	if stats.Assessments != 8 {
		t.Fatalf("assessments %d", stats.Assessments)
	}
	// Every school takes interims and all rates are zero, so each student
	// sits all four definitions per subject exactly once.
	if stats.Outcomes != 6*2*4 {
		t.Fatalf("outcomes %d, expected %d", stats.Outcomes, 6*2*4)
	}
}

func TestRun_DeterministicForFixedSeed(t *testing.T) {
	first := runOnce(t, testConfig(t))
	second := runOnce(t, testConfig(t))

	if first.Outcomes != second.Outcomes {
		t.Fatalf("outcome counts diverged: %d vs %d", first.Outcomes, second.Outcomes)
	}
	if first.Students != second.Students {
		t.Fatalf("student counts diverged: %d vs %d", first.Students, second.Students)
	}
}

func TestRun_SkipRateEmptiesFactTables(t *testing.T) {
	cfg := testConfig(t)
	cfg.Rates = config.Rates{Skip: 1}
	stats := runOnce(t, cfg)

	if stats.Outcomes != 0 {
		t.Fatalf("expected no outcomes, got %d", stats.Outcomes)
	}

	f, err := os.Open(filepath.Join(cfg.Outputs.CSVRoot, "fact_asmt_outcome.csv"))
	if err != nil {
		t.Fatalf("open fact table: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read fact table: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %d rows", len(rows))
	}
}

func TestRun_WritesStarAndXMLOutputs(t *testing.T) {
	cfg := testConfig(t)
	cfg.GenerateItems = true
	runOnce(t, cfg)

	for _, name := range []string{
		"fact_asmt_outcome.csv",
		"fact_asmt_outcome_vw.csv",
		"fact_block_asmt_outcome.csv",
		"dim_asmt.csv",
		"dim_hier.csv",
		"dim_student.csv",
	} {
		f, err := os.Open(filepath.Join(cfg.Outputs.CSVRoot, name))
		if err != nil {
			t.Fatalf("missing %s: %v", name, err)
		}
		rows, err := csv.NewReader(f).ReadAll()
		f.Close()
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if len(rows) < 2 {
			t.Fatalf("%s: expected data rows beyond header, got %d", name, len(rows))
		}
	}

	stateDir := filepath.Join(cfg.Outputs.XMLRoot, "ES")
	entries, err := os.ReadDir(stateDir)
	if err != nil {
		t.Fatalf("xml state dir: %v", err)
	}
	if len(entries) == 0 {
		t.Fatalf("no district folders under %s", stateDir)
	}

	found := 0
	err = filepath.WalkDir(stateDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".xml" {
			found++
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk xml tree: %v", err)
	}
	if found == 0 {
		t.Fatalf("no TDSReport documents written")
	}
}
