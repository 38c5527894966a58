package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/asmtgen/internal/platform/envutil"
)

// Rates are the probability gates of the outcome versioning state machine,
// each in [0, 1].
type Rates struct {
	Skip   float64 `yaml:"skip"`
	Retake float64 `yaml:"retake"`
	Delete float64 `yaml:"delete"`
	Update float64 `yaml:"update"`
}

type StateConfig struct {
	Name string `yaml:"name"`
	Code string `yaml:"code"`
}

type OutputConfig struct {
	CSVRoot string `yaml:"csv_root"`
	XMLRoot string `yaml:"xml_root"`
	// Postgres enables the star-schema database load; connection details
	// come from the POSTGRES_* environment variables.
	Postgres bool `yaml:"postgres"`
}

type Config struct {
	State              StateConfig  `yaml:"state"`
	Districts          int          `yaml:"districts"`
	SchoolsPerDistrict int          `yaml:"schools_per_district"`
	StudentsPerGrade   int          `yaml:"students_per_grade"`
	Grades             []int        `yaml:"grades"`
	Subjects           []string     `yaml:"subjects"`
	AcademicYear       int          `yaml:"academic_year"`
	InterimRate        float64      `yaml:"interim_rate"`
	Rates              Rates        `yaml:"rates"`
	GenerateItems      bool         `yaml:"generate_items"`
	ItemBankSize       int          `yaml:"item_bank_size"`
	Outputs            OutputConfig `yaml:"outputs"`
	Workers            int          `yaml:"workers"`
	// Seed fixes the run's RNG when nonzero; zero means time-seeded.
	Seed int64 `yaml:"seed"`
}

func defaults() Config {
	return Config{
		State:              StateConfig{Name: "Example State", Code: "ES"},
		Districts:          2,
		SchoolsPerDistrict: 3,
		StudentsPerGrade:   50,
		Grades:             []int{3, 4, 5, 6, 7, 8, 11},
		Subjects:           []string{"Math", "ELA"},
		AcademicYear:       2016,
		InterimRate:        0.5,
		Rates:              Rates{Skip: 0.05, Retake: 0.01, Delete: 0.02, Update: 0.02},
		GenerateItems:      true,
		ItemBankSize:       130,
		Outputs:            OutputConfig{CSVRoot: "out/csv", XMLRoot: "out/xml"},
		Workers:            4,
	}
}

// Load reads the YAML config at path (optional; empty path keeps defaults)
// and applies environment overrides.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.Workers = envutil.Int("DATAGEN_WORKERS", cfg.Workers)
	cfg.Seed = int64(envutil.Int("DATAGEN_SEED", int(cfg.Seed)))
	cfg.Outputs.CSVRoot = envutil.String("DATAGEN_CSV_ROOT", cfg.Outputs.CSVRoot)
	cfg.Outputs.XMLRoot = envutil.String("DATAGEN_XML_ROOT", cfg.Outputs.XMLRoot)
	cfg.Outputs.Postgres = envutil.Bool("DATAGEN_POSTGRES", cfg.Outputs.Postgres)
	cfg.Rates.Skip = envutil.Float("DATAGEN_SKIP_RATE", cfg.Rates.Skip)
	cfg.Rates.Retake = envutil.Float("DATAGEN_RETAKE_RATE", cfg.Rates.Retake)
	cfg.Rates.Delete = envutil.Float("DATAGEN_DELETE_RATE", cfg.Rates.Delete)
	cfg.Rates.Update = envutil.Float("DATAGEN_UPDATE_RATE", cfg.Rates.Update)

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	for _, r := range []struct {
		name string
		v    float64
	}{
		{"skip", c.Rates.Skip},
		{"retake", c.Rates.Retake},
		{"delete", c.Rates.Delete},
		{"update", c.Rates.Update},
		{"interim_rate", c.InterimRate},
	} {
		if r.v < 0 || r.v > 1 {
			return fmt.Errorf("rate %s out of range [0,1]: %v", r.name, r.v)
		}
	}
	if c.Districts < 1 || c.SchoolsPerDistrict < 1 || c.StudentsPerGrade < 1 {
		return fmt.Errorf("district/school/student counts must be positive")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if len(c.Grades) == 0 || len(c.Subjects) == 0 {
		return fmt.Errorf("grades and subjects must be non-empty")
	}
	return nil
}
