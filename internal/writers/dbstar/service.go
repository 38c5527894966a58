package dbstar

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yungbote/asmtgen/internal/domain"
	"github.com/yungbote/asmtgen/internal/platform/envutil"
	"github.com/yungbote/asmtgen/internal/platform/logger"
)

// Service loads the star schema into a relational database. Production runs
// target Postgres; tests open a sqlite handle and reuse the same schema.
type Service struct {
	db        *gorm.DB
	log       *logger.Logger
	batchGuid string
}

// NewPostgresService connects using POSTGRES_* environment variables and
// wraps the handle in a Service.
func NewPostgresService(batchGuid string, log *logger.Logger) (*Service, error) {
	host := envutil.String("POSTGRES_HOST", "localhost")
	port := envutil.String("POSTGRES_PORT", "5432")
	user := envutil.String("POSTGRES_USER", "postgres")
	password := envutil.String("POSTGRES_PASSWORD", "")
	name := envutil.String("POSTGRES_NAME", "asmtgen")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, name)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	return NewService(db, batchGuid, log), nil
}

// NewService wraps an existing gorm handle; used by tests with sqlite.
func NewService(db *gorm.DB, batchGuid string, log *logger.Logger) *Service {
	return &Service{
		db:        db,
		log:       log.With("service", "DBStarService"),
		batchGuid: batchGuid,
	}
}

func (s *Service) Prepare() error {
	if err := s.db.AutoMigrate(
		&DimAsmt{},
		&DimHier{},
		&DimStudent{},
		&FactAsmtOutcome{},
		&FactBlockAsmtOutcome{},
	); err != nil {
		return fmt.Errorf("migrate star schema: %w", err)
	}
	return nil
}

func (s *Service) Cleanup() error { return nil }

func (s *Service) WriteAssessments(asmts []*domain.Assessment) error {
	rows := make([]DimAsmt, 0, len(asmts))
	for _, a := range asmts {
		names := make([]string, 0, len(a.Claims))
		for _, c := range a.Claims {
			if c == nil {
				names = append(names, "")
				continue
			}
			names = append(names, c.Name)
		}
		cuts, err := json.Marshal(a.Overall.CutPoints)
		if err != nil {
			return fmt.Errorf("marshal cut points: %w", err)
		}
		claimNames, err := json.Marshal(names)
		if err != nil {
			return fmt.Errorf("marshal claim names: %w", err)
		}
		rows = append(rows, DimAsmt{
			AsmtRecID:     a.RecID,
			AsmtGuid:      a.Guid,
			AsmtType:      a.Type,
			Subject:       a.Subject,
			Grade:         a.Grade,
			Year:          a.Year,
			Version:       a.Version,
			EffectiveDate: a.EffectiveDate,
			FromDate:      a.FromDate,
			ToDate:        a.ToDate,
			ScoreMin:      a.Overall.ScoreMin,
			ScoreMax:      a.Overall.ScoreMax,
			CutPoints:     datatypes.JSON(cuts),
			ClaimNames:    datatypes.JSON(claimNames),
			RecStatus:     "C",
			BatchGuid:     s.batchGuid,
		})
	}
	if len(rows) == 0 {
		return nil
	}
	return s.db.Create(&rows).Error
}

func (s *Service) WriteHierarchies(hiers []*domain.InstitutionHierarchy) error {
	rows := make([]DimHier, 0, len(hiers))
	for _, h := range hiers {
		rows = append(rows, DimHier{
			InstHierRecID: h.RecID,
			InstHierGuid:  h.Guid,
			StateCode:     h.State.Code,
			StateName:     h.State.Name,
			DistrictID:    h.District.Guid,
			DistrictName:  h.District.Name,
			SchoolID:      h.School.Guid,
			SchoolName:    h.School.Name,
			RecStatus:     "C",
			BatchGuid:     s.batchGuid,
		})
	}
	if len(rows) == 0 {
		return nil
	}
	return s.db.Create(&rows).Error
}

func (s *Service) WriteStudents(students []*domain.Student) error {
	rows := make([]DimStudent, 0, len(students))
	for _, st := range students {
		if st.HeldBack {
			continue
		}
		dmg, err := json.Marshal(map[string]bool{
			"eth_hispanic":   st.EthHispanic,
			"eth_amer_ind":   st.EthAmerInd,
			"eth_asian":      st.EthAsian,
			"eth_black":      st.EthBlack,
			"eth_white":      st.EthWhite,
			"eth_pacific":    st.EthPacific,
			"eth_multi":      st.EthMulti,
			"prg_iep":        st.PrgIEP,
			"prg_sec504":     st.PrgSec504,
			"prg_lep":        st.PrgLEP,
			"prg_econ_disad": st.PrgEconDisad,
		})
		if err != nil {
			return fmt.Errorf("marshal demographics: %w", err)
		}
		rows = append(rows, DimStudent{
			StudentRecID: st.RecID,
			StudentGuid:  st.Guid,
			ExternalSSID: st.ExternalSSID,
			FirstName:    st.FirstName,
			MiddleName:   st.MiddleName,
			LastName:     st.LastName,
			Birthdate:    st.DOB,
			Sex:          st.Gender,
			Grade:        st.Grade,
			LangCode:     st.LangCode,
			StateCode:    st.School.District.State.Code,
			DistrictID:   st.School.District.Guid,
			SchoolID:     st.School.Guid,
			SchoolName:   st.School.Name,
			Demographics: datatypes.JSON(dmg),
			RecStatus:    "C",
			BatchGuid:    s.batchGuid,
		})
	}
	if len(rows) == 0 {
		return nil
	}
	return s.db.CreateInBatches(&rows, 500).Error
}

func (s *Service) WriteOutcomes(asmtGuid string, results []*domain.AssessmentOutcome) error {
	if len(results) == 0 {
		return nil
	}
	if results[0].Assessment.IsIAB() {
		rows := make([]FactBlockAsmtOutcome, 0, len(results))
		for _, out := range results {
			acc, err := marshalAccommodations(out)
			if err != nil {
				return err
			}
			rows = append(rows, FactBlockAsmtOutcome{
				BlockAsmtOutcomeRecID: out.RecID,
				AsmtRecID:             out.Assessment.RecID,
				StudentRecID:          out.Student.RecID,
				InstHierRecID:         out.Hierarchy.RecID,
				AsmtGuid:              out.Assessment.Guid,
				StudentGuid:           out.Student.Guid,
				StateCode:             out.Hierarchy.State.Code,
				DistrictID:            out.Hierarchy.District.Guid,
				SchoolID:              out.Hierarchy.School.Guid,
				AsmtGrade:             out.Assessment.Grade,
				EnrlGrade:             out.Student.Grade,
				DateTaken:             out.DateTaken,
				Score:                 out.OverallScore,
				ScoreRangeMin:         out.OverallRangeMin,
				ScoreRangeMax:         out.OverallRangeMax,
				PerfLevel:             out.OverallPerfLvl,
				Accommodations:        acc,
				RecStatus:             out.ResultStatus,
				BatchGuid:             s.batchGuid,
			})
		}
		return s.db.CreateInBatches(&rows, 500).Error
	}

	rows := make([]FactAsmtOutcome, 0, len(results))
	for _, out := range results {
		acc, err := marshalAccommodations(out)
		if err != nil {
			return err
		}
		claims, err := json.Marshal(out.ClaimScores)
		if err != nil {
			return fmt.Errorf("marshal claim scores: %w", err)
		}
		rows = append(rows, FactAsmtOutcome{
			AsmtOutcomeRecID: out.RecID,
			AsmtRecID:        out.Assessment.RecID,
			StudentRecID:     out.Student.RecID,
			InstHierRecID:    out.Hierarchy.RecID,
			AsmtGuid:         out.Assessment.Guid,
			StudentGuid:      out.Student.Guid,
			StateCode:        out.Hierarchy.State.Code,
			DistrictID:       out.Hierarchy.District.Guid,
			SchoolID:         out.Hierarchy.School.Guid,
			AsmtGrade:        out.Assessment.Grade,
			EnrlGrade:        out.Student.Grade,
			DateTaken:        out.DateTaken,
			Score:            out.OverallScore,
			ScoreRangeMin:    out.OverallRangeMin,
			ScoreRangeMax:    out.OverallRangeMax,
			PerfLevel:        out.OverallPerfLvl,
			ClaimScores:      datatypes.JSON(claims),
			Accommodations:   acc,
			RecStatus:        out.ResultStatus,
			BatchGuid:        s.batchGuid,
		})
	}
	return s.db.CreateInBatches(&rows, 500).Error
}

func marshalAccommodations(out *domain.AssessmentOutcome) (datatypes.JSON, error) {
	raw, err := json.Marshal(out.Accommodations)
	if err != nil {
		return nil, fmt.Errorf("marshal accommodations: %w", err)
	}
	return datatypes.JSON(raw), nil
}
