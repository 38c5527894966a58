package csvstar

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/yungbote/asmtgen/internal/domain"
	"github.com/yungbote/asmtgen/internal/platform/logger"
)

// Writer emits the star-schema CSV files: three fact tables keyed by
// outcome record id plus the assessment, hierarchy and student dimensions.
// Prepare truncates the output directory and writes headers; all write
// calls append.
type Writer struct {
	root      string
	log       *logger.Logger
	batchGuid string
}

func New(root, batchGuid string, log *logger.Logger) *Writer {
	return &Writer{
		root:      root,
		log:       log.With("service", "CSVStarWriter"),
		batchGuid: batchGuid,
	}
}

func (w *Writer) Prepare() error {
	if err := os.RemoveAll(w.root); err != nil {
		return fmt.Errorf("clean csv root %s: %w", w.root, err)
	}
	if err := os.MkdirAll(w.root, 0o755); err != nil {
		return fmt.Errorf("create csv root %s: %w", w.root, err)
	}
	for name, cols := range map[string][]string{
		fileFactAsmtOutcome:      factAsmtOutcomeColumns,
		fileFactAsmtOutcomeVW:    factAsmtOutcomeVWColumns,
		fileFactBlockAsmtOutcome: factBlockAsmtOutcomeColumns,
		fileDimAsmt:              dimAsmtColumns,
		fileDimInstHier:          dimInstHierColumns,
		fileDimStudent:           dimStudentColumns,
	} {
		if err := w.appendRows(name, [][]string{cols}); err != nil {
			return err
		}
	}
	w.log.Debug("Prepared star-schema files", "root", w.root)
	return nil
}

func (w *Writer) Cleanup() error { return nil }

func (w *Writer) appendRows(name string, rows [][]string) error {
	f, err := os.OpenFile(filepath.Join(w.root, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", name, err)
	}
	return nil
}

func (w *Writer) WriteAssessments(asmts []*domain.Assessment) error {
	rows := make([][]string, 0, len(asmts))
	for _, a := range asmts {
		row := []string{
			formatInt64(a.RecID),
			a.Guid,
			a.Type,
			"Spring",
			strconv.Itoa(a.Year),
			a.Version,
			a.Subject,
			strconv.Itoa(a.Grade),
			formatDate(a.EffectiveDate),
			formatDate(a.FromDate),
			formatDate(a.ToDate),
			strconv.Itoa(a.Overall.ScoreMin),
			strconv.Itoa(a.Overall.ScoreMax),
		}
		for i := 0; i < 3; i++ {
			row = append(row, strconv.Itoa(a.Overall.CutPoints[i]))
		}
		for i := 0; i < 4; i++ {
			row = append(row, nameOrEmpty(a.PerfLevelNames, i))
		}
		for i := 0; i < 4; i++ {
			if i < len(a.Claims) && a.Claims[i] != nil {
				row = append(row, a.Claims[i].Name)
			} else {
				row = append(row, "")
			}
		}
		for i := 0; i < 3; i++ {
			row = append(row, nameOrEmpty(a.ClaimPerfLevelNames, i))
		}
		row = append(row, "C", w.batchGuid)
		rows = append(rows, row)
	}
	return w.appendRows(fileDimAsmt, rows)
}

func (w *Writer) WriteHierarchies(hiers []*domain.InstitutionHierarchy) error {
	rows := make([][]string, 0, len(hiers))
	for _, h := range hiers {
		rows = append(rows, []string{
			formatInt64(h.RecID),
			h.Guid,
			h.State.Code,
			h.State.Name,
			h.District.Guid,
			h.District.Name,
			h.School.Guid,
			h.School.Name,
			formatDate(time.Time{}),
			"",
			"C",
			w.batchGuid,
		})
	}
	return w.appendRows(fileDimInstHier, rows)
}

// WriteStudents emits dim_student rows. Held-back students stay out of the
// dimension, matching the reporting load.
func (w *Writer) WriteStudents(students []*domain.Student) error {
	rows := make([][]string, 0, len(students))
	for _, s := range students {
		if s.HeldBack {
			continue
		}
		rows = append(rows, []string{
			formatInt64(s.RecID),
			s.Guid,
			s.ExternalSSID,
			s.FirstName,
			s.MiddleName,
			s.LastName,
			formatDate(s.DOB),
			s.Gender,
			strconv.Itoa(s.Grade),
			s.LangCode,
			s.LangProfLevel,
			s.School.District.State.Code,
			s.School.District.Guid,
			s.School.Guid,
			s.School.Name,
			formatBool(s.EthHispanic),
			formatBool(s.EthAmerInd),
			formatBool(s.EthAsian),
			formatBool(s.EthBlack),
			formatBool(s.EthWhite),
			formatBool(s.EthPacific),
			formatBool(s.EthMulti),
			formatBool(s.PrgIEP),
			formatBool(s.PrgLEP),
			formatBool(s.PrgSec504),
			formatBool(s.PrgEconDisad),
			formatDate(time.Time{}),
			"",
			"C",
			w.batchGuid,
		})
	}
	return w.appendRows(fileDimStudent, rows)
}

// WriteOutcomes routes one assessment's outcome history into the fact
// tables: IAB rows go to fact_block_asmt_outcome, everything else to both
// fact_asmt_outcome and its _vw counterpart.
func (w *Writer) WriteOutcomes(asmtGuid string, results []*domain.AssessmentOutcome) error {
	if len(results) == 0 {
		return nil
	}
	if results[0].Assessment.IsIAB() {
		rows := make([][]string, 0, len(results))
		for _, out := range results {
			rows = append(rows, w.factRow(out, false))
		}
		return w.appendRows(fileFactBlockAsmtOutcome, rows)
	}

	rows := make([][]string, 0, len(results))
	for _, out := range results {
		rows = append(rows, w.factRow(out, true))
	}
	if err := w.appendRows(fileFactAsmtOutcome, rows); err != nil {
		return err
	}
	return w.appendRows(fileFactAsmtOutcomeVW, rows)
}

func (w *Writer) factRow(out *domain.AssessmentOutcome, withClaims bool) []string {
	row := []string{
		formatInt64(out.RecID),
		formatInt64(out.Assessment.RecID),
		formatInt64(out.Student.RecID),
		formatInt64(out.Hierarchy.RecID),
		out.Assessment.Guid,
		out.Student.Guid,
		out.Hierarchy.State.Code,
		out.Hierarchy.District.Guid,
		out.Hierarchy.School.Guid,
		out.Assessment.Type,
		strconv.Itoa(out.Assessment.Grade),
		strconv.Itoa(out.Student.Grade),
		formatDate(out.DateTaken),
		strconv.Itoa(out.DateTaken.Day()),
		strconv.Itoa(int(out.DateTaken.Month())),
		strconv.Itoa(out.DateTaken.Year()),
		strconv.Itoa(out.OverallScore),
		strconv.Itoa(out.OverallRangeMin),
		strconv.Itoa(out.OverallRangeMax),
		strconv.Itoa(out.OverallPerfLvl),
	}
	if withClaims {
		for i := 0; i < 4; i++ {
			if i < len(out.ClaimScores) && out.ClaimScores[i] != nil {
				cs := out.ClaimScores[i]
				row = append(row,
					strconv.Itoa(cs.Score),
					strconv.Itoa(cs.RangeMin),
					strconv.Itoa(cs.RangeMax),
					strconv.Itoa(cs.PerfLevel),
				)
			} else {
				row = append(row, "", "", "", "")
			}
		}
	}
	acc := out.Accommodations
	for _, v := range []int{
		acc.ASLVideoEmbed,
		acc.BrailleEmbed,
		acc.ClosedCaptioningEmbed,
		acc.TextToSpeechEmbed,
		acc.AbacusNonEmbed,
		acc.AlternateResponseNonEmbed,
		acc.CalculatorNonEmbed,
		acc.MultiplicationTblNonEmbed,
		acc.PrintOnDemandNonEmbed,
		acc.PrintOnDemandItemsNonEmbed,
		acc.ReadAloudNonEmbed,
		acc.ScribeNonEmbed,
		acc.SpeechToTextNonEmbed,
		acc.NoiseBufferNonEmbed,
		acc.StreamlineMode,
	} {
		row = append(row, strconv.Itoa(v))
	}
	row = append(row, out.ResultStatus, w.batchGuid)
	return row
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatInt64(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func nameOrEmpty(names []string, i int) string {
	if i < len(names) {
		return names[i]
	}
	return ""
}
