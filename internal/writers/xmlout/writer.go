package xmlout

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yungbote/asmtgen/internal/domain"
	"github.com/yungbote/asmtgen/internal/platform/logger"
)

// Writer emits one TDSReport document per outcome under
// <root>/<state code>/<district guid>/<school guid>/<outcome guid>.xml.
type Writer struct {
	root string
	log  *logger.Logger
}

func New(root string, log *logger.Logger) *Writer {
	return &Writer{root: root, log: log.With("service", "XMLWriter")}
}

func (w *Writer) Prepare() error {
	if err := os.MkdirAll(w.root, 0o755); err != nil {
		return fmt.Errorf("create xml root %s: %w", w.root, err)
	}
	return nil
}

func (w *Writer) Cleanup() error { return nil }

func (w *Writer) WriteAssessments([]*domain.Assessment) error           { return nil }
func (w *Writer) WriteHierarchies([]*domain.InstitutionHierarchy) error { return nil }
func (w *Writer) WriteStudents([]*domain.Student) error                 { return nil }

func (w *Writer) WriteOutcomes(asmtGuid string, results []*domain.AssessmentOutcome) error {
	for _, out := range results {
		if err := w.writeOutcome(out); err != nil {
			return err
		}
	}
	return nil
}

type examineeAttribute struct {
	XMLName     xml.Name `xml:"ExamineeAttribute"`
	Context     string   `xml:"context,attr"`
	Name        string   `xml:"name,attr"`
	Value       string   `xml:"value,attr"`
	ContextDate string   `xml:"contextDate,attr"`
}

type examineeRelationship struct {
	XMLName     xml.Name `xml:"ExamineeRelationship"`
	Context     string   `xml:"context,attr"`
	Name        string   `xml:"name,attr"`
	Value       string   `xml:"value,attr"`
	ContextDate string   `xml:"contextDate,attr"`
}

type testElem struct {
	XMLName           xml.Name `xml:"Test"`
	TestID            string   `xml:"testId,attr"`
	Name              string   `xml:"name,attr"`
	BankKey           string   `xml:"bankKey,attr"`
	Subject           string   `xml:"subject,attr"`
	Grade             string   `xml:"grade,attr"`
	AssessmentType    string   `xml:"assessmentType,attr"`
	AcademicYear      string   `xml:"academicYear,attr"`
	AssessmentVersion string   `xml:"assessmentVersion,attr"`
	Contract          string   `xml:"contract,attr"`
	Mode              string   `xml:"mode,attr"`
}

type examineeElem struct {
	XMLName       xml.Name `xml:"Examinee"`
	Key           string   `xml:"key,attr"`
	Attributes    []examineeAttribute    `xml:"ExamineeAttribute"`
	Relationships []examineeRelationship `xml:"ExamineeRelationship"`
}

type segmentElem struct {
	XMLName          xml.Name `xml:"Segment"`
	ID               string   `xml:"id,attr"`
	Position         string   `xml:"position,attr"`
	Algorithm        string   `xml:"algorithm,attr"`
	AlgorithmVersion string   `xml:"algorithmVersion,attr"`
}

type responseElem struct {
	XMLName xml.Name `xml:"Response"`
	Date    string   `xml:"date,attr"`
	Type    string   `xml:"type,attr"`
	Value   string   `xml:",chardata"`
}

type itemElem struct {
	XMLName          xml.Name `xml:"Item"`
	BankKey          string   `xml:"bankKey,attr"`
	Key              string   `xml:"key,attr"`
	Position         string   `xml:"position,attr"`
	SegmentID        string   `xml:"segmentId,attr"`
	Format           string   `xml:"format,attr"`
	Operational      string   `xml:"operational,attr"`
	IsSelected       string   `xml:"isSelected,attr"`
	AdminDate        string   `xml:"adminDate,attr"`
	NumberVisits     string   `xml:"numberVisits,attr"`
	PageNumber       string   `xml:"pageNumber,attr"`
	PageVisits       string   `xml:"pageVisits,attr"`
	PageTime         string   `xml:"pageTime,attr"`
	ResponseDuration string   `xml:"responseDuration,attr"`
	Dropped          string   `xml:"dropped,attr"`
	Score            string   `xml:"score,attr"`
	ScoreStatus      string   `xml:"scoreStatus,attr"`
	MimeType         string   `xml:"mimeType,attr"`
	Response         responseElem
}

type opportunityElem struct {
	XMLName                 xml.Name `xml:"Opportunity"`
	Server                  string   `xml:"server,attr"`
	Database                string   `xml:"database,attr"`
	ClientName              string   `xml:"clientName,attr"`
	Status                  string   `xml:"status,attr"`
	Completeness            string   `xml:"completeness,attr"`
	Key                     string   `xml:"key,attr"`
	OppID                   string   `xml:"oppId,attr"`
	Opportunity             string   `xml:"opportunity,attr"`
	StartDate               string   `xml:"startDate,attr"`
	StatusDate              string   `xml:"statusDate,attr"`
	DateCompleted           string   `xml:"dateCompleted,attr"`
	ItemCount               string   `xml:"itemCount,attr"`
	FTCount                 string   `xml:"ftCount,attr"`
	PauseCount              string   `xml:"pauseCount,attr"`
	AbnormalStarts          string   `xml:"abnormalStarts,attr"`
	GracePeriodRestarts     string   `xml:"gracePeriodRestarts,attr"`
	WindowID                string   `xml:"windowId,attr"`
	AdministrationCondition string   `xml:"administrationCondition,attr"`
	EffectiveDate           string   `xml:"effectiveDate,attr"`
	Segment                 *segmentElem `xml:"Segment"`
	Items                   []itemElem   `xml:"Item"`
}

type tdsReport struct {
	XMLName     xml.Name `xml:"TDSReport"`
	Test        testElem
	Examinee    examineeElem
	Opportunity opportunityElem
}

func (w *Writer) writeOutcome(out *domain.AssessmentOutcome) error {
	doc := buildReport(out)

	path, err := w.outcomePath(out)
	if err != nil {
		return err
	}
	raw, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal outcome %s: %w", out.Guid, err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write outcome %s: %w", out.Guid, err)
	}
	return nil
}

// outcomePath derives the document path from state code, district guid,
// school guid and outcome guid, creating parent folders.
func (w *Writer) outcomePath(out *domain.AssessmentOutcome) (string, error) {
	dir := filepath.Join(w.root,
		out.Hierarchy.State.Code,
		out.Hierarchy.District.Guid,
		out.Hierarchy.School.Guid,
	)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create outcome dir %s: %w", dir, err)
	}
	return filepath.Join(dir, out.Guid+".xml"), nil
}

func buildReport(out *domain.AssessmentOutcome) tdsReport {
	asmt := out.Assessment
	student := out.Student
	hier := out.Hierarchy
	contextDate := out.StatusDate.Format("2006-01-02")

	doc := tdsReport{
		Test: testElem{
			TestID:            asmt.ID,
			Name:              asmt.Name,
			BankKey:           asmt.BankKey,
			Subject:           asmt.Subject,
			Grade:             fmt.Sprintf("%02d", asmt.Grade),
			AssessmentType:    mapAsmtType(asmt.Type),
			AcademicYear:      strconv.Itoa(asmt.Year),
			AssessmentVersion: asmt.Version,
			Contract:          asmt.Contract,
			Mode:              asmt.Mode,
		},
		Examinee: examineeElem{Key: formatInt64(student.RecID)},
	}

	attr := func(name, value string) {
		if value == "" {
			return
		}
		doc.Examinee.Attributes = append(doc.Examinee.Attributes, examineeAttribute{
			Context: "FINAL", Name: name, Value: value, ContextDate: contextDate,
		})
	}
	attr("StudentIdentifier", student.ExternalSSID)
	attr("Birthdate", student.DOB.Format("2006-01-02"))
	attr("FirstName", student.FirstName)
	attr("MiddleName", student.MiddleName)
	attr("LastOrSurname", student.LastName)
	attr("Sex", mapGender(student.Gender))
	attr("GradeLevelWhenAssessed", fmt.Sprintf("%02d", student.Grade))
	attr("HispanicOrLatinoEthnicity", mapYesNo(student.EthHispanic))
	attr("AmericanIndianOrAlaskaNative", mapYesNo(student.EthAmerInd))
	attr("Asian", mapYesNo(student.EthAsian))
	attr("BlackOrAfricanAmerican", mapYesNo(student.EthBlack))
	attr("White", mapYesNo(student.EthWhite))
	attr("NativeHawaiianOrOtherPacificIslander", mapYesNo(student.EthPacific))
	attr("DemographicRaceTwoOrMoreRaces", mapYesNo(student.EthMulti))
	attr("IDEAIndicator", mapYesNo(student.PrgIEP))
	attr("LEPStatus", mapYesNo(student.PrgLEP))
	attr("Section504Status", mapYesNo(student.PrgSec504))
	attr("EconomicDisadvantageStatus", mapYesNo(student.PrgEconDisad))
	attr("LanguageCode", student.LangCode)
	attr("EnglishLanguageProficiencyLevel", student.LangProfLevel)

	rel := func(name, value string) {
		if value == "" {
			return
		}
		doc.Examinee.Relationships = append(doc.Examinee.Relationships, examineeRelationship{
			Context: "FINAL", Name: name, Value: value, ContextDate: contextDate,
		})
	}
	rel("StateAbbreviation", hier.State.Code)
	rel("StateName", hier.State.Name)
	rel("DistrictId", hier.District.Guid)
	rel("DistrictName", hier.District.Name)
	rel("SchoolId", hier.School.Guid)
	rel("SchoolName", hier.School.Name)

	doc.Opportunity = opportunityElem{
		Server:                  out.Server,
		Database:                out.Database,
		ClientName:              out.ClientName,
		Status:                  out.Status,
		Completeness:            out.Completeness,
		Key:                     out.Guid,
		OppID:                   formatInt64(out.RecID),
		Opportunity:             "5",
		StartDate:               out.StartDate.Format("2006-01-02"),
		StatusDate:              out.StatusDate.Format("2006-01-02"),
		DateCompleted:           out.SubmitDate.Format("2006-01-02"),
		ItemCount:               strconv.Itoa(len(out.ItemData)),
		FTCount:                 "0",
		PauseCount:              "0",
		AbnormalStarts:          "0",
		GracePeriodRestarts:     "0",
		WindowID:                "WINDOW_ID",
		AdministrationCondition: "Valid",
		EffectiveDate:           asmt.EffectiveDate.Format("2006-01-02"),
	}

	if asmt.Segment != nil {
		doc.Opportunity.Segment = &segmentElem{
			ID:               asmt.Segment.ID,
			Position:         strconv.Itoa(asmt.Segment.Position),
			Algorithm:        asmt.Segment.Algorithm,
			AlgorithmVersion: asmt.Segment.AlgorithmVersion,
		}
	}

	for _, data := range out.ItemData {
		doc.Opportunity.Items = append(doc.Opportunity.Items, itemElem{
			BankKey:          data.Item.BankKey,
			Key:              data.Item.ItemKey,
			Position:         strconv.Itoa(data.Position),
			SegmentID:        data.SegmentID,
			Format:           data.Format,
			Operational:      data.Item.Operational,
			IsSelected:       formatFlag(data.IsSelected),
			AdminDate:        data.AdminDate.Format("2006-01-02"),
			NumberVisits:     strconv.Itoa(data.NumberVisits),
			PageNumber:       strconv.Itoa(data.PageNumber),
			PageVisits:       strconv.Itoa(data.PageVisits),
			PageTime:         strconv.Itoa(data.PageTime),
			ResponseDuration: strconv.FormatFloat(float64(data.PageTime)/1000.0, 'f', -1, 64),
			Dropped:          data.Dropped,
			Score:            strconv.Itoa(data.Score),
			ScoreStatus:      data.ScoreStatus,
			MimeType:         "text/plain",
			Response: responseElem{
				Date:  data.ResponseDate.Format("2006-01-02"),
				Type:  "value",
				Value: data.ResponseValue,
			},
		})
	}

	return doc
}

func mapAsmtType(value string) string {
	lower := strings.ToLower(value)
	switch {
	case strings.Contains(lower, "summative"):
		return "SUM"
	case strings.Contains(lower, "block"):
		return "IAB"
	default:
		return "ICA"
	}
}

func mapGender(value string) string {
	switch strings.ToLower(value) {
	case "female":
		return "Female"
	case "male":
		return "Male"
	}
	return ""
}

func mapYesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}

func formatFlag(value bool) string {
	if value {
		return "1"
	}
	return "0"
}

func formatInt64(v int64) string {
	return strconv.FormatInt(v, 10)
}
