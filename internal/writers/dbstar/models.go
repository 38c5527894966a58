package dbstar

import (
	"time"

	"gorm.io/datatypes"
)

// Row models for the relational star schema. Claim payloads are JSON
// columns; the reporting queries unpack them with the database's JSON
// operators.

type DimAsmt struct {
	AsmtRecID     int64          `gorm:"column:asmt_rec_id;primaryKey"`
	AsmtGuid      string         `gorm:"column:asmt_guid;index"`
	AsmtType      string         `gorm:"column:asmt_type"`
	Subject       string         `gorm:"column:asmt_subject"`
	Grade         int            `gorm:"column:asmt_grade"`
	Year          int            `gorm:"column:asmt_period_year"`
	Version       string         `gorm:"column:asmt_version"`
	EffectiveDate time.Time      `gorm:"column:effective_date"`
	FromDate      time.Time      `gorm:"column:from_date"`
	ToDate        time.Time      `gorm:"column:to_date"`
	ScoreMin      int            `gorm:"column:asmt_score_min"`
	ScoreMax      int            `gorm:"column:asmt_score_max"`
	CutPoints     datatypes.JSON `gorm:"column:cut_points"`
	ClaimNames    datatypes.JSON `gorm:"column:claim_names"`
	RecStatus     string         `gorm:"column:rec_status"`
	BatchGuid     string         `gorm:"column:batch_guid"`
}

func (DimAsmt) TableName() string { return "dim_asmt" }

type DimHier struct {
	InstHierRecID int64  `gorm:"column:inst_hier_rec_id;primaryKey"`
	InstHierGuid  string `gorm:"column:inst_hier_guid"`
	StateCode     string `gorm:"column:state_code"`
	StateName     string `gorm:"column:state_name"`
	DistrictID    string `gorm:"column:district_id"`
	DistrictName  string `gorm:"column:district_name"`
	SchoolID      string `gorm:"column:school_id"`
	SchoolName    string `gorm:"column:school_name"`
	RecStatus     string `gorm:"column:rec_status"`
	BatchGuid     string `gorm:"column:batch_guid"`
}

func (DimHier) TableName() string { return "dim_hier" }

type DimStudent struct {
	StudentRecID int64          `gorm:"column:student_rec_id;primaryKey"`
	StudentGuid  string         `gorm:"column:student_guid;index"`
	ExternalSSID string         `gorm:"column:external_student_id"`
	FirstName    string         `gorm:"column:first_name"`
	MiddleName   string         `gorm:"column:middle_name"`
	LastName     string         `gorm:"column:last_name"`
	Birthdate    time.Time      `gorm:"column:birthdate"`
	Sex          string         `gorm:"column:sex"`
	Grade        int            `gorm:"column:grade"`
	LangCode     string         `gorm:"column:lang_code"`
	StateCode    string         `gorm:"column:state_code"`
	DistrictID   string         `gorm:"column:district_id"`
	SchoolID     string         `gorm:"column:school_id"`
	SchoolName   string         `gorm:"column:school_name"`
	Demographics datatypes.JSON `gorm:"column:demographics"`
	RecStatus    string         `gorm:"column:rec_status"`
	BatchGuid    string         `gorm:"column:batch_guid"`
}

func (DimStudent) TableName() string { return "dim_student" }

type FactAsmtOutcome struct {
	AsmtOutcomeRecID int64          `gorm:"column:asmt_outcome_rec_id;primaryKey"`
	AsmtRecID        int64          `gorm:"column:asmt_rec_id;index"`
	StudentRecID     int64          `gorm:"column:student_rec_id;index"`
	InstHierRecID    int64          `gorm:"column:inst_hier_rec_id"`
	AsmtGuid         string         `gorm:"column:asmt_guid;index"`
	StudentGuid      string         `gorm:"column:student_guid"`
	StateCode        string         `gorm:"column:state_code"`
	DistrictID       string         `gorm:"column:district_id"`
	SchoolID         string         `gorm:"column:school_id"`
	AsmtGrade        int            `gorm:"column:asmt_grade"`
	EnrlGrade        int            `gorm:"column:enrl_grade"`
	DateTaken        time.Time      `gorm:"column:date_taken"`
	Score            int            `gorm:"column:asmt_score"`
	ScoreRangeMin    int            `gorm:"column:asmt_score_range_min"`
	ScoreRangeMax    int            `gorm:"column:asmt_score_range_max"`
	PerfLevel        int            `gorm:"column:asmt_perf_lvl"`
	ClaimScores      datatypes.JSON `gorm:"column:claim_scores"`
	Accommodations   datatypes.JSON `gorm:"column:accommodations"`
	RecStatus        string         `gorm:"column:rec_status"`
	BatchGuid        string         `gorm:"column:batch_guid"`
}

func (FactAsmtOutcome) TableName() string { return "fact_asmt_outcome" }

// FactBlockAsmtOutcome carries IAB outcomes, which have no claim payload.
type FactBlockAsmtOutcome struct {
	BlockAsmtOutcomeRecID int64          `gorm:"column:block_asmt_outcome_rec_id;primaryKey"`
	AsmtRecID             int64          `gorm:"column:asmt_rec_id;index"`
	StudentRecID          int64          `gorm:"column:student_rec_id;index"`
	InstHierRecID         int64          `gorm:"column:inst_hier_rec_id"`
	AsmtGuid              string         `gorm:"column:asmt_guid;index"`
	StudentGuid           string         `gorm:"column:student_guid"`
	StateCode             string         `gorm:"column:state_code"`
	DistrictID            string         `gorm:"column:district_id"`
	SchoolID              string         `gorm:"column:school_id"`
	AsmtGrade             int            `gorm:"column:asmt_grade"`
	EnrlGrade             int            `gorm:"column:enrl_grade"`
	DateTaken             time.Time      `gorm:"column:date_taken"`
	Score                 int            `gorm:"column:asmt_score"`
	ScoreRangeMin         int            `gorm:"column:asmt_score_range_min"`
	ScoreRangeMax         int            `gorm:"column:asmt_score_range_max"`
	PerfLevel             int            `gorm:"column:asmt_perf_lvl"`
	Accommodations        datatypes.JSON `gorm:"column:accommodations"`
	RecStatus             string         `gorm:"column:rec_status"`
	BatchGuid             string         `gorm:"column:batch_guid"`
}

func (FactBlockAsmtOutcome) TableName() string { return "fact_block_asmt_outcome" }
