package domain

import "time"

// Student is one enrolled examinee. Consumed read-only by the outcome
// engine; demographic and program flags feed the writers.
type Student struct {
	RecID        int64
	Guid         string
	ExternalSSID string

	FirstName  string
	MiddleName string
	LastName   string
	DOB        time.Time
	Gender     string
	Grade      int

	School *School

	EthHispanic bool
	EthAmerInd  bool
	EthAsian    bool
	EthBlack    bool
	EthWhite    bool
	EthPacific  bool
	EthMulti    bool

	PrgIEP       bool
	PrgSec504    bool
	PrgLEP       bool
	PrgEconDisad bool

	LangCode      string
	LangProfLevel string

	HeldBack bool
}
