package errors

import "errors"

var (
	// ErrInvalidArgument is a generic sentinel for out-of-contract input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownSubject marks an assessment request for a subject the
	// claim/scoring tables do not define.
	ErrUnknownSubject = errors.New("unknown subject")
	// ErrUnsupportedAssessmentType marks an assessment request for a type
	// outside SUMMATIVE / INTERIM COMPREHENSIVE / IAB.
	ErrUnsupportedAssessmentType = errors.New("unsupported assessment type")
)
