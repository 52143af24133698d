package project

import (
	"errors"
	"fmt"
	"time"
)

// ErrInconsistentLedger is returned when the stored flags describe a state
// no transition can produce.
var ErrInconsistentLedger = errors.New("inconsistent status ledger")

type DocumentType string

const (
	DocumentPlan   DocumentType = "plan"
	DocumentReport DocumentType = "report"
)

func (t DocumentType) Valid() bool {
	return t == DocumentPlan || t == DocumentReport
}

// DocumentState is the lifecycle position of one reviewable document.
// It is stored as a (submitted, accepted) flag pair; see Flags.
type DocumentState int

const (
	DocumentDraft DocumentState = iota
	DocumentPending
	DocumentAccepted
	DocumentRejected
)

func (s DocumentState) String() string {
	switch s {
	case DocumentDraft:
		return "DRAFT"
	case DocumentPending:
		return "PENDING"
	case DocumentAccepted:
		return "ACCEPTED"
	case DocumentRejected:
		return "REJECTED"
	}
	return fmt.Sprintf("DocumentState(%d)", int(s))
}

// DocumentStatus is the externally visible classification of a document.
type DocumentStatus string

const (
	StatusNotSubmitted DocumentStatus = "NOT_SUBMITTED"
	StatusPending      DocumentStatus = "PENDING"
	StatusAccepted     DocumentStatus = "ACCEPTED"
	StatusRejected     DocumentStatus = "REJECTED"
)

func (s DocumentState) Status() DocumentStatus {
	switch s {
	case DocumentPending:
		return StatusPending
	case DocumentAccepted:
		return StatusAccepted
	case DocumentRejected:
		return StatusRejected
	default:
		return StatusNotSubmitted
	}
}

// Flags maps the state back to the persisted flag pair.
func (s DocumentState) Flags() (submitted bool, accepted *bool) {
	switch s {
	case DocumentPending:
		return true, nil
	case DocumentAccepted:
		return true, boolPtr(true)
	case DocumentRejected:
		return false, boolPtr(false)
	default:
		return false, nil
	}
}

// StateFromFlags evaluates the ledger rows in order. The pair
// (submitted=true, accepted=false) matches no row.
func StateFromFlags(submitted bool, accepted *bool) (DocumentState, error) {
	switch {
	case !submitted && accepted == nil:
		return DocumentDraft, nil
	case submitted && accepted == nil:
		return DocumentPending, nil
	case *accepted:
		return DocumentAccepted, nil
	case !submitted && !*accepted:
		return DocumentRejected, nil
	}
	return 0, fmt.Errorf("%w: submitted=%t accepted=false", ErrInconsistentLedger, submitted)
}

func DocumentStatusOf(submitted bool, accepted *bool) (DocumentStatus, error) {
	state, err := StateFromFlags(submitted, accepted)
	if err != nil {
		return "", err
	}
	return state.Status(), nil
}

// ProjectStatus is derived from both document ledgers.
type ProjectStatus string

const (
	ProjectPlanning      ProjectStatus = "PLANNING"
	ProjectPendingPlan   ProjectStatus = "PENDING(PLAN)"
	ProjectReporting     ProjectStatus = "REPORTING"
	ProjectPendingReport ProjectStatus = "PENDING(REPORT)"
	ProjectDone          ProjectStatus = "DONE"
)

// Status is the per-project ledger row. It is created together with the
// project and never deleted on its own.
type Status struct {
	ProjectID         uint `gorm:"primaryKey;autoIncrement:false"`
	IsPlanSubmitted   bool `gorm:"not null;default:false"`
	IsPlanAccepted    *bool
	IsReportSubmitted bool `gorm:"not null;default:false"`
	IsReportAccepted  *bool
	PlanSubmittedAt   *time.Time
	ReportSubmittedAt *time.Time
}

func (Status) TableName() string {
	return "statuses"
}

func (s *Status) State(t DocumentType) (DocumentState, error) {
	if t == DocumentReport {
		return StateFromFlags(s.IsReportSubmitted, s.IsReportAccepted)
	}
	return StateFromFlags(s.IsPlanSubmitted, s.IsPlanAccepted)
}

func (s *Status) DocumentStatus(t DocumentType) (DocumentStatus, error) {
	state, err := s.State(t)
	if err != nil {
		return "", err
	}
	return state.Status(), nil
}

// SetState writes the flags of the given state. Entering Pending stamps
// the submission time.
func (s *Status) SetState(t DocumentType, state DocumentState, now time.Time) {
	submitted, accepted := state.Flags()
	var stamp *time.Time
	if state == DocumentPending {
		stamp = &now
	}

	if t == DocumentReport {
		s.IsReportSubmitted, s.IsReportAccepted = submitted, accepted
		if stamp != nil {
			s.ReportSubmittedAt = stamp
		}
		return
	}
	s.IsPlanSubmitted, s.IsPlanAccepted = submitted, accepted
	if stamp != nil {
		s.PlanSubmittedAt = stamp
	}
}

// SubmittedAt returns the submission time recorded for the document.
func (s *Status) SubmittedAt(t DocumentType) *time.Time {
	if t == DocumentReport {
		return s.ReportSubmittedAt
	}
	return s.PlanSubmittedAt
}

// DeriveProjectStatus evaluates the project rules top to bottom, first match wins.
func DeriveProjectStatus(s *Status) (ProjectStatus, error) {
	if s == nil {
		return "", fmt.Errorf("%w: missing status row", ErrInconsistentLedger)
	}
	switch {
	case !s.IsPlanSubmitted:
		return ProjectPlanning, nil
	case s.IsPlanSubmitted && s.IsPlanAccepted == nil:
		return ProjectPendingPlan, nil
	case isTrue(s.IsPlanAccepted) && !s.IsReportSubmitted:
		return ProjectReporting, nil
	case s.IsReportSubmitted && s.IsReportAccepted == nil:
		return ProjectPendingReport, nil
	case isTrue(s.IsReportAccepted):
		return ProjectDone, nil
	}
	return "", fmt.Errorf("%w: no project status matches", ErrInconsistentLedger)
}

func isTrue(b *bool) bool {
	return b != nil && *b
}

func boolPtr(b bool) *bool {
	return &b
}
