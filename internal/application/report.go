package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/linskybing/project-review/internal/config"
	"github.com/linskybing/project-review/internal/domain/project"
	"github.com/linskybing/project-review/internal/repository"
	"go.uber.org/zap"
)

type ReportService struct {
	lifecycle
	// RequireAcceptedPlan refuses to create a report before the plan is accepted.
	RequireAcceptedPlan bool
}

func NewReportService(repos *repository.Repos, log *zap.Logger) *ReportService {
	return &ReportService{
		lifecycle:           newLifecycle(repos, log),
		RequireAcceptedPlan: config.ReportRequiresAcceptedPlan,
	}
}

func (s *ReportService) createReport(ctx context.Context, tx *repository.Repos, p *project.Project, in project.ReportDTO) error {
	st, err := tx.Status.GetForUpdate(ctx, p.ID)
	if err != nil {
		return fmt.Errorf("lock status: %w", err)
	}
	_, err = tx.Document.FindReport(ctx, p.ID)
	if err == nil {
		return ErrDocumentExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("load report: %w", err)
	}

	if s.RequireAcceptedPlan {
		planState, err := st.State(project.DocumentPlan)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInternal, err)
		}
		if planState != project.DocumentAccepted {
			return ErrPlanNotAccepted
		}
	}

	report := &project.Report{ProjectID: p.ID, Subject: in.Subject, Content: in.Content}
	if err := tx.Document.CreateReport(ctx, report); err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	return nil
}

func (s *ReportService) modifyReport(ctx context.Context, tx *repository.Repos, p *project.Project, existing *project.Report, in project.ReportDTO) error {
	if err := s.prepareModify(ctx, tx, p.ID, project.DocumentReport); err != nil {
		return err
	}
	existing.Subject = in.Subject
	existing.Content = in.Content
	if err := tx.Document.SaveReport(ctx, existing); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}

func (s *ReportService) CreateReport(ctx context.Context, caller Caller, uuid string, in project.ReportDTO) error {
	err := s.Repos.WithTransaction(ctx, func(tx *repository.Repos) error {
		p, err := s.findEditable(ctx, tx, uuid, caller)
		if err != nil {
			return err
		}
		return s.createReport(ctx, tx, p, in)
	})
	return internal(err)
}

func (s *ReportService) GetReport(ctx context.Context, caller Caller, uuid string) (*project.ReportView, error) {
	p, err := s.findProject(ctx, s.Repos, uuid)
	if err != nil {
		return nil, internal(err)
	}
	report, err := s.Repos.Document.FindReport(ctx, p.ID)
	if err != nil {
		return nil, internal(notFoundAs(err, ErrReportNotFound))
	}
	status, err := documentStatus(p, project.DocumentReport)
	if err != nil {
		return nil, err
	}

	return &project.ReportView{
		ReportDTO:     project.ReportDTO{Subject: report.Subject, Content: report.Content},
		ProjectName:   p.Name,
		CreatedAt:     report.CreatedAt,
		Status:        status,
		RequestorType: string(s.Policy.Classify(p.MemberUUIDs(), caller)),
	}, nil
}

func (s *ReportService) ModifyReport(ctx context.Context, caller Caller, uuid string, in project.ReportDTO) error {
	err := s.Repos.WithTransaction(ctx, func(tx *repository.Repos) error {
		p, err := s.findEditable(ctx, tx, uuid, caller)
		if err != nil {
			return err
		}
		existing, err := tx.Document.FindReport(ctx, p.ID)
		if err != nil {
			return notFoundAs(err, ErrReportNotFound)
		}
		return s.modifyReport(ctx, tx, p, existing, in)
	})
	return internal(err)
}

func (s *ReportService) CreateOrModifyReport(ctx context.Context, caller Caller, uuid string, in project.ReportDTO) error {
	err := s.Repos.WithTransaction(ctx, func(tx *repository.Repos) error {
		p, err := s.findEditable(ctx, tx, uuid, caller)
		if err != nil {
			return err
		}
		existing, err := tx.Document.FindReport(ctx, p.ID)
		switch {
		case err == nil:
			return s.modifyReport(ctx, tx, p, existing, in)
		case errors.Is(err, repository.ErrNotFound):
			return s.createReport(ctx, tx, p, in)
		default:
			return fmt.Errorf("load report: %w", err)
		}
	})
	return internal(err)
}

// DeleteReport removes the report row. The status ledger is left as is.
func (s *ReportService) DeleteReport(ctx context.Context, caller Caller, uuid string) error {
	err := s.Repos.WithTransaction(ctx, func(tx *repository.Repos) error {
		p, err := s.findEditable(ctx, tx, uuid, caller)
		if err != nil {
			return err
		}
		return notFoundAs(tx.Document.DeleteReport(ctx, p.ID), ErrReportNotFound)
	})
	return internal(err)
}

func (s *ReportService) SubmitReport(ctx context.Context, caller Caller, uuid string) error {
	err := s.Repos.WithTransaction(ctx, func(tx *repository.Repos) error {
		p, err := s.findEditable(ctx, tx, uuid, caller)
		if err != nil {
			return err
		}
		if _, err := tx.Document.FindReport(ctx, p.ID); err != nil {
			return notFoundAs(err, ErrReportNotFound)
		}
		return s.submitDocument(ctx, tx, p.ID, project.DocumentReport)
	})
	return internal(err)
}
