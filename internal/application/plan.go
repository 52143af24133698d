package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/linskybing/project-review/internal/domain/project"
	"github.com/linskybing/project-review/internal/repository"
	"go.uber.org/zap"
)

type PlanService struct {
	lifecycle
}

func NewPlanService(repos *repository.Repos, log *zap.Logger) *PlanService {
	return &PlanService{lifecycle: newLifecycle(repos, log)}
}

func planFromDTO(projectID uint, in project.PlanDTO) *project.Plan {
	return &project.Plan{
		ProjectID:           projectID,
		Goal:                in.Goal,
		Content:             in.Content,
		StartDate:           in.StartDate.Model(),
		EndDate:             in.EndDate.Model(),
		IncludeResultReport: in.IncludeResultReport,
		IncludeCode:         in.IncludeCode,
		IncludeOutcome:      in.IncludeOutcome,
		IncludeOthers:       in.IncludeOthers,
	}
}

// validatePeriod requires both dates and an end on or after the start.
func validatePeriod(in project.PlanDTO) error {
	if in.StartDate.IsZero() || in.EndDate.IsZero() {
		return ErrPlanDatesMissing
	}
	if in.EndDate.Before(in.StartDate) {
		return fmt.Errorf("%w: %s is before %s", ErrPlanPeriod, in.EndDate, in.StartDate)
	}
	return nil
}

func (s *PlanService) createPlan(ctx context.Context, tx *repository.Repos, p *project.Project, in project.PlanDTO) error {
	// the lock serializes concurrent creates on the same project
	if _, err := tx.Status.GetForUpdate(ctx, p.ID); err != nil {
		return fmt.Errorf("lock status: %w", err)
	}
	_, err := tx.Document.FindPlan(ctx, p.ID)
	if err == nil {
		return ErrDocumentExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("load plan: %w", err)
	}
	if err := tx.Document.CreatePlan(ctx, planFromDTO(p.ID, in)); err != nil {
		return fmt.Errorf("create plan: %w", err)
	}
	return nil
}

func (s *PlanService) modifyPlan(ctx context.Context, tx *repository.Repos, p *project.Project, existing *project.Plan, in project.PlanDTO) error {
	if err := s.prepareModify(ctx, tx, p.ID, project.DocumentPlan); err != nil {
		return err
	}
	plan := planFromDTO(p.ID, in)
	plan.CreatedAt = existing.CreatedAt
	if err := tx.Document.SavePlan(ctx, plan); err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	return nil
}

func (s *PlanService) CreatePlan(ctx context.Context, caller Caller, uuid string, in project.PlanDTO) error {
	if err := validatePeriod(in); err != nil {
		return err
	}
	err := s.Repos.WithTransaction(ctx, func(tx *repository.Repos) error {
		p, err := s.findEditable(ctx, tx, uuid, caller)
		if err != nil {
			return err
		}
		return s.createPlan(ctx, tx, p, in)
	})
	return internal(err)
}

func (s *PlanService) GetPlan(ctx context.Context, caller Caller, uuid string) (*project.PlanView, error) {
	p, err := s.findProject(ctx, s.Repos, uuid)
	if err != nil {
		return nil, internal(err)
	}
	plan, err := s.Repos.Document.FindPlan(ctx, p.ID)
	if err != nil {
		return nil, internal(notFoundAs(err, ErrPlanNotFound))
	}
	status, err := documentStatus(p, project.DocumentPlan)
	if err != nil {
		return nil, err
	}

	return &project.PlanView{
		PlanDTO: project.PlanDTO{
			Goal:                plan.Goal,
			Content:             plan.Content,
			StartDate:           project.DateOf(plan.StartDate),
			EndDate:             project.DateOf(plan.EndDate),
			IncludeResultReport: plan.IncludeResultReport,
			IncludeCode:         plan.IncludeCode,
			IncludeOutcome:      plan.IncludeOutcome,
			IncludeOthers:       plan.IncludeOthers,
		},
		ProjectName:   p.Name,
		CreatedAt:     plan.CreatedAt,
		Status:        status,
		RequestorType: string(s.Policy.Classify(p.MemberUUIDs(), caller)),
	}, nil
}

func (s *PlanService) ModifyPlan(ctx context.Context, caller Caller, uuid string, in project.PlanDTO) error {
	if err := validatePeriod(in); err != nil {
		return err
	}
	err := s.Repos.WithTransaction(ctx, func(tx *repository.Repos) error {
		p, err := s.findEditable(ctx, tx, uuid, caller)
		if err != nil {
			return err
		}
		existing, err := tx.Document.FindPlan(ctx, p.ID)
		if err != nil {
			return notFoundAs(err, ErrPlanNotFound)
		}
		return s.modifyPlan(ctx, tx, p, existing, in)
	})
	return internal(err)
}

// CreateOrModifyPlan is the collaborative editing entry point: it creates the
// plan on first save and modifies it afterwards.
func (s *PlanService) CreateOrModifyPlan(ctx context.Context, caller Caller, uuid string, in project.PlanDTO) error {
	if err := validatePeriod(in); err != nil {
		return err
	}
	err := s.Repos.WithTransaction(ctx, func(tx *repository.Repos) error {
		p, err := s.findEditable(ctx, tx, uuid, caller)
		if err != nil {
			return err
		}
		existing, err := tx.Document.FindPlan(ctx, p.ID)
		switch {
		case err == nil:
			return s.modifyPlan(ctx, tx, p, existing, in)
		case errors.Is(err, repository.ErrNotFound):
			return s.createPlan(ctx, tx, p, in)
		default:
			return fmt.Errorf("load plan: %w", err)
		}
	})
	return internal(err)
}

// DeletePlan removes the plan row. The status ledger is left as is.
func (s *PlanService) DeletePlan(ctx context.Context, caller Caller, uuid string) error {
	err := s.Repos.WithTransaction(ctx, func(tx *repository.Repos) error {
		p, err := s.findEditable(ctx, tx, uuid, caller)
		if err != nil {
			return err
		}
		return notFoundAs(tx.Document.DeletePlan(ctx, p.ID), ErrPlanNotFound)
	})
	return internal(err)
}

func (s *PlanService) SubmitPlan(ctx context.Context, caller Caller, uuid string) error {
	err := s.Repos.WithTransaction(ctx, func(tx *repository.Repos) error {
		p, err := s.findEditable(ctx, tx, uuid, caller)
		if err != nil {
			return err
		}
		if _, err := tx.Document.FindPlan(ctx, p.ID); err != nil {
			return notFoundAs(err, ErrPlanNotFound)
		}
		return s.submitDocument(ctx, tx, p.ID, project.DocumentPlan)
	})
	return internal(err)
}
