package repository

import (
	"context"
	"fmt"

	"github.com/linskybing/project-review/internal/domain/project"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectStore interface {
	Create(ctx context.Context, p *project.Project) error
	// FindByUUID loads the project with its writer, members and status.
	FindByUUID(ctx context.Context, uuid string) (*project.Project, error)
	Update(ctx context.Context, p *project.Project) error
	Delete(ctx context.Context, id uint) error
	IncreaseViewCount(ctx context.Context, id uint) error
	ListDone(ctx context.Context, order project.FeedOrder, page, limit int) ([]project.Project, int64, error)
	SearchByName(ctx context.Context, keyword string, page, limit int) ([]project.Project, int64, error)
	SearchByMember(ctx context.Context, keyword string, page, limit int) ([]project.Project, int64, error)
	// ListPending returns projects with a document awaiting review. A non-nil
	// memberID limits the result to projects that user belongs to.
	ListPending(ctx context.Context, memberID *uint, page, limit int) ([]project.Project, int64, error)
	// ListByMember returns the projects a user belongs to, newest first, with
	// members loaded. onlyDone keeps finished projects only.
	ListByMember(ctx context.Context, memberID uint, onlyDone bool, page, limit int) ([]project.Project, int64, error)
	// ListByReviewState returns the plans and reports of the user's projects
	// that are in the given state, latest submission first.
	ListByReviewState(ctx context.Context, memberID uint, state project.DocumentState, page, limit int) ([]project.ReviewRow, int64, error)
}

type DBProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *DBProjectRepo {
	return &DBProjectRepo{
		db: db,
	}
}

func (r *DBProjectRepo) Create(ctx context.Context, p *project.Project) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error
}

func (r *DBProjectRepo) FindByUUID(ctx context.Context, uuid string) (*project.Project, error) {
	var p project.Project
	err := r.db.WithContext(ctx).
		Preload("Writer").
		Preload("Members.User").
		Preload("Status").
		Where("uuid = ?", uuid).
		First(&p).Error
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *DBProjectRepo) Update(ctx context.Context, p *project.Project) error {
	return r.db.WithContext(ctx).Model(&project.Project{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"name":          p.Name,
			"description":   p.Description,
			"result":        p.Result,
			"category":      p.Category,
			"field":         p.Field,
			"thumbnail_url": p.ThumbnailURL,
			"emoji":         p.Emoji,
		}).Error
}

// Delete relies on the foreign key cascades to remove members, documents and status.
func (r *DBProjectRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&project.Project{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DBProjectRepo) IncreaseViewCount(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&project.Project{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}

func (r *DBProjectRepo) doneQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&project.Project{}).
		Joins("JOIN statuses s ON s.project_id = projects.id").
		Where("s.is_report_accepted = ?", true)
}

func (r *DBProjectRepo) ListDone(ctx context.Context, order project.FeedOrder, page, limit int) ([]project.Project, int64, error) {
	q := r.doneQuery(ctx)
	if order == project.FeedPopularity {
		q = q.Order("projects.view_count DESC").Order("projects.created_at DESC")
	} else {
		q = q.Order("projects.created_at DESC")
	}
	return paginate(q, page, limit)
}

func (r *DBProjectRepo) SearchByName(ctx context.Context, keyword string, page, limit int) ([]project.Project, int64, error) {
	q := r.doneQuery(ctx).
		Where("projects.name ILIKE ?", "%"+keyword+"%").
		Order("projects.created_at DESC")
	return paginate(q, page, limit)
}

func (r *DBProjectRepo) SearchByMember(ctx context.Context, keyword string, page, limit int) ([]project.Project, int64, error) {
	sub := r.db.Table("members m").
		Select("m.project_id").
		Joins("JOIN users u ON u.id = m.user_id").
		Where("u.name ILIKE ?", "%"+keyword+"%")
	q := r.doneQuery(ctx).
		Where("projects.id IN (?)", sub).
		Order("projects.created_at DESC")
	return paginate(q, page, limit)
}

func (r *DBProjectRepo) ListPending(ctx context.Context, memberID *uint, page, limit int) ([]project.Project, int64, error) {
	q := r.db.WithContext(ctx).Model(&project.Project{}).
		Joins("JOIN statuses s ON s.project_id = projects.id").
		Where(
			r.db.Where("s.is_plan_submitted = ? AND s.is_plan_accepted IS NULL", true).
				Or("s.is_report_submitted = ? AND s.is_report_accepted IS NULL", true),
		)
	if memberID != nil {
		q = q.Where("projects.id IN (?)",
			r.db.Table("members").Select("project_id").Where("user_id = ?", *memberID))
	}
	q = q.Order("COALESCE(s.report_submitted_at, s.plan_submitted_at) ASC")
	return paginate(q, page, limit)
}

func (r *DBProjectRepo) ListByMember(ctx context.Context, memberID uint, onlyDone bool, page, limit int) ([]project.Project, int64, error) {
	q := r.db.WithContext(ctx).Model(&project.Project{})
	if onlyDone {
		q = r.doneQuery(ctx)
	}
	q = q.Where("projects.id IN (?)",
		r.db.Table("members").Select("project_id").Where("user_id = ?", memberID)).
		Order("projects.created_at DESC").
		Order("projects.id DESC")
	return paginate(q, page, limit, "Members.User")
}

// reviewQuery selects one document type of the member's projects whose flags
// match the state. A NULL accepted flag cannot be bound as a parameter, so it
// is spelled out.
func reviewQuery(t project.DocumentType, state project.DocumentState) string {
	table, prefix := "plans", "plan"
	if t == project.DocumentReport {
		table, prefix = "reports", "report"
	}
	_, accepted := state.Flags()
	acceptedCond := fmt.Sprintf("s.is_%s_accepted IS NULL", prefix)
	if accepted != nil {
		acceptedCond = fmt.Sprintf("s.is_%s_accepted = @accepted", prefix)
	}
	return fmt.Sprintf(`SELECT p.id AS project_id, p.uuid, p.name, p.thumbnail_url, p.emoji,
	'%[1]s' AS document_type, s.%[1]s_submitted_at AS submitted_at
FROM projects p
JOIN members m ON m.project_id = p.id AND m.user_id = @member
JOIN statuses s ON s.project_id = p.id
JOIN %[2]s d ON d.project_id = p.id
WHERE s.is_%[1]s_submitted = @submitted AND %[3]s`, prefix, table, acceptedCond)
}

func (r *DBProjectRepo) ListByReviewState(ctx context.Context, memberID uint, state project.DocumentState, page, limit int) ([]project.ReviewRow, int64, error) {
	submitted, accepted := state.Flags()
	args := map[string]interface{}{
		"member":    memberID,
		"submitted": submitted,
	}
	if accepted != nil {
		args["accepted"] = *accepted
	}
	union := reviewQuery(project.DocumentPlan, state) + "\nUNION ALL\n" + reviewQuery(project.DocumentReport, state)

	var total int64
	if err := r.db.WithContext(ctx).Raw("SELECT COUNT(*) FROM ("+union+") docs", args).Scan(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	args["limit"] = limit
	args["offset"] = (page - 1) * limit
	var rows []project.ReviewRow
	err := r.db.WithContext(ctx).
		Raw(union+"\nORDER BY submitted_at DESC NULLS LAST, project_id DESC, document_type DESC LIMIT @limit OFFSET @offset", args).
		Scan(&rows).Error
	return rows, total, err
}

func paginate(q *gorm.DB, page, limit int, preloads ...string) ([]project.Project, int64, error) {
	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	q = q.Preload("Writer").Preload("Status")
	for _, p := range preloads {
		q = q.Preload(p)
	}
	var projects []project.Project
	err := q.Offset((page - 1) * limit).Limit(limit).Find(&projects).Error
	return projects, total, err
}
