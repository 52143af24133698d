package project

import (
	"time"
)

type MemberDTO struct {
	UserUUID string `json:"user_uuid" binding:"required,uuid" validate:"required,uuid"`
	Role     string `json:"role" binding:"required,max=20" validate:"required,max=20"`
}

type CreateProjectDTO struct {
	Name         string      `json:"name" binding:"required,max=45"`
	Description  *string     `json:"description,omitempty" binding:"omitempty,max=250"`
	Category     Category    `json:"category" binding:"required,oneof=PERSONAL TEAM CLUB"`
	Field        string      `json:"field" binding:"required,max=20"`
	ThumbnailURL *string     `json:"thumbnail_url,omitempty"`
	Emoji        *string     `json:"emoji,omitempty"`
	Role         string      `json:"role" binding:"required,max=20"` // writer's own role
	Members      []MemberDTO `json:"members" binding:"dive"`
}

type UpdateProjectDTO struct {
	Name         *string   `json:"name,omitempty" binding:"omitempty,max=45"`
	Description  *string   `json:"description,omitempty" binding:"omitempty,max=250"`
	Result       *string   `json:"result,omitempty" binding:"omitempty,max=250"`
	Category     *Category `json:"category,omitempty" binding:"omitempty,oneof=PERSONAL TEAM CLUB"`
	Field        *string   `json:"field,omitempty" binding:"omitempty,max=20"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	Emoji        *string   `json:"emoji,omitempty"`
	// Members replaces the whole membership when present. Role is required with it.
	Role    *string      `json:"role,omitempty" binding:"omitempty,max=20"`
	Members *[]MemberDTO `json:"members,omitempty" binding:"omitempty,dive"`
}

type ConfirmDTO struct {
	Type  DocumentType `form:"type" binding:"required,oneof=plan report"`
	Value *bool        `form:"value" binding:"required"`
}

type PlanDTO struct {
	Goal                string  `json:"goal" binding:"required,max=4000" validate:"required,max=4000"`
	Content             string  `json:"content" binding:"required,max=10000" validate:"required,max=10000"`
	StartDate           Date    `json:"start_date" swaggertype:"string" format:"date" example:"2024-03-01"`
	EndDate             Date    `json:"end_date" swaggertype:"string" format:"date" example:"2024-06-30"`
	IncludeResultReport bool    `json:"include_result_report"`
	IncludeCode         bool    `json:"include_code"`
	IncludeOutcome      bool    `json:"include_outcome"`
	IncludeOthers       *string `json:"include_others,omitempty" binding:"omitempty,max=15" validate:"omitempty,max=15"`
}

type ReportDTO struct {
	Subject string `json:"subject" binding:"required,max=40" validate:"required,max=40"`
	Content string `json:"content" binding:"required,max=15000" validate:"required,max=15000"`
}

type UserSummary struct {
	UUID      string `json:"uuid"`
	Name      string `json:"name"`
	StudentNo int    `json:"student_no"`
}

type MemberView struct {
	UserSummary
	Role string `json:"role"`
}

// ProjectView is what GetProject returns: the project, its derived status and
// the caller's requestor type.
type ProjectView struct {
	UUID          string         `json:"uuid"`
	Name          string         `json:"name"`
	Description   *string        `json:"description,omitempty"`
	Result        *string        `json:"result,omitempty"`
	Category      Category       `json:"category"`
	Field         string         `json:"field"`
	ViewCount     int            `json:"view_count"`
	ThumbnailURL  *string        `json:"thumbnail_url,omitempty"`
	Emoji         *string        `json:"emoji,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	Writer        UserSummary    `json:"writer"`
	Members       []MemberView   `json:"members"`
	Status        ProjectStatus  `json:"status"`
	PlanStatus    DocumentStatus `json:"plan_status"`
	ReportStatus  DocumentStatus `json:"report_status"`
	RequestorType string         `json:"requestor_type"`
}

type PlanView struct {
	PlanDTO
	ProjectName   string         `json:"project_name"`
	CreatedAt     time.Time      `json:"created_at"`
	Status        DocumentStatus `json:"status"`
	RequestorType string         `json:"requestor_type"`
}

type ReportView struct {
	ReportDTO
	ProjectName   string         `json:"project_name"`
	CreatedAt     time.Time      `json:"created_at"`
	Status        DocumentStatus `json:"status"`
	RequestorType string         `json:"requestor_type"`
}

type FeedOrder string

const (
	FeedRecently   FeedOrder = "recently"
	FeedPopularity FeedOrder = "popularity"
)

// SearchBy selects which column a feed search matches on.
type SearchBy string

const (
	SearchByProjectName SearchBy = "projectName"
	SearchByMemberName  SearchBy = "memberName"
)

type FeedQuery struct {
	Order FeedOrder `form:"order" binding:"required,oneof=recently popularity"`
	Page  int       `form:"page" binding:"required,min=1"`
	Limit int       `form:"limit" binding:"required,min=1,max=100"`
}

type SearchQuery struct {
	Keyword  string   `form:"keyword" binding:"required"`
	SearchBy SearchBy `form:"search_by" binding:"omitempty,oneof=projectName memberName"`
	Page     int      `form:"page" binding:"required,min=1"`
	Limit    int      `form:"limit" binding:"required,min=1,max=100"`
}

type PageQuery struct {
	Page  int `form:"page" binding:"required,min=1"`
	Limit int `form:"limit" binding:"required,min=1,max=100"`
}

type FeedItem struct {
	UUID         string   `json:"uuid"`
	ThumbnailURL *string  `json:"thumbnail_url,omitempty"`
	Name         string   `json:"name"`
	Category     Category `json:"category"`
	Field        string   `json:"field"`
	ViewCount    int      `json:"view_count"`
}

type FeedPage struct {
	Count    int64      `json:"count"`
	Projects []FeedItem `json:"projects"`
}

type SearchResult map[SearchBy]FeedPage

type PendingItem struct {
	UUID        string      `json:"uuid"`
	Name        string      `json:"name"`
	Category    Category    `json:"category"`
	ReportType  string      `json:"report_type"` // PLAN or REPORT
	SubmittedAt *time.Time  `json:"submitted_at,omitempty"`
	Writer      UserSummary `json:"writer"`
}

type PendingPage struct {
	Count    int64         `json:"count"`
	Projects []PendingItem `json:"projects"`
}

func (p *Project) FeedItem() FeedItem {
	return FeedItem{
		UUID:         p.UUID,
		ThumbnailURL: p.ThumbnailURL,
		Name:         p.Name,
		Category:     p.Category,
		Field:        p.Field,
		ViewCount:    p.ViewCount,
	}
}

// ReviewBucket groups a member's documents by review outcome.
type ReviewBucket string

const (
	BucketAccepted ReviewBucket = "accepted"
	BucketRejected ReviewBucket = "rejected"
	BucketPending  ReviewBucket = "pending"
	BucketWriting  ReviewBucket = "writing"
)

// ReviewBuckets is the order buckets are reported in.
var ReviewBuckets = []ReviewBucket{BucketAccepted, BucketRejected, BucketPending, BucketWriting}

// State maps the bucket to the document state it lists.
func (b ReviewBucket) State() (DocumentState, bool) {
	switch b {
	case BucketAccepted:
		return DocumentAccepted, true
	case BucketRejected:
		return DocumentRejected, true
	case BucketPending:
		return DocumentPending, true
	case BucketWriting:
		return DocumentDraft, true
	}
	return 0, false
}

// ReviewRow is one document of a project, as listed on a profile.
type ReviewRow struct {
	ProjectID    uint
	UUID         string
	Name         string
	ThumbnailURL *string
	Emoji        *string
	Type         DocumentType `gorm:"column:document_type"`
	SubmittedAt  *time.Time
}

type ReviewItem struct {
	UUID         string     `json:"uuid"`
	Name         string     `json:"name"`
	ThumbnailURL *string    `json:"thumbnail_url,omitempty"`
	Emoji        *string    `json:"emoji,omitempty"`
	Type         string     `json:"type"` // PLAN or REPORT
	SubmittedAt  *time.Time `json:"submitted_at,omitempty"`
}

type ReviewPage struct {
	Count     int64        `json:"count"`
	Documents []ReviewItem `json:"documents"`
}

type ReviewSummary map[ReviewBucket]ReviewPage

type ProfileProject struct {
	UUID         string        `json:"uuid"`
	Name         string        `json:"name"`
	Description  *string       `json:"description,omitempty"`
	Category     Category      `json:"category"`
	Field        string        `json:"field"`
	ThumbnailURL *string       `json:"thumbnail_url,omitempty"`
	Emoji        *string       `json:"emoji,omitempty"`
	Status       ProjectStatus `json:"status"`
	Members      []UserSummary `json:"members"`
}

type ProfilePage struct {
	Count    int64            `json:"count"`
	Projects []ProfileProject `json:"projects"`
}

// ProfileQuery selects whose projects to list. An empty User means the caller.
type ProfileQuery struct {
	User  string `form:"user" binding:"omitempty,uuid"`
	Page  int    `form:"page" binding:"required,min=1"`
	Limit int    `form:"limit" binding:"required,min=1,max=100"`
}
