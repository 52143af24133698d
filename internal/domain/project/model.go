package project

import (
	"time"

	"github.com/linskybing/project-review/internal/domain/user"
	"gorm.io/datatypes"
)

// Category is the kind of project. Personal projects have no co-members.
type Category string

const (
	CategoryPersonal Category = "PERSONAL"
	CategoryTeam     Category = "TEAM"
	CategoryClub     Category = "CLUB"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryPersonal, CategoryTeam, CategoryClub:
		return true
	}
	return false
}

// Project is the aggregate root. It is addressed externally by UUID.
type Project struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	UUID         string    `gorm:"size:36;not null;uniqueIndex"`
	Name         string    `gorm:"size:45;not null"`
	Description  *string   `gorm:"size:250"`
	Result       *string   `gorm:"size:250"`
	Category     Category  `gorm:"type:varchar(10);not null"`
	Field        string    `gorm:"size:20;not null"`
	ViewCount    int       `gorm:"not null;default:0"`
	ThumbnailURL *string   `gorm:"size:200"`
	Emoji        *string   `gorm:"size:4"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	WriterID     uint      `gorm:"not null;index"`
	Writer       user.User `gorm:"foreignKey:WriterID"`
	Members      []Member  `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Plan         *Plan     `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Report       *Report   `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Status       *Status   `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

func (Project) TableName() string {
	return "projects"
}

// Member links a user to a project with a free-text role.
type Member struct {
	ProjectID uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"primaryKey"`
	Role      string    `gorm:"size:20;not null"`
	StudentNo int       `gorm:"not null"`
	User      user.User `gorm:"foreignKey:UserID"`
}

func (Member) TableName() string {
	return "members"
}

// Plan is created once per project and reviewed before work starts.
type Plan struct {
	ProjectID           uint           `gorm:"primaryKey;autoIncrement:false"`
	Goal                string         `gorm:"size:4000;not null"`
	Content             string         `gorm:"size:10000;not null"`
	StartDate           datatypes.Date `gorm:"not null"`
	EndDate             datatypes.Date `gorm:"not null"`
	IncludeResultReport bool           `gorm:"not null"`
	IncludeCode         bool           `gorm:"not null"`
	IncludeOutcome      bool           `gorm:"not null"`
	IncludeOthers       *string        `gorm:"size:15"`
	CreatedAt           time.Time      `gorm:"autoCreateTime"`
}

func (Plan) TableName() string {
	return "plans"
}

// Report is created once per project and reviewed to complete it.
type Report struct {
	ProjectID uint      `gorm:"primaryKey;autoIncrement:false"`
	Subject   string    `gorm:"size:40;not null"`
	Content   string    `gorm:"size:15000;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Report) TableName() string {
	return "reports"
}

// MemberUUIDs returns the user UUIDs of the loaded members. A nil result
// means the membership was not loaded.
func (p *Project) MemberUUIDs() []string {
	if p.Members == nil {
		return nil
	}
	ids := make([]string, 0, len(p.Members))
	for _, m := range p.Members {
		ids = append(ids, m.User.UUID)
	}
	return ids
}
