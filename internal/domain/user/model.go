package user

// User is a registered student. Accounts are managed elsewhere; the review
// lifecycle only reads them to resolve members and writers.
type User struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"-"`
	UUID         string  `gorm:"size:36;not null;uniqueIndex" json:"uuid"`
	Email        string  `gorm:"size:40;not null;uniqueIndex" json:"email"`
	Name         string  `gorm:"size:20;not null" json:"name"`
	StudentNo    int     `gorm:"not null" json:"student_no"`
	ThumbnailURL *string `gorm:"size:200" json:"thumbnail_url,omitempty"`
	Deleted      bool    `gorm:"default:false" json:"-"`
}

func (User) TableName() string {
	return "users"
}
