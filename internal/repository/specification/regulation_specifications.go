package specification

import "gorm.io/gorm"

// ByTitle filters regulations by exact title. Titles are compared
// case-sensitively; duplicate detection relies on that.
type ByTitle struct {
	Title string
}

func (s ByTitle) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("title = ?", s.Title)
}
