package model

import "time"

// Material represents an educational material in the catalog.
type Material struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	ContentURL  *string    `json:"content_url"` // URL to PDF, video or other content
	FileType    *string    `json:"file_type"`   // pdf, video, doc, ...
	Subject     *string    `json:"subject"`
	GradeLevel  *string    `json:"grade_level"` // e.g. "Grade 10", "University"
	CreatedBy   *string    `json:"created_by"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// MaterialUpdate carries a partial update. Nil fields are left untouched.
type MaterialUpdate struct {
	Title       *string
	Description *string
	ContentURL  *string
	FileType    *string
	Subject     *string
	GradeLevel  *string
	IsActive    *bool
}

// Empty reports whether the update changes nothing.
func (u MaterialUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.ContentURL == nil && u.FileType == nil &&
		u.Subject == nil && u.GradeLevel == nil && u.IsActive == nil
}

// Apply merges the set fields of u into m.
func (u MaterialUpdate) Apply(m *Material) {
	if u.Title != nil {
		m.Title = *u.Title
	}
	if u.Description != nil {
		m.Description = u.Description
	}
	if u.ContentURL != nil {
		m.ContentURL = u.ContentURL
	}
	if u.FileType != nil {
		m.FileType = u.FileType
	}
	if u.Subject != nil {
		m.Subject = u.Subject
	}
	if u.GradeLevel != nil {
		m.GradeLevel = u.GradeLevel
	}
	if u.IsActive != nil {
		m.IsActive = *u.IsActive
	}
}

// MaterialFilter narrows a material listing. Search is a case-insensitive substring match over title
// and description.
type MaterialFilter struct {
	Subject    string
	GradeLevel string
	IsActive   *bool
	Search     string
}
