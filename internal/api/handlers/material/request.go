package material

import "github.com/mati-tech/microservices1112/internal/model"

type CreateRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description *string `json:"description"`
	ContentURL  *string `json:"content_url" validate:"omitempty,max=500"`
	FileType    *string `json:"file_type" validate:"omitempty,max=50"`
	Subject     *string `json:"subject" validate:"omitempty,max=100"`
	GradeLevel  *string `json:"grade_level" validate:"omitempty,max=50"`
	CreatedBy   *string `json:"created_by" validate:"omitempty,max=100"`
}

func (r CreateRequest) toModel() model.Material {
	return model.Material{
		Title:       r.Title,
		Description: r.Description,
		ContentURL:  r.ContentURL,
		FileType:    r.FileType,
		Subject:     r.Subject,
		GradeLevel:  r.GradeLevel,
		CreatedBy:   r.CreatedBy,
	}
}

// UpdateRequest is a partial update; absent fields keep their stored value.
type UpdateRequest struct {
	Title       *string `json:"title" validate:"omitnil,min=1,max=200"`
	Description *string `json:"description"`
	ContentURL  *string `json:"content_url" validate:"omitempty,max=500"`
	FileType    *string `json:"file_type" validate:"omitempty,max=50"`
	Subject     *string `json:"subject" validate:"omitempty,max=100"`
	GradeLevel  *string `json:"grade_level" validate:"omitempty,max=50"`
	IsActive    *bool   `json:"is_active"`
}

func (r UpdateRequest) toModel() model.MaterialUpdate {
	return model.MaterialUpdate{
		Title:       r.Title,
		Description: r.Description,
		ContentURL:  r.ContentURL,
		FileType:    r.FileType,
		Subject:     r.Subject,
		GradeLevel:  r.GradeLevel,
		IsActive:    r.IsActive,
	}
}
