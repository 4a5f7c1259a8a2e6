// Package child provides HTTP handlers for parents and child profiles.
package child

import (
	"articles-api/internal/domain/entity"
)

// DTO represents the JSON structure for child data transfer.
type DTO struct {
	ID        int64  `json:"id" example:"1"`
	Name      string `json:"name" example:"Hanako"`
	BirthDate string `json:"birth_date" example:"2019-04-01"`
	ParentID  int64  `json:"parent_id" example:"1"`
}

// ParentDTO is a parent with its children.
type ParentDTO struct {
	ID       int64 `json:"id" example:"1"`
	Children []DTO `json:"children"`
}

// CreatedParent is returned by POST /parents.
type CreatedParent struct {
	ID int64 `json:"id" example:"1"`
}

// ListResponse wraps a list of children.
type ListResponse struct {
	Children     []DTO `json:"children"`
	TotalResults int   `json:"totalResults" example:"1"`
}

// DeleteResponse is returned by a successful delete.
type DeleteResponse struct {
	Message string `json:"message" example:"Child Deleted Successfully"`
	ID      int64  `json:"id" example:"1"`
}

// CreateRequest is the body of POST /children.
type CreateRequest struct {
	Name      string `json:"name" validate:"required,shorttext"`
	BirthDate string `json:"birth_date" validate:"required,isodate"`
	ParentID  int64  `json:"parent_id" validate:"required,gt=0"`
}

// UpdateRequest is the body of PUT /children/{id}. Omitted fields are kept.
type UpdateRequest struct {
	Name      *string `json:"name" validate:"omitnil,required,shorttext"`
	BirthDate *string `json:"birth_date" validate:"omitnil,isodate"`
}

func toDTO(c *entity.Child) DTO {
	return DTO{
		ID:        c.ID,
		Name:      c.Name,
		BirthDate: c.BirthDate.Format(entity.BirthDateLayout),
		ParentID:  c.ParentID,
	}
}

func toDTOs(list []*entity.Child) []DTO {
	out := make([]DTO, 0, len(list))
	for _, c := range list {
		out = append(out, toDTO(c))
	}
	return out
}
