// Package article provides HTTP handlers for article-related endpoints.
// It includes handlers for creating, listing, searching, renaming and deleting articles.
package article

import (
	"articles-api/internal/domain/entity"
	artUC "articles-api/internal/usecase/article"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID          int64  `json:"id" example:"1"`
	Nickname    string `json:"nickname" example:"Unknown"`
	Author      string `json:"author" example:"Jane Doe"`
	Title       string `json:"title" example:"Go 1.25 リリース"`
	Description string `json:"description" example:"Go 1.25 がリリースされました"`
	URL         string `json:"url" example:"https://example.com/article/1"`
	URLToImage  string `json:"urlToImage" example:"https://example.com/article/1.png"`
	PublishedAt string `json:"publishedAt" example:"2025-10-26T10:00:00Z"`
	Content     string `json:"content" example:"新機能には..."`
	SourceID    string `json:"source_id" example:"bbc-news"`
	SourceName  string `json:"source_name" example:"BBC News"`
}

// ListResponse wraps a list of articles.
type ListResponse struct {
	Articles     []DTO `json:"articles"`
	TotalResults int   `json:"totalResults" example:"1"`
}

// DeleteResponse is returned by a successful delete.
type DeleteResponse struct {
	Message string `json:"message" example:"Article Deleted Successfully"`
	ID      int64  `json:"id" example:"1"`
}

// CreateRequest is the body of POST /articles.
// Omitted or null fields take their default value.
type CreateRequest struct {
	Nickname    *string `json:"nickname" validate:"omitempty,shorttext"`
	Author      *string `json:"author" validate:"omitempty,shorttext"`
	Title       *string `json:"title" validate:"omitempty,shorttext"`
	Description *string `json:"description" validate:"omitempty,longtext"`
	URL         *string `json:"url" validate:"omitempty,longtext"`
	URLToImage  *string `json:"urlToImage" validate:"omitempty,longtext"`
	PublishedAt *string `json:"publishedAt" validate:"omitempty,shorttext"`
	Content     *string `json:"content" validate:"omitempty,longtext"`
	SourceID    *string `json:"source_id" validate:"omitempty,shorttext"`
	SourceName  *string `json:"source_name" validate:"omitempty,shorttext"`
}

func (r CreateRequest) input() artUC.CreateInput {
	return artUC.CreateInput{
		Nickname:    r.Nickname,
		Author:      r.Author,
		Title:       r.Title,
		Description: r.Description,
		URL:         r.URL,
		URLToImage:  r.URLToImage,
		PublishedAt: r.PublishedAt,
		Content:     r.Content,
		SourceID:    r.SourceID,
		SourceName:  r.SourceName,
	}
}

// UpdateNicknameRequest is the body of PUT /articles/{id}.
type UpdateNicknameRequest struct {
	Nickname string `json:"nickname" validate:"required,shorttext"`
}

func toDTO(a *entity.Article) DTO {
	return DTO{
		ID:          a.ID,
		Nickname:    a.Nickname,
		Author:      a.Author,
		Title:       a.Title,
		Description: a.Description,
		URL:         a.URL,
		URLToImage:  a.URLToImage,
		PublishedAt: a.PublishedAt,
		Content:     a.Content,
		SourceID:    a.SourceID,
		SourceName:  a.SourceName,
	}
}

func toList(list []*entity.Article) ListResponse {
	out := make([]DTO, 0, len(list))
	for _, a := range list {
		out = append(out, toDTO(a))
	}
	return ListResponse{Articles: out, TotalResults: len(out)}
}
