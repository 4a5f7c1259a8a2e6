package article

import (
	"net/http"

	"articles-api/internal/handler/http/respond"
	"articles-api/internal/pkg/validation"
	artUC "articles-api/internal/usecase/article"
)

type CreateHandler struct {
	Svc       *artUC.Service
	Validator *validation.Validator
}

// ServeHTTP 記事作成
// @Summary      記事作成
// @Description  新しい記事を作成します。省略したフィールドには既定値が入ります
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        article body CreateRequest true "記事情報"
// @Success      201 {object} DTO "作成された記事"
// @Failure      400 {object} respond.ErrorBody "入力エラー / Something went wrong"
// @Failure      413 {object} respond.ErrorBody "request body too large"
// @Failure      409 {object} respond.ErrorBody "Article already exists"
// @Router       /articles [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.FromError(w, r, err)
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		respond.FromError(w, r, err)
		return
	}

	created, err := h.Svc.Create(r.Context(), req.input())
	if err != nil {
		respond.CreateError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(created))
}
