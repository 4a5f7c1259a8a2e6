package article

import (
	"net/http"

	"articles-api/internal/handler/http/pathutil"
	"articles-api/internal/handler/http/respond"
	"articles-api/internal/pkg/validation"
	artUC "articles-api/internal/usecase/article"
)

type UpdateHandler struct {
	Svc       *artUC.Service
	Validator *validation.Validator
}

// ServeHTTP 記事ニックネーム更新
// @Summary      記事ニックネーム更新
// @Description  既存記事のニックネームのみを更新します
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        id   path int                   true "記事ID"
// @Param        body body UpdateNicknameRequest true "新しいニックネーム"
// @Success      200 {object} DTO "更新後の記事"
// @Failure      400 {object} respond.ErrorBody "入力エラー"
// @Failure      413 {object} respond.ErrorBody "request body too large"
// @Failure      404 {object} respond.ErrorBody "Article not found"
// @Router       /articles/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.FromError(w, r, err)
		return
	}

	var req UpdateNicknameRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.FromError(w, r, err)
		return
	}
	h.update(w, r, id, req)
}

// UpdateNicknameQueryHandler serves the query-string form of the nickname update.
type UpdateNicknameQueryHandler UpdateHandler

// ServeHTTP 記事ニックネーム更新（クエリ形式）
// @Summary      記事ニックネーム更新（クエリ形式）
// @Description  id と nickname をクエリパラメータで受け取り、ニックネームを更新します
// @Tags         articles
// @Produce      json
// @Param        id       query int    true "記事ID"
// @Param        nickname query string true "新しいニックネーム"
// @Success      200 {object} DTO "更新後の記事"
// @Failure      400 {object} respond.ErrorBody "入力エラー"
// @Failure      413 {object} respond.ErrorBody "request body too large"
// @Failure      404 {object} respond.ErrorBody "Article not found"
// @Router       /articles/nickname [put]
func (h UpdateNicknameQueryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.QueryID(r)
	if err != nil {
		respond.FromError(w, r, err)
		return
	}
	UpdateHandler(h).update(w, r, id, UpdateNicknameRequest{Nickname: r.URL.Query().Get("nickname")})
}

func (h UpdateHandler) update(w http.ResponseWriter, r *http.Request, id int64, req UpdateNicknameRequest) {
	if err := h.Validator.Struct(req); err != nil {
		respond.FromError(w, r, err)
		return
	}

	a, err := h.Svc.UpdateNickname(r.Context(), id, req.Nickname)
	if err != nil {
		respond.FromError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(a))
}
