package article

import (
	"net/http"

	"articles-api/internal/handler/http/respond"
	artUC "articles-api/internal/usecase/article"
)

type DeleteHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事削除
// @Summary      記事削除
// @Description  記事を削除します。存在しない場合は 404 と共に id を返します
// @Tags         articles
// @Produce      json
// @Param        id path int true "記事ID"
// @Success      200 {object} DeleteResponse "削除結果"
// @Failure      400 {object} respond.ErrorBody "不正なID"
// @Failure      404 {object} respond.ErrorBody "Article not found"
// @Failure      500 {object} respond.ErrorBody "サーバーエラー"
// @Router       /articles/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		respond.FromError(w, r, err)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.FromErrorWithID(w, r, err, true)
		return
	}
	respond.JSON(w, http.StatusOK, DeleteResponse{Message: artUC.MsgArticleDeleted, ID: id})
}
