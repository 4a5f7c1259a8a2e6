package article

import (
	"net/http"

	"articles-api/internal/handler/http/respond"
	artUC "articles-api/internal/usecase/article"
)

type ListHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事一覧取得
// @Summary      記事一覧取得
// @Description  登録されている全記事を取得します
// @Tags         articles
// @Produce      json
// @Success      200 {object} ListResponse "記事一覧"
// @Failure      500 {object} respond.ErrorBody "サーバーエラー"
// @Router       /articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.List(r.Context())
	if err != nil {
		respond.FromError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toList(list))
}
