package article

import (
	"net/http"

	"articles-api/internal/domain/entity"
	"articles-api/internal/handler/http/respond"
	artUC "articles-api/internal/usecase/article"
)

type SearchHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事検索
// @Summary      記事検索
// @Description  指定フィールドの部分一致で記事を検索します。field は author, authors, title, source, nickname のいずれか
// @Description  検索値は field に対応するクエリパラメータ (author, title, source_name, nickname) で渡します
// @Tags         articles
// @Produce      json
// @Param        field       path  string true  "検索フィールド" Enums(author, authors, title, source, nickname)
// @Param        author      query string false "著者"
// @Param        title       query string false "タイトル"
// @Param        source_name query string false "ソース名"
// @Param        nickname    query string false "ニックネーム"
// @Success      200 {object} ListResponse "検索結果"
// @Failure      400 {object} respond.ErrorBody "未対応のフィールド / パラメータ不足"
// @Failure      500 {object} respond.ErrorBody "サーバーエラー"
// @Router       /articles/search/{field} [get]
func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("field")
	field, ok := entity.LookupArticleSearchField(name)
	if !ok {
		respond.FromError(w, r, &entity.ValidationError{Field: "field", Message: "unsupported search field " + name})
		return
	}

	list, err := h.Svc.Search(r.Context(), name, r.URL.Query().Get(field.Param))
	if err != nil {
		respond.FromError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toList(list))
}
