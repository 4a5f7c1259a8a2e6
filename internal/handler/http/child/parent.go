package child

import (
	"net/http"

	"articles-api/internal/handler/http/pathutil"
	"articles-api/internal/handler/http/respond"
	childUC "articles-api/internal/usecase/child"
)

type CreateParentHandler struct{ Svc *childUC.Service }

// ServeHTTP 親作成
// @Summary      親作成
// @Description  子を持たない新しい親を作成します
// @Tags         parents
// @Produce      json
// @Success      201 {object} CreatedParent "作成された親のID"
// @Failure      500 {object} respond.ErrorBody "サーバーエラー"
// @Router       /parents [post]
func (h CreateParentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p, err := h.Svc.CreateParent(r.Context())
	if err != nil {
		respond.FromError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, CreatedParent{ID: p.ID})
}

type GetParentHandler struct{ Svc *childUC.Service }

// ServeHTTP 親取得
// @Summary      親取得
// @Description  親と、その親に属する子の一覧を取得します
// @Tags         parents
// @Produce      json
// @Param        id path int true "親ID"
// @Success      200 {object} ParentDTO "親と子の一覧"
// @Failure      400 {object} respond.ErrorBody "不正なID"
// @Failure      404 {object} respond.ErrorBody "Parent not found"
// @Router       /parents/{id} [get]
func (h GetParentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.FromError(w, r, err)
		return
	}
	pc, err := h.Svc.GetParent(r.Context(), id)
	if err != nil {
		respond.FromError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, ParentDTO{ID: pc.Parent.ID, Children: toDTOs(pc.Children)})
}

type ListParentChildrenHandler struct{ Svc *childUC.Service }

// ServeHTTP 親の子一覧
// @Summary      親の子一覧
// @Tags         parents
// @Produce      json
// @Param        id path int true "親ID"
// @Success      200 {object} ListResponse "子の一覧"
// @Failure      400 {object} respond.ErrorBody "不正なID"
// @Failure      404 {object} respond.ErrorBody "Parent not found"
// @Router       /parents/{id}/children [get]
func (h ListParentChildrenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.FromError(w, r, err)
		return
	}
	list, err := h.Svc.ListChildrenOfParent(r.Context(), id)
	if err != nil {
		respond.FromError(w, r, err)
		return
	}
	out := toDTOs(list)
	respond.JSON(w, http.StatusOK, ListResponse{Children: out, TotalResults: len(out)})
}
