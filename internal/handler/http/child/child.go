package child

import (
	"net/http"
	"time"

	"articles-api/internal/domain/entity"
	"articles-api/internal/handler/http/pathutil"
	"articles-api/internal/handler/http/respond"
	"articles-api/internal/pkg/validation"
	childUC "articles-api/internal/usecase/child"
)

type CreateHandler struct {
	Svc       *childUC.Service
	Validator *validation.Validator
}

// ServeHTTP 子作成
// @Summary      子作成
// @Description  既存の親に属する子を作成します
// @Tags         children
// @Accept       json
// @Produce      json
// @Param        child body CreateRequest true "子の情報"
// @Success      201 {object} DTO "作成された子"
// @Failure      400 {object} respond.ErrorBody "入力エラー"
// @Failure      413 {object} respond.ErrorBody "request body too large"
// @Failure      404 {object} respond.ErrorBody "Parent not found"
// @Router       /children [post]
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
	birth, err := entity.ParseBirthDate(req.BirthDate)
	if err != nil {
		respond.FromError(w, r, err)
		return
	}

	c, err := h.Svc.CreateChild(r.Context(), childUC.CreateInput{
		Name:      req.Name,
		BirthDate: birth,
		ParentID:  req.ParentID,
	})
	if err != nil {
		respond.FromError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(c))
}

type ListHandler struct{ Svc *childUC.Service }

// ServeHTTP 子一覧
// @Summary      子一覧
// @Tags         children
// @Produce      json
// @Success      200 {object} ListResponse "子の一覧"
// @Failure      500 {object} respond.ErrorBody "サーバーエラー"
// @Router       /children [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.ListChildren(r.Context())
	if err != nil {
		respond.FromError(w, r, err)
		return
	}
	out := toDTOs(list)
	respond.JSON(w, http.StatusOK, ListResponse{Children: out, TotalResults: len(out)})
}

type GetHandler struct{ Svc *childUC.Service }

// ServeHTTP 子取得
// @Summary      子取得
// @Tags         children
// @Produce      json
// @Param        id path int true "子ID"
// @Success      200 {object} DTO "子"
// @Failure      400 {object} respond.ErrorBody "不正なID"
// @Failure      404 {object} respond.ErrorBody "Child not found"
// @Router       /children/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.FromError(w, r, err)
		return
	}
	c, err := h.Svc.GetChild(r.Context(), id)
	if err != nil {
		respond.FromError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(c))
}

type UpdateHandler struct {
	Svc       *childUC.Service
	Validator *validation.Validator
}

// ServeHTTP 子更新
// @Summary      子更新
// @Description  name と birth_date のうち指定されたものだけを更新します
// @Tags         children
// @Accept       json
// @Produce      json
// @Param        id   path int           true "子ID"
// @Param        body body UpdateRequest true "更新内容"
// @Success      200 {object} DTO "更新後の子"
// @Failure      400 {object} respond.ErrorBody "入力エラー"
// @Failure      413 {object} respond.ErrorBody "request body too large"
// @Failure      404 {object} respond.ErrorBody "Child not found"
// @Router       /children/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.FromError(w, r, err)
		return
	}

	var req UpdateRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.FromError(w, r, err)
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		respond.FromError(w, r, err)
		return
	}

	in := childUC.UpdateInput{Name: req.Name}
	if req.BirthDate != nil {
		var birth time.Time
		if birth, err = entity.ParseBirthDate(*req.BirthDate); err != nil {
			respond.FromError(w, r, err)
			return
		}
		in.BirthDate = &birth
	}

	c, err := h.Svc.UpdateChild(r.Context(), id, in)
	if err != nil {
		respond.FromError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(c))
}

type DeleteHandler struct{ Svc *childUC.Service }

// ServeHTTP 子削除
// @Summary      子削除
// @Tags         children
// @Produce      json
// @Param        id path int true "子ID"
// @Success      200 {object} DeleteResponse "削除結果"
// @Failure      400 {object} respond.ErrorBody "不正なID"
// @Failure      404 {object} respond.ErrorBody "Child not found"
// @Router       /children/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.FromError(w, r, err)
		return
	}
	if err := h.Svc.DeleteChild(r.Context(), id); err != nil {
		respond.FromErrorWithID(w, r, err, true)
		return
	}
	respond.JSON(w, http.StatusOK, DeleteResponse{Message: childUC.MsgChildDeleted, ID: id})
}
