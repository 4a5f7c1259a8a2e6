package child

import (
	"net/http"

	"articles-api/internal/pkg/validation"
	childUC "articles-api/internal/usecase/child"
)

// Register registers parent and child routes with the given mux.
func Register(mux *http.ServeMux, svc *childUC.Service, v *validation.Validator) {
	mux.Handle("POST   /parents", CreateParentHandler{svc})
	mux.Handle("GET    /parents/{id}", GetParentHandler{svc})
	mux.Handle("GET    /parents/{id}/children", ListParentChildrenHandler{svc})

	mux.Handle("POST   /children", CreateHandler{Svc: svc, Validator: v})
	mux.Handle("GET    /children", ListHandler{svc})
	mux.Handle("GET    /children/{id}", GetHandler{svc})
	mux.Handle("PUT    /children/{id}", UpdateHandler{Svc: svc, Validator: v})
	mux.Handle("DELETE /children/{id}", DeleteHandler{svc})
}
