package http

import (
	"net/http"

	"github.com/nominamx/payroll-backend-go/internal/handler/http/response"
	"github.com/nominamx/payroll-backend-go/internal/service/catalog"
)

type CatalogHandler interface {
	ListRoles(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
}

type catalogHandlerImpl struct {
	catalogService catalog.CatalogService
}

func NewCatalogHandler(catalogService catalog.CatalogService) CatalogHandler {
	return &catalogHandlerImpl{catalogService: catalogService}
}

func (h *catalogHandlerImpl) ListRoles(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalogService.ListRoles(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *catalogHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	excludeAdmin := r.URL.Query().Get("exclude_admin") == "true"

	result, err := h.catalogService.ListEmployees(r.Context(), excludeAdmin)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
