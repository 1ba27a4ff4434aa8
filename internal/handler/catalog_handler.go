package handler

import (
	"net/http"

	"quickmart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /categories と /products の公開API
type CatalogHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewCatalogHandler(uc *usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// カタログのルートを登録
func (h *CatalogHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/categories", h.listCategories)
	e.GET("/categories/:category", h.category)
	e.GET("/categories/:category/products", h.byCategory)

	e.GET("/products/featured", h.featured)
	e.GET("/products", h.listProducts)
	e.GET("/products/:id", h.detail)
}

func (h *CatalogHandler) listCategories(c echo.Context) error {
	out, err := h.uc.GetAllCategories(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// IDでもslugでも引ける
func (h *CatalogHandler) category(c echo.Context) error {
	out, err := h.uc.GetCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) byCategory(c echo.Context) error {
	out, err := h.uc.ByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toProducts(out))
}

// qがあれば検索、無ければ全件
func (h *CatalogHandler) listProducts(c echo.Context) error {
	ctx := c.Request().Context()
	if q := c.QueryParam("q"); q != "" {
		out, err := h.uc.Search(ctx, q)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, toProducts(out))
	}

	out, err := h.uc.GetAllProducts(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toProducts(out))
}

func (h *CatalogHandler) featured(c echo.Context) error {
	out, err := h.uc.Featured(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toProducts(out))
}

func (h *CatalogHandler) detail(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	p, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toProduct(p))
}
