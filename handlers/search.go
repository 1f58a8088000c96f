package handlers

import (
	"net/http"

	"localpro/services/search"
	"localpro/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SearchHandler struct {
	Service  search.SearchService
	MaxLimit int
}

func NewSearchHandler(svc search.SearchService, maxLimit int) *SearchHandler {
	return &SearchHandler{Service: svc, MaxLimit: maxLimit}
}

// SearchProvidersHandler handles GET /api/providers/search.
func (h *SearchHandler) SearchProvidersHandler(c *gin.Context) {
	logger := getLogger(c)
	filter, err := search.ParseFilter(search.Query{
		Lat:             c.Query("lat"),
		Lng:             c.Query("lng"),
		RadiusKm:        c.Query("radiusKm"),
		CategoryID:      c.Query("categoryId"),
		SubCategorySlug: c.Query("subCategorySlug"),
		Sort:            c.Query("sort"),
		Page:            c.Query("page"),
		Limit:           c.Query("limit"),
	}, h.MaxLimit)
	if err != nil {
		utils.RespondError(c, logger, err)
		return
	}

	result, err := h.Service.Search(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, logger.With(zap.String("categoryId", filter.CategoryID)), err)
		return
	}
	c.JSON(http.StatusOK, result)
}
