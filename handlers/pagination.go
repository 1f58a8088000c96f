package handlers

import (
	"strconv"

	"localpro/utils"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// pageParams reads ?page and ?limit. Range checks belong to the services;
// only non-numeric values are rejected here.
func pageParams(c *gin.Context) (int, int, error) {
	fields := map[string]string{}
	page, limit := defaultPage, defaultLimit
	if raw := c.Query("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			fields["page"] = "must be an integer"
		}
		page = v
	}
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			fields["limit"] = "must be an integer"
		}
		limit = v
	}
	if len(fields) > 0 {
		return 0, 0, utils.NewValidationError("invalid pagination", fields)
	}
	return page, limit, nil
}

func bindError(err error) error {
	return utils.NewValidationError("invalid request body", map[string]string{"body": err.Error()})
}
