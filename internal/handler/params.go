package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jobport-bd/applicant-service/internal/constants"
	"github.com/jobport-bd/applicant-service/pkg/query"
)

// parseListOptions reads pagination and sort parameters from the query
// string. Malformed numbers fall back to the defaults; clamping happens in
// the query package.
func parseListOptions(c *gin.Context) query.Options {
	page, err := strconv.Atoi(c.DefaultQuery(constants.QueryParamPage, constants.DefaultPage))
	if err != nil {
		page = constants.MinPage
	}

	limit, err := strconv.Atoi(c.DefaultQuery(constants.QueryParamLimit, constants.DefaultLimit))
	if err != nil {
		limit = 0
	}

	return query.Options{
		Page:      page,
		Limit:     limit,
		SortBy:    c.Query(constants.QueryParamSortBy),
		SortOrder: c.Query(constants.QueryParamSortOrder),
	}
}
