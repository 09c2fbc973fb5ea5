package apihelpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

type PagenatedQuery struct {
	Page  int64
	Limit int64
}

func ParsePaginatedQueryFromCtx(c *gin.Context) (*PagenatedQuery, error) {
	page, err := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	if err != nil {
		return nil, err
	}

	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	if err != nil {
		return nil, err
	}

	return &PagenatedQuery{
		Page:  page,
		Limit: limit,
	}, nil
}
