package params

import (
	"strconv"

	"bebit-api/core/constants"

	"github.com/labstack/echo/v4"
)

// QueryParams drives paginated listings (notifications, feedback).
type QueryParams struct {
	PageNumber int
	PageSize   int
	Search     string
}

func ParseQueryParams(c echo.Context) QueryParams {
	p := QueryParams{
		PageNumber: 1,
		PageSize:   constants.DefaultEventLimit,
		Search:     c.QueryParam("q"),
	}
	if n, err := strconv.Atoi(c.QueryParam("page")); err == nil && n > 0 {
		p.PageNumber = n
	}
	if n, err := strconv.Atoi(c.QueryParam("page_size")); err == nil && n > 0 {
		p.PageSize = min(n, constants.MaxListLimit)
	}
	return p
}

// ListQuery drives filterable flat listings (events, artists).
type ListQuery struct {
	Limit    int
	Search   string
	Category string
}

// ParseListQuery reads q/category/limit, clamping the limit into [1, MaxListLimit].
func ParseListQuery(c echo.Context, defaultLimit int) ListQuery {
	q := ListQuery{
		Limit:    defaultLimit,
		Search:   c.QueryParam("q"),
		Category: c.QueryParam("category"),
	}
	if n, err := strconv.Atoi(c.QueryParam("limit")); err == nil && n > 0 {
		q.Limit = min(n, constants.MaxListLimit)
	}
	return q
}
