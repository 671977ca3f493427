package params

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bebit-api/core/constants"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newContext(t *testing.T, target string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestParseQueryParams(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantPage   int
		wantSize   int
		wantSearch string
	}{
		{"defaults", "/", 1, constants.DefaultEventLimit, ""},
		{"explicit", "/?page=3&page_size=5&q=techno", 3, 5, "techno"},
		{"page size clamped", "/?page_size=5000", 1, constants.MaxListLimit, ""},
		{"garbage ignored", "/?page=abc&page_size=-2", 1, constants.DefaultEventLimit, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := ParseQueryParams(newContext(t, tc.target))
			assert.Equal(t, tc.wantPage, p.PageNumber)
			assert.Equal(t, tc.wantSize, p.PageSize)
			assert.Equal(t, tc.wantSearch, p.Search)
		})
	}
}

func TestParseListQuery(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		wantLimit    int
		wantSearch   string
		wantCategory string
	}{
		{"defaults", "/", 20, "", ""},
		{"explicit", "/?limit=7&q=dj&category=techno", 7, "dj", "techno"},
		{"limit clamped", "/?limit=9999", constants.MaxListLimit, "", ""},
		{"zero limit ignored", "/?limit=0", 20, "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := ParseListQuery(newContext(t, tc.target), 20)
			assert.Equal(t, tc.wantLimit, q.Limit)
			assert.Equal(t, tc.wantSearch, q.Search)
			assert.Equal(t, tc.wantCategory, q.Category)
		})
	}
}
