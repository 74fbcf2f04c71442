package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func parseQuery(t *testing.T, rawQuery string) Params {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return Parse(c)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Params
	}{
		{"defaults", "", Params{Page: 1, Limit: 50, Offset: 0}},
		{"explicit values", "page=3&limit=20", Params{Page: 3, Limit: 20, Offset: 40}},
		{"zero page falls back", "page=0", Params{Page: 1, Limit: 50, Offset: 0}},
		{"negative limit falls back", "limit=-5", Params{Page: 1, Limit: 50, Offset: 0}},
		{"limit capped", "limit=5000", Params{Page: 1, Limit: 100, Offset: 0}},
		{"non-numeric input falls back", "page=abc&limit=xyz", Params{Page: 1, Limit: 50, Offset: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseQuery(t, tt.query)
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.query, got, tt.want)
			}
		})
	}
}
