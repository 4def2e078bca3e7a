package shared

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestNormalizePagination(t *testing.T) {
	cases := []struct {
		page, size, wantPage, wantSize int
	}{
		{0, 0, 1, 20},
		{3, 10, 3, 10},
		{2, 500, 2, 100},
	}
	for _, tc := range cases {
		page, size := NormalizePagination(tc.page, tc.size)
		if page != tc.wantPage || size != tc.wantSize {
			t.Fatalf("normalize(%d,%d) want (%d,%d) got (%d,%d)", tc.page, tc.size, tc.wantPage, tc.wantSize, page, size)
		}
	}
}

func TestPageWindowAndSlice(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/users", nil)
	if _, _, ok := PageWindow(c); ok {
		t.Fatalf("no page param should mean full list")
	}

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/users?page=2&page_size=2", nil)
	offset, limit, ok := PageWindow(c)
	if !ok || offset != 2 || limit != 2 {
		t.Fatalf("unexpected window offset=%d limit=%d ok=%v", offset, limit, ok)
	}
	items := []int{1, 2, 3, 4, 5}
	if got := SliceWindow(items, offset, limit); len(got) != 2 || got[0] != 3 {
		t.Fatalf("unexpected slice %v", got)
	}
	if got := SliceWindow(items, 10, 2); len(got) != 0 {
		t.Fatalf("out of range slice should be empty, got %v", got)
	}
}

func TestPageWindowHugePageIsEmpty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/users?page=9223372036854775807&page_size=20", nil)
	offset, limit, ok := PageWindow(c)
	if !ok || offset < 0 || limit != 20 {
		t.Fatalf("unexpected window offset=%d limit=%d ok=%v", offset, limit, ok)
	}
	items := []int{1, 2, 3}
	if got := SliceWindow(items, offset, limit); len(got) != 0 {
		t.Fatalf("huge page should be empty, got %v", got)
	}

	if got := SliceWindow(items, -40, 20); len(got) != 0 {
		t.Fatalf("negative offset should be empty, got %v", got)
	}
	if got := SliceWindow(items, 1, math.MaxInt); len(got) != 2 || got[0] != 2 {
		t.Fatalf("large limit should clamp to the end, got %v", got)
	}
}
