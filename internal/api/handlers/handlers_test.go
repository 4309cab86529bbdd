package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"openhiring/internal/upload"
)

func queryContext(t *testing.T, rawQuery string) echo.Context {
	t.Helper()

	req := httptest.NewRequest("GET", "/jobs?"+rawQuery, nil)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec)
}

func TestPageParam(t *testing.T) {
	tests := []struct {
		query    string
		expected int
	}{
		{"page=3", 3},
		{"page=1", 1},
		{"", 1},
		{"page=0", 1},
		{"page=-2", 1},
		{"page=abc", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, pageParam(queryContext(t, tt.query)), "query %q", tt.query)
	}
}

func TestFilterQuery(t *testing.T) {
	assert.Empty(t, filterQuery(map[string]string{"search": "", "location": ""}))

	q := filterQuery(map[string]string{"search": "go dev", "location": ""})
	assert.Equal(t, "search=go+dev&", q)
}

func TestCategoryRef(t *testing.T) {
	assert.Nil(t, categoryRef(""))
	assert.Nil(t, categoryRef("abc"))
	assert.Nil(t, categoryRef("0"))
	assert.Nil(t, categoryRef("-1"))

	ref := categoryRef("4")
	if assert.NotNil(t, ref) {
		assert.Equal(t, uint(4), *ref)
	}
}

type removeRecorder struct {
	removed []string
}

func (r *removeRecorder) Remove(_ upload.Kind, filename string) error {
	r.removed = append(r.removed, filename)
	return nil
}

func TestLogoSwapKeepsFilenameWithoutUpload(t *testing.T) {
	swap := logoSwap{current: "old.png"}
	assert.Equal(t, "old.png", swap.filename())

	files := &removeRecorder{}
	swap.rollback(files)
	swap.commit(files)
	assert.Empty(t, files.removed, "an edit without an upload must not touch any file")
}

func TestLogoSwapRollbackDiscardsOnlyUpload(t *testing.T) {
	swap := logoSwap{current: "old.png", uploaded: "new.png"}
	assert.Equal(t, "new.png", swap.filename())

	files := &removeRecorder{}
	swap.rollback(files)
	assert.Equal(t, []string{"new.png"}, files.removed, "a failed update keeps the old logo")
}

func TestLogoSwapCommitRemovesReplacedFile(t *testing.T) {
	files := &removeRecorder{}
	logoSwap{current: "old.png", uploaded: "new.png"}.commit(files)
	assert.Equal(t, []string{"old.png"}, files.removed)
}

func TestLogoSwapCommitFirstUploadRemovesNothing(t *testing.T) {
	files := &removeRecorder{}
	logoSwap{uploaded: "new.png"}.commit(files)
	assert.Empty(t, files.removed)
}
