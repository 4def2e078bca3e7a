package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/admin-nexus/internal/client"
	"github.com/admin-nexus/internal/export"
	"github.com/admin-nexus/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestJSONFieldHelpers(t *testing.T) {
	c := models.Category{ID: "c1", Name: "Tech Tools", Slug: "tech", SortOrder: 3, IsActive: true}

	assert.Equal(t, "c1", jsonID(c))
	assert.True(t, jsonContains(c, "tools"))
	assert.False(t, jsonContains(c, "garden"))
	assert.True(t, fieldEquals[models.Category]("slug")(c, "TECH"))
	assert.True(t, fieldEquals[models.Category]("is_active")(c, "true"))

	table := export.Build(fieldColumns[models.Category]("name", "sort_order"), []models.Category{c})
	assert.Equal(t, []string{"name", "sort_order"}, table.Header)
	assert.Equal(t, []string{"Tech Tools", "3"}, table.Rows[0])
}

func TestParseData(t *testing.T) {
	fields, err := parseData(`{"name":"x","is_active":false}`)
	assert.NoError(t, err)
	assert.Equal(t, "x", fields["name"])
	assert.Equal(t, false, fields["is_active"])

	_, err = parseData(`[1,2]`)
	assert.Error(t, err)
}

func TestFindByID(t *testing.T) {
	items := []models.TrustBadge{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}}
	got, ok := findByID(items, "b")
	assert.True(t, ok)
	assert.Equal(t, "B", got.Title)
	_, ok = findByID(items, "z")
	assert.False(t, ok)
}

func TestUserScopedSourceEscapesUserID(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":"n1","user_id":"a/b?c"}]}`))
	}))
	t.Cleanup(srv.Close)

	res := client.NewResource[models.Notification](client.New(srv.URL), "notifications")
	items, err := userScopedSource[models.Notification]{Resource: res, userID: "a/b?c"}.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "/api/notifications/user/a%2Fb%3Fc", gotPath)
}
