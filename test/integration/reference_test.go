//go:build integration
// +build integration

package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/domain/reference"
)

func TestReferenceHandler_Integration(t *testing.T) {
	ctx := GetTestContext()
	user := NewHTTPClient(ctx.Router, ctx.UserToken)
	admin := NewHTTPClient(ctx.Router, ctx.AdminToken)

	t.Run("Categories - Seeded Values", func(t *testing.T) {
		resp, err := user.GET("/tickets/meta/categories")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var categories []reference.Category
		require.NoError(t, resp.DecodeJSON(&categories))
		names := make([]string, 0, len(categories))
		for _, cat := range categories {
			names = append(names, cat.Name)
		}
		assert.Contains(t, names, "Production Impacting")
		assert.Contains(t, names, "Non-Production Impacting")
		assert.Contains(t, names, "Preventive Maintenance")
	})

	t.Run("Statuses - Seeded Values", func(t *testing.T) {
		resp, err := user.GET("/tickets/meta/statuses")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var statuses []reference.Status
		require.NoError(t, resp.DecodeJSON(&statuses))
		assert.GreaterOrEqual(t, len(statuses), 3)
	})

	t.Run("ClientTypes - Include Sites", func(t *testing.T) {
		resp, err := user.GET("/tickets/client-types")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var clientTypes []reference.ClientType
		require.NoError(t, resp.DecodeJSON(&clientTypes))
		require.NotEmpty(t, clientTypes)

		var puresky *reference.ClientType
		for i := range clientTypes {
			if clientTypes[i].Name == "Puresky Energy" {
				puresky = &clientTypes[i]
			}
		}
		require.NotNil(t, puresky)
		assert.NotEmpty(t, puresky.Sites)
	})

	t.Run("Equipment - Readable by Any User", func(t *testing.T) {
		resp, err := user.GET("/equipment")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var equipment []reference.Equipment
		require.NoError(t, resp.DecodeJSON(&equipment))
		assert.NotEmpty(t, equipment)
	})

	t.Run("Equipment - Create Requires Admin", func(t *testing.T) {
		resp, err := user.POST("/equipment", map[string]interface{}{"name": "Weather Station"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		resp, err = admin.POST("/equipment", map[string]interface{}{"name": "Weather Station"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var created reference.Equipment
		require.NoError(t, resp.DecodeJSON(&created))
		assert.True(t, created.IsActive)
	})

	t.Run("Equipment - Duplicate Name Rejected", func(t *testing.T) {
		resp, err := admin.POST("/equipment", map[string]interface{}{"name": "Weather Station"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Category - Admin Create and Deactivate", func(t *testing.T) {
		resp, err := admin.POST("/admin/categories", map[string]interface{}{"name": "Vegetation Management"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var created reference.Category
		require.NoError(t, resp.DecodeJSON(&created))

		resp, err = admin.DELETE(fmt.Sprintf("/admin/categories/%d", created.ID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		// Deactivated entries disappear from the public listing
		listResp, err := user.GET("/tickets/meta/categories")
		require.NoError(t, err)
		var categories []reference.Category
		require.NoError(t, listResp.DecodeJSON(&categories))
		for _, cat := range categories {
			assert.NotEqual(t, "Vegetation Management", cat.Name)
		}
	})

	t.Run("Site - Admin Create Under ClientType", func(t *testing.T) {
		ctResp, err := user.GET("/tickets/client-types")
		require.NoError(t, err)
		var clientTypes []reference.ClientType
		require.NoError(t, ctResp.DecodeJSON(&clientTypes))
		require.NotEmpty(t, clientTypes)

		resp, err := admin.POST("/admin/sites", map[string]interface{}{
			"client_type_id": clientTypes[0].ID,
			"name":           "Site Delta",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var site reference.Site
		require.NoError(t, resp.DecodeJSON(&site))
		assert.Equal(t, clientTypes[0].ID, site.ClientTypeID)
	})

	t.Run("Deactivate - Unknown ID", func(t *testing.T) {
		resp, err := admin.DELETE("/admin/statuses/999999")
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
