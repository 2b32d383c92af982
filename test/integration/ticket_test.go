//go:build integration
// +build integration

package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/domain/ticket"
)

func ticketPayload() map[string]interface{} {
	return map[string]interface{}{
		"equipment":         "Inverter",
		"category":          "Production Impacting",
		"issue_start_time":  "2026-02-01T08:00:00",
		"issue_description": "Inverter tripped on ground fault",
	}
}

func TestTicketHandler_Integration(t *testing.T) {
	ctx := GetTestContext()
	owner := NewHTTPClient(ctx.Router, ctx.UserToken)
	stranger := NewHTTPClient(ctx.Router, ctx.OtherToken)
	admin := NewHTTPClient(ctx.Router, ctx.AdminToken)

	var created ticket.Ticket

	t.Run("Create - Missing Required Fields", func(t *testing.T) {
		resp, err := owner.POST("/tickets", map[string]interface{}{
			"equipment": "Inverter",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		msg := resp.GetErrorMessage()
		assert.Contains(t, msg, "category")
		assert.Contains(t, msg, "issue_description")
		assert.Contains(t, msg, "issue_start_time")
	})

	t.Run("Create - Success with Defaults", func(t *testing.T) {
		resp, err := owner.POST("/tickets", ticketPayload())
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		require.NoError(t, resp.DecodeJSON(&created))
		assert.NotZero(t, created.ID)
		assert.Regexp(t, `^TKT-\d{6}$`, created.TicketNumber)
		assert.Equal(t, ctx.TestUser.ID, created.UserID)
		assert.Equal(t, ticket.StatusOpen, created.TicketStatus)
		assert.Equal(t, ticket.PriorityDefault, created.Priority)
		assert.Equal(t, 1, created.CategoryCode)
	})

	t.Run("Create - CamelCase Aliases Accepted", func(t *testing.T) {
		resp, err := owner.POST("/tickets", map[string]interface{}{
			"equipment":        "Solar Panel Array",
			"category":         "Preventive Maintenance",
			"issueStartTime":   "2026-02-02T09:30:00",
			"issueDescription": "Scheduled string inspection",
			"kilowattsDown":    "12.5",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var tk ticket.Ticket
		require.NoError(t, resp.DecodeJSON(&tk))
		assert.Equal(t, "2026-02-02T09:30:00", tk.IssueStartTime)
		require.NotNil(t, tk.KilowattsDown)
		assert.InDelta(t, 12.5, *tk.KilowattsDown, 0.001)
	})

	t.Run("Get - Success", func(t *testing.T) {
		resp, err := stranger.GET(fmt.Sprintf("/tickets/%d", created.ID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var tk ticket.Ticket
		require.NoError(t, resp.DecodeJSON(&tk))
		assert.Equal(t, created.TicketNumber, tk.TicketNumber)
	})

	t.Run("Get - Not Found", func(t *testing.T) {
		resp, err := owner.GET("/tickets/999999")
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Update - Records History with Reason", func(t *testing.T) {
		resp, err := owner.PUT(fmt.Sprintf("/tickets/%d", created.ID), map[string]interface{}{
			"ticket_status": "Closed",
			"reason":        "Fault cleared after reset",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var tk ticket.Ticket
		require.NoError(t, resp.DecodeJSON(&tk))
		assert.Equal(t, ticket.StatusClosed, tk.TicketStatus)
		assert.NotNil(t, tk.ClosedAt)

		histResp, err := owner.GET(fmt.Sprintf("/tickets/%d/history", created.ID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, histResp.StatusCode)

		var entries []ticket.TicketHistory
		require.NoError(t, histResp.DecodeJSON(&entries))
		require.Len(t, entries, 1)
		assert.Equal(t, "Fault cleared after reset", entries[0].Reason)
		assert.Equal(t, ctx.TestUser.ID, entries[0].UserID)

		change, ok := entries[0].Changes["ticket_status"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Open", change["old"])
		assert.Equal(t, "Closed", change["new"])
	})

	t.Run("Update - No Change Writes No History", func(t *testing.T) {
		resp, err := owner.PUT(fmt.Sprintf("/tickets/%d", created.ID), map[string]interface{}{
			"ticket_status": "Closed",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		histResp, err := owner.GET(fmt.Sprintf("/tickets/%d/history", created.ID))
		require.NoError(t, err)

		var entries []ticket.TicketHistory
		require.NoError(t, histResp.DecodeJSON(&entries))
		assert.Len(t, entries, 1)
	})

	t.Run("Update - Reopen Clears ClosedAt", func(t *testing.T) {
		resp, err := owner.PUT(fmt.Sprintf("/tickets/%d", created.ID), map[string]interface{}{
			"ticket_status": "Open",
			"reason":        "Fault recurred overnight",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var tk ticket.Ticket
		require.NoError(t, resp.DecodeJSON(&tk))
		assert.Equal(t, ticket.StatusOpen, tk.TicketStatus)
		assert.Nil(t, tk.ClosedAt)
	})

	t.Run("List - Filter my-tickets", func(t *testing.T) {
		resp, err := stranger.GET("/tickets", map[string]string{"filter": "my-tickets"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var tickets []ticket.Ticket
		require.NoError(t, resp.DecodeJSON(&tickets))
		assert.Empty(t, tickets)

		resp, err = owner.GET("/tickets", map[string]string{"filter": "my-tickets"})
		require.NoError(t, err)

		require.NoError(t, resp.DecodeJSON(&tickets))
		assert.NotEmpty(t, tickets)
		for _, tk := range tickets {
			assert.Equal(t, ctx.TestUser.ID, tk.UserID)
		}
	})

	t.Run("Search - Matches Description", func(t *testing.T) {
		resp, err := owner.GET("/tickets/meta/search", map[string]string{"q": "ground fault"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var tickets []ticket.Ticket
		require.NoError(t, resp.DecodeJSON(&tickets))
		require.NotEmpty(t, tickets)
		numbers := make([]string, 0, len(tickets))
		for _, tk := range tickets {
			numbers = append(numbers, tk.TicketNumber)
		}
		assert.Contains(t, numbers, created.TicketNumber)
	})

	t.Run("Search - Empty Query Returns Empty List", func(t *testing.T) {
		resp, err := owner.GET("/tickets/meta/search")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var tickets []ticket.Ticket
		require.NoError(t, resp.DecodeJSON(&tickets))
		assert.Empty(t, tickets)
	})

	t.Run("Stats - Global and Scoped", func(t *testing.T) {
		resp, err := owner.GET("/tickets/meta/stats")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var stats ticket.Stats
		require.NoError(t, resp.DecodeJSON(&stats))
		assert.GreaterOrEqual(t, stats.Total, 2)
		assert.GreaterOrEqual(t, stats.Open, 1)
		assert.False(t, stats.LastUpdated.IsZero())

		resp, err = stranger.GET("/tickets/meta/stats", map[string]string{"filter": "my-tickets"})
		require.NoError(t, err)

		require.NoError(t, resp.DecodeJSON(&stats))
		assert.Zero(t, stats.Total)
	})

	t.Run("Delete - Forbidden for Non-Owner", func(t *testing.T) {
		resp, err := stranger.DELETE(fmt.Sprintf("/tickets/%d", created.ID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Delete - Admin Can Delete Any Ticket", func(t *testing.T) {
		createResp, err := owner.POST("/tickets", ticketPayload())
		require.NoError(t, err)
		var tk ticket.Ticket
		require.NoError(t, createResp.DecodeJSON(&tk))

		resp, err := admin.DELETE(fmt.Sprintf("/tickets/%d", tk.ID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		getResp, err := owner.GET(fmt.Sprintf("/tickets/%d", tk.ID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, getResp.StatusCode)
	})

	t.Run("Delete - Owner Success", func(t *testing.T) {
		resp, err := owner.DELETE(fmt.Sprintf("/tickets/%d", created.ID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Unauthenticated Access Rejected", func(t *testing.T) {
		anon := NewHTTPClient(ctx.Router, "")
		resp, err := anon.GET("/tickets")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
