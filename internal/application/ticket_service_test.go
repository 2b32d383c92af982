package application

import (
	"errors"
	"testing"
	"time"

	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/domain/ticket"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/repository"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupTicketServiceMocks(t *testing.T) (*TicketService, *mock.MockTicketRepo, *mock.MockHistoryRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockTicket := mock.NewMockTicketRepo(ctrl)
	mockHistory := mock.NewMockHistoryRepo(ctrl)
	repos := &repository.Repos{
		Ticket:  mockTicket,
		History: mockHistory,
	}
	svc := NewTicketService(repos)
	return svc, mockTicket, mockHistory
}

func validCreatePayload() map[string]any {
	return map[string]any{
		"equipment":         "Solar Panel Array",
		"category":          "Production Impacting",
		"issue_start_time":  "2024-01-01T10:00:00",
		"issue_description": "Inverter fault",
	}
}

// --------------------- Create ---------------------
func TestCreateTicket_Success(t *testing.T) {
	svc, mockTicket, _ := setupTicketServiceMocks(t)

	var created *ticket.Ticket
	mockTicket.EXPECT().CreateTicket(gomock.Any()).DoAndReturn(func(tk *ticket.Ticket) error {
		tk.ID = 10
		tk.TicketNumber = "TKT-000010"
		created = tk
		return nil
	})
	mockTicket.EXPECT().GetTicketByID(uint(10)).DoAndReturn(func(uint) (*ticket.Ticket, error) {
		return created, nil
	})

	got, err := svc.Create(validCreatePayload(), 7)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), got.UserID)
	assert.Equal(t, "TKT-000010", got.TicketNumber)
	assert.Equal(t, ticket.StatusOpen, got.TicketStatus)
	assert.Equal(t, "Medium", got.Priority)
}

func TestCreateTicket_OwnerIsCallerNotPayload(t *testing.T) {
	svc, mockTicket, _ := setupTicketServiceMocks(t)

	payload := validCreatePayload()
	payload["user_id"] = float64(99)

	mockTicket.EXPECT().CreateTicket(gomock.Any()).DoAndReturn(func(tk *ticket.Ticket) error {
		assert.Equal(t, uint(7), tk.UserID)
		tk.ID = 11
		return nil
	})
	mockTicket.EXPECT().GetTicketByID(uint(11)).Return(&ticket.Ticket{ID: 11, UserID: 7}, nil)

	_, err := svc.Create(payload, 7)
	assert.NoError(t, err)
}

func TestCreateTicket_MissingFieldsListed(t *testing.T) {
	svc, _, _ := setupTicketServiceMocks(t)

	_, err := svc.Create(map[string]any{"equipment": "Inverter"}, 1)

	var missing *MissingFieldsError
	if assert.ErrorAs(t, err, &missing) {
		assert.Equal(t, []string{"category", "issue_description", "issue_start_time"}, missing.Fields)
	}
}

func TestCreateTicket_AliasedRequiredFieldsAccepted(t *testing.T) {
	svc, mockTicket, _ := setupTicketServiceMocks(t)

	payload := map[string]any{
		"equipment":        "Inverter",
		"category":         "Preventive Maintenance",
		"issueStartTime":   "2024-01-01T10:00:00",
		"issueDescription": "routine check",
	}

	mockTicket.EXPECT().CreateTicket(gomock.Any()).DoAndReturn(func(tk *ticket.Ticket) error {
		tk.ID = 12
		return nil
	})
	mockTicket.EXPECT().GetTicketByID(uint(12)).Return(&ticket.Ticket{ID: 12}, nil)

	_, err := svc.Create(payload, 1)
	assert.NoError(t, err)
}

// --------------------- Update ---------------------
func existingTicket() *ticket.Ticket {
	return &ticket.Ticket{
		ID:               20,
		UserID:           7,
		TicketStatus:     ticket.StatusOpen,
		StatusCode:       1,
		Category:         ticket.CategoryProductionImpacting,
		CategoryCode:     1,
		Priority:         "Medium",
		IssueDescription: "Inverter fault",
	}
}

func TestUpdateTicket_ChangeWritesOneHistoryEntry(t *testing.T) {
	svc, mockTicket, mockHistory := setupTicketServiceMocks(t)

	tk := existingTicket()
	mockTicket.EXPECT().GetTicketByID(uint(20)).Return(tk, nil)
	mockTicket.EXPECT().SaveTicket(tk).Return(nil)

	var entry *ticket.TicketHistory
	mockHistory.EXPECT().CreateHistory(gomock.Any()).DoAndReturn(func(e *ticket.TicketHistory) error {
		entry = e
		return nil
	})
	mockTicket.EXPECT().GetTicketByID(uint(20)).Return(tk, nil)

	_, err := svc.Update(20, map[string]any{"ticket_status": "Closed"}, 3, "Resolved by reset")
	assert.NoError(t, err)

	assert.Equal(t, uint(20), entry.TicketID)
	assert.Equal(t, uint(3), entry.UserID)
	assert.Equal(t, "Resolved by reset", entry.Reason)
	assert.Len(t, entry.Changes, 1)
	assert.Equal(t, map[string]any{"old": "Open", "new": "Closed"}, entry.Changes["ticket_status"])
}

func TestUpdateTicket_NoChangeNoHistory(t *testing.T) {
	svc, mockTicket, _ := setupTicketServiceMocks(t)

	tk := existingTicket()
	before := tk.UpdatedAt

	mockTicket.EXPECT().GetTicketByID(uint(20)).Return(tk, nil)
	mockTicket.EXPECT().SaveTicket(tk).Return(nil)
	mockTicket.EXPECT().GetTicketByID(uint(20)).Return(tk, nil)

	// Same stringified values: no history expectation is registered, so any
	// CreateHistory call would fail the test.
	_, err := svc.Update(20, map[string]any{"ticket_status": "Open", "priority": "Medium"}, 3, "")
	assert.NoError(t, err)
	assert.True(t, tk.UpdatedAt.After(before))
}

func TestUpdateTicket_DefaultReason(t *testing.T) {
	svc, mockTicket, mockHistory := setupTicketServiceMocks(t)

	tk := existingTicket()
	mockTicket.EXPECT().GetTicketByID(uint(20)).Return(tk, nil)
	mockTicket.EXPECT().SaveTicket(tk).Return(nil)

	var entry *ticket.TicketHistory
	mockHistory.EXPECT().CreateHistory(gomock.Any()).DoAndReturn(func(e *ticket.TicketHistory) error {
		entry = e
		return nil
	})
	mockTicket.EXPECT().GetTicketByID(uint(20)).Return(tk, nil)

	_, err := svc.Update(20, map[string]any{"priority": "High"}, 3, "")
	assert.NoError(t, err)
	assert.Equal(t, ticket.DefaultHistoryReason, entry.Reason)
}

func TestUpdateTicket_HistoryFailureIsSwallowed(t *testing.T) {
	svc, mockTicket, mockHistory := setupTicketServiceMocks(t)

	tk := existingTicket()
	mockTicket.EXPECT().GetTicketByID(uint(20)).Return(tk, nil)
	mockTicket.EXPECT().SaveTicket(tk).Return(nil)
	mockHistory.EXPECT().CreateHistory(gomock.Any()).Return(errors.New("history table gone"))
	mockTicket.EXPECT().GetTicketByID(uint(20)).Return(tk, nil)

	_, err := svc.Update(20, map[string]any{"priority": "High"}, 3, "")
	assert.NoError(t, err)
}

func TestUpdateTicket_NotFound(t *testing.T) {
	svc, mockTicket, _ := setupTicketServiceMocks(t)

	mockTicket.EXPECT().GetTicketByID(uint(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Update(404, map[string]any{"priority": "High"}, 3, "")
	assert.Equal(t, ErrTicketNotFound, err)
}

// --------------------- Delete ---------------------
func TestDeleteTicket_OwnerSucceeds(t *testing.T) {
	svc, mockTicket, _ := setupTicketServiceMocks(t)

	mockTicket.EXPECT().GetTicketByID(uint(20)).Return(existingTicket(), nil)
	mockTicket.EXPECT().DeleteTicket(uint(20)).Return(nil)

	assert.NoError(t, svc.Delete(20, 7, false))
}

func TestDeleteTicket_AdminSucceeds(t *testing.T) {
	svc, mockTicket, _ := setupTicketServiceMocks(t)

	mockTicket.EXPECT().GetTicketByID(uint(20)).Return(existingTicket(), nil)
	mockTicket.EXPECT().DeleteTicket(uint(20)).Return(nil)

	assert.NoError(t, svc.Delete(20, 99, true))
}

func TestDeleteTicket_StrangerForbidden(t *testing.T) {
	svc, mockTicket, _ := setupTicketServiceMocks(t)

	mockTicket.EXPECT().GetTicketByID(uint(20)).Return(existingTicket(), nil)

	assert.Equal(t, ErrTicketForbidden, svc.Delete(20, 99, false))
}

// --------------------- History ---------------------
func TestHistory_TicketMissing(t *testing.T) {
	svc, mockTicket, _ := setupTicketServiceMocks(t)

	mockTicket.EXPECT().GetTicketByID(uint(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.History(404)
	assert.Equal(t, ErrTicketNotFound, err)
}

// --------------------- Stats ---------------------
func TestStats_Buckets(t *testing.T) {
	svc, mockTicket, _ := setupTicketServiceMocks(t)

	now := time.Now()
	rows := []repository.StatsRow{
		{TicketStatus: ticket.StatusOpen, Category: ticket.CategoryProductionImpacting, CreatedAt: now},
		{TicketStatus: ticket.StatusClosed, Category: ticket.CategoryNonProduction, CreatedAt: now.AddDate(0, 0, -3)},
		{TicketStatus: ticket.StatusPending, Category: ticket.CategoryPreventive, CreatedAt: now.AddDate(0, 0, -20)},
		{TicketStatus: "Escalated", Category: "Other", CreatedAt: now.AddDate(0, 0, -60)},
	}
	mockTicket.EXPECT().ListStatsRows(nil).Return(rows, nil)

	stats, err := svc.Stats(nil)
	assert.NoError(t, err)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Open)
	assert.Equal(t, 1, stats.Closed)
	assert.Equal(t, 1, stats.Pending)
	// The unrecognized status counts toward the total but no bucket.
	assert.Equal(t, 3, stats.Open+stats.Closed+stats.Pending)

	assert.Equal(t, 1, stats.ProductionImpacting)
	assert.Equal(t, 1, stats.NonProduction)
	assert.Equal(t, 1, stats.Preventive)

	assert.Equal(t, 1, stats.CreatedToday)
	assert.Equal(t, 2, stats.CreatedWeek)
	assert.Equal(t, 3, stats.CreatedMonth)
	assert.False(t, stats.LastUpdated.IsZero())
}

func TestStats_OwnerFilterPassedThrough(t *testing.T) {
	svc, mockTicket, _ := setupTicketServiceMocks(t)

	owner := uint(7)
	mockTicket.EXPECT().ListStatsRows(&owner).Return([]repository.StatsRow{}, nil)

	stats, err := svc.Stats(&owner)
	assert.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
}
