package application

import (
	"errors"
	"log"
	"time"

	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/domain/ticket"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrTicketNotFound  = errors.New("ticket not found")
	ErrTicketForbidden = errors.New("not allowed to delete this ticket")
)

// MissingFieldsError lists every required creation field absent from the
// payload, not just the first one.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	msg := "missing required fields:"
	for _, f := range e.Fields {
		msg += " " + f
	}
	return msg
}

type TicketService struct {
	Repos *repository.Repos
}

func NewTicketService(repos *repository.Repos) *TicketService {
	return &TicketService{Repos: repos}
}

// Create normalizes the payload (aliases, defaults), validates required
// fields, and persists the ticket owned by the caller. The stored row is
// re-read so the response carries the creator join and the assigned number.
func (s *TicketService) Create(raw map[string]any, callerID uint) (*ticket.Ticket, error) {
	normalized := ticket.Normalize(raw)

	if missing := ticket.MissingRequired(normalized); len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	t := ticket.Build(normalized, callerID)
	if err := s.Repos.Ticket.CreateTicket(t); err != nil {
		return nil, err
	}
	return s.Repos.Ticket.GetTicketByID(t.ID)
}

func (s *TicketService) Get(id uint) (*ticket.Ticket, error) {
	t, err := s.Repos.Ticket.GetTicketByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *TicketService) List(params repository.TicketListParams) ([]ticket.Ticket, error) {
	return s.Repos.Ticket.ListTickets(params)
}

func (s *TicketService) Search(query string) ([]ticket.Ticket, error) {
	return s.Repos.Ticket.SearchTickets(query)
}

// Update applies the allow-listed fields to the ticket. Any authenticated
// user may update any ticket; collaboration is preferred over strict
// ownership here. If at least one tracked field changed, one history entry is
// appended; a history write failure is logged and swallowed, never failing
// the update. updated_at is refreshed either way.
func (s *TicketService) Update(id uint, raw map[string]any, callerID uint, reason string) (*ticket.Ticket, error) {
	t, err := s.Repos.Ticket.GetTicketByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}

	updates := ticket.NormalizeUpdate(raw)
	changes := ticket.Diff(t, updates)

	now := time.Now()
	ticket.Apply(t, updates, now)
	t.UpdatedAt = now

	if err := s.Repos.Ticket.SaveTicket(t); err != nil {
		return nil, err
	}

	if len(changes) > 0 {
		s.recordHistory(t.ID, callerID, changes, reason)
	}

	return s.Repos.Ticket.GetTicketByID(t.ID)
}

// recordHistory is a best-effort side effect, deliberately separated from the
// primary write. It never propagates an error.
func (s *TicketService) recordHistory(ticketID, userID uint, changes map[string]ticket.Change, reason string) {
	if reason == "" {
		reason = ticket.DefaultHistoryReason
	}

	payload := make(datatypes.JSONMap, len(changes))
	for field, change := range changes {
		payload[field] = map[string]any{"old": change.Old, "new": change.New}
	}

	entry := &ticket.TicketHistory{
		TicketID: ticketID,
		UserID:   userID,
		Changes:  payload,
		Reason:   reason,
	}
	if err := s.Repos.History.CreateHistory(entry); err != nil {
		log.Printf("[TicketService] history write for ticket %d failed: %v", ticketID, err)
	}
}

// Delete removes a ticket. Only the owner or an admin may delete.
func (s *TicketService) Delete(id uint, callerID uint, callerIsAdmin bool) error {
	t, err := s.Repos.Ticket.GetTicketByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTicketNotFound
		}
		return err
	}
	if t.UserID != callerID && !callerIsAdmin {
		return ErrTicketForbidden
	}
	return s.Repos.Ticket.DeleteTicket(id)
}

func (s *TicketService) History(ticketID uint) ([]ticket.TicketHistory, error) {
	if _, err := s.Repos.Ticket.GetTicketByID(ticketID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return s.Repos.History.ListHistoryByTicket(ticketID)
}

// Stats computes the dashboard snapshot in one pass over minimal projections.
// Only the three canonical statuses and categories are bucketed; tickets with
// other values count toward the total but no bucket.
func (s *TicketService) Stats(ownerID *uint) (*ticket.Stats, error) {
	rows, err := s.Repos.Ticket.ListStatsRows(ownerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	today := now.Format("2006-01-02")
	weekAgo := now.AddDate(0, 0, -7)
	monthAgo := now.AddDate(0, 0, -30)

	stats := &ticket.Stats{Total: len(rows), LastUpdated: now}
	for _, row := range rows {
		switch row.TicketStatus {
		case ticket.StatusOpen:
			stats.Open++
		case ticket.StatusClosed:
			stats.Closed++
		case ticket.StatusPending:
			stats.Pending++
		}

		switch row.Category {
		case ticket.CategoryProductionImpacting:
			stats.ProductionImpacting++
		case ticket.CategoryNonProduction:
			stats.NonProduction++
		case ticket.CategoryPreventive:
			stats.Preventive++
		}

		if row.CreatedAt.Format("2006-01-02") == today {
			stats.CreatedToday++
		}
		if !row.CreatedAt.Before(weekAgo) {
			stats.CreatedWeek++
		}
		if !row.CreatedAt.Before(monthAgo) {
			stats.CreatedMonth++
		}
	}
	return stats, nil
}
