package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/venuelink/venue-services/internal/core/domain"
	"github.com/venuelink/venue-services/internal/core/ports"
)

type memEventRepo struct {
	events map[string]*domain.Event
}

func newMemEventRepo() *memEventRepo {
	return &memEventRepo{events: make(map[string]*domain.Event)}
}

func (r *memEventRepo) Create(_ context.Context, e *domain.Event) error {
	r.events[e.ID] = e
	return nil
}

func (r *memEventRepo) FindByID(_ context.Context, id string) (*domain.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *memEventRepo) ListByVenue(_ context.Context, venueID string, publishedOnly bool) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, e := range r.events {
		if e.VenueID != venueID {
			continue
		}
		if publishedOnly && e.Status != domain.EventPublished {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *memEventRepo) Update(_ context.Context, e *domain.Event) error {
	if _, ok := r.events[e.ID]; !ok {
		return domain.ErrEventNotFound
	}
	r.events[e.ID] = e
	return nil
}

func (r *memEventRepo) ReserveTicket(_ context.Context, eventID string) error {
	e, ok := r.events[eventID]
	if !ok {
		return domain.ErrEventNotFound
	}
	if e.TicketsSold >= e.TicketCapacity {
		return domain.ErrEventSoldOut
	}
	e.TicketsSold++
	return nil
}

type memTicketRepo struct {
	mu     sync.Mutex
	byCode map[string]*domain.Ticket
}

func newMemTicketRepo() *memTicketRepo {
	return &memTicketRepo{byCode: make(map[string]*domain.Ticket)}
}

func (r *memTicketRepo) Create(_ context.Context, t *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byCode[t.Code] = t
	return nil
}

func (r *memTicketRepo) FindByCode(_ context.Context, code string) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byCode[code]
	if !ok {
		return nil, domain.ErrTicketNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *memTicketRepo) ListByUser(_ context.Context, userID string) ([]*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Ticket
	for _, t := range r.byCode {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memTicketRepo) Redeem(_ context.Context, code string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byCode[code]
	if !ok {
		return domain.ErrTicketNotFound
	}
	if t.Status != domain.TicketIssued {
		return domain.ErrTicketAlreadyRedeemed
	}
	t.Status = domain.TicketRedeemed
	t.RedeemedAt = &at
	return nil
}

// recordingNotifier captures enqueued notifications for assertions.
type recordingNotifier struct {
	got []ports.NotificationInput
}

func (n *recordingNotifier) Enqueue(in ports.NotificationInput) {
	n.got = append(n.got, in)
}

func seedEvent(repo *memEventRepo, status domain.EventStatus, capacity int) *domain.Event {
	e := &domain.Event{
		ID:             "evt-1",
		VenueID:        "venue-1",
		Name:           "Jazz Night",
		Status:         status,
		StartsAt:       time.Now().Add(24 * time.Hour),
		EndsAt:         time.Now().Add(27 * time.Hour),
		BasePriceCents: 4500,
		TicketCapacity: capacity,
	}
	repo.events[e.ID] = e
	return e
}

func TestTicketService_PurchaseTicket(t *testing.T) {
	events := newMemEventRepo()
	tickets := newMemTicketRepo()
	notifier := &recordingNotifier{}
	seedEvent(events, domain.EventPublished, 2)

	svc := NewTicketService(tickets, events, notifier, zerolog.Nop())

	ticket, err := svc.PurchaseTicket(context.Background(), "evt-1", "user-1")
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if ticket.Code == "" {
		t.Fatal("expected a generated ticket code")
	}
	if ticket.PriceCents != 4500 {
		t.Fatalf("expected price snapshot 4500, got %d", ticket.PriceCents)
	}
	if ticket.Status != domain.TicketIssued {
		t.Fatalf("expected issued status, got %q", ticket.Status)
	}

	if len(notifier.got) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.got))
	}
	if notifier.got[0].Kind != "ticket_issued" {
		t.Fatalf("unexpected notification kind %q", notifier.got[0].Kind)
	}
}

func TestTicketService_PurchaseSoldOut(t *testing.T) {
	events := newMemEventRepo()
	tickets := newMemTicketRepo()
	seedEvent(events, domain.EventPublished, 1)

	svc := NewTicketService(tickets, events, &recordingNotifier{}, zerolog.Nop())

	if _, err := svc.PurchaseTicket(context.Background(), "evt-1", "user-1"); err != nil {
		t.Fatalf("first purchase: %v", err)
	}
	_, err := svc.PurchaseTicket(context.Background(), "evt-1", "user-2")
	if !errors.Is(err, domain.ErrEventSoldOut) {
		t.Fatalf("expected ErrEventSoldOut, got %v", err)
	}
}

func TestTicketService_PurchaseUnpublishedEvent(t *testing.T) {
	events := newMemEventRepo()
	tickets := newMemTicketRepo()
	seedEvent(events, domain.EventDraft, 10)

	svc := NewTicketService(tickets, events, &recordingNotifier{}, zerolog.Nop())

	_, err := svc.PurchaseTicket(context.Background(), "evt-1", "user-1")
	if !errors.Is(err, domain.ErrEventNotPublished) {
		t.Fatalf("expected ErrEventNotPublished, got %v", err)
	}
}

func TestTicketService_RedeemExactlyOnce(t *testing.T) {
	events := newMemEventRepo()
	tickets := newMemTicketRepo()
	seedEvent(events, domain.EventPublished, 5)

	svc := NewTicketService(tickets, events, &recordingNotifier{}, zerolog.Nop())

	ticket, err := svc.PurchaseTicket(context.Background(), "evt-1", "user-1")
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}

	redeemed, err := svc.RedeemTicket(context.Background(), ticket.Code)
	if err != nil {
		t.Fatalf("redeem: %v", err)
	}
	if redeemed.Status != domain.TicketRedeemed {
		t.Fatalf("expected redeemed status, got %q", redeemed.Status)
	}
	if redeemed.RedeemedAt == nil {
		t.Fatal("expected redemption timestamp")
	}

	_, err = svc.RedeemTicket(context.Background(), ticket.Code)
	if !errors.Is(err, domain.ErrTicketAlreadyRedeemed) {
		t.Fatalf("expected ErrTicketAlreadyRedeemed, got %v", err)
	}
}

func TestTicketService_ConcurrentRedeemSingleWinner(t *testing.T) {
	events := newMemEventRepo()
	tickets := newMemTicketRepo()
	seedEvent(events, domain.EventPublished, 5)

	svc := NewTicketService(tickets, events, &recordingNotifier{}, zerolog.Nop())

	ticket, err := svc.PurchaseTicket(context.Background(), "evt-1", "user-1")
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.RedeemTicket(context.Background(), ticket.Code)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var successes, conflicts int
	for err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, domain.ErrTicketAlreadyRedeemed):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 || conflicts != 1 {
		t.Fatalf("expected exactly one redemption, got %d successes and %d conflicts", successes, conflicts)
	}
}

func TestTicketService_RedeemUnknownCode(t *testing.T) {
	svc := NewTicketService(newMemTicketRepo(), newMemEventRepo(), &recordingNotifier{}, zerolog.Nop())

	_, err := svc.RedeemTicket(context.Background(), "no-such-code")
	if !errors.Is(err, domain.ErrTicketNotFound) {
		t.Fatalf("expected ErrTicketNotFound, got %v", err)
	}
}
