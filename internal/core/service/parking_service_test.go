package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/venuelink/venue-services/internal/core/domain"
)

type memLotRepo struct {
	mu   sync.Mutex
	lots map[string]*domain.ParkingLot
}

func newMemLotRepo() *memLotRepo {
	return &memLotRepo{lots: make(map[string]*domain.ParkingLot)}
}

func (r *memLotRepo) Create(_ context.Context, lot *domain.ParkingLot) error {
	r.lots[lot.ID] = lot
	return nil
}

func (r *memLotRepo) FindByID(_ context.Context, id string) (*domain.ParkingLot, error) {
	lot, ok := r.lots[id]
	if !ok {
		return nil, domain.ErrParkingLotNotFound
	}
	cp := *lot
	return &cp, nil
}

func (r *memLotRepo) ListByVenue(_ context.Context, venueID string) ([]*domain.ParkingLot, error) {
	var out []*domain.ParkingLot
	for _, lot := range r.lots {
		if lot.VenueID == venueID {
			out = append(out, lot)
		}
	}
	return out, nil
}

func (r *memLotRepo) Update(_ context.Context, lot *domain.ParkingLot) error {
	if _, ok := r.lots[lot.ID]; !ok {
		return domain.ErrParkingLotNotFound
	}
	r.lots[lot.ID] = lot
	return nil
}

func (r *memLotRepo) Occupy(_ context.Context, lotID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	lot, ok := r.lots[lotID]
	if !ok {
		return domain.ErrParkingLotNotFound
	}
	if lot.Occupied >= lot.Spaces {
		return domain.ErrParkingLotFull
	}
	lot.Occupied++
	return nil
}

func (r *memLotRepo) Release(_ context.Context, lotID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	lot, ok := r.lots[lotID]
	if !ok {
		return domain.ErrParkingLotNotFound
	}
	if lot.Occupied > 0 {
		lot.Occupied--
	}
	return nil
}

type memSessionRepo struct {
	mu        sync.Mutex
	sessions  map[string]*domain.ParkingSession
	createErr error
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: make(map[string]*domain.ParkingSession)}
}

func (r *memSessionRepo) Create(_ context.Context, s *domain.ParkingSession) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.sessions[s.ID] = s
	return nil
}

func (r *memSessionRepo) FindByID(_ context.Context, id string) (*domain.ParkingSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrParkingSessionNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *memSessionRepo) ListOpenByLot(_ context.Context, lotID string) ([]*domain.ParkingSession, error) {
	var out []*domain.ParkingSession
	for _, s := range r.sessions {
		if s.LotID == lotID && s.ClosedAt == nil {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memSessionRepo) Close(_ context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return domain.ErrParkingSessionNotFound
	}
	if s.ClosedAt != nil {
		return domain.ErrParkingSessionClosed
	}
	s.ClosedAt = &at
	return nil
}

func seedLot(lots *memLotRepo, spaces int) *domain.ParkingLot {
	lot := &domain.ParkingLot{
		ID:       "lot-1",
		VenueID:  "venue-1",
		Name:     "North Garage",
		Spaces:   spaces,
		IsActive: true,
	}
	lots.lots[lot.ID] = lot
	return lot
}

func TestParkingService_OpenSessionUntilFull(t *testing.T) {
	lots := newMemLotRepo()
	sessions := newMemSessionRepo()
	seedLot(lots, 2)

	svc := NewParkingService(lots, sessions, nil, zerolog.Nop())

	if _, err := svc.OpenSession(context.Background(), "lot-1", "user-1", "ABC-1234"); err != nil {
		t.Fatalf("first session: %v", err)
	}
	if _, err := svc.OpenSession(context.Background(), "lot-1", "user-2", "DEF-5678"); err != nil {
		t.Fatalf("second session: %v", err)
	}

	_, err := svc.OpenSession(context.Background(), "lot-1", "user-3", "GHI-9012")
	if !errors.Is(err, domain.ErrParkingLotFull) {
		t.Fatalf("expected ErrParkingLotFull, got %v", err)
	}
}

func TestParkingService_OpenSessionRollsBackOnCreateFailure(t *testing.T) {
	lots := newMemLotRepo()
	sessions := newMemSessionRepo()
	sessions.createErr = errors.New("write failed")
	seedLot(lots, 1)

	svc := NewParkingService(lots, sessions, nil, zerolog.Nop())

	if _, err := svc.OpenSession(context.Background(), "lot-1", "user-1", "ABC-1234"); err == nil {
		t.Fatal("expected create failure to propagate")
	}
	if lots.lots["lot-1"].Occupied != 0 {
		t.Fatalf("claimed space not released, occupied=%d", lots.lots["lot-1"].Occupied)
	}
}

func TestParkingService_CloseSessionPermissions(t *testing.T) {
	owner := &domain.User{ID: "user-1", Role: domain.RoleCustomer}
	stranger := &domain.User{ID: "user-2", Role: domain.RoleCustomer}
	staff := &domain.User{ID: "user-3", Role: domain.RoleVenueStaff}

	open := func(t *testing.T) (*ParkingService, *memLotRepo, string) {
		t.Helper()
		lots := newMemLotRepo()
		sessions := newMemSessionRepo()
		seedLot(lots, 5)
		svc := NewParkingService(lots, sessions, nil, zerolog.Nop())
		session, err := svc.OpenSession(context.Background(), "lot-1", owner.ID, "ABC-1234")
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		return svc, lots, session.ID
	}

	t.Run("owner can close", func(t *testing.T) {
		svc, lots, id := open(t)
		closed, err := svc.CloseSession(context.Background(), id, owner)
		if err != nil {
			t.Fatalf("close: %v", err)
		}
		if closed.ClosedAt == nil {
			t.Fatal("expected close timestamp")
		}
		if lots.lots["lot-1"].Occupied != 0 {
			t.Fatal("space not released on close")
		}
	})

	t.Run("other customer cannot close", func(t *testing.T) {
		svc, _, id := open(t)
		_, err := svc.CloseSession(context.Background(), id, stranger)
		if !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("staff can close any session", func(t *testing.T) {
		svc, _, id := open(t)
		if _, err := svc.CloseSession(context.Background(), id, staff); err != nil {
			t.Fatalf("staff close: %v", err)
		}
	})
}

func TestParkingService_CloseTwice(t *testing.T) {
	lots := newMemLotRepo()
	sessions := newMemSessionRepo()
	seedLot(lots, 5)
	owner := &domain.User{ID: "user-1", Role: domain.RoleCustomer}

	svc := NewParkingService(lots, sessions, nil, zerolog.Nop())
	session, err := svc.OpenSession(context.Background(), "lot-1", owner.ID, "ABC-1234")
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if _, err := svc.CloseSession(context.Background(), session.ID, owner); err != nil {
		t.Fatalf("first close: %v", err)
	}
	_, err = svc.CloseSession(context.Background(), session.ID, owner)
	if !errors.Is(err, domain.ErrParkingSessionClosed) {
		t.Fatalf("expected ErrParkingSessionClosed, got %v", err)
	}

	// The space must only be released once.
	if lots.lots["lot-1"].Occupied != 0 {
		t.Fatalf("unexpected occupancy %d", lots.lots["lot-1"].Occupied)
	}
}

func TestParkingService_ConcurrentCloseReleasesOnce(t *testing.T) {
	lots := newMemLotRepo()
	sessions := newMemSessionRepo()
	seedLot(lots, 5)
	owner := &domain.User{ID: "user-1", Role: domain.RoleCustomer}

	svc := NewParkingService(lots, sessions, nil, zerolog.Nop())
	first, err := svc.OpenSession(context.Background(), "lot-1", owner.ID, "ABC-1234")
	if err != nil {
		t.Fatalf("open first: %v", err)
	}
	// A second open session keeps the counter away from zero so a double
	// release would be visible instead of clamped.
	if _, err := svc.OpenSession(context.Background(), "lot-1", "user-2", "DEF-5678"); err != nil {
		t.Fatalf("open second: %v", err)
	}

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CloseSession(context.Background(), first.ID, owner)
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
		case errors.Is(err, domain.ErrParkingSessionClosed):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 || conflicts != 1 {
		t.Fatalf("expected exactly one close, got %d successes and %d conflicts", successes, conflicts)
	}
	if lots.lots["lot-1"].Occupied != 1 {
		t.Fatalf("expected one space still occupied, got %d", lots.lots["lot-1"].Occupied)
	}
}
