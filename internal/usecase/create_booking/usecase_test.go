package create_booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/domain"
	slotRepo "github.com/Peguy24/paola-s-glam-studio-sub000/internal/infra/storage/slot"
	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/integrations/notifier"
	"github.com/Peguy24/paola-s-glam-studio-sub000/pkg/types"
)

// Фейки

type fakeSlotRepo struct {
	slot *domain.Slot
	err  error
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.Slot, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.slot == nil || f.slot.ID != id {
		return nil, slotRepo.ErrSlotNotFound
	}
	s := *f.slot
	return &s, nil
}

// fakeBookingRepo хранит бронирования в памяти
type fakeBookingRepo struct {
	mu        sync.Mutex
	nextID    int64
	bookings  []*domain.Booking
	createErr error
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return nil, f.createErr
	}

	f.nextID++
	created := *booking
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.bookings = append(f.bookings, &created)

	result := created
	return &result, nil
}

func (f *fakeBookingRepo) CountActiveBySlot(_ context.Context, slotID int64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	count := 0
	for _, b := range f.bookings {
		if b.SlotID == slotID && b.IsActive() {
			count++
		}
	}
	return count, nil
}

// fakeTxManager сериализует транзакции мьютексом: проверка вместимости и
// вставка внутри fn становятся одной атомарной единицей, как в настоящей
// сериализуемой транзакции с блокировкой строки
type fakeTxManager struct {
	mu sync.Mutex
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(ctx)
}

type fakeNotifier struct {
	mu            sync.Mutex
	notifications []notifier.Notification
}

func (f *fakeNotifier) NotifyAsync(n notifier.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notifications = append(f.notifications, n)
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.notifications)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct {
	t time.Time
}

func (f *fixedTime) Now() time.Time { return f.t }

// Хелперы

func testSlot() *domain.Slot {
	return &domain.Slot{
		ID:        1,
		Date:      time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("11:00"),
		Capacity:  3,
		Available: true,
	}
}

func testRequest() *Request {
	return &Request{
		ClientID:    42,
		SlotID:      1,
		ServiceID:   7,
		ServiceName: "Маникюр",
		PriceCents:  5000,
	}
}

func newTestUseCase(slot *domain.Slot) (*UseCase, *fakeBookingRepo, *fakeNotifier) {
	bookings := &fakeBookingRepo{}
	notifications := &fakeNotifier{}

	uc := NewUseCase(
		&fakeSlotRepo{slot: slot},
		bookings,
		notifications,
		&fakeTxManager{},
		nopLogger{},
	)
	// За неделю до слота
	uc.timeProvider = &fixedTime{t: time.Date(2025, 10, 13, 10, 0, 0, 0, time.UTC)}

	return uc, bookings, notifications
}

// Тесты

func TestExecute_Success(t *testing.T) {
	uc, bookings, notifications := newTestUseCase(testSlot())

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, int64(42), resp.ClientID)
	assert.Equal(t, int64(5000), resp.PriceCents)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)

	require.Len(t, bookings.bookings, 1)
	created := bookings.bookings[0]
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, domain.PaymentUnpaid, created.PaymentStatus)

	require.Equal(t, 1, notifications.count())
	assert.Equal(t, domain.TemplateBookingCreated, notifications.notifications[0].TemplateKey)
	assert.Equal(t, int64(42), notifications.notifications[0].RecipientID)
}

func TestExecute_SlotNotFound(t *testing.T) {
	uc, _, notifications := newTestUseCase(nil)

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrSlotNotFound)
	assert.Equal(t, 0, notifications.count())
}

func TestExecute_SlotUnavailable(t *testing.T) {
	slot := testSlot()
	slot.Available = false
	uc, bookings, _ := newTestUseCase(slot)

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Empty(t, bookings.bookings)
}

func TestExecute_SlotInPast(t *testing.T) {
	slot := testSlot()
	slot.Date = time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	uc, bookings, _ := newTestUseCase(slot)

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrSlotInPast)
	assert.Empty(t, bookings.bookings)
}

func TestExecute_SlotFull(t *testing.T) {
	slot := testSlot()
	slot.Capacity = 1
	uc, bookings, notifications := newTestUseCase(slot)

	_, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	secondReq := testRequest()
	secondReq.ClientID = 43
	_, err = uc.Execute(context.Background(), secondReq)
	assert.ErrorIs(t, err, ErrSlotFull)

	assert.Len(t, bookings.bookings, 1)
	assert.Equal(t, 1, notifications.count())
}

func TestExecute_CancelledBookingsFreeTheSpot(t *testing.T) {
	slot := testSlot()
	slot.Capacity = 1
	uc, bookings, _ := newTestUseCase(slot)

	_, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	// Отмененное бронирование не занимает место
	bookings.mu.Lock()
	bookings.bookings[0].Status = domain.StatusCancelled
	bookings.mu.Unlock()

	secondReq := testRequest()
	secondReq.ClientID = 43
	_, err = uc.Execute(context.Background(), secondReq)
	assert.NoError(t, err)
}

func TestExecute_Validation(t *testing.T) {
	uc, _, _ := newTestUseCase(testSlot())

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "zero client", mutate: func(r *Request) { r.ClientID = 0 }},
		{name: "zero slot", mutate: func(r *Request) { r.SlotID = 0 }},
		{name: "zero service", mutate: func(r *Request) { r.ServiceID = 0 }},
		{name: "empty service name", mutate: func(r *Request) { r.ServiceName = "" }},
		{name: "negative price", mutate: func(r *Request) { r.PriceCents = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

// Ключевое свойство: при N конкурентных запросах на слот вместимости C
// успешными оказываются ровно C, остальные получают ErrSlotFull
func TestExecute_ConcurrentBookingsNeverExceedCapacity(t *testing.T) {
	const capacity = 3
	const attempts = 20

	slot := testSlot()
	slot.Capacity = capacity
	uc, bookings, notifications := newTestUseCase(slot)

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := testRequest()
			req.ClientID = int64(100 + i)
			_, errs[i] = uc.Execute(context.Background(), req)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	full := 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrSlotFull):
			full++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, capacity, succeeded)
	assert.Equal(t, attempts-capacity, full)
	assert.Len(t, bookings.bookings, capacity)
	assert.Equal(t, capacity, notifications.count())
}
