package slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/domain"
	slotRepo "github.com/Peguy24/paola-s-glam-studio-sub000/internal/infra/storage/slot"
	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/integrations/notifier"
	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/service/slots/models"
	"github.com/Peguy24/paola-s-glam-studio-sub000/pkg/types"
)

type fakeSlotRepo struct {
	slot *domain.Slot

	created *domain.Slot
	updated *domain.Slot
	deleted []int64

	createErr error
}

func (f *fakeSlotRepo) Create(_ context.Context, slot *domain.Slot) (*domain.Slot, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *slot
	created.ID = 100
	f.created = &created
	result := created
	return &result, nil
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.Slot, error) {
	if f.slot == nil || f.slot.ID != id {
		return nil, slotRepo.ErrSlotNotFound
	}
	s := *f.slot
	return &s, nil
}

func (f *fakeSlotRepo) FindByDateTimeRange(_ context.Context, _ time.Time, _, _ types.TimeString) (*domain.Slot, error) {
	return nil, slotRepo.ErrSlotNotFound
}

func (f *fakeSlotRepo) ListByDateRange(_ context.Context, _, _ time.Time, onlyAvailable bool) ([]*domain.Slot, error) {
	if f.slot == nil {
		return nil, nil
	}
	if onlyAvailable && !f.slot.Available {
		return nil, nil
	}
	return []*domain.Slot{f.slot}, nil
}

func (f *fakeSlotRepo) Update(_ context.Context, slot *domain.Slot) error {
	updated := *slot
	f.updated = &updated
	return nil
}

func (f *fakeSlotRepo) Delete(_ context.Context, id int64) error {
	if f.slot == nil || f.slot.ID != id {
		return slotRepo.ErrSlotNotFound
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeBookingRepo struct {
	active []*domain.Booking
}

func (f *fakeBookingRepo) ListActiveBySlot(_ context.Context, _ int64) ([]*domain.Booking, error) {
	return f.active, nil
}

type fakeNotifier struct {
	notifications []notifier.Notification
}

func (f *fakeNotifier) NotifyAsync(n notifier.Notification) {
	f.notifications = append(f.notifications, n)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

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

func newTestService(slot *domain.Slot, active []*domain.Booking) (*Service, *fakeSlotRepo, *fakeNotifier) {
	slots := &fakeSlotRepo{slot: slot}
	notifs := &fakeNotifier{}
	svc := NewService(slots, &fakeBookingRepo{active: active}, notifs, nopLogger{})
	return svc, slots, notifs
}

func TestCreate(t *testing.T) {
	t.Run("valid slot", func(t *testing.T) {
		svc, slots, _ := newTestService(nil, nil)

		resp, err := svc.Create(context.Background(), &models.CreateSlotRequest{
			Date:      "2025-10-20",
			StartTime: "10:00",
			EndTime:   "11:00",
			Capacity:  3,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(100), resp.ID)
		assert.True(t, resp.Available)
		require.NotNil(t, slots.created)
		assert.Equal(t, 3, slots.created.Capacity)
	})

	t.Run("capacity out of range", func(t *testing.T) {
		svc, _, _ := newTestService(nil, nil)

		_, err := svc.Create(context.Background(), &models.CreateSlotRequest{
			Date:      "2025-10-20",
			StartTime: "10:00",
			EndTime:   "11:00",
			Capacity:  51,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("start after end", func(t *testing.T) {
		svc, _, _ := newTestService(nil, nil)

		_, err := svc.Create(context.Background(), &models.CreateSlotRequest{
			Date:      "2025-10-20",
			StartTime: "12:00",
			EndTime:   "11:00",
			Capacity:  3,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("duplicate date and time", func(t *testing.T) {
		svc, slots, _ := newTestService(nil, nil)
		slots.createErr = slotRepo.ErrDuplicateSlot

		_, err := svc.Create(context.Background(), &models.CreateSlotRequest{
			Date:      "2025-10-20",
			StartTime: "10:00",
			EndTime:   "11:00",
			Capacity:  3,
		})
		assert.ErrorIs(t, err, ErrDuplicateSlot)
	})
}

func TestUpdate_NotifiesActiveClients(t *testing.T) {
	active := []*domain.Booking{
		{ID: 1, SlotID: 1, ClientID: 42, Status: domain.StatusConfirmed},
		{ID: 2, SlotID: 1, ClientID: 43, Status: domain.StatusPending},
	}
	svc, slots, notifs := newTestService(testSlot(), active)

	newCapacity := 5
	resp, err := svc.Update(context.Background(), 1, &models.UpdateSlotRequest{Capacity: &newCapacity})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Capacity)
	require.NotNil(t, slots.updated)

	// Оба клиента с активными бронированиями получают уведомление
	require.Len(t, notifs.notifications, 2)
	assert.Equal(t, domain.TemplateSlotChanged, notifs.notifications[0].TemplateKey)
	assert.Equal(t, int64(42), notifs.notifications[0].RecipientID)
	assert.Equal(t, int64(43), notifs.notifications[1].RecipientID)
}

func TestDelete(t *testing.T) {
	t.Run("empty slot is deleted silently", func(t *testing.T) {
		svc, slots, notifs := newTestService(testSlot(), nil)

		require.NoError(t, svc.Delete(context.Background(), 1, false))
		assert.Equal(t, []int64{1}, slots.deleted)
		assert.Empty(t, notifs.notifications)
	})

	t.Run("active bookings require force", func(t *testing.T) {
		active := []*domain.Booking{{ID: 1, SlotID: 1, ClientID: 42, Status: domain.StatusConfirmed}}
		svc, slots, _ := newTestService(testSlot(), active)

		err := svc.Delete(context.Background(), 1, false)
		assert.ErrorIs(t, err, ErrHasActiveBookings)
		assert.Empty(t, slots.deleted)
	})

	t.Run("force delete notifies affected clients", func(t *testing.T) {
		active := []*domain.Booking{{ID: 1, SlotID: 1, ClientID: 42, Status: domain.StatusConfirmed}}
		svc, slots, notifs := newTestService(testSlot(), active)

		require.NoError(t, svc.Delete(context.Background(), 1, true))
		assert.Equal(t, []int64{1}, slots.deleted)
		require.Len(t, notifs.notifications, 1)
		assert.Equal(t, "deleted", notifs.notifications[0].Context["change"])
		assert.Equal(t, int64(42), notifs.notifications[0].RecipientID)
	})

	t.Run("missing slot", func(t *testing.T) {
		svc, _, _ := newTestService(nil, nil)
		assert.ErrorIs(t, svc.Delete(context.Background(), 1, false), ErrSlotNotFound)
	})
}

func TestDuplicate(t *testing.T) {
	t.Run("copies times and capacity to target date", func(t *testing.T) {
		source := testSlot()
		patternID := int64(9)
		source.PatternID = &patternID
		svc, slots, _ := newTestService(source, nil)

		resp, err := svc.Duplicate(context.Background(), 1, &models.DuplicateSlotRequest{TargetDate: "2025-10-27"})
		require.NoError(t, err)

		assert.Equal(t, "2025-10-27", resp.Date)
		assert.Equal(t, "10:00", resp.StartTime)
		assert.Equal(t, 3, resp.Capacity)
		// Копия — ручной слот
		assert.Nil(t, slots.created.PatternID)
	})

	t.Run("invalid target date", func(t *testing.T) {
		svc, _, _ := newTestService(testSlot(), nil)

		_, err := svc.Duplicate(context.Background(), 1, &models.DuplicateSlotRequest{TargetDate: "27.10.2025"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestList(t *testing.T) {
	t.Run("invalid period", func(t *testing.T) {
		svc, _, _ := newTestService(testSlot(), nil)

		_, err := svc.List(context.Background(), &models.ListSlotsRequest{From: "2025-10-20", To: "2025-10-13"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("returns slots in range", func(t *testing.T) {
		svc, _, _ := newTestService(testSlot(), nil)

		resp, err := svc.List(context.Background(), &models.ListSlotsRequest{From: "2025-10-13", To: "2025-10-27"})
		require.NoError(t, err)
		require.Len(t, resp.Slots, 1)
		assert.Equal(t, "2025-10-20", resp.Slots[0].Date)
	})
}
