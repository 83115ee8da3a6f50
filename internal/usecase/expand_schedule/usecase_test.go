package expand_schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/domain"
	slotRepo "github.com/Peguy24/paola-s-glam-studio-sub000/internal/infra/storage/slot"
	"github.com/Peguy24/paola-s-glam-studio-sub000/pkg/types"
)

// Фейки

type fakePatternRepo struct {
	patterns []*domain.RecurringPattern
	err      error
}

func (f *fakePatternRepo) ListActive(_ context.Context) ([]*domain.RecurringPattern, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.patterns, nil
}

type slotKey struct {
	date  string
	start types.TimeString
	end   types.TimeString
}

// fakeSlotRepo хранит слоты в памяти, ключ — дата и время, как уникальный
// индекс в базе
type fakeSlotRepo struct {
	slots    map[slotKey]*domain.Slot
	nextID   int64
	findErr  error
	batchErr error
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{slots: make(map[slotKey]*domain.Slot)}
}

func (f *fakeSlotRepo) key(date time.Time, start, end types.TimeString) slotKey {
	return slotKey{date: date.Format(domain.DateFormat), start: start, end: end}
}

func (f *fakeSlotRepo) FindByDateTimeRange(_ context.Context, date time.Time, start, end types.TimeString) (*domain.Slot, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if slot, ok := f.slots[f.key(date, start, end)]; ok {
		return slot, nil
	}
	return nil, slotRepo.ErrSlotNotFound
}

func (f *fakeSlotRepo) BatchInsert(_ context.Context, slots []*domain.Slot) (int, error) {
	if f.batchErr != nil {
		return 0, f.batchErr
	}

	created := 0
	for _, slot := range slots {
		k := f.key(slot.Date, slot.StartTime, slot.EndTime)
		if _, exists := f.slots[k]; exists {
			// ON CONFLICT DO NOTHING
			continue
		}
		f.nextID++
		stored := *slot
		stored.ID = f.nextID
		f.slots[k] = &stored
		created++
	}
	return created, nil
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

// Понедельник
var asOf = time.Date(2025, 10, 13, 9, 30, 0, 0, time.UTC)

func testPattern() *domain.RecurringPattern {
	return &domain.RecurringPattern{
		ID:           1,
		Name:         "Mornings",
		Weekdays:     []time.Weekday{time.Monday, time.Wednesday},
		StartTime:    types.TimeString("10:00"),
		EndTime:      types.TimeString("11:00"),
		Capacity:     2,
		Active:       true,
		HorizonWeeks: 2,
	}
}

func newTestUseCase(patterns *fakePatternRepo, slots *fakeSlotRepo) *UseCase {
	uc := NewUseCase(patterns, slots, nopLogger{})
	uc.timeProvider = &fixedTime{t: asOf}
	return uc
}

// Тесты

func TestExpand_CreatesSlotsForMatchingWeekdays(t *testing.T) {
	slots := newFakeSlotRepo()
	uc := newTestUseCase(&fakePatternRepo{}, slots)

	result, err := uc.Expand(context.Background(), testPattern(), asOf)
	require.NoError(t, err)

	// Горизонт 2 недели от понедельника 13.10 включительно:
	// понедельники 13, 20, 27 и среды 15, 22
	assert.Equal(t, 5, result.SlotsCreated)

	for _, slot := range slots.slots {
		assert.Contains(t, []time.Weekday{time.Monday, time.Wednesday}, slot.Date.Weekday())
		assert.Equal(t, types.TimeString("10:00"), slot.StartTime)
		assert.Equal(t, 2, slot.Capacity)
		assert.True(t, slot.Available)
		require.NotNil(t, slot.PatternID)
		assert.Equal(t, int64(1), *slot.PatternID)
	}
}

func TestExpand_IsIdempotent(t *testing.T) {
	slots := newFakeSlotRepo()
	uc := newTestUseCase(&fakePatternRepo{}, slots)

	first, err := uc.Expand(context.Background(), testPattern(), asOf)
	require.NoError(t, err)
	assert.Equal(t, 5, first.SlotsCreated)

	// Повторный запуск не создает дублей и не считается ошибкой
	second, err := uc.Expand(context.Background(), testPattern(), asOf)
	require.NoError(t, err)
	assert.Equal(t, 0, second.SlotsCreated)
	assert.Len(t, slots.slots, 5)
}

func TestExpand_SkipsManualSlotsWithSameTime(t *testing.T) {
	slots := newFakeSlotRepo()

	// Ручной слот на среду 15.10 с тем же временем
	manualDate := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	_, err := slots.BatchInsert(context.Background(), []*domain.Slot{{
		Date:      manualDate,
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("11:00"),
		Capacity:  5,
		Available: true,
	}})
	require.NoError(t, err)

	uc := newTestUseCase(&fakePatternRepo{}, slots)

	result, err := uc.Expand(context.Background(), testPattern(), asOf)
	require.NoError(t, err)
	assert.Equal(t, 4, result.SlotsCreated)

	// Ручной слот не перезаписан
	existing, err := slots.FindByDateTimeRange(context.Background(), manualDate, "10:00", "11:00")
	require.NoError(t, err)
	assert.Equal(t, 5, existing.Capacity)
	assert.Nil(t, existing.PatternID)
}

func TestExpand_InvalidPattern(t *testing.T) {
	uc := newTestUseCase(&fakePatternRepo{}, newFakeSlotRepo())

	pattern := testPattern()
	pattern.Weekdays = nil

	_, err := uc.Expand(context.Background(), pattern, asOf)
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestExpand_BatchFailureCreatesNothing(t *testing.T) {
	slots := newFakeSlotRepo()
	slots.batchErr = errors.New("connection lost")
	uc := newTestUseCase(&fakePatternRepo{}, slots)

	_, err := uc.Expand(context.Background(), testPattern(), asOf)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, slots.slots)
}

func TestSweep_ProcessesPatternsIndependently(t *testing.T) {
	broken := testPattern()
	broken.ID = 2
	broken.Name = "Broken"
	broken.Weekdays = nil // не пройдет валидацию

	second := testPattern()
	second.ID = 3
	second.Name = "Evenings"
	second.Weekdays = []time.Weekday{time.Friday}
	second.StartTime = types.TimeString("18:00")
	second.EndTime = types.TimeString("19:00")

	patterns := &fakePatternRepo{patterns: []*domain.RecurringPattern{testPattern(), broken, second}}
	slots := newFakeSlotRepo()
	uc := newTestUseCase(patterns, slots)

	result, err := uc.Sweep(context.Background())
	require.NoError(t, err)

	// Ошибка одного паттерна не прерывает остальные
	assert.Equal(t, 3, result.PatternsProcessed)
	// 5 слотов от первого + пятницы 17, 24 от второго
	assert.Equal(t, 7, result.SlotsCreated)
}

func TestSweep_ListFailure(t *testing.T) {
	patterns := &fakePatternRepo{err: errors.New("db down")}
	uc := newTestUseCase(patterns, newFakeSlotRepo())

	_, err := uc.Sweep(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
