package pattern

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/domain"
	"github.com/Peguy24/paola-s-glam-studio-sub000/pkg/dbmetrics"
	"github.com/Peguy24/paola-s-glam-studio-sub000/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

var patternColumns = []string{
	"id",
	"name",
	"weekdays",
	"start_time",
	"end_time",
	"capacity",
	"active",
	"horizon_weeks",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с недельными паттернами расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория паттернов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActive получает все активные паттерны для развертки расписания
func (r *Repository) ListActive(ctx context.Context) ([]*domain.RecurringPattern, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(patternColumns...).
		From("recurring_patterns").
		Where(squirrel.Eq{"active": true}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	patterns := make([]*domain.RecurringPattern, 0)
	for rows.Next() {
		pattern, err := scanPattern(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %v", ErrScanRow, err)
		}
		patterns = append(patterns, pattern)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return patterns, nil
}

// GetByID получает паттерн по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.RecurringPattern, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(patternColumns...).
		From("recurring_patterns").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	pattern, err := scanPattern(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPatternNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan pattern: %v", ErrScanRow, err)
	}

	return pattern, nil
}

// Create создает новый паттерн
func (r *Repository) Create(ctx context.Context, pattern *domain.RecurringPattern) (*domain.RecurringPattern, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("recurring_patterns").
		Columns("name", "weekdays", "start_time", "end_time", "capacity", "active", "horizon_weeks").
		Values(
			pattern.Name,
			pq.Array(weekdaysToInt64(pattern.Weekdays)),
			pattern.StartTime,
			pattern.EndTime,
			pattern.Capacity,
			pattern.Active,
			pattern.HorizonWeeks,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&pattern.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	pattern.CreatedAt = createdAt.Time
	pattern.UpdatedAt = updatedAt.Time

	return pattern, nil
}

// SetActive включает или выключает паттерн
func (r *Repository) SetActive(ctx context.Context, id int64, active bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("recurring_patterns").
		Set("active", active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetActive - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetActive - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetActive - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPatternNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanPattern сканирует одну строку в доменную модель
// Колонка weekdays хранится как SMALLINT[] и читается через pq.Int64Array
func scanPattern(row rowScanner) (*domain.RecurringPattern, error) {
	var pattern domain.RecurringPattern
	var weekdays pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&pattern.ID,
		&pattern.Name,
		&weekdays,
		&pattern.StartTime,
		&pattern.EndTime,
		&pattern.Capacity,
		&pattern.Active,
		&pattern.HorizonWeeks,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	pattern.Weekdays = int64ToWeekdays(weekdays)
	pattern.CreatedAt = createdAt.Time
	pattern.UpdatedAt = updatedAt.Time

	return &pattern, nil
}

func weekdaysToInt64(weekdays []time.Weekday) []int64 {
	result := make([]int64, len(weekdays))
	for i, wd := range weekdays {
		result[i] = int64(wd)
	}
	return result
}

func int64ToWeekdays(values []int64) []time.Weekday {
	result := make([]time.Weekday, len(values))
	for i, v := range values {
		result[i] = time.Weekday(v)
	}
	return result
}
