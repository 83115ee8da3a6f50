package policy

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/domain"
	"github.com/Peguy24/paola-s-glam-studio-sub000/pkg/dbmetrics"
	"github.com/Peguy24/paola-s-glam-studio-sub000/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с уровнями политики отмены
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория политики отмены
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActive получает все активные уровни политики.
// Читается заново при каждом расчёте возврата — кэширование между вызовами
// привело бы к расчёту по устаревшей политике.
func (r *Repository) ListActive(ctx context.Context) ([]domain.PolicyTier, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"hours_before",
		"refund_percent",
		"active",
		"display_order",
		"created_at",
		"updated_at",
	).
		From("policy_tiers").
		Where(squirrel.Eq{"active": true}).
		OrderBy("hours_before DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tiers := make([]domain.PolicyTier, 0)
	for rows.Next() {
		var tier domain.PolicyTier
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&tier.ID,
			&tier.HoursBefore,
			&tier.RefundPercent,
			&tier.Active,
			&tier.DisplayOrder,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %v", ErrScanRow, err)
		}

		tier.CreatedAt = createdAt.Time
		tier.UpdatedAt = updatedAt.Time
		tiers = append(tiers, tier)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return tiers, nil
}

// Create создает новый уровень политики
func (r *Repository) Create(ctx context.Context, tier *domain.PolicyTier) (*domain.PolicyTier, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("policy_tiers").
		Columns("hours_before", "refund_percent", "active", "display_order").
		Values(tier.HoursBefore, tier.RefundPercent, tier.Active, tier.DisplayOrder).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tier.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	tier.CreatedAt = createdAt.Time
	tier.UpdatedAt = updatedAt.Time

	return tier, nil
}

// SetActive включает или выключает уровень политики
func (r *Repository) SetActive(ctx context.Context, id int64, active bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("policy_tiers").
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
		return ErrTierNotFound
	}

	return nil
}
