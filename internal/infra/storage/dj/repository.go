package dj

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/DJB-ScheduleService/internal/domain"
	"github.com/m04kA/DJB-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/DJB-ScheduleService/pkg/psqlbuilder"
)

const pqUniqueViolation = "23505"

var djColumns = []string{
	"id",
	"display_name",
	"password_hash",
	"role",
	"home_venue_id",
	"color_tag",
	"created_at",
	"updated_at",
}

// Repository репозиторий ростера диджеев
// Read-mostly: мутации выполняются только административными операциями
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория ростера
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись ростера (регистрация)
func (r *Repository) Create(ctx context.Context, dj *domain.DJ) (*domain.DJ, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("djs").
		Columns("display_name", "password_hash", "role", "home_venue_id", "color_tag").
		Values(dj.DisplayName, dj.PasswordHash, dj.Role, dj.HomeVenueID, dj.ColorTag).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&dj.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	dj.CreatedAt = createdAt.Time
	dj.UpdatedAt = updatedAt.Time

	return dj, nil
}

// GetByID получает запись ростера по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.DJ, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(djColumns...).
		From("djs").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	dj, err := r.scanDJ(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDJNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan dj: %v", ErrScanRow, err)
	}

	return dj, nil
}

// ListByRole получает записи ростера с указанной ролью
// Используется сервисом доступности для получения полного списка диджеев
func (r *Repository) ListByRole(ctx context.Context, role domain.Role) ([]*domain.DJ, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(djColumns...).
		From("djs").
		Where(squirrel.Eq{"role": role}).
		OrderBy("display_name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByRole - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRole - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	djs := make([]*domain.DJ, 0)
	for rows.Next() {
		dj, err := r.scanDJ(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByRole - scan row: %v", ErrScanRow, err)
		}
		djs = append(djs, dj)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByRole - rows error: %v", ErrScanRow, err)
	}

	return djs, nil
}

// UpdateRosterFields обновляет административные поля записи ростера
// Инвариант "у администратора нет домашнего салона" проверяется сервисным
// слоем и продублирован constraint'ом djs_admin_no_home_venue
func (r *Repository) UpdateRosterFields(ctx context.Context, id int64, role domain.Role, homeVenueID *int64, colorTag *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("djs").
		Set("role", role).
		Set("home_venue_id", homeVenueID).
		Set("color_tag", colorTag).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateRosterFields - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateRosterFields - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateRosterFields - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDJNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanDJ(row rowScanner) (*domain.DJ, error) {
	var dj domain.DJ
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&dj.ID,
		&dj.DisplayName,
		&dj.PasswordHash,
		&dj.Role,
		&dj.HomeVenueID,
		&dj.ColorTag,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	dj.CreatedAt = createdAt.Time
	dj.UpdatedAt = updatedAt.Time

	return &dj, nil
}
