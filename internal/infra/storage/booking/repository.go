package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/DJB-ScheduleService/internal/domain"
	"github.com/m04kA/DJB-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/DJB-ScheduleService/pkg/psqlbuilder"
)

// pq error codes
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

const (
	constraintDJVenueDate = "bookings_dj_venue_date_key"
	constraintVenueFK     = "bookings_venue_id_fkey"
	constraintDJFK        = "bookings_dj_id_fkey"
)

// joinedColumns колонки для read-side выборок с данными диджея и салона
var joinedColumns = []string{
	"b.id",
	"b.dj_id",
	"b.venue_id",
	"b.date",
	"b.confirmed",
	"b.recorded_at",
	"d.display_name",
	"d.color_tag",
	"v.name",
}

// Repository репозиторий журнала бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её
//
// Уникальность (dj_id, venue_id, date) обеспечивается constraint'ом в БД:
// даже если проверка дубликата в usecase проскочила из-за гонки,
// вставка вернёт ErrDuplicateBooking, а не вторую строку
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"dj_id",
			"venue_id",
			"date",
			"confirmed",
		).
		Values(
			booking.DJID,
			booking.VenueID,
			booking.Date,
			booking.Confirmed,
		).
		Suffix("RETURNING id, recorded_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var recordedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&recordedAt,
	)

	if err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.RecordedAt = recordedAt.Time

	return booking, nil
}

// DeleteOwned удаляет бронирование, принадлежащее указанному диджею,
// и возвращает удалённую строку для подтверждения
//
// Проверка владения выполняется в том же DELETE, что и удаление:
// несуществующее и чужое бронирование неразличимы для вызывающего
func (r *Repository) DeleteOwned(ctx context.Context, bookingID, djID int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": bookingID, "dj_id": djID}).
		Suffix("RETURNING id, dj_id, venue_id, date, confirmed, recorded_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: DeleteOwned - build delete query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.DJID,
		&booking.VenueID,
		&booking.Date,
		&booking.Confirmed,
		&booking.RecordedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: DeleteOwned - scan deleted row: %v", ErrScanRow, err)
	}

	return &booking, nil
}

// GetDJIDsForVenueDate возвращает dj_id всех бронирований салона на дату
// Внутри транзакции строки блокируются (FOR UPDATE), чтобы две конкурентные
// проверки вместимости не прошли одновременно на границе MaxDJsPerDay
func (r *Repository) GetDJIDsForVenueDate(ctx context.Context, venueID int64, date time.Time) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("dj_id").
		From("bookings").
		Where(squirrel.Eq{"venue_id": venueID, "date": date}).
		OrderBy("dj_id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDJIDsForVenueDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDJIDsForVenueDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	djIDs := make([]int64, 0)
	for rows.Next() {
		var djID int64
		if err := rows.Scan(&djID); err != nil {
			return nil, fmt.Errorf("%w: GetDJIDsForVenueDate - scan dj_id: %v", ErrScanRow, err)
		}
		djIDs = append(djIDs, djID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetDJIDsForVenueDate - rows error: %v", ErrScanRow, err)
	}

	return djIDs, nil
}

// GetByVenueWithFilter получает бронирования салона за период,
// обогащённые именем диджея, его цветом и названием салона
func (r *Repository) GetByVenueWithFilter(ctx context.Context, filter domain.VenueBookingsFilter) ([]*domain.BookingWithNames, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(joinedColumns...).
		From("bookings b").
		Join("djs d ON d.id = b.dj_id").
		Join("venues v ON v.id = b.venue_id").
		Where(squirrel.Eq{"b.venue_id": filter.VenueID}).
		Where(squirrel.GtOrEq{"b.date": filter.Range.Start}).
		Where(squirrel.LtOrEq{"b.date": filter.Range.End}).
		OrderBy("b.date ASC", "d.display_name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByVenueWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVenueWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanJoinedBookings(rows, "GetByVenueWithFilter")
}

// GetByDJWithFilter получает бронирования диджея за период
// Симметричный запрос к GetByVenueWithFilter со стороны диджея
func (r *Repository) GetByDJWithFilter(ctx context.Context, filter domain.DJBookingsFilter) ([]*domain.BookingWithNames, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(joinedColumns...).
		From("bookings b").
		Join("djs d ON d.id = b.dj_id").
		Join("venues v ON v.id = b.venue_id").
		Where(squirrel.Eq{"b.dj_id": filter.DJID}).
		Where(squirrel.GtOrEq{"b.date": filter.Range.Start}).
		Where(squirrel.LtOrEq{"b.date": filter.Range.End}).
		OrderBy("b.date ASC", "v.name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDJWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDJWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanJoinedBookings(rows, "GetByDJWithFilter")
}

// GetByDate получает все бронирования на дату по всем салонам
// Используется сервисом доступности для разбиения ростера на свободных и занятых
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.BookingWithNames, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(joinedColumns...).
		From("bookings b").
		Join("djs d ON d.id = b.dj_id").
		Join("venues v ON v.id = b.venue_id").
		Where(squirrel.Eq{"b.date": date}).
		OrderBy("v.name ASC", "d.display_name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanJoinedBookings(rows, "GetByDate")
}

// scanJoinedBookings сканирует результаты read-side выборок
func (r *Repository) scanJoinedBookings(rows *sql.Rows, method string) ([]*domain.BookingWithNames, error) {
	bookings := make([]*domain.BookingWithNames, 0)

	for rows.Next() {
		var booking domain.BookingWithNames

		err := rows.Scan(
			&booking.ID,
			&booking.DJID,
			&booking.VenueID,
			&booking.Date,
			&booking.Confirmed,
			&booking.RecordedAt,
			&booking.DJDisplayName,
			&booking.DJColorTag,
			&booking.VenueName,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
		}

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return bookings, nil
}

// mapConstraintError переводит нарушения constraint'ов в доменные ошибки репозитория
func mapConstraintError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil
	}

	switch string(pqErr.Code) {
	case pqUniqueViolation:
		if pqErr.Constraint == constraintDJVenueDate {
			return ErrDuplicateBooking
		}
	case pqForeignKeyViolation:
		switch pqErr.Constraint {
		case constraintVenueFK:
			return ErrVenueNotFound
		case constraintDJFK:
			return ErrDJNotFound
		}
	}

	return nil
}
