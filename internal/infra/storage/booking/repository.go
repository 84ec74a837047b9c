package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/GameLounge-BookingService/internal/domain"
	"github.com/m04kA/GameLounge-BookingService/pkg/dbmetrics"
	"github.com/m04kA/GameLounge-BookingService/pkg/psqlbuilder"
)

const (
	tableBookings = "bookings"

	pqUniqueViolation         = "23505"
	referenceUniqueConstraint = "bookings_reference_number_key"
)

var bookingColumns = []string{
	"id",
	"reference_number",
	"name",
	"phone",
	"email",
	"game_type",
	"booking_date",
	"time_slot",
	"duration_minutes",
	"num_people",
	"price",
	"status",
	"special_requests",
	"created_at",
	"updated_at",
}

// Repository booking storage in PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository creates the booking repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a booking. Uses the transaction from ctx if there is one.
// A reference number collision is reported as ErrDuplicateReference.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableBookings).
		Columns(
			"reference_number",
			"name",
			"phone",
			"email",
			"game_type",
			"booking_date",
			"time_slot",
			"duration_minutes",
			"num_people",
			"price",
			"status",
			"special_requests",
		).
		Values(
			booking.ReferenceNumber,
			booking.Name,
			booking.Phone,
			booking.Email,
			booking.GameType,
			booking.Date.Format(domain.DateFormat),
			booking.TimeSlot,
			booking.DurationMinutes,
			booking.NumPeople,
			booking.Price,
			booking.Status,
			booking.SpecialRequests,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID, &createdAt, &updatedAt)
	if err != nil {
		if isReferenceConflict(err) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateReference, booking.ReferenceNumber)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID returns the booking with the given id
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByReference returns the booking with the given reference number
func (r *Repository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	return r.getOne(ctx, "GetByReference", squirrel.Eq{"reference_number": reference})
}

// GetAll returns bookings matching the filter, newest first
func (r *Repository) GetAll(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		OrderBy("booking_date DESC", "created_at DESC")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_date": filter.Date.Format(domain.DateFormat)})
	}
	if filter.GameType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"game_type": *filter.GameType})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	return r.getMany(ctx, "GetAll", selectBuilder)
}

// GetByDate returns all bookings of a day regardless of status
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"booking_date": date.Format(domain.DateFormat)}).
		OrderBy("created_at ASC")

	return r.getMany(ctx, "GetByDate", selectBuilder)
}

// GetByDateAndGameType returns all bookings of a day for one game type, cancelled included.
// Inside a transaction the rows are locked with FOR UPDATE.
func (r *Repository) GetByDateAndGameType(ctx context.Context, date time.Time, gameType string) ([]*domain.Booking, error) {
	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{
			"booking_date": date.Format(domain.DateFormat),
			"game_type":    gameType,
		}).
		OrderBy("created_at ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	return r.getMany(ctx, "GetByDateAndGameType", selectBuilder)
}

// Update applies a partial update and returns the updated booking
func (r *Repository) Update(ctx context.Context, id uuid.UUID, upd domain.BookingUpdate) (*domain.Booking, error) {
	if upd.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update(tableBookings).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if upd.Status != nil {
		updateBuilder = updateBuilder.Set("status", *upd.Status)
	}
	if upd.SpecialRequests != nil {
		updateBuilder = updateBuilder.Set("special_requests", *upd.SpecialRequests)
	}

	query, args, err := updateBuilder.
		Suffix("RETURNING " + strings.Join(bookingColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// UpdateStatus sets the booking status
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableBookings).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "UpdateStatus", query, args)
}

// Delete removes the booking
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableBookings).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Delete", query, args)
}

// CompletePastBookings marks pending and confirmed bookings dated before the given day as completed.
// Returns the number of updated rows.
func (r *Repository) CompletePastBookings(ctx context.Context, before time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableBookings).
		Set("status", domain.StatusCompleted).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Lt{"booking_date": before.Format(domain.DateFormat)}).
		Where(squirrel.Eq{"status": openStatuses()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CompletePastBookings - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CompletePastBookings - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CompletePastBookings - get rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
	}

	return booking, nil
}

func (r *Repository) getMany(ctx context.Context, op string, selectBuilder squirrel.SelectBuilder) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return bookings, nil
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking              domain.Booking
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.ReferenceNumber,
		&booking.Name,
		&booking.Phone,
		&booking.Email,
		&booking.GameType,
		&booking.Date,
		&booking.TimeSlot,
		&booking.DurationMinutes,
		&booking.NumPeople,
		&booking.Price,
		&booking.Status,
		&booking.SpecialRequests,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func openStatuses() []string {
	out := make([]string, len(domain.OpenStatuses))
	for i, s := range domain.OpenStatuses {
		out[i] = string(s)
	}
	return out
}

func isReferenceConflict(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == pqUniqueViolation &&
		(pqErr.Constraint == "" || pqErr.Constraint == referenceUniqueConstraint)
}
