package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/mabani-platform/MBN-BookingService/internal/domain"
	"github.com/mabani-platform/MBN-BookingService/pkg/dbmetrics"
	"github.com/mabani-platform/MBN-BookingService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"project_id",
	"service_type",
	"provider_id",
	"provider_name",
	"details",
	"scheduled_date",
	"scheduled_time",
	"duration_hours",
	"location",
	"instructions",
	"estimated_cost",
	"actual_cost",
	"status",
	"completion_notes",
	"rating",
	"review",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Проверка конфликтов и вставка должны идти в одной сериализуемой транзакции,
// иначе два параллельных createBooking могут оба пройти проверку
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"project_id",
			"service_type",
			"provider_id",
			"provider_name",
			"details",
			"scheduled_date",
			"scheduled_time",
			"duration_hours",
			"location",
			"instructions",
			"estimated_cost",
			"status",
		).
		Values(
			booking.ID,
			booking.ProjectID,
			booking.ServiceType,
			booking.ProviderID,
			booking.ProviderName,
			booking.Details,
			booking.ScheduledDate,
			booking.ScheduledTime,
			booking.DurationHours,
			booking.Location,
			booking.Instructions,
			booking.EstimatedCost,
			booking.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByProject получает все бронирования проекта
// Отсортированы по дате бронирования по возрастанию, внутри даты - по времени
func (r *Repository) GetByProject(ctx context.Context, projectID string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"project_id": projectID}).
		OrderBy("scheduled_date ASC, scheduled_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProject - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProject - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByProjectAndDate получает бронирования проекта на конкретную дату,
// исключая отменённые. Используется детектором конфликтов.
// Внутри транзакции добавляет FOR UPDATE, чтобы заблокировать строки
// до конца транзакции создания бронирования
func (r *Repository) GetByProjectAndDate(ctx context.Context, projectID string, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"project_id": projectID}).
		Where(squirrel.Eq{"scheduled_date": domain.DateOnly(date)}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("scheduled_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProjectAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProjectAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateStatus обновляет статус бронирования
// Опционально записывает заметки о выполнении и фактическую стоимость
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, notes *string, actualCost *float64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if notes != nil {
		updateBuilder = updateBuilder.Set("completion_notes", *notes)
	}
	if actualCost != nil {
		updateBuilder = updateBuilder.Set("actual_cost", *actualCost)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	return r.requireRowsAffected(result, "UpdateStatus")
}

// Cancel отменяет бронирование с указанием причины
// Причина сохраняется в completion_notes, статус становится cancelled
func (r *Repository) Cancel(ctx context.Context, id string, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("completion_notes", reason).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	return r.requireRowsAffected(result, "Cancel")
}

// AddReview записывает оценку и отзыв к бронированию
func (r *Repository) AddReview(ctx context.Context, id string, rating int, review string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("rating", rating).
		Set("review", review).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AddReview - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: AddReview - execute update: %v", ErrExecQuery, err)
	}

	return r.requireRowsAffected(result, "AddReview")
}

// requireRowsAffected проверяет, что команда затронула хотя бы одну строку
func (r *Repository) requireRowsAffected(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку результата в модель бронирования
func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var details []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.ProjectID,
		&booking.ServiceType,
		&booking.ProviderID,
		&booking.ProviderName,
		&details,
		&booking.ScheduledDate,
		&booking.ScheduledTime,
		&booking.DurationHours,
		&booking.Location,
		&booking.Instructions,
		&booking.EstimatedCost,
		&booking.ActualCost,
		&booking.Status,
		&booking.CompletionNotes,
		&booking.Rating,
		&booking.Review,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.Details = details
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
