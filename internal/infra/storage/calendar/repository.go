package calendar

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	"github.com/m04kA/SMC-LabBookingService/pkg/psqlbuilder"
)

// Repository репозиторий бронирований поверх PostgreSQL
//
// Опциональный durable-бэкенд хранилища (storage.driver = "postgres").
// Таблица reservations: уникальное ограничение на (system_id,
// reservation_date, slot_label) гарантирует не больше одного занявшего
// на слот; атомарность Book обеспечивает ON CONFLICT DO NOTHING
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Book атомарно бронирует слот
// Вставка с ON CONFLICT DO NOTHING: ноль затронутых строк означает,
// что слот уже занят
func (r *Repository) Book(ctx context.Context, reservation *domain.Reservation) error {
	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"system_id",
			"reservation_date",
			"slot_label",
			"occupant_name",
		).
		Values(
			reservation.SystemID,
			reservation.Date,
			reservation.Slot,
			reservation.Occupant,
		).
		Suffix("ON CONFLICT (system_id, reservation_date, slot_label) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Book - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Book - execute insert: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Book - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotTaken
	}

	return nil
}

// Cancel снимает бронирование
func (r *Repository) Cancel(ctx context.Context, systemID, date, slot string) error {
	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{
			"system_id":        systemID,
			"reservation_date": date,
			"slot_label":       slot,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// ListByDate возвращает бронирования системы на дату: slot -> occupant
func (r *Repository) ListByDate(ctx context.Context, systemID, date string) (map[string]string, error) {
	query, args, err := psqlbuilder.Select("slot_label", "occupant_name").
		From("reservations").
		Where(squirrel.Eq{
			"system_id":        systemID,
			"reservation_date": date,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	booked := make(map[string]string)
	for rows.Next() {
		var slot, occupant string
		if err := rows.Scan(&slot, &occupant); err != nil {
			return nil, fmt.Errorf("%w: ListByDate - scan row: %v", ErrScanRow, err)
		}
		booked[slot] = occupant
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByDate - rows error: %v", ErrScanRow, err)
	}

	return booked, nil
}

// ListByOccupant возвращает бронирования указанного имени в системе,
// отсортированные по возрастанию (дата, слот)
func (r *Repository) ListByOccupant(ctx context.Context, systemID, occupant string) ([]*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(
		"system_id",
		"reservation_date",
		"slot_label",
		"occupant_name",
		"created_at",
	).
		From("reservations").
		Where(squirrel.Eq{
			"system_id":     systemID,
			"occupant_name": occupant,
		}).
		OrderBy("reservation_date ASC", "slot_label ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByOccupant - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOccupant - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		var reservation domain.Reservation
		var createdAt sql.NullTime

		if err := rows.Scan(
			&reservation.SystemID,
			&reservation.Date,
			&reservation.Slot,
			&reservation.Occupant,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByOccupant - scan row: %v", ErrScanRow, err)
		}

		reservation.CreatedAt = createdAt.Time
		reservations = append(reservations, &reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByOccupant - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
