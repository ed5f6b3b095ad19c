package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"pet-boarding/internal/domain/bookings"
	"pet-boarding/internal/domain/money"
)

var bookingColumns = []string{
	"id", "animal_id", "check_in", "check_out", "status",
	"base_price_per_day", "custom_price_per_day",
	"holiday_days", "holiday_price_add", "notes",
	"created_at", "updated_at",
}

type BookingsRepo struct {
	db *sql.DB
}

func NewBookingsRepo(db *sql.DB) *BookingsRepo {
	return &BookingsRepo{db: db}
}

func (r *BookingsRepo) List(ctx context.Context) ([]bookings.Booking, error) {
	query, args, err := psql.Select(bookingColumns...).
		From("bookings").
		OrderBy("check_in DESC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]bookings.Booking, 0)
	for rows.Next() {
		var b bookings.Booking
		var status string
		var base, surcharge int64
		var custom sql.NullInt64
		if err := rows.Scan(
			&b.ID,
			&b.AnimalID,
			&b.CheckIn,
			&b.CheckOut,
			&status,
			&base,
			&custom,
			&b.HolidayDays,
			&surcharge,
			&b.Notes,
			&b.CreatedAt,
			&b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		b.Status = bookings.Status(status)
		b.BasePricePerDay = money.Money(base)
		b.HolidayPriceAdd = money.Money(surcharge)
		b.CustomPricePerDay = fromNullMoney(custom)
		out = append(out, b)
	}

	return out, rows.Err()
}

func (r *BookingsRepo) Insert(ctx context.Context, b bookings.Booking) (bookings.Booking, error) {
	query, args, err := psql.Insert("bookings").
		Columns(bookingColumns...).
		Values(
			b.ID,
			b.AnimalID,
			b.CheckIn,
			b.CheckOut,
			string(b.Status),
			int64(b.BasePricePerDay),
			toNullMoney(b.CustomPricePerDay),
			b.HolidayDays,
			int64(b.HolidayPriceAdd),
			b.Notes,
			b.CreatedAt,
			b.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return bookings.Booking{}, fmt.Errorf("%w: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return bookings.Booking{}, err
	}
	return b, nil
}

func (r *BookingsRepo) Update(ctx context.Context, id string, p bookings.Patch, at time.Time) error {
	return execOne(ctx, r.db, bookingUpdate(id, p, at))
}

func (r *BookingsRepo) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.db, psql.Delete("bookings").Where(squirrel.Eq{"id": id}))
}

func bookingUpdate(id string, p bookings.Patch, at time.Time) squirrel.UpdateBuilder {
	set := map[string]any{"updated_at": at}
	if p.AnimalID != nil {
		set["animal_id"] = *p.AnimalID
	}
	if p.CheckIn != nil {
		set["check_in"] = *p.CheckIn
	}
	if p.CheckOut != nil {
		set["check_out"] = *p.CheckOut
	}
	if p.Status != nil {
		set["status"] = string(*p.Status)
	}
	// null explícito limpia el override
	if p.CustomPricePerDay.Present {
		set["custom_price_per_day"] = toNullMoney(p.CustomPricePerDay.Value)
	}
	if p.HolidayDays != nil {
		set["holiday_days"] = *p.HolidayDays
	}
	if p.HolidayPriceAdd != nil {
		set["holiday_price_add"] = int64(*p.HolidayPriceAdd)
	}
	if p.Notes != nil {
		set["notes"] = *p.Notes
	}
	return psql.Update("bookings").SetMap(set).Where(squirrel.Eq{"id": id})
}

func toNullMoney(m *money.Money) sql.NullInt64 {
	if m == nil {
		return sql.NullInt64{Valid: false}
	}
	return sql.NullInt64{Int64: int64(*m), Valid: true}
}

func fromNullMoney(n sql.NullInt64) *money.Money {
	if !n.Valid {
		return nil
	}
	m := money.Money(n.Int64)
	return &m
}
