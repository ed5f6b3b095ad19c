package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"pet-boarding/internal/domain/bookings"
	"pet-boarding/internal/domain/money"
)

type ExpensesRepo struct {
	db *sql.DB
}

func NewExpensesRepo(db *sql.DB) *ExpensesRepo {
	return &ExpensesRepo{db: db}
}

func (r *ExpensesRepo) List(ctx context.Context) ([]bookings.Expense, error) {
	query, args, err := psql.Select("id", "booking_id", "name", "amount", "created_at").
		From("expenses").
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]bookings.Expense, 0)
	for rows.Next() {
		var e bookings.Expense
		var amount int64
		if err := rows.Scan(&e.ID, &e.BookingID, &e.Name, &amount, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Amount = money.Money(amount)
		out = append(out, e)
	}

	return out, rows.Err()
}

func (r *ExpensesRepo) Insert(ctx context.Context, e bookings.Expense) (bookings.Expense, error) {
	query, args, err := psql.Insert("expenses").
		Columns("id", "booking_id", "name", "amount", "created_at").
		Values(e.ID, e.BookingID, e.Name, int64(e.Amount), e.CreatedAt).
		ToSql()
	if err != nil {
		return bookings.Expense{}, fmt.Errorf("%w: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return bookings.Expense{}, err
	}
	return e, nil
}

func (r *ExpensesRepo) Update(ctx context.Context, id string, p bookings.ExpensePatch) error {
	q, ok := expenseUpdate(id, p)
	if !ok {
		// nada que escribir; igual confirmamos que existe
		return execOne(ctx, r.db, psql.Update("expenses").Set("id", id).Where(squirrel.Eq{"id": id}))
	}
	return execOne(ctx, r.db, q)
}

func (r *ExpensesRepo) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.db, psql.Delete("expenses").Where(squirrel.Eq{"id": id}))
}

func expenseUpdate(id string, p bookings.ExpensePatch) (squirrel.UpdateBuilder, bool) {
	set := map[string]any{}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Amount != nil {
		set["amount"] = int64(*p.Amount)
	}
	return psql.Update("expenses").SetMap(set).Where(squirrel.Eq{"id": id}), len(set) > 0
}
