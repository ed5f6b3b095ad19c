package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-boarding/internal/domain/animals"
	"pet-boarding/internal/domain/bookings"
	"pet-boarding/internal/domain/money"
)

func TestAnimalUpdate_OnlyPresentColumns(t *testing.T) {
	name := "Max"
	at := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := animalUpdate("a-1", animals.Patch{Name: &name}, at).ToSql()
	require.NoError(t, err)
	// SetMap ordena las columnas alfabéticamente
	assert.Equal(t, "UPDATE animals SET name = $1, updated_at = $2 WHERE id = $3", query)
	assert.Equal(t, []any{"Max", at, "a-1"}, args)
}

func TestBookingUpdate_ClearsCustomPrice(t *testing.T) {
	at := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	p := bookings.Patch{CustomPricePerDay: bookings.NullableMoney{Present: true}}

	query, args, err := bookingUpdate("b-1", p, at).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE bookings SET custom_price_per_day = $1, updated_at = $2 WHERE id = $3", query)
	assert.Equal(t, sql.NullInt64{}, args[0])
}

func TestBookingUpdate_SetsCustomPrice(t *testing.T) {
	custom := money.Money(1800)
	p := bookings.Patch{CustomPricePerDay: bookings.NullableMoney{Present: true, Value: &custom}}

	_, args, err := bookingUpdate("b-1", p, time.Now()).ToSql()
	require.NoError(t, err)
	assert.Equal(t, sql.NullInt64{Int64: 1800, Valid: true}, args[0])
}

func TestExpenseUpdate_Empty(t *testing.T) {
	_, ok := expenseUpdate("e-1", bookings.ExpensePatch{})
	assert.False(t, ok)

	amount := money.Money(10)
	q, ok := expenseUpdate("e-1", bookings.ExpensePatch{Amount: &amount})
	require.True(t, ok)
	query, _, err := q.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE expenses SET amount = $1 WHERE id = $2", query)
}

func TestNullMoney_RoundTrip(t *testing.T) {
	assert.Nil(t, fromNullMoney(toNullMoney(nil)))
	m := money.Money(42)
	assert.Equal(t, m, *fromNullMoney(toNullMoney(&m)))
}
