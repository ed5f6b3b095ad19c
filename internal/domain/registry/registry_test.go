package registry

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-boarding/internal/domain/animals"
	"pet-boarding/internal/domain/bookings"
	"pet-boarding/internal/domain/days"
	"pet-boarding/internal/domain/money"
)

func ptr[T any](v T) *T { return &v }

func booking(id, animalID, in, out string, st bookings.Status) bookings.Booking {
	return bookings.Booking{
		ID:              id,
		AnimalID:        animalID,
		CheckIn:         days.MustParse(in),
		CheckOut:        days.MustParse(out),
		Status:          st,
		BasePricePerDay: 2000,
	}
}

func seeded(t *testing.T) *Registry {
	t.Helper()
	r := New()
	require.NoError(t, r.Load(Snapshot{
		Animals: []animals.Animal{
			{ID: "a-1", Name: "Rex", SizeClass: animals.SizeMedium},
			{ID: "a-2", Name: "Bimba", SizeClass: animals.SizeSmall},
		},
		Bookings: []bookings.Booking{
			booking("b-1", "a-1", "2024-03-01", "2024-03-10", bookings.StatusCompleted),
			booking("b-2", "a-1", "2024-04-01", "2024-04-03", bookings.StatusUpcoming),
			booking("b-3", "a-1", "2024-05-01", "2024-05-02", bookings.StatusCancelled),
			booking("b-4", "a-2", "2024-03-05", "2024-03-06", bookings.StatusActive),
		},
		Expenses: []bookings.Expense{
			{ID: "e-1", BookingID: "b-1", Name: "vet", Amount: 1500},
			{ID: "e-2", BookingID: "b-2", Name: "food", Amount: 300},
			{ID: "e-3", BookingID: "b-4", Name: "toy", Amount: 100},
		},
	}))
	return r
}

func assertReason(t *testing.T, err error, want Reason) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation), "expected validation error, got %v", err)
	got, ok := ReasonOf(err)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestDeleteAnimal_CascadesBookingsAndExpenses(t *testing.T) {
	r := seeded(t)

	c, err := r.DeleteAnimal("a-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"b-1", "b-2", "b-3"}, c.BookingIDs)
	assert.Equal(t, []string{"e-1", "e-2"}, c.ExpenseIDs)

	assert.Empty(t, r.BookingsForAnimal("a-1"))
	for _, id := range []string{"b-1", "b-2", "b-3"} {
		_, err := r.BookingByID(id)
		assert.True(t, errors.Is(err, ErrNotFound))
	}
	_, err = r.ExpenseByID("e-1")
	assert.True(t, errors.Is(err, ErrNotFound))

	// lo del otro animal sigue intacto
	_, err = r.BookingByID("b-4")
	assert.NoError(t, err)
	assert.Len(t, r.ExpensesForBooking("b-4"), 1)

	a, b, e := r.Counts()
	assert.Equal(t, []int{1, 1, 1}, []int{a, b, e})
}

func TestDeleteBooking_CascadesExpenses(t *testing.T) {
	r := seeded(t)

	c, err := r.DeleteBooking("b-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"e-1"}, c.ExpenseIDs)
	assert.Empty(t, r.ExpensesForBooking("b-1"))
	assert.Len(t, r.BookingsForAnimal("a-1"), 2)
}

func TestCascadeFor_IsDryRun(t *testing.T) {
	r := seeded(t)

	c, err := r.CascadeForAnimal("a-1")
	require.NoError(t, err)
	assert.Len(t, c.BookingIDs, 3)
	assert.Len(t, r.BookingsForAnimal("a-1"), 3)

	_, err = r.CascadeForBooking("nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestInsertBooking_Validation(t *testing.T) {
	r := seeded(t)

	cases := []struct {
		name   string
		mutate func(b *bookings.Booking)
		want   Reason
	}{
		{"checkout before checkin", func(b *bookings.Booking) { b.CheckOut = b.CheckIn.AddDays(-1) }, ReasonInvalidDateRange},
		{"unknown animal", func(b *bookings.Booking) { b.AnimalID = "ghost" }, ReasonUnknownAnimal},
		{"too many holidays", func(b *bookings.Booking) { b.HolidayDays = 4 }, ReasonHolidayDaysRange},
		{"negative holidays", func(b *bookings.Booking) { b.HolidayDays = -1 }, ReasonHolidayDaysRange},
		{"negative surcharge", func(b *bookings.Booking) { b.HolidayPriceAdd = -1 }, ReasonNegativeSurcharge},
		{"zero custom price", func(b *bookings.Booking) { b.CustomPricePerDay = ptr(money.Money(0)) }, ReasonInvalidPrice},
		{"zero base price", func(b *bookings.Booking) { b.BasePricePerDay = 0 }, ReasonInvalidPrice},
		{"bad status", func(b *bookings.Booking) { b.Status = "paused" }, ReasonInvalidStatus},
		{"stay over ten years", func(b *bookings.Booking) { b.CheckOut = b.CheckIn.AddDays(MaxStayDays) }, ReasonStayTooLong},
		{"base price too high", func(b *bookings.Booking) { b.BasePricePerDay = MaxPricePerDay + 1 }, ReasonPriceTooHigh},
		{"custom price too high", func(b *bookings.Booking) { b.CustomPricePerDay = ptr(MaxPricePerDay * 2) }, ReasonPriceTooHigh},
		{"surcharge too high", func(b *bookings.Booking) { b.HolidayPriceAdd = MaxPricePerDay + 1 }, ReasonPriceTooHigh},
		{"duplicate id", func(b *bookings.Booking) { b.ID = "b-1" }, ReasonDuplicateID},
		{"missing check-in", func(b *bookings.Booking) { b.CheckIn = days.Date{} }, ReasonMissingDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := booking("b-new", "a-2", "2024-06-01", "2024-06-03", bookings.StatusUpcoming)
			tc.mutate(&b)
			_, err := r.InsertBooking(b)
			assertReason(t, err, tc.want)
			_, err = r.BookingByID("b-new")
			assert.True(t, errors.Is(err, ErrNotFound))
		})
	}
}

func TestInsertBooking_SingleDayStay(t *testing.T) {
	r := seeded(t)
	b := booking("b-new", "a-2", "2024-06-01", "2024-06-01", bookings.StatusUpcoming)
	b.HolidayDays = 1

	got, err := r.InsertBooking(b)
	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalDays())
}

func TestInsertExpense_Validation(t *testing.T) {
	r := seeded(t)

	_, err := r.InsertExpense(bookings.Expense{ID: "e-9", BookingID: "b-1", Name: "x", Amount: -1})
	assertReason(t, err, ReasonNegativeAmount)

	_, err = r.InsertExpense(bookings.Expense{ID: "e-9", BookingID: "ghost", Name: "x", Amount: 1})
	assertReason(t, err, ReasonUnknownBooking)

	_, err = r.InsertExpense(bookings.Expense{ID: "e-9", BookingID: "b-1", Name: "  ", Amount: 1})
	assertReason(t, err, ReasonMissingName)

	e, err := r.InsertExpense(bookings.Expense{ID: "e-9", BookingID: "b-1", Name: " bath ", Amount: 0})
	require.NoError(t, err)
	assert.Equal(t, "bath", e.Name)
	assert.Len(t, r.ExpensesForBooking("b-1"), 2)
}

func TestUpdateBooking_PatchSemantics(t *testing.T) {
	r := seeded(t)

	// set custom price, then clear it with an explicit null
	got, err := r.UpdateBooking("b-2", bookings.Patch{
		CustomPricePerDay: bookings.NullableMoney{Present: true, Value: ptr(money.Money(1800))},
	})
	require.NoError(t, err)
	require.NotNil(t, got.CustomPricePerDay)
	assert.Equal(t, money.Money(1800), got.PricePerDay())

	got, err = r.UpdateBooking("b-2", bookings.Patch{Notes: ptr("late pickup")})
	require.NoError(t, err)
	assert.NotNil(t, got.CustomPricePerDay, "absent field must be kept")

	got, err = r.UpdateBooking("b-2", bookings.Patch{CustomPricePerDay: bookings.NullableMoney{Present: true}})
	require.NoError(t, err)
	assert.Nil(t, got.CustomPricePerDay)
	assert.Equal(t, "late pickup", got.Notes)
}

func TestUpdateBooking_RejectedLeavesStateUntouched(t *testing.T) {
	r := seeded(t)
	before, _ := r.BookingByID("b-2")

	_, err := r.UpdateBooking("b-2", bookings.Patch{CheckOut: ptr(days.MustParse("2024-03-01"))})
	assertReason(t, err, ReasonInvalidDateRange)

	after, _ := r.BookingByID("b-2")
	assert.Equal(t, before, after)

	_, err = r.UpdateBooking("ghost", bookings.Patch{})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestUpdateBooking_ReassignMovesIndex(t *testing.T) {
	r := seeded(t)

	got, err := r.UpdateBooking("b-2", bookings.Patch{AnimalID: ptr("a-2")})
	require.NoError(t, err)
	assert.Equal(t, money.Money(2000), got.BasePricePerDay)

	assert.Len(t, r.BookingsForAnimal("a-1"), 2)
	assert.Len(t, r.BookingsForAnimal("a-2"), 2)
}

func TestUpdateAnimal_KeepsBookingSnapshot(t *testing.T) {
	r := seeded(t)

	a, err := r.UpdateAnimal("a-1", animals.Patch{SizeClass: ptr(animals.SizeLarge)})
	require.NoError(t, err)
	assert.Equal(t, animals.SizeLarge, a.SizeClass)

	b, _ := r.BookingByID("b-1")
	assert.Equal(t, money.Money(2000), b.BasePricePerDay)

	_, err = r.UpdateAnimal("a-1", animals.Patch{SizeClass: ptr(animals.SizeClass("huge"))})
	assertReason(t, err, ReasonInvalidSizeClass)
	_, err = r.UpdateAnimal("a-1", animals.Patch{Name: ptr("")})
	assertReason(t, err, ReasonMissingName)
}

func TestMerge_DoesNotMutate(t *testing.T) {
	r := seeded(t)

	_, err := r.MergeAnimal("a-1", animals.Patch{Name: ptr("Max")})
	require.NoError(t, err)
	a, _ := r.AnimalByID("a-1")
	assert.Equal(t, "Rex", a.Name)

	_, err = r.MergeExpense("e-1", bookings.ExpensePatch{Amount: ptr(money.Money(9))})
	require.NoError(t, err)
	e, _ := r.ExpenseByID("e-1")
	assert.Equal(t, money.Money(1500), e.Amount)
}

func TestLoad_IsAtomic(t *testing.T) {
	r := seeded(t)

	err := r.Load(Snapshot{
		Animals:  []animals.Animal{{ID: "x", Name: "X", SizeClass: animals.SizeSmall}},
		Bookings: []bookings.Booking{booking("bx", "missing", "2024-01-01", "2024-01-02", bookings.StatusUpcoming)},
	})
	assertReason(t, err, ReasonUnknownAnimal)

	a, b, e := r.Counts()
	assert.Equal(t, []int{2, 4, 3}, []int{a, b, e})
}

func TestLoad_DuplicateIDs(t *testing.T) {
	r := New()
	err := r.Load(Snapshot{Animals: []animals.Animal{
		{ID: "x", Name: "X", SizeClass: animals.SizeSmall},
		{ID: "x", Name: "Y", SizeClass: animals.SizeSmall},
	}})
	assertReason(t, err, ReasonDuplicateID)
}

func TestListings_Order(t *testing.T) {
	r := seeded(t)

	names := []string{}
	for _, a := range r.Animals() {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"Bimba", "Rex"}, names)

	ids := []string{}
	for _, b := range r.Bookings(bookings.Filter{}) {
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []string{"b-3", "b-2", "b-4", "b-1"}, ids)

	st := bookings.StatusCompleted
	only := r.Bookings(bookings.Filter{Status: &st})
	require.Len(t, only, 1)
	assert.Equal(t, "b-1", only[0].ID)
}

func TestExpensesForBooking_CreationOrder(t *testing.T) {
	r := seeded(t)
	t0 := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)

	_, err := r.InsertExpense(bookings.Expense{ID: "e-z", BookingID: "b-4", Name: "late", Amount: 1, CreatedAt: t0.Add(time.Hour)})
	require.NoError(t, err)
	_, err = r.InsertExpense(bookings.Expense{ID: "e-a", BookingID: "b-4", Name: "early", Amount: 1, CreatedAt: t0})
	require.NoError(t, err)

	got := r.ExpensesForBooking("b-4")
	require.Len(t, got, 3)
	assert.Equal(t, "e-3", got[0].ID) // zero CreatedAt
	assert.Equal(t, "e-a", got[1].ID)
	assert.Equal(t, "e-z", got[2].ID)

	assert.Empty(t, r.ExpensesForBooking("ghost"))
}

func TestSnapshot_IsDeepCopy(t *testing.T) {
	r := seeded(t)
	_, err := r.UpdateBooking("b-2", bookings.Patch{
		CustomPricePerDay: bookings.NullableMoney{Present: true, Value: ptr(money.Money(1800))},
	})
	require.NoError(t, err)

	s := r.Snapshot()
	for i := range s.Bookings {
		if s.Bookings[i].CustomPricePerDay != nil {
			*s.Bookings[i].CustomPricePerDay = 1
		}
	}
	b, _ := r.BookingByID("b-2")
	assert.Equal(t, money.Money(1800), *b.CustomPricePerDay)
}

func TestAnimalStats(t *testing.T) {
	r := seeded(t)

	st, err := r.AnimalStats("a-1")
	require.NoError(t, err)
	assert.Equal(t, 1, st.CompletedBookings)
	assert.Equal(t, 10, st.TotalDays)
	assert.Equal(t, money.Money(20000-1500), st.Revenue)

	_, err = r.AnimalStats("ghost")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestOccupancy(t *testing.T) {
	r := seeded(t)

	// b-1 días 5..10 (6) + b-4 días 5..6 (2); b-3 cancelada no cuenta
	assert.Equal(t, 8, r.Occupancy(days.MustParse("2024-03-05"), days.MustParse("2024-03-31")))
	assert.Equal(t, 0, r.Occupancy(days.MustParse("2024-05-01"), days.MustParse("2024-05-31")))
	assert.Equal(t, 0, r.Occupancy(days.MustParse("2024-03-31"), days.MustParse("2024-03-01")))
}

func TestDeleteExpense(t *testing.T) {
	r := seeded(t)
	require.NoError(t, r.DeleteExpense("e-1"))
	assert.Empty(t, r.ExpensesForBooking("b-1"))
	assert.True(t, errors.Is(r.DeleteExpense("e-1"), ErrNotFound))
}
