package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m3rciful/demobot/bot/catalog"
)

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Products: map[int]catalog.Product{
			1: {ID: 1, Name: "Phone", Price: 999, Category: "Electronics"},
			2: {ID: 2, Name: "Book", Price: 49, Category: "Books"},
		},
	}
}

func TestCartAddAndTotal(t *testing.T) {
	s := New()
	cat := testCatalog()

	s.AddToCart(42, 1, 1)
	s.AddToCart(42, 1, 1)
	s.AddToCart(42, 2, 1)

	require.Equal(t, map[int]int{1: 2, 2: 1}, s.CartItems(42))
	require.Equal(t, 2*999+49, s.CartTotal(42, cat))
}

func TestCheckoutClearsCart(t *testing.T) {
	s := New()
	cat := testCatalog()
	s.AddToCart(42, 2, 3)

	require.Equal(t, 3*49, s.Checkout(42, cat))
	require.Empty(t, s.CartItems(42), "checkout must clear the cart")
	require.Zero(t, s.Checkout(42, cat), "second checkout sees an empty cart")
}

func TestCheckoutEmptyCartMutatesNothing(t *testing.T) {
	s := New()
	cat := testCatalog()

	require.Zero(t, s.Checkout(42, cat))
	require.Empty(t, s.CartItems(42))
	require.Zero(t, s.Aggregate(time.Now(), time.Hour).ActiveCarts)
}

func TestCartTotalSkipsUnknownProducts(t *testing.T) {
	s := New()
	s.AddToCart(42, 99, 1)
	require.Zero(t, s.CartTotal(42, testCatalog()))
}

func TestBookings(t *testing.T) {
	s := New()
	b := Booking{Service: "Haircut", Slot: "10:00", Date: time.Now(), Price: 1500}
	s.AddBooking(7, b)
	s.AddBooking(7, Booking{Service: "Manicure", Slot: "12:00", Price: 2000})

	got := s.Bookings(7)
	require.Len(t, got, 2)
	require.Equal(t, "Haircut", got[0].Service)
	require.Empty(t, s.Bookings(8))
}

func TestAggregate(t *testing.T) {
	s := New()
	now := time.Unix(1_700_000_000, 0)

	s.RecordSession(1, now.Add(-8*24*time.Hour))
	s.RecordSession(2, now.Add(-time.Hour))
	s.RecordDispatch(2, now.Add(-time.Hour))
	s.RecordDispatch(2, now.Add(-30*time.Minute))
	s.AddToCart(2, 1, 1)
	s.AddBooking(1, Booking{Service: "Spa"})
	s.AddBooking(2, Booking{Service: "Shave"})

	snap := s.Aggregate(now, 7*24*time.Hour)
	require.Equal(t, 2, snap.TotalUsers)
	require.Equal(t, 1, snap.ActiveUsers, "only users active within the window count")
	require.Equal(t, 1, snap.ActiveCarts)
	require.Equal(t, 2, snap.TotalBookings)
	require.Equal(t, 2, snap.Dispatches)
	require.Equal(t, 2, snap.Sessions)
}

func TestStatsCopy(t *testing.T) {
	s := New()
	now := time.Unix(1_700_000_000, 0)
	s.RecordDispatch(5, now)

	st := s.Stats(5)
	require.Equal(t, 1, st.Dispatches)
	require.Equal(t, now, st.LastActive)

	st.Dispatches = 100
	require.Equal(t, 1, s.Stats(5).Dispatches, "Stats must return a copy")
}
