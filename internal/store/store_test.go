package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conch-tools/conch/internal/testutil"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(testutil.NewTestDB(t))
	require.NoError(t, s.SeedDefaultMenu())
	return s
}

func TestSeedDefaultMenu_Idempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SeedDefaultMenu())

	items, err := s.MenuItems()
	require.NoError(t, err)
	require.Len(t, items, len(defaultMenu))
}

func TestFindItem(t *testing.T) {
	s := newTestStore(t)

	it, err := s.FindItem("mocha")
	require.NoError(t, err)
	require.Equal(t, "coffee", it.Kind)
	require.Equal(t, 450, it.PriceCents)

	_, err = s.FindItem("sushi")
	require.ErrorIs(t, err, ErrNoSuchItem)
}

func TestPlaceOrder(t *testing.T) {
	s := newTestStore(t)

	o, err := s.PlaceOrder("latte")
	require.NoError(t, err)
	require.NotEmpty(t, o.ID)
	require.Equal(t, "latte", o.Item)

	orders, err := s.Orders()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, o.ID, orders[0].ID)
}

func TestPlaceOrder_UnknownItem(t *testing.T) {
	s := newTestStore(t)

	_, err := s.PlaceOrder("sushi")
	require.ErrorIs(t, err, ErrNoSuchItem)

	orders, err := s.Orders()
	require.NoError(t, err)
	require.Empty(t, orders)
}

func TestClearOrders(t *testing.T) {
	s := newTestStore(t)

	_, err := s.PlaceOrder("cake")
	require.NoError(t, err)
	_, err = s.PlaceOrder("pies")
	require.NoError(t, err)

	n, err := s.ClearOrders()
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	orders, err := s.Orders()
	require.NoError(t, err)
	require.Empty(t, orders)
}

func TestAddItem_Replaces(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.AddItem(MenuItem{Name: "mocha", Kind: "coffee", PriceCents: 500}))

	it, err := s.FindItem("mocha")
	require.NoError(t, err)
	require.Equal(t, 500, it.PriceCents)
}
