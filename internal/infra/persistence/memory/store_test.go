package memory

import (
	"context"
	"testing"
	"time"

	"petverse/internal/domain/entity"
	"petverse/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder(id, userID string, createdAt time.Time) *entity.Order {
	return &entity.Order{
		OrderID:       id,
		UserID:        userID,
		Items:         []entity.OrderItem{{ProductID: "p1", Name: "Kibble", Price: 500, Quantity: 2}},
		PaymentMethod: entity.PaymentMethodCOD,
		Status:        entity.OrderStatusConfirmed,
		PaymentStatus: entity.PaymentStatusPending,
		Subtotal:      1000,
		ShippingFee:   5000,
		Total:         6000,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
}

func TestStore_PutIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	order := testOrder("ORD-1", "user-1", time.Now())

	require.NoError(t, store.Put(ctx, order))
	require.NoError(t, store.Put(ctx, order))

	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestStore_ReturnsDetachedCopies(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	order := testOrder("ORD-1", "user-1", time.Now())
	require.NoError(t, store.Put(ctx, order))

	order.Items[0].Price = 1
	found, err := store.FindByID(ctx, "ORD-1")
	require.NoError(t, err)
	assert.Equal(t, int64(500), found.Items[0].Price)
}

func TestStore_ListByUserNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.Put(ctx, testOrder("ORD-A", "user-1", base)))
	require.NoError(t, store.Put(ctx, testOrder("ORD-C", "user-1", base.Add(2*time.Hour))))
	require.NoError(t, store.Put(ctx, testOrder("ORD-B", "user-1", base.Add(time.Hour))))
	require.NoError(t, store.Put(ctx, testOrder("ORD-X", "user-2", base.Add(3*time.Hour))))

	orders, err := store.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	ids := []string{}
	for _, o := range orders {
		ids = append(ids, o.OrderID)
	}
	assert.Equal(t, []string{"ORD-C", "ORD-B", "ORD-A"}, ids)

	none, err := store.ListByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestStore_GatewayOrderLookup(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	order := testOrder("ORD-1", "user-1", time.Now())
	order.PaymentMethod = entity.PaymentMethodGateway
	order.Status = entity.OrderStatusPending
	order.GatewayOrderID = "order_GW1"
	require.NoError(t, store.Put(ctx, order))

	found, err := store.FindByGatewayOrderID(ctx, "order_GW1")
	require.NoError(t, err)
	assert.Equal(t, "ORD-1", found.OrderID)

	_, err = store.FindByGatewayOrderID(ctx, "order_unknown")
	require.ErrorIs(t, err, repository.ErrOrderNotFound)

	other := testOrder("ORD-2", "user-1", time.Now())
	other.GatewayOrderID = "order_GW1"
	require.ErrorIs(t, store.Put(ctx, other), repository.ErrDuplicateGatewayOrder)
}

func TestStore_ConditionalUpdate(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	order := testOrder("ORD-1", "user-1", time.Now())
	order.Status = entity.OrderStatusPending
	require.NoError(t, store.Put(ctx, order))

	expect := order.State()
	updated := order.Clone()
	updated.Status = entity.OrderStatusConfirmed
	require.NoError(t, store.Update(ctx, updated, expect))

	stale := order.Clone()
	stale.Status = entity.OrderStatusCancelled
	require.ErrorIs(t, store.Update(ctx, stale, expect), repository.ErrOrderConflict)

	missing := testOrder("ORD-404", "user-1", time.Now())
	require.ErrorIs(t, store.Update(ctx, missing, expect), repository.ErrOrderNotFound)
}

func TestStore_SaveBookDetectsConcurrentWriters(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	now := time.Now()

	book, err := store.LoadBook(ctx, "user-1")
	require.NoError(t, err)
	_, err = book.Add(&entity.Address{AddressID: "A", Name: "Asha"}, false, now)
	require.NoError(t, err)
	_, err = book.Add(&entity.Address{AddressID: "B", Name: "Asha"}, false, now.Add(time.Second))
	require.NoError(t, err)
	require.NoError(t, store.SaveBook(ctx, book))
	assert.Equal(t, int64(1), book.Version)

	first, err := store.LoadBook(ctx, "user-1")
	require.NoError(t, err)
	second, err := store.LoadBook(ctx, "user-1")
	require.NoError(t, err)

	require.NoError(t, first.SetDefault("B", now))
	require.NoError(t, second.SetDefault("A", now))

	require.NoError(t, store.SaveBook(ctx, first))
	require.ErrorIs(t, store.SaveBook(ctx, second), repository.ErrVersionConflict)

	stored, err := store.LoadBook(ctx, "user-1")
	require.NoError(t, err)
	require.NoError(t, stored.CheckInvariant())
	def, ok := stored.Default()
	require.True(t, ok)
	assert.Equal(t, "B", def.AddressID)
}

func TestStore_SaveBookAppliesDeletes(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	now := time.Now()

	book, err := store.LoadBook(ctx, "user-1")
	require.NoError(t, err)
	_, err = book.Add(&entity.Address{AddressID: "A"}, false, now)
	require.NoError(t, err)
	require.NoError(t, store.SaveBook(ctx, book))

	book, err = store.LoadBook(ctx, "user-1")
	require.NoError(t, err)
	require.NoError(t, book.Remove("A", now))
	require.NoError(t, store.SaveBook(ctx, book))

	book, err = store.LoadBook(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, book.Len())
	assert.Equal(t, int64(2), book.Version)
}

func TestStore_IntentLookup(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	_, err := store.FindIntent(ctx, "order_gw1")
	require.ErrorIs(t, err, repository.ErrIntentNotFound)

	require.NoError(t, store.SaveIntent(ctx, &entity.GatewayIntent{
		GatewayOrderID:   "order_gw1",
		AmountMinorUnits: 6000,
		Currency:         "INR",
		ReceiptID:        "receipt_1",
		Raw:              map[string]any{"id": "order_gw1"},
	}))

	intent, err := store.FindIntent(ctx, "order_gw1")
	require.NoError(t, err)
	assert.Equal(t, int64(6000), intent.AmountMinorUnits)
	assert.Equal(t, "INR", intent.Currency)
	assert.Nil(t, intent.Raw)

	orders, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}
