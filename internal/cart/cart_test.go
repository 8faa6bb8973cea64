package cart

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jacket(size string, qty int) Item {
	return Item{
		ProductID: "p1",
		Name:      "Raw Denim Jacket",
		Price:     decimal.RequireFromString("45.00"),
		Size:      size,
		Color:     "Indigo",
		Quantity:  qty,
	}
}

func TestAddMergesSameVariant(t *testing.T) {
	svc := NewService(NewMemoryStorage())
	ctx := context.Background()

	_, err := svc.Add(ctx, "c1", jacket("M", 1))
	require.NoError(t, err)
	contents, err := svc.Add(ctx, "c1", jacket("M", 2))
	require.NoError(t, err)

	require.Len(t, contents.Items, 1)
	assert.Equal(t, 3, contents.Items[0].Quantity)
	assert.Equal(t, 3, contents.Count)
}

func TestAddKeepsVariantsSeparate(t *testing.T) {
	svc := NewService(NewMemoryStorage())
	ctx := context.Background()

	_, err := svc.Add(ctx, "c1", jacket("M", 1))
	require.NoError(t, err)
	contents, err := svc.Add(ctx, "c1", jacket("L", 1))
	require.NoError(t, err)

	assert.Len(t, contents.Items, 2)
}

func TestAddDefaultsQuantityToOne(t *testing.T) {
	svc := NewService(NewMemoryStorage())

	contents, err := svc.Add(context.Background(), "c1", jacket("M", 0))
	require.NoError(t, err)
	assert.Equal(t, 1, contents.Items[0].Quantity)
}

func TestSubtotalAndCount(t *testing.T) {
	svc := NewService(NewMemoryStorage())
	ctx := context.Background()

	_, err := svc.Add(ctx, "c1", jacket("M", 2))
	require.NoError(t, err)

	tee := Item{
		ProductID: "p2",
		Name:      "Logo Tee",
		Price:     decimal.RequireFromString("30.00"),
		Quantity:  1,
	}
	contents, err := svc.Add(ctx, "c1", tee)
	require.NoError(t, err)

	assert.Equal(t, 3, contents.Count)
	assert.True(t, contents.Subtotal.Equal(decimal.RequireFromString("120.00")),
		"subtotal is %s", contents.Subtotal)
}

func TestUpdateQuantity(t *testing.T) {
	svc := NewService(NewMemoryStorage())
	ctx := context.Background()

	_, err := svc.Add(ctx, "c1", jacket("M", 1))
	require.NoError(t, err)

	contents, err := svc.UpdateQuantity(ctx, "c1", "p1", "M", "Indigo", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, contents.Items[0].Quantity)
}

func TestUpdateQuantityRejectsBelowOne(t *testing.T) {
	svc := NewService(NewMemoryStorage())
	ctx := context.Background()

	_, err := svc.Add(ctx, "c1", jacket("M", 2))
	require.NoError(t, err)

	_, err = svc.UpdateQuantity(ctx, "c1", "p1", "M", "Indigo", 0)
	require.ErrorIs(t, err, ErrInvalidQuantity)

	contents, err := svc.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 2, contents.Items[0].Quantity, "rejected update changes nothing")
}

func TestUpdateQuantityUnknownVariant(t *testing.T) {
	svc := NewService(NewMemoryStorage())

	_, err := svc.UpdateQuantity(context.Background(), "c1", "p1", "M", "Indigo", 2)
	require.ErrorIs(t, err, ErrItemNotFound)
}

func TestRemoveTargetsOneVariant(t *testing.T) {
	svc := NewService(NewMemoryStorage())
	ctx := context.Background()

	_, err := svc.Add(ctx, "c1", jacket("M", 1))
	require.NoError(t, err)
	_, err = svc.Add(ctx, "c1", jacket("L", 1))
	require.NoError(t, err)

	contents, err := svc.Remove(ctx, "c1", "p1", "M", "Indigo")
	require.NoError(t, err)
	require.Len(t, contents.Items, 1)
	assert.Equal(t, "L", contents.Items[0].Size)
}

func TestClearEmptiesCart(t *testing.T) {
	svc := NewService(NewMemoryStorage())
	ctx := context.Background()

	_, err := svc.Add(ctx, "c1", jacket("M", 2))
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx, "c1"))

	contents, err := svc.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, contents.Items)
	assert.Equal(t, 0, contents.Count)
	assert.True(t, contents.Subtotal.IsZero())
}

func TestCartsAreIsolated(t *testing.T) {
	svc := NewService(NewMemoryStorage())
	ctx := context.Background()

	_, err := svc.Add(ctx, "c1", jacket("M", 1))
	require.NoError(t, err)

	contents, err := svc.Get(ctx, "c2")
	require.NoError(t, err)
	assert.Empty(t, contents.Items)
}
