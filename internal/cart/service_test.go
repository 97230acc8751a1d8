package cart

import (
	"context"
	"testing"

	pkgerrors "github.com/NonattoDev/ecommercesoftline-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

func TestAddMergesAndClampsAgainstStock(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()

	_, warning, err := svc.Add(ctx, "42", LineItem{Code: 10, Name: "Drill", Price: decimal.NewFromInt(100), Quantity: 3, Stock: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if warning != nil {
		t.Fatalf("expected no warning for in-stock add, got %+v", warning)
	}

	cart, warning, err := svc.Add(ctx, "42", LineItem{Code: 10, Name: "Drill", Price: decimal.NewFromInt(100), Quantity: 4, Stock: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if warning == nil || warning.Code != WarningStockClamped || warning.ProductCode != 10 {
		t.Fatalf("expected stock clamped warning, got %+v", warning)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("expected merged line, got %d items", len(cart.Items))
	}
	if cart.Items[0].Quantity != 5 {
		t.Fatalf("expected quantity clamped to 5, got %d", cart.Items[0].Quantity)
	}
}

func TestAddAtExactCeilingEmitsNoWarning(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()

	mustAdd(t, svc, "42", LineItem{Code: 10, Name: "Drill", Quantity: 2, Stock: 5})
	cart, warning, err := svc.Add(ctx, "42", LineItem{Code: 10, Name: "Drill", Quantity: 3, Stock: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if warning != nil {
		t.Fatalf("sum equals ceiling; expected no warning, got %+v", warning)
	}
	if cart.Items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", cart.Items[0].Quantity)
	}
}

func TestAddAppendsPreservingOrder(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	mustAdd(t, svc, "42", LineItem{Code: 30, Name: "Hammer", Quantity: 1, Stock: 9})
	mustAdd(t, svc, "42", LineItem{Code: 10, Name: "Drill", Quantity: 1, Stock: 9})
	cart := mustAdd(t, svc, "42", LineItem{Code: 20, Name: "Saw", Quantity: 1, Stock: 9})

	want := []int{30, 10, 20}
	if len(cart.Items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(cart.Items))
	}
	for i, code := range want {
		if cart.Items[i].Code != code {
			t.Fatalf("expected item %d to be product %d, got %d", i, code, cart.Items[i].Code)
		}
	}
}

func TestAddValidatesLineItem(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	_, _, err := svc.Add(context.Background(), "42", LineItem{Code: 0, Name: "Drill", Quantity: 1, Stock: 5})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateQuantityClampsLikeAdd(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()

	mustAdd(t, svc, "42", LineItem{Code: 10, Name: "Drill", Quantity: 1, Stock: 5})

	cart, warning, err := svc.UpdateQuantity(ctx, "42", 10, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if warning == nil || warning.Code != WarningStockClamped {
		t.Fatalf("expected clamp warning, got %+v", warning)
	}
	if cart.Items[0].Quantity != 5 {
		t.Fatalf("expected quantity clamped to 5, got %d", cart.Items[0].Quantity)
	}

	cart, warning, err = svc.UpdateQuantity(ctx, "42", 10, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if warning != nil {
		t.Fatalf("expected no warning, got %+v", warning)
	}
	if cart.Items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", cart.Items[0].Quantity)
	}
}

func TestUpdateQuantityAbsentCodeIsNoOp(t *testing.T) {
	t.Parallel()

	svc, store := newTestService(t)

	mustAdd(t, svc, "42", LineItem{Code: 10, Name: "Drill", Quantity: 1, Stock: 5})
	saves := store.saves

	cart, warning, err := svc.UpdateQuantity(context.Background(), "42", 99, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if warning != nil {
		t.Fatalf("expected no warning, got %+v", warning)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 1 {
		t.Fatalf("cart should be unchanged, got %+v", cart.Items)
	}
	if store.saves != saves {
		t.Fatalf("no-op update should not re-persist the snapshot")
	}
}

func TestRemoveAbsentCodeLeavesCartUnchanged(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	mustAdd(t, svc, "42", LineItem{Code: 10, Name: "Drill", Quantity: 2, Stock: 5})

	cart, err := svc.Remove(context.Background(), "42", 77)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Code != 10 {
		t.Fatalf("cart should be unchanged, got %+v", cart.Items)
	}
}

func TestRemoveDeletesMatchingLine(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	mustAdd(t, svc, "42", LineItem{Code: 10, Name: "Drill", Quantity: 2, Stock: 5})
	mustAdd(t, svc, "42", LineItem{Code: 20, Name: "Saw", Quantity: 1, Stock: 5})

	cart, err := svc.Remove(context.Background(), "42", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Code != 20 {
		t.Fatalf("expected only product 20 left, got %+v", cart.Items)
	}
}

func TestClearEmptiesCartAndDeletesSnapshot(t *testing.T) {
	t.Parallel()

	svc, store := newTestService(t)
	ctx := context.Background()

	mustAdd(t, svc, "42", LineItem{Code: 10, Name: "Drill", Quantity: 2, Stock: 5})

	if err := svc.Clear(ctx, "42"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := store.snapshots["42"]; ok {
		t.Fatalf("expected snapshot deleted")
	}

	cart, err := svc.Load(ctx, "42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart after clear, got %+v", cart.Items)
	}
}

func TestSnapshotsAreScopedPerIdentity(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()

	mustAdd(t, svc, "alice", LineItem{Code: 10, Name: "Drill", Quantity: 2, Stock: 5})
	mustAdd(t, svc, "bob", LineItem{Code: 20, Name: "Saw", Quantity: 1, Stock: 5})

	aliceCart, err := svc.Load(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(aliceCart.Items) != 1 || aliceCart.Items[0].Code != 10 {
		t.Fatalf("alice sees wrong cart: %+v", aliceCart.Items)
	}

	bobCart, err := svc.Load(ctx, "bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bobCart.Items) != 1 || bobCart.Items[0].Code != 20 {
		t.Fatalf("bob sees wrong cart: %+v", bobCart.Items)
	}
}

func TestAnonymousMutationsAreNotPersisted(t *testing.T) {
	t.Parallel()

	svc, store := newTestService(t)

	cart, _, err := svc.Add(context.Background(), "", LineItem{Code: 10, Name: "Drill", Quantity: 1, Stock: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("expected item in returned cart, got %+v", cart.Items)
	}
	if store.saves != 0 {
		t.Fatalf("anonymous add must not touch the snapshot store")
	}
}

func TestSubtotal(t *testing.T) {
	t.Parallel()

	cart := Cart{Items: []LineItem{
		{Code: 10, Price: decimal.RequireFromString("19.90"), Quantity: 2},
		{Code: 20, Price: decimal.RequireFromString("5.05"), Quantity: 1},
	}}
	if got := cart.Subtotal(); !got.Equal(decimal.RequireFromString("44.85")) {
		t.Fatalf("expected subtotal 44.85, got %s", got)
	}
}

func mustAdd(t *testing.T, svc Service, customerID string, item LineItem) Cart {
	t.Helper()
	cart, _, err := svc.Add(context.Background(), customerID, item)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	return cart
}

func newTestService(t *testing.T) (Service, *fakeSnapshotStore) {
	t.Helper()
	store := &fakeSnapshotStore{snapshots: map[string][]LineItem{}}
	svc, err := NewService(store)
	if err != nil {
		t.Fatalf("building service: %v", err)
	}
	return svc, store
}

type fakeSnapshotStore struct {
	snapshots map[string][]LineItem
	saves     int
}

func (f *fakeSnapshotStore) Save(_ context.Context, customerID string, items []LineItem) error {
	f.snapshots[customerID] = append([]LineItem(nil), items...)
	f.saves++
	return nil
}

func (f *fakeSnapshotStore) Load(_ context.Context, customerID string) ([]LineItem, bool, error) {
	items, ok := f.snapshots[customerID]
	if !ok {
		return nil, false, nil
	}
	return append([]LineItem(nil), items...), true, nil
}

func (f *fakeSnapshotStore) Delete(_ context.Context, customerID string) error {
	delete(f.snapshots, customerID)
	return nil
}
