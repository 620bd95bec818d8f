package orders

import (
	"context"
	"math"
	"os"
	"testing"

	"github.com/apnacafe/backend/internal/catalog"
	"github.com/apnacafe/backend/internal/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
)

func TestTotal(t *testing.T) {
	latte := catalog.Item{ID: 1, Price: 339.9}
	mocha := catalog.Item{ID: 2, Price: 449.9}

	tests := []struct {
		name  string
		lines []Line
		want  float64
	}{
		{"empty", nil, 0},
		{"single line", []Line{{Item: latte, Quantity: 2}}, 679.8},
		{"two lines", []Line{{Item: latte, Quantity: 2}, {Item: mocha, Quantity: 1}}, 1129.7},
	}
	for _, tt := range tests {
		got := Total(tt.lines)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: Total = %v, want %v", tt.name, got, tt.want)
		}
	}
}

// Integration tests below need a database; they skip unless TEST_POSTGRES_DSN
// is set.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("skipping: TEST_POSTGRES_DSN not set")
	}
	pool, err := postgres.Connect(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)
	if err := postgres.Migrate(context.Background(), pool); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return pool
}

func TestCreate_Integration(t *testing.T) {
	pool := testPool(t)
	repo := &Repo{DB: pool}
	ctx := context.Background()

	cust := Customer{Name: "Test Buyer", Email: "buyer@example.com", Phone: "9999999999", Address: "1 Test Lane"}
	lines := []Line{
		{Item: catalog.Item{ID: 1, Name: "CAFFE LATTE", Price: 339.9}, Quantity: 2},
		{Item: catalog.Item{ID: 2, Name: "CAFFE MOCHA", Price: 449.9}, Quantity: 1},
	}

	orderID, err := repo.Create(ctx, cust, lines)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if orderID <= 0 {
		t.Fatalf("orderID = %d, want > 0", orderID)
	}

	var headers, items int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE id=$1`, orderID).Scan(&headers); err != nil {
		t.Fatalf("count orders: %v", err)
	}
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM order_items WHERE order_id=$1`, orderID).Scan(&items); err != nil {
		t.Fatalf("count order_items: %v", err)
	}
	if headers != 1 || items != 2 {
		t.Errorf("persisted %d headers and %d items, want 1 and 2", headers, items)
	}

	var qty int
	var price float64
	err = pool.QueryRow(ctx, `SELECT quantity, price FROM order_items WHERE order_id=$1 AND item_id=1`, orderID).Scan(&qty, &price)
	if err != nil {
		t.Fatalf("read line: %v", err)
	}
	if qty != 2 || math.Abs(price-339.9) > 1e-9 {
		t.Errorf("line = qty %d price %v, want qty 2 price 339.9", qty, price)
	}
}

func TestCreate_RollsBackOnBadLine(t *testing.T) {
	pool := testPool(t)
	repo := &Repo{DB: pool}
	ctx := context.Background()

	var before int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&before); err != nil {
		t.Fatalf("count before: %v", err)
	}

	// a cancelled context aborts the transaction before commit, same as a
	// failing line insert
	cancelCtx, cancel := context.WithCancel(ctx)
	lines := []Line{
		{Item: catalog.Item{ID: 1, Price: 339.9}, Quantity: 1},
		{Item: catalog.Item{ID: 2, Price: 449.9}, Quantity: 1},
	}
	cancel()
	if _, err := repo.Create(cancelCtx, Customer{Name: "x", Email: "x@example.com"}, lines); err == nil {
		t.Fatal("Create with cancelled context succeeded, want error")
	}

	var after int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&after); err != nil {
		t.Fatalf("count after: %v", err)
	}
	if after != before {
		t.Errorf("order count changed from %d to %d after failed create", before, after)
	}
}
