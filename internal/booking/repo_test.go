package booking

import (
	"context"
	"os"
	"testing"

	"github.com/apnacafe/backend/internal/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
)

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

func TestCreateReservation_Integration(t *testing.T) {
	repo := &Repo{DB: testPool(t)}

	in := Reservation{
		Name: "Test Guest", Email: "guest@example.com", Phone: "8888888888",
		Date: "2026-09-01", Time: "19:30", Guests: 4,
	}
	got, err := repo.CreateReservation(context.Background(), in)
	if err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}
	if got.ID <= 0 {
		t.Errorf("reservation id = %d, want > 0", got.ID)
	}
	if got.Date != in.Date || got.Time != in.Time || got.Guests != in.Guests {
		t.Errorf("persisted row %+v differs from input %+v", got, in)
	}
}

func TestCreateContactMessage_Integration(t *testing.T) {
	repo := &Repo{DB: testPool(t)}

	got, err := repo.CreateContactMessage(context.Background(), ContactMessage{
		Name: "Test Sender", Email: "sender@example.com", Message: "hello",
	})
	if err != nil {
		t.Fatalf("CreateContactMessage: %v", err)
	}
	if got.ID <= 0 || got.Message != "hello" {
		t.Errorf("persisted message %+v, want positive id and original text", got)
	}
}
