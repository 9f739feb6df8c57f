package intergration

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmehra2102/Bookstore-Inventory-Service/internal/inventory/application"
	"github.com/dmehra2102/Bookstore-Inventory-Service/internal/inventory/domain"
	invdb "github.com/dmehra2102/Bookstore-Inventory-Service/internal/inventory/infrastructure/postgres"
)

// Requires a local Docker daemon; opt in with INTEGRATION=1.
func setupRepo(t *testing.T) (*invdb.Repository, *application.Service) {
	t.Helper()
	if os.Getenv("INTEGRATION") == "" {
		t.Skip("set INTEGRATION=1 to run container-backed tests")
	}

	ctx := context.Background()
	env, err := Setup(ctx)
	if err != nil {
		t.Fatalf("container setup: %v", err)
	}
	t.Cleanup(func() { env.Teardown(context.Background()) })

	pool, err := pgxpool.New(ctx, env.PGURL)
	if err != nil {
		t.Fatalf("pg connect: %v", err)
	}
	t.Cleanup(pool.Close)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := invdb.NewRepository(log, pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		t.Fatalf("schema: %v", err)
	}
	return repo, application.NewService(log, repo)
}

func TestConditionalDecrement_ConcurrentRacers(t *testing.T) {
	repo, svc := setupRepo(t)
	ctx := context.Background()

	if err := repo.SetStock(ctx, "book_1", 10); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = svc.Reserve(ctx, "book_1", 7)
		}(i)
	}
	wg.Wait()

	var wins int
	for _, err := range results {
		if err == nil {
			wins++
			continue
		}
		var insufficient *domain.InsufficientStockError
		if !errors.As(err, &insufficient) {
			t.Errorf("loser reported %v, want insufficient stock", err)
		}
	}
	if wins != 1 {
		t.Fatalf("%d reservations won, want exactly 1", wins)
	}

	item, err := repo.Lookup(ctx, "book_1")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if item.Stock != 3 {
		t.Errorf("final stock = %d, want 3", item.Stock)
	}
}

func TestLookup_InternalKeyFallback(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	if err := repo.SetStock(ctx, "book_5", 6); err != nil {
		t.Fatalf("seed: %v", err)
	}
	byID, err := repo.Lookup(ctx, "book_5")
	if err != nil {
		t.Fatalf("lookup by item id: %v", err)
	}

	byKey, err := repo.Lookup(ctx, byID.InternalKey)
	if err != nil {
		t.Fatalf("lookup by internal key: %v", err)
	}
	if byKey.ItemID != "book_5" || byKey.Stock != 6 {
		t.Errorf("fallback lookup returned %+v", byKey)
	}
}

func TestAdjustOnOrderCreated_FloorsAtZero(t *testing.T) {
	repo, svc := setupRepo(t)
	ctx := context.Background()

	if err := repo.SetStock(ctx, "book_2", 2); err != nil {
		t.Fatalf("seed: %v", err)
	}
	ev := domain.OrderEvent{
		EventType: domain.EventOrderCreated,
		Items:     []domain.EventItem{{ItemID: "book_2", Quantity: 5}},
	}
	if err := svc.ApplyOrderEvent(ctx, ev); err != nil {
		t.Fatalf("apply: %v", err)
	}

	item, err := repo.Lookup(ctx, "book_2")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if item.Stock != 0 {
		t.Errorf("stock = %d, want 0", item.Stock)
	}
}
