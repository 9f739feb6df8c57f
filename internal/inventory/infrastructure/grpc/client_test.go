package grpc

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"

	"google.golang.org/grpc"

	pb "github.com/dmehra2102/Bookstore-Inventory-Service/internal/inventory/infrastructure/grpc/proto"
)

func startServer(t *testing.T, srv *Server) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	gs := grpc.NewServer()
	pb.RegisterInventoryServiceServer(gs, srv)
	go func() { _ = gs.Serve(lis) }()
	t.Cleanup(gs.Stop)
	return lis.Addr().String()
}

func TestClient_RoundTrip(t *testing.T) {
	addr := startServer(t, newTestServer(map[string]int64{"book_1": 10}))

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := NewClient(log, addr)
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	ctx := context.Background()

	units, inStock, err := client.CheckStock(ctx, "book_1")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if units != 10 || !inStock {
		t.Errorf("check = (%d, %v), want (10, true)", units, inStock)
	}

	ok, msg, err := client.ReserveStock(ctx, "book_1", 7)
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if !ok {
		t.Fatalf("reserve rejected: %s", msg)
	}

	ok, msg, err = client.ReserveStock(ctx, "book_1", 7)
	if err != nil {
		t.Fatalf("second reserve: %v", err)
	}
	if ok {
		t.Error("second reserve of 7 from 3 remaining must fail")
	}

	ok, _, err = client.ReleaseStock(ctx, "book_1", 7)
	if err != nil || !ok {
		t.Fatalf("release: ok=%v err=%v", ok, err)
	}

	confirmed, _, err := client.ConfirmStockReduction(ctx, "book_1", 7)
	if err != nil || !confirmed {
		t.Fatalf("confirm: confirmed=%v err=%v", confirmed, err)
	}

	units, _, err = client.CheckStock(ctx, "book_1")
	if err != nil {
		t.Fatalf("final check: %v", err)
	}
	if units != 10 {
		t.Errorf("final stock = %d, want 10", units)
	}
}
