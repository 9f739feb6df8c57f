package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"

	"github.com/dmehra2102/Bookstore-Inventory-Service/internal/inventory/application"
	pb "github.com/dmehra2102/Bookstore-Inventory-Service/internal/inventory/infrastructure/grpc/proto"
)

// Server is the stateless RPC facade over the reservation engine: one call
// in, one structured result out, no retries. Engine failures become
// success:false / confirmed:false responses with a human-readable message;
// no call returns a transport-level error for a business failure.
type Server struct {
	pb.UnimplementedInventoryServiceServer
	log    *slog.Logger
	svc    *application.Service
	tracer trace.Tracer
}

func NewServer(log *slog.Logger, svc *application.Service) *Server {
	return &Server{
		log:    log,
		svc:    svc,
		tracer: otel.Tracer("inventory-grpc"),
	}
}

func (s *Server) CheckStock(ctx context.Context, req *pb.StockRequest) (*pb.StockResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CheckStock")
	defer span.End()

	units, inStock, err := s.svc.CheckStock(ctx, req.GetItemId())
	if err != nil {
		s.log.Error("check stock failed", "item_id", req.GetItemId(), "err", err)
		return &pb.StockResponse{ItemId: req.GetItemId()}, nil
	}
	return &pb.StockResponse{
		ItemId:         req.GetItemId(),
		AvailableUnits: units,
		InStock:        inStock,
	}, nil
}

func (s *Server) ReserveStock(ctx context.Context, req *pb.ReserveRequest) (*pb.ReserveResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ReserveStock")
	defer span.End()

	if err := s.svc.Reserve(ctx, req.GetItemId(), req.GetQuantity()); err != nil {
		s.log.Warn("reserve rejected", "item_id", req.GetItemId(), "quantity", req.GetQuantity(), "err", err)
		return &pb.ReserveResponse{Success: false, Message: err.Error()}, nil
	}
	return &pb.ReserveResponse{
		Success: true,
		Message: fmt.Sprintf("reserved %d units of %s", req.GetQuantity(), req.GetItemId()),
	}, nil
}

func (s *Server) ReleaseStock(ctx context.Context, req *pb.ReleaseRequest) (*pb.ReleaseResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ReleaseStock")
	defer span.End()

	if err := s.svc.Release(ctx, req.GetItemId(), req.GetQuantity()); err != nil {
		s.log.Warn("release rejected", "item_id", req.GetItemId(), "quantity", req.GetQuantity(), "err", err)
		return &pb.ReleaseResponse{Success: false, Message: err.Error()}, nil
	}
	return &pb.ReleaseResponse{
		Success: true,
		Message: fmt.Sprintf("released %d units of %s", req.GetQuantity(), req.GetItemId()),
	}, nil
}

func (s *Server) ConfirmStockReduction(ctx context.Context, req *pb.ConfirmRequest) (*pb.ConfirmResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ConfirmStockReduction")
	defer span.End()

	if err := s.svc.ConfirmReduction(ctx, req.GetItemId(), req.GetQuantity()); err != nil {
		s.log.Warn("confirm rejected", "item_id", req.GetItemId(), "err", err)
		return &pb.ConfirmResponse{Confirmed: false, Message: err.Error()}, nil
	}
	return &pb.ConfirmResponse{
		Confirmed: true,
		Message:   fmt.Sprintf("stock reduction confirmed for %s, quantity %d", req.GetItemId(), req.GetQuantity()),
	}, nil
}

func Run(addr string, srv *Server) (*grpc.Server, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	gs := grpc.NewServer()
	pb.RegisterInventoryServiceServer(gs, srv)
	go func() {
		_ = gs.Serve(lis)
	}()
	return gs, nil
}
