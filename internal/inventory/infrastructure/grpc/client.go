package grpc

import (
	"context"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/dmehra2102/Bookstore-Inventory-Service/internal/inventory/infrastructure/grpc/proto"
)

// Client wraps the InventoryService stub for the order and cart workflows.
type Client struct {
	log *slog.Logger
	cc  pb.InventoryServiceClient
}

func NewClient(log *slog.Logger, addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return &Client{
		log: log,
		cc:  pb.NewInventoryServiceClient(conn),
	}, nil
}

func (c *Client) CheckStock(ctx context.Context, itemID string) (int64, bool, error) {
	resp, err := c.cc.CheckStock(ctx, &pb.StockRequest{ItemId: itemID})
	if err != nil {
		return 0, false, err
	}
	return resp.GetAvailableUnits(), resp.GetInStock(), nil
}

func (c *Client) ReserveStock(ctx context.Context, itemID string, qty int64) (bool, string, error) {
	resp, err := c.cc.ReserveStock(ctx, &pb.ReserveRequest{ItemId: itemID, Quantity: qty})
	if err != nil {
		return false, "", err
	}
	return resp.GetSuccess(), resp.GetMessage(), nil
}

func (c *Client) ReleaseStock(ctx context.Context, itemID string, qty int64) (bool, string, error) {
	resp, err := c.cc.ReleaseStock(ctx, &pb.ReleaseRequest{ItemId: itemID, Quantity: qty})
	if err != nil {
		return false, "", err
	}
	return resp.GetSuccess(), resp.GetMessage(), nil
}

func (c *Client) ConfirmStockReduction(ctx context.Context, itemID string, qty int64) (bool, string, error) {
	resp, err := c.cc.ConfirmStockReduction(ctx, &pb.ConfirmRequest{ItemId: itemID, Quantity: qty})
	if err != nil {
		return false, "", err
	}
	return resp.GetConfirmed(), resp.GetMessage(), nil
}
