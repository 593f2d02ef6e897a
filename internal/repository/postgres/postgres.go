// Package postgres provides the Postgres-backed MarketDB implementation.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/6ixapp/morren/internal/marketerrors"
	model "github.com/6ixapp/morren/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const orderColumns = `id, item_id, buyer_id, quantity, total_price::text, status, shipping_address, notes, specifications, created_at, updated_at`

const bidColumns = `id, order_id, seller_id, bid_amount::text, estimated_delivery, message, status, created_at, updated_at`

const shippingBidColumns = `id, order_id, shipping_provider_id, bid_amount::text, estimated_delivery, message, status, created_at, updated_at`

// Repo is a pgxpool-backed implementation of repository.MarketDB
type Repo struct {
	pool *pgxpool.Pool
}

// NewRepo wires a pgxpool-backed repository implementation
func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// CreateOrder stores a new order
func (r *Repo) CreateOrder(ctx context.Context, order model.Order) error {
	var specs []byte
	if order.Item != nil && len(order.Item.Specifications) > 0 {
		body, err := json.Marshal(order.Item.Specifications)
		if err != nil {
			return fmt.Errorf("postgres: marshal specifications: %w", err)
		}
		specs = body
	}

	const query = `
		INSERT INTO orders (id, item_id, buyer_id, quantity, total_price, status, shipping_address, notes, specifications, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.pool.Exec(ctx, query,
		order.ID,
		order.ItemID,
		order.BuyerID,
		order.Quantity,
		order.TotalPrice.String(),
		string(order.Status),
		order.ShippingAddress,
		order.Notes,
		specs,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres: insert order: %w", err)
	}
	return nil
}

// GetOrder fetches an order by its primary key
func (r *Repo) GetOrder(ctx context.Context, orderID string) (model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	order, err := scanOrder(r.pool.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Order{}, fmt.Errorf("postgres: get order %s: %w", orderID, marketerrors.ErrOrderNotFound)
		}
		return model.Order{}, fmt.Errorf("postgres: get order %s: %w", orderID, err)
	}
	return order, nil
}

// ListOrders returns all orders ordered by creation time
func (r *Repo) ListOrders(ctx context.Context) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at, id`
	return r.queryOrders(ctx, query)
}

// ListOrdersByBuyer returns all orders placed by the given buyer
func (r *Repo) ListOrdersByBuyer(ctx context.Context, buyerID string) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE buyer_id = $1 ORDER BY created_at, id`
	return r.queryOrders(ctx, query, buyerID)
}

// UpdateOrderStatus transitions an order's status and bumps updated_at
func (r *Repo) UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) (model.Order, error) {
	query := `
		UPDATE orders
		SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + orderColumns
	order, err := scanOrder(r.pool.QueryRow(ctx, query, orderID, string(status)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Order{}, fmt.Errorf("postgres: update order %s: %w", orderID, marketerrors.ErrOrderNotFound)
		}
		return model.Order{}, fmt.Errorf("postgres: update order %s: %w", orderID, err)
	}
	return order, nil
}

// RecordBid stores a seller bid
func (r *Repo) RecordBid(ctx context.Context, bid model.Bid) error {
	const query = `
		INSERT INTO bids (id, order_id, seller_id, bid_amount, estimated_delivery, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		bid.ID,
		bid.OrderID,
		bid.SellerID,
		bid.BidAmount.String(),
		bid.EstimatedDelivery,
		bid.Message,
		string(bid.Status),
		bid.CreatedAt,
		bid.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres: insert bid: %w", err)
	}
	return nil
}

// ListBids returns every seller bid
func (r *Repo) ListBids(ctx context.Context) ([]model.Bid, error) {
	query := `SELECT ` + bidColumns + ` FROM bids ORDER BY created_at, id`
	return r.queryBids(ctx, query)
}

// ListBidsForOrder returns all seller bids attached to an order
func (r *Repo) ListBidsForOrder(ctx context.Context, orderID string) ([]model.Bid, error) {
	query := `SELECT ` + bidColumns + ` FROM bids WHERE order_id = $1 ORDER BY created_at, id`
	return r.queryBids(ctx, query, orderID)
}

// ListPendingBids returns the seller bids still pending for an order
func (r *Repo) ListPendingBids(ctx context.Context, orderID string) ([]model.Bid, error) {
	query := `SELECT ` + bidColumns + ` FROM bids WHERE order_id = $1 AND status = 'pending' ORDER BY created_at, id`
	return r.queryBids(ctx, query, orderID)
}

// UpdateBidStatus transitions a seller bid's status and bumps updated_at
func (r *Repo) UpdateBidStatus(ctx context.Context, bidID string, status model.BidStatus) (model.Bid, error) {
	query := `
		UPDATE bids
		SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + bidColumns
	bid, err := scanBid(r.pool.QueryRow(ctx, query, bidID, string(status)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Bid{}, fmt.Errorf("postgres: update bid %s: %w", bidID, marketerrors.ErrBidNotFound)
		}
		return model.Bid{}, fmt.Errorf("postgres: update bid %s: %w", bidID, err)
	}
	return bid, nil
}

// RecordShippingBid stores a shipping bid
func (r *Repo) RecordShippingBid(ctx context.Context, bid model.ShippingBid) error {
	const query = `
		INSERT INTO shipping_bids (id, order_id, shipping_provider_id, bid_amount, estimated_delivery, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		bid.ID,
		bid.OrderID,
		bid.ShippingProviderID,
		bid.BidAmount.String(),
		bid.EstimatedDelivery,
		bid.Message,
		string(bid.Status),
		bid.CreatedAt,
		bid.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres: insert shipping bid: %w", err)
	}
	return nil
}

// ListShippingBids returns every shipping bid
func (r *Repo) ListShippingBids(ctx context.Context) ([]model.ShippingBid, error) {
	query := `SELECT ` + shippingBidColumns + ` FROM shipping_bids ORDER BY created_at, id`
	return r.queryShippingBids(ctx, query)
}

// ListShippingBidsForOrder returns all shipping bids attached to an order
func (r *Repo) ListShippingBidsForOrder(ctx context.Context, orderID string) ([]model.ShippingBid, error) {
	query := `SELECT ` + shippingBidColumns + ` FROM shipping_bids WHERE order_id = $1 ORDER BY created_at, id`
	return r.queryShippingBids(ctx, query, orderID)
}

// ListPendingShippingBids returns the shipping bids still pending for an order
func (r *Repo) ListPendingShippingBids(ctx context.Context, orderID string) ([]model.ShippingBid, error) {
	query := `SELECT ` + shippingBidColumns + ` FROM shipping_bids WHERE order_id = $1 AND status = 'pending' ORDER BY created_at, id`
	return r.queryShippingBids(ctx, query, orderID)
}

// UpdateShippingBidStatus transitions a shipping bid's status and bumps
// updated_at
func (r *Repo) UpdateShippingBidStatus(ctx context.Context, bidID string, status model.BidStatus) (model.ShippingBid, error) {
	query := `
		UPDATE shipping_bids
		SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + shippingBidColumns
	bid, err := scanShippingBid(r.pool.QueryRow(ctx, query, bidID, string(status)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ShippingBid{}, fmt.Errorf("postgres: update shipping bid %s: %w", bidID, marketerrors.ErrShippingBidNotFound)
		}
		return model.ShippingBid{}, fmt.Errorf("postgres: update shipping bid %s: %w", bidID, err)
	}
	return bid, nil
}

func (r *Repo) queryOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: query orders: %w", err)
	}
	defer rows.Close()

	orders := make([]model.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: scan order: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: iterate orders: %w", err)
	}
	return orders, nil
}

func (r *Repo) queryBids(ctx context.Context, query string, args ...any) ([]model.Bid, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: query bids: %w", err)
	}
	defer rows.Close()

	bids := make([]model.Bid, 0)
	for rows.Next() {
		bid, err := scanBid(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: scan bid: %w", err)
		}
		bids = append(bids, bid)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: iterate bids: %w", err)
	}
	return bids, nil
}

func (r *Repo) queryShippingBids(ctx context.Context, query string, args ...any) ([]model.ShippingBid, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: query shipping bids: %w", err)
	}
	defer rows.Close()

	bids := make([]model.ShippingBid, 0)
	for rows.Next() {
		bid, err := scanShippingBid(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: scan shipping bid: %w", err)
		}
		bids = append(bids, bid)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: iterate shipping bids: %w", err)
	}
	return bids, nil
}

func scanOrder(row pgx.Row) (model.Order, error) {
	var (
		order      model.Order
		totalPrice string
		status     string
		specs      []byte
	)
	if err := row.Scan(
		&order.ID,
		&order.ItemID,
		&order.BuyerID,
		&order.Quantity,
		&totalPrice,
		&status,
		&order.ShippingAddress,
		&order.Notes,
		&specs,
		&order.CreatedAt,
		&order.UpdatedAt,
	); err != nil {
		return model.Order{}, err
	}

	price, err := decimal.NewFromString(totalPrice)
	if err != nil {
		return model.Order{}, fmt.Errorf("parse total price %q: %w", totalPrice, err)
	}
	order.TotalPrice = price
	order.Status = model.OrderStatus(status)

	if len(specs) > 0 {
		specifications := make(map[string]any)
		if err := json.Unmarshal(specs, &specifications); err != nil {
			return model.Order{}, fmt.Errorf("parse specifications: %w", err)
		}
		order.Item = &model.Item{ItemID: order.ItemID, Specifications: specifications}
	}
	return order, nil
}

func scanBid(row pgx.Row) (model.Bid, error) {
	var (
		bid    model.Bid
		amount string
		status string
	)
	if err := row.Scan(
		&bid.ID,
		&bid.OrderID,
		&bid.SellerID,
		&amount,
		&bid.EstimatedDelivery,
		&bid.Message,
		&status,
		&bid.CreatedAt,
		&bid.UpdatedAt,
	); err != nil {
		return model.Bid{}, err
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return model.Bid{}, fmt.Errorf("parse bid amount %q: %w", amount, err)
	}
	bid.BidAmount = value
	bid.Status = model.BidStatus(status)
	return bid, nil
}

func scanShippingBid(row pgx.Row) (model.ShippingBid, error) {
	var (
		bid    model.ShippingBid
		amount string
		status string
	)
	if err := row.Scan(
		&bid.ID,
		&bid.OrderID,
		&bid.ShippingProviderID,
		&amount,
		&bid.EstimatedDelivery,
		&bid.Message,
		&status,
		&bid.CreatedAt,
		&bid.UpdatedAt,
	); err != nil {
		return model.ShippingBid{}, err
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return model.ShippingBid{}, fmt.Errorf("parse shipping bid amount %q: %w", amount, err)
	}
	bid.BidAmount = value
	bid.Status = model.BidStatus(status)
	return bid, nil
}
