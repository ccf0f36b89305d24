package accounting

import (
	"context"
	"time"

	"reddog/internal/domain/order"
	"reddog/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Repository persists the accounting ledger of orders and their items.
// Orders are keyed by order id, so a redelivered intake event upserts into
// the same row instead of duplicating it.
type Repository interface {
	UpsertOrder(ctx context.Context, summary order.OrderSummary) error
	MarkCompleted(ctx context.Context, orderID uuid.UUID, completedAt time.Time) error
	OrdersForStore(ctx context.Context, storeID string) ([]order.OrderSummary, error)
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

// EnsureSchema applies the accounting DDL. The sample owns its schema the
// same way it owns its demo catalog; production would run real migrations.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS orders (
			order_id             UUID PRIMARY KEY,
			store_id             TEXT NOT NULL,
			first_name           TEXT NOT NULL,
			last_name            TEXT NOT NULL,
			loyalty_id           TEXT NOT NULL,
			order_date           TIMESTAMPTZ NOT NULL,
			order_completed_date TIMESTAMPTZ,
			order_total          NUMERIC(10, 2) NOT NULL
		);
		CREATE TABLE IF NOT EXISTS order_items (
			order_id     UUID NOT NULL REFERENCES orders (order_id) ON DELETE CASCADE,
			product_id   INT NOT NULL,
			product_name TEXT NOT NULL,
			quantity     INT NOT NULL,
			unit_cost    NUMERIC(10, 2) NOT NULL,
			unit_price   NUMERIC(10, 2) NOT NULL,
			PRIMARY KEY (order_id, product_id)
		);
		CREATE INDEX IF NOT EXISTS idx_orders_store ON orders (store_id, order_date);
	`)
	if err != nil {
		return errs.Wrap(err, "failed to ensure accounting schema")
	}
	return nil
}

func (r *repository) UpsertOrder(ctx context.Context, summary order.OrderSummary) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (order_id, store_id, first_name, last_name, loyalty_id, order_date, order_completed_date, order_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (order_id) DO NOTHING`,
		summary.OrderID, summary.StoreID, summary.FirstName, summary.LastName,
		summary.LoyaltyID, summary.OrderDate, summary.OrderCompletedDate, summary.OrderTotal.String(),
	)
	if err != nil {
		return errs.Wrap(err, "failed to upsert order")
	}

	for _, item := range summary.OrderItems {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_cost, unit_price)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (order_id, product_id) DO NOTHING`,
			summary.OrderID, item.ProductID, item.ProductName, item.Quantity,
			item.UnitCost.String(), item.UnitPrice.String(),
		)
		if err != nil {
			return errs.Wrap(err, "failed to upsert order item")
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Wrap(err, "failed to commit order upsert")
	}
	return nil
}

func (r *repository) MarkCompleted(ctx context.Context, orderID uuid.UUID, completedAt time.Time) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE orders SET order_completed_date = $2
		WHERE order_id = $1 AND order_completed_date IS NULL`,
		orderID, completedAt,
	)
	if err != nil {
		return errs.Wrap(err, "failed to mark order completed")
	}
	return nil
}

func (r *repository) OrdersForStore(ctx context.Context, storeID string) ([]order.OrderSummary, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT order_id, store_id, first_name, last_name, loyalty_id, order_date, order_completed_date, order_total::text
		FROM orders
		WHERE store_id = $1
		ORDER BY order_date`,
		storeID,
	)
	if err != nil {
		return nil, errs.Wrap(err, "failed to query orders for store "+storeID)
	}
	defer rows.Close()

	var orders []order.OrderSummary
	for rows.Next() {
		var (
			summary  order.OrderSummary
			totalTxt string
		)
		err := rows.Scan(&summary.OrderID, &summary.StoreID, &summary.FirstName,
			&summary.LastName, &summary.LoyaltyID, &summary.OrderDate,
			&summary.OrderCompletedDate, &totalTxt)
		if err != nil {
			return nil, errs.Wrap(err, "failed to scan order row")
		}

		summary.OrderTotal, err = decimal.NewFromString(totalTxt)
		if err != nil {
			return nil, errs.Wrap(err, "failed to parse order total")
		}
		orders = append(orders, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap(err, "failed to read order rows")
	}

	for i := range orders {
		items, err := r.itemsFor(ctx, orders[i].OrderID)
		if err != nil {
			return nil, err
		}
		orders[i].OrderItems = items
	}

	return orders, nil
}

func (r *repository) itemsFor(ctx context.Context, orderID uuid.UUID) ([]order.OrderItemSummary, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT product_id, product_name, quantity, unit_cost::text, unit_price::text
		FROM order_items
		WHERE order_id = $1
		ORDER BY product_id`,
		orderID,
	)
	if err != nil {
		return nil, errs.Wrap(err, "failed to query order items")
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (order.OrderItemSummary, error) {
		var (
			item     order.OrderItemSummary
			costTxt  string
			priceTxt string
		)
		if err := row.Scan(&item.ProductID, &item.ProductName, &item.Quantity, &costTxt, &priceTxt); err != nil {
			return item, err
		}

		var err error
		if item.UnitCost, err = decimal.NewFromString(costTxt); err != nil {
			return item, err
		}
		item.UnitPrice, err = decimal.NewFromString(priceTxt)
		return item, err
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to scan order items")
	}
	return items, nil
}
