package orders

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ DB *pgxpool.Pool }

// Create persists the order header and its line items in one transaction.
// Either the header and every line land together or nothing is visible
// afterwards; the generated order id comes back from the header insert.
func (r *Repo) Create(ctx context.Context, c Customer, lines []Line) (orderID int64, err error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx, `
		INSERT INTO orders(customer_name, customer_email, customer_phone, customer_address)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		c.Name, c.Email, c.Phone, c.Address,
	).Scan(&orderID)
	if err != nil {
		return 0, err
	}

	for _, l := range lines {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items(order_id, item_id, quantity, price)
			VALUES ($1, $2, $3, $4)`,
			orderID, l.Item.ID, l.Quantity, l.Item.Price,
		)
		if err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return orderID, nil
}
