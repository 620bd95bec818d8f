package booking

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ DB *pgxpool.Pool }

func (r *Repo) CreateReservation(ctx context.Context, res Reservation) (Reservation, error) {
	err := r.DB.QueryRow(ctx, `
		INSERT INTO reservations(name, email, phone, date, time, guests)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, email, phone, date, time, guests`,
		res.Name, res.Email, res.Phone, res.Date, res.Time, res.Guests,
	).Scan(&res.ID, &res.Name, &res.Email, &res.Phone, &res.Date, &res.Time, &res.Guests)
	if err != nil {
		return Reservation{}, err
	}
	return res, nil
}

func (r *Repo) CreateContactMessage(ctx context.Context, m ContactMessage) (ContactMessage, error) {
	err := r.DB.QueryRow(ctx, `
		INSERT INTO contact_messages(name, email, message)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, message`,
		m.Name, m.Email, m.Message,
	).Scan(&m.ID, &m.Name, &m.Email, &m.Message)
	if err != nil {
		return ContactMessage{}, err
	}
	return m, nil
}
