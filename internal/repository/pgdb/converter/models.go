package converter

import "time"

// PrintJobModel представляет запись таблицы print_jobs в PostgreSQL.
type PrintJobModel struct {
	ID        string    `db:"id"`
	OrderID   *string   `db:"order_id"`
	OrderType *string   `db:"order_type"`
	Status    string    `db:"status"`
	Commands  int       `db:"commands"`
	Total     string    `db:"total"`
	Error     *string   `db:"error"`
	CreatedAt time.Time `db:"created_at"`
}
