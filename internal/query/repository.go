package query

import (
	"context"
	"database/sql"

	"sqlgateway/pkg/dbconn"
)

type Repository struct {
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) Run(ctx context.Context, db *sql.DB, query string) (*dbconn.Resultset, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return dbconn.ScanRows(rows)
}
