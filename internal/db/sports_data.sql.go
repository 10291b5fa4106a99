package db

import (
	"context"
	"time"
)

const getSportsDataByName = `-- name: GetSportsDataByName :one
SELECT id, name, data, stored_at, created_at, updated_at
FROM sports_data
WHERE name = ?
LIMIT 1
`

func (q *Queries) GetSportsDataByName(ctx context.Context, name string) (SportsDatum, error) {
	row := q.db.QueryRowContext(ctx, getSportsDataByName, name)
	var i SportsDatum
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Data,
		&i.StoredAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listSportsData = `-- name: ListSportsData :many
SELECT id, name, data, stored_at, created_at, updated_at
FROM sports_data
ORDER BY name
`

func (q *Queries) ListSportsData(ctx context.Context) ([]SportsDatum, error) {
	rows, err := q.db.QueryContext(ctx, listSportsData)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SportsDatum
	for rows.Next() {
		var i SportsDatum
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Data,
			&i.StoredAt,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const upsertSportsData = `-- name: UpsertSportsData :exec
INSERT INTO sports_data (id, name, data, stored_at, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (name) DO UPDATE SET
    data = excluded.data,
    stored_at = excluded.stored_at,
    updated_at = excluded.updated_at
`

type UpsertSportsDataParams struct {
	ID        string
	Name      string
	Data      []byte
	StoredAt  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (q *Queries) UpsertSportsData(ctx context.Context, arg UpsertSportsDataParams) error {
	_, err := q.db.ExecContext(ctx, upsertSportsData,
		arg.ID,
		arg.Name,
		arg.Data,
		arg.StoredAt,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}
