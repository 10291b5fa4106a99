package db

import (
	"time"
)

type SportsDatum struct {
	ID        string
	Name      string
	Data      []byte
	StoredAt  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
