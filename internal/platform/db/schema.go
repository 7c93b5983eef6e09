package db

import (
	"context"
	_ "embed"
	"fmt"
)

// Schema creates the companies, industries, industries_companies and
// invoices tables. Every statement is idempotent.
//
//go:embed schema.sql
var Schema string

// Migrate applies Schema. The script is sent without arguments so pgx uses the
// simple protocol, which accepts several statements in one round trip.
func Migrate(ctx context.Context, q DBTX) error {
	if _, err := q.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("platform/db: migrate: %w", err)
	}
	return nil
}
