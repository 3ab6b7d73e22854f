package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient claim-similarity lookups on canonical claim text
// and content search on raw posts.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_facts_canonical_claim_gin
		ON facts USING gin(to_tsvector('english', COALESCE(canonical_claim, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create facts canonical_claim GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_conclusions_canonical_claim_gin
		ON conclusions USING gin(to_tsvector('english', COALESCE(canonical_claim, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create conclusions canonical_claim GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_raw_posts_content_gin
		ON raw_posts USING gin(to_tsvector('english', content))`)
	if err != nil {
		return fmt.Errorf("failed to create raw_posts content GIN index: %w", err)
	}

	return nil
}
