package store

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const (
	tableProjects  = "projects"
	tableReports   = "reports"
	tableWardNeeds = "ward_needs"
)

// wrapNotFound substitutes an entity-specific coded error for a no-rows
// result, leaving other errors untouched.
func wrapNotFound(err, notFound error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound
	}
	return err
}

// builder returns a squirrel statement builder with Postgres placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
