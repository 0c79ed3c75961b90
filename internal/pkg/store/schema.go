package store

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
)

// The store owns schema creation: bootstrap DDL runs at startup and is
// idempotent. Columns the API treats as defaultable strings are NOT NULL
// DEFAULT '' so the two creation paths never trip constraints.
var bootstrapDDL = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id bigserial PRIMARY KEY,
		name text NOT NULL DEFAULT '',
		ward text NOT NULL DEFAULT '',
		county text NOT NULL DEFAULT '',
		type text NOT NULL DEFAULT '',
		budget numeric,
		start_date text,
		end_date text,
		managing_agency text NOT NULL DEFAULT '',
		lat double precision,
		lng double precision,
		status text NOT NULL DEFAULT 'planned',
		created_at timestamptz NOT NULL DEFAULT now(),
		funding_body text NOT NULL DEFAULT '',
		initiating_leader text NOT NULL DEFAULT '',
		description text NOT NULL DEFAULT '',
		media text NOT NULL DEFAULT '[]'
	)`,
	`CREATE TABLE IF NOT EXISTS reports (
		id bigserial PRIMARY KEY,
		project_id bigint REFERENCES projects (id),
		reporter_name text NOT NULL DEFAULT '',
		contact text,
		location text NOT NULL DEFAULT '',
		issue_type text NOT NULL DEFAULT '',
		description text NOT NULL DEFAULT '',
		evidence_url text,
		status text NOT NULL DEFAULT 'pending',
		leader_note text,
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS ward_needs (
		id bigserial PRIMARY KEY,
		ward text NOT NULL,
		county text NOT NULL,
		sector text NOT NULL,
		score double precision NOT NULL,
		data_source text,
		last_updated text
	)`,
}

func (s *store) Bootstrap(ctx context.Context) error {
	for _, ddl := range bootstrapDDL {
		if _, err := s.pool.Execx(ctx, squirrel.Expr(ddl)); err != nil {
			return fmt.Errorf("bootstrap: %w", err)
		}
	}
	return nil
}
