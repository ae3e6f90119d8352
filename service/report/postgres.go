package report

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/beldeveloper/go-errors-context"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/mcaproject/bsc-analyzer/model"
)

// NewPostgres creates a new instance of the reports service.
func NewPostgres(conn *pgxpool.Pool, schema model.PgSchema) Postgres {
	return Postgres{conn: conn, schema: string(schema)}
}

// Postgres implements the reports service with the Postgres storage.
// Addresses are stored lowercased; callers may pass any case.
type Postgres struct {
	conn   *pgxpool.Pool
	schema string
}

// Add persists a completed report.
func (p Postgres) Add(ctx context.Context, r model.Report) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return errors.WrapContext(err, errors.Context{
			Path:   "service.report.postgres.Add: marshal",
			Params: errors.Params{"report": r.ID.String()},
		})
	}
	q := fmt.Sprintf(
		`INSERT INTO "%s"."reports" ("id", "address", "score", "band", "payload", "created_at")
		VALUES ($1, $2, $3, $4, $5, $6)`,
		p.schema,
	)
	_, err = p.conn.Exec(ctx, q, r.ID, strings.ToLower(r.Token.Address), r.Score, r.Band, payload, r.CreatedAt)
	return errors.WrapContext(err, errors.Context{
		Path:   "service.report.postgres.Add: exec",
		Params: errors.Params{"report": r.ID.String()},
	})
}

// FindRecent returns the latest reports across all tokens.
func (p Postgres) FindRecent(ctx context.Context, limit int) ([]model.Report, error) {
	q := fmt.Sprintf(
		`SELECT "payload" FROM "%s"."reports" ORDER BY "created_at" DESC LIMIT $1`,
		p.schema,
	)
	rows, err := p.conn.Query(ctx, q, limit)
	if err != nil {
		return nil, errors.WrapContext(err, errors.Context{Path: "service.report.postgres.FindRecent: query"})
	}
	defer rows.Close()
	res := make([]model.Report, 0)
	for rows.Next() {
		var payload []byte
		err = rows.Scan(&payload)
		if err != nil {
			return nil, errors.WrapContext(err, errors.Context{Path: "service.report.postgres.FindRecent: scan"})
		}
		var r model.Report
		err = json.Unmarshal(payload, &r)
		if err != nil {
			return nil, errors.WrapContext(err, errors.Context{Path: "service.report.postgres.FindRecent: unmarshal"})
		}
		res = append(res, r)
	}
	return res, nil
}

// FindLatest returns the newest report for the address.
func (p Postgres) FindLatest(ctx context.Context, address string) (model.Report, error) {
	q := fmt.Sprintf(
		`SELECT "payload" FROM "%s"."reports" WHERE "address" = $1 ORDER BY "created_at" DESC LIMIT 1`,
		p.schema,
	)
	return p.findOne(ctx, q, "FindLatest", strings.ToLower(address))
}

// FindFresh returns the newest report for the address created after notBefore.
func (p Postgres) FindFresh(ctx context.Context, address string, notBefore time.Time) (model.Report, error) {
	q := fmt.Sprintf(
		`SELECT "payload" FROM "%s"."reports"
		WHERE "address" = $1 AND "created_at" >= $2 ORDER BY "created_at" DESC LIMIT 1`,
		p.schema,
	)
	return p.findOne(ctx, q, "FindFresh", strings.ToLower(address), notBefore)
}

// DeleteOlderThan removes the reports created before the cutoff.
func (p Postgres) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	q := fmt.Sprintf(`DELETE FROM "%s"."reports" WHERE "created_at" < $1`, p.schema)
	tag, err := p.conn.Exec(ctx, q, cutoff)
	if err != nil {
		return 0, errors.WrapContext(err, errors.Context{Path: "service.report.postgres.DeleteOlderThan: exec"})
	}
	return tag.RowsAffected(), nil
}

func (p Postgres) findOne(ctx context.Context, q, op string, args ...interface{}) (model.Report, error) {
	var r model.Report
	var payload []byte
	err := p.conn.QueryRow(ctx, q, args...).Scan(&payload)
	if err == pgx.ErrNoRows {
		return r, model.ErrNotFound
	}
	if err != nil {
		return r, errors.WrapContext(err, errors.Context{Path: "service.report.postgres." + op + ": scan"})
	}
	err = json.Unmarshal(payload, &r)
	return r, errors.WrapContext(err, errors.Context{Path: "service.report.postgres." + op + ": unmarshal"})
}
