package watch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/beldeveloper/go-errors-context"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/mcaproject/bsc-analyzer/model"
)

// NewPostgres creates a new instance of the watchlist service.
func NewPostgres(conn *pgxpool.Pool, schema model.PgSchema) Postgres {
	return Postgres{conn: conn, schema: string(schema)}
}

// Postgres implements the watchlist service with the Postgres storage.
// Addresses are stored lowercased; callers may pass any case.
type Postgres struct {
	conn   *pgxpool.Pool
	schema string
}

const columns = `"id", "address", "chat_id", "last_band", "last_score", "checked_at", "created_at"`

// An address has one entry; re-watching with a chat rebinds it, re-watching
// without one keeps the existing chat subscription intact.
const addQuery = `INSERT INTO "%s"."watchlist" ("address", "chat_id", "last_band", "last_score", "checked_at", "created_at")
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT ("address") DO UPDATE SET "chat_id" = COALESCE(EXCLUDED."chat_id", "watchlist"."chat_id")
	RETURNING ` + columns

// Add inserts a watch entry; watching an address twice updates its chat.
func (p Postgres) Add(ctx context.Context, w model.WatchedToken) (model.WatchedToken, error) {
	q := fmt.Sprintf(addQuery, p.schema)
	err := p.conn.QueryRow(ctx, q, strings.ToLower(w.Address), w.ChatID, w.LastBand, w.LastScore, w.CheckedAt, w.CreatedAt).
		Scan(&w.ID, &w.Address, &w.ChatID, &w.LastBand, &w.LastScore, &w.CheckedAt, &w.CreatedAt)
	return w, errors.WrapContext(err, errors.Context{
		Path:   "service.watch.postgres.Add: scan",
		Params: errors.Params{"address": w.Address},
	})
}

// FindAll returns all watch entries.
func (p Postgres) FindAll(ctx context.Context) ([]model.WatchedToken, error) {
	q := fmt.Sprintf(
		`SELECT `+columns+` FROM "%s"."watchlist" ORDER BY "created_at"`,
		p.schema,
	)
	rows, err := p.conn.Query(ctx, q)
	if err != nil {
		return nil, errors.WrapContext(err, errors.Context{Path: "service.watch.postgres.FindAll: query"})
	}
	defer rows.Close()
	res := make([]model.WatchedToken, 0)
	var w model.WatchedToken
	for rows.Next() {
		w.ChatID = nil
		err = rows.Scan(&w.ID, &w.Address, &w.ChatID, &w.LastBand, &w.LastScore, &w.CheckedAt, &w.CreatedAt)
		if err != nil {
			return nil, errors.WrapContext(err, errors.Context{Path: "service.watch.postgres.FindAll: scan"})
		}
		res = append(res, w)
	}
	return res, nil
}

// FindOutdated returns the entry that has not been rechecked for the longest time,
// provided it is due.
func (p Postgres) FindOutdated(ctx context.Context, due time.Time) (model.WatchedToken, error) {
	var w model.WatchedToken
	q := fmt.Sprintf(
		`SELECT `+columns+` FROM "%s"."watchlist" WHERE "checked_at" < $1 ORDER BY "checked_at" ASC LIMIT 1`,
		p.schema,
	)
	err := p.conn.QueryRow(ctx, q, due).
		Scan(&w.ID, &w.Address, &w.ChatID, &w.LastBand, &w.LastScore, &w.CheckedAt, &w.CreatedAt)
	if err == pgx.ErrNoRows {
		return w, model.ErrNotFound
	}
	return w, errors.WrapContext(err, errors.Context{Path: "service.watch.postgres.FindOutdated: scan"})
}

// Update saves the rescan outcome of the entry.
func (p Postgres) Update(ctx context.Context, w model.WatchedToken) (model.WatchedToken, error) {
	q := fmt.Sprintf(
		`UPDATE "%s"."watchlist" SET "last_band" = $2, "last_score" = $3, "checked_at" = $4 WHERE "id" = $1`,
		p.schema,
	)
	tag, err := p.conn.Exec(ctx, q, w.ID, w.LastBand, w.LastScore, w.CheckedAt)
	if err != nil {
		return w, errors.WrapContext(err, errors.Context{
			Path:   "service.watch.postgres.Update: exec",
			Params: errors.Params{"watch": w.ID},
		})
	}
	if tag.RowsAffected() == 0 {
		return w, model.ErrNotFound
	}
	return w, nil
}

// Delete removes the entry by its ID.
func (p Postgres) Delete(ctx context.Context, id uint64) error {
	q := fmt.Sprintf(`DELETE FROM "%s"."watchlist" WHERE "id" = $1`, p.schema)
	tag, err := p.conn.Exec(ctx, q, id)
	if err != nil {
		return errors.WrapContext(err, errors.Context{
			Path:   "service.watch.postgres.Delete: exec",
			Params: errors.Params{"watch": id},
		})
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// DeleteByAddress removes the entry by its address, scoped to the chat that watches it.
func (p Postgres) DeleteByAddress(ctx context.Context, address string, chatID int64) error {
	q := fmt.Sprintf(`DELETE FROM "%s"."watchlist" WHERE "address" = $1 AND "chat_id" = $2`, p.schema)
	tag, err := p.conn.Exec(ctx, q, strings.ToLower(address), chatID)
	if err != nil {
		return errors.WrapContext(err, errors.Context{
			Path:   "service.watch.postgres.DeleteByAddress: exec",
			Params: errors.Params{"address": address},
		})
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
