//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// inserts a sale row and returns its generated id.
func CreateTestSale(t *testing.T, db DBLike, name string, remaining int32, startAt, endAt time.Time) int64 {
	t.Helper()

	var saleID int64
	ctx := context.Background()
	err := db.QueryRow(ctx,
		"INSERT INTO sales (name, remaining, start_at, end_at) VALUES ($1, $2, $3, $4) RETURNING id",
		name, remaining, startAt, endAt).Scan(&saleID)
	require.NoError(t, err)

	return saleID
}

// a sale whose window is currently open relative to now.
func CreateOpenSale(t *testing.T, db DBLike, name string, remaining int32) int64 {
	t.Helper()

	now := time.Now().UTC()
	return CreateTestSale(t, db, name, remaining, now.Add(-time.Hour), now.Add(time.Hour))
}

func CountWinRecords(t *testing.T, db DBLike, saleID int64) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM win_records WHERE sale_id = $1", saleID).Scan(&count)
	require.NoError(t, err)

	return count
}

func RemainingStock(t *testing.T, db DBLike, saleID int64) int32 {
	t.Helper()

	var remaining int32
	err := db.QueryRow(context.Background(),
		"SELECT remaining FROM sales WHERE id = $1", saleID).Scan(&remaining)
	require.NoError(t, err)

	return remaining
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables so each test starts from an empty dataset
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
