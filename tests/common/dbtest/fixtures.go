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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO user_profiles (id, email, role) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING",
		userID, email, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM user_profiles WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

type VoucherFixture struct {
	Code           string
	DiscountKind   string
	DiscountValue  decimal.Decimal
	MinOrderAmount decimal.Decimal
	MaxUses        *int32
	IssuedTo       *uuid.UUID
}

func CreateTestVoucher(t *testing.T, db DBLike, v VoucherFixture) uuid.UUID {
	t.Helper()

	if v.DiscountKind == "" {
		v.DiscountKind = "fixed"
	}
	if v.DiscountValue.IsZero() {
		v.DiscountValue = decimal.NewFromInt(1000)
	}

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO vouchers (id, code, discount_kind, discount_value, min_order_amount, max_uses, issued_to)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, v.Code, v.DiscountKind, v.DiscountValue, v.MinOrderAmount, v.MaxUses, v.IssuedTo)
	require.NoError(t, err)
	return id
}

func CreateTestReferral(t *testing.T, db DBLike, referrerID, referredID uuid.UUID, discountCode string) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	var referrerEmail, referredEmail string
	require.NoError(t, db.QueryRow(ctx, "SELECT email FROM user_profiles WHERE id = $1", referrerID).Scan(&referrerEmail))
	require.NoError(t, db.QueryRow(ctx, "SELECT email FROM user_profiles WHERE id = $1", referredID).Scan(&referredEmail))

	id := uuid.New()
	_, err := db.Exec(ctx, `
		INSERT INTO referrals (id, referrer_id, referrer_email, referred_id, referred_email, discount_code)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		id, referrerID, referrerEmail, referredID, referredEmail, discountCode)
	require.NoError(t, err)
	return id
}

// inserts reference data needed by every test; the ledger schema has none yet
func SeedReferenceData(_ *pgxpool.Pool) error {
	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
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
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
