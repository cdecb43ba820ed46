// README: Postgres-backed usage store tests; skipped unless TRANSFER_TEST_DSN is set.
package coupon

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func TestStore_RecordAndCount(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	code := "IT" + strings.ToUpper(uuid.NewString()[:8])
	for i := 0; i < 3; i++ {
		err := store.Record(ctx, Usage{
			ID:        uuid.NewString(),
			Code:      code,
			UsedAt:    time.Now().UTC(),
			IP:        "203.0.113.7",
			UserAgent: "store-test",
		})
		if err != nil {
			t.Fatalf("record usage %d: %v", i, err)
		}
	}

	n, err := store.Count(ctx, code)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Fatalf("count = %d, want 3", n)
	}
}

func TestStore_ConcurrentRecordsAreNotLost(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)
	code := "RACE" + strings.ToUpper(uuid.NewString()[:8])

	const writers = 20
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- store.Record(ctx, Usage{ID: uuid.NewString(), Code: code, UsedAt: time.Now().UTC()})
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	n, err := store.Count(ctx, code)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != writers {
		t.Fatalf("count = %d, want %d", n, writers)
	}
}

func TestService_MaxUsesAgainstPostgres(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)
	svc := NewService(stubLimiter{allow: true}, store, nil)

	if _, err := store.db.Exec(ctx, "DELETE FROM coupon_usages WHERE code = $1", "BLINDADO20"); err != nil {
		t.Fatalf("reset usages: %v", err)
	}
	res, err := svc.Validate(ctx, "203.0.113.9", "blindado20")
	if err != nil || !res.Valid {
		t.Fatalf("fresh coupon: valid=%v err=%v", res.Valid, err)
	}
}

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := os.Getenv("TRANSFER_TEST_DSN")
	if dsn == "" {
		t.Skip("TRANSFER_TEST_DSN not set; skipping DB-backed coupon tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := applyMigration(ctx, db); err != nil {
		t.Fatalf("apply migration: %v", err)
	}
	return NewStore(db)
}

func applyMigration(ctx context.Context, db *pgxpool.Pool) error {
	root, err := repoRoot()
	if err != nil {
		return err
	}
	content, err := os.ReadFile(filepath.Join(root, "migrations", "0001_coupon_usages.sql"))
	if err != nil {
		return err
	}
	for _, stmt := range splitSQL(stripSQLComments(string(content))) {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func repoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for i := 0; i < 6; i++ {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

func stripSQLComments(input string) string {
	var b strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		b.WriteString(scanner.Text())
		b.WriteString("\n")
	}
	return b.String()
}

func splitSQL(input string) []string {
	parts := strings.Split(input, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if stmt := strings.TrimSpace(p); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}
