package store

import (
	"context"
	"time"

	"storefront/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/* ---------- shared fakes ---------- */

// fakeRow implements pgx.Row with a canned Scan.
type fakeRow struct {
	scanErr error
	scanFn  func(dest ...any)
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	if r.scanFn != nil {
		r.scanFn(dest...)
	}
	return nil
}

// fakeRows implements pgx.Rows over a list of scan functions.
type fakeRows struct {
	scans   []func(dest ...any)
	idx     int
	scanErr error
	err     error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return r.idx < len(r.scans) }
func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	r.scans[r.idx](dest...)
	r.idx++
	return nil
}
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }

// fakeTx implements pgx.Tx for the order placement transaction.
type fakeTx struct {
	execFn     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	queryRowFn func(ctx context.Context, sql string, args ...any) pgx.Row
	commitErr  error
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *fakeTx) Commit(ctx context.Context) error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.committed = true
	return nil
}
func (t *fakeTx) Rollback(ctx context.Context) error { t.rolledBack = true; return nil }
func (t *fakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *fakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *fakeTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *fakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if t.execFn != nil {
		return t.execFn(ctx, sql, args...)
	}
	panic("unexpected tx Exec")
}
func (t *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	panic("unexpected tx Query")
}
func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if t.queryRowFn != nil {
		return t.queryRowFn(ctx, sql, args...)
	}
	panic("unexpected tx QueryRow")
}
func (t *fakeTx) Conn() *pgx.Conn { return nil }

/* ---------- scan helpers ---------- */

func productScan(p model.Product) func(dest ...any) {
	return func(dest ...any) {
		*dest[0].(*int) = p.ID
		*dest[1].(*string) = p.Name
		*dest[2].(*string) = p.Description
		*dest[3].(*float64) = p.Price
		*dest[4].(**string) = p.Image
		*dest[5].(*string) = p.Category
		*dest[6].(*bool) = p.IsActive
		*dest[7].(*int) = p.StockQuantity
		*dest[8].(*time.Time) = p.CreatedAt
	}
}

func orderScan(o model.Order) func(dest ...any) {
	return func(dest ...any) {
		*dest[0].(*int) = o.ID
		*dest[1].(*string) = o.CustomerName
		*dest[2].(*string) = o.CustomerPhone
		*dest[3].(**string) = o.CustomerEmail
		*dest[4].(**int) = o.UserID
		*dest[5].(*int) = o.ProductID
		*dest[6].(*int) = o.Quantity
		*dest[7].(*string) = o.Status
		*dest[8].(**string) = o.Notes
		*dest[9].(*time.Time) = o.CreatedAt
		*dest[10].(*string) = o.ProductName
		*dest[11].(*float64) = o.ProductPrice
	}
}

func userScan(u model.User) func(dest ...any) {
	return func(dest ...any) {
		*dest[0].(*int) = u.ID
		*dest[1].(*string) = u.Name
		*dest[2].(*string) = u.Email
		*dest[3].(*string) = u.PasswordHash
		*dest[4].(*bool) = u.IsAdmin
		*dest[5].(*time.Time) = u.CreatedAt
	}
}

func articleScan(a model.Article) func(dest ...any) {
	return func(dest ...any) {
		*dest[0].(*int) = a.ID
		*dest[1].(*string) = a.Title
		*dest[2].(*string) = a.Content
		*dest[3].(**string) = a.Image
		*dest[4].(*bool) = a.IsPublished
		*dest[5].(*time.Time) = a.CreatedAt
	}
}

func intScan(n int) func(dest ...any) {
	return func(dest ...any) { *dest[0].(*int) = n }
}
