package database

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX là query surface chung của *pgxpool.Pool và pgx.Tx.
// Repository phụ thuộc vào DBTX nên cùng một code chạy được cả trong và ngoài transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// ErrReadOnlyTransaction trả về khi unit of work read-write lồng bên trong read-only transaction.
var ErrReadOnlyTransaction = errors.New("read-write transaction requested inside a read-only transaction")

// TxManager chạy unit of work trong một transaction duy nhất (all-or-nothing).
// Transaction được truyền qua context của fn.
//
// Nested call: nếu ctx đã có transaction thì join vào, giữ isolation level của transaction ngoài.
//   - Read-only join vào read-write: OK
//   - Read-write join vào read-only: ErrReadOnlyTransaction
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	WithinReadOnlyTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type (
	txKey    struct{}
	scopeKey struct{}
)

// scope theo dõi unit of work ngoài cùng và các hook chờ commit.
type scope struct {
	readOnly bool

	mu    sync.Mutex
	hooks []func(ctx context.Context)
}

// BeginScope gắn unit of work vào ctx.
// Hàm commit trả về sẽ chạy các hook đăng ký qua AfterCommit.
// Chỉ gọi commit SAU KHI transaction thật đã commit thành công.
func BeginScope(ctx context.Context, readOnly bool) (context.Context, func()) {
	s := &scope{readOnly: readOnly}
	commit := func() {
		s.mu.Lock()
		hooks := s.hooks
		s.hooks = nil
		s.mu.Unlock()

		hookCtx := context.WithoutCancel(ctx)
		for _, fn := range hooks {
			fn(hookCtx)
		}
	}
	return context.WithValue(ctx, scopeKey{}, s), commit
}

func scopeFrom(ctx context.Context) (*scope, bool) {
	s, ok := ctx.Value(scopeKey{}).(*scope)
	return s, ok
}

// AfterCommit đăng ký fn chạy sau khi unit of work trong ctx commit.
// Rollback → fn không bao giờ chạy. Ngoài transaction → fn chạy ngay.
func AfterCommit(ctx context.Context, fn func(ctx context.Context)) {
	s, ok := scopeFrom(ctx)
	if !ok {
		fn(ctx)
		return
	}
	s.mu.Lock()
	s.hooks = append(s.hooks, fn)
	s.mu.Unlock()
}

// Join quyết định nested unit of work xử lý thế nào.
// joined = true khi ctx đã có unit of work, lúc đó chạy fn trực tiếp trên ctx.
func Join(ctx context.Context, readOnly bool) (joined bool, err error) {
	s, ok := scopeFrom(ctx)
	if !ok {
		return false, nil
	}
	if s.readOnly && !readOnly {
		return true, ErrReadOnlyTransaction
	}
	return true, nil
}

// TxFromContext lấy transaction gắn trong ctx (nếu có).
func TxFromContext(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(pgx.Tx)
	return tx, ok
}

// InTransaction kiểm tra ctx có đang trong transaction không.
func InTransaction(ctx context.Context) bool {
	if _, ok := scopeFrom(ctx); ok {
		return true
	}
	_, ok := TxFromContext(ctx)
	return ok
}

// Conn ưu tiên transaction trong ctx, không có thì dùng pool.
func Conn(ctx context.Context, pool DBTX) DBTX {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return pool
}

func withTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

type postgresTxManager struct {
	pool *pgxpool.Pool
}

func NewTxManager(pool *pgxpool.Pool) TxManager {
	return &postgresTxManager{pool: pool}
}

func (m *postgresTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// WithinReadOnlyTransaction: snapshot nhất quán cho nhiều query liên tiếp.
func (m *postgresTxManager) WithinReadOnlyTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
}

func (m *postgresTxManager) run(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context) error) error {
	joined, err := Join(ctx, opts.AccessMode == pgx.ReadOnly)
	if err != nil {
		return err
	}
	if joined {
		return fn(ctx)
	}

	scoped, commit := BeginScope(ctx, opts.AccessMode == pgx.ReadOnly)
	err = WithTransaction(ctx, m.pool, opts, func(tx pgx.Tx) error {
		return fn(withTx(scoped, tx))
	})
	if err != nil {
		return err
	}

	commit()
	return nil
}

// TxFunc là function type được execute trong transaction
type TxFunc func(pgx.Tx) error

// WithTransaction wraps một function trong transaction
// Auto rollback nếu có error hoặc panic, auto commit nếu success
func WithTransaction(ctx context.Context, pool *pgxpool.Pool, opts pgx.TxOptions, fn TxFunc) (err error) {
	tx, err := pool.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		} else if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				err = errors.Join(err, fmt.Errorf("failed to rollback transaction: %w", rbErr))
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// RunInTx chạy fn qua tm và trả về kết quả.
func RunInTx[T any](ctx context.Context, tm TxManager, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := tm.WithinTransaction(ctx, func(ctx context.Context) error {
		var fnErr error
		result, fnErr = fn(ctx)
		return fnErr
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

// RunInReadOnlyTx giống RunInTx nhưng trên read-only snapshot.
func RunInReadOnlyTx[T any](ctx context.Context, tm TxManager, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := tm.WithinReadOnlyTransaction(ctx, func(ctx context.Context) error {
		var fnErr error
		result, fnErr = fn(ctx)
		return fnErr
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
