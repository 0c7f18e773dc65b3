package repository

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool は PostgreSQL 接続プールを生成する
func NewPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// LazyPool is the process-wide database handle. The pool is created on first
// use and reused afterwards; a failed first connection is retried on the next
// call rather than cached.
type LazyPool struct {
	connString string

	mu   sync.Mutex
	pool *pgxpool.Pool
	open func(ctx context.Context, connString string) (*pgxpool.Pool, error)
}

// NewLazyPool returns a LazyPool that connects to connString when first needed.
func NewLazyPool(connString string) *LazyPool {
	return &LazyPool{connString: connString, open: NewPool}
}

// Get returns the shared pool, connecting if necessary.
func (l *LazyPool) Get(ctx context.Context) (*pgxpool.Pool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pool != nil {
		return l.pool, nil
	}
	pool, err := l.open(ctx, l.connString)
	if err != nil {
		return nil, err
	}
	l.pool = pool
	return pool, nil
}

// Ping checks that the database is reachable.
func (l *LazyPool) Ping(ctx context.Context) error {
	pool, err := l.Get(ctx)
	if err != nil {
		return err
	}
	return pool.Ping(ctx)
}

// Close releases the pool if it was ever opened.
func (l *LazyPool) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pool != nil {
		l.pool.Close()
		l.pool = nil
	}
}
