package repo

import "context"

// ConnHandler is called with a connection which is acquired from a
// Pool. The connection is released when ConnHandler returns.
type ConnHandler func(context.Context, Conn) error

// Pool represents a database connection pool, as used by the SQL based
// catalog data sources.
type Pool interface {
	Conn(ctx context.Context, handler ConnHandler) error
	Close() error
}
