package repo

import "context"

// TxHandler is called with a transaction which is committed if it
// returns nil and is rolled back otherwise.
type TxHandler func(context.Context, Tx) error

// Conn represents a database connection which may run statements
// directly or begin a transaction.
type Conn interface {
	Queryer
	Tx(ctx context.Context, handler TxHandler) error

	// IsConn method prevents a non-Conn object (such as a Tx) to
	// mistakenly implement the Conn interface.
	IsConn()
}
