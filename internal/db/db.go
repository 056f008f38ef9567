package db

// DB is a generic database port so repositories don't depend on how the
// connection was opened.
type DB interface {
	Conn() any
	Close() error
}
