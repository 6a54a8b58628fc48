package report_test

import (
	"context"
	"database/sql/driver"
	"errors"
	"strings"
	"sync"
)

// execLog records every statement the fake driver sees, in order.
type execLog struct {
	mu      sync.Mutex
	entries []execEntry
	failArg string // Exec fails when any argument equals this value
}

type execEntry struct {
	stmt string // first three words of the query, or COMMIT / ROLLBACK
	args []driver.Value
}

func (l *execLog) add(stmt string, args []driver.Value) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, execEntry{stmt: stmt, args: args})
	for _, a := range args {
		if s, ok := a.(string); ok && l.failArg != "" && s == l.failArg {
			return errors.New("fake: insert rejected")
		}
	}

	return nil
}

func (l *execLog) statements() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.stmt
	}

	return out
}

func head(query string) string {
	f := strings.Fields(query)
	if len(f) > 3 {
		f = f[:3]
	}

	return strings.Join(f, " ")
}

// fakeConnector plugs into sql.OpenDB without registering a global driver.
type fakeConnector struct{ log *execLog }

func (c fakeConnector) Connect(context.Context) (driver.Conn, error) { return &fakeConn{log: c.log}, nil }
func (c fakeConnector) Driver() driver.Driver                        { return fakeDriver{c} }

type fakeDriver struct{ c fakeConnector }

func (d fakeDriver) Open(string) (driver.Conn, error) { return d.c.Connect(context.Background()) }

type fakeConn struct{ log *execLog }

func (c *fakeConn) Prepare(query string) (driver.Stmt, error) {
	return &fakeStmt{log: c.log, query: query}, nil
}
func (c *fakeConn) Close() error              { return nil }
func (c *fakeConn) Begin() (driver.Tx, error) { return fakeTx{log: c.log}, nil }

// ExecContext implements driver.ExecerContext for unprepared statements.
func (c *fakeConn) ExecContext(_ context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	vals := make([]driver.Value, len(args))
	for i, a := range args {
		vals[i] = a.Value
	}
	if err := c.log.add(head(query), vals); err != nil {
		return nil, err
	}

	return driver.RowsAffected(1), nil
}

type fakeStmt struct {
	log   *execLog
	query string
}

func (s *fakeStmt) Close() error  { return nil }
func (s *fakeStmt) NumInput() int { return -1 }
func (s *fakeStmt) Exec(args []driver.Value) (driver.Result, error) {
	if err := s.log.add(head(s.query), args); err != nil {
		return nil, err
	}

	return driver.RowsAffected(1), nil
}
func (s *fakeStmt) Query([]driver.Value) (driver.Rows, error) {
	return nil, errors.New("fake: query not supported")
}

type fakeTx struct{ log *execLog }

func (t fakeTx) Commit() error   { return t.log.add("COMMIT", nil) }
func (t fakeTx) Rollback() error { return t.log.add("ROLLBACK", nil) }
