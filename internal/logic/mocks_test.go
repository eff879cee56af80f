package logic

import (
	"context"
	"reflect"
	"strings"
	"sync"
	"time"

	chdriver "github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
)

// assign copies val into the pointer dest, converting between compatible
// types so typed strings and ints scan like the real drivers.
func assign(dest any, val any) {
	d := reflect.ValueOf(dest).Elem()
	if val == nil {
		d.Set(reflect.Zero(d.Type()))
		return
	}
	v := reflect.ValueOf(val)
	if v.Type() != d.Type() && v.Type().ConvertibleTo(d.Type()) {
		d.Set(v.Convert(d.Type()))
		return
	}
	d.Set(v)
}

// MockPgPool implements PgPool with function fields.
type MockPgPool struct {
	QueryFunc    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRowFunc func(ctx context.Context, sql string, args ...any) pgx.Row
	ExecFunc     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)

	QueryCalls []string
	ExecCalls  []string
	ExecArgs   [][]any
}

func (m *MockPgPool) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	m.QueryCalls = append(m.QueryCalls, sql)
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, sql, args...)
	}
	return &MockPgRows{}, nil
}

func (m *MockPgPool) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if m.QueryRowFunc != nil {
		return m.QueryRowFunc(ctx, sql, args...)
	}
	return &MockPgRow{Values: nil}
}

func (m *MockPgPool) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	m.ExecCalls = append(m.ExecCalls, sql)
	m.ExecArgs = append(m.ExecArgs, args)
	if m.ExecFunc != nil {
		return m.ExecFunc(ctx, sql, args...)
	}
	return pgconn.NewCommandTag("UPDATE 1"), nil
}

// MockPgRows serves fixed rows of column values.
type MockPgRows struct {
	Rows [][]any
	curr int
}

func (r *MockPgRows) Close()                                       {}
func (r *MockPgRows) Err() error                                   { return nil }
func (r *MockPgRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *MockPgRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *MockPgRows) Next() bool {
	r.curr++
	return r.curr <= len(r.Rows)
}
func (r *MockPgRows) Scan(dest ...any) error {
	row := r.Rows[r.curr-1]
	for i, d := range dest {
		assign(d, row[i])
	}
	return nil
}
func (r *MockPgRows) Values() ([]any, error) { return nil, nil }
func (r *MockPgRows) RawValues() [][]byte    { return nil }
func (r *MockPgRows) Conn() *pgx.Conn        { return nil }

// MockPgRow serves one fixed row, or pgx.ErrNoRows when Values is nil.
type MockPgRow struct {
	Values []any
}

func (r *MockPgRow) Scan(dest ...any) error {
	if r.Values == nil {
		return pgx.ErrNoRows
	}
	for i, d := range dest {
		assign(d, r.Values[i])
	}
	return nil
}

// MockConn implements driver.Conn, routing queries by substring match so a
// test can serve the scorer and assist aggregates differently.
type MockConn struct {
	chdriver.Conn

	ScorerRows [][]any
	AssistRows [][]any
	QueryCalls int
}

func (m *MockConn) Query(ctx context.Context, query string, args ...any) (chdriver.Rows, error) {
	m.QueryCalls++
	if strings.Contains(query, "assist_id") {
		return &MockCHRows{rows: m.AssistRows}, nil
	}
	return &MockCHRows{rows: m.ScorerRows}, nil
}

type MockCHRows struct {
	chdriver.Rows
	rows [][]any
	curr int
}

func (m *MockCHRows) Next() bool {
	m.curr++
	return m.curr <= len(m.rows)
}

func (m *MockCHRows) Scan(dest ...any) error {
	row := m.rows[m.curr-1]
	for i, d := range dest {
		assign(d, row[i])
	}
	return nil
}

func (m *MockCHRows) Close() error { return nil }
func (m *MockCHRows) Err() error   { return nil }

// MockRedis is an in-memory RedisClient.
type MockRedis struct {
	mu      sync.Mutex
	data    map[string]string
	Sets    int
	Deleted []string
}

func NewMockRedis() *MockRedis {
	return &MockRedis{data: make(map[string]string)}
}

func (m *MockRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	if val, ok := m.data[key]; ok {
		return redis.NewStringResult(val, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (m *MockRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch v := value.(type) {
	case string:
		m.data[key] = v
	case []byte:
		m.data[key] = string(v)
	}
	m.Sets++
	return redis.NewStatusResult("OK", nil)
}

func (m *MockRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.data, key)
		m.Deleted = append(m.Deleted, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}
