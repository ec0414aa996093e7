package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOptions_Defaults(t *testing.T) {
	opts := NewOptions("localhost:5432", "user", "secret", "notes")

	assert.True(t, opts.retry)
	assert.Equal(t, uint(3), opts.retryAttempts)
	assert.Equal(t, 300*time.Millisecond, opts.retryDelay)
	assert.Equal(t, int32(5), opts.maxConns)
	require.NoError(t, opts.Validate())
}

func TestOptions_DSN(t *testing.T) {
	opts := NewOptions("db:5433", "note user", "p@ss", "notes")

	assert.Equal(t, "postgres://note%20user:p%40ss@db:5433/notes?sslmode=disable", opts.dsn())
}

func TestNewPGX_InvalidOptions(t *testing.T) {
	cases := map[string]Options{
		"missing password": NewOptions("localhost:5432", "user", "", "notes"),
		"bad address":      NewOptions("localhost", "user", "secret", "notes"),
		"too many retries": NewOptions("localhost:5432", "user", "secret", "notes", WithRetryAttempts(50)),
		"zero conns":       NewOptions("localhost:5432", "user", "secret", "notes", WithMaxConns(0)),
	}

	for name, opts := range cases {
		t.Run(name, func(t *testing.T) {
			pool, err := NewPGX(context.Background(), opts)
			require.Error(t, err)
			assert.Nil(t, pool)
		})
	}
}

func TestTxFromContext_Empty(t *testing.T) {
	assert.Nil(t, TxFromContext(context.Background()))
}
