package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func stubHooks(t *testing.T) {
	t.Helper()

	originalParseConfig := parseConfig
	originalNewPool := newPool
	originalPingPool := pingPool
	originalClosePool := closePool
	t.Cleanup(func() {
		parseConfig = originalParseConfig
		newPool = originalNewPool
		pingPool = originalPingPool
		closePool = originalClosePool
	})
}

func TestNewPool_ParseError(t *testing.T) {
	stubHooks(t)

	expectedErr := errors.New("parse failed")
	parseConfig = func(url string) (*pgxpool.Config, error) {
		return nil, expectedErr
	}
	newPool = func(ctx context.Context, config *pgxpool.Config) (*pgxpool.Pool, error) {
		t.Fatal("newPool should not be called")
		return nil, nil
	}

	pool, err := NewPool(context.Background(), "not-a-url", 0)

	require.ErrorIs(t, err, expectedErr)
	require.Nil(t, pool)
}

func TestNewPool_NewError(t *testing.T) {
	stubHooks(t)

	parseConfig = func(url string) (*pgxpool.Config, error) {
		return &pgxpool.Config{}, nil
	}

	expectedErr := errors.New("new pool failed")
	newPool = func(ctx context.Context, config *pgxpool.Config) (*pgxpool.Pool, error) {
		return nil, expectedErr
	}

	pingCalled := false
	pingPool = func(ctx context.Context, pool poolPinger) error {
		pingCalled = true
		return nil
	}

	pool, err := NewPool(context.Background(), "postgres://example", 0)

	require.ErrorIs(t, err, expectedErr)
	require.Nil(t, pool)
	require.False(t, pingCalled)
}

func TestNewPool_PingError(t *testing.T) {
	stubHooks(t)

	parseConfig = func(url string) (*pgxpool.Config, error) {
		return &pgxpool.Config{}, nil
	}

	poolInstance := &pgxpool.Pool{}
	newPool = func(ctx context.Context, config *pgxpool.Config) (*pgxpool.Pool, error) {
		return poolInstance, nil
	}

	pingErr := errors.New("ping failed")
	pingPool = func(ctx context.Context, pool poolPinger) error {
		return pingErr
	}

	closeCalled := false
	closePool = func(pool poolPinger) {
		closeCalled = true
		require.Equal(t, poolInstance, pool)
	}

	pool, err := NewPool(context.Background(), "postgres://example", 0)

	require.ErrorIs(t, err, pingErr)
	require.Nil(t, pool)
	require.True(t, closeCalled)
}

func TestNewPool_Success(t *testing.T) {
	stubHooks(t)

	var capturedConfig *pgxpool.Config
	parseConfig = func(url string) (*pgxpool.Config, error) {
		require.Equal(t, "postgres://example", url)
		capturedConfig = &pgxpool.Config{}
		return capturedConfig, nil
	}

	poolInstance := &pgxpool.Pool{}
	var capturedCtx context.Context
	newPool = func(ctx context.Context, config *pgxpool.Config) (*pgxpool.Pool, error) {
		capturedCtx = ctx
		require.Equal(t, capturedConfig, config)
		return poolInstance, nil
	}

	pingCalled := false
	pingPool = func(ctx context.Context, pool poolPinger) error {
		pingCalled = true
		return nil
	}

	closeCalled := false
	closePool = func(pool poolPinger) {
		closeCalled = true
	}

	pool, err := NewPool(context.Background(), "postgres://example", 25)

	require.NoError(t, err)
	require.Equal(t, poolInstance, pool)
	require.True(t, pingCalled)
	require.False(t, closeCalled)
	require.Equal(t, int32(25), capturedConfig.MaxConns)

	deadline, ok := capturedCtx.Deadline()
	require.True(t, ok)
	require.True(t, time.Until(deadline) <= 5*time.Second)
	require.True(t, time.Until(deadline) > 0)
}

func TestNewPool_ZeroMaxConnsKeepsDefault(t *testing.T) {
	stubHooks(t)

	capturedConfig := &pgxpool.Config{MaxConns: 4}
	parseConfig = func(url string) (*pgxpool.Config, error) {
		return capturedConfig, nil
	}
	newPool = func(ctx context.Context, config *pgxpool.Config) (*pgxpool.Pool, error) {
		return &pgxpool.Pool{}, nil
	}
	pingPool = func(ctx context.Context, pool poolPinger) error {
		return nil
	}

	_, err := NewPool(context.Background(), "postgres://example", 0)

	require.NoError(t, err)
	require.Equal(t, int32(4), capturedConfig.MaxConns, "zero must not override the parsed default")
}

func TestDefaultPoolHooks(t *testing.T) {
	fake := &fakePoolPinger{}

	err := pingPool(context.Background(), fake)
	require.NoError(t, err)

	closePool(fake)

	require.True(t, fake.pingCalled)
	require.True(t, fake.closeCalled)
}

type fakePoolPinger struct {
	pingCalled  bool
	closeCalled bool
}

func (fake *fakePoolPinger) Ping(ctx context.Context) error {
	fake.pingCalled = true
	return nil
}

func (fake *fakePoolPinger) Close() {
	fake.closeCalled = true
}
