package healthcheck

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckerAllHealthy(t *testing.T) {
	c := NewChecker(time.Second)
	c.Register("db", func(ctx context.Context) error { return nil })
	c.Register("cache", func(ctx context.Context) error { return nil })

	report := c.Run(context.Background())

	assert.Equal(t, StatusHealthy, report.Status)
	assert.Len(t, report.Checks, 2)
	for name, result := range report.Checks {
		assert.Equal(t, StatusHealthy, result.Status, name)
	}
}

func TestCheckerOneFailing(t *testing.T) {
	c := NewChecker(time.Second)
	c.Register("db", func(ctx context.Context) error { return nil })
	c.Register("cache", func(ctx context.Context) error { return errors.New("connection refused") })

	report := c.Run(context.Background())

	assert.Equal(t, StatusUnhealthy, report.Status)
	require.Contains(t, report.Checks, "cache")
	assert.Equal(t, StatusUnhealthy, report.Checks["cache"].Status)
	assert.Equal(t, "connection refused", report.Checks["cache"].Error)
	assert.Equal(t, StatusHealthy, report.Checks["db"].Status)
}

func TestCheckerTimeout(t *testing.T) {
	c := NewChecker(20 * time.Millisecond)
	c.Register("slow", func(ctx context.Context) error {
		select {
		case <-time.After(time.Second):
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	report := c.Run(context.Background())

	assert.Equal(t, StatusUnhealthy, report.Status)
}

func TestCheckerEmpty(t *testing.T) {
	report := NewChecker(0).Run(context.Background())
	assert.Equal(t, StatusHealthy, report.Status)
	assert.Empty(t, report.Checks)
}
