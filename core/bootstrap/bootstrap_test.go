package bootstrap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	coreconfig "github.com/m3rciful/demobot/core/config"
)

func TestRunNilConfig(t *testing.T) {
	require.Error(t, Run(context.Background(), Options{}))
}

func TestRunWarmupOrderAndFailure(t *testing.T) {
	var order []string
	opts := Options{
		Config:     &coreconfig.Config{},
		LoggerInit: func(*coreconfig.Config) error { return nil },
		Warmups: []Warmup{
			WarmupFunc("first", func(context.Context) error {
				order = append(order, "first")
				return nil
			}),
			WarmupFunc("boom", func(context.Context) error {
				order = append(order, "boom")
				return errors.New("broken data")
			}),
			WarmupFunc("unreached", func(context.Context) error {
				order = append(order, "unreached")
				return nil
			}),
		},
	}

	err := Run(context.Background(), opts)
	require.ErrorContains(t, err, "warmup boom failed")
	require.Equal(t, []string{"first", "boom"}, order)
}

func TestRunLoggerInitFailure(t *testing.T) {
	opts := Options{
		Config:     &coreconfig.Config{},
		LoggerInit: func(*coreconfig.Config) error { return errors.New("no sink") },
	}
	require.ErrorContains(t, Run(context.Background(), opts), "logger init failed")
}
