package core_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/balanced/core"
)

func TestDefaultConfig(t *testing.T) {
	cfg := core.DefaultConfig()
	assert.Equal(t, core.AlgoKocayStone, cfg.Algorithm)
	assert.False(t, cfg.Debug)
	assert.NotNil(t, cfg.Ctx)
}

func TestConfigOptions(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := core.DefaultConfig(
		core.WithAlgorithm(core.AlgoMicaliVazirani),
		core.WithDebug(),
		core.WithContext(ctx),
		core.WithMaxIterations(10),
	)

	assert.Equal(t, core.AlgoMicaliVazirani, cfg.Algorithm)
	assert.True(t, cfg.Debug)
	assert.Equal(t, ctx, cfg.Ctx)
	assert.Equal(t, 10, cfg.MaxIterations)
}

func TestAlgorithmString(t *testing.T) {
	assert.Equal(t, "kocay-stone", core.AlgoKocayStone.String())
	assert.Equal(t, "kameda-munro", core.AlgoKamedaMunro.String())
	assert.Equal(t, "heuristic-first-pass", core.AlgoHeuristicFirstPass.String())
	assert.Equal(t, "micali-vazirani", core.AlgoMicaliVazirani.String())
}
