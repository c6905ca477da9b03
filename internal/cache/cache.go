// Package cache memoizes calculator outcomes. The calculators are pure, so a
// cached entry is always identical to what a fresh computation would return.
package cache

import (
	"context"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/iwvelando/finance-calculator/internal/config"
	"github.com/iwvelando/finance-calculator/pkg/constants"
)

// Cache stores encoded results by key.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// New builds the cache selected by cfg. The none backend returns a nil Cache.
func New(cfg config.CacheConfig) (Cache, error) {
	switch cfg.Backend {
	case "", constants.CacheBackendNone:
		return nil, nil
	case constants.CacheBackendMemory:
		return NewMemory(cfg.Entries), nil
	case constants.CacheBackendRedis:
		return NewRedis(cfg.RedisAddress, cfg.RedisPassword, cfg.RedisDB, cfg.TTLDuration()), nil
	}
	return nil, fmt.Errorf("unsupported cache backend %q", cfg.Backend)
}

// Key derives a compact key for a calculator and its normalized inputs.
func Key(calculator string, inputs ...string) string {
	h := xxhash.New()
	for _, in := range inputs {
		_, _ = h.WriteString(in)
		// Unit separator keeps ("1","23") and ("12","3") apart.
		_, _ = h.WriteString("\x1f")
	}
	return fmt.Sprintf("fincalc:%s:%016x", strings.ToLower(calculator), h.Sum64())
}
