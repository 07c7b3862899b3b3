package ratelimit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// A nil limiter is the configuration without Redis; every check passes.
func TestNilLimiterAllowsEverything(t *testing.T) {
	var limiter *Limiter
	ctx := context.Background()

	assert.NoError(t, limiter.CheckLogin(ctx, "admin_osis"))
	assert.NoError(t, limiter.CheckAsk(ctx, "203.0.113.7"))
}

func TestLimiterWithoutClientAllowsEverything(t *testing.T) {
	limiter := NewLimiter(nil)
	ctx := context.Background()

	assert.NoError(t, limiter.CheckLogin(ctx, "admin_osis"))
	assert.NoError(t, limiter.CheckAsk(ctx, "203.0.113.7"))
}
