package cache_test

import (
	"context"
	"testing"
	"todomac/infras/otel/mocks"
	"todomac/shared/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildKey(t *testing.T) {
	assert.Equal(t, "limiter:127.0.0.1:curl", cache.BuildKey("limiter", "127.0.0.1", "curl"))
	assert.Equal(t, "limiter", cache.BuildKey("limiter"))
}

func TestIncrement_NoClient(t *testing.T) {
	otl := mocks.NewOtel()

	_, err := cache.NewRedisCache(nil, otl).Increment(context.Background(), "limiter:x", 60)

	assert.ErrorIs(t, err, cache.ErrNoClient)

	span, ok := otl.Span("cache.Increment")
	require.True(t, ok)
	assert.Equal(t, "limiter:x", span.Attrs["cache.key"])
	assert.Len(t, span.Errors, 1)
}
