package cache

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Unikyri/forohub-tui/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKey_Canonical(t *testing.T) {
	a := NewKey("topics:search", map[string]string{"term": "go", "page": "0"})
	b := NewKey("topics:search", map[string]string{"page": "0", "term": "go"})

	assert.Equal(t, a, b)
	assert.Equal(t, "topics:search|page=0|term=go", a.String())
	assert.Equal(t, "topics:search", a.Kind())

	noParams := NewKey("courses", nil)
	assert.Equal(t, "courses", noParams.String())
}

func TestFetch_FreshHitSkipsCall(t *testing.T) {
	c := NewQueryCache(logger.Nop())
	key := NewKey("topics:list", map[string]string{"page": "0"})

	calls := 0
	fn := func(context.Context) (string, error) {
		calls++
		return "page-zero", nil
	}

	got, err := Fetch(context.Background(), c, key, fn)
	require.NoError(t, err)
	assert.Equal(t, "page-zero", got)

	got, err = Fetch(context.Background(), c, key, fn)
	require.NoError(t, err)
	assert.Equal(t, "page-zero", got)
	assert.Equal(t, 1, calls)
}

func TestFetch_DistinctPagesAreIndependentSlots(t *testing.T) {
	c := NewQueryCache(logger.Nop())

	calls := 0
	fetchPage := func(page int) (string, error) {
		key := NewKey("topics:list", map[string]string{"page": strconv.Itoa(page)})
		return Fetch(context.Background(), c, key, func(context.Context) (string, error) {
			calls++
			return "page-" + strconv.Itoa(page), nil
		})
	}

	zero, err := fetchPage(0)
	require.NoError(t, err)
	one, err := fetchPage(1)
	require.NoError(t, err)

	assert.Equal(t, "page-0", zero)
	assert.Equal(t, "page-1", one)
	assert.Equal(t, 2, calls)

	// both stay cached independently
	zero, err = fetchPage(0)
	require.NoError(t, err)
	assert.Equal(t, "page-0", zero)
	assert.Equal(t, 2, calls)
}

func TestFetch_ConcurrentSameKeyDeduplicated(t *testing.T) {
	c := NewQueryCache(logger.Nop())
	key := NewKey("topics:list", map[string]string{"page": "0"})

	var calls atomic.Int32
	release := make(chan struct{})
	fn := func(context.Context) (string, error) {
		calls.Add(1)
		<-release
		return "shared", nil
	}

	const workers = 8
	var wg sync.WaitGroup
	results := make([]string, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = Fetch(context.Background(), c, key, fn)
		}(i)
	}

	// give the goroutines a chance to pile onto the in-flight call
	for calls.Load() == 0 {
	}
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "shared", results[i])
	}
}

func TestInvalidateKind_MarksAllEntriesStale(t *testing.T) {
	c := NewQueryCache(logger.Nop())

	calls := 0
	fetchPage := func(page int) (string, error) {
		key := NewKey("topics:list", map[string]string{"page": strconv.Itoa(page)})
		return Fetch(context.Background(), c, key, func(context.Context) (string, error) {
			calls++
			return "v" + strconv.Itoa(calls), nil
		})
	}

	_, err := fetchPage(0)
	require.NoError(t, err)
	_, err = fetchPage(1)
	require.NoError(t, err)
	require.Equal(t, 2, calls)

	c.InvalidateKind("topics:list")

	// stale values remain retrievable before the refetch
	key0 := NewKey("topics:list", map[string]string{"page": "0"})
	cached, stale, ok := Cached[string](c, key0)
	require.True(t, ok)
	assert.True(t, stale)
	assert.Equal(t, "v1", cached)

	// every entry of the kind refetches
	_, err = fetchPage(0)
	require.NoError(t, err)
	_, err = fetchPage(1)
	require.NoError(t, err)
	assert.Equal(t, 4, calls)

	// other kinds are untouched
	other := NewKey("courses", nil)
	_, err = Fetch(context.Background(), c, other, func(context.Context) (string, error) { return "cursos", nil })
	require.NoError(t, err)
	c.InvalidateKind("topics:list")
	_, stale, ok = Cached[string](c, other)
	require.True(t, ok)
	assert.False(t, stale)
}

func TestInvalidate_SingleKey(t *testing.T) {
	c := NewQueryCache(logger.Nop())
	key := NewKey("topic", map[string]string{"id": "7"})

	_, err := Fetch(context.Background(), c, key, func(context.Context) (string, error) { return "detail", nil })
	require.NoError(t, err)

	c.Invalidate(key)

	_, stale, ok := Cached[string](c, key)
	require.True(t, ok)
	assert.True(t, stale)

	// invalidating an absent key is a no-op
	c.Invalidate(NewKey("topic", map[string]string{"id": "8"}))
}

func TestFetch_FailureLeavesSlotUntouched(t *testing.T) {
	c := NewQueryCache(logger.Nop())
	key := NewKey("topics:list", map[string]string{"page": "0"})
	boom := errors.New("connection refused")

	// failure on an empty slot leaves it empty
	_, err := Fetch(context.Background(), c, key, func(context.Context) (string, error) { return "", boom })
	require.ErrorIs(t, err, boom)
	_, _, ok := Cached[string](c, key)
	assert.False(t, ok)

	// populate, invalidate, then fail the refetch: last good value survives
	_, err = Fetch(context.Background(), c, key, func(context.Context) (string, error) { return "good", nil })
	require.NoError(t, err)
	c.InvalidateKind("topics:list")

	_, err = Fetch(context.Background(), c, key, func(context.Context) (string, error) { return "", boom })
	require.ErrorIs(t, err, boom)

	cached, stale, ok := Cached[string](c, key)
	require.True(t, ok)
	assert.True(t, stale)
	assert.Equal(t, "good", cached)
}

func TestFetch_StaleEntryRefetches(t *testing.T) {
	c := NewQueryCache(logger.Nop())
	key := NewKey("topics:list", map[string]string{"page": "0"})

	calls := 0
	fn := func(context.Context) (string, error) {
		calls++
		return "v" + strconv.Itoa(calls), nil
	}

	got, err := Fetch(context.Background(), c, key, fn)
	require.NoError(t, err)
	assert.Equal(t, "v1", got)

	c.InvalidateKind("topics:list")

	got, err = Fetch(context.Background(), c, key, fn)
	require.NoError(t, err)
	assert.Equal(t, "v2", got)
	assert.Equal(t, 2, calls)

	// refetch stored the value fresh again
	_, stale, ok := Cached[string](c, key)
	require.True(t, ok)
	assert.False(t, stale)
}
