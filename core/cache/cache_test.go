package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meditrack/core/logger"
)

func newTestCache() *Cache {
	return New(logger.NewNopLogger())
}

func TestDoCachesProducedValue(t *testing.T) {
	c := newTestCache()
	calls := 0

	produce := func() (string, error) {
		calls++
		return "value", nil
	}

	first, err := Do(c, "search", "universal", map[string]string{"query": "aspirin"}, TTLMedium, produce)
	require.NoError(t, err)
	assert.Equal(t, "value", first)

	second, err := Do(c, "search", "universal", map[string]string{"query": "aspirin"}, TTLMedium, produce)
	require.NoError(t, err)
	assert.Equal(t, "value", second)
	assert.Equal(t, 1, calls, "second call should be served from cache")
}

func TestDoDistinguishesParams(t *testing.T) {
	c := newTestCache()
	calls := 0

	for _, query := range []string{"aspirin", "gauze"} {
		_, err := Do(c, "search", "universal", map[string]string{"query": query}, TTLMedium, func() (int, error) {
			calls++
			return calls, nil
		})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, calls)
}

func TestDoErrorIsNotCached(t *testing.T) {
	c := newTestCache()
	calls := 0

	produce := func() (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("backend down")
		}
		return "recovered", nil
	}

	_, err := Do(c, "search", "inventory", "q", TTLShort, produce)
	require.Error(t, err)

	value, err := Do(c, "search", "inventory", "q", TTLShort, produce)
	require.NoError(t, err)
	assert.Equal(t, "recovered", value)
	assert.Equal(t, 2, calls)
}

func TestExpiredEntryIsRecomputed(t *testing.T) {
	c := newTestCache()
	calls := 0

	produce := func() (int, error) {
		calls++
		return calls, nil
	}

	_, err := Do(c, "ns", "op", nil, time.Millisecond, produce)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	value, err := Do(c, "ns", "op", nil, time.Millisecond, produce)
	require.NoError(t, err)
	assert.Equal(t, 2, value)
}

func TestClearByPattern(t *testing.T) {
	c := newTestCache()

	for _, op := range []string{"universal", "inventory", "users"} {
		_, err := Do(c, "search", op, "q", TTLLong, func() (string, error) { return op, nil })
		require.NoError(t, err)
	}
	_, err := Do(c, "stats", "summary", nil, TTLLong, func() (string, error) { return "kept", nil })
	require.NoError(t, err)

	c.ClearByPattern("search:")
	assert.Equal(t, 1, c.Len())

	calls := 0
	_, err = Do(c, "search", "universal", "q", TTLLong, func() (string, error) {
		calls++
		return "fresh", nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "cleared entry should be recomputed")
}

func TestSweepRemovesOnlyExpired(t *testing.T) {
	c := newTestCache()

	_, err := Do(c, "ns", "stale", nil, time.Millisecond, func() (int, error) { return 1, nil })
	require.NoError(t, err)
	_, err = Do(c, "ns", "live", nil, TTLLong, func() (int, error) { return 2, nil })
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	removed := c.Sweep()
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, c.Len())
}

func TestKeyIsDeterministicForEqualMaps(t *testing.T) {
	a := Key("search", "universal", map[string]string{"query": "x", "page": "1"})
	b := Key("search", "universal", map[string]string{"page": "1", "query": "x"})
	assert.Equal(t, a, b, "JSON map encoding sorts keys")
}

func TestFlush(t *testing.T) {
	c := newTestCache()
	_, err := Do(c, "ns", "op", nil, TTLLong, func() (int, error) { return 1, nil })
	require.NoError(t, err)

	c.Flush()
	assert.Equal(t, 0, c.Len())
}
