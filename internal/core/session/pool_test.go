package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/ulimi/internal/core"
)

func newTestPool(maxSize int) *Pool {
	return NewPool(maxSize, "default", func(sessionID string) *core.Resolver {
		return core.NewResolver(sessionID, nil, nil, nil, nil, 0, 0)
	})
}

func TestGetOrCreate_ReusesResolver(t *testing.T) {
	p := newTestPool(3)

	r1 := p.GetOrCreate("sess1")
	r2 := p.GetOrCreate("sess1")
	assert.Same(t, r1, r2)
	assert.Equal(t, 1, p.Len())
}

func TestGetOrCreate_EmptyIDIsDefault(t *testing.T) {
	p := newTestPool(3)

	r1 := p.GetOrCreate("")
	r2 := p.GetOrCreate("default")
	assert.Same(t, r1, r2)
}

func TestEviction_DropsLeastRecentlyUsed(t *testing.T) {
	p := newTestPool(3)

	p.GetOrCreate("a")
	p.GetOrCreate("b")
	p.GetOrCreate("c")

	// touch a so b becomes the LRU
	p.GetOrCreate("a")

	p.GetOrCreate("d")
	assert.Equal(t, 3, p.Len())

	ids := make(map[string]bool)
	for _, info := range p.List() {
		ids[info.SessionID] = true
	}
	assert.False(t, ids["b"])
	assert.True(t, ids["a"])
	assert.True(t, ids["c"])
	assert.True(t, ids["d"])
}

func TestEviction_DefaultIsExempt(t *testing.T) {
	p := newTestPool(2)

	p.GetOrCreate("default")
	p.GetOrCreate("a")

	// default is the LRU but must survive; a is evicted instead
	p.GetOrCreate("b")

	ids := make(map[string]bool)
	for _, info := range p.List() {
		ids[info.SessionID] = true
	}
	assert.True(t, ids["default"])
	assert.False(t, ids["a"])
	assert.True(t, ids["b"])
}

func TestEviction_AllDefaultOverflowsByOne(t *testing.T) {
	p := newTestPool(1)

	p.GetOrCreate("default")
	p.GetOrCreate("a")

	// nothing evictable besides default, so the pool runs one over
	assert.Equal(t, 2, p.Len())
}

func TestClear_RemovesSession(t *testing.T) {
	p := newTestPool(3)

	p.GetOrCreate("sess1")
	assert.True(t, p.Clear("sess1"))
	assert.Equal(t, 0, p.Len())
	assert.False(t, p.Clear("sess1"))
}

func TestClear_DefaultIsRetained(t *testing.T) {
	p := newTestPool(3)

	r := p.GetOrCreate("default")
	_, err := r.Resolve(context.Background(), core.Request{Text: "hello", TargetLang: "zu"})
	require.NoError(t, err)
	require.Equal(t, int64(1), r.RequestCount())

	assert.False(t, p.Clear("default"))
	assert.Equal(t, 1, p.Len())

	// same resolver, counter untouched
	again := p.GetOrCreate("default")
	assert.Same(t, r, again)
	assert.Equal(t, int64(1), again.RequestCount())
}

func TestList_MostRecentFirst(t *testing.T) {
	p := newTestPool(3)

	p.GetOrCreate("a")
	p.GetOrCreate("b")
	p.GetOrCreate("a")

	infos := p.List()
	require.Len(t, infos, 2)
	assert.Equal(t, "a", infos[0].SessionID)
	assert.Equal(t, "b", infos[1].SessionID)
	assert.False(t, infos[0].IsDefault)
}

func TestList_MarksDefault(t *testing.T) {
	p := newTestPool(3)

	p.GetOrCreate("")
	infos := p.List()
	require.Len(t, infos, 1)
	assert.True(t, infos[0].IsDefault)
	assert.Equal(t, "default", infos[0].SessionID)
}
