package content

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalSite = `
site: { brand: Test }
categories:
  - { id: ai-agents, label: AI Agents }
  - { id: blockchain, label: Blockchain }
projects:
  - { id: one, title: One, category: ai-agents }
  - { id: two, title: Two, category: blockchain }
  - { id: three, title: Three, category: ai-agents }
testimonials:
  - { name: A, quote: Great, rating: 4 }
`

func TestLoadDefault(t *testing.T) {
	lib, err := Load(Default())
	require.NoError(t, err)

	assert.Len(t, lib.Services, 6)
	assert.Len(t, lib.Projects, 6)
	assert.Len(t, lib.Testimonials, 3)
	require.Len(t, lib.Posts, 3)

	for i := 1; i < len(lib.Posts); i++ {
		assert.False(t, lib.Posts[i].Date.After(lib.Posts[i-1].Date), "posts must be newest first")
	}
	assert.Equal(t, "future-of-decentralized-finance", lib.Posts[0].Slug)
	assert.Contains(t, lib.Posts[0].Body, "<table>")
}

func TestLoadPostFallbacks(t *testing.T) {
	fsys := fstest.MapFS{
		"site.yaml":                  {Data: []byte(minimalSite)},
		"posts/hello_big-world.md":   {Data: []byte("---\ndate: \"2024-01-02\"\n---\n# Hi\n")},
		"posts/with-front-matter.md": {Data: []byte("---\ntitle: Custom Title!\ndate: \"2024-03-01\"\n---\nbody\n")},
	}
	lib, err := Load(fsys)
	require.NoError(t, err)
	require.Len(t, lib.Posts, 2)

	assert.Equal(t, "Custom Title!", lib.Posts[0].Title)
	assert.Equal(t, "custom-title", lib.Posts[0].Slug)

	assert.Equal(t, "Hello Big World", lib.Posts[1].Title)
	assert.Equal(t, "hello-big-world", lib.Posts[1].Slug)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), lib.Posts[1].Date)
	assert.Contains(t, lib.Posts[1].Body, `<h1 id="hi">Hi</h1>`)
}

func TestLoadRejectsInvalidLibrary(t *testing.T) {
	fsys := fstest.MapFS{
		"site.yaml": {Data: []byte(`
categories: [{ id: ai-agents, label: AI }]
projects:
  - { id: p, title: P, category: nowhere }
  - { id: p, title: Q, category: ai-agents }
testimonials:
  - { name: A, quote: B, rating: 9 }
`)},
	}
	_, err := Load(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown category "nowhere"`)
	assert.Contains(t, err.Error(), `duplicate id "p"`)
	assert.Contains(t, err.Error(), "rating 9 outside 0-5")
}

func TestProjectsByCategory(t *testing.T) {
	lib := mustLoad(t)

	assert.Len(t, lib.ProjectsByCategory(""), 3)
	assert.Len(t, lib.ProjectsByCategory(AllCategory), 3)

	agents := lib.ProjectsByCategory("ai-agents")
	require.Len(t, agents, 2)
	for _, p := range agents {
		assert.Equal(t, "ai-agents", p.Category)
	}
	assert.Empty(t, lib.ProjectsByCategory("web3"))
}

func TestNormalizeCategory(t *testing.T) {
	lib := mustLoad(t)
	tests := map[string]string{
		"":             AllCategory,
		"all":          AllCategory,
		"Blockchain ":  "blockchain",
		"ai-agents":    "ai-agents",
		"no-such-kind": AllCategory,
	}
	for in, want := range tests {
		assert.Equal(t, want, lib.NormalizeCategory(in), "input %q", in)
	}
}

func TestCategoryCycling(t *testing.T) {
	lib := mustLoad(t)

	assert.Equal(t, "ai-agents", lib.NextCategory(AllCategory))
	assert.Equal(t, AllCategory, lib.NextCategory("blockchain"))
	assert.Equal(t, "blockchain", lib.PrevCategory(AllCategory))
	assert.Equal(t, "ai-agents", lib.NextCategory("unknown"))
}

func TestPost(t *testing.T) {
	lib, err := Load(Default())
	require.NoError(t, err)

	p, err := lib.Post("building-secure-smart-contracts")
	require.NoError(t, err)
	assert.Equal(t, "Michael Wilson", p.Author)
	assert.Equal(t, "/blog/building-secure-smart-contracts/", p.Link())

	_, err = lib.Post("missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCycle(t *testing.T) {
	tests := []struct {
		name       string
		i, n       int
		next, prev int
	}{
		{"first of three", 0, 3, 1, 2},
		{"last of three", 2, 3, 0, 1},
		{"single item", 0, 1, 0, 0},
		{"empty ring", 0, 0, 0, 0},
		{"negative n", 4, -1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.next, Next(tt.i, tt.n))
			assert.Equal(t, tt.prev, Prev(tt.i, tt.n))
		})
	}

	assert.Equal(t, 2, Wrap(-1, 3))
	assert.Equal(t, 1, Wrap(7, 3))
	assert.Equal(t, 0, Wrap(5, 0))
}

func TestCacheReloadsAfterInvalidate(t *testing.T) {
	fsys := fstest.MapFS{"site.yaml": {Data: []byte(minimalSite)}}
	c := NewCache(fsys, time.Hour)

	first, err := c.Library()
	require.NoError(t, err)
	again, err := c.Library()
	require.NoError(t, err)
	assert.Same(t, first, again)
	assert.Equal(t, 1, c.Loads())

	c.Invalidate()
	reloaded, err := c.Library()
	require.NoError(t, err)
	assert.NotSame(t, first, reloaded)
	assert.Equal(t, 2, c.Loads())
}

func TestCacheKeepsPreviousOnFailedReload(t *testing.T) {
	fsys := fstest.MapFS{"site.yaml": {Data: []byte(minimalSite)}}
	c := NewCache(fsys, time.Hour)
	first, err := c.Library()
	require.NoError(t, err)

	fsys["site.yaml"] = &fstest.MapFile{Data: []byte("projects: [{ id: x, title: X, category: nope }]")}
	c.Invalidate()

	lib, err := c.Library()
	assert.Error(t, err)
	assert.Same(t, first, lib)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "building-secure-smart-contracts-best-practices",
		Slugify("Building Secure Smart Contracts: Best Practices"))
	assert.Equal(t, "ai-blockchain", Slugify("  AI & Blockchain!! "))
	assert.Equal(t, "", Slugify("!!!"))
}

func mustLoad(t *testing.T) *Library {
	t.Helper()
	lib, err := Load(fstest.MapFS{"site.yaml": {Data: []byte(minimalSite)}})
	require.NoError(t, err)
	return lib
}

type watchLogger struct{ ready chan struct{} }

func (l *watchLogger) Infof(format string, args ...interface{}) {
	select {
	case l.ready <- struct{}{}:
	default:
	}
}

func (l *watchLogger) Errorf(format string, args ...interface{}) {}

type countingInvalidator struct{ n atomic.Int32 }

func (c *countingInvalidator) Invalidate() { c.n.Add(1) }

func TestWatchInvalidatesOnceForBurst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalSite), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	logger := &watchLogger{ready: make(chan struct{}, 1)}
	target := &countingInvalidator{}
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, dir, target, logger) }()

	select {
	case <-logger.ready:
	case err := <-done:
		t.Fatalf("watch exited early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher never started")
	}

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte(minimalSite+"\n"), 0o644))
	}
	assert.Eventually(t, func() bool { return target.n.Load() == 1 }, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}
