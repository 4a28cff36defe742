package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDependencyKind(t *testing.T) {
	t.Parallel()
	cases := map[string]DependencyKind{
		"component":  KindComponent,
		"Components": KindComponent,
		"js":         KindJS,
		"SASS":       KindSass,
	}
	for in, expected := range cases {
		kind, err := ParseDependencyKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, expected, kind)
	}

	_, err := ParseDependencyKind("css")
	assert.Error(t, err)
}

func TestDependencyConfig_Normalize(t *testing.T) {
	t.Parallel()
	cfg := &DependencyConfig{Name: "button"}
	cfg.Normalize()
	assert.Equal(t, []string{}, cfg.Dependencies.Components)
	assert.Equal(t, []string{}, cfg.Dependencies.JS)
	assert.Equal(t, []string{}, cfg.Dependencies.Sass)

	*cfg.List(KindJS) = append(*cfg.List(KindJS), "menu.js")
	assert.Equal(t, []string{"menu.js"}, cfg.Dependencies.JS)
}

func TestClosure_AppendDedup(t *testing.T) {
	t.Parallel()
	c := NewClosure()
	c.Append(Closure{Components: []string{"atoms/icon", "molecules/card"}, JS: []string{"a.js"}})
	c.Append(Closure{Components: []string{"atoms/icon"}, JS: []string{"a.js", "b.js"}, Sass: []string{"layout.scss"}})
	c.Dedup()

	assert.Equal(t, []string{"atoms/icon", "molecules/card"}, c.Components)
	assert.Equal(t, []string{"a.js", "b.js"}, c.JS)
	assert.Equal(t, []string{"layout.scss"}, c.Sass)
	assert.True(t, c.Contains(KindSass, "layout.scss"))
	assert.False(t, c.Contains(KindComponent, "atoms/button"))
	assert.False(t, c.IsEmpty())
	assert.True(t, NewClosure().IsEmpty())
	assert.Len(t, c.Items(), 5)
}

func TestNormalizeExt(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "menu.js", NormalizeExt("menu", JSExt))
	assert.Equal(t, "menu.js", NormalizeExt("menu.js", JSExt))
	assert.Equal(t, "mixins/layout.scss", NormalizeExt("mixins/layout", SassExt))
}
