package manifest_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nimbus/src/manifest"
)

func TestDefault_Values(t *testing.T) {
	m := manifest.Default("demo")

	assert.Equal(t, []manifest.Table{manifest.Project, manifest.Build}, m.Tables())
	assert.Equal(t, "demo", m.ProjectName())

	v, ok := m.Get(manifest.Project, manifest.Version)
	require.True(t, ok)
	assert.Equal(t, "0.1.0", v.Text())

	v, ok = m.Get(manifest.Project, manifest.Authors)
	require.True(t, ok)
	require.True(t, v.IsList())
	assert.Equal(t, []string{"Your Name <you@example.com>"}, v.Items())

	v, _ = m.Get(manifest.Build, manifest.Compiler)
	assert.Equal(t, manifest.DefaultCompiler, v.Text())
	v, _ = m.Get(manifest.Build, manifest.Standard)
	assert.Equal(t, manifest.DefaultStandard, v.Text())
	v, _ = m.Get(manifest.Build, manifest.BuildType)
	assert.Equal(t, "Debug", v.Text())
}

func TestDefault_EmptyNameIsNotInferred(t *testing.T) {
	m := manifest.Default("")
	v, ok := m.Get(manifest.Project, manifest.Name)
	require.True(t, ok)
	assert.Equal(t, "", v.Text())
}

func TestSet_RejectsForeignKey(t *testing.T) {
	m := manifest.New()
	err := m.Set(manifest.Project, manifest.Compiler, manifest.String("g++"))
	require.ErrorIs(t, err, manifest.ErrKeyNotInTable)
	assert.Empty(t, m.Tables())
}

func TestSet_RejectsWrongKind(t *testing.T) {
	m := manifest.New()
	require.ErrorIs(t, m.Set(manifest.Project, manifest.Authors, manifest.String("me")), manifest.ErrValueKind)
	require.ErrorIs(t, m.Set(manifest.Project, manifest.Name, manifest.List("a", "b")), manifest.ErrValueKind)
}

func TestSet_RejectsUnknownVariants(t *testing.T) {
	m := manifest.New()
	require.ErrorIs(t, m.Set(manifest.Table(7), manifest.Name, manifest.String("x")), manifest.ErrUnknownTable)
	require.ErrorIs(t, m.Set(manifest.Project, manifest.Key(7), manifest.String("x")), manifest.ErrUnknownKey)
}

func TestSet_PreservesInsertionOrder(t *testing.T) {
	m := manifest.New()
	require.NoError(t, m.Set(manifest.Build, manifest.Standard, manifest.String("c++23")))
	require.NoError(t, m.Set(manifest.Project, manifest.Version, manifest.String("1.0.0")))
	require.NoError(t, m.Set(manifest.Build, manifest.Compiler, manifest.String("g++")))
	require.NoError(t, m.Set(manifest.Build, manifest.Standard, manifest.String("c++20")))

	assert.Equal(t, []manifest.Table{manifest.Build, manifest.Project}, m.Tables())
	assert.Equal(t, []manifest.Key{manifest.Standard, manifest.Compiler}, m.Keys(manifest.Build))
	v, _ := m.Get(manifest.Build, manifest.Standard)
	assert.Equal(t, "c++20", v.Text())
}

func TestValue_ItemsAreCopied(t *testing.T) {
	items := []string{"a"}
	v := manifest.List(items...)
	items[0] = "changed"
	got := v.Items()
	assert.Equal(t, []string{"a"}, got)
	got[0] = "changed"
	assert.Equal(t, []string{"a"}, v.Items())
	assert.Nil(t, manifest.String("x").Items())
}

func TestMarshalTOML_SectionAndKeyOrder(t *testing.T) {
	data, err := manifest.Default("demo").MarshalTOML()
	require.NoError(t, err)
	s := string(data)

	order := []string{"[project]", "name", "version", "authors", "[build]", "compiler", "standard", "build_type"}
	last := -1
	for _, tok := range order {
		i := strings.Index(s, tok)
		require.GreaterOrEqual(t, i, 0, "missing %q in:\n%s", tok, s)
		require.Greater(t, i, last, "%q out of order in:\n%s", tok, s)
		last = i
	}
	assert.Contains(t, s, "demo")
	assert.Contains(t, s, "Your Name <you@example.com>")
}

func TestMarshalTOML_ParsesBack(t *testing.T) {
	data, err := manifest.Default("demo").MarshalTOML()
	require.NoError(t, err)

	m, err := manifest.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "demo", m.ProjectName())
	v, _ := m.Get(manifest.Project, manifest.Authors)
	assert.Equal(t, []string{manifest.DefaultAuthor}, v.Items())
	v, _ = m.Get(manifest.Build, manifest.BuildType)
	assert.Equal(t, manifest.DefaultBuildType, v.Text())
}

func TestMarshalTOML_QuotesAwkwardNames(t *testing.T) {
	m := manifest.Default(`it's "quoted"`)
	data, err := m.MarshalTOML()
	require.NoError(t, err)

	back, err := manifest.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, `it's "quoted"`, back.ProjectName())
}
