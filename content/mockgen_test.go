package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var acme = BrandInput{Name: "Acme", Website: "https://acme.com", Keywords: "growth"}

func TestGenerateBlogInterpolation(t *testing.T) {
	c := Generate(SurfaceBlog, "seo-longform", acme)
	blog, ok := c.(*BlogContent)
	require.True(t, ok)

	assert.Equal(t, "The Complete Guide to growth in 2024", blog.Title)
	assert.Contains(t, blog.MetaTitle, "Acme")
	assert.Equal(t, "https://acme.com", blog.CTAURL)
	require.NotEmpty(t, blog.Sections)
	for _, s := range blog.Sections {
		assert.NotEmpty(t, s.Heading)
		assert.NotEmpty(t, s.Content)
	}
}

func TestGenerateUnknownTypeFallsBackToDefault(t *testing.T) {
	for _, surface := range []Surface{SurfaceBlog, SurfaceNewsletter, SurfaceAd} {
		got := Generate(surface, "definitely-not-a-type", acme)
		want := Generate(surface, DefaultType(surface).ID, acme)
		require.NotNil(t, got, "surface %s", surface)
		assert.Equal(t, want, got, "surface %s", surface)
		assert.Equal(t, surface, got.Surface())
	}
}

func TestGenerateEveryCatalogEntryPopulated(t *testing.T) {
	for _, surface := range []Surface{SurfaceBlog, SurfaceNewsletter, SurfaceAd} {
		for _, desc := range Catalog(surface) {
			c := Generate(surface, desc.ID, acme)
			require.NotNil(t, c, "%s/%s", surface, desc.ID)
		}
	}
}

func TestPrimaryKeyword(t *testing.T) {
	assert.Equal(t, "growth", primaryKeyword(BrandInput{Keywords: "growth"}))
	assert.Equal(t, "seo", primaryKeyword(BrandInput{Keywords: " seo , email, ads"}))
	assert.Equal(t, "startup growth", primaryKeyword(BrandInput{}))
}

func TestCatalogIDsUniquePerSurface(t *testing.T) {
	for _, surface := range []Surface{SurfaceBlog, SurfaceNewsletter, SurfaceAd} {
		seen := map[string]bool{}
		for _, d := range Catalog(surface) {
			assert.False(t, seen[d.ID], "duplicate id %s on %s", d.ID, surface)
			seen[d.ID] = true
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := Generate(SurfaceBlog, "seo-longform", acme).(*BlogContent)
	clone := orig.Clone().(*BlogContent)
	clone.Sections[0].Content = "mutated"
	clone.InternalLinks[0].URL = "https://elsewhere.example"
	assert.NotEqual(t, orig.Sections[0].Content, clone.Sections[0].Content)
	assert.NotEqual(t, orig.InternalLinks[0].URL, clone.InternalLinks[0].URL)
}
