package content

// Static per-surface catalogs. The first entry of each catalog is the
// surface's default type: generation falls back to it for any unknown
// type id so callers always receive a populated Content.

var blogCatalog = []TypeDescriptor{
	{ID: "seo-longform", Title: "SEO Long-form Guide", Description: "A comprehensive pillar guide targeting your main keyword."},
	{ID: "listicle", Title: "Listicle", Description: "A punchy numbered list your audience can skim in two minutes."},
	{ID: "how-to", Title: "How-to Tutorial", Description: "A step-by-step walkthrough that solves one concrete problem."},
	{ID: "case-study", Title: "Case Study", Description: "A before/after customer story anchored in real numbers."},
}

var newsletterCatalog = []TypeDescriptor{
	{ID: "weekly-digest", Title: "Weekly Digest", Description: "A roundup of the week's wins, reads, and product news."},
	{ID: "product-update", Title: "Product Update", Description: "Announce a launch or new feature with a clear call to action."},
	{ID: "founder-letter", Title: "Founder Letter", Description: "A personal note from the founder, written in first person."},
}

var adCatalog = []TypeDescriptor{
	{ID: "product-promo", Title: "Product Promo", Description: "A single-image post that pitches the product head-on."},
	{ID: "story-teaser", Title: "Story Teaser", Description: "A vertical story frame teasing one feature or stat."},
	{ID: "reel-hook", Title: "Reel Hook", Description: "A short-form video hook built around your keyword."},
}

// Catalog returns the read-only type catalog for a surface. Unknown
// surfaces get the blog catalog so lookups never come back empty.
func Catalog(surface Surface) []TypeDescriptor {
	switch surface {
	case SurfaceNewsletter:
		return newsletterCatalog
	case SurfaceAd:
		return adCatalog
	default:
		return blogCatalog
	}
}

// DefaultType returns the designated default entry for a surface.
func DefaultType(surface Surface) TypeDescriptor {
	return Catalog(surface)[0]
}

// LookupType resolves a type id within a surface's catalog, falling
// back to the default entry when the id is unknown.
func LookupType(surface Surface, typeID string) TypeDescriptor {
	for _, d := range Catalog(surface) {
		if d.ID == typeID {
			return d
		}
	}
	return DefaultType(surface)
}
