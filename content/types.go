package content

// Surface identifies the publishing destination a piece of content is
// shaped for. Each surface has its own catalog and generated structure.
type Surface string

const (
	SurfaceBlog       Surface = "blog"
	SurfaceNewsletter Surface = "newsletter"
	SurfaceAd         Surface = "ad"
)

// Valid reports whether s is a known surface.
func (s Surface) Valid() bool {
	switch s {
	case SurfaceBlog, SurfaceNewsletter, SurfaceAd:
		return true
	}
	return false
}

// BrandInput is what the founder fills in on the first wizard step.
// Website is URL-shaped but not validated beyond being non-empty.
type BrandInput struct {
	Name     string `json:"name"`
	Website  string `json:"website"`
	Keywords string `json:"keywords,omitempty"`
}

// TypeDescriptor describes one entry in a surface's content-type catalog.
type TypeDescriptor struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// HeadingLevel is the heading depth of a blog section.
type HeadingLevel string

const (
	H2 HeadingLevel = "h2"
	H3 HeadingLevel = "h3"
)

// Content is the tagged union of generated content structures. Exactly
// one Content value is live per wizard session; regenerating replaces
// it wholesale.
type Content interface {
	Surface() Surface
	// Clone returns a deep copy, used for the editor's undo snapshot.
	Clone() Content
}

// BlogSection is one body section of a blog article.
type BlogSection struct {
	Heading string       `json:"heading"`
	Level   HeadingLevel `json:"level"`
	Content string       `json:"content"`
}

// InternalLink points at a related page on the brand's own site.
type InternalLink struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// BlogContent is a generated blog article.
type BlogContent struct {
	MetaTitle       string         `json:"metaTitle"`
	MetaDescription string         `json:"metaDescription"`
	Title           string         `json:"title"`
	ReadingTime     string         `json:"readingTime"`
	HeroImage       string         `json:"heroImage"`
	Sections        []BlogSection  `json:"sections"`
	Callout         string         `json:"callout,omitempty"`
	Quote           string         `json:"quote,omitempty"`
	CTA             string         `json:"cta"`
	CTAURL          string         `json:"ctaUrl"`
	InternalLinks   []InternalLink `json:"internalLinks"`
}

func (*BlogContent) Surface() Surface { return SurfaceBlog }

func (b *BlogContent) Clone() Content {
	c := *b
	c.Sections = append([]BlogSection(nil), b.Sections...)
	c.InternalLinks = append([]InternalLink(nil), b.InternalLinks...)
	return &c
}

// NewsletterSection is one block of a newsletter body.
type NewsletterSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NewsletterContent is a generated email newsletter.
type NewsletterContent struct {
	Subject   string              `json:"subject"`
	Preheader string              `json:"preheader"`
	Title     string              `json:"title"`
	Intro     string              `json:"intro"`
	Sections  []NewsletterSection `json:"sections"`
	CTA       string              `json:"cta"`
	CTAURL    string              `json:"ctaUrl"`
}

func (*NewsletterContent) Surface() Surface { return SurfaceNewsletter }

func (n *NewsletterContent) Clone() Content {
	c := *n
	c.Sections = append([]NewsletterSection(nil), n.Sections...)
	return &c
}

// AdContent is a generated social post or reel.
type AdContent struct {
	Caption  string `json:"caption"`
	CTA      string `json:"cta"`
	VideoURL string `json:"videoUrl,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

func (*AdContent) Surface() Surface { return SurfaceAd }

func (a *AdContent) Clone() Content {
	c := *a
	return &c
}
