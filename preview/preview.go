// Package preview renders generated content into platform-shaped HTML
// mocks: an article page for blogs, an email client shell for
// newsletters, and social post chrome for ads. Rendering is pure; no
// wizard state is touched.
package preview

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/foundrly/foundrly/content"
)

// CaptionLimit is the visible caption length in the social chrome.
// Visual parity with the real feed depends on this exact cutoff.
const CaptionLimit = 100

// TruncateCaption cuts a caption to CaptionLimit runes plus an
// ellipsis, matching the platform's collapsed-caption display.
func TruncateCaption(caption string) string {
	runes := []rune(caption)
	if len(runes) <= CaptionLimit {
		return caption
	}
	return string(runes[:CaptionLimit]) + "…"
}

// Render returns the platform mock for c.
func Render(c content.Content) (string, error) {
	switch v := c.(type) {
	case *content.BlogContent:
		return renderBlog(v)
	case *content.NewsletterContent:
		return renderNewsletter(v), nil
	case *content.AdContent:
		return renderAd(v), nil
	default:
		return "", fmt.Errorf("unsupported content type %T", c)
	}
}

// renderBlog builds markdown from the structured sections and converts
// it with goldmark, then wraps the result in an article shell.
func renderBlog(b *content.BlogContent) (string, error) {
	var md strings.Builder
	md.WriteString("# " + b.Title + "\n\n")
	for _, s := range b.Sections {
		prefix := "## "
		if s.Level == content.H3 {
			prefix = "### "
		}
		md.WriteString(prefix + s.Heading + "\n\n")
		md.WriteString(s.Content + "\n\n")
	}
	if b.Quote != "" {
		md.WriteString("> " + b.Quote + "\n\n")
	}

	var body bytes.Buffer
	if err := goldmark.Convert([]byte(md.String()), &body); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(`<article class="blog-preview">`)
	sb.WriteString(fmt.Sprintf(`<div class="meta"><span class="reading-time">%s</span></div>`, html.EscapeString(b.ReadingTime)))
	if b.HeroImage != "" {
		sb.WriteString(fmt.Sprintf(`<img class="hero" src="%s" alt="">`, html.EscapeString(b.HeroImage)))
	}
	sb.WriteString(body.String())
	if b.Callout != "" {
		sb.WriteString(fmt.Sprintf(`<aside class="callout">%s</aside>`, html.EscapeString(b.Callout)))
	}
	sb.WriteString(fmt.Sprintf(`<a class="cta" href="%s">%s</a>`, html.EscapeString(b.CTAURL), html.EscapeString(b.CTA)))
	if len(b.InternalLinks) > 0 {
		sb.WriteString(`<nav class="related"><ul>`)
		for _, l := range b.InternalLinks {
			sb.WriteString(fmt.Sprintf(`<li><a href="%s">%s</a></li>`, html.EscapeString(l.URL), html.EscapeString(l.Text)))
		}
		sb.WriteString(`</ul></nav>`)
	}
	sb.WriteString(`</article>`)
	return sb.String(), nil
}

// renderNewsletter wraps the content in an email-client shell with the
// subject and preheader where the inbox list would show them.
func renderNewsletter(n *content.NewsletterContent) string {
	var sb strings.Builder
	sb.WriteString(`<div class="email-preview">`)
	sb.WriteString(`<div class="email-chrome">`)
	sb.WriteString(fmt.Sprintf(`<div class="subject">%s</div>`, html.EscapeString(n.Subject)))
	sb.WriteString(fmt.Sprintf(`<div class="preheader">%s</div>`, html.EscapeString(n.Preheader)))
	sb.WriteString(`</div>`)
	sb.WriteString(`<div class="email-body">`)
	sb.WriteString(fmt.Sprintf(`<h1>%s</h1>`, html.EscapeString(n.Title)))
	sb.WriteString(fmt.Sprintf(`<p class="intro">%s</p>`, html.EscapeString(n.Intro)))
	for _, s := range n.Sections {
		sb.WriteString(fmt.Sprintf(`<h2>%s</h2><p>%s</p>`, html.EscapeString(s.Title), html.EscapeString(s.Content)))
	}
	sb.WriteString(fmt.Sprintf(`<a class="cta" href="%s">%s</a>`, html.EscapeString(n.CTAURL), html.EscapeString(n.CTA)))
	sb.WriteString(`</div></div>`)
	return sb.String()
}

// renderAd draws the social post chrome with the collapsed caption.
func renderAd(a *content.AdContent) string {
	var sb strings.Builder
	sb.WriteString(`<div class="ad-preview">`)
	if a.VideoURL != "" {
		sb.WriteString(fmt.Sprintf(`<video class="media" src="%s"></video>`, html.EscapeString(a.VideoURL)))
	} else if a.ImageURL != "" {
		sb.WriteString(fmt.Sprintf(`<img class="media" src="%s" alt="">`, html.EscapeString(a.ImageURL)))
	}
	sb.WriteString(fmt.Sprintf(`<p class="caption">%s</p>`, html.EscapeString(TruncateCaption(a.Caption))))
	sb.WriteString(fmt.Sprintf(`<button class="cta">%s</button>`, html.EscapeString(a.CTA)))
	sb.WriteString(`</div>`)
	return sb.String()
}
