package content

import (
	"fmt"
	"strconv"
	"strings"
)

// UpdateField replaces the scalar at a dotted path inside c, leaving
// every other field untouched. Paths follow the JSON field names, with
// numeric segments indexing into section/link slices, e.g. "title",
// "caption", "sections.1.content", "internalLinks.0.url". Unknown
// paths or out-of-range indexes return an error without mutating c.
func UpdateField(c Content, path, value string) error {
	parts := strings.Split(path, ".")
	switch v := c.(type) {
	case *BlogContent:
		return updateBlogField(v, parts, value)
	case *NewsletterContent:
		return updateNewsletterField(v, parts, value)
	case *AdContent:
		return updateAdField(v, parts, value)
	default:
		return fmt.Errorf("unsupported content type %T", c)
	}
}

func badPath(parts []string) error {
	return fmt.Errorf("unknown field path %q", strings.Join(parts, "."))
}

func sliceIndex(parts []string, length int) (int, error) {
	i, err := strconv.Atoi(parts[1])
	if err != nil || i < 0 || i >= length {
		return 0, fmt.Errorf("field path %q: index out of range", strings.Join(parts, "."))
	}
	return i, nil
}

func updateBlogField(b *BlogContent, parts []string, value string) error {
	if len(parts) == 1 {
		switch parts[0] {
		case "metaTitle":
			b.MetaTitle = value
		case "metaDescription":
			b.MetaDescription = value
		case "title":
			b.Title = value
		case "readingTime":
			b.ReadingTime = value
		case "heroImage":
			b.HeroImage = value
		case "callout":
			b.Callout = value
		case "quote":
			b.Quote = value
		case "cta":
			b.CTA = value
		case "ctaUrl":
			b.CTAURL = value
		default:
			return badPath(parts)
		}
		return nil
	}
	if len(parts) == 3 && parts[0] == "sections" {
		i, err := sliceIndex(parts, len(b.Sections))
		if err != nil {
			return err
		}
		switch parts[2] {
		case "heading":
			b.Sections[i].Heading = value
		case "level":
			if value != string(H2) && value != string(H3) {
				return fmt.Errorf("invalid heading level %q", value)
			}
			b.Sections[i].Level = HeadingLevel(value)
		case "content":
			b.Sections[i].Content = value
		default:
			return badPath(parts)
		}
		return nil
	}
	if len(parts) == 3 && parts[0] == "internalLinks" {
		i, err := sliceIndex(parts, len(b.InternalLinks))
		if err != nil {
			return err
		}
		switch parts[2] {
		case "text":
			b.InternalLinks[i].Text = value
		case "url":
			b.InternalLinks[i].URL = value
		default:
			return badPath(parts)
		}
		return nil
	}
	return badPath(parts)
}

func updateNewsletterField(n *NewsletterContent, parts []string, value string) error {
	if len(parts) == 1 {
		switch parts[0] {
		case "subject":
			n.Subject = value
		case "preheader":
			n.Preheader = value
		case "title":
			n.Title = value
		case "intro":
			n.Intro = value
		case "cta":
			n.CTA = value
		case "ctaUrl":
			n.CTAURL = value
		default:
			return badPath(parts)
		}
		return nil
	}
	if len(parts) == 3 && parts[0] == "sections" {
		i, err := sliceIndex(parts, len(n.Sections))
		if err != nil {
			return err
		}
		switch parts[2] {
		case "title":
			n.Sections[i].Title = value
		case "content":
			n.Sections[i].Content = value
		default:
			return badPath(parts)
		}
		return nil
	}
	return badPath(parts)
}

func updateAdField(a *AdContent, parts []string, value string) error {
	if len(parts) != 1 {
		return badPath(parts)
	}
	switch parts[0] {
	case "caption":
		a.Caption = value
	case "cta":
		a.CTA = value
	case "videoUrl":
		a.VideoURL = value
	case "imageUrl":
		a.ImageURL = value
	default:
		return badPath(parts)
	}
	return nil
}
