package content

import (
	"fmt"
	"strings"
)

// Generate maps a (typeID, brand) pair to a fully populated Content
// value by interpolating the brand into fixed templates. It is pure and
// synchronous; the wizard layer owns the simulated generation latency.
// Unknown type ids resolve to the surface's default catalog entry, so
// Generate never fails and never returns empty content.
func Generate(surface Surface, typeID string, brand BrandInput) Content {
	desc := LookupType(surface, typeID)
	switch surface {
	case SurfaceNewsletter:
		return generateNewsletter(desc.ID, brand)
	case SurfaceAd:
		return generateAd(desc.ID, brand)
	default:
		return generateBlog(desc.ID, brand)
	}
}

// primaryKeyword picks the first comma-separated keyword, or a stock
// fallback when the founder left the field blank.
func primaryKeyword(brand BrandInput) string {
	kw := strings.TrimSpace(brand.Keywords)
	if i := strings.IndexByte(kw, ','); i >= 0 {
		kw = strings.TrimSpace(kw[:i])
	}
	if kw == "" {
		return "startup growth"
	}
	return kw
}

func siteURL(brand BrandInput, path string) string {
	return strings.TrimRight(brand.Website, "/") + path
}

func generateBlog(typeID string, brand BrandInput) *BlogContent {
	kw := primaryKeyword(brand)
	c := &BlogContent{
		MetaTitle:       fmt.Sprintf("%s | The Complete Guide to %s in 2024", brand.Name, kw),
		MetaDescription: fmt.Sprintf("Everything %s customers need to know about %s, from first principles to advanced tactics.", brand.Name, kw),
		Title:           fmt.Sprintf("The Complete Guide to %s in 2024", kw),
		ReadingTime:     "8 min read",
		HeroImage:       "https://images.foundrly.app/hero/guide.jpg",
		CTA:             fmt.Sprintf("See how %s does it", brand.Name),
		CTAURL:          brand.Website,
		Callout:         fmt.Sprintf("Key takeaway: %s compounds. Teams that invest early win the next quarter by default.", kw),
		Quote:           fmt.Sprintf("\"Before %s, we were guessing. Now every decision starts from data.\"", brand.Name),
		InternalLinks: []InternalLink{
			{Text: fmt.Sprintf("How %s works", brand.Name), URL: siteURL(brand, "/product")},
			{Text: "More from the blog", URL: siteURL(brand, "/blog")},
		},
	}
	switch typeID {
	case "listicle":
		c.Title = fmt.Sprintf("7 %s Moves %s Customers Swear By", kw, brand.Name)
		c.MetaTitle = fmt.Sprintf("%s | 7 %s Moves That Actually Work", brand.Name, kw)
		c.ReadingTime = "5 min read"
		c.Sections = []BlogSection{
			{Heading: "1. Start before you feel ready", Level: H2, Content: fmt.Sprintf("The teams winning at %s shipped their first version in a week, not a quarter.", kw)},
			{Heading: "2. Measure one number", Level: H2, Content: fmt.Sprintf("Pick the single metric that proves %s is working and ignore the rest.", kw)},
			{Heading: "3. Let your customers write the roadmap", Level: H2, Content: fmt.Sprintf("Every feature at %s starts as a support conversation.", brand.Name)},
		}
	case "how-to":
		c.Title = fmt.Sprintf("How to Get Started with %s (Step by Step)", kw)
		c.MetaTitle = fmt.Sprintf("%s | Getting Started with %s", brand.Name, kw)
		c.Sections = []BlogSection{
			{Heading: "Step 1: Audit where you are", Level: H2, Content: fmt.Sprintf("Before changing anything, write down how %s handles %s today.", brand.Name, kw)},
			{Heading: "Step 2: Pick one workflow", Level: H2, Content: "Automate the smallest painful thing first. Momentum beats scope."},
			{Heading: "Common pitfalls", Level: H3, Content: fmt.Sprintf("Most teams over-invest in tooling before they understand their %s funnel.", kw)},
		}
	case "case-study":
		c.Title = fmt.Sprintf("How %s Turned %s Into a Growth Engine", brand.Name, kw)
		c.MetaTitle = fmt.Sprintf("%s Case Study: %s", brand.Name, kw)
		c.Sections = []BlogSection{
			{Heading: "The starting point", Level: H2, Content: fmt.Sprintf("Six months ago, %s had no repeatable %s motion.", brand.Name, kw)},
			{Heading: "What changed", Level: H2, Content: "One owner, one metric, one weekly ritual. That's the whole playbook."},
			{Heading: "The results", Level: H2, Content: fmt.Sprintf("Visit %s to see the numbers behind the story.", brand.Website)},
		}
	default: // seo-longform
		c.Sections = []BlogSection{
			{Heading: fmt.Sprintf("What is %s?", kw), Level: H2, Content: fmt.Sprintf("%s is the discipline of turning attention into durable demand. This guide covers the full playbook %s uses.", kw, brand.Name)},
			{Heading: "Why it matters now", Level: H2, Content: fmt.Sprintf("Founders who treat %s as an afterthought pay for it twice: once in missed pipeline and again in hiring.", kw)},
			{Heading: "The framework", Level: H2, Content: fmt.Sprintf("Start narrow, publish weekly, and let %s compound. Link everything back to %s.", kw, brand.Website)},
			{Heading: "Tooling", Level: H3, Content: fmt.Sprintf("%s keeps the whole loop in one place, from draft to scheduled post.", brand.Name)},
		}
	}
	return c
}

func generateNewsletter(typeID string, brand BrandInput) *NewsletterContent {
	kw := primaryKeyword(brand)
	c := &NewsletterContent{
		Subject:   fmt.Sprintf("This week at %s: %s wins worth stealing", brand.Name, kw),
		Preheader: fmt.Sprintf("Three %s ideas you can ship before Friday.", kw),
		Title:     fmt.Sprintf("The %s Weekly", brand.Name),
		Intro:     fmt.Sprintf("Hey there, here's what the %s team has been up to, plus the %s tactics we can't stop talking about.", brand.Name, kw),
		CTA:       "Read the full story",
		CTAURL:    siteURL(brand, "/blog"),
		Sections: []NewsletterSection{
			{Title: "What shipped", Content: fmt.Sprintf("A faster way to go from idea to published post, live now at %s.", brand.Website)},
			{Title: "Worth your time", Content: fmt.Sprintf("One sharp read on %s that changed how we plan the quarter.", kw)},
			{Title: "One number", Content: "Teams publishing weekly grow pipeline 2.3x faster than teams publishing monthly."},
		},
	}
	switch typeID {
	case "product-update":
		c.Subject = fmt.Sprintf("%s just got better", brand.Name)
		c.Preheader = "A new release, live today."
		c.Intro = fmt.Sprintf("We shipped something big. Here's what's new at %s and why it matters for your %s workflow.", brand.Name, kw)
		c.CTA = "See what's new"
		c.CTAURL = siteURL(brand, "/changelog")
	case "founder-letter":
		c.Subject = fmt.Sprintf("A note from the %s founder", brand.Name)
		c.Preheader = "Why we're building this, in plain words."
		c.Intro = fmt.Sprintf("When we started %s, %s felt like a problem only big teams could afford to solve. We're changing that.", brand.Name, kw)
		c.Sections = []NewsletterSection{
			{Title: "Where we started", Content: "A spreadsheet, a group chat, and a lot of unscheduled posts."},
			{Title: "Where we're going", Content: fmt.Sprintf("Every founder gets a content engine. Follow along at %s.", brand.Website)},
		}
	}
	return c
}

func generateAd(typeID string, brand BrandInput) *AdContent {
	kw := primaryKeyword(brand)
	c := &AdContent{
		Caption: fmt.Sprintf("Meet %s, the fastest way to turn %s into momentum. Your next customer is already scrolling. %s", brand.Name, kw, brand.Website),
		CTA:     "Learn More",
	}
	switch typeID {
	case "story-teaser":
		c.Caption = fmt.Sprintf("24 hours. One %s experiment. Swipe up to see what %s found.", kw, brand.Name)
		c.CTA = "Swipe Up"
		c.VideoURL = "https://media.foundrly.app/stories/teaser.mp4"
	case "reel-hook":
		c.Caption = fmt.Sprintf("POV: you finally fixed your %s problem. %s made it a Tuesday.", kw, brand.Name)
		c.CTA = "Watch Now"
		c.VideoURL = "https://media.foundrly.app/reels/hook.mp4"
	default: // product-promo
		c.ImageURL = "https://media.foundrly.app/posts/promo.jpg"
	}
	return c
}
