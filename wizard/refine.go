package wizard

import (
	"strings"

	"github.com/foundrly/foundrly/content"
)

// Refinement is keyword dispatch, not language understanding: an
// ordered rule list matched case-insensitively against the user's
// instruction, first match wins, with an acknowledge-only fallback.
// This naive behavior is the shipped product behavior for the wizard
// chat; do not swap in a real model here.

type refineRule struct {
	keywords []string
	reply    string
	apply    func(content.Content)
}

var refineRules = []refineRule{
	{
		keywords: []string{"emoji"},
		reply:    "Done! I sprinkled in some emojis to give it more personality. ✨",
		apply:    appendEmojis,
	},
	{
		keywords: []string{"shorter", "punchier", "bold"},
		reply:    "Tightened it up. The opening lands harder now.",
		apply:    punchierOpening,
	},
}

const refineAckReply = "Got it, I've noted that. Anything else you'd like me to adjust?"

// applyRefinement mutates c per the first matching rule and returns the
// assistant's reply. Unmatched instructions leave c untouched.
func applyRefinement(instruction string, c content.Content) string {
	lower := strings.ToLower(instruction)
	for _, rule := range refineRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				if c != nil {
					rule.apply(c)
				}
				return rule.reply
			}
		}
	}
	return refineAckReply
}

// leadField is where refinements land per surface: the ad caption, the
// newsletter intro, or the first blog section.

func appendEmojis(c content.Content) {
	switch v := c.(type) {
	case *content.AdContent:
		v.Caption += " ✨🚀🔥"
	case *content.NewsletterContent:
		v.Intro += " ✨🚀"
	case *content.BlogContent:
		if len(v.Sections) > 0 {
			v.Sections[0].Content += " ✨🚀"
		}
	}
}

const punchyOpener = "Let's cut to the chase. "

func punchierOpening(c content.Content) {
	switch v := c.(type) {
	case *content.AdContent:
		v.Caption = punchyOpener + v.Caption
	case *content.NewsletterContent:
		v.Intro = punchyOpener + v.Intro
	case *content.BlogContent:
		if len(v.Sections) > 0 {
			v.Sections[0].Content = punchyOpener + v.Sections[0].Content
		}
	}
}
