package classifier

import (
	"strings"

	"github.com/cyberhelp-labs/triage/internal/engine/taxonomy"
)

// genericSocialTerms count toward the social gate alongside platform
// detections.
var genericSocialTerms = []string{
	"profile", "account", "imperson", "fake profile", "hack", "obscene",
}

// socialSignalCount tallies social markers: one per detected platform plus
// one per generic term present. Platforms are detected through their variant
// lists, not bare names, so the single-letter platform "X" only counts when
// clearly referenced.
func socialSignalCount(lower string) int {
	n := 0
	for _, v := range taxonomy.PlatformVariants() {
		for _, term := range v.Terms {
			if strings.Contains(lower, term) {
				n++
				break
			}
		}
	}
	for _, term := range genericSocialTerms {
		if strings.Contains(lower, term) {
			n++
		}
	}
	return n
}

// bestSocialSubcategory resolves a platform and an issue from the text,
// inferring whichever half is missing. The variant lists are ordered and the
// first match wins, so detection is deterministic.
func bestSocialSubcategory(lower string) string {
	platform := detectVariant(lower, taxonomy.PlatformVariants())
	issue := detectVariant(lower, taxonomy.IssueVariants())

	if platform != "" && issue != "" {
		return taxonomy.SocialKey(platform, issue)
	}

	if platform != "" {
		switch {
		case containsAny(lower, "hack", "hacked", "can't login", "lost access"):
			return taxonomy.SocialKey(platform, "Hack")
		case containsAny(lower, "fake", "imperson", "pretend"):
			return taxonomy.SocialKey(platform, "Impersonation")
		case containsAny(lower, "obscene", "morphed", "nude"):
			return taxonomy.SocialKey(platform, "Obscene Content")
		default:
			return taxonomy.SocialKey(platform, "Fake Account")
		}
	}

	if issue != "" {
		switch {
		case containsAny(lower, "email", "@gmail", "@"):
			return taxonomy.SocialKey("Gmail", issue)
		case containsAny(lower, "message", "contact"):
			return taxonomy.SocialKey("WhatsApp", issue)
		default:
			return taxonomy.SocialKey("Facebook", issue)
		}
	}

	if containsAny(lower, "call", "calling", "phone", "called") {
		return taxonomy.FraudCallImpersonation
	}
	return taxonomy.SocialKey("Facebook", "Impersonation")
}

func detectVariant(lower string, variants []taxonomy.Variant) string {
	for _, v := range variants {
		for _, term := range v.Terms {
			if strings.Contains(lower, term) {
				return v.Name
			}
		}
	}
	return ""
}

func containsAny(lower string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
