package generation

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/socialscribe/internal/server/models"
)

// Guidelines holds the one-line style rule given to the model per platform.
var Guidelines = map[models.Platform]string{
	models.PlatformTwitter:   "Keep under 280 characters, use hashtags wisely",
	models.PlatformLinkedIn:  "Professional tone, can be longer (up to 3000 chars)",
	models.PlatformInstagram: "Engaging, visual-focused, under 2200 characters, use emojis",
	models.PlatformFacebook:  "Conversational, can include questions, under 63206 characters",
}

// BuildPrompt renders the instruction sent to the model for b.
func BuildPrompt(b models.Brief) string {
	var sb strings.Builder

	sb.WriteString("You are a professional social media content creator.\n\n")
	fmt.Fprintf(&sb, "Generate a %s social media post for %s about:\n", strings.ToLower(string(b.Tone)), b.Platform)
	fmt.Fprintf(&sb, "\"%s\"\n\n", b.Topic)

	if c := strings.TrimSpace(b.Constraints); c != "" {
		fmt.Fprintf(&sb, "Additional requirements: %s\n\n", c)
	}

	if g, ok := Guidelines[b.Platform]; ok {
		fmt.Fprintf(&sb, "Guidelines for %s:\n%s\n\n", b.Platform, g)
	}

	sb.WriteString("IMPORTANT: Write ONLY the post content. No explanations, quotes, or meta-commentary.")

	return sb.String()
}
