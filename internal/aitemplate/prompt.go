package aitemplate

import (
	"fmt"
	"strings"
)

// Categories are the moods a generated template can be asked for.
var Categories = []string{
	"teen", "adult", "classic", "fun", "elegant",
	"romantic", "birthday", "apology", "thank-you", "celebration",
}

// ValidCategory reports whether c is one of Categories.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

var categoryHints = map[string]string{
	"romantic":    "romantic palette of pinks, reds and purples; hearts; warm typography; floating hearts and soft fades",
	"teen":        "bright blues and purples with neon accents; playful emojis; bouncing and rotating effects",
	"adult":       "calm, mature palette; balanced layout; restrained animation",
	"classic":     "ivory, gold and dark green; serif headings; gentle classic animation",
	"fun":         "vibrant colours; playful patterns; energetic animation",
	"elegant":     "muted premium palette; clean lines; spacious layout; graceful motion",
	"birthday":    "balloons, confetti and cake; bright festive colours; falling confetti",
	"apology":     "soft pastels and light blues; flowers or doves; calm subtle motion",
	"thank-you":   "warm yellows, oranges and greens; flowers and hearts; gentle motion",
	"celebration": "bright colours with gold accents; stars, sparkles and ribbons; firework-like motion",
}

// SystemPrompt fixes the output contract every provider must follow.
const SystemPrompt = `You build single-file greeting card markup with HTML and TailwindCSS utility classes.

Output rules:
- Only HTML with Tailwind classes. No <style>, no <script>, no external CSS.
- No event handler attributes and no javascript: URLs. Animate with Tailwind utilities only.
- Mobile first, min-h-screen, content centred, readable contrast.
- The markup must work inside a <div>; do not emit <html>, <head> or <body>.

Editable text:
- Every piece of message text carries data-editable="key" with a camelCase key,
  for example recipientName, subtitle, mainMessage, footerMessage.
- Decorative icons and background shapes are not editable.
- Near the top of the main container add exactly one element
  <p class="text-sm opacity-70" data-creator-name>Hazırlayan: {{CREATOR_NAME}}</p>
  which must not carry data-editable.

All visible text is Turkish. Reply with the markup only.`

// GeneratePrompt returns the user prompt for a new template.
func GeneratePrompt(category, userPrompt string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Category: %s\n", category)
	if hint, ok := categoryHints[category]; ok {
		fmt.Fprintf(&b, "Design direction: %s\n", hint)
	}
	fmt.Fprintf(&b, "\nRequest from the user:\n%s\n", strings.TrimSpace(userPrompt))
	return b.String()
}

// RefinePrompt returns the user prompt that asks for a change to existing
// markup while keeping its editable keys.
func RefinePrompt(currentMarkup, change string) string {
	return fmt.Sprintf(`Here is the current template:

%s

Apply this change and return the complete updated markup:
%s

Keep every existing data-editable key and the data-creator-name element.`,
		currentMarkup, strings.TrimSpace(change))
}
