package brandsight

import (
	"fmt"
	"strings"
)

// maxPromptContent bounds how much page Markdown is included in the prompt.
const maxPromptContent = 6000

// ProfilePrompt builds the user prompt shared by all Profiler backends.
// It embeds the real site data so the model assigns roles to colors and
// fonts that actually appear on the site instead of inventing them.
func ProfilePrompt(req ProfileRequest) string {
	sig := req.Signal
	language := req.Language
	if language == "" {
		language = "English"
	}

	var sb strings.Builder
	sb.WriteString("You are a world-class brand identity expert.\n\n")

	sb.WriteString("<site>\n")
	fmt.Fprintf(&sb, "<url>%s</url>\n", sig.BaseURL)
	fmt.Fprintf(&sb, "<title>%s</title>\n", sig.Title)
	fmt.Fprintf(&sb, "<description>%s</description>\n", sig.Description)
	fmt.Fprintf(&sb, "<colors>%s</colors>\n", orNone(strings.Join(sig.Colors, ", ")))
	fmt.Fprintf(&sb, "<fonts>%s</fonts>\n", orNone(strings.Join(sig.Fonts, ", ")))
	fmt.Fprintf(&sb, "<headings>%s</headings>\n", orNone(strings.Join(sig.Headings, " | ")))
	fmt.Fprintf(&sb, "<bodyText>%s</bodyText>\n", sig.BodyExcerpt)
	if content := truncateRunes(req.Content, maxPromptContent); content != "" {
		fmt.Fprintf(&sb, "<content>\n%s\n</content>\n", content)
	}
	sb.WriteString("</site>\n\n")

	sb.WriteString("Task: from the real site data above, compose the complete brand DNA.\n")
	sb.WriteString("Use the ACTUAL colors, fonts, and content from the site; do not invent them. ")
	sb.WriteString("Distribute the discovered colors across roles (primary, secondary, accent, background, text); ")
	sb.WriteString("prefer vivid, distinguishable colors over plain white as the primary when the palette offers them.\n")
	fmt.Fprintf(&sb, "Write all prose fields in %s. ", language)
	sb.WriteString("The logoPrompt and imageStylePrompt fields are prompts for an image generation model and must be written in English.\n\n")

	sb.WriteString("Return ONLY a valid JSON object with exactly this structure, no markdown fences:\n")
	sb.WriteString(`{
  "businessName": "the company's real name",
  "tagline": "the company's real tagline or motto",
  "brandSummary": "what the business does, 2-3 sentences",
  "toneOfVoice": ["keyword1", "keyword2"],
  "colors": {
    "primary": "#hex", "secondary": "#hex", "accent": "#hex",
    "background": "#hex", "text": "#hex"
  },
  "typography": {
    "headingFont": "real heading font or closest Google Font",
    "bodyFont": "real body font or closest Google Font",
    "description": "typography style description"
  },
  "logoPrompt": "detailed prompt for generating a vector logo for this brand",
  "imageStylePrompt": "detailed prompt for a brand photography style"
}`)
	return sb.String()
}

func orNone(s string) string {
	if s == "" {
		return "(none found)"
	}
	return s
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
