package generation

import (
	"fmt"
	"strings"

	"github.com/contentforge/backend/internal/application/content"
)

const systemPrompt = `You are an email marketing copywriter. Reply with JSON only, shaped as
{"emails":[{"subject":"...","body":"...","focus_topic":"..."}]}.
Each email focuses on one benefit, is written at a 5th grade reading level and ends with a call to action.`

func buildPrompt(req content.GenerationRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a sequence of %d marketing emails for the page %s.\n", req.ItemCount, req.SourceURL)
	if req.Page.Title != "" {
		fmt.Fprintf(&b, "Page title: %s\n", req.Page.Title)
	}
	if req.Page.Description != "" {
		fmt.Fprintf(&b, "Page description: %s\n", req.Page.Description)
	}
	writeList(&b, "Benefits", req.Page.Benefits)
	writeList(&b, "Features", req.Page.Features)
	writeField(&b, "Tone", req.Tone)
	writeField(&b, "Industry", req.Industry)
	writeField(&b, "Target audience", req.TargetAudience)
	if req.ReferenceLink != "" {
		fmt.Fprintf(&b, "Every email should link to %s.\n", req.ReferenceLink)
	}
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, value)
}

func writeList(b *strings.Builder, label string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(b, "%s:\n", label)
	for _, v := range values {
		fmt.Fprintf(b, "- %s\n", v)
	}
}
