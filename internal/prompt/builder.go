// Package prompt assembles provider-agnostic system and user prompts from a
// marketing brief. Build is pure: equal inputs give byte-identical prompts.
package prompt

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/adcopy-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/adcopy-backend/internal/domain"
)

// MaxExamples is how many history examples are quoted in a prompt.
const MaxExamples = 3

// Input is everything a prompt depends on.
type Input struct {
	ProductName    string
	KeyBenefits    []string
	TargetAudience string
	Tone           domain.Tone
	Channel        domain.Channel
	Model          string
	BrandContext   string
	// Examples are rendered history items, newest first. Only the first
	// MaxExamples are used.
	Examples []string
}

// Build returns the system and user prompts for one channel.
func Build(in Input) llm.Prompt {
	return llm.Prompt{
		System: buildSystem(in),
		User:   buildUser(in),
	}
}

func buildSystem(in Input) string {
	model := in.Model
	if model == "" {
		model = llm.DefaultModel
	}

	var b strings.Builder

	b.WriteString("🎨 You are a master storyteller and content strategist with years of experience creating viral content that resonates with audiences and drives results.\n\n")
	b.WriteString("🎯 YOUR MISSION: Transform product features into compelling stories that connect emotionally with your audience while maintaining authentic brand voice.\n\n")
	b.WriteString("📊 CONTENT BRIEF:\n")
	fmt.Fprintf(&b, "• Product Focus: \"%s\" - the hero of our story\n", in.ProductName)
	fmt.Fprintf(&b, "• Key Strengths: %s\n", benefitsNarrative(in.KeyBenefits))
	fmt.Fprintf(&b, "• Our Audience: %s\n", in.TargetAudience)
	fmt.Fprintf(&b, "• Brand Voice: %s\n", toneDescription(in.Tone))
	fmt.Fprintf(&b, "• Platform: %s (optimize for this environment)", in.Channel)

	if in.BrandContext != "" {
		b.WriteString("\n\n🧬 BRAND DNA & PERSONALITY:\n")
		b.WriteString(in.BrandContext)
	}

	if examples := limitExamples(in.Examples); len(examples) > 0 {
		b.WriteString("\n\n📚 BRAND VOICE REFERENCE (maintain consistency but stay fresh):\n")
		blocks := make([]string, len(examples))
		for i, ex := range examples {
			blocks[i] = fmt.Sprintf("Example %d:\n%s", i+1, ex)
		}
		b.WriteString(strings.Join(blocks, "\n\n---\n\n"))
		b.WriteString("\n\n💡 IMPORTANT: Use these examples to understand the brand voice and style, but create completely NEW content. Fresh ideas, same authentic voice.")
	}

	b.WriteString("\n\nIMPORTANT: You must respond ONLY with a valid JSON object in this exact format:\n")
	b.WriteString(schemaTemplate(model, in.Channel, in.Tone))
	b.WriteString("\n\n")
	b.WriteString("Word Limit Requirements:\n- Use platform-appropriate word limits: ")
	b.WriteString(wordLimits(in.Channel))
	b.WriteString("\n\n\n")
	b.WriteString(guidelinesFor(in.Channel))
	b.WriteString("\n\nGeneral Guidelines:\n")
	fmt.Fprintf(&b, "1. Create content that resonates with the target audience: %s\n", in.TargetAudience)
	fmt.Fprintf(&b, "2. Use a %s tone throughout the content\n", in.Tone)
	fmt.Fprintf(&b, "3. Highlight the product benefits: %s\n", strings.Join(in.KeyBenefits, ", "))
	b.WriteString("4. Make the content actionable and engaging\n")
	b.WriteString("5. Generate a catchy title that includes emojis\n")
	b.WriteString("6. Create compelling body text that drives engagement\n")
	b.WriteString("7. Include a clear call-to-action (CTA)\n")
	b.WriteString("8. Follow the word limits specified above\n\n")
	b.WriteString("Respond ONLY with the JSON object, no additional text or explanations.")

	return b.String()
}

func schemaTemplate(model string, channel domain.Channel, tone domain.Tone) string {
	return `{
  "_id": "generated_id_here",
  "requestId": "request_id_here",
  "model": "` + model + `",
  "contentType": "ad_copy",
  "content": {
    "channel": "` + string(channel) + `",
    "language": "en",
    "tone": "` + string(tone) + `",
    "title": "Your catchy title here",
    "body": "Your main content body here",
    "cta": "Your call to action here",
    "meta": {
      "hashtags": ["#relevant", "#hashtags"],
      "emojis": ["🌿", "✨"]
    }
  },
  "status": "draft",
  "createdAt": "2024-01-01T00:00:00.000Z"
}`
}

func buildUser(in Input) string {
	var first, rest string
	if len(in.KeyBenefits) > 0 {
		first = strings.ToLower(in.KeyBenefits[0])
		rest = strings.ToLower(strings.Join(in.KeyBenefits[1:], " and "))
	}

	var b strings.Builder

	b.WriteString("🎯 CONTENT CREATION MISSION:\n\n")
	fmt.Fprintf(&b, "Create captivating marketing content that tells the story of \"%s\" - a product that transforms lives through %s.\n\n",
		in.ProductName, benefitsStory(in.KeyBenefits))

	b.WriteString("📖 THE STORY WE'RE TELLING:\n")
	fmt.Fprintf(&b, "Imagine %s discovering a solution that finally delivers on its promises. ", audienceStory(in.TargetAudience))
	fmt.Fprintf(&b, "This isn't just another product - it's %s, designed specifically for people who value %s and deserve %s.\n\n",
		in.ProductName, first, rest)

	b.WriteString("🎨 CONTENT STYLE & VOICE:\n")
	fmt.Fprintf(&b, "Write in a %s tone that feels authentic and relatable. ", in.Tone)
	b.WriteString("Think of yourself as a trusted friend sharing an exciting discovery, not a pushy salesperson.\n\n")

	b.WriteString("📱 PLATFORM OPTIMIZATION:\n")
	fmt.Fprintf(&b, "This content will live on %s, so craft it to feel native to these platforms while maintaining our brand voice.\n\n",
		channelStory(in.Channel))

	b.WriteString("✨ THE MAGIC FORMULA:\n")
	fmt.Fprintf(&b, "1. Hook them with curiosity about %s\n", in.ProductName)
	fmt.Fprintf(&b, "2. Connect emotionally with %s's needs\n", in.TargetAudience)
	b.WriteString("3. Showcase benefits through storytelling, not just listing\n")
	b.WriteString("4. Include a compelling call-to-action that feels natural\n\n")
	b.WriteString("Remember: Great content doesn't sell products - it tells stories that people want to be part of.\n\n")
	b.WriteString("Respond ONLY with the JSON object in the exact format specified in the system prompt.")

	return b.String()
}

func limitExamples(examples []string) []string {
	if len(examples) > MaxExamples {
		return examples[:MaxExamples]
	}
	return examples
}

// benefitsNarrative phrases the benefits for the brief section.
func benefitsNarrative(benefits []string) string {
	switch len(benefits) {
	case 0:
		return ""
	case 1:
		return "The power of " + strings.ToLower(benefits[0])
	case 2:
		return benefits[0] + " combined with " + strings.ToLower(benefits[1])
	default:
		return "A perfect blend of " + lowerSeries(benefits)
	}
}

// benefitsStory phrases the benefits for the mission statement.
func benefitsStory(benefits []string) string {
	switch len(benefits) {
	case 0:
		return ""
	case 1:
		return strings.ToLower(benefits[0])
	case 2:
		return strings.ToLower(benefits[0]) + " and " + strings.ToLower(benefits[1])
	default:
		return lowerSeries(benefits)
	}
}

// lowerSeries renders "a, b, and c" in lower case. items has at least 3 entries.
func lowerSeries(items []string) string {
	head := make([]string, len(items)-1)
	for i, s := range items[:len(items)-1] {
		head[i] = strings.ToLower(s)
	}
	return strings.Join(head, ", ") + ", and " + strings.ToLower(items[len(items)-1])
}

// audienceStory turns the audience line into a persona.
func audienceStory(audience string) string {
	lower := strings.ToLower(audience)
	switch {
	case strings.Contains(lower, "women") && strings.Contains(lower, "25-45"):
		return "busy, successful women in their prime who juggle career and personal life"
	case strings.Contains(lower, "professionals"):
		return "dedicated professionals who value quality and efficiency"
	case strings.Contains(lower, "young") || strings.Contains(lower, "millennials"):
		return "young, conscious consumers who research before they buy"
	default:
		return lower + " who are looking for authentic solutions"
	}
}
