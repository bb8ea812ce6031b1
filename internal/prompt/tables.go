package prompt

import (
	"strings"

	"github.com/heartmarshall/adcopy-backend/internal/domain"
)

// wordBand is the word-count range for each part of a piece of copy.
type wordBand struct {
	Title string
	Body  string
	CTA   string
}

var wordBands = map[string]wordBand{
	"instagram": {Title: "5-10", Body: "50-100", CTA: "2-5"},
	"twitter":   {Title: "3-8", Body: "20-50", CTA: "2-4"},
	"facebook":  {Title: "5-15", Body: "80-150", CTA: "3-6"},
	"linkedin":  {Title: "8-20", Body: "100-200", CTA: "4-8"},
	"email":     {Title: "8-15", Body: "100-300", CTA: "3-8"},
	"website":   {Title: "8-15", Body: "100-250", CTA: "3-8"},
}

var bandLabels = map[string]string{
	"instagram": "Instagram",
	"twitter":   "Twitter",
	"facebook":  "Facebook",
	"linkedin":  "LinkedIn",
	"email":     "Email",
	"website":   "Website",
}

// wordLimits renders the band line for channel. Unknown channels use Instagram.
func wordLimits(channel domain.Channel) string {
	key := strings.ToLower(string(channel))
	band, ok := wordBands[key]
	if !ok {
		key = "instagram"
		band = wordBands[key]
	}
	return bandLabels[key] + ": Title " + band.Title + " words, Body " + band.Body + " words, CTA " + band.CTA + " words"
}

var channelGuidelines = map[string]string{
	"instagram": `Instagram-Specific Guidelines:
- Use high-quality, visually appealing language
- Include relevant hashtags (3-5 hashtags)
- Use emojis strategically to enhance engagement
- Focus on lifestyle and visual storytelling
- Keep content concise and scannable
- Use Instagram-specific features like Stories, Reels, or IGTV mentions if relevant`,

	"twitter": `Twitter-Specific Guidelines:
- Keep content concise and within character limits
- Use trending hashtags when relevant (1-2 hashtags)
- Focus on timely, news-worthy content
- Use Twitter-specific language and abbreviations
- Encourage retweets and engagement
- Include mentions (@username) when appropriate`,

	"facebook": `Facebook-Specific Guidelines:
- Create shareable, community-focused content
- Use Facebook-specific features like Events, Groups, or Marketplace
- Include relevant hashtags (2-4 hashtags)
- Focus on building community and relationships
- Use longer-form content when appropriate
- Encourage comments and shares`,

	"linkedin": `LinkedIn-Specific Guidelines:
- Use professional, business-focused language
- Focus on industry insights and thought leadership
- Avoid excessive emojis and hashtags
- Include relevant professional hashtags (2-3 hashtags)
- Focus on B2B audience and networking
- Use data and statistics when relevant`,

	"email": `Email-Specific Guidelines:
- Use clear, professional subject lines
- Focus on value proposition and benefits
- Include clear call-to-action buttons
- Avoid excessive emojis and hashtags
- Use email-specific formatting (personalization, segmentation)
- Focus on conversion and engagement metrics`,

	"website": `Website-Specific Guidelines:
- Use clear, concise headlines and copy
- Focus on user experience and readability
- Include strong value propositions
- Use action-oriented language
- Optimize for conversions and lead generation
- Include trust signals and social proof`,
}

const generalGuidelines = `General Social Media Guidelines:
- Use platform-appropriate language and tone
- Include relevant hashtags for discoverability
- Use emojis to enhance engagement
- Focus on audience-specific content
- Encourage interaction and engagement`

func guidelinesFor(channel domain.Channel) string {
	if g, ok := channelGuidelines[strings.ToLower(string(channel))]; ok {
		return g
	}
	return generalGuidelines
}

var toneDescriptions = map[string]string{
	"casual":       "Friendly, approachable, and conversational - like chatting with a knowledgeable friend",
	"formal":       "Professional, authoritative, and polished - establishing expertise and trust",
	"professional": "Business-minded, credible, and solution-focused - speaking to industry peers",
	"playful":      "Fun, energetic, and creative - bringing joy and personality to every interaction",
	"gen-z":        "Trendy, authentic, and relatable - speaking the language of digital natives",
	"millennial":   "Aspirational, value-driven, and experience-focused - connecting with purpose-minded consumers",
}

func toneDescription(tone domain.Tone) string {
	if d, ok := toneDescriptions[strings.ToLower(string(tone))]; ok {
		return d
	}
	return string(tone) + " and authentic"
}

var channelStories = map[domain.Channel]string{
	domain.ChannelInstagram: "visually-driven Instagram where aesthetics and authenticity matter",
	domain.ChannelFacebook:  "community-focused Facebook where people share and discuss",
	domain.ChannelLinkedIn:  "professional LinkedIn where credibility and expertise count",
	domain.ChannelTwitter:   "fast-paced Twitter where wit and relevance win",
	domain.ChannelEmail:     "personal email where direct value and trust are essential",
	domain.ChannelWebsite:   "your website where visitors are actively seeking solutions",
}

func channelStory(channel domain.Channel) string {
	if s, ok := channelStories[channel]; ok {
		return s
	}
	return string(channel)
}
