package generation

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/heartmarshall/adcopy-backend/internal/domain"
)

const (
	fallbackTitle = "Generated Content"
	fallbackCTA   = "Learn More"
)

var hashtagPattern = regexp.MustCompile(`#\w+`)

var emojiRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2600, Hi: 0x26FF, Stride: 1},
		{Lo: 0x2700, Hi: 0x27BF, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1F1E0, Hi: 0x1F1FF, Stride: 1},
		{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1},
		{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1},
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1},
	},
}

// draft is the partial record a provider returned. Nil means absent.
type draft struct {
	Model       *string
	ContentType *string
	Status      *string
	CreatedAt   *time.Time
	Language    *string
	Tone        *string
	Title       *string
	Body        *string
	CTA         *string
	Hashtags    []string
	Emojis      []string
}

// Normalize coerces raw provider text into the strict content schema. Text
// that is not a JSON object is reconstructed with Fallback set; that is not
// an error.
func Normalize(raw string, requestID uuid.UUID, channel domain.Channel, tone domain.Tone, model string, now time.Time) (domain.NormalizedContent, error) {
	if requestID == uuid.Nil {
		return domain.NormalizedContent{}, domain.NewValidationError("request_id", "required")
	}
	if channel == "" {
		return domain.NormalizedContent{}, domain.NewValidationError("channel", "required")
	}

	base := domain.NormalizedContent{
		RequestID:   requestID,
		Model:       model,
		ContentType: domain.DefaultContentType,
		Status:      domain.DefaultContentStatus,
		CreatedAt:   now,
		Content: domain.ContentBlock{
			Channel:  channel,
			Language: domain.DefaultLanguage,
			Tone:     tone,
			Meta:     domain.ContentMeta{Hashtags: []string{}, Emojis: []string{}},
		},
	}

	d, ok := parseDraft(stripFences(raw))
	if !ok {
		return fallback(base, raw), nil
	}
	return merge(base, d), nil
}

func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimLeftFunc(strings.TrimPrefix(s, "```json"), unicode.IsSpace)
	}
	if strings.HasPrefix(s, "```") {
		s = strings.TrimLeftFunc(strings.TrimPrefix(s, "```"), unicode.IsSpace)
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimRightFunc(strings.TrimSuffix(s, "```"), unicode.IsSpace)
	}
	return strings.TrimSpace(s)
}

func parseDraft(s string) (draft, bool) {
	if !gjson.Valid(s) {
		return draft{}, false
	}
	root := gjson.Parse(s)
	if !root.IsObject() {
		return draft{}, false
	}

	d := draft{
		Model:       stringAt(root, "model"),
		ContentType: stringAt(root, "contentType"),
		Status:      stringAt(root, "status"),
		Language:    stringAt(root, "content.language"),
		Tone:        stringAt(root, "content.tone"),
		Title:       stringAt(root, "content.title"),
		Body:        stringAt(root, "content.body"),
		CTA:         stringAt(root, "content.cta"),
		Hashtags:    stringsAt(root, "content.meta.hashtags"),
		Emojis:      stringsAt(root, "content.meta.emojis"),
	}
	if ts := stringAt(root, "createdAt"); ts != nil {
		if t, err := time.Parse(time.RFC3339Nano, *ts); err == nil {
			t = t.UTC()
			d.CreatedAt = &t
		}
	}
	return d, true
}

// stringAt returns the non-empty string at path.
func stringAt(r gjson.Result, path string) *string {
	v := r.Get(path)
	if v.Type != gjson.String || v.Str == "" {
		return nil
	}
	s := v.Str
	return &s
}

// stringsAt returns the string items of the array at path.
func stringsAt(r gjson.Result, path string) []string {
	v := r.Get(path)
	if !v.IsArray() {
		return nil
	}
	out := []string{}
	v.ForEach(func(_, item gjson.Result) bool {
		if item.Type == gjson.String {
			out = append(out, item.Str)
		}
		return true
	})
	return out
}

func merge(base domain.NormalizedContent, d draft) domain.NormalizedContent {
	out := base
	set(&out.Model, d.Model)
	set(&out.ContentType, d.ContentType)
	set(&out.Status, d.Status)
	set(&out.Content.Language, d.Language)
	set(&out.Content.Title, d.Title)
	set(&out.Content.Body, d.Body)
	set(&out.Content.CTA, d.CTA)
	if d.Tone != nil {
		out.Content.Tone = domain.Tone(*d.Tone)
	}
	if d.CreatedAt != nil {
		out.CreatedAt = *d.CreatedAt
	}
	if d.Hashtags != nil {
		out.Content.Meta.Hashtags = d.Hashtags
	}
	if d.Emojis != nil {
		out.Content.Meta.Emojis = d.Emojis
	}
	return out
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func fallback(base domain.NormalizedContent, raw string) domain.NormalizedContent {
	out := base
	out.Fallback = true
	out.Content.Title = fallbackTitle
	out.Content.Body = raw
	out.Content.CTA = fallbackCTA

	if tags := hashtagPattern.FindAllString(raw, -1); tags != nil {
		out.Content.Meta.Hashtags = tags
	}
	out.Content.Meta.Emojis = extractEmojis(raw)
	return out
}

func extractEmojis(s string) []string {
	out := []string{}
	for _, r := range s {
		if unicode.Is(emojiRanges, r) {
			out = append(out, string(r))
		}
	}
	return out
}
