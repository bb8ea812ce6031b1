package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultContentType tags every artifact produced by the generation pipeline.
	DefaultContentType = "ad_copy"
	// DefaultContentStatus is the editorial status of freshly generated copy.
	DefaultContentStatus = "draft"
	// DefaultLanguage is used when a provider omits the content language.
	DefaultLanguage = "en"
	// InitialArtifactVersion is the version of the first artifact for a channel.
	InitialArtifactVersion = 1
)

// ContentMeta holds the decorations extracted from generated copy.
type ContentMeta struct {
	Hashtags []string `json:"hashtags"`
	Emojis   []string `json:"emojis"`
}

// ContentBlock is the structural body of one piece of generated copy.
type ContentBlock struct {
	Channel  Channel     `json:"channel"`
	Language string      `json:"language"`
	Tone     Tone        `json:"tone"`
	Title    string      `json:"title"`
	Body     string      `json:"body"`
	CTA      string      `json:"cta"`
	Meta     ContentMeta `json:"meta"`
}

// NormalizedContent is a provider response coerced into the strict schema.
type NormalizedContent struct {
	RequestID   uuid.UUID
	Model       string
	ContentType string
	Content     ContentBlock
	Status      string
	CreatedAt   time.Time
	// Fallback is set when the raw text was not a JSON object and the
	// record was reconstructed from free text.
	Fallback bool
}

// GenerationRequest is a submitted marketing brief.
type GenerationRequest struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	ProductName    string
	KeyBenefits    []string
	TargetAudience string
	Tone           Tone
	Channels       []Channel
	Model          string
	Status         RequestStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Artifact is one generated piece of copy for one channel of a request.
// Only the publication fields change after creation.
type Artifact struct {
	ID          uuid.UUID
	RequestID   uuid.UUID
	UserID      uuid.UUID
	Channel     Channel
	Position    int
	Content     ContentBlock
	Model       string
	ContentType string
	Status      string
	Version     int
	IsPublished bool
	PublishedAt *time.Time
	RawResponse string
	CreatedAt   time.Time
}

// AuditEntry records what was sent to and received from providers for a request.
type AuditEntry struct {
	ID        uuid.UUID
	RequestID uuid.UUID
	Role      MessageRole
	Message   string
	Prompt    string
	Response  string
	CreatedAt time.Time
}

// HistoryEntry mirrors an artifact in the per-user content history.
type HistoryEntry struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	RequestID   uuid.UUID
	Channel     Channel
	ProductName string
	KeyBenefits []string
	Tone        Tone
	Content     ContentBlock
	Model       string
	IsArchived  bool
	CreatedAt   time.Time
}

// ChannelContent is the outbound view of an artifact.
type ChannelContent struct {
	ArtifactID  uuid.UUID    `json:"artifactId"`
	RequestID   uuid.UUID    `json:"requestId"`
	Model       string       `json:"model"`
	ContentType string       `json:"contentType"`
	Content     ContentBlock `json:"content"`
	Status      string       `json:"status"`
	IsPublished bool         `json:"isPublished"`
	PublishedAt *time.Time   `json:"publishedAt,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// NewChannelContent builds the outbound view of a.
func NewChannelContent(a Artifact) ChannelContent {
	return ChannelContent{
		ArtifactID:  a.ID,
		RequestID:   a.RequestID,
		Model:       a.Model,
		ContentType: a.ContentType,
		Content:     a.Content,
		Status:      a.Status,
		IsPublished: a.IsPublished,
		PublishedAt: a.PublishedAt,
		CreatedAt:   a.CreatedAt,
	}
}

// GenerationResult aggregates every channel generated for one request.
type GenerationResult struct {
	RequestID       uuid.UUID        `json:"requestId"`
	Model           string           `json:"model"`
	ChannelContents []ChannelContent `json:"channelContents"`
	TotalChannels   int              `json:"totalChannels"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// NewGenerationResult aggregates artifacts, which must already be in channel order.
// An empty slice yields a result stamped with fallbackTime.
func NewGenerationResult(requestID uuid.UUID, model string, artifacts []Artifact, fallbackTime time.Time) *GenerationResult {
	contents := make([]ChannelContent, 0, len(artifacts))
	for _, a := range artifacts {
		contents = append(contents, NewChannelContent(a))
	}

	createdAt := fallbackTime
	if len(contents) > 0 {
		createdAt = contents[0].CreatedAt
	}

	return &GenerationResult{
		RequestID:       requestID,
		Model:           model,
		ChannelContents: contents,
		TotalChannels:   len(contents),
		CreatedAt:       createdAt,
	}
}
