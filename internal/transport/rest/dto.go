package rest

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/adcopy-backend/internal/domain"
	"github.com/heartmarshall/adcopy-backend/internal/service/generation"
)

type generateRequest struct {
	ProductName    string   `json:"productName"`
	KeyBenefits    []string `json:"keyBenefits"`
	TargetAudience string   `json:"targetAudience"`
	Tone           string   `json:"tone"`
	Channels       []string `json:"channels"`
	Model          string   `json:"model,omitempty"`
}

// toInput resolves channel names case-insensitively. Unknown names pass
// through unchanged so validation can report them by index.
func (r generateRequest) toInput() generation.GenerateInput {
	channels := make([]domain.Channel, len(r.Channels))
	for i, raw := range r.Channels {
		if ch, ok := domain.ParseChannel(strings.TrimSpace(raw)); ok {
			channels[i] = ch
			continue
		}
		channels[i] = domain.Channel(raw)
	}
	return generation.GenerateInput{
		ProductName:    r.ProductName,
		KeyBenefits:    r.KeyBenefits,
		TargetAudience: r.TargetAudience,
		Tone:           domain.Tone(strings.ToLower(strings.TrimSpace(r.Tone))),
		Channels:       channels,
		Model:          r.Model,
	}
}

type variationsResponse struct {
	Variations []*domain.GenerationResult `json:"variations"`
	Total      int                        `json:"total"`
}

type requestResponse struct {
	ID              uuid.UUID               `json:"id"`
	ProductName     string                  `json:"productName"`
	KeyBenefits     []string                `json:"keyBenefits"`
	TargetAudience  string                  `json:"targetAudience"`
	Tone            domain.Tone             `json:"tone"`
	Channels        []domain.Channel        `json:"channels"`
	Model           string                  `json:"model"`
	Status          domain.RequestStatus    `json:"status"`
	ChannelContents []domain.ChannelContent `json:"channelContents"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

type requestPageResponse struct {
	Requests   []requestResponse `json:"requests"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"totalPages"`
}

func toRequestPageResponse(p *generation.RequestPage) requestPageResponse {
	out := requestPageResponse{
		Requests:   make([]requestResponse, 0, len(p.Requests)),
		Total:      p.Total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: p.TotalPages,
	}
	for _, rc := range p.Requests {
		contents := rc.Contents
		if contents == nil {
			contents = []domain.ChannelContent{}
		}
		out.Requests = append(out.Requests, requestResponse{
			ID:              rc.Request.ID,
			ProductName:     rc.Request.ProductName,
			KeyBenefits:     rc.Request.KeyBenefits,
			TargetAudience:  rc.Request.TargetAudience,
			Tone:            rc.Request.Tone,
			Channels:        rc.Request.Channels,
			Model:           rc.Request.Model,
			Status:          rc.Request.Status,
			ChannelContents: contents,
			CreatedAt:       rc.Request.CreatedAt,
			UpdatedAt:       rc.Request.UpdatedAt,
		})
	}
	return out
}

type historyEntryResponse struct {
	ID          uuid.UUID           `json:"id"`
	RequestID   uuid.UUID           `json:"requestId"`
	Channel     domain.Channel      `json:"channel"`
	ProductName string              `json:"productName"`
	KeyBenefits []string            `json:"keyBenefits"`
	Tone        domain.Tone         `json:"tone"`
	Content     domain.ContentBlock `json:"content"`
	Model       string              `json:"model"`
	CreatedAt   time.Time           `json:"createdAt"`
}

type historyListResponse struct {
	Entries []historyEntryResponse `json:"entries"`
	Total   int                    `json:"total"`
}

func toHistoryListResponse(entries []domain.HistoryEntry) historyListResponse {
	out := historyListResponse{
		Entries: make([]historyEntryResponse, 0, len(entries)),
		Total:   len(entries),
	}
	for _, e := range entries {
		out.Entries = append(out.Entries, historyEntryResponse{
			ID:          e.ID,
			RequestID:   e.RequestID,
			Channel:     e.Channel,
			ProductName: e.ProductName,
			KeyBenefits: e.KeyBenefits,
			Tone:        e.Tone,
			Content:     e.Content,
			Model:       e.Model,
			CreatedAt:   e.CreatedAt,
		})
	}
	return out
}

type channelStat struct {
	Channel domain.Channel `json:"channel"`
	Count   int            `json:"count"`
}

type channelStatsResponse struct {
	Channels []channelStat `json:"channels"`
	Total    int           `json:"total"`
}

// toChannelStatsResponse lists every channel in display order, zero counts included.
func toChannelStatsResponse(stats map[domain.Channel]int) channelStatsResponse {
	out := channelStatsResponse{Channels: make([]channelStat, 0, len(domain.AllChannels))}
	for _, ch := range domain.AllChannels {
		n := stats[ch]
		out.Channels = append(out.Channels, channelStat{Channel: ch, Count: n})
		out.Total += n
	}
	return out
}
