package domain

import "strings"

// Tone is the voice requested for generated copy.
type Tone string

const (
	ToneFormal       Tone = "formal"
	ToneCasual       Tone = "casual"
	ToneProfessional Tone = "professional"
	TonePlayful      Tone = "playful"
	ToneGenZ         Tone = "gen-z"
	ToneMillennial   Tone = "millennial"
)

func (t Tone) String() string { return string(t) }

func (t Tone) IsValid() bool {
	switch t {
	case ToneFormal, ToneCasual, ToneProfessional, TonePlayful, ToneGenZ, ToneMillennial:
		return true
	}
	return false
}

// Channel is a publishing surface with its own length and style conventions.
type Channel string

const (
	ChannelFacebook  Channel = "Facebook"
	ChannelInstagram Channel = "Instagram"
	ChannelTwitter   Channel = "Twitter"
	ChannelLinkedIn  Channel = "LinkedIn"
	ChannelEmail     Channel = "Email"
	ChannelWebsite   Channel = "Website"
)

// AllChannels lists every supported channel in display order.
var AllChannels = []Channel{
	ChannelFacebook, ChannelInstagram, ChannelTwitter,
	ChannelLinkedIn, ChannelEmail, ChannelWebsite,
}

func (c Channel) String() string { return string(c) }

func (c Channel) IsValid() bool {
	switch c {
	case ChannelFacebook, ChannelInstagram, ChannelTwitter, ChannelLinkedIn, ChannelEmail, ChannelWebsite:
		return true
	}
	return false
}

// ParseChannel matches a channel name case-insensitively.
func ParseChannel(s string) (Channel, bool) {
	for _, c := range AllChannels {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

// RequestStatus is the lifecycle state of a GenerationRequest.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusGenerated RequestStatus = "generated"
	// RequestStatusFailed is never written: a failed generation rolls back
	// the request row together with everything else.
	RequestStatusFailed RequestStatus = "failed"
)

func (s RequestStatus) String() string { return string(s) }

func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusGenerated, RequestStatusFailed:
		return true
	}
	return false
}

// MessageRole is the author role of an audit entry.
type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
	MessageRoleSystem    MessageRole = "system"
)

func (r MessageRole) String() string { return string(r) }

func (r MessageRole) IsValid() bool {
	switch r {
	case MessageRoleUser, MessageRoleAssistant, MessageRoleSystem:
		return true
	}
	return false
}
