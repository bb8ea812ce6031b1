package generation

import "github.com/heartmarshall/adcopy-backend/internal/domain"

// RequestWithContent is a stored brief together with its generated copy in
// channel order.
type RequestWithContent struct {
	Request  domain.GenerationRequest
	Contents []domain.ChannelContent
}

// RequestPage is one page of a user's requests, newest first.
type RequestPage struct {
	Requests   []RequestWithContent
	Total      int
	Page       int
	Limit      int
	TotalPages int
}
