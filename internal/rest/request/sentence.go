package request

import "github.com/Guyuepp/sentence-chain/domain"

// Sentence is the body of a submission. Length rules live in the usecase so
// that empty and over-long input get their own error codes.
type Sentence struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}

// ToDomain: Request -> Domain
func (r *Sentence) ToDomain() domain.Draft {
	return domain.Draft{
		Author: r.Author,
		Text:   r.Text,
	}
}

// Counter is the body of a character counter request
type Counter struct {
	Text string `json:"text"`
}
