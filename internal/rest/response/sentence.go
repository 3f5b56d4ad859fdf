package response

import (
	"time"

	"github.com/Guyuepp/sentence-chain/domain"
)

const (
	EmptyFeedMessage        = "No sentences yet today. Be the first to start the story!"
	EmptyLeaderboardMessage = "No liked sentences yet. Be the first to like a sentence!"
	EmptyArchiveMessage     = "No archived stories yet. Check back after creating some stories!"
)

var rankGradients = []string{
	"linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
	"linear-gradient(135deg, #f093fb 0%, #f5576c 100%)",
	"linear-gradient(135deg, #4facfe 0%, #00f2fe 100%)",
}

// Sentence is a sentence as stored
type Sentence struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Author    string `json:"author"`
	Timestamp string `json:"timestamp"`
	Date      string `json:"date"`
	Likes     int64  `json:"likes"`
	Seed      bool   `json:"seed,omitempty"`
}

// NewSentenceFromDomain: Domain -> Response
func NewSentenceFromDomain(s *domain.Sentence) Sentence {
	return Sentence{
		ID:        s.ID,
		Text:      s.Text,
		Author:    s.Author,
		Timestamp: s.Timestamp.Format(time.RFC3339),
		Date:      s.Date,
		Likes:     s.Likes,
		Seed:      s.Seed,
	}
}

// FeedCard is one sentence of the story feed
type FeedCard struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Text    string `json:"text"`
	TimeAgo string `json:"time_ago"`
	Liked   bool   `json:"liked"`
	Likes   int64  `json:"likes"`
	Seed    bool   `json:"seed,omitempty"`
}

type Feed struct {
	Sentences    []FeedCard `json:"sentences"`
	EmptyMessage string     `json:"empty_message,omitempty"`
}

func NewFeed(items []domain.FeedItem, now time.Time) Feed {
	res := Feed{Sentences: make([]FeedCard, len(items))}
	for i, item := range items {
		res.Sentences[i] = FeedCard{
			ID:      item.ID,
			Author:  item.Author,
			Text:    item.Text,
			TimeAgo: TimeAgo(item.Timestamp, now),
			Liked:   item.Liked,
			Likes:   item.Likes,
			Seed:    item.Seed,
		}
	}
	if len(items) == 0 {
		res.EmptyMessage = EmptyFeedMessage
	}
	return res
}

// TopCard is one leaderboard entry
type TopCard struct {
	Rank       int    `json:"rank"`
	Background string `json:"background"`
	Text       string `json:"text"`
	Author     string `json:"author"`
	Likes      int64  `json:"likes"`
}

type Leaderboard struct {
	Top          []TopCard `json:"top"`
	EmptyMessage string    `json:"empty_message,omitempty"`
}

func NewLeaderboard(top []domain.Sentence) Leaderboard {
	res := Leaderboard{Top: make([]TopCard, len(top))}
	for i, s := range top {
		res.Top[i] = TopCard{
			Rank:       i + 1,
			Background: rankGradients[i%len(rankGradients)],
			Text:       s.Text,
			Author:     s.Author,
			Likes:      s.Likes,
		}
	}
	if len(top) == 0 {
		res.EmptyMessage = EmptyLeaderboardMessage
	}
	return res
}

type ArchiveSentence struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// ArchiveCard is the whole story of one day
type ArchiveCard struct {
	Date          string            `json:"date"`
	FormattedDate string            `json:"formatted_date"`
	CountLabel    string            `json:"count_label"`
	Sentences     []ArchiveSentence `json:"sentences"`
}

type Archive struct {
	Days         []ArchiveCard `json:"days"`
	EmptyMessage string        `json:"empty_message,omitempty"`
}

func NewArchive(days []domain.DayStory) Archive {
	res := Archive{Days: make([]ArchiveCard, len(days))}
	for i, d := range days {
		card := ArchiveCard{
			Date:          d.Date,
			FormattedDate: LongDate(d.Date),
			CountLabel:    plural(int64(len(d.Sentences)), "sentence"),
			Sentences:     make([]ArchiveSentence, len(d.Sentences)),
		}
		for j, s := range d.Sentences {
			card.Sentences[j] = ArchiveSentence{Text: s.Text, Author: s.Author}
		}
		res.Days[i] = card
	}
	if len(days) == 0 {
		res.EmptyMessage = EmptyArchiveMessage
	}
	return res
}

// Counter is the state of the character counter under the sentence input
type Counter struct {
	Count   int  `json:"count"`
	Max     int  `json:"max"`
	Warning bool `json:"warning"`
	Error   bool `json:"error"`
}

func NewCounter(count int) Counter {
	return Counter{
		Count:   count,
		Max:     domain.MaxSentenceLength,
		Warning: count > domain.WarnSentenceLength,
		Error:   count >= domain.MaxSentenceLength,
	}
}

type Limits struct {
	Max  int `json:"max"`
	Warn int `json:"warn"`
}

// Board is the page-load view
type Board struct {
	domain.DayStatus
	Feed        Feed        `json:"feed"`
	Leaderboard Leaderboard `json:"leaderboard"`
	Limits      Limits      `json:"limits"`
}

func NewBoard(b *domain.Board, now time.Time) Board {
	return Board{
		DayStatus:   b.DayStatus,
		Feed:        NewFeed(b.Feed, now),
		Leaderboard: NewLeaderboard(b.Leaderboard),
		Limits: Limits{
			Max:  domain.MaxSentenceLength,
			Warn: domain.WarnSentenceLength,
		},
	}
}
