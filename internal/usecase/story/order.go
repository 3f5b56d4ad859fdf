package story

import (
	"cmp"
	"slices"

	"github.com/Guyuepp/sentence-chain/domain"
)

// chronological sorts in story order, oldest first
func chronological(list []domain.Sentence) {
	slices.SortStableFunc(list, func(a, b domain.Sentence) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
}

// topByLikes keeps sentences with at least one like, most liked first.
// Ties keep their relative order.
func topByLikes(list []domain.Sentence, n int) []domain.Sentence {
	res := make([]domain.Sentence, 0, len(list))
	for _, s := range list {
		if s.Likes > 0 {
			res = append(res, s)
		}
	}
	slices.SortStableFunc(res, func(a, b domain.Sentence) int {
		return cmp.Compare(b.Likes, a.Likes)
	})
	return res[:min(len(res), n)]
}

// byDateDesc turns date groups into day stories, most recent day first
func byDateDesc(groups map[string][]domain.Sentence) []domain.DayStory {
	dates := make([]string, 0, len(groups))
	for d := range groups {
		dates = append(dates, d)
	}
	slices.Sort(dates)
	slices.Reverse(dates)

	res := make([]domain.DayStory, 0, len(dates))
	for _, d := range dates {
		list := groups[d]
		chronological(list)
		res = append(res, domain.DayStory{Date: d, Sentences: list})
	}
	return res
}
