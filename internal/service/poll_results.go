package service

import (
	"math"
	"sort"

	"mediation-scheduler/internal/database/models"
)

// Score weights for ranking options by their votes
const (
	scoreWeightPreferred   = 3
	scoreWeightAvailable   = 1
	scoreWeightUnavailable = 2
)

// OptionVoteCounts is the per-option vote tally
type OptionVoteCounts struct {
	AvailableCount   int `json:"available_count"`
	UnavailableCount int `json:"unavailable_count"`
	PreferredCount   int `json:"preferred_count"`
	TotalVotes       int `json:"total_votes"`
}

// Score computes the weighted ranking value:
// preferred*3 + available*1 - unavailable*2
func (c OptionVoteCounts) Score() int {
	return c.PreferredCount*scoreWeightPreferred +
		c.AvailableCount*scoreWeightAvailable -
		c.UnavailableCount*scoreWeightUnavailable
}

// RankedOption is an option merged with its tally and score, derived on
// every read and never persisted.
type RankedOption struct {
	models.PollOption
	OptionVoteCounts
	Score int `json:"score"`
}

// CalculateOptionVoteCounts tallies the votes that target one option.
// Pure: never mutates its inputs; an option with no matching votes yields
// all-zero counts.
func CalculateOptionVoteCounts(option models.PollOption, votes []models.Vote) OptionVoteCounts {
	var counts OptionVoteCounts
	for _, vote := range votes {
		if vote.OptionID != option.ID {
			continue
		}
		switch vote.Status {
		case models.VoteStatusAvailable:
			counts.AvailableCount++
		case models.VoteStatusPreferred:
			counts.PreferredCount++
		case models.VoteStatusUnavailable:
			counts.UnavailableCount++
		}
		counts.TotalVotes++
	}
	return counts
}

// BestPollOption returns the option with the strictly greatest score.
// Ties go to the first option encountered in poll.Options order; the scan
// must not re-sort, so the result is deterministic for any input.
// Returns nil when the poll has no options.
func BestPollOption(poll *models.Poll, votes []models.Vote) *RankedOption {
	var best *RankedOption
	for _, option := range poll.Options {
		counts := CalculateOptionVoteCounts(option, votes)
		score := counts.Score()
		if best == nil || score > best.Score {
			best = &RankedOption{
				PollOption:       option,
				OptionVoteCounts: counts,
				Score:            score,
			}
		}
	}
	return best
}

// RankOptions returns every option with its tally, sorted for display by
// descending score with ascending option id as the deterministic
// tie-breaker. Note the display order of tied options can differ from the
// BestPollOption winner, which follows poll.Options order.
func RankOptions(poll *models.Poll, votes []models.Vote) []RankedOption {
	ranked := make([]RankedOption, 0, len(poll.Options))
	for _, option := range poll.Options {
		counts := CalculateOptionVoteCounts(option, votes)
		ranked = append(ranked, RankedOption{
			PollOption:       option,
			OptionVoteCounts: counts,
			Score:            counts.Score(),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].ID < ranked[j].ID
	})

	return ranked
}

// ParticipationRate returns the percentage of participants who have voted,
// rounded to the nearest integer. A poll with no participants yields 0.
func ParticipationRate(poll *models.Poll) int {
	if len(poll.Participants) == 0 {
		return 0
	}
	rate := float64(poll.VotesReceived) / float64(len(poll.Participants)) * 100
	return int(math.Round(rate))
}
