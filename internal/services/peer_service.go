package services

import (
	"regexp"
	"sort"
	"strings"

	"spendsmart/internal/models"
	"spendsmart/internal/store"
)

var digitsPattern = regexp.MustCompile(`\d+`)

// peerService ranks every known identity by lifetime savings.
type peerService struct {
	store store.Store
}

// NewPeerService creates a new PeerServicer.
func NewPeerService(s store.Store) PeerServicer {
	return &peerService{store: s}
}

// RankPeers computes net lifetime savings for every identity in the
// transaction store and ranks them descending. Income and expense totals are
// two independent aggregations per identity. The sort is stable, so ties keep
// the store's enumeration order. The first three entries are the leaders and
// the following five the runners-up; fewer than eight peers just produce
// shorter slices.
func (s *peerService) RankPeers() (*PeerRanking, error) {
	owners, err := s.store.DistinctOwners()
	if err != nil {
		return nil, err
	}

	entries := make([]PeerEntry, 0, len(owners))
	for _, owner := range owners {
		income, err := s.store.SumByType(owner, models.TransactionTypeIncome)
		if err != nil {
			return nil, err
		}
		expense, err := s.store.SumByType(owner, models.TransactionTypeExpense)
		if err != nil {
			return nil, err
		}

		name, err := s.displayName(owner)
		if err != nil {
			return nil, err
		}

		entries = append(entries, PeerEntry{
			Name:     name,
			Identity: owner,
			Saved:    income - expense,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Saved > entries[j].Saved
	})

	ranking := &PeerRanking{
		Top3:  entries[:min(3, len(entries))],
		Next5: []PeerEntry{},
	}
	if len(entries) > 3 {
		ranking.Next5 = entries[3:min(8, len(entries))]
	}
	return ranking, nil
}

// displayName resolves an identity to a profile name, falling back to the
// local part of the identity, and strips all digits from the result.
func (s *peerService) displayName(identity string) (string, error) {
	name := localPart(identity)

	profile, err := s.store.FindUserProfile(identity)
	if err != nil {
		return "", err
	}
	if profile != nil && profile.Name != "" {
		name = profile.Name
	}

	return digitsPattern.ReplaceAllString(name, ""), nil
}

func localPart(identity string) string {
	if at := strings.Index(identity, "@"); at >= 0 {
		return identity[:at]
	}
	return identity
}
