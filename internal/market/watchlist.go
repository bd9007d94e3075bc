package market

import (
	"sort"

	"stocklink-lite/internal/domain"
)

// WatchlistSize is how many most-active companies the dashboard shows.
const WatchlistSize = 5

// Watchlist returns the top-n companies by volume, most active first.
// Companies with no reported volume are excluded. The result is derived on
// every call and never persisted.
func Watchlist(companies []domain.Company, n int) []domain.Company {
	withVolume := make([]domain.Company, 0, len(companies))
	for _, c := range companies {
		if c.Volume != nil {
			withVolume = append(withVolume, c)
		}
	}
	sort.SliceStable(withVolume, func(i, j int) bool {
		return *withVolume[i].Volume > *withVolume[j].Volume
	})
	if len(withVolume) > n {
		withVolume = withVolume[:n]
	}
	return withVolume
}
