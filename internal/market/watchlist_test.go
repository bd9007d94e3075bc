package market

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stocklink-lite/internal/domain"
)

func vol(n int64) *int64 { return &n }

func TestWatchlist_TopFiveByVolumeDescending(t *testing.T) {
	companies := []domain.Company{
		{ID: 1, Volume: vol(50)},
		{ID: 2, Volume: nil},
		{ID: 3, Volume: vol(200)},
		{ID: 4, Volume: vol(10)},
		{ID: 5, Volume: vol(300)},
		{ID: 6, Volume: vol(1)},
	}

	got := Watchlist(companies, WatchlistSize)

	volumes := make([]int64, 0, len(got))
	for _, c := range got {
		volumes = append(volumes, *c.Volume)
	}
	assert.Equal(t, []int64{300, 200, 50, 10, 1}, volumes)
}

func TestWatchlist_TruncatesToN(t *testing.T) {
	companies := []domain.Company{
		{ID: 1, Volume: vol(1)},
		{ID: 2, Volume: vol(2)},
		{ID: 3, Volume: vol(3)},
	}
	got := Watchlist(companies, 2)
	assert.Len(t, got, 2)
	assert.Equal(t, uint(3), got[0].ID)
	assert.Equal(t, uint(2), got[1].ID)
}

func TestWatchlist_AllVolumesMissing(t *testing.T) {
	companies := []domain.Company{{ID: 1}, {ID: 2}}
	assert.Empty(t, Watchlist(companies, WatchlistSize))
}

func TestWatchlist_DoesNotMutateInput(t *testing.T) {
	companies := []domain.Company{
		{ID: 1, Volume: vol(1)},
		{ID: 2, Volume: vol(9)},
	}
	Watchlist(companies, WatchlistSize)
	assert.Equal(t, uint(1), companies[0].ID)
	assert.Equal(t, uint(2), companies[1].ID)
}
