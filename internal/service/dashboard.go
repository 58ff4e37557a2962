package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/verifica-mx/campaign-verifier/internal/models"
)

// DashboardStats carries the dashboard counters plus the most recent uploads.
type DashboardStats struct {
	Total     int64
	ThisMonth int64
	ThisWeek  int64
	Today     int64
	Recent    []models.Campaign
}

const recentLimit = 5

// DashboardStats issues the four window counts and the recent list as
// independent queries. There is no shared snapshot: under concurrent inserts
// the counters and the list may reflect slightly different instants, which
// the dashboard tolerates.
func (s *CampaignService) DashboardStats(ctx context.Context, now time.Time) (*DashboardStats, error) {
	stats := &DashboardStats{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.Total, err = s.Store.CountSince(gctx, Epoch)
		return err
	})
	g.Go(func() (err error) {
		stats.ThisMonth, err = s.Store.CountSince(gctx, StartOfMonth(now))
		return err
	})
	g.Go(func() (err error) {
		stats.ThisWeek, err = s.Store.CountSince(gctx, StartOfWeek(now))
		return err
	})
	g.Go(func() (err error) {
		stats.Today, err = s.Store.CountSince(gctx, StartOfDay(now))
		return err
	})
	g.Go(func() (err error) {
		stats.Recent, err = s.Store.MostRecent(gctx, recentLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}
