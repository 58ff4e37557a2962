package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/verifica-mx/campaign-verifier/internal/models"
	"github.com/verifica-mx/campaign-verifier/internal/service"
)

func TestDashboardStatsCountsPerWindow(t *testing.T) {
	svc, store, _ := newTestService()

	// "Now" is Wednesday 2024-06-05; the week began Sunday 2024-06-02.
	now := time.Date(2024, 6, 5, 12, 0, 0, 0, time.UTC)

	dates := []time.Time{
		time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), // total only
		time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC), // this month
		time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC), // this week
		time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC), // today
	}
	for _, d := range dates {
		store.records = append(store.records, models.Campaign{ID: uuid.New(), UploadDate: d})
	}

	stats, err := svc.DashboardStats(context.Background(), now)
	if err != nil {
		t.Fatalf("dashboard stats failed: %v", err)
	}

	if stats.Total != 4 {
		t.Errorf("Total = %d, want 4", stats.Total)
	}
	if stats.ThisMonth != 3 {
		t.Errorf("ThisMonth = %d, want 3", stats.ThisMonth)
	}
	if stats.ThisWeek != 2 {
		t.Errorf("ThisWeek = %d, want 2", stats.ThisWeek)
	}
	if stats.Today != 1 {
		t.Errorf("Today = %d, want 1", stats.Today)
	}
}

func TestDashboardStatsRecentIsNewestFirstCappedAtFive(t *testing.T) {
	svc, store, _ := newTestService()

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		store.records = append(store.records, models.Campaign{
			ID:         uuid.New(),
			UploadDate: base.Add(time.Duration(i) * time.Hour),
		})
	}

	stats, err := svc.DashboardStats(context.Background(), base.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("dashboard stats failed: %v", err)
	}

	if len(stats.Recent) != 5 {
		t.Fatalf("Recent length = %d, want 5", len(stats.Recent))
	}
	for i := 1; i < len(stats.Recent); i++ {
		if stats.Recent[i].UploadDate.After(stats.Recent[i-1].UploadDate) {
			t.Fatal("Recent is not ordered newest first")
		}
	}
}

func TestCountSinceEpochEqualsTotal(t *testing.T) {
	_, store, _ := newTestService()

	one := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	two := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	store.records = append(store.records,
		models.Campaign{ID: uuid.New(), UploadDate: one},
		models.Campaign{ID: uuid.New(), UploadDate: two},
	)

	total, err := store.CountSince(context.Background(), service.Epoch)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if total != 2 {
		t.Errorf("CountSince(epoch) = %d, want 2", total)
	}

	since, err := store.CountSince(context.Background(), time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if since != 1 {
		t.Errorf("CountSince(2024-05-01) = %d, want 1", since)
	}

	recent, err := store.MostRecent(context.Background(), 1)
	if err != nil {
		t.Fatalf("most recent failed: %v", err)
	}
	if len(recent) != 1 || !recent[0].UploadDate.Equal(two) {
		t.Errorf("MostRecent(1) should return the June record, got %v", recent)
	}
}
