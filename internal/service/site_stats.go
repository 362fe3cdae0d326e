package service

import (
	"context"
	"time"

	linq "github.com/ahmetb/go-linq/v3"
	"github.com/samber/lo"

	"mergington.edu/activities-backend/internal/model"
	"mergington.edu/activities-backend/internal/model/cache"
	"mergington.edu/activities-backend/internal/repo"
)

type SiteStats struct {
	ActivityRepo *repo.Activity
}

func NewSiteStats(activityRepo *repo.Activity) *SiteStats {
	return &SiteStats{
		ActivityRepo: activityRepo,
	}
}

// Cache: (singular) siteStats; flushed on roster mutations, refreshed by the occupancy worker
func (s *SiteStats) GetSiteStats(ctx context.Context) (*model.SiteStats, error) {
	var stats model.SiteStats
	err := cache.SiteStats.Get(&stats)
	if err == nil {
		return &stats, nil
	}

	return s.RefreshSiteStats(ctx)
}

// RefreshSiteStats recomputes the roster statistics and re-primes the cache.
func (s *SiteStats) RefreshSiteStats(ctx context.Context) (*model.SiteStats, error) {
	activities, err := s.ActivityRepo.GetActivities(ctx)
	if err != nil {
		return nil, err
	}

	participants := lo.FlatMap(activities, func(activity *model.Activity, _ int) []string {
		return activity.Participants
	})

	totalCapacity := int(linq.From(activities).
		SelectT(func(activity *model.Activity) int {
			return activity.MaxParticipants
		}).
		SumInts())

	stats := model.SiteStats{
		TotalActivities:    len(activities),
		TotalCapacity:      totalCapacity,
		TotalRegistrations: len(participants),
		UniqueStudents:     len(lo.Uniq(participants)),
		SpotsLeft:          totalCapacity - len(participants),
	}

	cache.SiteStats.Set(stats, time.Hour)

	return &stats, nil
}
