package usecase

import (
	"context"
	"fmt"
	"log"

	"main/model"
	"main/repository"
	"main/services"
	"main/utils"
)

const (
	previewLength  = 50
	recentPDFLimit = 5
)

// DashboardService assembles the per-user summary: hierarchy and attachment
// totals, a preview of the most recently updated note, and the newest
// uploads. Every miss is a full recompute across the stores; the Redis cache
// only absorbs repeat reads between writes.
type DashboardService struct {
	Subjects *repository.SubjectsRepo
	Topics   *repository.TopicsRepo
	Notes    *repository.NotesRepo
	PDFs     *repository.PDFsRepo
}

// GetDashboard returns the user's dashboard, serving from cache when a
// fresh copy exists.
func (s *DashboardService) GetDashboard(ctx context.Context, userID string) (*model.DashboardStats, error) {
	if services.GlobalDashboardCache != nil {
		cached, err := services.GlobalDashboardCache.Get(ctx, userID)
		if err != nil {
			log.Printf("Dashboard cache read failed: %v", err)
		} else if cached != nil {
			utils.TrackCacheOperation("dashboard", true)
			return cached, nil
		}
		utils.TrackCacheOperation("dashboard", false)
	}

	stats, err := s.compute(ctx, userID)
	if err != nil {
		return nil, err
	}

	if services.GlobalDashboardCache != nil {
		if err := services.GlobalDashboardCache.Set(ctx, userID, stats); err != nil {
			log.Printf("Dashboard cache write failed: %v", err)
		}
	}
	return stats, nil
}

func (s *DashboardService) compute(ctx context.Context, userID string) (*model.DashboardStats, error) {
	stats := &model.DashboardStats{RecentPDFs: []*model.PDF{}}

	var err error
	if stats.Totals.Subjects, err = s.Subjects.CountUserSubjects(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to count subjects: %w", err)
	}
	if stats.Totals.Topics, err = s.Topics.CountUserTopics(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to count topics: %w", err)
	}
	if stats.Totals.PDFs, err = s.PDFs.CountUserPDFs(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to count attachments: %w", err)
	}

	latest, err := s.Notes.GetLatestNote(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load latest note: %w", err)
	}
	if latest != nil {
		stats.LastNote.HasNote = true
		stats.LastNote.Preview = notePreview(latest.Content)
		stats.LastNote.UpdatedAt = latest.UpdatedAt
	}

	recent, err := s.PDFs.GetRecentPDFs(ctx, userID, recentPDFLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent attachments: %w", err)
	}
	if recent != nil {
		stats.RecentPDFs = recent
	}

	return stats, nil
}

// notePreview truncates note content to the dashboard preview length,
// counting runes so multi-byte text never gets split mid-character.
func notePreview(content string) string {
	runes := []rune(content)
	if len(runes) <= previewLength {
		return content
	}
	return string(runes[:previewLength])
}

// invalidateDashboard drops the cached dashboard after any write that feeds
// it. Best effort: a failed invalidation only delays freshness until the
// cache TTL runs out.
func invalidateDashboard(ctx context.Context, userID string) {
	if services.GlobalDashboardCache == nil {
		return
	}
	if err := services.GlobalDashboardCache.Invalidate(ctx, userID); err != nil {
		log.Printf("Dashboard cache invalidation failed: %v", err)
	}
}
