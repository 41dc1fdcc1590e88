package service

import (
	"context"
	"explore_ia_backend/internal/course"
	"explore_ia_backend/internal/model"
	"explore_ia_backend/internal/util"
)

type ProgressService struct {
	Progress ProgressStore
}

func NewProgressService(progress ProgressStore) *ProgressService {
	return &ProgressService{Progress: progress}
}

// Summary 进度页汇总：完成模块数、总分与完成百分比
func (s *ProgressService) Summary(ctx context.Context, userID uint) (*model.ProgressSummary, error) {
	records, err := s.Progress.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	total := len(course.IDs())
	summary := &model.ProgressSummary{
		Records:      records,
		TotalModules: total,
	}
	for _, r := range records {
		if r.IsCompleted {
			summary.CompletedModules++
		}
		summary.TotalScore += r.Score
	}
	summary.CompletionPercentage = util.Percentage(summary.CompletedModules, total)
	return summary, nil
}
