package service

import (
	"context"
	"explore_ia_backend/internal/course"
	"explore_ia_backend/internal/model"
	"explore_ia_backend/internal/util"
)

// ModuleStatus 模块及当前用户在该模块上的进度
type ModuleStatus struct {
	course.Module
	Completed bool `json:"completed"`
	Score     int  `json:"score"`
	Attempted bool `json:"attempted"`
}

type CourseService struct {
	Progress ProgressStore
}

func NewCourseService(progress ProgressStore) *CourseService {
	return &CourseService{Progress: progress}
}

func (s *CourseService) progressByModule(ctx context.Context, userID uint) (map[string]model.Progress, error) {
	out := make(map[string]model.Progress)
	if userID == 0 {
		return out, nil
	}
	records, err := s.Progress.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		out[r.ModuleName] = r
	}
	return out, nil
}

func withStatus(m course.Module, p model.Progress, ok bool) ModuleStatus {
	st := ModuleStatus{Module: m, Attempted: ok}
	if ok {
		st.Completed = p.IsCompleted
		st.Score = p.Score
	}
	return st
}

// List 返回全部模块，userID 为 0 时不附带进度；列表不含正文
func (s *CourseService) List(ctx context.Context, userID uint) ([]ModuleStatus, error) {
	progress, err := s.progressByModule(ctx, userID)
	if err != nil {
		return nil, err
	}

	modules := course.Modules()
	out := make([]ModuleStatus, 0, len(modules))
	for _, m := range modules {
		p, ok := progress[m.ID]
		m.Sections = nil
		out = append(out, withStatus(m, p, ok))
	}
	return out, nil
}

func (s *CourseService) Get(ctx context.Context, userID uint, moduleID string) (*ModuleStatus, error) {
	m, ok := course.Find(moduleID)
	if !ok {
		return nil, util.ErrModuleNotFound
	}
	progress, err := s.progressByModule(ctx, userID)
	if err != nil {
		return nil, err
	}
	p, found := progress[m.ID]
	st := withStatus(m, p, found)
	return &st, nil
}

// Next 返回下一个模块，最后一个或未知模块回到第一个
func (s *CourseService) Next(moduleID string) course.Module {
	m, _ := course.Find(course.NextModule(moduleID))
	m.Sections = nil
	return m
}
