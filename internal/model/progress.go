package model

import (
	"explore_ia_backend/internal/quiz"
	"time"
)

// Progress 每个用户每个模块一条记录，(user_id, module_name) 唯一
type Progress struct {
	BaseModel
	UserID      uint       `gorm:"not null;uniqueIndex:idx_progress_user_module" json:"user_id"`
	ModuleName  string     `gorm:"size:64;not null;uniqueIndex:idx_progress_user_module" json:"module_name"`
	Score       int        `gorm:"not null;default:0" json:"score"`
	IsCompleted bool       `gorm:"not null;default:false" json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at"`
}

func (Progress) TableName() string {
	return "progress"
}

type ProgressSummary struct {
	Records              []Progress `json:"records"`
	CompletedModules     int        `json:"completed_modules"`
	TotalModules         int        `json:"total_modules"`
	TotalScore           int        `json:"total_score"`
	CompletionPercentage float64    `json:"completion_percentage"`
}

// ProgressFromUpdate 将测验提交产生的进度快照转换为持久化记录
func ProgressFromUpdate(u quiz.ProgressUpdate) *Progress {
	return &Progress{
		UserID:      u.UserID,
		ModuleName:  u.Module,
		Score:       u.Score,
		IsCompleted: u.Completed,
		CompletedAt: u.CompletedAt,
	}
}
