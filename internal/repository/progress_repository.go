package repository

import (
	"context"
	"explore_ia_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// Upsert 按 (user_id, module_name) 插入或覆盖，后写入者生效
func (r *ProgressRepository) Upsert(ctx context.Context, p *model.Progress) error {
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "module_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "is_completed", "completed_at", "updated_at"}),
	}).Create(p).Error
}

func (r *ProgressRepository) ListByUser(ctx context.Context, userID uint) ([]model.Progress, error) {
	var records []model.Progress
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&records).Error
	return records, err
}

// CompletedModules 返回用户已完成的模块名
func (r *ProgressRepository) CompletedModules(ctx context.Context, userID uint) ([]string, error) {
	var names []string
	err := r.DB.WithContext(ctx).
		Model(&model.Progress{}).
		Where("user_id = ? AND is_completed = ?", userID, true).
		Pluck("module_name", &names).Error
	return names, err
}
