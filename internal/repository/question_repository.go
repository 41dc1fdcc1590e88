package repository

import (
	"context"
	"explore_ia_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// FindByModule 按模块名精确匹配，没有题目时返回空切片而不是错误
func (r *QuestionRepository) FindByModule(ctx context.Context, moduleName string) ([]model.Question, error) {
	questions := []model.Question{}
	err := r.DB.WithContext(ctx).
		Where("module_name = ?", moduleName).
		Order("id ASC").
		Find(&questions).Error
	return questions, err
}
