package model

import "explore_ia_backend/internal/quiz"

// Question 测验题目，按 module_name 归属模块
type Question struct {
	BaseModel
	ModuleName    string `gorm:"size:64;index;not null" json:"module_name"`
	Question      string `gorm:"type:text;not null" json:"question"`
	OptionA       string `gorm:"size:500;not null" json:"option_a"`
	OptionB       string `gorm:"size:500;not null" json:"option_b"`
	OptionC       string `gorm:"size:500;not null" json:"option_c"`
	OptionD       string `gorm:"size:500;not null" json:"option_d"`
	CorrectAnswer string `gorm:"size:1;not null" json:"correct_answer"`
	Points        int    `gorm:"not null;default:10" json:"points"`
}

func (Question) TableName() string {
	return "quizzes"
}

func (q Question) ToQuiz() quiz.Question {
	return quiz.Question{
		ID:      q.ID,
		Module:  q.ModuleName,
		Text:    q.Question,
		OptionA: q.OptionA,
		OptionB: q.OptionB,
		OptionC: q.OptionC,
		OptionD: q.OptionD,
		Correct: quiz.Choice(q.CorrectAnswer),
		Points:  q.Points,
	}
}
