package model

import (
	"gorm.io/datatypes"
)

type CertificateData struct {
	StudentName    string   `json:"studentName"`
	CompletionDate string   `json:"completionDate"`
	Modules        []string `json:"modules"`
	ID             string   `json:"id"`
}

// Certificate 每个用户最多一张，生成后不可修改
type Certificate struct {
	BaseModel
	UserID uint                                 `gorm:"not null;uniqueIndex" json:"user_id"`
	Data   datatypes.JSONType[CertificateData] `gorm:"column:certificate_data" json:"certificate_data"`
}

func (Certificate) TableName() string {
	return "certificates"
}
