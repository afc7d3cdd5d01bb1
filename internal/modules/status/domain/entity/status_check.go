package entity

import "time"

// StatusCheck 客户端上报的连通性记录
type StatusCheck struct {
	Id         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	StatusId   string    `gorm:"column:status_id;type:char(36);uniqueIndex;not null"`
	ClientName string    `gorm:"column:client_name;type:varchar(255);not null"`
	Timestamp  time.Time `gorm:"column:timestamp;index;not null"`
}

func (StatusCheck) TableName() string {
	return "status_checks"
}
