package domain

import (
	"time"
)

// LogEntry is one persisted record of a handled request.
type LogEntry struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	Endpoint  string    `gorm:"column:endpoint" json:"endpoint"`
	Method    string    `gorm:"column:method" json:"method"`
	Status    int       `gorm:"column:status" json:"status"`
	UserInfo  string    `gorm:"column:user_info" json:"userInfo"`
	Message   string    `gorm:"column:message" json:"message"`
	ErrorType string    `gorm:"column:error_type" json:"errorType"`
	Response  string    `gorm:"column:response" json:"response"`
	Operation string    `gorm:"column:operation" json:"operation"`
	Time      time.Time `gorm:"column:time" json:"time"`
}

func (LogEntry) TableName() string {
	return "logs"
}
