package models

import "time"

type Task struct {
	ID       uint64 `gorm:"primarykey" json:"id"`
	TaskName string `gorm:"column:task_name;type:varchar(255);not null" json:"task_name"`
	// TimeFrame is the worked duration in seconds.
	TimeFrame int64     `gorm:"column:time_frame;not null" json:"time_frame"`
	Date      time.Time `gorm:"type:date;not null" json:"date"`
	UserID    uint64    `gorm:"not null" json:"user_id"`
	TeamID    uint64    `gorm:"not null" json:"team_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
	Team Team `gorm:"foreignKey:TeamID" json:"-"`
}
