package models

import "time"

type Team struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	TeamName  string    `gorm:"column:team_name;type:varchar(255);uniqueIndex;not null" json:"team_name"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Tasks []Task `gorm:"foreignKey:TeamID" json:"-"`
}
