package models

import "gorm.io/datatypes"

type Project struct {
	BaseModel
	Title       string                       `gorm:"size:200;not null"`
	Description string                       `gorm:"size:1000;not null"`
	Category    string                       `gorm:"size:50;not null;index"`
	Technology  string                       `gorm:"size:50;not null;index"`
	Domain      string                       `gorm:"size:50;not null;index"`
	TechStack   datatypes.JSONSlice[string] `gorm:"type:text"`
	GithubLink  string                       `gorm:"size:500"`
	UserID      string                       `gorm:"not null;index"`

	// Relations
	User User `gorm:"foreignKey:UserID"`
}
