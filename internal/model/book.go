package model

import "time"

const (
	BookNameMaxLen     = 50
	BookAbstractMaxLen = 500
)

type Book struct {
	ID                uint   `gorm:"primaryKey"`
	Name              string `gorm:"size:50;uniqueIndex"`
	YearOfPublication *int
	NumberOfPages     *int
	Abstract          string    `gorm:"type:text"`
	IsRead            bool      `gorm:"not null;default:false"`
	Added             time.Time `gorm:"not null;autoCreateTime;index"`

	GenreID *uint
	Genre   *Genre `gorm:"constraint:OnDelete:SET NULL;"`

	AuthorID *uint
	Author   *Author `gorm:"constraint:OnDelete:SET NULL;"`
}
