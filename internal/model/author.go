package model

type Author struct {
	ID       uint   `gorm:"primaryKey"`
	Fullname string `gorm:"size:200;not null;uniqueIndex"`
	Books    []Book `gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL;"`
}
