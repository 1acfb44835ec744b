package model

type Genre struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"size:200;not null;uniqueIndex"`
	Books []Book `gorm:"foreignKey:GenreID;constraint:OnDelete:SET NULL;"`
}

// All lists the catalog tables in dependency order, parents first.
func All() []any {
	return []any{&Genre{}, &Author{}, &Book{}}
}
