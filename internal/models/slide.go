package models

type Slide struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"column:nom;index;not null"`
	Open      bool    `gorm:"column:ouvert"`
	Cleared   bool    `gorm:"column:deblaye"`
	Condition string  `gorm:"column:condition"`
	BoroughID uint    `gorm:"column:arrondissement_id;index;not null"`
	Borough   Borough `gorm:"foreignKey:BoroughID"`
}

func (Slide) TableName() string {
	return "glissades"
}
