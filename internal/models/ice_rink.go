package models

// IceRink keeps its own condition timestamp (date_heure) as free text; it is
// not tied to the owning borough's update date.
type IceRink struct {
	ID         uint    `gorm:"primaryKey"`
	Name       string  `gorm:"column:nom;index;not null"`
	DateHeure  string  `gorm:"column:date_heure"`
	Open       bool    `gorm:"column:ouvert"`
	Cleared    bool    `gorm:"column:deblaye"`
	Watered    bool    `gorm:"column:arrose"`
	Resurfaced bool    `gorm:"column:resurface"`
	BoroughID  uint    `gorm:"column:arrondissement_id;index;not null"`
	Borough    Borough `gorm:"foreignKey:BoroughID"`
}

func (IceRink) TableName() string {
	return "patinoires"
}
