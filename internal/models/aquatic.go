package models

type AquaticFacility struct {
	ID         uint    `gorm:"primaryKey"`
	Name       string  `gorm:"column:nom;index;not null"`
	Type       string  `gorm:"column:type"`
	Address    string  `gorm:"column:adresse"`
	Ownership  string  `gorm:"column:propriete"`
	Management string  `gorm:"column:gestion"`
	Equipment  string  `gorm:"column:equipement"`
	Longitude  float64 `gorm:"column:longitude"`
	Latitude   float64 `gorm:"column:latitude"`
	BoroughID  uint    `gorm:"column:arrondissement_id;index;not null"`
	Borough    Borough `gorm:"foreignKey:BoroughID"`
}

func (AquaticFacility) TableName() string {
	return "installations_aquatiques"
}
