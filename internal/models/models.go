package models

// Borough is a Montreal borough (arrondissement). DateMaj is kept as the raw
// string published by the city, e.g. "2021-10-14 09:55:12".
type Borough struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"column:nom;uniqueIndex;not null"`
	Key     string `gorm:"column:cle"`
	DateMaj string `gorm:"column:date_maj;index"`
}

func (Borough) TableName() string {
	return "arrondissements"
}

// All returns every persisted model, in migration order.
func All() []interface{} {
	return []interface{}{
		&Borough{},
		&AquaticFacility{},
		&IceRink{},
		&Slide{},
		&Subscriber{},
	}
}
