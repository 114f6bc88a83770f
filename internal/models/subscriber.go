package models

// Subscriber is created once through the subscription endpoint and never
// mutated afterwards.
type Subscriber struct {
	ID       uint      `gorm:"primaryKey"`
	FullName string    `gorm:"column:full_name;not null"`
	Email    string    `gorm:"column:email;index;not null"`
	Boroughs []Borough `gorm:"many2many:abonne_arrondissements;joinForeignKey:AbonneID;joinReferences:ArrondissementID"`
}

func (Subscriber) TableName() string {
	return "abonnes"
}

// BoroughIDs returns the ids of the followed boroughs in their stored order.
func (s Subscriber) BoroughIDs() []uint {
	ids := make([]uint, 0, len(s.Boroughs))
	for _, b := range s.Boroughs {
		ids = append(ids, b.ID)
	}
	return ids
}
