package models

// Servicio is a catalog entry. Costo is the current price; notas copy it
// into their detalles at creation time, so editing it never rewrites
// history.
type Servicio struct {
	Clave      uint    `gorm:"primaryKey" json:"clave"`
	Nombre     string  `gorm:"size:255;not null;index" json:"nombre"`
	Costo      float64 `gorm:"not null" json:"costo"`
	Suspendido bool    `gorm:"not null;default:false" json:"suspendido"`
}

func (s *Servicio) Estado() string {
	if s.Suspendido {
		return "Suspendido"
	}
	return "Activo"
}
