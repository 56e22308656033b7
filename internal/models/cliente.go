package models

// Cliente is a workshop customer. Suspension is a soft delete: a suspended
// cliente disappears from active listings but keeps every nota that
// references it.
type Cliente struct {
	Clave      uint   `gorm:"primaryKey" json:"clave"`
	Apellidos  string `gorm:"size:255;not null;index:idx_clientes_nombre,priority:1" json:"apellidos"`
	Nombres    string `gorm:"size:255;not null;index:idx_clientes_nombre,priority:2" json:"nombres"`
	Telefono   string `gorm:"size:10;not null" json:"telefono"`
	Suspendido bool   `gorm:"not null;default:false" json:"suspendido"`
}

func (c *Cliente) NombreCompleto() string {
	return c.Apellidos + " " + c.Nombres
}

func (c *Cliente) Estado() string {
	if c.Suspendido {
		return "Suspendido"
	}
	return "Activo"
}
