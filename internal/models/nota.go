package models

import "time"

// Nota is a service ticket composed of one or more detalles. The folio is
// assigned by the lifecycle service (MAX+1 inside the creation transaction),
// never by the database.
type Nota struct {
	Folio        uint          `gorm:"primaryKey;autoIncrement:false" json:"folio"`
	Fecha        time.Time     `gorm:"not null;index" json:"fecha"`
	ClienteClave uint          `gorm:"not null;index" json:"cliente_clave"`
	Cliente      *Cliente      `gorm:"foreignKey:ClienteClave" json:"cliente,omitempty"`
	Cancelada    bool          `gorm:"not null;default:false" json:"cancelada"`
	Detalles     []NotaDetalle `gorm:"foreignKey:Folio" json:"detalles,omitempty"`
}

// gorm's pluralizer leaves "nota" alone (it reads the -a ending as an
// already-plural Latin noun), so the table name is pinned explicitly.
func (Nota) TableName() string { return "notas" }

// Total sums the detalle costs. A persisted nota always has at least one
// detalle, so 0 only shows up on unsaved values.
func (n *Nota) Total() float64 {
	var total float64
	for _, d := range n.Detalles {
		total += d.Costo
	}
	return total
}

func (n *Nota) Estado() string {
	if n.Cancelada {
		return "Cancelada"
	}
	return "Activa"
}

// NotaDetalle is one line of a nota. Costo is a snapshot of the servicio
// price at insertion time.
type NotaDetalle struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Folio         uint      `gorm:"not null;index" json:"folio"`
	ServicioClave uint      `gorm:"not null" json:"servicio_clave"`
	Servicio      *Servicio `gorm:"foreignKey:ServicioClave" json:"servicio,omitempty"`
	Observaciones string    `gorm:"size:500" json:"observaciones"`
	Costo         float64   `gorm:"not null" json:"costo"`
}

func (NotaDetalle) TableName() string { return "detalles_nota" }
