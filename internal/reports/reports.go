// Package reports holds the read-only side of the system: period listings,
// rosters, usage rankings and descriptive statistics over nota totals. Every
// query pulls matching rows into memory, which is fine at workshop scale.
package reports

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/diewo77/go-taller/internal/apperr"
	"github.com/diewo77/go-taller/internal/models"
)

// TopN is how many entries the usage rankings keep. Ties past the cutoff
// are truncated.
const TopN = 3

type Service struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Rango is an inclusive [Inicio, Fin] calendar date range.
type Rango struct {
	Inicio time.Time
	Fin    time.Time
}

// ResolveRango parses the optional bounds. An empty inicio falls back to the
// oldest active nota's fecha, an empty fin to today.
func (s *Service) ResolveRango(inicio, fin string) (Rango, error) {
	var r Rango
	if strings.TrimSpace(inicio) == "" {
		// Pluck on the typed fecha column; a MIN() aggregate comes back
		// untyped from sqlite and cannot scan into time.Time.
		var fechas []time.Time
		if err := s.db.Model(&models.Nota{}).
			Where("cancelada = ?", false).
			Order("fecha").Limit(1).
			Pluck("fecha", &fechas).Error; err != nil {
			return r, fmt.Errorf("fecha mas antigua: %w", err)
		}
		if len(fechas) == 0 {
			return r, apperr.ErrNoData
		}
		r.Inicio = fechas[0]
	} else {
		f, err := models.ParseFecha(inicio)
		if err != nil {
			return r, apperr.Validation("inicio", "formato esperado YYYY-MM-DD")
		}
		r.Inicio = f
	}

	if strings.TrimSpace(fin) == "" {
		r.Fin = models.Hoy()
	} else {
		f, err := models.ParseFecha(fin)
		if err != nil {
			return r, apperr.Validation("fin", "formato esperado YYYY-MM-DD")
		}
		r.Fin = f
	}
	return r, nil
}

// NotaPeriodo is one row of the period listing.
type NotaPeriodo struct {
	Folio        uint      `json:"folio"`
	Fecha        time.Time `json:"fecha"`
	ClienteClave uint      `json:"cliente_clave"`
	Total        float64   `json:"total"`
}

// Periodo lists every active nota dated inside r with its total, oldest
// first. Notas without detalles should not exist, but the LEFT JOIN reports
// them as 0 rather than hiding them.
func (s *Service) Periodo(r Rango) ([]NotaPeriodo, error) {
	var rows []NotaPeriodo
	err := s.db.Raw(`
		SELECT n.folio, n.fecha, n.cliente_clave,
		       COALESCE(SUM(d.costo), 0) AS total
		FROM notas n
		LEFT JOIN detalles_nota d ON n.folio = d.folio
		WHERE n.cancelada = ? AND n.fecha BETWEEN ? AND ?
		GROUP BY n.folio, n.fecha, n.cliente_clave
		ORDER BY n.fecha, n.folio`,
		false, r.Inicio, r.Fin).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("consulta por periodo: %w", err)
	}
	return rows, nil
}

// ClienteEstado is one roster row: every cliente, active or not, with a
// derived status label.
type ClienteEstado struct {
	Clave     uint   `json:"clave"`
	Apellidos string `json:"apellidos"`
	Nombres   string `json:"nombres"`
	Telefono  string `json:"telefono"`
	Estado    string `json:"estado"`
}

func (s *Service) Clientes() ([]ClienteEstado, error) {
	var rows []ClienteEstado
	err := s.db.Raw(`
		SELECT clave, apellidos, nombres, telefono,
		       CASE suspendido WHEN ? THEN 'Activo' ELSE 'Suspendido' END AS estado
		FROM clientes
		ORDER BY clave`, false).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("reporte de clientes: %w", err)
	}
	return rows, nil
}

// ServicioEstado is one catalog row with its derived status label.
type ServicioEstado struct {
	Clave  uint    `json:"clave"`
	Nombre string  `json:"nombre"`
	Costo  float64 `json:"costo"`
	Estado string  `json:"estado"`
}

func (s *Service) Servicios() ([]ServicioEstado, error) {
	var rows []ServicioEstado
	err := s.db.Raw(`
		SELECT clave, nombre, costo,
		       CASE suspendido WHEN ? THEN 'Activo' ELSE 'Suspendido' END AS estado
		FROM servicios
		ORDER BY nombre`, false).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("reporte de servicios: %w", err)
	}
	return rows, nil
}

// ServicioUso ranks a servicio by how many detalles referenced it in range.
type ServicioUso struct {
	Clave  uint   `json:"clave"`
	Nombre string `json:"nombre"`
	Veces  int    `json:"veces"`
}

// ServiciosTop returns the TopN most requested servicios in r, most used
// first. Clave ascending breaks count ties deterministically.
func (s *Service) ServiciosTop(r Rango) ([]ServicioUso, error) {
	var rows []ServicioUso
	err := s.db.Raw(`
		SELECT s.clave, s.nombre, COUNT(*) AS veces
		FROM notas n
		JOIN detalles_nota d ON n.folio = d.folio
		JOIN servicios s ON d.servicio_clave = s.clave
		WHERE n.cancelada = ? AND n.fecha BETWEEN ? AND ?
		GROUP BY s.clave, s.nombre
		ORDER BY veces DESC, s.clave
		LIMIT ?`, false, r.Inicio, r.Fin, TopN).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("servicios mas prestados: %w", err)
	}
	return rows, nil
}

// ClienteUso ranks a cliente by how many servicios it requested in range.
type ClienteUso struct {
	Clave     uint   `json:"clave"`
	Cliente   string `json:"cliente"`
	Servicios int    `json:"servicios"`
}

func (s *Service) ClientesTop(r Rango) ([]ClienteUso, error) {
	var rows []ClienteUso
	err := s.db.Raw(`
		SELECT c.clave, c.apellidos || ' ' || c.nombres AS cliente,
		       COUNT(*) AS servicios
		FROM notas n
		JOIN detalles_nota d ON n.folio = d.folio
		JOIN clientes c ON n.cliente_clave = c.clave
		WHERE n.cancelada = ? AND n.fecha BETWEEN ? AND ?
		GROUP BY c.clave, c.apellidos, c.nombres
		ORDER BY servicios DESC, c.clave
		LIMIT ?`, false, r.Inicio, r.Fin, TopN).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("clientes con mas servicios: %w", err)
	}
	return rows, nil
}

// TotalesPorNota returns the per-folio totals for active notas in r, the
// sample every statistic is computed over.
func (s *Service) TotalesPorNota(r Rango) ([]float64, error) {
	var totales []float64
	err := s.db.Raw(`
		SELECT SUM(d.costo) AS total
		FROM notas n
		JOIN detalles_nota d ON n.folio = d.folio
		WHERE n.cancelada = ? AND n.fecha BETWEEN ? AND ?
		GROUP BY n.folio`, false, r.Inicio, r.Fin).Scan(&totales).Error
	if err != nil {
		return nil, fmt.Errorf("totales por nota: %w", err)
	}
	return totales, nil
}

// TendenciaCentral computes count/mean/median/modes over the totals in r.
func (s *Service) TendenciaCentral(r Rango) (Tendencia, error) {
	totales, err := s.TotalesPorNota(r)
	if err != nil {
		return Tendencia{}, err
	}
	return CalculaTendencia(totales)
}

// Dispersion computes variance, deviation and quartiles over the totals in r.
func (s *Service) Dispersion(r Rango) (Dispersion, error) {
	totales, err := s.TotalesPorNota(r)
	if err != nil {
		return Dispersion{}, err
	}
	return CalculaDispersion(totales)
}
