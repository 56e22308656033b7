package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/diewo77/go-taller/internal/apperr"
	"github.com/diewo77/go-taller/internal/models"
	"github.com/diewo77/go-taller/internal/validation"
)

// NotaService drives the nota lifecycle: create with its detalles in one
// transaction, cancel, restore, and lookup by folio.
type NotaService struct {
	db *gorm.DB
}

func NewNotaService(db *gorm.DB) *NotaService {
	return &NotaService{db: db}
}

type DetalleInput struct {
	ServicioClave uint   `json:"servicio_clave" validate:"required"`
	Observaciones string `json:"observaciones"`
}

type NotaInput struct {
	ClienteClave uint `json:"cliente_clave" validate:"required"`
	// Fecha is YYYY-MM-DD; empty means today. Future dates are rejected.
	Fecha    string         `json:"fecha"`
	Detalles []DetalleInput `json:"detalles" validate:"required,min=1,dive"`
}

// Create validates the cliente and every servicio against the active set,
// allocates the next folio, snapshots each servicio cost into its detalle
// and persists everything atomically. A nota row is never left behind
// without detalles.
func (s *NotaService) Create(in NotaInput) (*models.Nota, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	fecha, err := resolveFecha(in.Fecha)
	if err != nil {
		return nil, err
	}

	var nota models.Nota
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var cliente models.Cliente
		if err := tx.Where("clave = ? AND suspendido = ?", in.ClienteClave, false).
			First(&cliente).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Validation("cliente_clave", "no corresponde a un cliente activo")
			}
			return fmt.Errorf("buscar cliente: %w", err)
		}

		// MAX+1 assumes a single concurrent writer; the transaction keeps
		// the read-then-write pair together with the insert.
		var next int64
		if err := tx.Model(&models.Nota{}).
			Select("COALESCE(MAX(folio), 0) + 1").Scan(&next).Error; err != nil {
			return fmt.Errorf("siguiente folio: %w", err)
		}

		nota = models.Nota{
			Folio:        uint(next),
			Fecha:        fecha,
			ClienteClave: cliente.Clave,
		}
		for _, d := range in.Detalles {
			var servicio models.Servicio
			if err := tx.Where("clave = ? AND suspendido = ?", d.ServicioClave, false).
				First(&servicio).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.Validation("servicio_clave", "no corresponde a un servicio activo")
				}
				return fmt.Errorf("buscar servicio: %w", err)
			}
			nota.Detalles = append(nota.Detalles, models.NotaDetalle{
				ServicioClave: servicio.Clave,
				Observaciones: strings.TrimSpace(d.Observaciones),
				// snapshot: later catalog edits must not move this total
				Costo: servicio.Costo,
			})
		}

		if err := tx.Create(&nota).Error; err != nil {
			return fmt.Errorf("insertar nota: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &nota, nil
}

// Cancel flips an active nota to cancelled and returns its full detail.
// Callers wanting a confirmation step should Get first; the detail needed
// to decide is the same either way.
func (s *NotaService) Cancel(folio uint) (*models.Nota, error) {
	return s.toggle(folio, false, true)
}

// Restore brings a cancelled nota back to active. Symmetric to Cancel.
func (s *NotaService) Restore(folio uint) (*models.Nota, error) {
	return s.toggle(folio, true, false)
}

func (s *NotaService) toggle(folio uint, from, to bool) (*models.Nota, error) {
	var nota models.Nota
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Nota{}).
			Where("folio = ? AND cancelada = ?", folio, from).
			Update("cancelada", to)
		if res.Error != nil {
			return fmt.Errorf("actualizar nota: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("nota", folio)
		}
		return tx.Preload("Cliente").Preload("Detalles").
			First(&nota, "folio = ?", folio).Error
	})
	if err != nil {
		return nil, err
	}
	return &nota, nil
}

// Get returns the header and detalles for any folio regardless of its
// cancelled state.
func (s *NotaService) Get(folio uint) (*models.Nota, error) {
	var nota models.Nota
	if err := s.db.Preload("Cliente").Preload("Detalles").
		First(&nota, "folio = ?", folio).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("nota", folio)
		}
		return nil, fmt.Errorf("consultar nota: %w", err)
	}
	return &nota, nil
}

func resolveFecha(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return models.Hoy(), nil
	}
	f, err := models.ParseFecha(raw)
	if err != nil {
		return time.Time{}, apperr.Validation("fecha", "formato esperado YYYY-MM-DD")
	}
	if f.After(models.Hoy()) {
		return time.Time{}, apperr.Validation("fecha", "no puede ser futura")
	}
	return f, nil
}
