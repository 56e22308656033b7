package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/diewo77/go-taller/internal/apperr"
	"github.com/diewo77/go-taller/internal/models"
	"github.com/diewo77/go-taller/internal/validation"
)

// ServicioService maintains the service catalog. Cost changes here never
// touch the snapshots already copied into detalles de nota.
type ServicioService struct {
	db *gorm.DB
}

func NewServicioService(db *gorm.DB) *ServicioService {
	return &ServicioService{db: db}
}

type ServicioInput struct {
	Nombre string  `json:"nombre" validate:"required"`
	Costo  float64 `json:"costo" validate:"required,gt=0"`
}

func (s *ServicioService) Create(in ServicioInput) (*models.Servicio, error) {
	in.Nombre = strings.TrimSpace(in.Nombre)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	sv := models.Servicio{Nombre: in.Nombre, Costo: in.Costo}
	if err := s.db.Create(&sv).Error; err != nil {
		return nil, fmt.Errorf("crear servicio: %w", err)
	}
	return &sv, nil
}

func (s *ServicioService) Update(clave uint, in ServicioInput) (*models.Servicio, error) {
	in.Nombre = strings.TrimSpace(in.Nombre)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	var sv models.Servicio
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("clave = ? AND suspendido = ?", clave, false).First(&sv).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("servicio", clave)
			}
			return fmt.Errorf("buscar servicio: %w", err)
		}
		sv.Nombre = in.Nombre
		sv.Costo = in.Costo
		if err := tx.Save(&sv).Error; err != nil {
			return fmt.Errorf("guardar servicio: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sv, nil
}

// Suspend is one-way, same discipline as clientes.
func (s *ServicioService) Suspend(clave uint) error {
	res := s.db.Model(&models.Servicio{}).
		Where("clave = ? AND suspendido = ?", clave, false).
		Update("suspendido", true)
	if res.Error != nil {
		return fmt.Errorf("suspender servicio: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("servicio", clave)
	}
	return nil
}

// ListActive returns active servicios ordered by nombre.
func (s *ServicioService) ListActive() ([]models.Servicio, error) {
	var out []models.Servicio
	if err := s.db.Where("suspendido = ?", false).
		Order("nombre").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("listar servicios: %w", err)
	}
	return out, nil
}
