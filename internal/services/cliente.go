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

// ClienteService encapsulates cliente maintenance: altas, ediciones and the
// one-way suspension that stands in for deletion.
type ClienteService struct {
	db *gorm.DB
}

func NewClienteService(db *gorm.DB) *ClienteService {
	return &ClienteService{db: db}
}

type ClienteInput struct {
	Apellidos string `json:"apellidos" validate:"required,alphaspace"`
	Nombres   string `json:"nombres" validate:"required,alphaspace"`
	Telefono  string `json:"telefono" validate:"required,len=10,number"`
}

func (in *ClienteInput) normalize() {
	in.Apellidos = strings.TrimSpace(in.Apellidos)
	in.Nombres = strings.TrimSpace(in.Nombres)
	in.Telefono = strings.TrimSpace(in.Telefono)
}

func (s *ClienteService) Create(in ClienteInput) (*models.Cliente, error) {
	in.normalize()
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	c := models.Cliente{
		Apellidos: in.Apellidos,
		Nombres:   in.Nombres,
		Telefono:  in.Telefono,
	}
	if err := s.db.Create(&c).Error; err != nil {
		return nil, fmt.Errorf("crear cliente: %w", err)
	}
	return &c, nil
}

// Update overwrites every mutable field of an active cliente.
func (s *ClienteService) Update(clave uint, in ClienteInput) (*models.Cliente, error) {
	in.normalize()
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	var c models.Cliente
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("clave = ? AND suspendido = ?", clave, false).First(&c).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("cliente", clave)
			}
			return fmt.Errorf("buscar cliente: %w", err)
		}
		c.Apellidos = in.Apellidos
		c.Nombres = in.Nombres
		c.Telefono = in.Telefono
		if err := tx.Save(&c).Error; err != nil {
			return fmt.Errorf("guardar cliente: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Suspend removes a cliente from the active set. There is no inverse
// operation; a suspended cliente only survives as history.
func (s *ClienteService) Suspend(clave uint) error {
	res := s.db.Model(&models.Cliente{}).
		Where("clave = ? AND suspendido = ?", clave, false).
		Update("suspendido", true)
	if res.Error != nil {
		return fmt.Errorf("suspender cliente: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("cliente", clave)
	}
	return nil
}

// ListActive returns active clientes ordered by (apellidos, nombres).
func (s *ClienteService) ListActive() ([]models.Cliente, error) {
	var out []models.Cliente
	if err := s.db.Where("suspendido = ?", false).
		Order("apellidos, nombres").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	return out, nil
}
