package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/diewo77/go-taller/internal/httpx"
	"github.com/diewo77/go-taller/internal/models"
	"github.com/diewo77/go-taller/internal/services"
)

type NotaHandler struct {
	Svc *services.NotaService
}

func NewNotaHandler(svc *services.NotaService) *NotaHandler {
	return &NotaHandler{Svc: svc}
}

// notaResponse flattens a nota with its computed total for callers.
func notaResponse(n *models.Nota) map[string]any {
	return map[string]any{
		"folio":         n.Folio,
		"fecha":         n.Fecha.Format(models.FechaLayout),
		"cliente_clave": n.ClienteClave,
		"cliente":       n.Cliente,
		"cancelada":     n.Cancelada,
		"estado":        n.Estado(),
		"detalles":      n.Detalles,
		"total":         n.Total(),
	}
}

// Create: POST /notas
func (h *NotaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.NotaInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	n, err := h.Svc.Create(in)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{
		"folio": n.Folio,
		"fecha": n.Fecha.Format(models.FechaLayout),
		"total": n.Total(),
	})
}

// Get: GET /notas/{folio} – any state, header plus detalles
func (h *NotaHandler) Get(w http.ResponseWriter, r *http.Request) {
	folio, ok := pathClave(w, r, "folio")
	if !ok {
		return
	}
	n, err := h.Svc.Get(folio)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, notaResponse(n))
}

// Cancel: POST /notas/{folio}/cancelar
func (h *NotaHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	folio, ok := pathClave(w, r, "folio")
	if !ok {
		return
	}
	n, err := h.Svc.Cancel(folio)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, notaResponse(n))
}

// Restore: POST /notas/{folio}/recuperar
func (h *NotaHandler) Restore(w http.ResponseWriter, r *http.Request) {
	folio, ok := pathClave(w, r, "folio")
	if !ok {
		return
	}
	n, err := h.Svc.Restore(folio)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, notaResponse(n))
}
