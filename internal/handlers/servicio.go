package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/diewo77/go-taller/internal/httpx"
	"github.com/diewo77/go-taller/internal/services"
)

type ServicioHandler struct {
	Svc *services.ServicioService
}

func NewServicioHandler(svc *services.ServicioService) *ServicioHandler {
	return &ServicioHandler{Svc: svc}
}

// Create: POST /servicios
func (h *ServicioHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.ServicioInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	sv, err := h.Svc.Create(in)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, sv)
}

// List: GET /servicios – active servicios ordered by nombre
func (h *ServicioHandler) List(w http.ResponseWriter, r *http.Request) {
	servicios, err := h.Svc.ListActive()
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": servicios, "total": len(servicios)})
}

// Update: POST /servicios/{clave}
func (h *ServicioHandler) Update(w http.ResponseWriter, r *http.Request) {
	clave, ok := pathClave(w, r, "clave")
	if !ok {
		return
	}
	var in services.ServicioInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	sv, err := h.Svc.Update(clave, in)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, sv)
}

// Suspend: POST /servicios/{clave}/suspender
func (h *ServicioHandler) Suspend(w http.ResponseWriter, r *http.Request) {
	clave, ok := pathClave(w, r, "clave")
	if !ok {
		return
	}
	if err := h.Svc.Suspend(clave); err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"clave": clave, "suspendido": true})
}
