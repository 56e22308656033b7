package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/diewo77/go-taller/internal/httpx"
	"github.com/diewo77/go-taller/internal/services"
)

type ClienteHandler struct {
	Svc *services.ClienteService
}

func NewClienteHandler(svc *services.ClienteService) *ClienteHandler {
	return &ClienteHandler{Svc: svc}
}

// Create: POST /clientes
func (h *ClienteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.ClienteInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	c, err := h.Svc.Create(in)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, c)
}

// List: GET /clientes – active clientes ordered by (apellidos, nombres)
func (h *ClienteHandler) List(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.Svc.ListActive()
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": clientes, "total": len(clientes)})
}

// Update: POST /clientes/{clave}
func (h *ClienteHandler) Update(w http.ResponseWriter, r *http.Request) {
	clave, ok := pathClave(w, r, "clave")
	if !ok {
		return
	}
	var in services.ClienteInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	c, err := h.Svc.Update(clave, in)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, c)
}

// Suspend: POST /clientes/{clave}/suspender
func (h *ClienteHandler) Suspend(w http.ResponseWriter, r *http.Request) {
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

// pathClave parses a numeric path segment; on failure it writes the error
// response and reports false.
func pathClave(w http.ResponseWriter, r *http.Request, name string) (uint, bool) {
	n, err := strconv.ParseUint(r.PathValue(name), 10, 32)
	if err != nil || n == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id",
			map[string]string{name: "debe ser un entero positivo"})
		return 0, false
	}
	return uint(n), true
}
