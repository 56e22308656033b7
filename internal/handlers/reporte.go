package handlers

import (
	"net/http"

	"github.com/diewo77/go-taller/internal/httpx"
	"github.com/diewo77/go-taller/internal/reports"
)

// ReporteHandler serves the read-only reports and statistics. Report
// endpoints answer with the tabular projection (named columns, ordered
// rows) so external exporters can consume them as-is.
type ReporteHandler struct {
	Svc *reports.Service
}

func NewReporteHandler(svc *reports.Service) *ReporteHandler {
	return &ReporteHandler{Svc: svc}
}

// rango reads the optional ?inicio=&fin= query bounds.
func (h *ReporteHandler) rango(w http.ResponseWriter, r *http.Request) (reports.Rango, bool) {
	q := r.URL.Query()
	rg, err := h.Svc.ResolveRango(q.Get("inicio"), q.Get("fin"))
	if err != nil {
		httpx.Error(w, err)
		return reports.Rango{}, false
	}
	return rg, true
}

// Periodo: GET /reportes/periodo?inicio=&fin=
func (h *ReporteHandler) Periodo(w http.ResponseWriter, r *http.Request) {
	rg, ok := h.rango(w, r)
	if !ok {
		return
	}
	rows, err := h.Svc.Periodo(rg)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, reports.TablaPeriodo(rows))
}

// Clientes: GET /reportes/clientes – full roster with estado labels
func (h *ReporteHandler) Clientes(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Svc.Clientes()
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, reports.TablaClientes(rows))
}

// Servicios: GET /reportes/servicios – full catalog with estado labels
func (h *ReporteHandler) Servicios(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Svc.Servicios()
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, reports.TablaServicios(rows))
}

// Tendencia: GET /estadisticas/tendencia?inicio=&fin=
func (h *ReporteHandler) Tendencia(w http.ResponseWriter, r *http.Request) {
	rg, ok := h.rango(w, r)
	if !ok {
		return
	}
	t, err := h.Svc.TendenciaCentral(rg)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, t)
}

// Dispersion: GET /estadisticas/dispersion?inicio=&fin=
func (h *ReporteHandler) Dispersion(w http.ResponseWriter, r *http.Request) {
	rg, ok := h.rango(w, r)
	if !ok {
		return
	}
	d, err := h.Svc.Dispersion(rg)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, d)
}

// ServiciosTop: GET /estadisticas/servicios-top?inicio=&fin=
func (h *ReporteHandler) ServiciosTop(w http.ResponseWriter, r *http.Request) {
	rg, ok := h.rango(w, r)
	if !ok {
		return
	}
	rows, err := h.Svc.ServiciosTop(rg)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, reports.TablaServiciosTop(rows))
}

// ClientesTop: GET /estadisticas/clientes-top?inicio=&fin=
func (h *ReporteHandler) ClientesTop(w http.ResponseWriter, r *http.Request) {
	rg, ok := h.rango(w, r)
	if !ok {
		return
	}
	rows, err := h.Svc.ClientesTop(rg)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, reports.TablaClientesTop(rows))
}
