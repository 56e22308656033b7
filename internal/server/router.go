package server

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/diewo77/go-taller/internal/handlers"
	"github.com/diewo77/go-taller/internal/httpx"
	"github.com/diewo77/go-taller/internal/reports"
	"github.com/diewo77/go-taller/internal/services"
)

// New constructs the root http.Handler with all routes wired. The router is
// the only caller the core knows about; interactive menus and exporters sit
// outside, behind these endpoints.
func New(db *gorm.DB) http.Handler {
	mux := http.NewServeMux()

	// --- Health endpoints ---
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		if err := db.Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Mantenimiento de datos: clientes y servicios
	ch := handlers.NewClienteHandler(services.NewClienteService(db))
	mux.HandleFunc("POST /clientes", ch.Create)
	mux.HandleFunc("GET /clientes", ch.List)
	mux.HandleFunc("POST /clientes/{clave}", ch.Update)
	mux.HandleFunc("POST /clientes/{clave}/suspender", ch.Suspend)

	sh := handlers.NewServicioHandler(services.NewServicioService(db))
	mux.HandleFunc("POST /servicios", sh.Create)
	mux.HandleFunc("GET /servicios", sh.List)
	mux.HandleFunc("POST /servicios/{clave}", sh.Update)
	mux.HandleFunc("POST /servicios/{clave}/suspender", sh.Suspend)

	// Ciclo de vida de notas
	nh := handlers.NewNotaHandler(services.NewNotaService(db))
	mux.HandleFunc("POST /notas", nh.Create)
	mux.HandleFunc("GET /notas/{folio}", nh.Get)
	mux.HandleFunc("POST /notas/{folio}/cancelar", nh.Cancel)
	mux.HandleFunc("POST /notas/{folio}/recuperar", nh.Restore)

	// Consultas, reportes y estadisticas
	rh := handlers.NewReporteHandler(reports.New(db))
	mux.HandleFunc("GET /reportes/periodo", rh.Periodo)
	mux.HandleFunc("GET /reportes/clientes", rh.Clientes)
	mux.HandleFunc("GET /reportes/servicios", rh.Servicios)
	mux.HandleFunc("GET /estadisticas/tendencia", rh.Tendencia)
	mux.HandleFunc("GET /estadisticas/dispersion", rh.Dispersion)
	mux.HandleFunc("GET /estadisticas/servicios-top", rh.ServiciosTop)
	mux.HandleFunc("GET /estadisticas/clientes-top", rh.ClientesTop)

	return mux
}
