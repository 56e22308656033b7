package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/diewo77/go-taller/internal/models"
)

func setupRouter(t *testing.T) http.Handler {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Cliente{}, &models.Servicio{}, &models.Nota{}, &models.NotaDetalle{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db)
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	var payload map[string]any
	if len(w.Body.Bytes()) > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &payload)
	}
	return w, payload
}

func TestHealth(t *testing.T) {
	h := setupRouter(t)
	w, payload := doJSON(t, h, http.MethodGet, "/healthz", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if payload["status"] != "ok" {
		t.Fatalf("unexpected body: %v", payload)
	}
}

func TestNotaFlow(t *testing.T) {
	h := setupRouter(t)

	// seed cliente + servicio over the API
	w, cliente := doJSON(t, h, http.MethodPost, "/clientes",
		`{"apellidos":"Perez","nombres":"Juan","telefono":"5512345678"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create cliente: expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	w, servicio := doJSON(t, h, http.MethodPost, "/servicios",
		`{"nombre":"Afinacion","costo":350}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create servicio: expected 201 got %d body=%s", w.Code, w.Body.String())
	}

	body := fmt.Sprintf(`{"cliente_clave":%v,"fecha":"2025-05-10","detalles":[{"servicio_clave":%v,"observaciones":"ruido al frenar"}]}`,
		cliente["clave"], servicio["clave"])
	w, nota := doJSON(t, h, http.MethodPost, "/notas", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("create nota: expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	if nota["folio"].(float64) != 1 || nota["total"].(float64) != 350 {
		t.Fatalf("unexpected nota response: %v", nota)
	}

	// lookup by folio returns header plus detalles
	w, detail := doJSON(t, h, http.MethodGet, "/notas/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get nota: expected 200 got %d", w.Code)
	}
	if detail["estado"] != "Activa" {
		t.Fatalf("estado = %v", detail["estado"])
	}
	if len(detail["detalles"].([]any)) != 1 {
		t.Fatalf("unexpected detalles: %v", detail["detalles"])
	}

	// cancel, then restore
	w, cancelled := doJSON(t, h, http.MethodPost, "/notas/1/cancelar", "")
	if w.Code != http.StatusOK || cancelled["estado"] != "Cancelada" {
		t.Fatalf("cancel: code=%d body=%v", w.Code, cancelled)
	}
	w, _ = doJSON(t, h, http.MethodPost, "/notas/1/cancelar", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("second cancel: expected 404 got %d", w.Code)
	}
	w, restored := doJSON(t, h, http.MethodPost, "/notas/1/recuperar", "")
	if w.Code != http.StatusOK || restored["estado"] != "Activa" {
		t.Fatalf("restore: code=%d body=%v", w.Code, restored)
	}
}

func TestNotaValidationStatus(t *testing.T) {
	h := setupRouter(t)

	// no active cliente referenced
	w, payload := doJSON(t, h, http.MethodPost, "/notas",
		`{"cliente_clave":7,"detalles":[{"servicio_clave":1}]}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", w.Code)
	}
	if payload["error"] != "validation_failed" {
		t.Fatalf("unexpected body: %v", payload)
	}

	w, _ = doJSON(t, h, http.MethodPost, "/notas", `{bad json`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}

	w, _ = doJSON(t, h, http.MethodGet, "/notas/99", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
}

func TestClienteValidationStatus(t *testing.T) {
	h := setupRouter(t)
	w, payload := doJSON(t, h, http.MethodPost, "/clientes",
		`{"apellidos":"Perez","nombres":"Juan","telefono":"123"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", w.Code)
	}
	details, ok := payload["details"].(map[string]any)
	if !ok || details["telefono"] == nil {
		t.Fatalf("expected offending field in details, got %v", payload)
	}
}

func TestReportesEndpoints(t *testing.T) {
	h := setupRouter(t)

	doJSON(t, h, http.MethodPost, "/clientes", `{"apellidos":"Perez","nombres":"Juan","telefono":"5512345678"}`)
	doJSON(t, h, http.MethodPost, "/servicios", `{"nombre":"Afinacion","costo":100}`)
	doJSON(t, h, http.MethodPost, "/notas", `{"cliente_clave":1,"fecha":"2025-05-01","detalles":[{"servicio_clave":1}]}`)
	doJSON(t, h, http.MethodPost, "/notas", `{"cliente_clave":1,"fecha":"2025-05-02","detalles":[{"servicio_clave":1}]}`)

	w, _ := doJSON(t, h, http.MethodGet, "/reportes/periodo?inicio=2025-05-01&fin=2025-05-31", "")
	if w.Code != http.StatusOK {
		t.Fatalf("periodo: expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	var tabla struct {
		Columns []string `json:"columns"`
		Rows    [][]any  `json:"rows"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &tabla); err != nil {
		t.Fatalf("decode tabla: %v", err)
	}
	if len(tabla.Columns) != 4 || len(tabla.Rows) != 2 {
		t.Fatalf("unexpected tabla: %+v", tabla)
	}

	w, tendencia := doJSON(t, h, http.MethodGet, "/estadisticas/tendencia", "")
	if w.Code != http.StatusOK {
		t.Fatalf("tendencia: expected 200 got %d", w.Code)
	}
	if tendencia["conteo"].(float64) != 2 {
		t.Fatalf("unexpected tendencia: %v", tendencia)
	}

	w, payload := doJSON(t, h, http.MethodGet, "/estadisticas/dispersion?inicio=2025-05-01&fin=2025-05-01", "")
	if w.Code != http.StatusUnprocessableEntity || payload["error"] != "insufficient_data" {
		t.Fatalf("dispersion: code=%d body=%v", w.Code, payload)
	}

	w, _ = doJSON(t, h, http.MethodGet, "/estadisticas/servicios-top", "")
	if w.Code != http.StatusOK {
		t.Fatalf("servicios-top: expected 200 got %d", w.Code)
	}
}

func TestReportesSinDatos(t *testing.T) {
	h := setupRouter(t)
	w, payload := doJSON(t, h, http.MethodGet, "/estadisticas/tendencia", "")
	if w.Code != http.StatusUnprocessableEntity || payload["error"] != "no_data" {
		t.Fatalf("expected no_data 422, got code=%d body=%v", w.Code, payload)
	}
}
