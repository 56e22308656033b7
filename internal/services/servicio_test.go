package services

import (
	"testing"

	"github.com/diewo77/go-taller/internal/apperr"
)

func TestServicioCreateValidation(t *testing.T) {
	svc := NewServicioService(setupTestDB(t))

	tests := []struct {
		name string
		in   ServicioInput
	}{
		{"empty nombre", ServicioInput{Nombre: "", Costo: 100}},
		{"zero costo", ServicioInput{Nombre: "Afinacion", Costo: 0}},
		{"negative costo", ServicioInput{Nombre: "Afinacion", Costo: -5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(tt.in); !apperr.IsValidation(err) {
				t.Fatalf("expected ValidationError got %v", err)
			}
		})
	}

	sv, err := svc.Create(ServicioInput{Nombre: "Afinacion", Costo: 350})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if sv.Clave == 0 || sv.Suspendido {
		t.Fatalf("unexpected servicio: %+v", sv)
	}
}

func TestServicioSuspendAndList(t *testing.T) {
	svc := NewServicioService(setupTestDB(t))
	for _, in := range []ServicioInput{
		{Nombre: "Cambio de aceite", Costo: 250},
		{Nombre: "Alineacion", Costo: 400},
		{Nombre: "Balanceo", Costo: 300},
	} {
		if _, err := svc.Create(in); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	activos, err := svc.ListActive()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(activos) != 3 {
		t.Fatalf("expected 3 activos got %d", len(activos))
	}
	// ordered by nombre
	if activos[0].Nombre != "Alineacion" || activos[1].Nombre != "Balanceo" || activos[2].Nombre != "Cambio de aceite" {
		t.Fatalf("unexpected order: %v", activos)
	}

	if err := svc.Suspend(activos[0].Clave); err != nil {
		t.Fatalf("suspend: %v", err)
	}
	if err := svc.Suspend(activos[0].Clave); !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFoundError got %v", err)
	}
	activos, _ = svc.ListActive()
	if len(activos) != 2 {
		t.Fatalf("expected 2 activos got %d", len(activos))
	}
}

func TestServicioUpdate(t *testing.T) {
	svc := NewServicioService(setupTestDB(t))
	sv, err := svc.Create(ServicioInput{Nombre: "Frenos", Costo: 500})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Update(sv.Clave, ServicioInput{Nombre: "Frenos delanteros", Costo: 650})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Nombre != "Frenos delanteros" || got.Costo != 650 {
		t.Fatalf("update did not overwrite: %+v", got)
	}

	if _, err := svc.Update(9999, ServicioInput{Nombre: "Frenos", Costo: 650}); !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFoundError got %v", err)
	}
}
