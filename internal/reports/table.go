package reports

import "github.com/diewo77/go-taller/internal/models"

// Table is the stable tabular projection of a report: named columns,
// ordered rows. External exporters (spreadsheets, batch tooling) serialize
// it without knowing the row types.
type Table struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

func TablaPeriodo(rows []NotaPeriodo) Table {
	t := Table{Columns: []string{"Folio", "Fecha", "Cliente Clave", "Total"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.Folio, r.Fecha.Format(models.FechaLayout), r.ClienteClave, r.Total})
	}
	return t
}

func TablaClientes(rows []ClienteEstado) Table {
	t := Table{Columns: []string{"Clave", "Apellidos", "Nombres", "Telefono", "Estado"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.Clave, r.Apellidos, r.Nombres, r.Telefono, r.Estado})
	}
	return t
}

func TablaServicios(rows []ServicioEstado) Table {
	t := Table{Columns: []string{"Clave", "Nombre del Servicio", "Costo", "Estado"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.Clave, r.Nombre, r.Costo, r.Estado})
	}
	return t
}

func TablaServiciosTop(rows []ServicioUso) Table {
	t := Table{Columns: []string{"Clave", "Servicio", "Veces"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.Clave, r.Nombre, r.Veces})
	}
	return t
}

func TablaClientesTop(rows []ClienteUso) Table {
	t := Table{Columns: []string{"Clave", "Cliente", "Servicios"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.Clave, r.Cliente, r.Servicios})
	}
	return t
}
