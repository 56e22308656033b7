package reports

import (
	"math"
	"sort"

	"github.com/diewo77/go-taller/internal/apperr"
)

// Tendencia are the central-tendency statistics of a sample of nota totals.
type Tendencia struct {
	Conteo  int     `json:"conteo"`
	Media   float64 `json:"media"`
	Mediana float64 `json:"mediana"`
	// Modas holds every value tied for highest frequency, ascending. Ties
	// are reported together, never broken arbitrarily.
	Modas []float64 `json:"modas"`
}

// CalculaTendencia computes count, arithmetic mean, median and multimode.
// An empty sample is ErrNoData.
func CalculaTendencia(valores []float64) (Tendencia, error) {
	if len(valores) == 0 {
		return Tendencia{}, apperr.ErrNoData
	}
	return Tendencia{
		Conteo:  len(valores),
		Media:   media(valores),
		Mediana: mediana(valores),
		Modas:   multimoda(valores),
	}, nil
}

// Dispersion are the dispersion and distribution statistics of a sample.
// Variance and deviation are the population forms; quartiles use linear
// interpolation.
type Dispersion struct {
	Varianza   float64 `json:"varianza"`
	Desviacion float64 `json:"desviacion"`
	Q1         float64 `json:"q1"`
	Q2         float64 `json:"q2"`
	Q3         float64 `json:"q3"`
	IQR        float64 `json:"iqr"`
}

// CalculaDispersion needs at least 2 data points; fewer is
// ErrInsufficientData, a reportable condition rather than a failure.
func CalculaDispersion(valores []float64) (Dispersion, error) {
	if len(valores) < 2 {
		return Dispersion{}, apperr.ErrInsufficientData
	}
	ordenados := append([]float64(nil), valores...)
	sort.Float64s(ordenados)

	varianza := varianzaPoblacional(valores)
	q1 := cuantil(ordenados, 0.25)
	q2 := cuantil(ordenados, 0.50)
	q3 := cuantil(ordenados, 0.75)
	return Dispersion{
		Varianza:   varianza,
		Desviacion: math.Sqrt(varianza),
		Q1:         q1,
		Q2:         q2,
		Q3:         q3,
		IQR:        q3 - q1,
	}, nil
}

func media(valores []float64) float64 {
	var suma float64
	for _, v := range valores {
		suma += v
	}
	return suma / float64(len(valores))
}

func mediana(valores []float64) float64 {
	ordenados := append([]float64(nil), valores...)
	sort.Float64s(ordenados)
	n := len(ordenados)
	if n%2 == 1 {
		return ordenados[n/2]
	}
	return (ordenados[n/2-1] + ordenados[n/2]) / 2
}

// multimoda returns every value tied for highest frequency, ascending.
func multimoda(valores []float64) []float64 {
	frecuencia := make(map[float64]int, len(valores))
	max := 0
	for _, v := range valores {
		frecuencia[v]++
		if frecuencia[v] > max {
			max = frecuencia[v]
		}
	}
	var modas []float64
	for v, f := range frecuencia {
		if f == max {
			modas = append(modas, v)
		}
	}
	sort.Float64s(modas)
	return modas
}

func varianzaPoblacional(valores []float64) float64 {
	m := media(valores)
	var suma float64
	for _, v := range valores {
		d := v - m
		suma += d * d
	}
	return suma / float64(len(valores))
}

// cuantil interpolates linearly over an already sorted sample: the q-th
// quantile sits at position q*(n-1).
func cuantil(ordenados []float64, q float64) float64 {
	pos := q * float64(len(ordenados)-1)
	lo := int(math.Floor(pos))
	if lo >= len(ordenados)-1 {
		return ordenados[len(ordenados)-1]
	}
	frac := pos - float64(lo)
	return ordenados[lo] + frac*(ordenados[lo+1]-ordenados[lo])
}
