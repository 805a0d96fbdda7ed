package main

import (
	"fmt"
	"io"
)

// Metricas acumula los contadores de la corrida. Son monotónicos:
// solo se incrementan mientras dura la simulación.
type Metricas struct {
	TotalDirecciones int
	AciertosTLB      int
	FallosPagina     int
}

func (m *Metricas) registrarDireccion() {
	m.TotalDirecciones++
}

func (m *Metricas) registrarAciertoTLB() {
	m.AciertosTLB++
}

func (m *Metricas) registrarFalloPagina() {
	m.FallosPagina++
}

// TasaAciertos devuelve el porcentaje de aciertos de TLB sobre el total.
// Con cero direcciones procesadas la tasa se define como 0.
func (m *Metricas) TasaAciertos() float64 {
	if m.TotalDirecciones == 0 {
		return 0
	}
	return float64(m.AciertosTLB) / float64(m.TotalDirecciones) * 100
}

// TasaFallos devuelve el porcentaje de fallos de página sobre el total.
// Con cero direcciones procesadas la tasa se define como 0.
func (m *Metricas) TasaFallos() float64 {
	if m.TotalDirecciones == 0 {
		return 0
	}
	return float64(m.FallosPagina) / float64(m.TotalDirecciones) * 100
}

// ImprimirResumen escribe el resumen final de la corrida
func (m *Metricas) ImprimirResumen(w io.Writer) {
	fmt.Fprintf(w, "\nEstadísticas:\n")
	fmt.Fprintf(w, "Total de direcciones traducidas: %d\n", m.TotalDirecciones)
	fmt.Fprintf(w, "Aciertos de TLB: %d\n", m.AciertosTLB)
	fmt.Fprintf(w, "Tasa de aciertos de TLB: %.2f%%\n", m.TasaAciertos())
	fmt.Fprintf(w, "Fallos de página: %d\n", m.FallosPagina)
	fmt.Fprintf(w, "Tasa de fallos de página: %.2f%%\n", m.TasaFallos())
}
