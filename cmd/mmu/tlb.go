package main

import (
	"fmt"

	"github.com/sisoputnfrba/tp-2025-2c-LosTraductores/utils"
)

// EntradaTLB asocia una página con el marco que la contiene
type EntradaTLB struct {
	Pagina    int
	Marco     int
	UltimoUso int64 // Para LRU, contador incremental
}

// TLB es la caché de traducciones página→marco, con reemplazo FIFO o LRU.
// Las entradas se mantienen en orden de inserción; para LRU la víctima se
// elige por el menor UltimoUso.
type TLB struct {
	entradas  []EntradaTLB
	capacidad int
	algoritmo string
	contador  int64
}

// NuevaTLB crea una TLB con la capacidad y el algoritmo indicados.
// Capacidad 0 deshabilita la TLB: toda búsqueda es miss.
func NuevaTLB(capacidad int, algoritmo string) *TLB {
	if capacidad < 0 {
		capacidad = 0
	}
	if algoritmo != "FIFO" {
		algoritmo = "LRU"
	}
	return &TLB{
		entradas:  make([]EntradaTLB, 0, capacidad),
		capacidad: capacidad,
		algoritmo: algoritmo,
	}
}

// Buscar devuelve el marco asociado a la página si está en la TLB.
// Bajo LRU el acierto refresca la recencia de la entrada; el miss no
// modifica el estado.
func (t *TLB) Buscar(pagina int) (int, bool) {
	for i := range t.entradas {
		if t.entradas[i].Pagina == pagina {
			if t.algoritmo == "LRU" {
				t.contador++
				t.entradas[i].UltimoUso = t.contador
			}
			return t.entradas[i].Marco, true
		}
	}
	return MarcoInvalido, false
}

// Insertar agrega la traducción página→marco como entrada más reciente.
// Si ya existe una entrada para la página se elimina primero, así nunca
// hay duplicados ni se consume capacidad de más. Al estar llena se
// desaloja la víctima según el algoritmo configurado.
func (t *TLB) Insertar(pagina int, marco int) {
	if t.capacidad == 0 {
		return
	}

	for i := range t.entradas {
		if t.entradas[i].Pagina == pagina {
			t.entradas = append(t.entradas[:i], t.entradas[i+1:]...)
			break
		}
	}

	if len(t.entradas) >= t.capacidad {
		victima := 0
		if t.algoritmo == "LRU" {
			menorUso := t.entradas[0].UltimoUso
			for i, e := range t.entradas {
				if e.UltimoUso < menorUso {
					menorUso = e.UltimoUso
					victima = i
				}
			}
		}
		utils.InfoLog.Debug(fmt.Sprintf("TLB reemplazo: desalojando página %d por página %d",
			t.entradas[victima].Pagina, pagina))
		t.entradas = append(t.entradas[:victima], t.entradas[victima+1:]...)
	}

	t.contador++
	t.entradas = append(t.entradas, EntradaTLB{
		Pagina:    pagina,
		Marco:     marco,
		UltimoUso: t.contador,
	})
}

// Tamanio devuelve la cantidad de entradas cargadas
func (t *TLB) Tamanio() int {
	return len(t.entradas)
}
