package main

// TablaPaginas mapea cada número de página a su marco asignado.
// Es un arreglo plano con una entrada por página posible: el acceso es
// directo por índice y no existen claves ausentes. MarcoInvalido indica
// que la página todavía no fue cargada.
type TablaPaginas struct {
	entradas [CantPaginas]int
}

// NuevaTablaPaginas crea la tabla con todas las entradas sin mapear
func NuevaTablaPaginas() *TablaPaginas {
	tabla := &TablaPaginas{}
	for i := range tabla.entradas {
		tabla.entradas[i] = MarcoInvalido
	}
	return tabla
}

// Buscar devuelve el marco asignado a la página, si lo hay
func (tp *TablaPaginas) Buscar(pagina int) (int, bool) {
	marco := tp.entradas[pagina]
	if marco == MarcoInvalido {
		return MarcoInvalido, false
	}
	return marco, true
}

// Asignar establece el mapeo página→marco. Reasignar una página ya
// mapeada sobreescribe la entrada anterior.
func (tp *TablaPaginas) Asignar(pagina int, marco int) {
	tp.entradas[pagina] = marco
}
