package main

import "fmt"

// MemoriaFisica es el conjunto de marcos de tamaño fijo donde se cargan
// las páginas. Las direcciones físicas siempre las construye el traductor
// a partir de un marco y un desplazamiento válidos, por lo que un acceso
// fuera de rango es una violación de invariante y no un error recuperable.
type MemoriaFisica struct {
	datos      []byte
	cantMarcos int
}

// NuevaMemoriaFisica crea una memoria con la cantidad de marcos indicada
func NuevaMemoriaFisica(cantMarcos int) *MemoriaFisica {
	if cantMarcos <= 0 {
		panic(fmt.Sprintf("cantidad de marcos inválida: %d", cantMarcos))
	}
	return &MemoriaFisica{
		datos:      make([]byte, cantMarcos*TamMarco),
		cantMarcos: cantMarcos,
	}
}

// EscribirMarco copia el contenido de una página completa en el marco
// indicado, sobreescribiendo lo que hubiera. La escritura es siempre del
// bloque entero, nunca parcial.
func (m *MemoriaFisica) EscribirMarco(marco int, datos []byte) {
	if marco < 0 || marco >= m.cantMarcos {
		panic(fmt.Sprintf("marco fuera de rango: %d (total %d)", marco, m.cantMarcos))
	}
	if len(datos) != TamMarco {
		panic(fmt.Sprintf("tamaño de página inválido: %d bytes, se esperaban %d", len(datos), TamMarco))
	}
	inicio := marco * TamMarco
	copy(m.datos[inicio:inicio+TamMarco], datos)
}

// LeerByte devuelve el byte almacenado en la dirección física indicada.
// La dirección se descompone en marco (byte alto) y desplazamiento
// (byte bajo).
func (m *MemoriaFisica) LeerByte(dirFisica int) byte {
	marco := dirFisica >> 8
	desplazamiento := dirFisica & 0xFF
	if marco < 0 || marco >= m.cantMarcos {
		panic(fmt.Sprintf("dirección física fuera de rango: %d (marco %d)", dirFisica, marco))
	}
	return m.datos[marco*TamMarco+desplazamiento]
}

// CantMarcos devuelve la cantidad total de marcos de la memoria
func (m *MemoriaFisica) CantMarcos() int {
	return m.cantMarcos
}
