package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sisoputnfrba/tp-2025-2c-LosTraductores/utils"
)

// Almacenamiento simula el disco: un blob de 256 páginas de 256 bytes,
// accesible por número de página. Una lectura corta es fatal para la
// corrida, no hay semántica de reintento.
type Almacenamiento struct {
	archivo   *os.File
	retardoMs int
}

// AbrirAlmacenamiento abre el blob de almacenamiento secundario y valida
// que tenga exactamente el tamaño esperado.
func AbrirAlmacenamiento(ruta string, retardoMs int) (*Almacenamiento, error) {
	archivo, err := os.Open(ruta)
	if err != nil {
		return nil, fmt.Errorf("error al abrir almacenamiento secundario %s: %v", ruta, err)
	}

	info, err := archivo.Stat()
	if err != nil {
		archivo.Close()
		return nil, fmt.Errorf("error al consultar almacenamiento secundario %s: %v", ruta, err)
	}
	if info.Size() != TamAlmacenamiento {
		archivo.Close()
		return nil, fmt.Errorf("tamaño de almacenamiento inválido: %d bytes, se esperaban %d",
			info.Size(), TamAlmacenamiento)
	}

	utils.InfoLog.Info("Almacenamiento secundario abierto", "ruta", ruta, "tamaño", info.Size())

	return &Almacenamiento{archivo: archivo, retardoMs: retardoMs}, nil
}

// LeerPagina devuelve el contenido completo de la página indicada
func (a *Almacenamiento) LeerPagina(pagina int) ([]byte, error) {
	if pagina < 0 || pagina >= CantPaginas {
		return nil, fmt.Errorf("número de página fuera de rango: %d", pagina)
	}

	utils.AplicarRetardo("lectura de página", a.retardoMs)

	datos := make([]byte, TamPagina)
	offset := int64(pagina) * TamPagina
	n, err := a.archivo.ReadAt(datos, offset)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("error al leer página %d del almacenamiento: %v", pagina, err)
	}
	if n != TamPagina {
		return nil, fmt.Errorf("lectura corta de página %d: %d bytes, se esperaban %d", pagina, n, TamPagina)
	}

	return datos, nil
}

// Cerrar libera el archivo del almacenamiento
func (a *Almacenamiento) Cerrar() error {
	return a.archivo.Close()
}
