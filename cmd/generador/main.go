package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sisoputnfrba/tp-2025-2c-LosTraductores/utils"
)

const (
	tamPagina   = 256
	cantPaginas = 256
)

// Genera el blob de almacenamiento secundario: 256 páginas de 256 bytes
// con contenido pseudoaleatorio. Con semilla fija el blob es reproducible.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Uso: %s <archivo_salida> [semilla]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Ejemplo: %s ALMACENAMIENTO.bin 42\n", os.Args[0])
		os.Exit(1)
	}

	utils.InicializarLogger("INFO", "Generador")

	ruta := os.Args[1]
	var semilla int64 = 1
	if len(os.Args) > 2 {
		valor, err := strconv.ParseInt(os.Args[2], 10, 64)
		if err != nil {
			utils.ErrorLog.Error("Semilla inválida", "valor", os.Args[2], "error", err)
			os.Exit(1)
		}
		semilla = valor
	}

	if err := generar(ruta, semilla); err != nil {
		utils.ErrorLog.Error("Error generando almacenamiento", "error", err)
		os.Exit(1)
	}

	utils.InfoLog.Info("Almacenamiento generado", "ruta", ruta, "semilla", semilla,
		"tamaño_bytes", tamPagina*cantPaginas)
}

func generar(ruta string, semilla int64) error {
	// Crear directorio si no existe
	dir := filepath.Dir(ruta)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error al crear directorio %s: %v", dir, err)
	}

	archivo, err := os.Create(ruta)
	if err != nil {
		return fmt.Errorf("error al crear archivo %s: %v", ruta, err)
	}
	defer archivo.Close()

	rng := rand.New(rand.NewSource(semilla))
	pagina := make([]byte, tamPagina)
	for i := 0; i < cantPaginas; i++ {
		rng.Read(pagina)
		if _, err := archivo.Write(pagina); err != nil {
			return fmt.Errorf("error al escribir página %d: %v", i, err)
		}
	}

	return nil
}
