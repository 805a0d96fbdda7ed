package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// CargarConfiguracion lee un archivo de configuración JSON y lo decodifica
// en el tipo indicado. Devuelve error en lugar de finalizar el proceso:
// la política de salida es responsabilidad de cada main.
func CargarConfiguracion[T any](ruta string) (*T, error) {
	absPath, err := filepath.Abs(ruta)
	if err != nil {
		return nil, fmt.Errorf("error obteniendo ruta absoluta de %s: %v", ruta, err)
	}

	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("error abriendo archivo de configuración %s: %v", absPath, err)
	}
	defer file.Close()

	var config T
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("error decodificando configuración %s: %v", absPath, err)
	}

	return &config, nil
}
