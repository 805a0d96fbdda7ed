package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// armarCorrida deja en un directorio temporal el blob, el archivo de
// direcciones y la configuración, y devuelve la ruta de la config
func armarCorrida(t *testing.T, direcciones string) string {
	t.Helper()
	dir := t.TempDir()

	rutaBlob := filepath.Join(dir, "ALMACENAMIENTO.bin")
	if err := os.WriteFile(rutaBlob, make([]byte, TamAlmacenamiento), 0644); err != nil {
		t.Fatalf("Failed to write blob: %v", err)
	}

	rutaDirecciones := filepath.Join(dir, "direcciones.txt")
	if err := os.WriteFile(rutaDirecciones, []byte(direcciones), 0644); err != nil {
		t.Fatalf("Failed to write addresses: %v", err)
	}

	cfg := MMUConfig{
		AddressesPath:    rutaDirecciones,
		BackingStorePath: rutaBlob,
		TLBEntries:       16,
		TLBReplacement:   "LRU",
		StorageDelay:     0,
		LogLevel:         "ERROR",
	}
	datos, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Failed to marshal config: %v", err)
	}
	rutaConfig := filepath.Join(dir, "mmu-config.json")
	if err := os.WriteFile(rutaConfig, datos, 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return rutaConfig
}

func TestEjecutar_CorridaCompleta(t *testing.T) {
	rutaConfig := armarCorrida(t, "0\n0\n256\n")

	var salida bytes.Buffer
	if err := ejecutar(rutaConfig, &salida); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	texto := salida.String()
	if !strings.Contains(texto, "Dirección lógica: 0 - Dirección física: 0 - Valor: 0") {
		t.Errorf("Expected record for address 0, got: %q", texto)
	}
	if !strings.Contains(texto, "Total de direcciones traducidas: 3") {
		t.Errorf("Expected 3 addresses in summary, got: %q", texto)
	}
	if !strings.Contains(texto, "Aciertos de TLB: 1") {
		t.Errorf("Expected 1 TLB hit in summary, got: %q", texto)
	}
	if !strings.Contains(texto, "Fallos de página: 2") {
		t.Errorf("Expected 2 page faults in summary, got: %q", texto)
	}
}

func TestEjecutar_ConfigInexistente(t *testing.T) {
	var salida bytes.Buffer
	if err := ejecutar("no-existe.json", &salida); err == nil {
		t.Error("Expected error for missing config, got nil")
	}
}

func TestEjecutar_BlobInvalido(t *testing.T) {
	dir := t.TempDir()

	rutaBlob := filepath.Join(dir, "ALMACENAMIENTO.bin")
	os.WriteFile(rutaBlob, make([]byte, 100), 0644)
	rutaDirecciones := filepath.Join(dir, "direcciones.txt")
	os.WriteFile(rutaDirecciones, []byte("0\n"), 0644)

	cfg := MMUConfig{
		AddressesPath:    rutaDirecciones,
		BackingStorePath: rutaBlob,
		TLBEntries:       16,
		LogLevel:         "ERROR",
	}
	datos, _ := json.Marshal(cfg)
	rutaConfig := filepath.Join(dir, "mmu-config.json")
	os.WriteFile(rutaConfig, datos, 0644)

	var salida bytes.Buffer
	if err := ejecutar(rutaConfig, &salida); err == nil {
		t.Error("Expected error for undersized blob, got nil")
	}
}
