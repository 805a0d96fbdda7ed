package main

// Parámetros fijos de la arquitectura simulada: direcciones lógicas de
// 16 bits, páginas y marcos de 256 bytes, 256 páginas y 256 marcos.
const (
	TamPagina         = 256
	TamMarco          = 256
	CantPaginas       = 256
	CantMarcos        = 256
	TamAlmacenamiento = CantPaginas * TamPagina
	MascaraDireccion  = 0xFFFF
	MarcoInvalido     = -1
)

// MMUConfig representa la configuración específica del módulo MMU
type MMUConfig struct {
	AddressesPath    string `json:"ARCHIVO_DIRECCIONES"`     // Ruta al archivo de direcciones lógicas
	BackingStorePath string `json:"ARCHIVO_ALMACENAMIENTO"`  // Ruta al blob de almacenamiento secundario
	TLBEntries       int    `json:"ENTRADAS_TLB"`            // Capacidad de la TLB (0 = deshabilitada)
	TLBReplacement   string `json:"REEMPLAZO_TLB"`           // Algoritmo de reemplazo: "FIFO" o "LRU"
	StorageDelay     int    `json:"RETARDO_ALMACENAMIENTO"`  // Retardo de lectura de página en ms
	LogLevel         string `json:"LOG_LEVEL"`
}

var config *MMUConfig
