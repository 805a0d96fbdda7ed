package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sisoputnfrba/tp-2025-2c-LosTraductores/utils"
)

func main() {
	// Verificar argumentos
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Uso: %s <archivo_configuracion>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Ejemplo: %s configs/mmu-config.json\n", os.Args[0])
		os.Exit(1)
	}

	// Inicializar logger ANTES de usarlo
	utils.InicializarLogger("INFO", "MMU")

	utils.InfoLog.Info("Iniciando módulo MMU")

	if err := ejecutar(os.Args[1], os.Stdout); err != nil {
		utils.ErrorLog.Error("La simulación terminó con error", "error", err)
		os.Exit(1)
	}

	utils.InfoLog.Info("Simulación finalizada correctamente")
}

func ejecutar(rutaConfig string, salida io.Writer) error {
	// Verificar que el archivo de configuración existe
	if _, err := os.Stat(rutaConfig); os.IsNotExist(err) {
		return fmt.Errorf("el archivo de configuración no existe: %s", rutaConfig)
	}

	// Cargar configuración
	cfg, err := utils.CargarConfiguracion[MMUConfig](rutaConfig)
	if err != nil {
		return err
	}
	config = cfg

	// Actualizar logger con configuración del archivo
	utils.InicializarLogger(config.LogLevel, "MMU")
	utils.InfoLog.Info("Configuración cargada", "nivel_log", config.LogLevel, "config_path", rutaConfig)

	// Abrir almacenamiento secundario
	almacenamiento, err := AbrirAlmacenamiento(config.BackingStorePath, config.StorageDelay)
	if err != nil {
		return err
	}
	defer almacenamiento.Cerrar()

	// Abrir archivo de direcciones
	direcciones, err := os.Open(config.AddressesPath)
	if err != nil {
		return fmt.Errorf("error al abrir archivo de direcciones %s: %v", config.AddressesPath, err)
	}
	defer direcciones.Close()

	// Armar el pipeline de traducción
	tlb := NuevaTLB(config.TLBEntries, config.TLBReplacement)
	tabla := NuevaTablaPaginas()
	memoria := NuevaMemoriaFisica(CantMarcos)
	traductor := NuevoTraductor(tlb, tabla, memoria, almacenamiento)

	utils.InfoLog.Info("MMU inicializada",
		"entradas_tlb", config.TLBEntries,
		"reemplazo_tlb", config.TLBReplacement,
		"marcos", CantMarcos,
		"tam_pagina", TamPagina)

	return traductor.Procesar(direcciones, salida)
}
