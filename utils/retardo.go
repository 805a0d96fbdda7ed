package utils

import (
	"log/slog"
	"time"
)

// AplicarRetardo aplica un retardo simulado y lo registra.
// Con duración 0 no hace nada (caso de los tests).
func AplicarRetardo(operacion string, duracionMs int) {
	if duracionMs <= 0 {
		return
	}
	slog.Debug("Aplicando retardo", "operación", operacion, "duración_ms", duracionMs)
	time.Sleep(time.Duration(duracionMs) * time.Millisecond)
}
