package main

import (
	"os"
	"testing"

	"github.com/sisoputnfrba/tp-2025-2c-LosTraductores/utils"
)

func TestMain(m *testing.M) {
	utils.InicializarLogger("ERROR", "MMU-test")
	os.Exit(m.Run())
}
