package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sisoputnfrba/tp-2025-2c-LosTraductores/utils"
)

// LectorPaginas abstrae el almacenamiento secundario para el traductor
type LectorPaginas interface {
	LeerPagina(pagina int) ([]byte, error)
}

// Resultado es el registro emitido por cada dirección traducida
type Resultado struct {
	DirLogica int
	DirFisica int
	Valor     int8
}

// Traductor orquesta la traducción de direcciones: consulta la TLB, cae
// a la tabla de páginas y ante un fallo de página carga la página desde
// el almacenamiento secundario al próximo marco libre. Todo el estado
// compartido (TLB, tabla, memoria, contador de marcos, métricas) es
// propiedad exclusiva del traductor; el procesamiento es estrictamente
// secuencial.
type Traductor struct {
	tlb            *TLB
	tabla          *TablaPaginas
	memoria        *MemoriaFisica
	almacenamiento LectorPaginas
	proximoMarco   int
	Metricas       Metricas
}

// NuevoTraductor arma el pipeline de traducción con sus componentes
func NuevoTraductor(tlb *TLB, tabla *TablaPaginas, memoria *MemoriaFisica, almacenamiento LectorPaginas) *Traductor {
	return &Traductor{
		tlb:            tlb,
		tabla:          tabla,
		memoria:        memoria,
		almacenamiento: almacenamiento,
	}
}

// TraducirDireccion traduce una dirección lógica a física y devuelve el
// registro con el byte leído. Solo los 16 bits bajos de la dirección son
// significativos.
func (t *Traductor) TraducirDireccion(direccion int) (Resultado, error) {
	dirLogica := direccion & MascaraDireccion
	pagina := (dirLogica >> 8) & 0xFF
	desplazamiento := dirLogica & 0xFF

	t.Metricas.registrarDireccion()

	marco, acierto := t.tlb.Buscar(pagina)
	if acierto {
		t.Metricas.registrarAciertoTLB()
		utils.InfoLog.Debug("TLB HIT", "pagina", pagina, "marco", marco)
	} else {
		utils.InfoLog.Debug("TLB MISS", "pagina", pagina)

		var enTabla bool
		marco, enTabla = t.tabla.Buscar(pagina)
		if !enTabla {
			var err error
			marco, err = t.atenderFalloPagina(pagina)
			if err != nil {
				return Resultado{}, err
			}
		}

		// En ambos caminos de miss la traducción resuelta entra a la TLB
		t.tlb.Insertar(pagina, marco)
	}

	dirFisica := (marco << 8) | desplazamiento
	valor := int8(t.memoria.LeerByte(dirFisica))

	return Resultado{
		DirLogica: dirLogica,
		DirFisica: dirFisica,
		Valor:     valor,
	}, nil
}

// atenderFalloPagina carga la página desde el almacenamiento secundario
// en el próximo marco libre y actualiza la tabla de páginas. Los marcos
// se asignan con un contador monotónico y nunca se reutilizan: agotar
// la memoria física es fatal por diseño, no hay reemplazo de páginas.
func (t *Traductor) atenderFalloPagina(pagina int) (int, error) {
	t.Metricas.registrarFalloPagina()
	utils.InfoLog.Debug("Fallo de página", "pagina", pagina)

	datos, err := t.almacenamiento.LeerPagina(pagina)
	if err != nil {
		return MarcoInvalido, err
	}

	if t.proximoMarco >= t.memoria.CantMarcos() {
		return MarcoInvalido, fmt.Errorf("memoria física agotada: no hay marco libre para la página %d", pagina)
	}

	marco := t.proximoMarco
	t.proximoMarco++

	t.memoria.EscribirMarco(marco, datos)
	t.tabla.Asignar(pagina, marco)

	utils.InfoLog.Debug("Página cargada", "pagina", pagina, "marco", marco)
	return marco, nil
}

// Procesar consume el flujo de direcciones lógicas línea por línea,
// emite un registro por dirección y cierra con el resumen de métricas.
// Las líneas que no pueden interpretarse como entero se saltean con una
// advertencia.
func (t *Traductor) Procesar(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		linea := strings.TrimSpace(scanner.Text())
		if linea == "" {
			continue
		}

		direccion, err := strconv.Atoi(linea)
		if err != nil {
			utils.ErrorLog.Warn("Línea de entrada inválida, se saltea", "linea", linea)
			continue
		}

		resultado, err := t.TraducirDireccion(direccion)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "Dirección lógica: %d - Dirección física: %d - Valor: %d\n",
			resultado.DirLogica, resultado.DirFisica, resultado.Valor)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error al leer el flujo de direcciones: %v", err)
	}

	t.Metricas.ImprimirResumen(w)
	return nil
}
