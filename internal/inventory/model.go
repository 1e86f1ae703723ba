package inventory

import (
	"strconv"
	"strings"

	"github.com/Lelo88/inventory-editor-golang/internal/money"
)

// Record representa un item de inventario persistido en DB.
// Es la forma canónica: campos numéricos ya parseados y validados.
// ID 0 es el sentinel "sin asignar"; la DB asigna el id en el primer save.
type Record struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// ToDraft proyecta el record a su forma editable: id y name van tal cual,
// price y quantity se renderizan en su forma decimal/entera canónica.
// La validez de la sesión arranca en false hasta que el flujo de edición
// revalide (ver Session.UpdateDraft).
func (record Record) ToDraft() Draft {
	return Draft{
		ID:       record.ID,
		Name:     record.Name,
		Price:    strconv.FormatFloat(record.Price, 'f', -1, 64),
		Quantity: strconv.Itoa(record.Quantity),
	}
}

// FormattedPrice renderiza el precio con formato moneda US para mostrar.
func (record Record) FormattedPrice() string {
	return money.FormatUSD(record.Price)
}

// Draft es la proyección editable de un Record: los campos numéricos viven
// como texto porque el input del usuario es texto antes de validarse, y
// puede quedar en estados intermedios inválidos mientras tipea.
// Semántica de valor: cada mutación produce un Draft nuevo.
type Draft struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity string `json:"quantity"`
}

// IsValid chequea presencia: name, price y quantity no pueden estar vacíos
// ni ser solo espacios. OJO: no valida que price/quantity sean numéricos;
// un draft con price "abc" se reporta válido y se guarda como 0 (ver ToRecord).
func (draft Draft) IsValid() bool {
	return strings.TrimSpace(draft.Name) != "" &&
		strings.TrimSpace(draft.Price) != "" &&
		strings.TrimSpace(draft.Quantity) != ""
}

// ToRecord convierte el draft a su forma canónica. Conversión total: nunca
// falla; texto numérico no parseable cae a 0 de forma explícita. Los callers
// deben gatear el save con IsValid para no persistir ceros silenciosos.
func (draft Draft) ToRecord() Record {
	return Record{
		ID:       draft.ID,
		Name:     draft.Name,
		Price:    parseFloatOrZero(draft.Price),
		Quantity: parseIntOrZero(draft.Quantity),
	}
}

func parseFloatOrZero(value string) float64 {
	number, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return number
}

func parseIntOrZero(value string) int {
	number, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return number
}
