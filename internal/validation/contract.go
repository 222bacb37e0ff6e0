package validation

import (
	"strings"
	"time"

	"autogestor/internal/models"

	"github.com/google/uuid"
)

// ContractInput is the contract-creation contract. The financing group
// (downPayment, months, monthlyPayment) is required as a whole exactly
// when financingType is "financing"; failures report under the virtual
// "financingDetails" path.
type ContractInput struct {
	ClientID       string   `json:"clientId"`
	VehicleID      string   `json:"vehicleId"`
	Status         string   `json:"status"`
	Price          Money    `json:"price"`
	Date           string   `json:"date"`
	FinancingType  string   `json:"financingType"`
	DownPayment    Money    `json:"downPayment"`
	Months         IntCount `json:"months"`
	MonthlyPayment Money    `json:"monthlyPayment"`
	Notes          string   `json:"notes"`
}

func (in *ContractInput) Validate() FieldErrors {
	errs := FieldErrors{}

	if _, err := uuid.Parse(strings.TrimSpace(in.ClientID)); err != nil {
		errs.add("clientId", "El cliente es requerido")
	}
	if _, err := uuid.Parse(strings.TrimSpace(in.VehicleID)); err != nil {
		errs.add("vehicleId", "El vehículo es requerido")
	}

	if in.Status == "" {
		in.Status = models.ContractStatusPending
	}
	if !oneOf(in.Status,
		models.ContractStatusActive, models.ContractStatusPending,
		models.ContractStatusCompleted) {
		errs.add("status", "El estado del contrato no es válido")
	}

	if price := in.Price.Float(); price == nil {
		errs.add("price", "El precio es requerido")
	} else if *price <= 0 {
		errs.add("price", "El precio debe ser mayor que cero")
	}

	if _, ok := parseDate(in.Date); !ok {
		errs.add("date", "La fecha es requerida y debe ser válida")
	}

	if !oneOf(in.FinancingType, models.FinancingTypeCash, models.FinancingTypeFinancing) {
		errs.add("financingType", "El tipo de financiamiento no es válido")
	}
	if in.FinancingType == models.FinancingTypeFinancing {
		months := in.Months.Int()
		if in.DownPayment.Float() == nil || in.MonthlyPayment.Float() == nil ||
			months == nil || *months <= 0 {
			errs.add("financingDetails",
				"El inicial, los meses y la cuota mensual son requeridos para financiamiento")
		}
	}

	return errs.OrNil()
}

// DateTime returns the parsed contract date. Call only after Validate
// has passed.
func (in *ContractInput) DateTime() time.Time {
	t, _ := parseDate(in.Date)
	return t
}
