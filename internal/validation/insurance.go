package validation

import (
	"strings"
	"time"

	"autogestor/internal/models"

	"github.com/google/uuid"
)

// InsuranceInput is the policy-creation contract. The composite
// date-order rule reports under the virtual "datesValid" path.
type InsuranceInput struct {
	VehicleID        string   `json:"vehicleId"`
	ClientID         string   `json:"clientId"`
	ContractID       string   `json:"contractId"`
	StartDate        string   `json:"startDate"`
	ExpiryDate       string   `json:"expiryDate"`
	CoverageType     string   `json:"coverageType"`
	CoverageDuration IntCount `json:"coverageDuration"`
	Premium          Money    `json:"premium"`
	Status           string   `json:"status"`
}

func (in *InsuranceInput) Validate() FieldErrors {
	errs := FieldErrors{}

	if _, err := uuid.Parse(strings.TrimSpace(in.VehicleID)); err != nil {
		errs.add("vehicleId", "El vehículo es requerido")
	}
	if in.ClientID != "" {
		if _, err := uuid.Parse(in.ClientID); err != nil {
			errs.add("clientId", "El cliente seleccionado no es válido")
		}
	}
	if in.ContractID != "" {
		if _, err := uuid.Parse(in.ContractID); err != nil {
			errs.add("contractId", "El contrato seleccionado no es válido")
		}
	}

	start, startOK := parseDate(in.StartDate)
	if !startOK {
		errs.add("startDate", "La fecha de inicio es requerida y debe ser válida")
	}
	expiry, expiryOK := parseDate(in.ExpiryDate)
	if !expiryOK {
		errs.add("expiryDate", "La fecha de vencimiento es requerida y debe ser válida")
	}
	if startOK && expiryOK && !expiry.After(start) {
		errs.add("datesValid", "La fecha de vencimiento debe ser posterior a la fecha de inicio")
	}

	if !oneOf(in.CoverageType,
		models.CoverageMotorTransmission, models.CoverageFull, models.CoverageBasic) {
		errs.add("coverageType", "El tipo de cobertura no es válido")
	}
	if d := in.CoverageDuration.Int(); d == nil || *d < 1 {
		errs.add("coverageDuration", "La duración de la cobertura debe ser de al menos 1 mes")
	}
	if p := in.Premium.Float(); p == nil || *p < 0 {
		errs.add("premium", "La prima es requerida y no puede ser negativa")
	}

	if in.Status == "" {
		in.Status = models.InsuranceStatusActive
	}
	if !oneOf(in.Status,
		models.InsuranceStatusActive, models.InsuranceStatusExpiringSoon,
		models.InsuranceStatusExpired, models.InsuranceStatusCancelled) {
		errs.add("status", "El estado de la póliza no es válido")
	}

	return errs.OrNil()
}

// Dates returns the parsed start and expiry dates. Call only after
// Validate has passed.
func (in *InsuranceInput) Dates() (time.Time, time.Time) {
	start, _ := parseDate(in.StartDate)
	expiry, _ := parseDate(in.ExpiryDate)
	return start, expiry
}
