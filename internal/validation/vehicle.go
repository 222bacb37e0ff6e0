package validation

import (
	"encoding/json"
	"strings"
	"time"

	"autogestor/internal/models"

	"github.com/google/uuid"
)

// VehicleInput is the vehicle-creation contract. Price fields accept
// either numbers or formatted currency strings; images travel as base64
// payloads and are uploaded before the row is inserted.
type VehicleInput struct {
	Brand           string                `json:"brand"`
	Model           string                `json:"model"`
	Year            IntCount              `json:"year"`
	Trim            string                `json:"trim"`
	VehicleType     string                `json:"vehicleType"`
	Color           string                `json:"color"`
	Status          string                `json:"status"`
	Condition       string                `json:"condition"`
	Images          []models.ImagePayload `json:"images"`
	Description     string                `json:"description"`
	Transmission    string                `json:"transmission"`
	FuelType        string                `json:"fuelType"`
	EngineSize      string                `json:"engineSize"`
	Plate           string                `json:"plate"`
	VIN             string                `json:"vin"`
	Mileage         IntCount              `json:"mileage"`
	Doors           IntCount              `json:"doors"`
	Seats           IntCount              `json:"seats"`
	Price           Money                 `json:"price"`
	HasOffer        bool                  `json:"hasOffer"`
	OfferPrice      Money                 `json:"offerPrice"`
	AdminStatus     string                `json:"adminStatus"`
	InMaintenance   bool                  `json:"inMaintenance"`
	EntryDate       string                `json:"entryDate"`
	ConcesionarioID string                `json:"concesionarioId"`
}

func (in *VehicleInput) Validate() FieldErrors {
	errs := FieldErrors{}

	in.Brand = strings.TrimSpace(in.Brand)
	if in.Brand == "" {
		errs.add("brand", "La marca es requerida")
	}
	in.Model = strings.TrimSpace(in.Model)
	if in.Model == "" {
		errs.add("model", "El modelo es requerido")
	}

	if year := in.Year.Int(); year == nil || *year < 1900 || *year > 2050 {
		errs.add("year", "El año debe estar entre 1900 y 2050")
	}

	if !oneOf(in.Status,
		models.VehicleStatusAvailable, models.VehicleStatusSold,
		models.VehicleStatusReserved, models.VehicleStatusInProcess,
		models.VehicleStatusMaintenance) {
		errs.add("status", "El estado del vehículo no es válido")
	}
	if !oneOf(in.Condition, models.VehicleConditionNew, models.VehicleConditionUsed) {
		errs.add("condition", "La condición debe ser nueva o usada")
	}

	in.VIN = strings.TrimSpace(in.VIN)
	if len(in.VIN) != 17 {
		errs.add("vin", "El VIN debe tener exactamente 17 caracteres")
	}
	in.Plate = strings.TrimSpace(in.Plate)
	if len(in.Plate) > 10 {
		errs.add("plate", "La placa no puede tener más de 10 caracteres")
	}

	if doors := in.Doors.Int(); doors == nil || *doors < 1 {
		errs.add("doors", "Debe tener al menos 1 puerta")
	}
	if seats := in.Seats.Int(); seats == nil || *seats < 1 {
		errs.add("seats", "Debe tener al menos 1 asiento")
	}
	if mileage := in.Mileage.Int(); mileage != nil && *mileage < 0 {
		errs.add("mileage", "El kilometraje no puede ser negativo")
	}

	if price := in.Price.Float(); price == nil || *price <= 0 {
		errs.add("price", "El precio es requerido y debe ser mayor que cero")
	}
	if offer := in.OfferPrice.Float(); offer != nil && *offer <= 0 {
		errs.add("offerPrice", "El precio de oferta debe ser mayor que cero")
	}

	if in.EntryDate != "" {
		if _, ok := parseDate(in.EntryDate); !ok {
			errs.add("entryDate", "La fecha de entrada no es válida")
		}
	}
	if in.ConcesionarioID != "" {
		if _, err := uuid.Parse(in.ConcesionarioID); err != nil {
			errs.add("concesionarioId", "El concesionario seleccionado no es válido")
		}
	}

	return errs.OrNil()
}

// EntryDateTime returns the parsed entry date, nil when absent. Call
// only after Validate has passed.
func (in *VehicleInput) EntryDateTime() *time.Time {
	if t, ok := parseDate(in.EntryDate); ok {
		return &t
	}
	return nil
}

// ConsignmentUpdateInput is the one vehicle-update contract this layer
// exposes: reassigning (or clearing) the consignment partner.
type ConsignmentUpdateInput struct {
	VehicleID  string                `json:"vehicleId"`
	UpdateData ConsignmentUpdateData `json:"updateData"`
}

type ConsignmentUpdateData struct {
	ConcesionarioID *string `json:"concesionarioId"`
	hasFields       bool
}

// UnmarshalJSON keeps track of which recognized fields were actually
// present, so an empty patch can be rejected while an explicit
// `"concesionarioId": null` still means "clear the assignment".
func (d *ConsignmentUpdateData) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if v, ok := raw["concesionarioId"]; ok {
		d.hasFields = true
		if err := json.Unmarshal(v, &d.ConcesionarioID); err != nil {
			return err
		}
	}
	return nil
}

func (in *ConsignmentUpdateInput) Validate() FieldErrors {
	errs := FieldErrors{}

	if _, err := uuid.Parse(strings.TrimSpace(in.VehicleID)); err != nil {
		errs.add("vehicleId", "El vehículo es requerido")
	}
	if !in.UpdateData.hasFields {
		errs.add("updateData", "No hay campos para actualizar")
	} else if in.UpdateData.ConcesionarioID != nil && *in.UpdateData.ConcesionarioID != "" {
		if _, err := uuid.Parse(*in.UpdateData.ConcesionarioID); err != nil {
			errs.add("updateData.concesionarioId", "El concesionario seleccionado no es válido")
		}
	}

	return errs.OrNil()
}

// ConcesionarioUUID resolves the target assignment: nil clears it.
func (in *ConsignmentUpdateInput) ConcesionarioUUID() *uuid.UUID {
	if in.UpdateData.ConcesionarioID == nil || *in.UpdateData.ConcesionarioID == "" {
		return nil
	}
	id, err := uuid.Parse(*in.UpdateData.ConcesionarioID)
	if err != nil {
		return nil
	}
	return &id
}
