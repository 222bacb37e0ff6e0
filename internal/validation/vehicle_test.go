package validation

import (
	"encoding/json"
	"strings"
	"testing"

	"autogestor/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validVehicleInput() *VehicleInput {
	return &VehicleInput{
		Brand:     "Toyota",
		Model:     "Corolla",
		Year:      NewIntCount(2022),
		Status:    models.VehicleStatusAvailable,
		Condition: models.VehicleConditionUsed,
		VIN:       "1HGBH41JXMN109186",
		Plate:     "A123456",
		Doors:     NewIntCount(4),
		Seats:     NewIntCount(5),
		Price:     NewMoney(950000),
	}
}

func TestVehicleInput_Valid(t *testing.T) {
	assert.Nil(t, validVehicleInput().Validate())
}

func TestVehicleInput_VINLengthBoundary(t *testing.T) {
	tests := []struct {
		length int
		ok     bool
	}{
		{16, false},
		{17, true},
		{18, false},
	}

	for _, tt := range tests {
		in := validVehicleInput()
		in.VIN = strings.Repeat("A", tt.length)
		errs := in.Validate()
		if tt.ok {
			assert.Nil(t, errs)
		} else {
			require.NotNil(t, errs)
			assert.Contains(t, errs, "vin")
		}
	}
}

func TestVehicleInput_YearRange(t *testing.T) {
	in := validVehicleInput()
	in.Year = NewIntCount(1899)
	errs := in.Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "year")

	in = validVehicleInput()
	in.Year = NewIntCount(2051)
	errs = in.Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "year")

	in = validVehicleInput()
	in.Year = IntCount{}
	errs = in.Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "year")
}

func TestVehicleInput_PriceFromFormattedString(t *testing.T) {
	in := validVehicleInput()
	raw := `{"price": "RD$950,000"}`
	require.NoError(t, json.Unmarshal([]byte(raw), in))

	assert.Nil(t, in.Validate())
	require.NotNil(t, in.Price.Float())
	assert.InDelta(t, 950000, *in.Price.Float(), 0.001)
}

func TestVehicleInput_ClosedStatusSet(t *testing.T) {
	in := validVehicleInput()
	in.Status = "parked"
	errs := in.Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "status")

	in = validVehicleInput()
	in.Condition = "refurbished"
	errs = in.Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "condition")
}

func TestVehicleInput_OptionalConcesionario(t *testing.T) {
	in := validVehicleInput()
	in.ConcesionarioID = uuid.NewString()
	assert.Nil(t, in.Validate())

	in.ConcesionarioID = "not-a-uuid"
	errs := in.Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "concesionarioId")
}

func TestConsignmentUpdate_EmptyPatchRejected(t *testing.T) {
	var in ConsignmentUpdateInput
	raw := `{"vehicleId": "` + uuid.NewString() + `", "updateData": {}}`
	require.NoError(t, json.Unmarshal([]byte(raw), &in))

	errs := in.Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "updateData")
}

func TestConsignmentUpdate_ExplicitNullClearsAssignment(t *testing.T) {
	var in ConsignmentUpdateInput
	raw := `{"vehicleId": "` + uuid.NewString() + `", "updateData": {"concesionarioId": null}}`
	require.NoError(t, json.Unmarshal([]byte(raw), &in))

	assert.Nil(t, in.Validate())
	assert.Nil(t, in.ConcesionarioUUID())
}

func TestConsignmentUpdate_AssignTarget(t *testing.T) {
	target := uuid.New()
	var in ConsignmentUpdateInput
	raw := `{"vehicleId": "` + uuid.NewString() + `", "updateData": {"concesionarioId": "` + target.String() + `"}}`
	require.NoError(t, json.Unmarshal([]byte(raw), &in))

	assert.Nil(t, in.Validate())
	got := in.ConcesionarioUUID()
	require.NotNil(t, got)
	assert.Equal(t, target, *got)
}

func TestConsignmentUpdate_BadTargetUUID(t *testing.T) {
	var in ConsignmentUpdateInput
	raw := `{"vehicleId": "` + uuid.NewString() + `", "updateData": {"concesionarioId": "abc"}}`
	require.NoError(t, json.Unmarshal([]byte(raw), &in))

	errs := in.Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "updateData.concesionarioId")
}
