package validation

import "strings"

// ClientInput is the client-creation contract. Cedula is the Dominican
// national ID; uniqueness is enforced by the store, not here.
type ClientInput struct {
	Cedula  string `json:"cedula"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (in *ClientInput) Validate() FieldErrors {
	errs := FieldErrors{}

	in.Cedula = strings.TrimSpace(in.Cedula)
	if l := len(in.Cedula); l < 11 || l > 13 {
		errs.add("cedula", "La cédula debe tener entre 11 y 13 caracteres")
	}

	in.Name = strings.TrimSpace(in.Name)
	if len(in.Name) < 2 {
		errs.add("name", "El nombre debe tener al menos 2 caracteres")
	}

	in.Email = strings.TrimSpace(in.Email)
	if in.Email != "" && !validEmail(in.Email) {
		errs.add("email", "El correo electrónico no es válido")
	}

	in.Address = strings.TrimSpace(in.Address)
	if len(in.Address) < 5 {
		errs.add("address", "La dirección debe tener al menos 5 caracteres")
	}

	return errs.OrNil()
}
