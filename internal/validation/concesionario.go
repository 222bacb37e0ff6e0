package validation

import "strings"

// ConcesionarioInput is the consignment-partner creation contract.
type ConcesionarioInput struct {
	Name        string `json:"name"`
	ContactName string `json:"contactName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
}

func (in *ConcesionarioInput) Validate() FieldErrors {
	errs := FieldErrors{}

	in.Name = strings.TrimSpace(in.Name)
	if len(in.Name) < 2 {
		errs.add("name", "El nombre debe tener al menos 2 caracteres")
	}

	in.ContactName = strings.TrimSpace(in.ContactName)
	if len(in.ContactName) < 2 {
		errs.add("contactName", "El nombre de contacto debe tener al menos 2 caracteres")
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
