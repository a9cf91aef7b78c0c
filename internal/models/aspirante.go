package models

import (
	"bytes"
	"encoding/json"
)

// FlexString accepts either a JSON string or a JSON number. The registration
// form submits fields like promedio and numeroExterior as numbers or strings
// depending on the client, and both must bind to the same record.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexString) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// String implements fmt.Stringer
func (f FlexString) String() string {
	return string(f)
}

// Aspirante is the full set of submitted form fields for one registration.
// JSON tags match the public wire contract of the pre-registration form.
type Aspirante struct {
	ID int64 `json:"id,omitempty"`

	// Identity
	Correo          string     `json:"correo"`
	CURP            string     `json:"curp"`
	Nombre          string     `json:"nombre"`
	ApellidoPaterno string     `json:"apellidoPaterno"`
	ApellidoMaterno string     `json:"apellidoMaterno"`
	Genero          string     `json:"genero"`
	FechaNacimiento string     `json:"fechaNacimiento"`
	Carrera         string     `json:"carrera"`
	Telefono        FlexString `json:"telefono"`

	// Address
	Calle          string     `json:"calle"`
	NumeroExterior FlexString `json:"numeroExterior"`
	NumeroInterior FlexString `json:"numeroInterior"`
	Colonia        string     `json:"colonia"`
	Municipio      string     `json:"municipio"`
	CodigoPostal   FlexString `json:"codigoPostal"`
	Estado         string     `json:"estado"`

	// Prior school
	Promedio            FlexString `json:"promedio"`
	TipoSecundaria      string     `json:"tipoSecundaria"`
	Sostenimiento       string     `json:"sostenimiento"`
	LocalidadSecundaria string     `json:"localidadSecundaria"`
	NombreSecundaria    string     `json:"nombreSecundaria"`

	// Guardian
	NombreTutor    string     `json:"nombreTutor"`
	OcupacionTutor string     `json:"ocupacionTutor"`
	TelefonoTutor  FlexString `json:"telefonoTutor"`
}
