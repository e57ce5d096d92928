package models

import (
	"strings"
)

// Validation messages returned to clients
const (
	MsgEmailRequired    = "O email é obrigatório."
	MsgPasswordRequired = "A senha é obrigatória."
	MsgRoleRequired     = "O perfil é obrigatório."
	MsgRoleInvalid      = "Perfil inválido."
	MsgNameRequired     = "O nome do veículo é obrigatório."
	MsgBrandRequired    = "A marca do veículo é obrigatória."
	MsgVehicleTooOld    = "Veículo muito antigo."
)

// ValidationErrors collects every rule a payload failed.
// An empty list means the payload is valid.
type ValidationErrors struct {
	Messages []string `json:"messages"`
}

func (v *ValidationErrors) Error() string {
	return "validation failed: " + strings.Join(v.Messages, " ")
}

func (v *ValidationErrors) add(msg string) {
	v.Messages = append(v.Messages, msg)
}

// Empty reports whether no rule failed
func (v *ValidationErrors) Empty() bool {
	return len(v.Messages) == 0
}

// Validate checks an administrator payload. All rules run; nothing short-circuits.
func (d AdministratorDTO) Validate() *ValidationErrors {
	errs := &ValidationErrors{Messages: []string{}}
	if d.Email == "" {
		errs.add(MsgEmailRequired)
	}
	if d.Password == "" {
		errs.add(MsgPasswordRequired)
	}
	if d.Role == "" {
		errs.add(MsgRoleRequired)
	} else if _, err := ParseRole(d.Role); err != nil {
		errs.add(MsgRoleInvalid)
	}
	return errs
}

// Validate checks a vehicle payload. All rules run; nothing short-circuits.
func (d VehicleDTO) Validate() *ValidationErrors {
	errs := &ValidationErrors{Messages: []string{}}
	if d.Name == "" {
		errs.add(MsgNameRequired)
	}
	if d.Brand == "" {
		errs.add(MsgBrandRequired)
	}
	if d.Year <= MinVehicleYear {
		errs.add(MsgVehicleTooOld)
	}
	return errs
}
