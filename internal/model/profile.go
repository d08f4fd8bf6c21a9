// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned for a profile field id that does not exist.
var ErrUnknownField = errors.New("unknown field")

// ProfileField names one free-text profile field.
type ProfileField string

const (
	FieldName        ProfileField = "name"
	FieldEmail       ProfileField = "email"
	FieldPhone       ProfileField = "phone"
	FieldTimezone    ProfileField = "timezone"
	FieldCompanyName ProfileField = "company_name"
	FieldWebsite     ProfileField = "website"
	FieldAddress     ProfileField = "address"
)

// ProfileFieldsOrder lists the text fields in display order.
var ProfileFieldsOrder = []ProfileField{
	FieldName, FieldEmail, FieldPhone, FieldTimezone,
	FieldCompanyName, FieldWebsite, FieldAddress,
}

// Security toggle ids, used as form field ids next to the text fields.
const (
	ToggleTwoFactor      = "two_factor"
	ToggleSessionTimeout = "session_timeout"
)

// ProfileFields is the profile form content. No field is validated.
type ProfileFields struct {
	Name           string `mapstructure:"name"`
	Email          string `mapstructure:"email"`
	Phone          string `mapstructure:"phone"`
	Timezone       string `mapstructure:"timezone"`
	CompanyName    string `mapstructure:"company_name"`
	Website        string `mapstructure:"website"`
	Address        string `mapstructure:"address"`
	TwoFactor      bool   `mapstructure:"two_factor"`
	SessionTimeout bool   `mapstructure:"session_timeout"`
}

func (p *ProfileFields) field(f ProfileField) (*string, error) {
	switch f {
	case FieldName:
		return &p.Name, nil
	case FieldEmail:
		return &p.Email, nil
	case FieldPhone:
		return &p.Phone, nil
	case FieldTimezone:
		return &p.Timezone, nil
	case FieldCompanyName:
		return &p.CompanyName, nil
	case FieldWebsite:
		return &p.Website, nil
	case FieldAddress:
		return &p.Address, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownField, f)
}

// Get returns the value of a text field.
func (p ProfileFields) Get(f ProfileField) (string, error) {
	v, err := p.field(f)
	if err != nil {
		return "", err
	}
	return *v, nil
}

// Set replaces the value of exactly one text field.
func (p *ProfileFields) Set(f ProfileField, value string) error {
	v, err := p.field(f)
	if err != nil {
		return err
	}
	*v = value
	return nil
}
