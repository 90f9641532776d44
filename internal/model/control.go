package model

import "gorm.io/datatypes"

// ControlType represents the widget kind of a UI control
type ControlType string

const (
	ControlTypeInput      ControlType = "input"
	ControlTypeSelect     ControlType = "select"
	ControlTypeCheckbox   ControlType = "checkbox"
	ControlTypeRadio      ControlType = "radio"
	ControlTypeTextarea   ControlType = "textarea"
	ControlTypeDatepicker ControlType = "datepicker"
	ControlTypeButton     ControlType = "button"
)

// Control represents a reusable UI control configuration
type Control struct {
	BaseModel
	TenantID      string         `gorm:"type:varchar(64);index;uniqueIndex:uk_ctl_tenant_ctl;not null" json:"tenantId"`
	ApplicationID string         `gorm:"type:varchar(64);index;not null" json:"applicationId"`
	ControlID     string         `gorm:"type:varchar(64);uniqueIndex:uk_ctl_tenant_ctl;not null" json:"controlId"`
	Name          string         `gorm:"type:varchar(255);not null" json:"name"`
	Type          ControlType    `gorm:"type:enum('input','select','checkbox','radio','textarea','datepicker','button');not null" json:"type"`
	Props         datatypes.JSON `gorm:"type:json" json:"props"` // placeholder / validation / styling
}

// TableName specifies the table name for Control model
func (Control) TableName() string {
	return "controls"
}
