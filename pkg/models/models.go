package models

import (
	"fmt"
	"time"
)

type DeviceKind string

const (
	DeviceKindSensor   DeviceKind = "sensor"
	DeviceKindActuator DeviceKind = "actuator"
)

type SensorType string

const (
	SensorTypeDHT11  SensorType = "DHT11"
	SensorTypeMQ2    SensorType = "MQ2"
	SensorTypeASC    SensorType = "ASC"
	SensorTypeLDR    SensorType = "LDR"
	SensorTypePIR    SensorType = "PIR"
	SensorTypeButton SensorType = "BUTTON"
)

type ActuatorType string

const (
	ActuatorTypeRelay  ActuatorType = "RELAY"
	ActuatorTypeBuzzer ActuatorType = "BUZZER"
)

// Device is one registered sensor or actuator. The json field names are the
// controller's wire format and must not change.
type Device struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Kind         DeviceKind   `json:"type"`
	Pin          int          `json:"pin"`
	Enabled      bool         `json:"enabled"`
	SensorType   SensorType   `json:"sensor_type,omitempty"`
	ActuatorType ActuatorType `json:"actuator_type,omitempty"`
	ReadInterval int64        `json:"read_interval,omitempty"` // sensors only, ms
	State        bool         `json:"state,omitempty"`         // actuators only, last known on/off
}

func (d *Device) IsSensor() bool {
	return d.Kind == DeviceKindSensor
}

func (d *Device) IsActuator() bool {
	return d.Kind == DeviceKindActuator
}

// Reading parameter names, as referenced by rule conditions.
const (
	ParamTemperature = "temperature"
	ParamHumidity    = "humidity"
	ParamGas         = "gas"
	ParamCurrent     = "current"
	ParamLight       = "light"
	ParamMotion      = "motion"
	ParamPressed     = "pressed"
)

// SensorParameters returns the parameters a sensor type exposes, in wire
// order. Unknown types expose nothing.
func SensorParameters(t SensorType) []string {
	switch t {
	case SensorTypeDHT11:
		return []string{ParamTemperature, ParamHumidity}
	case SensorTypeMQ2:
		return []string{ParamGas}
	case SensorTypeASC:
		return []string{ParamCurrent}
	case SensorTypeLDR:
		return []string{ParamLight}
	case SensorTypePIR:
		return []string{ParamMotion}
	case SensorTypeButton:
		return []string{ParamPressed}
	}
	return nil
}

// Reading is one ephemeral telemetry sample for a sensor. IsValid=false means
// "no current data" (disconnected sensor or transport failure), which is
// distinct from a valid but extreme value. Readings are superseded every poll
// cycle and never persisted.
type Reading struct {
	DeviceID    string     `json:"id"`
	SensorType  SensorType `json:"type"`
	IsValid     bool       `json:"isValid"`
	Timestamp   int64      `json:"timestamp"` // unix ms
	Temperature float64    `json:"temperature,omitempty"`
	Humidity    float64    `json:"humidity,omitempty"`
	Gas         float64    `json:"gas,omitempty"`
	Current     float64    `json:"current,omitempty"`
	Light       float64    `json:"light,omitempty"`
	Motion      bool       `json:"motion,omitempty"`
	Pressed     bool       `json:"pressed,omitempty"`
}

// Parameter resolves a named parameter to a numeric value. Booleans map to
// 0/1 so conditions can compare them uniformly. The second return is false
// when the reading's sensor type does not expose the parameter.
func (r *Reading) Parameter(name string) (float64, bool) {
	params := SensorParameters(r.SensorType)
	known := false
	for _, p := range params {
		if p == name {
			known = true
			break
		}
	}
	if !known {
		return 0, false
	}

	switch name {
	case ParamTemperature:
		return r.Temperature, true
	case ParamHumidity:
		return r.Humidity, true
	case ParamGas:
		return r.Gas, true
	case ParamCurrent:
		return r.Current, true
	case ParamLight:
		return r.Light, true
	case ParamMotion:
		return boolToFloat(r.Motion), true
	case ParamPressed:
		return boolToFloat(r.Pressed), true
	}
	return 0, false
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

type TriggerType string

const (
	TriggerSensorThreshold   TriggerType = "sensor_threshold"
	TriggerSensorCombination TriggerType = "sensor_combination"
	TriggerSchedule          TriggerType = "schedule"
	TriggerCriticalEvent     TriggerType = "critical_event"
)

type ConditionOperator string

const (
	OpGreater      ConditionOperator = ">"
	OpLess         ConditionOperator = "<"
	OpEqual        ConditionOperator = "=="
	OpGreaterEqual ConditionOperator = ">="
	OpLessEqual    ConditionOperator = "<="
)

type ConditionLogic string

const (
	LogicAnd ConditionLogic = "AND"
	LogicOr  ConditionLogic = "OR"
)

// Condition compares one sensor parameter against a threshold. Logic on
// condition i tells how condition i combines with condition i+1; chains are
// evaluated strictly left to right without precedence or grouping.
type Condition struct {
	SensorID  string            `json:"sensor_id"`
	Parameter string            `json:"parameter"`
	Operator  ConditionOperator `json:"operator"`
	Value     float64           `json:"value"`
	Logic     ConditionLogic    `json:"logic,omitempty"`
}

type ActionKind string

const (
	ActionTurnOn  ActionKind = "turn_on"
	ActionTurnOff ActionKind = "turn_off"
	ActionToggle  ActionKind = "toggle"
)

// Action commands one actuator. Duration of 0 means the resulting state
// persists instead of auto-reverting. Pattern is only meaningful for buzzers.
type Action struct {
	ActuatorID string     `json:"actuator_id"`
	Action     ActionKind `json:"action"`
	Duration   int64      `json:"duration,omitempty"` // ms
	Pattern    string     `json:"pattern,omitempty"`
}

// Schedule is a local time-of-day window plus a weekday set. Day order in the
// json array carries no meaning, only membership does.
type Schedule struct {
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	Days      []string `json:"days"`
}

// Weekday tokens accepted in Schedule.Days.
var WeekdayTokens = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// Rule is a user-authored automation. A rule references devices by id only;
// it never owns them, so references can dangle after a device is deleted.
type Rule struct {
	ID                     string      `json:"id"`
	Name                   string      `json:"name"`
	Enabled                bool        `json:"enabled"`
	TriggerType            TriggerType `json:"trigger_type"`
	Conditions             []Condition `json:"conditions,omitempty"`
	Actions                []Action    `json:"actions,omitempty"`
	DeactivationConditions []Condition `json:"deactivation_conditions,omitempty"`
	Schedule               *Schedule   `json:"schedule,omitempty"`
}

// ConfigDocument is the full shared config: every write replaces the whole
// document, there is no partial update path. Revision is maintained by the
// store and checked on write to surface concurrent edits.
type ConfigDocument struct {
	Devices  []Device `json:"devices"`
	Rules    []Rule   `json:"rules"`
	Revision int64    `json:"revision,omitempty"`
}

// NewDeviceID generates an id for a device created without one, in the same
// shape the dashboard historically used.
func NewDeviceID(now time.Time) string {
	return fmt.Sprintf("device_%d", now.UnixMilli())
}

func NewRuleID(now time.Time) string {
	return fmt.Sprintf("rule_%d", now.UnixMilli())
}

type AlertType string

const (
	AlertTypeGas         AlertType = "gas"
	AlertTypeEmergency   AlertType = "emergency"
	AlertTypeTemperature AlertType = "temperature"
)

// Alert is an advisory signal for the notification collaborator. Stored
// alerts keep an audit trail per device.
type Alert struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	DeviceID  string    `gorm:"index" json:"device_id"`
	Timestamp time.Time `json:"timestamp"`
	Type      AlertType `gorm:"type:varchar(20);check:type IN ('gas','emergency','temperature')" json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
}

// ConfigSnapshot is the persisted form of the config document.
type ConfigSnapshot struct {
	ID        uint      `gorm:"primaryKey"`
	Revision  int64     `gorm:"index"`
	Payload   []byte    // json-encoded ConfigDocument, without revision
	UpdatedAt time.Time
}
