package hub

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"opendom.xyz/home-automation-service/pkg/common"
	"opendom.xyz/home-automation-service/pkg/models"
)

// equalityTolerance mirrors the controller: sensor floats are compared with
// an absolute tolerance rather than exact equality.
const equalityTolerance = 0.1

// EvaluateConditions folds a condition chain strictly left to right. The
// logic token on condition i combines the running result with condition i+1;
// there is no AND/OR precedence or grouping, so A AND B OR C evaluates as
// ((A AND B) OR C). A condition whose sensor or parameter is absent from the
// current device state evaluates to false, never to an error.
func EvaluateConditions(conditions []models.Condition, readings map[string]models.Reading) bool {
	if len(conditions) == 0 {
		return false
	}

	result := conditionHolds(&conditions[0], readings)
	for i := 1; i < len(conditions); i++ {
		logic := conditions[i-1].Logic
		if logic == "" {
			logic = models.LogicAnd
		}
		current := conditionHolds(&conditions[i], readings)
		if logic == models.LogicOr {
			result = result || current
		} else {
			result = result && current
		}
	}
	return result
}

// conditionHolds applies one comparison. Dangling sensor references and
// invalid (disconnected) readings are false: no data never satisfies a
// threshold.
func conditionHolds(condition *models.Condition, readings map[string]models.Reading) bool {
	reading, ok := readings[condition.SensorID]
	if !ok || !reading.IsValid {
		return false
	}

	value, ok := reading.Parameter(condition.Parameter)
	if !ok {
		return false
	}

	switch condition.Operator {
	case models.OpGreater:
		return value > condition.Value
	case models.OpLess:
		return value < condition.Value
	case models.OpEqual:
		return math.Abs(value-condition.Value) < equalityTolerance
	case models.OpGreaterEqual:
		return value >= condition.Value
	case models.OpLessEqual:
		return value <= condition.Value
	}
	return false
}

// EvaluateSchedule reports whether now falls inside the schedule's local
// time-of-day window on one of its weekdays. Windows whose end precedes
// their start span midnight.
func EvaluateSchedule(schedule *models.Schedule, now time.Time) bool {
	if schedule == nil || schedule.StartTime == "" || schedule.EndTime == "" {
		return false
	}

	start, err := parseTimeOfDay(schedule.StartTime)
	if err != nil {
		return false
	}
	end, err := parseTimeOfDay(schedule.EndTime)
	if err != nil {
		return false
	}

	dayMatches := false
	for _, token := range schedule.Days {
		if weekday, ok := models.WeekdayTokens[strings.ToLower(token)]; ok && weekday == now.Weekday() {
			dayMatches = true
			break
		}
	}
	if !dayMatches {
		return false
	}

	minute := now.Hour()*60 + now.Minute()
	if end < start {
		// overnight window
		return minute >= start || minute <= end
	}
	return minute >= start && minute <= end
}

// parseTimeOfDay converts "HH:MM" to minutes since midnight.
func parseTimeOfDay(value string) (int, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed time of day: %q", value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("malformed hour in %q", value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("malformed minute in %q", value)
	}
	return hour*60 + minute, nil
}

func (h *Hub) evaluateRule(rule *models.Rule, now time.Time) bool {
	logger := common.GetLoggerWith(
		common.LoggerNameHubCore,
		zap.String(common.LoggerFieldHubCategory, common.LoggerCategoryHubRules),
	)

	if !rule.Enabled {
		return false
	}

	var result bool
	switch rule.TriggerType {
	case models.TriggerSensorThreshold, models.TriggerSensorCombination, models.TriggerCriticalEvent:
		result = EvaluateConditions(rule.Conditions, h.readingsByDevice())
	case models.TriggerSchedule:
		result = EvaluateSchedule(rule.Schedule, now)
	default:
		result = false
	}

	logger.Debug("Rule evaluated",
		zap.String("rule_id", rule.ID),
		zap.String("trigger_type", string(rule.TriggerType)),
		zap.Bool("result", result))
	return result
}

func (h *Hub) validateDevice(device *models.Device) error {
	if device.Name == "" {
		return fmt.Errorf("%w: device name is required", ErrValidation)
	}
	if device.Pin < 0 {
		return fmt.Errorf("%w: device pin must be non-negative", ErrValidation)
	}

	switch device.Kind {
	case models.DeviceKindSensor:
		if models.SensorParameters(device.SensorType) == nil {
			return fmt.Errorf("%w: unknown sensor type %q", ErrValidation, device.SensorType)
		}
		if device.ReadInterval < 0 {
			return fmt.Errorf("%w: read interval must be non-negative", ErrValidation)
		}
	case models.DeviceKindActuator:
		switch device.ActuatorType {
		case models.ActuatorTypeRelay, models.ActuatorTypeBuzzer:
		default:
			return fmt.Errorf("%w: unknown actuator type %q", ErrValidation, device.ActuatorType)
		}
	default:
		return fmt.Errorf("%w: unknown device type %q", ErrValidation, device.Kind)
	}

	return nil
}

// validateRule checks a rule payload against the config document it is about
// to be saved into: enum values, referenced sensors/actuators, parameter
// compatibility and schedule shape. Rules are rejected whole; nothing is
// partially saved.
func (h *Hub) validateRule(rule *models.Rule, doc *models.ConfigDocument) error {
	if rule.Name == "" {
		return fmt.Errorf("%w: rule name is required", ErrValidation)
	}

	switch rule.TriggerType {
	case models.TriggerSensorThreshold, models.TriggerSensorCombination, models.TriggerCriticalEvent:
		if len(rule.Conditions) == 0 {
			return fmt.Errorf("%w: trigger %q requires at least one condition", ErrValidation, rule.TriggerType)
		}
	case models.TriggerSchedule:
		if rule.Schedule == nil {
			return fmt.Errorf("%w: schedule trigger requires a schedule", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown trigger type %q", ErrValidation, rule.TriggerType)
	}

	sensorTypes := common.Reducer(doc.Devices,
		func(m map[string]models.SensorType, d models.Device) map[string]models.SensorType {
			if d.IsSensor() {
				m[d.ID] = d.SensorType
			}
			return m
		},
		map[string]models.SensorType{})
	actuators := common.Reducer(doc.Devices,
		func(m map[string]bool, d models.Device) map[string]bool {
			if d.IsActuator() {
				m[d.ID] = true
			}
			return m
		},
		map[string]bool{})

	if err := validateConditions(rule.Conditions, sensorTypes); err != nil {
		return err
	}
	if err := validateConditions(rule.DeactivationConditions, sensorTypes); err != nil {
		return err
	}

	if len(rule.Actions) == 0 {
		return fmt.Errorf("%w: rule requires at least one action", ErrValidation)
	}
	for i, action := range rule.Actions {
		if !actuators[action.ActuatorID] {
			return fmt.Errorf("%w: action %d references unknown actuator %q", ErrValidation, i, action.ActuatorID)
		}
		switch action.Action {
		case models.ActionTurnOn, models.ActionTurnOff, models.ActionToggle:
		default:
			return fmt.Errorf("%w: action %d has unknown kind %q", ErrValidation, i, action.Action)
		}
		if action.Duration < 0 {
			return fmt.Errorf("%w: action %d duration must be positive", ErrValidation, i)
		}
	}

	if rule.Schedule != nil {
		if _, err := parseTimeOfDay(rule.Schedule.StartTime); err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
		if _, err := parseTimeOfDay(rule.Schedule.EndTime); err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
		for _, token := range rule.Schedule.Days {
			if _, ok := models.WeekdayTokens[strings.ToLower(token)]; !ok {
				return fmt.Errorf("%w: unknown weekday token %q", ErrValidation, token)
			}
		}
	}

	return nil
}

func validateConditions(conditions []models.Condition, sensorTypes map[string]models.SensorType) error {
	for i, condition := range conditions {
		sensorType, ok := sensorTypes[condition.SensorID]
		if !ok {
			return fmt.Errorf("%w: condition %d references unknown sensor %q", ErrValidation, i, condition.SensorID)
		}

		paramOK := false
		for _, param := range models.SensorParameters(sensorType) {
			if param == condition.Parameter {
				paramOK = true
				break
			}
		}
		if !paramOK {
			return fmt.Errorf("%w: condition %d parameter %q is not valid for sensor type %q",
				ErrValidation, i, condition.Parameter, sensorType)
		}

		switch condition.Operator {
		case models.OpGreater, models.OpLess, models.OpEqual, models.OpGreaterEqual, models.OpLessEqual:
		default:
			return fmt.Errorf("%w: condition %d has unknown operator %q", ErrValidation, i, condition.Operator)
		}

		switch condition.Logic {
		case "", models.LogicAnd, models.LogicOr:
		default:
			return fmt.Errorf("%w: condition %d has unknown logic token %q", ErrValidation, i, condition.Logic)
		}
	}
	return nil
}

type IRulesImpl struct {
	hub *Hub
}

func (ir *IRulesImpl) EvaluateRule(rule *models.Rule, now time.Time) bool {
	return ir.hub.evaluateRule(rule, now)
}

func (ir *IRulesImpl) ValidateDevice(device *models.Device) error {
	return ir.hub.validateDevice(device)
}

func (ir *IRulesImpl) ValidateRule(rule *models.Rule, doc *models.ConfigDocument) error {
	return ir.hub.validateRule(rule, doc)
}

func (h *Hub) GetIRules() IRules {
	return &IRulesImpl{hub: h}
}
