package hub

import (
	"time"

	"go.uber.org/zap"
	"opendom.xyz/home-automation-service/pkg/common"
	"opendom.xyz/home-automation-service/pkg/models"
)

// Built-in alert thresholds. These are fixed, not user-configurable; user
// automations go through rules instead.
const (
	gasAlertThreshold         = 400.0
	temperatureAlertThreshold = 35.0
)

// EvaluateReading inspects one reading against the built-in threshold table.
// Pure: no side effects, no registry access. Thresholds are strict
// comparisons, a gas value of exactly 400 raises nothing.
func EvaluateReading(reading *models.Reading) []models.Alert {
	if !reading.IsValid {
		return nil
	}

	now := time.Now()
	var alerts []models.Alert

	if reading.SensorType == models.SensorTypeMQ2 && reading.Gas > gasAlertThreshold {
		alerts = append(alerts, models.Alert{
			DeviceID:  reading.DeviceID,
			Timestamp: now,
			Type:      models.AlertTypeGas,
			Title:     "Gas Alert",
			Message:   "Critical gas level detected",
		})
	}

	if reading.SensorType == models.SensorTypeButton && reading.Pressed {
		alerts = append(alerts, models.Alert{
			DeviceID:  reading.DeviceID,
			Timestamp: now,
			Type:      models.AlertTypeEmergency,
			Title:     "Emergency",
			Message:   "Alarm button pressed",
		})
	}

	if reading.SensorType == models.SensorTypeDHT11 && reading.Temperature > temperatureAlertThreshold {
		alerts = append(alerts, models.Alert{
			DeviceID:  reading.DeviceID,
			Timestamp: now,
			Type:      models.AlertTypeTemperature,
			Title:     "Temperature",
			Message:   "High temperature detected",
		})
	}

	return alerts
}

func (h *Hub) checkAndStoreAlerts(reading *models.Reading) error {
	logger := common.GetLoggerWith(
		common.LoggerNameHubCore,
		zap.String(common.LoggerFieldHubCategory, common.LoggerCategoryHubAlert),
	)

	for _, alert := range EvaluateReading(reading) {
		logger.Info("Alert found", zap.Reflect("alert", alert))

		if err := h.Db.Conn.Create(&alert).Error; err != nil {
			return err
		}

		logger.Info("Alert saved", zap.Reflect("alert", alert))

		if h.Notifier != nil {
			h.Notifier.NotifyAlert(alert)
		}
	}

	return nil
}

func (h *Hub) getDeviceAlerts(deviceID string) ([]models.Alert, error) {
	var alerts []models.Alert
	err := h.Db.Conn.
		Where("device_id = ?", deviceID).
		Order("timestamp desc").
		Find(&alerts).Error
	return alerts, err
}

type IAlertImpl struct {
	hub *Hub
}

func (ia *IAlertImpl) CheckAndStoreAlerts(reading *models.Reading) error {
	return ia.hub.checkAndStoreAlerts(reading)
}

func (ia *IAlertImpl) GetDeviceAlerts(deviceID string) ([]models.Alert, error) {
	return ia.hub.getDeviceAlerts(deviceID)
}

func (h *Hub) GetIAlert() IAlert {
	return &IAlertImpl{hub: h}
}
