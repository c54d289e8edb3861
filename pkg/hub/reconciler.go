package hub

import (
	"time"

	"go.uber.org/zap"
	"opendom.xyz/home-automation-service/pkg/common"
	"opendom.xyz/home-automation-service/pkg/models"
)

// reconcile merges one poll batch into the last-reading slots. Registered
// sensors missing from the batch get a synthesized disconnected reading so
// absence of data is never mistaken for "still online". Readings for unknown
// sensors are dropped. Returns every reading that was processed this tick.
func (h *Hub) reconcile(batch []models.Reading) []models.Reading {
	logger := common.GetLoggerWith(
		common.LoggerNameHubCore,
		zap.String(common.LoggerFieldHubCategory, common.LoggerCategoryHubTelemetry),
	)

	seen := make(map[string]bool, len(batch))
	processed := make([]models.Reading, 0, len(batch))

	for _, reading := range batch {
		if !h.isKnownDevice(reading.DeviceID, models.DeviceKindSensor) {
			logger.Warn("Dropping reading for unknown sensor", zap.String("device_id", reading.DeviceID))
			continue
		}
		seen[reading.DeviceID] = true
		h.applyReading(reading)
		processed = append(processed, reading)
	}

	now := time.Now().UnixMilli()
	for _, sensor := range h.allDevices() {
		if !sensor.IsSensor() || seen[sensor.ID] {
			continue
		}
		disconnected := models.Reading{
			DeviceID:   sensor.ID,
			SensorType: sensor.SensorType,
			IsValid:    false,
			Timestamp:  now,
		}
		logger.Info("Sensor silent this tick, marking disconnected", zap.String("device_id", sensor.ID))
		h.applyReading(disconnected)
		processed = append(processed, disconnected)
	}

	return processed
}

// markAllDisconnected synthesizes a disconnected reading for every registered
// sensor. Used when a whole poll fails: the system must not keep showing
// stale "online" state during an outage.
func (h *Hub) markAllDisconnected() []models.Reading {
	logger := common.GetLoggerWith(
		common.LoggerNameHubCore,
		zap.String(common.LoggerFieldHubCategory, common.LoggerCategoryHubTelemetry),
	)

	now := time.Now().UnixMilli()
	processed := []models.Reading{}
	for _, sensor := range h.allDevices() {
		if !sensor.IsSensor() {
			continue
		}
		disconnected := models.Reading{
			DeviceID:   sensor.ID,
			SensorType: sensor.SensorType,
			IsValid:    false,
			Timestamp:  now,
		}
		h.applyReading(disconnected)
		processed = append(processed, disconnected)
	}

	logger.Warn("Telemetry went dark, all sensors marked disconnected", zap.Int("sensors", len(processed)))
	return processed
}

// applyReading stores the reading in its device's last-reading slot and
// forwards it to the alert evaluator and the notifier. Applying the same
// reading twice leaves identical state.
func (h *Hub) applyReading(reading models.Reading) {
	h.readMu.Lock()
	h.lastReadings[reading.DeviceID] = reading
	h.readMu.Unlock()

	if h.Alert != nil {
		// Alert evaluation degrades gracefully, it never fails the tick.
		_ = h.Alert.CheckAndStoreAlerts(&reading)
	}
	if h.Notifier != nil {
		h.Notifier.NotifyReading(reading)
	}
}

func (h *Hub) lastReading(deviceID string) (models.Reading, bool) {
	h.readMu.RLock()
	defer h.readMu.RUnlock()

	reading, ok := h.lastReadings[deviceID]
	return reading, ok
}

// lastReadingsSnapshot returns the last reading per sensor, in registry
// insertion order.
func (h *Hub) lastReadingsSnapshot() []models.Reading {
	devices := h.allDevices()

	h.readMu.RLock()
	defer h.readMu.RUnlock()

	readings := make([]models.Reading, 0, len(devices))
	for _, device := range devices {
		if reading, ok := h.lastReadings[device.ID]; ok {
			readings = append(readings, reading)
		}
	}
	return readings
}

// readingsByDevice is the device-state view the rule evaluator consumes.
func (h *Hub) readingsByDevice() map[string]models.Reading {
	h.readMu.RLock()
	defer h.readMu.RUnlock()

	snapshot := make(map[string]models.Reading, len(h.lastReadings))
	for id, reading := range h.lastReadings {
		snapshot[id] = reading
	}
	return snapshot
}

type ITelemetryImpl struct {
	hub *Hub
}

func (it *ITelemetryImpl) Reconcile(batch []models.Reading) []models.Reading {
	return it.hub.reconcile(batch)
}

func (it *ITelemetryImpl) MarkAllDisconnected() []models.Reading {
	return it.hub.markAllDisconnected()
}

func (it *ITelemetryImpl) LastReading(deviceID string) (models.Reading, bool) {
	return it.hub.lastReading(deviceID)
}

func (it *ITelemetryImpl) LastReadings() []models.Reading {
	return it.hub.lastReadingsSnapshot()
}

func (h *Hub) GetITelemetry() ITelemetry {
	return &ITelemetryImpl{hub: h}
}
