package hub

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"opendom.xyz/home-automation-service/pkg/db"
	"opendom.xyz/home-automation-service/pkg/hub/mocks"
	"opendom.xyz/home-automation-service/pkg/models"
)

func GetMockHubWithMemorySqliteDialector(t *testing.T, useMockTelemetry, useMockAlert, useMockConfig bool) (
	*gomock.Controller,
	*Hub,
	*mocks.MockITelemetry,
	*mocks.MockIAlert,
	*MockIConfig,
) {
	ctrl := gomock.NewController(t)

	mockITelemetry := mocks.NewMockITelemetry(ctrl)
	mockIAlert := mocks.NewMockIAlert(ctrl)
	mockIConfig := NewMockIConfig(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	hubInstance := New(*dbInstance)
	hubInstance.Store = NewGormConfigStore(*dbInstance)

	telemetryService := hubInstance.GetITelemetry()
	if useMockTelemetry {
		telemetryService = mockITelemetry
	}

	alertService := hubInstance.GetIAlert()
	if useMockAlert {
		alertService = mockIAlert
	}

	configService := hubInstance.GetIConfig()
	if useMockConfig {
		configService = mockIConfig
	}

	hubInstance.WithServices(ServiceOpts{
		Registry:  hubInstance.GetIRegistry(),
		Telemetry: telemetryService,
		Alert:     alertService,
		Rules:     hubInstance.GetIRules(),
		Config:    configService,
	})

	return ctrl, hubInstance, mockITelemetry, mockIAlert, mockIConfig
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

func testSensor(id string, sensorType models.SensorType) models.Device {
	return models.Device{
		ID:           id,
		Name:         fmt.Sprintf("sensor %s", id),
		Kind:         models.DeviceKindSensor,
		Pin:          4,
		Enabled:      true,
		SensorType:   sensorType,
		ReadInterval: 2000,
	}
}

func testActuator(id string, actuatorType models.ActuatorType) models.Device {
	return models.Device{
		ID:           id,
		Name:         fmt.Sprintf("actuator %s", id),
		Kind:         models.DeviceKindActuator,
		Pin:          5,
		Enabled:      true,
		ActuatorType: actuatorType,
	}
}

func validReading(id string, sensorType models.SensorType) models.Reading {
	return models.Reading{
		DeviceID:   id,
		SensorType: sensorType,
		IsValid:    true,
		Timestamp:  time.Now().UnixMilli(),
	}
}
