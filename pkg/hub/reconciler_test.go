package hub

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"opendom.xyz/home-automation-service/pkg/common"
	"opendom.xyz/home-automation-service/pkg/db"
	"opendom.xyz/home-automation-service/pkg/hub/mocks"
	"opendom.xyz/home-automation-service/pkg/models"
	_ "opendom.xyz/home-automation-service/pkg/testing"
)

func TestReconcileMarksSilentSensorsDisconnected(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, hubObj, _, _, _ := GetMockHubWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	hubObj.Registry.ReplaceAll(&models.ConfigDocument{
		Devices: []models.Device{
			testSensor("s-temp", models.SensorTypeDHT11),
			testSensor("s-gas", models.SensorTypeMQ2),
			testActuator("a-relay", models.ActuatorTypeRelay),
		},
	})

	reading := validReading("s-temp", models.SensorTypeDHT11)
	reading.Temperature = 21.5

	processed := hubObj.Telemetry.Reconcile([]models.Reading{reading})

	// one real reading plus one synthesized for the silent gas sensor; the
	// actuator gets nothing
	assert.Len(t, processed, 2)

	got, ok := hubObj.Telemetry.LastReading("s-temp")
	require.True(t, ok)
	assert.True(t, got.IsValid)
	assert.Equal(t, 21.5, got.Temperature)

	got, ok = hubObj.Telemetry.LastReading("s-gas")
	require.True(t, ok)
	assert.False(t, got.IsValid)
	assert.Equal(t, models.SensorTypeMQ2, got.SensorType)

	_, ok = hubObj.Telemetry.LastReading("a-relay")
	assert.False(t, ok)
}

func TestReconcileDropsUnknownSensors(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, hubObj, _, _, _ := GetMockHubWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	hubObj.Registry.ReplaceAll(&models.ConfigDocument{
		Devices: []models.Device{testSensor("known", models.SensorTypeLDR)},
	})

	processed := hubObj.Telemetry.Reconcile([]models.Reading{
		validReading("ghost", models.SensorTypeLDR),
		validReading("known", models.SensorTypeLDR),
	})

	assert.Len(t, processed, 1)
	assert.Equal(t, "known", processed[0].DeviceID)

	_, ok := hubObj.Telemetry.LastReading("ghost")
	assert.False(t, ok)
}

func TestReconcileIsIdempotent(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, hubObj, _, _, _ := GetMockHubWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	hubObj.Registry.ReplaceAll(&models.ConfigDocument{
		Devices: []models.Device{testSensor("s1", models.SensorTypePIR)},
	})

	reading := validReading("s1", models.SensorTypePIR)
	reading.Motion = true

	hubObj.Telemetry.Reconcile([]models.Reading{reading})
	first, _ := hubObj.Telemetry.LastReading("s1")

	hubObj.Telemetry.Reconcile([]models.Reading{reading})
	second, _ := hubObj.Telemetry.LastReading("s1")

	assert.Equal(t, first, second)
}

func TestReconcileForwardsToNotifier(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, hubObj, _, _, _ := GetMockHubWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	mockNotifier := mocks.NewMockNotifier(ctrl)
	hubObj.Notifier = mockNotifier

	gasID := uuid.NewString()
	hubObj.Registry.ReplaceAll(&models.ConfigDocument{
		Devices: []models.Device{testSensor(gasID, models.SensorTypeMQ2)},
	})

	reading := validReading(gasID, models.SensorTypeMQ2)
	reading.Gas = 650

	mockNotifier.EXPECT().NotifyReading(gomock.Any()).Do(func(got models.Reading) {
		assert.Equal(t, gasID, got.DeviceID)
		assert.Equal(t, 650.0, got.Gas)
	})
	mockNotifier.EXPECT().NotifyAlert(gomock.Any()).Do(func(alert models.Alert) {
		assert.Equal(t, gasID, alert.DeviceID)
	})

	hubObj.Telemetry.Reconcile([]models.Reading{reading})
}

func TestMarkAllDisconnected(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, hubObj, _, _, _ := GetMockHubWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	hubObj.Registry.ReplaceAll(&models.ConfigDocument{
		Devices: []models.Device{
			testSensor("s1", models.SensorTypeDHT11),
			testSensor("s2", models.SensorTypeMQ2),
			testActuator("a1", models.ActuatorTypeBuzzer),
		},
	})

	reading := validReading("s1", models.SensorTypeDHT11)
	reading.Temperature = 19
	hubObj.Telemetry.Reconcile([]models.Reading{reading})

	processed := hubObj.Telemetry.MarkAllDisconnected()
	assert.Len(t, processed, 2)

	for _, id := range []string{"s1", "s2"} {
		got, ok := hubObj.Telemetry.LastReading(id)
		require.True(t, ok, id)
		assert.False(t, got.IsValid, id)
	}
}

func TestLastReadingsFollowRegistryOrder(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, hubObj, _, _, _ := GetMockHubWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	hubObj.Registry.ReplaceAll(&models.ConfigDocument{
		Devices: []models.Device{
			testSensor("s-a", models.SensorTypeDHT11),
			testSensor("s-b", models.SensorTypeMQ2),
			testSensor("s-c", models.SensorTypeLDR),
		},
	})

	// deliver in scrambled order
	hubObj.Telemetry.Reconcile([]models.Reading{
		validReading("s-c", models.SensorTypeLDR),
		validReading("s-a", models.SensorTypeDHT11),
		validReading("s-b", models.SensorTypeMQ2),
	})

	readings := hubObj.Telemetry.LastReadings()
	require.Len(t, readings, 3)
	assert.Equal(t, "s-a", readings[0].DeviceID)
	assert.Equal(t, "s-b", readings[1].DeviceID)
	assert.Equal(t, "s-c", readings[2].DeviceID)
}

func BenchmarkReconcile1kSensors(b *testing.B) {
	common.SetTestLoggerNop()

	dialectorHub := newBenchHub()

	devices := make([]models.Device, 0, 1000)
	batch := make([]models.Reading, 0, 1000)
	for i := 0; i < 1000; i++ {
		id := fmt.Sprintf("sensor_%d", i)
		devices = append(devices, testSensor(id, models.SensorTypeDHT11))
		batch = append(batch, validReading(id, models.SensorTypeDHT11))
	}
	dialectorHub.Registry.ReplaceAll(&models.ConfigDocument{Devices: devices})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dialectorHub.Telemetry.Reconcile(batch)
	}
}

// newBenchHub skips the alert service so the benchmark measures the
// reconcile path, not sqlite writes.
func newBenchHub() *Hub {
	hubInstance := New(*db.GetInstance(db.UseMemorySqliteDialector()))
	hubInstance.WithServices(ServiceOpts{
		Registry:  hubInstance.GetIRegistry(),
		Telemetry: hubInstance.GetITelemetry(),
		Rules:     hubInstance.GetIRules(),
	})
	return hubInstance
}
