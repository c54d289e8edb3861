package hub

import (
	"context"
	"sync"
	"time"

	"opendom.xyz/home-automation-service/pkg/db"
	"opendom.xyz/home-automation-service/pkg/models"
)

// IRegistry is the canonical device/rule store. All reads return copies;
// mutation happens only through ReplaceAll, driven by a fetched config
// document.
type IRegistry interface {
	ReplaceAll(doc *models.ConfigDocument)
	Upsert(device models.Device)
	Remove(id string) error
	Get(id string) (models.Device, error)
	All() []models.Device
	Sensors() []models.Device
	Actuators() []models.Device
	Rules() []models.Rule
	IsKnownSensor(id string) bool
	IsKnownActuator(id string) bool
	Revision() int64
}

// ITelemetry reconciles poll batches against the registry and keeps the
// last reading per sensor.
type ITelemetry interface {
	Reconcile(batch []models.Reading) []models.Reading
	MarkAllDisconnected() []models.Reading
	LastReading(deviceID string) (models.Reading, bool)
	LastReadings() []models.Reading
}

// IAlert evaluates readings against the built-in threshold table, stores the
// resulting alerts and forwards them to the notifier.
type IAlert interface {
	CheckAndStoreAlerts(reading *models.Reading) error
	GetDeviceAlerts(deviceID string) ([]models.Alert, error)
}

// IRules evaluates automation rules against current device state and
// validates rule/device payloads before they are persisted.
type IRules interface {
	EvaluateRule(rule *models.Rule, now time.Time) bool
	ValidateDevice(device *models.Device) error
	ValidateRule(rule *models.Rule, doc *models.ConfigDocument) error
}

// IConfig is the config mutation coordinator: a one-slot state machine that
// serializes privileged read-modify-write cycles over the config store.
type IConfig interface {
	Begin(cmd Command) error
	SubmitCredential(ctx context.Context, credential string) error
	Cancel()
	Execute(ctx context.Context, cmd Command, token string) error
	ReplaceDocument(ctx context.Context, doc *models.ConfigDocument, token string) error
	State() CoordinatorState
	SessionToken() string
	Logout()
}

// Feed is the polled telemetry transport. A failed fetch means the whole
// poll went dark, not a partial batch.
type Feed interface {
	Fetch(ctx context.Context) ([]models.Reading, error)
}

// ConfigStore is the versioned full-document config transport. Save checks
// the revision carried by the document and fails with ErrConflict when it no
// longer matches the stored one.
type ConfigStore interface {
	Load(ctx context.Context) (*models.ConfigDocument, error)
	Save(ctx context.Context, doc *models.ConfigDocument) error
}

// ActuatorCommander executes a direct command on one actuator and reports
// the resulting on/off state.
type ActuatorCommander interface {
	Command(ctx context.Context, actuatorID string, action models.ActionKind) (bool, error)
}

// Notifier receives reconciled readings and alert events (the presentation
// layer collaborator). Implementations must not mutate hub state.
type Notifier interface {
	NotifyReading(reading models.Reading)
	NotifyAlert(alert models.Alert)
}

// Authorizer gates privileged mutations: one credential exchange yields a
// session-scoped token that is attached to commits and revoked on logout.
type Authorizer interface {
	Elevate(credential string) (string, error)
	Verify(token string) error
	Revoke(token string)
}

type Hub struct {
	Db        db.DB
	Store     ConfigStore
	Auth      Authorizer
	Notifier  Notifier
	Registry  IRegistry
	Telemetry ITelemetry
	Alert     IAlert
	Rules     IRules
	Config    IConfig

	startedAt time.Time

	regMu     sync.RWMutex
	devOrder  []string
	devices   map[string]models.Device
	rules     []models.Rule
	revision  int64

	readMu       sync.RWMutex
	lastReadings map[string]models.Reading

	coordMu      sync.Mutex
	coordState   CoordinatorState
	pending      *Command
	sessionToken string
}

func New(database db.DB) *Hub {
	return &Hub{
		Db:           database,
		startedAt:    time.Now(),
		devices:      map[string]models.Device{},
		lastReadings: map[string]models.Reading{},
		coordState:   StateIdle,
	}
}

type ServiceOpts struct {
	Registry  IRegistry
	Telemetry ITelemetry
	Alert     IAlert
	Rules     IRules
	Config    IConfig
}

func (h *Hub) WithServices(opts ServiceOpts) *Hub {
	if opts.Registry != nil {
		h.Registry = opts.Registry
	}
	if opts.Telemetry != nil {
		h.Telemetry = opts.Telemetry
	}
	if opts.Alert != nil {
		h.Alert = opts.Alert
	}
	if opts.Rules != nil {
		h.Rules = opts.Rules
	}
	if opts.Config != nil {
		h.Config = opts.Config
	}
	return h
}
