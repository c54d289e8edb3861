package hub

import (
	"go.uber.org/zap"
	"opendom.xyz/home-automation-service/pkg/common"
	"opendom.xyz/home-automation-service/pkg/models"
)

func (h *Hub) replaceAll(doc *models.ConfigDocument) {
	logger := common.GetLoggerWith(
		common.LoggerNameHubCore,
		zap.String(common.LoggerFieldHubCategory, common.LoggerCategoryHubRegistry),
	)

	h.regMu.Lock()
	defer h.regMu.Unlock()

	h.devOrder = h.devOrder[:0]
	h.devices = make(map[string]models.Device, len(doc.Devices))
	for _, device := range doc.Devices {
		if _, seen := h.devices[device.ID]; !seen {
			h.devOrder = append(h.devOrder, device.ID)
		}
		h.devices[device.ID] = device
	}

	h.rules = make([]models.Rule, len(doc.Rules))
	copy(h.rules, doc.Rules)
	h.revision = doc.Revision

	logger.Info("Registry replaced from config document",
		zap.Int("devices", len(h.devOrder)),
		zap.Int("rules", len(h.rules)),
		zap.Int64("revision", h.revision))
}

func (h *Hub) upsertDevice(device models.Device) {
	h.regMu.Lock()
	defer h.regMu.Unlock()

	if _, exists := h.devices[device.ID]; !exists {
		h.devOrder = append(h.devOrder, device.ID)
	}
	h.devices[device.ID] = device
}

func (h *Hub) removeDevice(id string) error {
	h.regMu.Lock()
	defer h.regMu.Unlock()

	if _, exists := h.devices[id]; !exists {
		return ErrNotFound
	}
	delete(h.devices, id)
	for i, devID := range h.devOrder {
		if devID == id {
			h.devOrder = append(h.devOrder[:i], h.devOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (h *Hub) getDevice(id string) (models.Device, error) {
	h.regMu.RLock()
	defer h.regMu.RUnlock()

	device, exists := h.devices[id]
	if !exists {
		return models.Device{}, ErrNotFound
	}
	return device, nil
}

// allDevices returns a copy in insertion order.
func (h *Hub) allDevices() []models.Device {
	h.regMu.RLock()
	defer h.regMu.RUnlock()

	return common.Mapper(h.devOrder, func(id string) models.Device {
		return h.devices[id]
	})
}

func (h *Hub) allRules() []models.Rule {
	h.regMu.RLock()
	defer h.regMu.RUnlock()

	rules := make([]models.Rule, len(h.rules))
	copy(rules, h.rules)
	return rules
}

func (h *Hub) isKnownDevice(id string, kind models.DeviceKind) bool {
	h.regMu.RLock()
	defer h.regMu.RUnlock()

	device, exists := h.devices[id]
	return exists && device.Kind == kind
}

func (h *Hub) registryRevision() int64 {
	h.regMu.RLock()
	defer h.regMu.RUnlock()
	return h.revision
}

type IRegistryImpl struct {
	hub *Hub
}

func (ir *IRegistryImpl) ReplaceAll(doc *models.ConfigDocument) {
	ir.hub.replaceAll(doc)
}

func (ir *IRegistryImpl) Upsert(device models.Device) {
	ir.hub.upsertDevice(device)
}

func (ir *IRegistryImpl) Remove(id string) error {
	return ir.hub.removeDevice(id)
}

func (ir *IRegistryImpl) Get(id string) (models.Device, error) {
	return ir.hub.getDevice(id)
}

func (ir *IRegistryImpl) All() []models.Device {
	return ir.hub.allDevices()
}

func (ir *IRegistryImpl) Sensors() []models.Device {
	return common.Filter(ir.hub.allDevices(), func(d models.Device) bool {
		return d.IsSensor()
	})
}

func (ir *IRegistryImpl) Actuators() []models.Device {
	return common.Filter(ir.hub.allDevices(), func(d models.Device) bool {
		return d.IsActuator()
	})
}

func (ir *IRegistryImpl) Rules() []models.Rule {
	return ir.hub.allRules()
}

func (ir *IRegistryImpl) IsKnownSensor(id string) bool {
	return ir.hub.isKnownDevice(id, models.DeviceKindSensor)
}

func (ir *IRegistryImpl) IsKnownActuator(id string) bool {
	return ir.hub.isKnownDevice(id, models.DeviceKindActuator)
}

func (ir *IRegistryImpl) Revision() int64 {
	return ir.hub.registryRevision()
}

func (h *Hub) GetIRegistry() IRegistry {
	return &IRegistryImpl{hub: h}
}
