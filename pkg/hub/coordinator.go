package hub

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"opendom.xyz/home-automation-service/pkg/common"
	"opendom.xyz/home-automation-service/pkg/models"
)

type CommandKind string

const (
	CommandSaveDevice   CommandKind = "save_device"
	CommandDeleteDevice CommandKind = "delete_device"
	CommandSaveRule     CommandKind = "save_rule"
	CommandDeleteRule   CommandKind = "delete_rule"
)

// Command is a typed privileged mutation request. Entity identity travels in
// the payload, never in presentation markup.
type Command struct {
	Kind     CommandKind
	Device   *models.Device // save_device
	Rule     *models.Rule   // save_rule
	TargetID string         // delete_device / delete_rule
}

type CoordinatorState int

const (
	StateIdle CoordinatorState = iota
	StateAwaitingCredential
	StateCommitting
)

func (s CoordinatorState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingCredential:
		return "awaiting_credential"
	case StateCommitting:
		return "committing"
	}
	return "unknown"
}

func (c *Command) validateShape() error {
	switch c.Kind {
	case CommandSaveDevice:
		if c.Device == nil {
			return fmt.Errorf("%w: save_device command without device payload", ErrValidation)
		}
	case CommandSaveRule:
		if c.Rule == nil {
			return fmt.Errorf("%w: save_rule command without rule payload", ErrValidation)
		}
	case CommandDeleteDevice, CommandDeleteRule:
		if c.TargetID == "" {
			return fmt.Errorf("%w: delete command without target id", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown command kind %q", ErrValidation, c.Kind)
	}
	return nil
}

// beginMutation reserves the single pending-action slot. A second request
// while one is pending is rejected, never silently replaces the first.
func (h *Hub) beginMutation(cmd Command) error {
	if err := cmd.validateShape(); err != nil {
		return err
	}

	h.coordMu.Lock()
	defer h.coordMu.Unlock()

	if h.coordState != StateIdle {
		return ErrMutationPending
	}
	h.pending = &cmd
	h.coordState = StateAwaitingCredential
	return nil
}

func (h *Hub) cancelMutation() {
	h.coordMu.Lock()
	defer h.coordMu.Unlock()

	h.pending = nil
	h.coordState = StateIdle
}

// submitCredential resolves the pending action. The credential is exchanged
// for a session-scoped token and is not retained past this call; the token
// backs later Execute calls until logout. A missing credential leaves the
// pending action open for retry, a rejected one abandons it.
func (h *Hub) submitCredential(ctx context.Context, credential string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameHubCore,
		zap.String(common.LoggerFieldHubCategory, common.LoggerCategoryHubConfig),
	)

	h.coordMu.Lock()
	if h.coordState != StateAwaitingCredential || h.pending == nil {
		h.coordMu.Unlock()
		return fmt.Errorf("no pending mutation to authorize")
	}
	if credential == "" {
		h.coordMu.Unlock()
		return ErrCredentialRequired
	}

	token, err := h.Auth.Elevate(credential)
	credential = ""
	if err != nil {
		h.pending = nil
		h.coordState = StateIdle
		h.coordMu.Unlock()
		logger.Warn("Privileged credential rejected")
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	h.sessionToken = token
	cmd := *h.pending
	h.coordState = StateCommitting
	h.coordMu.Unlock()

	commitErr := h.commit(ctx, cmd)

	h.coordMu.Lock()
	h.pending = nil
	h.coordState = StateIdle
	h.coordMu.Unlock()

	if commitErr != nil {
		logger.Warn("Privileged mutation failed", zap.String("kind", string(cmd.Kind)), zap.Error(commitErr))
		return commitErr
	}

	logger.Info("Privileged mutation committed", zap.String("kind", string(cmd.Kind)))
	return nil
}

// executeMutation commits a command for a caller that already holds a valid
// session token, skipping the interactive credential step. It takes the same
// single-flight slot, so it cannot race a pending interactive action.
func (h *Hub) executeMutation(ctx context.Context, cmd Command, token string) error {
	if err := cmd.validateShape(); err != nil {
		return err
	}
	if token == "" {
		return ErrCredentialRequired
	}
	if err := h.Auth.Verify(token); err != nil {
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	h.coordMu.Lock()
	if h.coordState != StateIdle {
		h.coordMu.Unlock()
		return ErrMutationPending
	}
	h.coordState = StateCommitting
	h.coordMu.Unlock()

	err := h.commit(ctx, cmd)

	h.coordMu.Lock()
	h.coordState = StateIdle
	h.coordMu.Unlock()

	return err
}

// replaceDocument is the whole-document write path: every device and rule is
// validated, then the document replaces the stored one under the revision it
// was read at.
func (h *Hub) replaceDocument(ctx context.Context, doc *models.ConfigDocument, token string) error {
	if token == "" {
		return ErrCredentialRequired
	}
	if err := h.Auth.Verify(token); err != nil {
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	seen := map[string]bool{}
	for i := range doc.Devices {
		if err := h.validateDevice(&doc.Devices[i]); err != nil {
			return err
		}
		if seen[doc.Devices[i].ID] {
			return fmt.Errorf("%w: duplicate device id %q", ErrValidation, doc.Devices[i].ID)
		}
		seen[doc.Devices[i].ID] = true
	}
	for i := range doc.Rules {
		if err := h.validateRule(&doc.Rules[i], doc); err != nil {
			return err
		}
	}

	h.coordMu.Lock()
	if h.coordState != StateIdle {
		h.coordMu.Unlock()
		return ErrMutationPending
	}
	h.coordState = StateCommitting
	h.coordMu.Unlock()

	err := h.saveAndRefresh(ctx, doc)

	h.coordMu.Lock()
	h.coordState = StateIdle
	h.coordMu.Unlock()

	return err
}

func (h *Hub) coordinatorState() CoordinatorState {
	h.coordMu.Lock()
	defer h.coordMu.Unlock()
	return h.coordState
}

func (h *Hub) currentSessionToken() string {
	h.coordMu.Lock()
	defer h.coordMu.Unlock()
	return h.sessionToken
}

// logoutSession revokes the session token and abandons any pending action.
func (h *Hub) logoutSession() {
	h.coordMu.Lock()
	defer h.coordMu.Unlock()

	if h.sessionToken != "" {
		h.Auth.Revoke(h.sessionToken)
		h.sessionToken = ""
	}
	h.pending = nil
	h.coordState = StateIdle
}

// commit runs one read-modify-write cycle: load the full document, apply the
// command to exactly one entity, write the full document back.
func (h *Hub) commit(ctx context.Context, cmd Command) error {
	doc, err := h.Store.Load(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}

	switch cmd.Kind {
	case CommandSaveDevice:
		device := *cmd.Device
		if device.ID == "" {
			device.ID = models.NewDeviceID(time.Now())
		}
		if err := h.validateDevice(&device); err != nil {
			return err
		}
		doc.Devices = upsertByID(doc.Devices, device, func(d models.Device) string { return d.ID })

	case CommandDeleteDevice:
		filtered := common.Filter(doc.Devices, func(d models.Device) bool { return d.ID != cmd.TargetID })
		if len(filtered) == len(doc.Devices) {
			return fmt.Errorf("%w: device %q", ErrNotFound, cmd.TargetID)
		}
		doc.Devices = filtered

	case CommandSaveRule:
		rule := *cmd.Rule
		if rule.ID == "" {
			rule.ID = models.NewRuleID(time.Now())
		}
		if err := h.validateRule(&rule, doc); err != nil {
			return err
		}
		doc.Rules = upsertByID(doc.Rules, rule, func(r models.Rule) string { return r.ID })

	case CommandDeleteRule:
		filtered := common.Filter(doc.Rules, func(r models.Rule) bool { return r.ID != cmd.TargetID })
		if len(filtered) == len(doc.Rules) {
			return fmt.Errorf("%w: rule %q", ErrNotFound, cmd.TargetID)
		}
		doc.Rules = filtered
	}

	return h.saveAndRefresh(ctx, doc)
}

func (h *Hub) saveAndRefresh(ctx context.Context, doc *models.ConfigDocument) error {
	if err := h.Store.Save(ctx, doc); err != nil {
		if errors.Is(err, ErrConflict) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	h.replaceAll(doc)
	return nil
}

func upsertByID[T any](items []T, item T, idOf func(T) string) []T {
	for i := range items {
		if idOf(items[i]) == idOf(item) {
			items[i] = item
			return items
		}
	}
	return append(items, item)
}

type IConfigImpl struct {
	hub *Hub
}

func (ic *IConfigImpl) Begin(cmd Command) error {
	return ic.hub.beginMutation(cmd)
}

func (ic *IConfigImpl) SubmitCredential(ctx context.Context, credential string) error {
	return ic.hub.submitCredential(ctx, credential)
}

func (ic *IConfigImpl) Cancel() {
	ic.hub.cancelMutation()
}

func (ic *IConfigImpl) Execute(ctx context.Context, cmd Command, token string) error {
	return ic.hub.executeMutation(ctx, cmd, token)
}

func (ic *IConfigImpl) ReplaceDocument(ctx context.Context, doc *models.ConfigDocument, token string) error {
	return ic.hub.replaceDocument(ctx, doc, token)
}

func (ic *IConfigImpl) State() CoordinatorState {
	return ic.hub.coordinatorState()
}

func (ic *IConfigImpl) SessionToken() string {
	return ic.hub.currentSessionToken()
}

func (ic *IConfigImpl) Logout() {
	ic.hub.logoutSession()
}

func (h *Hub) GetIConfig() IConfig {
	return &IConfigImpl{hub: h}
}
