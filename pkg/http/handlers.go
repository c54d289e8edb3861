package http

import (
	"errors"
	"net/http"

	"opendom.xyz/home-automation-service/pkg/hub"
	"opendom.xyz/home-automation-service/pkg/models"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

// HeaderRootPassword carries the privileged credential on mutation requests
// from clients that have not elevated yet. It is exchanged for a session
// token on first use and never stored.
const HeaderRootPassword = "X-Root-Password"

type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

var loginRequestSchema = z.Struct(z.Shape{
	"Username": z.String().Required(),
	"Password": z.String().Required(),
})

func (rs *RestfulServer) Login(c *gin.Context) {
	var req LoginRequest
	if err := loginRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err})
		return
	}

	token, err := rs.Auth.Login(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    gin.H{"username": req.Username},
		"token":   token,
	})
}

func (rs *RestfulServer) Logout(c *gin.Context) {
	if token := bearerToken(c); token != "" {
		rs.Auth.Revoke(token)
	}
	rs.Hub.Config.Logout()
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type ElevateRequest struct {
	RootPassword string `form:"root_password"`
}

var elevateRequestSchema = z.Struct(z.Shape{
	"RootPassword": z.String().Required(),
})

// Elevate exchanges the privileged credential for a short-lived token the
// client attaches to subsequent mutation requests.
func (rs *RestfulServer) Elevate(c *gin.Context) {
	var req ElevateRequest
	if err := elevateRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err})
		return
	}

	token, err := rs.Auth.Elevate(req.RootPassword)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid credential"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

func (rs *RestfulServer) GetSensors(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sensors": rs.Hub.Telemetry.LastReadings()})
}

type ActuatorRequest struct {
	ID     string `form:"id"`
	Action string `form:"action"`
}

var actuatorRequestSchema = z.Struct(z.Shape{
	"ID":     z.String().Required(),
	"Action": z.String().Required().OneOf([]string{
		string(models.ActionTurnOn), string(models.ActionTurnOff), string(models.ActionToggle),
	}),
})

func (rs *RestfulServer) CommandActuator(c *gin.Context) {
	var req ActuatorRequest
	if err := actuatorRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err})
		return
	}

	if !rs.CheckActuatorLimiter(req.ID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	if !rs.Hub.Registry.IsKnownActuator(req.ID) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Actuator not found"})
		return
	}

	state, err := rs.Commander.Command(c.Request.Context(), req.ID, models.ActionKind(req.Action))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "actuator unreachable"})
		return
	}

	if device, err := rs.Hub.Registry.Get(req.ID); err == nil {
		device.State = state
		rs.Hub.Registry.Upsert(device)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "state": state})
}

func (rs *RestfulServer) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, models.ConfigDocument{
		Devices:  rs.Hub.Registry.All(),
		Rules:    rs.Hub.Registry.Rules(),
		Revision: rs.Hub.Registry.Revision(),
	})
}

func (rs *RestfulServer) UpdateConfig(c *gin.Context) {
	var doc models.ConfigDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed config document"})
		return
	}

	if err := rs.Hub.Config.ReplaceDocument(c.Request.Context(), &doc, bearerToken(c)); err != nil {
		respondMutationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "revision": doc.Revision})
}

type DeviceRequest struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Kind         string `json:"type"`
	Pin          int    `json:"pin"`
	Enabled      bool   `json:"enabled"`
	SensorType   string `json:"sensor_type"`
	ActuatorType string `json:"actuator_type"`
	ReadInterval int    `json:"read_interval"`
}

var deviceRequestSchema = z.Struct(z.Shape{
	"ID":   z.String(),
	"Name": z.String().Required(),
	"Kind": z.String().Required().OneOf([]string{
		string(models.DeviceKindSensor), string(models.DeviceKindActuator),
	}),
	"Pin":          z.Int(),
	"Enabled":      z.Bool(),
	"SensorType":   z.String(),
	"ActuatorType": z.String(),
	"ReadInterval": z.Int(),
})

func (rs *RestfulServer) SaveDevice(c *gin.Context) {
	var req DeviceRequest
	if err := deviceRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	device := models.Device{
		ID:           req.ID,
		Name:         req.Name,
		Kind:         models.DeviceKind(req.Kind),
		Pin:          req.Pin,
		Enabled:      req.Enabled,
		SensorType:   models.SensorType(req.SensorType),
		ActuatorType: models.ActuatorType(req.ActuatorType),
		ReadInterval: int64(req.ReadInterval),
	}

	if rs.runPrivileged(c, hub.Command{Kind: hub.CommandSaveDevice, Device: &device}) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func (rs *RestfulServer) DeleteDevice(c *gin.Context) {
	cmd := hub.Command{Kind: hub.CommandDeleteDevice, TargetID: c.Param("device_id")}
	if rs.runPrivileged(c, cmd) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func (rs *RestfulServer) SaveRule(c *gin.Context) {
	var rule models.Rule
	if err := c.ShouldBindJSON(&rule); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed rule"})
		return
	}

	if rs.runPrivileged(c, hub.Command{Kind: hub.CommandSaveRule, Rule: &rule}) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func (rs *RestfulServer) DeleteRule(c *gin.Context) {
	cmd := hub.Command{Kind: hub.CommandDeleteRule, TargetID: c.Param("rule_id")}
	if rs.runPrivileged(c, cmd) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func (rs *RestfulServer) GetSystemStats(c *gin.Context) {
	c.JSON(http.StatusOK, rs.Hub.SystemStats())
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// runPrivileged commits a mutation command. Callers holding an elevated
// bearer token commit directly; otherwise the request opens a pending action
// and resolves it with the credential header in one round trip. It writes the
// error response itself and reports whether the commit succeeded.
func (rs *RestfulServer) runPrivileged(c *gin.Context, cmd hub.Command) bool {
	ctx := c.Request.Context()

	if token := bearerToken(c); token != "" && rs.Auth.Verify(token) == nil {
		if err := rs.Hub.Config.Execute(ctx, cmd, token); err != nil {
			respondMutationError(c, err)
			return false
		}
		return true
	}

	if err := rs.Hub.Config.Begin(cmd); err != nil {
		respondMutationError(c, err)
		return false
	}

	if err := rs.Hub.Config.SubmitCredential(ctx, c.GetHeader(HeaderRootPassword)); err != nil {
		if errors.Is(err, hub.ErrCredentialRequired) {
			rs.Hub.Config.Cancel()
		}
		respondMutationError(c, err)
		return false
	}
	return true
}

func respondMutationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, hub.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, hub.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, hub.ErrCredentialRequired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Root password required"})
	case errors.Is(err, hub.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credential"})
	case errors.Is(err, hub.ErrMutationPending):
		c.JSON(http.StatusConflict, gin.H{"error": "another change is already pending"})
	case errors.Is(err, hub.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, hub.ErrTransport):
		c.JSON(http.StatusBadGateway, gin.H{"error": "configuration store unreachable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
