package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyHubDBType string = "HUB_DB_TYPE"
	EnvKeyHubDbPath string = "HUB_DB_PATH"

	EnvKeyHubHttpHostPort string = "HUB_HTTP_HOST_PORT"
	EnvKeyHubFeedBaseURL  string = "HUB_FEED_BASE_URL"

	EnvKeyHubDefaultRate  string = "HUB_DEFAULT_RATE"
	EnvKeyHubDefaultBurst string = "HUB_DEFAULT_BURST"

	EnvKeyHubAuthUsername string = "HUB_AUTH_USERNAME"
	EnvKeyHubAuthPassword string = "HUB_AUTH_PASSWORD"
	EnvKeyHubRootPassword string = "HUB_ROOT_PASSWORD"
	EnvKeyHubTokenSecret  string = "HUB_TOKEN_SECRET"

	LoggerNameHubCore         string = "hub_core"
	LoggerNameRestfulServer   string = "restful_server"
	LoggerNameTelemetryPoller string = "telemetry_poller"

	LoggerFieldHubCategory     string = "category"
	LoggerCategoryHubRegistry  string = "registry"
	LoggerCategoryHubTelemetry string = "telemetry"
	LoggerCategoryHubAlert     string = "alert"
	LoggerCategoryHubRules     string = "rules"
	LoggerCategoryHubConfig    string = "config"
	LoggerCategoryHubAuth      string = "auth"
)
