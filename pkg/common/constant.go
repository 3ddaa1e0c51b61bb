package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyEnergyDBType string = "ENERGY_DB_TYPE"
	EnvKeyEnergyDbPath string = "ENERGY_DB_PATH"

	EnvKeyEnergyHttpHostPort string = "ENERGY_HTTP_HOST_PORT"

	EnvKeyEnergyMqttBrokerUrl string = "ENERGY_MQTT_BROKER_URL"
	EnvKeyEnergyMqttTopic     string = "ENERGY_MQTT_TOPIC"
	EnvKeyEnergyMqttClientId  string = "ENERGY_MQTT_CLIENT_ID"

	EnvKeyEnergyDefaultRate  string = "ENERGY_DEFAULT_RATE"
	EnvKeyEnergyDefaultBurst string = "ENERGY_DEFAULT_BURST"

	LoggerNameEnergyCore    string = "energy_core"
	LoggerNameMqttIngest    string = "mqtt_ingest"
	LoggerNameRestfulServer string = "restful_server"

	LoggerFieldEnergyCategory     string = "category"
	LoggerCategoryEnergyReading   string = "reading"
	LoggerCategoryEnergyCatalog   string = "catalog"
	LoggerCategoryEnergyAggregate string = "aggregate"
	LoggerCategoryEnergyQuality   string = "quality"
)
