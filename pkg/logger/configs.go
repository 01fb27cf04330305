package logger

const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

type Config struct {
	// Level selects the minimum level that gets emitted. Unknown values
	// fall back to info.
	Level string `yaml:"level" envconfig:"SQLKIT_LOGGER_LEVEL"`
	// ServiceName is attached to every entry as the "service" field.
	ServiceName string `yaml:"serviceName" envconfig:"SQLKIT_SERVICE_NAME"`
}
