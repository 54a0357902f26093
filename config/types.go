package config

// Network data sources.
const (
	SourceCSV  = "csv"
	SourceGTFS = "gtfs"
)

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port           int      `yaml:"port" validate:"gte=1,lte=65535"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// NetworkConfig names the files the route graph is built from
type NetworkConfig struct {
	Source       string `yaml:"source" validate:"oneof=csv gtfs"`
	LinesPath    string `yaml:"lines" validate:"required_if=Source csv"`
	StepFreePath string `yaml:"stepFree"`
	GTFSPath     string `yaml:"gtfs" validate:"required_if=Source gtfs"`
}

// LoggingConfig contains logger configuration
type LoggingConfig struct {
	Level string `yaml:"level" validate:"oneof=trace debug info warn error"`
	JSON  bool   `yaml:"json"`
}

// OutputConfig selects how CLI results are rendered
type OutputConfig struct {
	Format string `yaml:"format" validate:"oneof=text json"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Network NetworkConfig `yaml:"network"`
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
}

// Default returns the configuration used when no file sets a value.
func Default() AppConfig {
	return AppConfig{
		Server: ServerConfig{Port: 16181},
		Network: NetworkConfig{
			Source:       SourceCSV,
			LinesPath:    "data/WMRlines.csv",
			StepFreePath: "data/WMRstationsWithStepFreeAccess.csv",
		},
		Logging: LoggingConfig{Level: "info"},
		Output:  OutputConfig{Format: "text"},
	}
}
