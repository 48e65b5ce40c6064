package timeseries

// Config holds configuration for the InfluxDB connection.
type Config struct {
	// URL is the InfluxDB server URL.
	URL string `mapstructure:"url" default:"http://localhost:8086"`
	// Token is the API token used for authentication.
	Token string `mapstructure:"token" default:""`
	// Org is the InfluxDB organization.
	Org string `mapstructure:"org" default:"facilities"`
	// Bucket is the bucket readings are written to.
	Bucket string `mapstructure:"bucket" default:"bas"`
}
