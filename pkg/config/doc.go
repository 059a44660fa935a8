// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv merges one or more dotenv files into the process environment
//     without overriding variables that are already set.
//   - Load parses the environment into any struct annotated with env tags and
//     caches the result per type.
//   - ForceReload and ResetCache bypass or clear the cache, mostly for tests.
//
// # Usage
//
//	type MQTTConfig struct {
//	    BrokerURL string        `env:"MQTT_BROKER_URL" envDefault:"tcp://localhost:1883"`
//	    Topic     string        `env:"MQTT_TOPIC,required"`
//	    Timeout   time.Duration `env:"MQTT_CONNECT_TIMEOUT" envDefault:"10s"`
//	}
//
//	func main() {
//	    config.MustLoadEnv("./deploy/.env")
//
//	    var cfg MQTTConfig
//	    if err := config.Load(&cfg); err != nil {
//	        log.Fatalf("parsing env: %v", err)
//	    }
//	}
//
// The default .env file in the working directory is read on the first Load
// when it exists; a missing file is not an error there, but it is for LoadEnv.
//
// # Errors
//
//   - ErrParsingConfig: env.Parse failed, e.g. a required variable is missing.
//   - ErrLoadingEnvFile: a dotenv file could not be read.
//   - ErrNilPointer: nil was passed to Load or ForceReload.
package config
