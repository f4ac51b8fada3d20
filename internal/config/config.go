package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the test engine.
type Config struct {
	AppName             string
	AppEnv              string
	LogLevel            string
	QuestionsPerStudent int
	RandomSeed          int64
}

// Load reads configuration values from environment variables and an
// optional .env file. A RandomSeed of zero means "seed from the clock".
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("VARYTEST")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "VaryTest Engine")
	v.SetDefault("app.env", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("questions.per_student", 2)
	v.SetDefault("random.seed", 0)

	perStudent := v.GetInt("questions.per_student")
	if perStudent <= 0 {
		perStudent = 2
	}

	return Config{
		AppName:             v.GetString("app.name"),
		AppEnv:              v.GetString("app.env"),
		LogLevel:            v.GetString("log.level"),
		QuestionsPerStudent: perStudent,
		RandomSeed:          v.GetInt64("random.seed"),
	}, nil
}
