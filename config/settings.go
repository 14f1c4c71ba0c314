package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	MenuSvcPort      string `mapstructure:"MENU_SVC_PORT"`
	AISvcPort        string `mapstructure:"AI_SVC_PORT"`
	AnalyticsSvcPort string `mapstructure:"ANALYTICS_SVC_PORT"`
	GatewayPort      string `mapstructure:"GATEWAY_PORT"`

	DataSource string `mapstructure:"DATA_SOURCE"`

	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBName     string `mapstructure:"DB_NAME"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`

	RedisHost string `mapstructure:"REDIS_HOST"`
	RedisPort string `mapstructure:"REDIS_PORT"`

	KafkaBroker string `mapstructure:"KAFKA_BROKER"`
	SearchTopic string `mapstructure:"SEARCH_TOPIC"`
	AggGroupID  string `mapstructure:"AGG_GROUP_ID"`

	PlacesURL     string `mapstructure:"PLACES_URL"`
	PublicBaseURL string `mapstructure:"PUBLIC_BASE_URL"`

	OpenAIAPIKey string        `mapstructure:"OPENAI_API_KEY"`
	OpenAIAPIURL string        `mapstructure:"OPENAI_API_URL"`
	OpenAIModel  string        `mapstructure:"OPENAI_MODEL"`
	AITimeout    time.Duration `mapstructure:"AI_TIMEOUT"`
	AICacheTTL   time.Duration `mapstructure:"AI_CACHE_TTL"`

	MenuSvcURL      string `mapstructure:"MENU_SVC_URL"`
	AISvcURL        string `mapstructure:"AI_SVC_URL"`
	AnalyticsSvcURL string `mapstructure:"ANALYTICS_SVC_URL"`
	FrontendDir     string `mapstructure:"FRONTEND_DIR"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
}

var defaults = map[string]interface{}{
	"MENU_SVC_PORT":      "8081",
	"AI_SVC_PORT":        "8084",
	"GATEWAY_PORT":       "8080",
	"ANALYTICS_SVC_PORT": "8083",
	"DATA_SOURCE":        "static",
	"DB_HOST":            "localhost",
	"DB_PORT":            "5432",
	"DB_NAME":            "bestmenu",
	"DB_USER":            "postgres",
	"DB_PASSWORD":        "",
	"REDIS_HOST":         "localhost",
	"REDIS_PORT":         "6379",
	"KAFKA_BROKER":       "",
	"SEARCH_TOPIC":       "menu-searches",
	"AGG_GROUP_ID":       "agg-svc-consumer",
	"PLACES_URL":         "https://nominatim.openstreetmap.org",
	"PUBLIC_BASE_URL":    "http://localhost:8080",
	"OPENAI_API_KEY":     "",
	"OPENAI_API_URL":     "https://api.openai.com/v1/chat/completions",
	"OPENAI_MODEL":       "gpt-4o-mini",
	"AI_TIMEOUT":         "60s",
	"AI_CACHE_TTL":       "1h",
	"MENU_SVC_URL":       "http://localhost:8081",
	"AI_SVC_URL":         "http://localhost:8084",
	"ANALYTICS_SVC_URL":  "http://localhost:8083",
	"FRONTEND_DIR":       "./frontend",
	"LOG_LEVEL":          "info",
	"LOG_FORMAT":         "json",
}

// Load reads an optional .env file and then the process environment.
// Environment variables always win over .env values.
func Load(envFiles ...string) (Settings, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	for key, value := range defaults {
		v.SetDefault(key, value)
		if err := v.BindEnv(key); err != nil {
			return Settings{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}
	v.AutomaticEnv()

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return s, nil
}

func (s Settings) PostgresDSN() string {
	return "host=" + s.DBHost + " port=" + s.DBPort + " user=" + s.DBUser +
		" password=" + s.DBPassword + " dbname=" + s.DBName + " sslmode=disable"
}

func (s Settings) RedisAddr() string {
	return s.RedisHost + ":" + s.RedisPort
}
