package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	BentoML           BentoML           `mapstructure:",squash"`
	Upload            Upload            `mapstructure:",squash"`
	SubmissionCleanup SubmissionCleanup `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// BentoML configura o acesso ao serviço externo de scoring.
type BentoML struct {
	URL            string `mapstructure:"bentoml_url"`
	PredictPath    string `mapstructure:"bentoml_predict_path"`
	TimeoutSeconds int    `mapstructure:"bentoml_timeout_seconds"`
}

// Upload limita o tamanho do CSV aceito no envio.
type Upload struct {
	MaxSizeBytes int64 `mapstructure:"upload_max_size_bytes"`
}

// SubmissionCleanup configura a varredura de retenção dos envios.
type SubmissionCleanup struct {
	CronSchedule string `mapstructure:"submission_cleanup_cron"`
	TTLHours     int    `mapstructure:"submission_cleanup_ttl_hours"`
	Enabled      bool   `mapstructure:"submission_cleanup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales_prediction?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("BENTOML_URL", "http://localhost:3000")
	viper.SetDefault("BENTOML_PREDICT_PATH", "/predict_csv")
	viper.SetDefault("BENTOML_TIMEOUT_SECONDS", 45)

	viper.SetDefault("UPLOAD_MAX_SIZE_BYTES", 16<<20) // 16 MiB

	// Defaults da varredura de retenção de envios
	viper.SetDefault("SUBMISSION_CLEANUP_CRON", "0 */6 * * *") // A cada 6 horas
	viper.SetDefault("SUBMISSION_CLEANUP_TTL_HOURS", 24)
	viper.SetDefault("SUBMISSION_CLEANUP_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
