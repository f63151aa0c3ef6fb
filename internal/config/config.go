package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Warehouse        Warehouse        `mapstructure:",squash"`
	Storage          Storage          `mapstructure:",squash"`
	Feed             Feed             `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
	Report           Report           `mapstructure:",squash"`
	RateCacheRefresh RateCacheRefresh `mapstructure:",squash"`
	TmpCleanup       TmpCleanup       `mapstructure:",squash"`
	Profiles         Profiles         `mapstructure:"-"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	MaxUploadMB    int64    `mapstructure:"max_upload_mb"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Warehouse struct {
	BatchSize int `mapstructure:"warehouse_batch_size"`
}

type Storage struct {
	// Driver pode ser "fs" (diretório local) ou "http" (bucket exposto via HTTP)
	Driver       string        `mapstructure:"storage_driver"`
	BasePath     string        `mapstructure:"storage_base_path"`
	BucketURL    string        `mapstructure:"storage_bucket_url"`
	BucketName   string        `mapstructure:"storage_bucket_name"`
	AccessToken  string        `mapstructure:"storage_access_token"`
	Timeout      time.Duration `mapstructure:"storage_timeout"`
	TmpRetention time.Duration `mapstructure:"storage_tmp_retention"`
}

type Feed struct {
	// Endpoint é usado quando o perfil do país não define feed_url
	Endpoint string        `mapstructure:"feed_endpoint"`
	Timeout  time.Duration `mapstructure:"feed_timeout"`
}

type App struct {
	LogLevel    string `mapstructure:"log_level"`
	Environment string `mapstructure:"app_env"`
}

type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
	Enabled  bool          `mapstructure:"auth_enabled"`
}

type Report struct {
	ProfilesFile     string        `mapstructure:"country_profiles_file"`
	DefaultCountry   string        `mapstructure:"default_country"`
	RunTimeout       time.Duration `mapstructure:"report_run_timeout"`
	LocationName     string        `mapstructure:"report_timezone"`
	EnabledCountries []string      `mapstructure:"enabled_countries"`
}

type RateCacheRefresh struct {
	CronSchedule string `mapstructure:"rate_cache_refresh_cron"`
	Enabled      bool   `mapstructure:"rate_cache_refresh_enabled"`
}

type TmpCleanup struct {
	CronSchedule string `mapstructure:"tmp_cleanup_cron"`
	Enabled      bool   `mapstructure:"tmp_cleanup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("MAX_UPLOAD_MB", 32)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/capex?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("WAREHOUSE_BATCH_SIZE", 1000)

	viper.SetDefault("STORAGE_DRIVER", "fs")
	viper.SetDefault("STORAGE_BASE_PATH", "./data")
	viper.SetDefault("STORAGE_BUCKET_URL", "")
	viper.SetDefault("STORAGE_BUCKET_NAME", "consolidado-capex")
	viper.SetDefault("STORAGE_ACCESS_TOKEN", "")
	viper.SetDefault("STORAGE_TIMEOUT", "30s")
	viper.SetDefault("STORAGE_TMP_RETENTION", "24h")

	viper.SetDefault("FEED_ENDPOINT", "http://localhost:8081/")
	viper.SetDefault("FEED_TIMEOUT", "30s")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")
	viper.SetDefault("AUTH_ENABLED", true)

	viper.SetDefault("COUNTRY_PROFILES_FILE", "")
	viper.SetDefault("DEFAULT_COUNTRY", "vzla")
	viper.SetDefault("REPORT_RUN_TIMEOUT", "5m")
	viper.SetDefault("REPORT_TIMEZONE", "America/Caracas")
	viper.SetDefault("ENABLED_COUNTRIES", "vzla")

	viper.SetDefault("RATE_CACHE_REFRESH_CRON", "0 6 * * 1-5") // Dias úteis às 6h
	viper.SetDefault("RATE_CACHE_REFRESH_ENABLED", false)
	viper.SetDefault("TMP_CLEANUP_CRON", "15 * * * *") // A cada hora
	viper.SetDefault("TMP_CLEANUP_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	if err := decode(config); err != nil {
		return nil, err
	}

	profiles, err := LoadProfiles(config.Report.ProfilesFile)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar perfis de país: %w", err)
	}
	config.Profiles = profiles

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func decode(config *Config) error {
	return viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
}

// Location retorna o fuso horário usado para calcular a data de referência
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Report.LocationName)
	if err != nil {
		logrus.WithError(err).Warnf("Fuso horário inválido: %s, usando o local", c.Report.LocationName)
		return time.Local
	}
	return loc
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
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
