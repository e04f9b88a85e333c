package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	GoogleAds  GoogleAds  `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
	ReportSync ReportSync `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`

	// Pool de conexões
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"database_conn_max_idle_time"`
}

// GoogleAds contém as credenciais e endpoints da API do Google Ads.
// O developer token fica em Google Ads MCC > Configurações > Central de API,
// client_id e client_secret no console do Google Cloud.
type GoogleAds struct {
	BaseURL         string        `mapstructure:"google_ads_base_url"`
	Version         string        `mapstructure:"google_ads_version"`
	TokenURL        string        `mapstructure:"google_ads_token_url"`
	DeveloperToken  string        `mapstructure:"google_ads_developer_token"`
	ClientID        string        `mapstructure:"google_ads_client_id"`
	ClientSecret    string        `mapstructure:"google_ads_client_secret"`
	RefreshToken    string        `mapstructure:"google_ads_refresh_token"`
	AccessToken     string        `mapstructure:"google_ads_access_token"`
	LoginCustomerID string        `mapstructure:"google_ads_login_customer_id"`
	RequestTimeout  time.Duration `mapstructure:"google_ads_request_timeout"`
}

// URL retorna a URL base versionada da API
func (g GoogleAds) URL() string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(g.BaseURL, "/"), g.Version)
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type ReportSync struct {
	CronSchedule        string   `mapstructure:"report_sync_cron"`
	LookbackDays        int      `mapstructure:"report_sync_lookback_days"`
	RequestDelaySeconds int      `mapstructure:"report_sync_request_delay_seconds"`
	MaxConcurrentJobs   int      `mapstructure:"report_sync_max_concurrent_jobs"`
	RetentionDays       int      `mapstructure:"report_sync_retention_days"`
	Enabled             bool     `mapstructure:"report_sync_enabled"`
	CustomerIDs         []string `mapstructure:"report_sync_customer_ids"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads_report?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")
	viper.SetDefault("DATABASE_CONN_MAX_IDLE_TIME", "5m")

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_VERSION", "v17")
	viper.SetDefault("GOOGLE_ADS_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_ADS_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_ADS_REFRESH_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_ACCESS_TOKEN", "") // ONLY LOCAL
	viper.SetDefault("GOOGLE_ADS_LOGIN_CUSTOMER_ID", "")
	viper.SetDefault("GOOGLE_ADS_REQUEST_TIMEOUT", "2m")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	// Defaults para sincronização de relatórios
	viper.SetDefault("REPORT_SYNC_CRON", "0 3 * * *")        // Todos os dias às 3h da manhã
	viper.SetDefault("REPORT_SYNC_LOOKBACK_DAYS", 3)         // 3 dias para buscar dados
	viper.SetDefault("REPORT_SYNC_REQUEST_DELAY_SECONDS", 1) // 1 segundo entre requisições
	viper.SetDefault("REPORT_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 jobs concorrentes
	viper.SetDefault("REPORT_SYNC_RETENTION_DAYS", 400)      // Snapshots mais antigos são removidos
	viper.SetDefault("REPORT_SYNC_ENABLED", false)
	viper.SetDefault("REPORT_SYNC_CUSTOMER_IDS", "")

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

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.ReportSync.CustomerIDs = normalizeCustomerIDs(config.ReportSync.CustomerIDs)
	ensurePoolSize(&config.Database, config.ReportSync)
	config.GoogleAds.LoginCustomerID = strings.ReplaceAll(config.GoogleAds.LoginCustomerID, "-", "")

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// ensurePoolSize reserva uma conexão por job da sincronização e uma para a API
func ensurePoolSize(db *Database, sync ReportSync) {
	if db.MaxOpenConns <= 0 {
		return
	}
	if minimum := sync.MaxConcurrentJobs + 1; db.MaxOpenConns < minimum {
		logrus.Warnf("DATABASE_MAX_OPEN_CONNS=%d abaixo do necessário para a sincronização, usando %d", db.MaxOpenConns, minimum)
		db.MaxOpenConns = minimum
	}
}

// normalizeCustomerIDs remove espaços, traços e entradas vazias
func normalizeCustomerIDs(ids []string) []string {
	normalized := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.ReplaceAll(strings.TrimSpace(id), "-", "")
		if id == "" {
			continue
		}
		normalized = append(normalized, id)
	}
	return normalized
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
