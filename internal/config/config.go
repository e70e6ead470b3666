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
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Insights      Insights      `mapstructure:",squash"`
	Timezone      Timezone      `mapstructure:",squash"`
	Retention     Retention     `mapstructure:",squash"`
	MonthlyRollup MonthlyRollup `mapstructure:",squash"`
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

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Insights configura a busca paginada de linhas diárias
type Insights struct {
	// PageSize é o teto rígido de linhas por página do armazenamento
	PageSize int `mapstructure:"insights_page_size"`
	// MaxPages limita o laço de paginação contra intervalos corrompidos
	MaxPages int `mapstructure:"insights_max_pages"`
}

// Timezone configura a resolução de "hoje" por projeto
type Timezone struct {
	// DefaultUTCOffsetHours é o offset aplicado a fusos desconhecidos
	DefaultUTCOffsetHours int `mapstructure:"timezone_default_utc_offset_hours"`
}

// Retention configura a limpeza de linhas diárias antigas
type Retention struct {
	CronSchedule string `mapstructure:"retention_cron"`
	KeepDays     int    `mapstructure:"retention_keep_days"`
	Enabled      bool   `mapstructure:"retention_enabled"`
}

// MonthlyRollup configura a consolidação mensal de métricas
type MonthlyRollup struct {
	CronSchedule      string `mapstructure:"monthly_rollup_cron"`
	MonthLookBack     int    `mapstructure:"monthly_rollup_month_lookback"`
	MaxConcurrentJobs int    `mapstructure:"monthly_rollup_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"monthly_rollup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/adboard")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	// Teto de página espelha o limite do armazenamento de linhas diárias
	viper.SetDefault("INSIGHTS_PAGE_SIZE", 1000)
	viper.SetDefault("INSIGHTS_MAX_PAGES", 50)

	// Offset padrão para fusos desconhecidos: America/Sao_Paulo (UTC-3)
	viper.SetDefault("TIMEZONE_DEFAULT_UTC_OFFSET_HOURS", -3)

	viper.SetDefault("RETENTION_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("RETENTION_KEEP_DAYS", 400)
	viper.SetDefault("RETENTION_ENABLED", false)

	viper.SetDefault("MONTHLY_ROLLUP_CRON", "0 5 1 * *") // Primeiro dia de cada mês às 5h
	viper.SetDefault("MONTHLY_ROLLUP_MONTH_LOOKBACK", 1)
	viper.SetDefault("MONTHLY_ROLLUP_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("MONTHLY_ROLLUP_ENABLED", false)

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

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
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
