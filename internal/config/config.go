package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	SalesSourceCSV      = "csv"
	SalesSourcePostgres = "postgres"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Artifacts      Artifacts      `mapstructure:",squash"`
	Sales          Sales          `mapstructure:",squash"`
	Prediction     Prediction     `mapstructure:",squash"`
	ArtifactReload ArtifactReload `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
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

type Artifacts struct {
	ModelPath        string `mapstructure:"model_path"`
	LabelMappingPath string `mapstructure:"label_mapping_path"`
}

type Sales struct {
	Source  string `mapstructure:"sales_source"`
	CSVPath string `mapstructure:"sales_csv_path"`
}

type Prediction struct {
	DefaultMonthsAhead int    `mapstructure:"default_months_ahead"`
	DefaultSeason      string `mapstructure:"default_season"`
}

type ArtifactReload struct {
	CronSchedule string `mapstructure:"artifact_reload_cron"`
	Enabled      bool   `mapstructure:"artifact_reload_enabled"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", 8000)
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:8000")

	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "localhost:5432/chocolate?sslmode=disable")
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "root")

	v.SetDefault("MODEL_PATH", "modele/modele/model_regression.json")
	v.SetDefault("LABEL_MAPPING_PATH", "modele/modele/label_mapping.json")

	v.SetDefault("SALES_SOURCE", SalesSourceCSV)
	v.SetDefault("SALES_CSV_PATH", "modele/modele/chocolate_sales.csv")

	v.SetDefault("DEFAULT_MONTHS_AHEAD", 3)  // Previsão resumida: 3 meses à frente
	v.SetDefault("DEFAULT_SEASON", "summer") // Previsão resumida: verão

	v.SetDefault("ARTIFACT_RELOAD_CRON", "0 * * * *") // A cada hora
	v.SetDefault("ARTIFACT_RELOAD_ENABLED", false)    // Habilitar recarga automática dos artefatos

	v.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	return load(viper.New(), ".env")
}

func load(v *viper.Viper, envFile string) (*Config, error) {
	config := &Config{}

	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(envFile)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := v.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
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

func (c *Config) validate() error {
	c.Sales.Source = strings.ToLower(strings.TrimSpace(c.Sales.Source))
	switch c.Sales.Source {
	case SalesSourceCSV, SalesSourcePostgres:
	default:
		return fmt.Errorf("config: SALES_SOURCE inválido: %q (valores aceitos: csv, postgres)", c.Sales.Source)
	}

	if c.Prediction.DefaultMonthsAhead < 0 {
		return fmt.Errorf("config: DEFAULT_MONTHS_AHEAD deve ser >= 0: %d", c.Prediction.DefaultMonthsAhead)
	}

	return nil
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
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
