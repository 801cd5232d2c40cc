package config

import (
	"time"
)

// PipelineConfig содержит конфигурацию для пайплайна хранилища
type PipelineConfig struct {
	// Конфигурация для подключения к staging БД (сырые данные импорта)
	StagingConfig DatabaseConfig `json:"staging_config"`

	// Конфигурация для подключения к warehouse БД (целевая: conformed + modeled)
	WarehouseConfig DatabaseConfig `json:"warehouse_config"`

	// Интервал запуска пайплайна в режиме scheduled
	RunInterval time.Duration `json:"run_interval"`

	// Адрес HTTP API управления пайплайном
	HTTPAddr string `json:"http_addr"`

	// Включение/отключение детального логирования
	EnableDetailedLogging bool `json:"enable_detailed_logging"`
}

// DatabaseConfig содержит настройки подключения к базе данных
type DatabaseConfig struct {
	Driver   string `json:"driver"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	DBName   string `json:"dbname"`
}

// Значения конфигурации по умолчанию
var (
	DefaultStagingConfig = DatabaseConfig{
		Driver:   "mysql",
		Host:     "localhost",
		Port:     3306,
		User:     "root",
		Password: "Vjnbkmlf40782",
		DBName:   "sales_staging",
	}

	DefaultWarehouseConfig = DatabaseConfig{
		Driver:   "mysql",
		Host:     "localhost",
		Port:     3306,
		User:     "root",
		Password: "Vjnbkmlf40782",
		DBName:   "sales_dwh",
	}

	DefaultPipelineConfig = PipelineConfig{
		StagingConfig:         DefaultStagingConfig,
		WarehouseConfig:       DefaultWarehouseConfig,
		RunInterval:           24 * time.Hour,
		HTTPAddr:              ":8085",
		EnableDetailedLogging: true,
	}
)

// GetConfig возвращает конфигурацию пайплайна
func GetConfig() PipelineConfig {
	return DefaultPipelineConfig
}
