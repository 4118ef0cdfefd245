package config

import (
	aws_handler "greenvest/src/utils/aws"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Service   ServiceConfig   `mapstructure:"service"`
	Databases DatabasesConfig `mapstructure:"databases"`
}

type ServiceConfig struct {
	Env      string `mapstructure:"env"`
	Port     string `mapstructure:"port"`
	LogLevel string `mapstructure:"logLevel"`
}

type DatabasesConfig struct {
	SQL   SQLConfig   `mapstructure:"sql"`
	Redis RedisConfig `mapstructure:"redis"`
}

type SQLConfig struct {
	Host             string `mapstructure:"host"`
	Port             string `mapstructure:"port"`
	Username         string `mapstructure:"username"`
	Password         string `mapstructure:"password"`
	Database         string `mapstructure:"database"`
	ConnectionString string `mapstructure:"connection_string"`
	// PasswordSecretID, when set, overrides Password with the value stored
	// in AWS Secrets Manager.
	PasswordSecretID string `mapstructure:"passwordSecretId"`
	AWSRegion        string `mapstructure:"awsRegion"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
}

func (c *Config) IsProduction() bool {
	return c.Service.Env == "production"
}

func LoadConfig(path string) (*Config, error) {
	// Local development convenience; missing .env files are fine.
	_ = godotenv.Load()

	var cfg Config

	viper.AddConfigPath(path)
	viper.SetConfigName("appsettings")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.Databases.SQL.PasswordSecretID != "" {
		awsHandler, err := aws_handler.NewAWSHandler(cfg.Databases.SQL.AWSRegion)
		if err != nil {
			return nil, err
		}
		password, err := awsHandler.SecretManager.GetSecretValue(cfg.Databases.SQL.PasswordSecretID)
		if err != nil {
			return nil, err
		}
		cfg.Databases.SQL.Password = password
	}

	return &cfg, nil
}
