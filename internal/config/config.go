package config

import (
	"log"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const defaultConfigPath = "configs/config_local.toml"

type MainConfig struct {
	AppName     string `toml:"appName"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	SSLRedirect bool   `toml:"sslRedirect"`
}

// StoreConfig 选择文档存储实现：mongo（默认）或 mysql
type StoreConfig struct {
	Driver string `toml:"driver"`
}

type MysqlConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	DatabaseName string `toml:"databaseName"`
}

type MongoConfig struct {
	URI            string `toml:"uri"`
	DatabaseName   string `toml:"databaseName"`
	TimeoutSeconds int    `toml:"timeoutSeconds"`
}

type LogConfig struct {
	LogPath string `toml:"logPath"`
	Level   string `toml:"level"`
}

type KafkaConfig struct {
	Brokers     []string `toml:"brokers"`
	ClientID    string   `toml:"clientID"`
	RoastTopic  string   `toml:"roastTopic"`
	Partitions  int32    `toml:"partitions"`
	Replication int16    `toml:"replication"`
}

type AIChatModelConfig struct {
	Provider        string `toml:"provider"`
	APIKey          string `toml:"apiKey"`
	AccessKey       string `toml:"accessKey"`
	SecretKey       string `toml:"secretKey"`
	BaseURL         string `toml:"baseURL"`
	Region          string `toml:"region"`
	Model           string `toml:"model"`
	TimeoutSeconds  int    `toml:"timeoutSeconds"`
	RetryTimes      int    `toml:"retryTimes"`
	ByAzure         bool   `toml:"byAzure"`
	AzureAPIVersion string `toml:"azureApiVersion"`
}

type AIConfig struct {
	ChatModel AIChatModelConfig `toml:"chatModel"`
}

type RedisConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	Password        string `toml:"password"`
	DB              int    `toml:"db"`
	PoolSize        int    `toml:"poolSize"`
	MinIdleConns    int    `toml:"minIdleConns"`
	CacheTTLSeconds int    `toml:"cacheTTLSeconds"`
}

type Config struct {
	MainConfig  `toml:"mainConfig"`
	StoreConfig `toml:"storeConfig"`
	MysqlConfig `toml:"mysqlConfig"`
	MongoConfig `toml:"mongoConfig"`
	KafkaConfig `toml:"kafkaConfig"`
	AIConfig    `toml:"aiConfig"`
	LogConfig   `toml:"logConfig"`
	RedisConfig `toml:"redisConfig"`
}

var config *Config

// Default 未提供配置文件时使用的默认值
func Default() *Config {
	return &Config{
		MainConfig: MainConfig{
			AppName: "RoastMe",
			Host:    "0.0.0.0",
			Port:    8001,
		},
		StoreConfig: StoreConfig{Driver: "mongo"},
		MongoConfig: MongoConfig{
			URI:            "mongodb://localhost:27017",
			DatabaseName:   "roastme",
			TimeoutSeconds: 10,
		},
		KafkaConfig: KafkaConfig{
			ClientID:   "roastme",
			RoastTopic: "roast.created",
		},
		AIConfig: AIConfig{
			ChatModel: AIChatModelConfig{
				Provider: "openai",
				Model:    "gpt-4",
			},
		},
		LogConfig:   LogConfig{Level: "info"},
		RedisConfig: RedisConfig{CacheTTLSeconds: 3600},
	}
}

// LoadConfig 从 TOML 文件加载配置，文件缺失时保留默认值，之后应用环境变量覆盖
func LoadConfig(path string) (*Config, error) {
	conf := Default()
	if strings.TrimSpace(path) == "" {
		path = defaultConfigPath
	}

	var loadErr error
	if _, err := toml.DecodeFile(path, conf); err != nil {
		if !os.IsNotExist(err) {
			loadErr = err
		}
	}
	applyEnv(conf)
	return conf, loadErr
}

// applyEnv 兼容 MONGO_URL / DB_NAME / OPENAI_API_KEY 等部署环境变量
func applyEnv(conf *Config) {
	if v := strings.TrimSpace(os.Getenv("MONGO_URL")); v != "" {
		conf.MongoConfig.URI = v
	}
	if v := strings.TrimSpace(os.Getenv("DB_NAME")); v != "" {
		conf.MongoConfig.DatabaseName = v
		conf.MysqlConfig.DatabaseName = v
	}
	if v := strings.TrimSpace(os.Getenv("STORE_DRIVER")); v != "" {
		conf.StoreConfig.Driver = v
	}
	if v := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); v != "" && conf.AIConfig.ChatModel.APIKey == "" {
		conf.AIConfig.ChatModel.APIKey = v
	}
}

func GetConfig() *Config {
	if config == nil {
		c, err := LoadConfig(os.Getenv("ROASTME_CONFIG"))
		if err != nil {
			log.Printf("加载配置文件失败: %v, 使用默认设置", err)
		}
		config = c
	}
	return config
}
