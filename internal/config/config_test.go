package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	conf, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, 8001, conf.MainConfig.Port)
	assert.Equal(t, "mongo", conf.StoreConfig.Driver)
	assert.Equal(t, "roast.created", conf.KafkaConfig.RoastTopic)
	assert.Equal(t, 3600, conf.RedisConfig.CacheTTLSeconds)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
[mainConfig]
appName = "roast"
host = "127.0.0.1"
port = 9000
sslRedirect = true

[storeConfig]
driver = "mysql"

[mysqlConfig]
host = "db"
port = 3306
user = "root"
password = "secret"
databaseName = "roasts"

[kafkaConfig]
brokers = ["k1:9092", "k2:9092"]
roastTopic = "roasts"

[aiConfig.chatModel]
provider = "ark"
model = "doubao-pro"
timeoutSeconds = 30
`)

	conf, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "roast", conf.MainConfig.AppName)
	assert.Equal(t, 9000, conf.MainConfig.Port)
	assert.True(t, conf.MainConfig.SSLRedirect)
	assert.Equal(t, "mysql", conf.StoreConfig.Driver)
	assert.Equal(t, "roasts", conf.MysqlConfig.DatabaseName)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, conf.KafkaConfig.Brokers)
	assert.Equal(t, "ark", conf.AIConfig.ChatModel.Provider)
	assert.Equal(t, 30, conf.AIConfig.ChatModel.TimeoutSeconds)
	// 未出现的段保持默认值
	assert.Equal(t, "roastme", conf.MongoConfig.DatabaseName)
}

func TestLoadConfigMalformedFile(t *testing.T) {
	path := writeConfig(t, "[mainConfig\nport = ")

	conf, err := LoadConfig(path)
	assert.Error(t, err)
	require.NotNil(t, conf)
	assert.Equal(t, 8001, conf.MainConfig.Port)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://mongo:27017")
	t.Setenv("DB_NAME", "roast_db")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("STORE_DRIVER", "mysql")

	conf, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, "mongodb://mongo:27017", conf.MongoConfig.URI)
	assert.Equal(t, "roast_db", conf.MongoConfig.DatabaseName)
	assert.Equal(t, "roast_db", conf.MysqlConfig.DatabaseName)
	assert.Equal(t, "sk-test", conf.AIConfig.ChatModel.APIKey)
	assert.Equal(t, "mysql", conf.StoreConfig.Driver)
}
