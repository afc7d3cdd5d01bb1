package initial

import (
	"strings"

	"RoastMe/internal/config"
	"RoastMe/internal/modules/roast/infrastructure/mq"
	"RoastMe/internal/modules/roast/infrastructure/mq/kafka"
	"RoastMe/pkg/zlog"

	"go.uber.org/zap"
)

// InitKafka 未配置 broker 或初始化失败时返回 nil，事件发布随之关闭
func InitKafka(conf *config.Config) mq.Publisher {
	kc := conf.KafkaConfig
	if len(kc.Brokers) == 0 {
		zlog.Info("kafka not configured, roast events disabled")
		return nil
	}

	topic := strings.TrimSpace(kc.RoastTopic)
	admin := kafka.TopicAdminConfig{Brokers: kc.Brokers, ClientID: kc.ClientID}
	if err := kafka.EnsureTopic(admin, topic, kc.Partitions, kc.Replication); err != nil {
		zlog.Warn("ensure kafka topic failed", zap.String("topic", topic), zap.Error(err))
	}

	pub, err := kafka.NewSaramaPublisher(kafka.PublisherConfig{Brokers: kc.Brokers, ClientID: kc.ClientID})
	if err != nil {
		zlog.Warn("kafka publisher init failed, roast events disabled", zap.Error(err))
		return nil
	}
	zlog.Info("kafka publisher ready", zap.Strings("brokers", kc.Brokers), zap.String("topic", topic))
	return pub
}
