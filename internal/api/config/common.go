package config

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Mongo    MongoConfig    `mapstructure:"mongo"`
	Redis    RedisConfig    `mapstructure:"redis"`
	MinIO    MinIOConfig    `mapstructure:"minio"`
	Logstash LogstashConfig `mapstructure:"logstash"`
	Client   ClientConfig   `mapstructure:"client"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port" validate:"required"`
}

// MongoConfig Mongo配置
type MongoConfig struct {
	URL      string `mapstructure:"url" validate:"required"`
	Database string `mapstructure:"database" validate:"required"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr" validate:"required"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// MinIOConfig MinIO配置，照片文件所在的对象存储
type MinIOConfig struct {
	Endpoint    string `mapstructure:"endpoint" validate:"required"`
	AccessKey   string `mapstructure:"access_key"`
	SecretKey   string `mapstructure:"secret_key"`
	ImageBucket string `mapstructure:"image_bucket" validate:"required"`
	UseSSL      bool   `mapstructure:"use_ssl"`
}

// LogstashConfig 远程日志上报配置，Address 为空则只写 stdout
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

// ClientConfig 浏览客户端配置
type ClientConfig struct {
	BaseURL string `mapstructure:"base_url"`
}
