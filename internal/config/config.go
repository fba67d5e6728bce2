package config

import "github.com/spf13/viper"

type Config struct {
	App struct {
		Env      string
		Timezone string
	} `mapstructure:"app"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	Postgres struct {
		DSN string
	} `mapstructure:"postgres"`

	Auth struct {
		JWTSecret     string `mapstructure:"jwt_secret"`
		TokenTTLHours int    `mapstructure:"token_ttl_hours"`
	} `mapstructure:"auth"`

	Catalog struct {
		Path string
	} `mapstructure:"catalog"`

	Reorder struct {
		AttentionFactor float64 `mapstructure:"attention_factor"`
		TargetFactor    float64 `mapstructure:"target_factor"`
	} `mapstructure:"reorder"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`
}

func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("WORKSHOP")
	v.AutomaticEnv()

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("catalog.path", "config/factory.yaml")
	v.SetDefault("auth.token_ttl_hours", 24)
	v.SetDefault("reorder.attention_factor", 1.5)
	v.SetDefault("reorder.target_factor", 2.0)

	var c Config
	if err := v.ReadInConfig(); err != nil {
		return c, err
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}
