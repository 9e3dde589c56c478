package config

import "fmt"

// HTTPConfig содержит настройки HTTP сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"NOTEWISE_HTTP_HOST" env-default:"0.0.0.0"`
	Port int    `yaml:"port" env:"NOTEWISE_HTTP_PORT" env-default:"8080"`
}

// Address возвращает адрес, на котором слушает HTTP сервер.
func (h *HTTPConfig) Address() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}
