package config

import (
	"fmt"
	"net/url"
	"strings"
)

// URLPrefix базовый адрес, к которому дописывается короткий код
type URLPrefix string

func (p URLPrefix) String() string {
	return string(p)
}

func (p *URLPrefix) Set(value string) error {
	u, err := url.Parse(value)
	if err != nil || !strings.HasPrefix(u.Scheme, "http") || u.Host == "" {
		return fmt.Errorf("invalid URL prefix format: %s", value)
	}

	*p = URLPrefix(strings.TrimSuffix(value, "/"))

	return nil
}

func (p *URLPrefix) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}
