package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder[T any] struct {
	configs   []*T
	err       error
	envPrefix string
	parseFile func(path string) (*T, error)
	dotEnv    []string
}

func newConfigBuilder[T any](envPrefix string, parseFile func(string) (*T, error)) *configBuilder[T] {
	return &configBuilder[T]{
		configs:   make([]*T, 0, 4),
		envPrefix: envPrefix,
		parseFile: parseFile,
		dotEnv:    []string{".env"},
	}
}

func (b *configBuilder[T]) build(validate func(*T) error) (*T, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(T)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if validate == nil {
		return config, nil
	}
	if err := validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder[T]) withDotEnv() *configBuilder[T] {
	if err := loadDotEnv(b.dotEnv...); err != nil {
		b.err = errors.Join(b.err, err)
	}
	return b
}

func (b *configBuilder[T]) withEnv() *configBuilder[T] {
	envCfg := new(T)
	if err := parseEnv(envCfg, b.envPrefix); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder[T]) withFlags(parse func() (*T, error)) *configBuilder[T] {
	flags, err := parse()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

// withFile merges the config file named by the last source that set one.
func (b *configBuilder[T]) withFile(pathOf func(*T) string) *configBuilder[T] {
	var path string
	for _, cfg := range b.configs {
		if p := pathOf(cfg); p != "" {
			path = p
		}
	}
	if path == "" {
		path = pathOf(new(T))
	}
	if path == "" {
		return b
	}

	fileCfg, err := b.parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, fileCfg)

	return b
}
