package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type serverFile struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration"`
		AdminEmail    string   `json:"admin_email" yaml:"admin_email"`
		AdminPassword string   `json:"admin_password" yaml:"admin_password"`
	} `json:"app" yaml:"app"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn" yaml:"dsn"`
			MaxOpenConns int    `json:"max_open_conns" yaml:"max_open_conns"`
		} `json:"db" yaml:"db"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server" yaml:"server"`

	Log struct {
		Level string `json:"level" yaml:"level"`
	} `json:"log" yaml:"log"`
}

type clientFile struct {
	Adapter struct {
		BaseURL        string   `json:"base_url" yaml:"base_url"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter" yaml:"adapter"`

	Credentials struct {
		Email    string `json:"email" yaml:"email"`
		Password string `json:"password" yaml:"password"`
	} `json:"credentials" yaml:"credentials"`

	Endpoints struct {
		Login            string `json:"login" yaml:"login"`
		DailyObservation string `json:"daily_observation" yaml:"daily_observation"`
		DutyReport       string `json:"duty_report" yaml:"duty_report"`
		Campus           string `json:"campus" yaml:"campus"`
		Classes          string `json:"classes" yaml:"classes"`
		Teachers         string `json:"teachers" yaml:"teachers"`
		Leaders          string `json:"leaders" yaml:"leaders"`
	} `json:"endpoints" yaml:"endpoints"`

	Storage struct {
		TokenDSN string `json:"token_dsn" yaml:"token_dsn"`
	} `json:"storage" yaml:"storage"`

	Log struct {
		Level string `json:"level" yaml:"level"`
	} `json:"log" yaml:"log"`
}

func serverFileConfig(path string) (*StructuredConfig, error) {
	var f serverFile
	if err := decodeFile(path, &f); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  f.App.TokenSignKey,
			TokenIssuer:   f.App.TokenIssuer,
			TokenDuration: time.Duration(f.App.TokenDuration),
			AdminEmail:    f.App.AdminEmail,
			AdminPassword: f.App.AdminPassword,
		},
		Storage: Storage{
			DB: DB{
				DSN:          f.Storage.DB.DSN,
				MaxOpenConns: f.Storage.DB.MaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:     f.Server.HTTPAddress,
			RequestTimeout:  time.Duration(f.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(f.Server.ShutdownTimeout),
		},
		Log: Log{Level: f.Log.Level},
	}, nil
}

func clientFileConfig(path string) (*ClientConfig, error) {
	var f clientFile
	if err := decodeFile(path, &f); err != nil {
		return nil, err
	}

	return &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        f.Adapter.BaseURL,
			RequestTimeout: time.Duration(f.Adapter.RequestTimeout),
		},
		Credentials: ClientCredentials{
			Email:    f.Credentials.Email,
			Password: f.Credentials.Password,
		},
		Endpoints: Endpoints(f.Endpoints),
		Storage:   ClientStorage{TokenDSN: f.Storage.TokenDSN},
		Log:       Log{Level: f.Log.Level},
	}, nil
}

// decodeFile decodes a YAML file when the extension is .yaml or .yml and a
// JSON file otherwise.
func decodeFile(path string, v any) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error reading a config file: %w", err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.NewDecoder(file).Decode(v)
		if err == io.EOF {
			err = nil
		}
		if err != nil {
			return fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.NewDecoder(file).Decode(v); err != nil {
			return fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" as well as from integer nanoseconds.
type Duration time.Duration

// UnmarshalJSON implements [json.Unmarshaler].
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

// MarshalJSON implements [json.Marshaler].
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!int" {
		var n int64
		if err := node.Decode(&n); err != nil {
			return err
		}
		*d = Duration(time.Duration(n))
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
