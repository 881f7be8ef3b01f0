package envutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFileType = errors.New("env file doesn't have a known file suffix")

// LoadEnvFile reads key/value settings from a file. The format follows the
// suffix: .env is dotenv syntax, .json and .yml/.yaml hold an "env" object.
func LoadEnvFile(path string) (map[string]string, error) {
	name := strings.ToLower(filepath.Base(path))

	switch {
	case strings.HasSuffix(name, ".env"):
		return godotenv.Read(path)
	case strings.HasSuffix(name, ".json"):
		return loadJSONFile(path)
	case strings.HasSuffix(name, ".yml"), strings.HasSuffix(name, ".yaml"):
		return loadYAMLFile(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFileType, filepath.Base(path))
	}
}

type envFile struct {
	Env map[string]string `json:"env" yaml:"env"`
}

func loadJSONFile(path string) (map[string]string, error) {
	bts, err := os.ReadFile(path) // #nosec G304 -- path is the intended file to load
	if err != nil {
		return nil, err
	}

	var out envFile

	if err := json.Unmarshal(bts, &out); err != nil {
		return nil, err
	}

	return out.Env, nil
}

func loadYAMLFile(path string) (map[string]string, error) {
	bts, err := os.ReadFile(path) // #nosec G304 -- path is the intended file to load
	if err != nil {
		return nil, err
	}

	var out envFile

	if err := yaml.Unmarshal(bts, &out); err != nil {
		return nil, err
	}

	return out.Env, nil
}
