package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	configName = "config"
	// configDirEnv points at the directory holding config.yaml, ahead of the built-in search path.
	configDirEnv = "PETVERSE_CONFIG_DIR"
)

// searchDirs lists where config.yaml is looked for, so both binaries and the
// package tests find it from their own working directory.
func searchDirs() []string {
	dirs := []string{".", "config", "../config", "../../config"}
	if dir := os.Getenv(configDirEnv); dir != "" {
		dirs = append([]string{dir}, dirs...)
	}

	return dirs
}

// LoadWithEnv reads <name>.yaml from the first directory that has it, then lets
// environment variables override any key: GATEWAY_KEYSECRET sets gateway.keySecret.
func LoadWithEnv[T any](name string, dirs ...string) (*T, error) {
	path, err := locate(name+".yaml", dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	fileKeys := k.Raw()
	envOpt := env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, fileKeys), value
		},
	}
	if err := k.Load(env.Provider(".", envOpt), nil); err != nil {
		return nil, errors.Wrap(err, "read environment overrides")
	}

	cfg := new(T)
	decoder := &mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		// env keys arrive lowercased when the yaml does not already name them
		MatchName: strings.EqualFold,
	}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{DecoderConfig: decoder}); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return cfg, nil
}

func locate(fileName string, dirs []string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "resolve working directory")
	}

	for _, dir := range dirs {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(wd, dir)
		}
		candidate := filepath.Join(dir, fileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", errors.Errorf("%s not found in %s", fileName, strings.Join(dirs, ", "))
}

// canonicalizeEnvKey maps an environment variable onto the key spelled in the
// yaml, segment by segment. Segments the yaml does not know stay lowercase.
func canonicalizeEnvKey(envKey string, known map[string]any) string {
	var path []string
	for _, segment := range strings.Split(envKey, "_") {
		if segment == "" {
			continue
		}
		key, children := matchKey(known, segment)
		path = append(path, key)
		known = children
	}

	return strings.Join(path, ".")
}

func matchKey(known map[string]any, segment string) (string, map[string]any) {
	want := foldKey(segment)
	for key, value := range known {
		if foldKey(key) == want {
			children, _ := value.(map[string]any)

			return key, children
		}
	}

	return strings.ToLower(segment), nil
}

// foldKey lowercases s and drops everything but letters and digits.
func foldKey(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}

// replicasFromEnv reads POSTGRES_REPLICAS_<n>_HOST, _PORT, _USERNAME and _PASSWORD
// for n = 0, 1, ... and stops at the first index without a host and a port.
func replicasFromEnv(lookup func(string) (string, bool)) []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig
	for i := 0; ; i++ {
		get := func(field string) string {
			value, _ := lookup("POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_" + field)

			return value
		}

		host, port := get("HOST"), get("PORT")
		if host == "" || port == "" {
			return replicas
		}
		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: get("USERNAME"),
			Password: get("PASSWORD"),
		})
	}
}
