package auth

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"openstack-instance-explorer/internal/api"
)

type cloudsFile struct {
	Clouds map[string]cloudEntry `yaml:"clouds"`
}

type cloudEntry struct {
	RegionName string    `yaml:"region_name"`
	Auth       cloudAuth `yaml:"auth"`
}

type cloudAuth struct {
	AuthURL           string `yaml:"auth_url"`
	Username          string `yaml:"username"`
	Password          string `yaml:"password"`
	ProjectName       string `yaml:"project_name"`
	UserDomainName    string `yaml:"user_domain_name"`
	ProjectDomainName string `yaml:"project_domain_name"`
}

// cloudsPaths lists clouds.yaml candidates in lookup order.
func cloudsPaths(getenv func(string) string) []string {
	var paths []string
	if explicit := getenv(EnvClientConfigFile); explicit != "" {
		paths = append(paths, explicit)
	}
	paths = append(paths, "clouds.yaml")
	if home := getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config", "openstack", "clouds.yaml"))
	}
	return append(paths, "/etc/openstack/clouds.yaml")
}

func loadCloud(name string, getenv func(string) string) (Config, error) {
	for _, path := range cloudsPaths(getenv) {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, &api.Error{Kind: api.KindConfig, Op: fmt.Sprintf("failed to read %s", path), Err: err}
		}

		var file cloudsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return Config{}, &api.Error{Kind: api.KindConfig, Op: fmt.Sprintf("failed to parse %s", path), Err: err}
		}

		entry, ok := file.Clouds[name]
		if !ok {
			return Config{}, &api.Error{Kind: api.KindConfig, Op: fmt.Sprintf("cloud %q not found in %s", name, path)}
		}

		return Config{
			AuthURL:           entry.Auth.AuthURL,
			ProjectName:       entry.Auth.ProjectName,
			Username:          entry.Auth.Username,
			Password:          entry.Auth.Password,
			UserDomainName:    entry.Auth.UserDomainName,
			ProjectDomainName: entry.Auth.ProjectDomainName,
			Region:            entry.RegionName,
		}, nil
	}

	return Config{}, &api.Error{Kind: api.KindConfig, Op: fmt.Sprintf("%s=%s is set but no clouds.yaml was found", EnvCloud, name)}
}
