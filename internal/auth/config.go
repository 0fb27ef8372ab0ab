package auth

// Environment variable names read by ConfigFromEnv.
const (
	EnvAuthURL           = "OS_AUTH_URL"
	EnvProjectName       = "OS_PROJECT_NAME"
	EnvUsername          = "OS_USERNAME"
	EnvPassword          = "OS_PASSWORD"
	EnvUserDomainName    = "OS_USER_DOMAIN_NAME"
	EnvProjectDomainName = "OS_PROJECT_DOMAIN_NAME"
	EnvRegionName        = "OS_REGION_NAME"
	EnvCloud             = "OS_CLOUD"
	EnvClientConfigFile  = "OS_CLIENT_CONFIG_FILE"
)

// Config holds the credentials used to open a session. Values are passed
// through to the identity service as-is.
type Config struct {
	AuthURL           string
	ProjectName       string
	Username          string
	Password          string
	UserDomainName    string
	ProjectDomainName string
	Region            string
}

// ConfigFromEnv builds a Config from OS_* variables using getenv.
// When OS_CLOUD is set, the named clouds.yaml entry supplies defaults and any
// non-empty variable overrides it.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	var cfg Config

	if cloud := getenv(EnvCloud); cloud != "" {
		fromFile, err := loadCloud(cloud, getenv)
		if err != nil {
			return Config{}, err
		}
		cfg = fromFile
	}

	override(&cfg.AuthURL, getenv(EnvAuthURL))
	override(&cfg.ProjectName, getenv(EnvProjectName))
	override(&cfg.Username, getenv(EnvUsername))
	override(&cfg.Password, getenv(EnvPassword))
	override(&cfg.UserDomainName, getenv(EnvUserDomainName))
	override(&cfg.ProjectDomainName, getenv(EnvProjectDomainName))
	override(&cfg.Region, getenv(EnvRegionName))

	return cfg, nil
}

func override(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
