package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v2"

	"github.com/Nithin0620/DynoForm/pkg/airtable"
	"github.com/Nithin0620/DynoForm/pkg/apihelpers"
	"github.com/Nithin0620/DynoForm/pkg/db"
	"github.com/Nithin0620/DynoForm/pkg/forms"
	"github.com/Nithin0620/DynoForm/pkg/utils"

	formsDB "github.com/Nithin0620/DynoForm/pkg/db/forms"
	userDB "github.com/Nithin0620/DynoForm/pkg/db/users"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_FORMS_DB_USERNAME = "FORMS_DB_USERNAME"
	ENV_FORMS_DB_PASSWORD = "FORMS_DB_PASSWORD"
	ENV_USER_DB_USERNAME  = "USER_DB_USERNAME"
	ENV_USER_DB_PASSWORD  = "USER_DB_PASSWORD"

	ENV_USER_JWT_SIGN_KEY      = "USER_JWT_SIGN_KEY"
	ENV_AIRTABLE_CLIENT_SECRET = "AIRTABLE_CLIENT_SECRET"
)

type FormApiConfig struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// Gin configs
	GinConfig struct {
		DebugMode    bool     `json:"debug_mode" yaml:"debug_mode"`
		AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
		Port         string   `json:"port" yaml:"port"`

		// Mutual TLS configs
		MTLS struct {
			Use              bool                        `json:"use" yaml:"use"`
			CertificatePaths apihelpers.CertificatePaths `json:"certificate_paths" yaml:"certificate_paths"`
		} `json:"mtls" yaml:"mtls"`
	} `json:"gin_config" yaml:"gin_config"`

	UserJWTConfig struct {
		SignKey   string        `json:"sign_key" yaml:"sign_key"`
		ExpiresIn time.Duration `json:"expires_in" yaml:"expires_in"`
	} `json:"user_jwt_config" yaml:"user_jwt_config"`

	// DB configs
	DBConfigs struct {
		FormsDB db.DBConfigYaml `json:"forms_db" yaml:"forms_db"`
		UserDB  db.DBConfigYaml `json:"user_db" yaml:"user_db"`
	} `json:"db_configs" yaml:"db_configs"`

	// Airtable configs
	AirtableConfigs struct {
		OAuth  airtable.OAuthConfig  `json:"oauth" yaml:"oauth"`
		Client airtable.ClientConfig `json:"client" yaml:"client"`
	} `json:"airtable_configs" yaml:"airtable_configs"`
}

var (
	formsDBService *formsDB.FormsDBService
	userDBService  *userDB.UserDBService
)

func init() {
	// Read config from file
	yamlFile, err := os.ReadFile(os.Getenv(ENV_CONFIG_FILE_PATH))
	if err != nil {
		panic(err)
	}

	err = yaml.UnmarshalStrict(yamlFile, &conf)
	if err != nil {
		panic(err)
	}

	// Init logger:
	utils.InitLogger(
		conf.Logging.LogLevel,
		conf.Logging.IncludeSrc,
		conf.Logging.LogToFile,
		conf.Logging.Filename,
		conf.Logging.MaxSize,
		conf.Logging.MaxAge,
		conf.Logging.MaxBackups,
		conf.Logging.CompressOldLogs,
		conf.Logging.IncludeBuildInfo,
	)

	// Override secrets from environment variables
	secretsOverride()

	// Init DBs
	initDBs()

	if !conf.GinConfig.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	initFormsService()
}

func secretsOverride() {
	if dbUsername := os.Getenv(ENV_FORMS_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.FormsDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_FORMS_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.FormsDB.Password = dbPassword
	}

	if dbUsername := os.Getenv(ENV_USER_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.UserDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_USER_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.UserDB.Password = dbPassword
	}

	if signKey := os.Getenv(ENV_USER_JWT_SIGN_KEY); signKey != "" {
		conf.UserJWTConfig.SignKey = signKey
	}

	if clientSecret := os.Getenv(ENV_AIRTABLE_CLIENT_SECRET); clientSecret != "" {
		conf.AirtableConfigs.OAuth.ClientSecret = clientSecret
	}
}

func initFormsService() {
	forms.Init(formsDBService)
}

func initDBs() {
	var err error
	formsDBService, err = formsDB.NewFormsDBService(db.DBConfigFromYamlObj(conf.DBConfigs.FormsDB))
	if err != nil {
		panic(err)
	}

	userDBService, err = userDB.NewUserDBService(db.DBConfigFromYamlObj(conf.DBConfigs.UserDB))
	if err != nil {
		panic(err)
	}
}
