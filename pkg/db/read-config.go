package db

import (
	"fmt"
	"log/slog"
)

// DBConfigFromYamlObj prepares the connection config from its yaml
// representation. Credentials are expected to be present at this point
// (either from the file or from the env override step).
func DBConfigFromYamlObj(yamlObj DBConfigYaml) DBConfig {
	if yamlObj.ConnectionStr == "" || yamlObj.Username == "" || yamlObj.Password == "" {
		slog.Error("couldn't read DB credentials")
		panic("couldn't read DB credentials")
	}

	URI := fmt.Sprintf(`mongodb%s://%s:%s@%s`, yamlObj.ConnectionPrefix, yamlObj.Username, yamlObj.Password, yamlObj.ConnectionStr)

	return DBConfig{
		URI:             URI,
		Timeout:         yamlObj.Timeout,
		IdleConnTimeout: yamlObj.IdleConnTimeout,
		MaxPoolSize:     uint64(yamlObj.MaxPoolSize),
		NoCursorTimeout: yamlObj.UseNoCursorTimeout,
		DBNamePrefix:    yamlObj.DBNamePrefix,
	}
}
