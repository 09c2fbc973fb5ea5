package apihandlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Nithin0620/DynoForm/pkg/airtable"
	formsDB "github.com/Nithin0620/DynoForm/pkg/db/forms"
	userDB "github.com/Nithin0620/DynoForm/pkg/db/users"
)

func HealthCheckHandle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type HttpEndpoints struct {
	formsDBConn          *formsDB.FormsDBService
	userDBConn           *userDB.UserDBService
	tokenSignKey         string
	tokenExpiresIn       time.Duration
	airtableOAuth        airtable.OAuthConfig
	airtableClientConfig airtable.ClientConfig
}

func NewHTTPHandler(
	tokenSignKey string,
	tokenExpiresIn time.Duration,
	formsDBConn *formsDB.FormsDBService,
	userDBConn *userDB.UserDBService,
	airtableOAuth airtable.OAuthConfig,
	airtableClientConfig airtable.ClientConfig,
) *HttpEndpoints {
	return &HttpEndpoints{
		tokenSignKey:         tokenSignKey,
		tokenExpiresIn:       tokenExpiresIn,
		formsDBConn:          formsDBConn,
		userDBConn:           userDBConn,
		airtableOAuth:        airtableOAuth,
		airtableClientConfig: airtableClientConfig,
	}
}
