package forms

import (
	formsDB "github.com/Nithin0620/DynoForm/pkg/db/forms"
)

var (
	formsDBService *formsDB.FormsDBService
)

func Init(
	formsDB *formsDB.FormsDBService,
) {
	formsDBService = formsDB
}
