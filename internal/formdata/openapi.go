package formdata

import "github.com/JaimeStill/loyalty-lab/pkg/openapi"

var findOp = &openapi.Operation{
	Summary:     "Current session form state",
	Description: "Reads the form state bound to the session cookie without creating a session.",
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseJSON("Form state", "FormData"),
		404: openapi.ResponseRef("NotFound"),
	},
}

var schemas = map[string]*openapi.Schema{
	"RegistrationData": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"name":     {Type: "string"},
			"birthday": {Type: "string"},
			"email":    {Type: "string"},
		},
	},
	"FormData": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"phone_number":      {Type: "string"},
			"registration_data": openapi.SchemaRef("RegistrationData"),
		},
	},
}
