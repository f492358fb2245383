package registrations

import "github.com/JaimeStill/loyalty-lab/pkg/openapi"

type spec struct {
	List *openapi.Operation
	Find *openapi.Operation
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List registrations",
		Description: "Returns submitted registrations, newest first unless order=oldest.",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number (1-indexed)", false),
			openapi.QueryParam("page_size", "integer", "Results per page", false),
			openapi.QueryParam("search", "string", "Matches name, email, or phone number", false),
			openapi.QueryParam("order", "string", "newest (default) or oldest", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Paginated list of registrations", "RegistrationPageResult"),
		},
	},
	Find: &openapi.Operation{
		Summary: "Find registration by ID",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Registration UUID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Registration", "Registration"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Registration": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":           {Type: "string", Format: "uuid"},
				"phone_number": {Type: "string"},
				"name":         {Type: "string"},
				"birthday":     {Type: "string"},
				"email":        {Type: "string"},
				"created_at":   {Type: "string", Format: "date-time"},
			},
		},
		"RegistrationPageResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":        {Type: "array", Items: openapi.SchemaRef("Registration")},
				"total":       {Type: "integer"},
				"page":        {Type: "integer"},
				"page_size":   {Type: "integer"},
				"total_pages": {Type: "integer"},
			},
		},
	}
}
