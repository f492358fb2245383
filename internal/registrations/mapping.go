package registrations

import (
	"github.com/JaimeStill/loyalty-lab/pkg/pagination"
	"github.com/JaimeStill/loyalty-lab/pkg/query"
	"github.com/JaimeStill/loyalty-lab/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "registrations", "r").
	Project("id", "ID").
	Project("phone_number", "PhoneNumber").
	Project("name", "Name").
	Project("birthday", "Birthday").
	Project("email", "Email").
	Project("created_at", "CreatedAt")

// returning lists the same columns unqualified for INSERT ... RETURNING.
const returning = "id, phone_number, name, birthday, email, created_at"

func scanRegistration(s repository.Scanner) (Registration, error) {
	var r Registration
	err := s.Scan(
		&r.ID, &r.PhoneNumber, &r.Name,
		&r.Birthday, &r.Email, &r.CreatedAt,
	)
	return r, err
}

// listQueries builds the count and page statements for a page request.
// Both statements share args.
func listQueries(page pagination.PageRequest) (countSQL, pageSQL string, args []any) {
	b := query.NewBuilder(projection, "CreatedAt").
		WhereSearch(page.Search, "Name", "Email", "PhoneNumber").
		OrderBy("CreatedAt", page.Newest).
		ThenBy("ID")

	countSQL, args = b.BuildCount()
	pageSQL, _ = b.BuildPage(page.PageSize, page.Offset())
	return countSQL, pageSQL, args
}

func findQuery(id any) (string, []any) {
	return query.NewBuilder(projection, "CreatedAt").BuildSingle("ID", id)
}
