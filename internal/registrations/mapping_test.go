package registrations

import (
	"strings"
	"testing"

	"github.com/JaimeStill/loyalty-lab/pkg/pagination"
	"github.com/google/uuid"
)

func TestListQueries(t *testing.T) {
	search := "ann"

	tests := []struct {
		name      string
		page      pagination.PageRequest
		where     string
		order     string
		args      int
		limitTail string
	}{
		{
			name:      "newest without search",
			page:      pagination.PageRequest{Page: 1, PageSize: 20, Newest: true},
			order:     "ORDER BY r.created_at DESC, r.id",
			limitTail: "LIMIT 20 OFFSET 0",
		},
		{
			name:      "oldest with search",
			page:      pagination.PageRequest{Page: 3, PageSize: 10, Search: &search},
			where:     "WHERE (r.name ILIKE $1 OR r.email ILIKE $1 OR r.phone_number ILIKE $1)",
			order:     "ORDER BY r.created_at ASC, r.id",
			args:      1,
			limitTail: "LIMIT 10 OFFSET 20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			countSQL, pageSQL, args := listQueries(tt.page)

			if !strings.HasPrefix(countSQL, "SELECT COUNT(*) FROM public.registrations r") {
				t.Errorf("count sql = %q", countSQL)
			}
			if tt.where != "" {
				if !strings.Contains(countSQL, tt.where) || !strings.Contains(pageSQL, tt.where) {
					t.Errorf("missing %q in\n%s\n%s", tt.where, countSQL, pageSQL)
				}
			} else if strings.Contains(pageSQL, "WHERE") {
				t.Errorf("unexpected WHERE in %q", pageSQL)
			}
			if !strings.Contains(pageSQL, tt.order) {
				t.Errorf("page sql %q missing %q", pageSQL, tt.order)
			}
			if !strings.HasSuffix(pageSQL, tt.limitTail) {
				t.Errorf("page sql %q missing %q", pageSQL, tt.limitTail)
			}
			if len(args) != tt.args {
				t.Errorf("args = %v, want %d", args, tt.args)
			}
			if tt.args == 1 && args[0] != "%ann%" {
				t.Errorf("search arg = %v", args[0])
			}
		})
	}
}

func TestFindQuery(t *testing.T) {
	id := uuid.New()
	sql, args := findQuery(id)

	want := "SELECT r.id, r.phone_number, r.name, r.birthday, r.email, r.created_at FROM public.registrations r WHERE r.id = $1"
	if sql != want {
		t.Errorf("sql = %q", sql)
	}
	if len(args) != 1 || args[0] != id {
		t.Errorf("args = %v", args)
	}
}

type fakeRow struct {
	values []any
}

func (f fakeRow) Scan(dest ...any) error {
	for i, d := range dest {
		switch p := d.(type) {
		case *uuid.UUID:
			*p = f.values[i].(uuid.UUID)
		case *string:
			*p = f.values[i].(string)
		}
	}
	return nil
}

func TestScanRegistration(t *testing.T) {
	id := uuid.New()
	row := fakeRow{values: []any{id, "5551234", "Ann", "1990-01-02", "ann@example.com", nil}}

	reg, err := scanRegistration(row)
	if err != nil {
		t.Fatalf("scanRegistration() error = %v", err)
	}
	if reg.ID != id || reg.PhoneNumber != "5551234" || reg.Name != "Ann" ||
		reg.Birthday != "1990-01-02" || reg.Email != "ann@example.com" {
		t.Errorf("reg = %+v", reg)
	}
}
