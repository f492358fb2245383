package registrations

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/loyalty-lab/pkg/pagination"
	"github.com/JaimeStill/loyalty-lab/pkg/repository"
	"github.com/google/uuid"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "registrations"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Registration], error) {
	page.Normalize(r.pagination)

	countSQL, pageSQL, args := listQueries(page)

	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count registrations: %w", err)
	}

	items, err := repository.QueryMany(ctx, r.db, pageSQL, args, scanRegistration)
	if err != nil {
		return nil, fmt.Errorf("query registrations: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Registration, error) {
	q, args := findQuery(id)

	reg, err := repository.QueryOne(ctx, r.db, q, args, scanRegistration)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &reg, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Registration, error) {
	q := `
		INSERT INTO registrations(phone_number, name, birthday, email)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + returning

	reg, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Registration, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			cmd.PhoneNumber, cmd.Name, cmd.Birthday, cmd.Email,
		}, scanRegistration)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("registration created", "id", reg.ID)
	return &reg, nil
}
