package postgres

import (
	"context"
	"fmt"
	"plotmarket/pkg/domain"
	"plotmarket/pkg/storage"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	usersTable = "users"
)

func (p *PgSQL) StoreUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var row PgUser
	row.FromDomain(user)

	var result PgUser
	if _, err := p.Builder.Insert(usersTable).
		Rows(row).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store user into pg: %w", translateError(err))
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return p.userWhere(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

// UserByEmail matches on lower(email), which is what the unique index covers.
func (p *PgSQL) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return p.userWhere(ctx, goqu.L("lower(email)").Eq(strings.ToLower(email)))
}

func (p *PgSQL) userWhere(ctx context.Context, where goqu.Expression) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UsersByIDs(ctx context.Context, ids []domain.UserID) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	vals := make([]interface{}, len(ids))
	for i, id := range ids {
		vals[i] = uuid.UUID(id)
	}

	var rows []PgUser
	if err := p.Builder.From(usersTable).
		Where(goqu.I("id").In(vals...)).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch users by ids from pg: %w", err)
	}

	return pgUsersToDomain(rows), nil
}

func (p *PgSQL) Users(ctx context.Context, offset, limit uint) ([]domain.User, error) {
	var rows []PgUser
	if err := p.Builder.From(usersTable).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Offset(offset).
		Limit(p.Paging.Limit(limit)).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch users from pg: %w", err)
	}

	return pgUsersToDomain(rows), nil
}

// UpdateUserProfile writes the non-nil fields of updates. An empty string
// clears a field.
func (p *PgSQL) UpdateUserProfile(ctx context.Context,
	id domain.UserID,
	updates storage.UserProfileUpdates) (*domain.User, error) {
	rec := goqu.Record{}
	if updates.FirstName != nil {
		rec["first_name"] = nullString(*updates.FirstName)
	}
	if updates.LastName != nil {
		rec["last_name"] = nullString(*updates.LastName)
	}
	if updates.PhoneNumber != nil {
		rec["phone_number"] = nullString(*updates.PhoneNumber)
	}
	if len(rec) == 0 {
		return p.UserByID(ctx, id)
	}

	var row PgUser
	found, err := p.Builder.Update(usersTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update user in pg: %w", translateError(err))
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UserExistsWithRole(ctx context.Context, role domain.Role) (bool, error) {
	var id uuid.UUID
	found, err := p.Builder.From(usersTable).
		Select("id").
		Where(goqu.I("role").Eq(string(role))).
		Limit(1).
		Executor().ScanValContext(ctx, &id)
	if err != nil {
		return false, fmt.Errorf("could not check user role in pg: %w", err)
	}

	return found, nil
}
