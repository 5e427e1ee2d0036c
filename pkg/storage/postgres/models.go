package postgres

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"plotmarket/pkg/domain"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PgUser struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	FirstName      sql.NullString `db:"first_name"`
	LastName       sql.NullString `db:"last_name"`
	Email          string         `db:"email"`
	PhoneNumber    sql.NullString `db:"phone_number"`
	HashedPassword string         `db:"hashed_password"`
	Role           string         `db:"role"`
	IsActive       bool           `db:"is_active"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:           domain.UserID(p.ID),
		FirstName:    p.FirstName.String,
		LastName:     p.LastName.String,
		Email:        p.Email,
		PhoneNumber:  p.PhoneNumber.String,
		PasswordHash: p.HashedPassword,
		Role:         domain.Role(p.Role),
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
	}
}

func (p *PgUser) FromDomain(user domain.User) {
	*p = PgUser{
		ID:             uuid.UUID(user.ID),
		FirstName:      nullString(user.FirstName),
		LastName:       nullString(user.LastName),
		Email:          user.Email,
		PhoneNumber:    nullString(user.PhoneNumber),
		HashedPassword: user.PasswordHash,
		Role:           string(user.Role),
		IsActive:       user.IsActive,
		CreatedAt:      user.CreatedAt,
	}
}

func pgUsersToDomain(users []PgUser) []domain.User {
	out := make([]domain.User, 0, len(users))
	for i := range users {
		out = append(out, *users[i].ToDomain())
	}

	return out
}

// pgStringList stores a string list in a JSONB column. NULL scans as an
// empty list and a nil list is written as [].
type pgStringList []string

func (l pgStringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}

	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("could not marshal string list: %w", err)
	}

	return string(b), nil
}

func (l *pgStringList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = pgStringList{}

		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("could not scan %T into string list", src)
	}

	list := []string{}
	if err := json.Unmarshal(raw, &list); err != nil {
		return fmt.Errorf("could not unmarshal string list: %w", err)
	}
	*l = list

	return nil
}

type PgPlot struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	PlotNumber  sql.NullString  `db:"plot_number"`
	Title       string          `db:"title"`
	Description sql.NullString  `db:"description"`
	AreaSqm     decimal.Decimal `db:"area_sqm"`
	Price       decimal.Decimal `db:"price"`
	ImageURLs   pgStringList    `db:"image_urls"`
	UsageType   string          `db:"usage_type"`
	Status      string          `db:"status"`
	CouncilID   sql.NullInt64   `db:"council_id"`
	Boundary    sql.NullString  `db:"boundary"`

	UploadedByID uuid.NullUUID `db:"uploaded_by_id"`
	LockedByID   uuid.NullUUID `db:"locked_by_id"`
	LockedUntil  sql.NullTime  `db:"locked_until"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgPlot) ToDomain() *domain.Plot {
	imageURLs := []string(p.ImageURLs)
	if imageURLs == nil {
		imageURLs = []string{}
	}

	plot := &domain.Plot{
		ID:           domain.PlotID(p.ID),
		PlotNumber:   p.PlotNumber.String,
		Title:        p.Title,
		Description:  p.Description.String,
		AreaSqm:      p.AreaSqm,
		Price:        p.Price,
		ImageURLs:    imageURLs,
		UsageType:    p.UsageType,
		Status:       domain.PlotStatus(p.Status),
		UploadedByID: userIDPtr(p.UploadedByID),
		LockedByID:   userIDPtr(p.LockedByID),
		CreatedAt:    p.CreatedAt,
	}
	if p.CouncilID.Valid {
		id := p.CouncilID.Int64
		plot.CouncilID = &id
	}
	if p.Boundary.Valid {
		plot.Boundary = json.RawMessage(p.Boundary.String)
	}
	if p.LockedUntil.Valid {
		until := p.LockedUntil.Time
		plot.LockedUntil = &until
	}

	return plot
}

func (p *PgPlot) FromDomain(plot domain.Plot) {
	*p = PgPlot{
		ID:           uuid.UUID(plot.ID),
		PlotNumber:   nullString(plot.PlotNumber),
		Title:        plot.Title,
		Description:  nullString(plot.Description),
		AreaSqm:      plot.AreaSqm,
		Price:        plot.Price,
		ImageURLs:    pgStringList(plot.ImageURLs),
		UsageType:    plot.UsageType,
		Status:       string(plot.Status),
		Boundary:     nullString(string(plot.Boundary)),
		UploadedByID: nullUUID(plot.UploadedByID),
		LockedByID:   nullUUID(plot.LockedByID),
		CreatedAt:    plot.CreatedAt,
	}
	if plot.CouncilID != nil {
		p.CouncilID = sql.NullInt64{Int64: *plot.CouncilID, Valid: true}
	}
	if plot.LockedUntil != nil {
		p.LockedUntil = sql.NullTime{Time: *plot.LockedUntil, Valid: true}
	}
}

func pgPlotsToDomain(plots []PgPlot) []domain.Plot {
	out := make([]domain.Plot, 0, len(plots))
	for i := range plots {
		out = append(out, *plots[i].ToDomain())
	}

	return out
}

type PgOrder struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	UserID uuid.UUID `db:"user_id"`
	PlotID uuid.UUID `db:"plot_id"`
	Status string    `db:"order_status"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgOrder) ToDomain() *domain.Order {
	return &domain.Order{
		ID:        domain.OrderID(p.ID),
		UserID:    domain.UserID(p.UserID),
		PlotID:    domain.PlotID(p.PlotID),
		Status:    domain.OrderStatus(p.Status),
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgOrder) FromDomain(order domain.Order) {
	*p = PgOrder{
		ID:        uuid.UUID(order.ID),
		UserID:    uuid.UUID(order.UserID),
		PlotID:    uuid.UUID(order.PlotID),
		Status:    string(order.Status),
		CreatedAt: order.CreatedAt,
	}
}

func pgOrdersToDomain(orders []PgOrder) []domain.Order {
	out := make([]domain.Order, 0, len(orders))
	for i := range orders {
		out = append(out, *orders[i].ToDomain())
	}

	return out
}

// pgDistrict and pgCouncil are flattened join rows; the parent names come
// from the joined tables.
type pgDistrict struct {
	ID         int64  `db:"id"`
	Name       string `db:"name"`
	RegionID   int64  `db:"region_id"`
	RegionName string `db:"region_name"`
}

func (p *pgDistrict) ToDomain() domain.District {
	return domain.District{
		ID:       p.ID,
		Name:     p.Name,
		RegionID: p.RegionID,
		Region:   &domain.Region{ID: p.RegionID, Name: p.RegionName},
	}
}

type pgCouncil struct {
	ID           int64  `db:"id"`
	Name         string `db:"name"`
	DistrictID   int64  `db:"district_id"`
	DistrictName string `db:"district_name"`
	RegionID     int64  `db:"region_id"`
	RegionName   string `db:"region_name"`
}

func (p *pgCouncil) ToDomain() domain.Council {
	return domain.Council{
		ID:         p.ID,
		Name:       p.Name,
		DistrictID: p.DistrictID,
		District: &domain.District{
			ID:       p.DistrictID,
			Name:     p.DistrictName,
			RegionID: p.RegionID,
			Region:   &domain.Region{ID: p.RegionID, Name: p.RegionName},
		},
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullUUID(id *domain.UserID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}

	return uuid.NullUUID{UUID: uuid.UUID(*id), Valid: true}
}

func userIDPtr(id uuid.NullUUID) *domain.UserID {
	if !id.Valid {
		return nil
	}
	userID := domain.UserID(id.UUID)

	return &userID
}
