package member

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"membuddy/internal/adapters/storage"
	domain "membuddy/internal/domain/member"
	"membuddy/internal/domain/nlu"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new member store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const memberColumns = "id, email, full_name, address, graduation_year, membership_type, join_date, expiration_date, engagement_score, auto_renew"

// GetByEmail retrieves a Member by normalized email.
// PRE: email is non-empty
// POST: Returns the entity, or domain.ErrNotFound if absent
// INVARIANT: Lookup is case-insensitive and trimmed on both sides
func (s *SQLiteStore) GetByEmail(ctx context.Context, email string) (domain.Member, error) {
	query := "SELECT " + memberColumns + " FROM member WHERE email = ?"
	row := s.db.QueryRowContext(ctx, query, nlu.NormalizeEmail(email))
	return scanMember(row)
}

// Save persists a Member to the database (insert or update by id).
// PRE: entity has been validated
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Member) error {
	query := `INSERT INTO member (` + memberColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
		email=excluded.email, full_name=excluded.full_name, address=excluded.address,
		graduation_year=excluded.graduation_year, membership_type=excluded.membership_type,
		join_date=excluded.join_date, expiration_date=excluded.expiration_date,
		engagement_score=excluded.engagement_score, auto_renew=excluded.auto_renew`

	var gradYear any
	if entity.GraduationYear != 0 {
		gradYear = entity.GraduationYear
	}
	_, err := s.db.ExecContext(ctx, query,
		entity.ID,
		nlu.NormalizeEmail(entity.Email),
		entity.FullName,
		entity.Address,
		gradYear,
		entity.MembershipType,
		encodeDate(entity.JoinDate),
		encodeDate(entity.ExpirationDate),
		entity.EngagementScore,
		boolToInt(entity.AutoRenew),
	)
	return err
}

// fieldColumns maps updatable conversation fields to their columns. Any
// field outside this map is a schema error surfaced as ErrUnknownField.
var fieldColumns = map[nlu.Field]string{
	nlu.FieldEmail:          "email",
	nlu.FieldAddress:        "address",
	nlu.FieldGraduationYear: "graduation_year",
}

// UpdateField writes one profile field.
// PRE: id is non-empty, value has passed validation
// POST: Exactly one column is updated, or no row is touched on error
func (s *SQLiteStore) UpdateField(ctx context.Context, id string, field nlu.Field, value string) error {
	column, ok := fieldColumns[field]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	var arg any = value
	if field == nlu.FieldGraduationYear {
		year, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("graduation year must be numeric: %w", err)
		}
		arg = year
	}
	if field == nlu.FieldEmail {
		arg = nlu.NormalizeEmail(value)
	}

	result, err := s.db.ExecContext(ctx, "UPDATE member SET "+column+" = ? WHERE id = ?", arg, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// UpdateExpiration writes a new expiration date.
func (s *SQLiteStore) UpdateExpiration(ctx context.Context, id string, expiration time.Time) error {
	result, err := s.db.ExecContext(ctx, "UPDATE member SET expiration_date = ? WHERE id = ?", encodeDate(expiration), id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// UpdateEngagement writes a recomputed engagement score.
// PRE: 0 <= score <= 100
func (s *SQLiteStore) UpdateEngagement(ctx context.Context, id string, score int) error {
	result, err := s.db.ExecContext(ctx, "UPDATE member SET engagement_score = ? WHERE id = ?", score, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// List returns all members ordered by email.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Member, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+memberColumns+" FROM member ORDER BY email")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Member
	for rows.Next() {
		entity, err := scanMemberRow(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanFields(sc rowScanner, entity *domain.Member) error {
	var gradYear sql.NullInt64
	var joinDate, expiration sql.NullString
	var autoRenew int
	err := sc.Scan(
		&entity.ID,
		&entity.Email,
		&entity.FullName,
		&entity.Address,
		&gradYear,
		&entity.MembershipType,
		&joinDate,
		&expiration,
		&entity.EngagementScore,
		&autoRenew,
	)
	if err != nil {
		return err
	}
	if gradYear.Valid {
		entity.GraduationYear = int(gradYear.Int64)
	}
	entity.JoinDate = decodeDate(joinDate)
	entity.ExpirationDate = decodeDate(expiration)
	entity.AutoRenew = autoRenew != 0
	return nil
}

func scanMember(row *sql.Row) (domain.Member, error) {
	var entity domain.Member
	err := scanFields(row, &entity)
	if err == sql.ErrNoRows {
		return domain.Member{}, domain.ErrNotFound
	}
	return entity, err
}

func scanMemberRow(rows *sql.Rows) (domain.Member, error) {
	var entity domain.Member
	err := scanFields(rows, &entity)
	return entity, err
}

// requireRow converts a zero-row update into domain.ErrNotFound.
func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func encodeDate(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

func decodeDate(s sql.NullString) time.Time {
	if !s.Valid || s.String == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return time.Time{}
	}
	return t
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
