package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stgabriel-shg/shg_backend/internal/apperrors"
	"github.com/stgabriel-shg/shg_backend/internal/core/domain"
	portsrepo "github.com/stgabriel-shg/shg_backend/internal/core/ports/repositories"
	"github.com/stgabriel-shg/shg_backend/internal/models"
	"github.com/stgabriel-shg/shg_backend/internal/utils/mapping"
)

const memberColumns = `
	member_id, member_number, first_name, last_name, email, phone,
	date_of_birth, gender, address, city, county, postal_code,
	national_id, tax_pin, bank_name, bank_account, bank_branch,
	nominee_name, nominee_relation, joined_at, status,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxMemberRepository struct {
	db *pgxpool.Pool
}

// newPgxMemberRepository creates a new repository for member data.
func newPgxMemberRepository(db *pgxpool.Pool) portsrepo.MemberRepositoryFacade {
	return &PgxMemberRepository{db: db}
}

// Ensure PgxMemberRepository implements portsrepo.MemberRepositoryFacade
var _ portsrepo.MemberRepositoryFacade = (*PgxMemberRepository)(nil)

func (r *PgxMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	m := mapping.ToModelMember(member)
	query := `
		INSERT INTO members (` + memberColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25);
	`
	_, err := r.db.Exec(ctx, query,
		m.MemberID, m.MemberNumber, m.FirstName, m.LastName, m.Email, m.Phone,
		m.DateOfBirth, m.Gender, m.Address, m.City, m.County, m.PostalCode,
		m.NationalID, m.TaxPIN, m.BankName, m.BankAccount, m.BankBranch,
		m.NomineeName, m.NomineeRel, m.JoinedAt, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: a member with this email or national ID already exists", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save member: %w", err)
	}
	return nil
}

func (r *PgxMemberRepository) UpdateMember(ctx context.Context, member domain.Member) error {
	m := mapping.ToModelMember(member)
	query := `
		UPDATE members SET
			member_number = $2, first_name = $3, last_name = $4, email = $5, phone = $6,
			date_of_birth = $7, gender = $8, address = $9, city = $10, county = $11,
			postal_code = $12, national_id = $13, tax_pin = $14, bank_name = $15,
			bank_account = $16, bank_branch = $17, nominee_name = $18, nominee_relation = $19,
			status = $20, last_updated_at = $21, last_updated_by = $22
		WHERE member_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		m.MemberID, m.MemberNumber, m.FirstName, m.LastName, m.Email, m.Phone,
		m.DateOfBirth, m.Gender, m.Address, m.City, m.County,
		m.PostalCode, m.NationalID, m.TaxPIN, m.BankName,
		m.BankAccount, m.BankBranch, m.NomineeName, m.NomineeRel,
		m.Status, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update member %s: %w", m.MemberID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxMemberRepository) DeleteMember(ctx context.Context, memberID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM members WHERE member_id = $1;`, memberID)
	if err != nil {
		return fmt.Errorf("failed to delete member %s: %w", memberID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxMemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE member_id = $1;`
	return r.findOne(ctx, query, memberID)
}

func (r *PgxMemberRepository) FindMemberByNumber(ctx context.Context, memberNumber string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE member_number = $1;`
	return r.findOne(ctx, query, memberNumber)
}

func (r *PgxMemberRepository) ListMembers(ctx context.Context, status *domain.MemberStatus) ([]domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members`
	args := []any{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, string(*status))
	}
	query += ` ORDER BY joined_at DESC;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	defer rows.Close()

	members := []models.Member{}
	for rows.Next() {
		m, err := scanMemberRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member row: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", err)
	}
	return mapping.ToDomainMemberSlice(members), nil
}

func (r *PgxMemberRepository) CountActiveMembers(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM members WHERE status = 'ACTIVE';`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active members: %w", err)
	}
	return count, nil
}

func (r *PgxMemberRepository) findOne(ctx context.Context, query string, arg any) (*domain.Member, error) {
	m, err := scanMemberRow(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find member: %w", err)
	}
	member := mapping.ToDomainMember(m)
	return &member, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func scanMemberRow(row pgx.Row) (models.Member, error) {
	var m models.Member
	err := row.Scan(
		&m.MemberID, &m.MemberNumber, &m.FirstName, &m.LastName, &m.Email, &m.Phone,
		&m.DateOfBirth, &m.Gender, &m.Address, &m.City, &m.County, &m.PostalCode,
		&m.NationalID, &m.TaxPIN, &m.BankName, &m.BankAccount, &m.BankBranch,
		&m.NomineeName, &m.NomineeRel, &m.JoinedAt, &m.Status,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}
