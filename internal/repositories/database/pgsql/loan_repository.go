package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stgabriel-shg/shg_backend/internal/apperrors"
	"github.com/stgabriel-shg/shg_backend/internal/core/domain"
	portsrepo "github.com/stgabriel-shg/shg_backend/internal/core/ports/repositories"
	"github.com/stgabriel-shg/shg_backend/internal/models"
	"github.com/stgabriel-shg/shg_backend/internal/utils/mapping"
	"github.com/stgabriel-shg/shg_backend/internal/utils/pagination"
)

// derivedStatusSQL mirrors LoanApplication.Status in SQL so listings can
// filter on the derived status without a stored column. It must stay in step
// with the domain derivation.
const derivedStatusSQL = `
	CASE
		WHEN rejected_by_stage IS NOT NULL
			OR treasurer_outcome = 'REJECTED'
			OR secretary_outcome = 'REJECTED'
			OR chairman_outcome = 'REJECTED' THEN 'REJECTED'
		WHEN treasurer_outcome = 'PENDING' THEN 'TREASURER_REVIEW'
		WHEN secretary_outcome = 'PENDING' THEN 'SECRETARY_REVIEW'
		WHEN chairman_outcome = 'PENDING' THEN 'CHAIRMAN_REVIEW'
		ELSE 'APPROVED'
	END`

const loanColumns = `
	loan_id, loan_number, member_id, member_name, monthly_income,
	amount, purpose, term_months, interest_rate, monthly_installment,
	collateral, applied_at,
	treasurer_outcome, treasurer_comment, treasurer_reviewed_by, treasurer_reviewed_at,
	secretary_outcome, secretary_comment, secretary_reviewed_by, secretary_reviewed_at,
	chairman_outcome, chairman_comment, chairman_reviewed_by, chairman_reviewed_at,
	rejected_by_stage, decided_at,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxLoanRepository struct {
	BaseRepository
}

// newPgxLoanRepository creates a new repository for loan application data.
func newPgxLoanRepository(pool *pgxpool.Pool) portsrepo.LoanRepositoryWithTx {
	return &PgxLoanRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxLoanRepository implements portsrepo.LoanRepositoryWithTx
var _ portsrepo.LoanRepositoryWithTx = (*PgxLoanRepository)(nil)

// SaveLoan persists a newly submitted loan and its guarantor pledges within a
// DB transaction.
func (r *PgxLoanRepository) SaveLoan(ctx context.Context, loan domain.LoanApplication) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelLoan(loan)
	loanQuery := `
		INSERT INTO loans (` + loanColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28, $29, $30);
	`
	_, err = tx.Exec(ctx, loanQuery,
		m.LoanID, m.LoanNumber, m.MemberID, m.MemberName, m.MonthlyIncome,
		m.Amount, m.Purpose, m.TermMonths, m.InterestRate, m.MonthlyInstallment,
		m.Collateral, m.AppliedAt,
		m.TreasurerOutcome, m.TreasurerComment, m.TreasurerReviewedBy, m.TreasurerReviewedAt,
		m.SecretaryOutcome, m.SecretaryComment, m.SecretaryReviewedBy, m.SecretaryReviewedAt,
		m.ChairmanOutcome, m.ChairmanComment, m.ChairmanReviewedBy, m.ChairmanReviewedAt,
		m.RejectedByStage, m.DecidedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert loan "+m.LoanID, err)
	}

	batch := &pgx.Batch{}
	guarantorQuery := `
		INSERT INTO loan_guarantors (loan_id, position, name, phone, pledged_amount)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, g := range mapping.ToModelGuarantors(loan.LoanID, loan.Guarantors) {
		batch.Queue(guarantorQuery, g.LoanID, g.Position, g.Name, g.Phone, g.PledgedAmount)
	}
	br := tx.SendBatch(ctx, batch)
	for range loan.Guarantors {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return apperrors.NewAppError(500, "failed to insert guarantor for loan "+m.LoanID, err)
		}
	}
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close guarantor batch", err)
	}

	return r.Commit(ctx, tx)
}

// SaveReview persists one review transition atomically: the updated stage
// columns and terminal fields on the loan row, plus the single new trail
// comment.
func (r *PgxLoanRepository) SaveReview(ctx context.Context, loan domain.LoanApplication, newComment domain.LoanComment) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelLoan(loan)
	updateQuery := `
		UPDATE loans SET
			treasurer_outcome = $2, treasurer_comment = $3, treasurer_reviewed_by = $4, treasurer_reviewed_at = $5,
			secretary_outcome = $6, secretary_comment = $7, secretary_reviewed_by = $8, secretary_reviewed_at = $9,
			chairman_outcome = $10, chairman_comment = $11, chairman_reviewed_by = $12, chairman_reviewed_at = $13,
			rejected_by_stage = $14, decided_at = $15,
			last_updated_at = $16, last_updated_by = $17
		WHERE loan_id = $1;
	`
	tag, err := tx.Exec(ctx, updateQuery,
		m.LoanID,
		m.TreasurerOutcome, m.TreasurerComment, m.TreasurerReviewedBy, m.TreasurerReviewedAt,
		m.SecretaryOutcome, m.SecretaryComment, m.SecretaryReviewedBy, m.SecretaryReviewedAt,
		m.ChairmanOutcome, m.ChairmanComment, m.ChairmanReviewedBy, m.ChairmanReviewedAt,
		m.RejectedByStage, m.DecidedAt,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update loan "+m.LoanID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	c := mapping.ToModelComment(loan.LoanID, newComment)
	commentQuery := `
		INSERT INTO loan_comments (comment_id, loan_id, author_id, author_name, author_role, text, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, commentQuery,
		c.CommentID, c.LoanID, c.AuthorID, c.AuthorName, c.AuthorRole, c.Text, c.Timestamp,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert loan comment for "+m.LoanID, err)
	}

	return r.Commit(ctx, tx)
}

// FindLoanByID retrieves a loan, its guarantor pledges and its full comment
// trail.
func (r *PgxLoanRepository) FindLoanByID(ctx context.Context, loanID string) (*domain.LoanApplication, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE loan_id = $1;`
	m, err := scanLoanRow(r.Pool.QueryRow(ctx, query, loanID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find loan by ID %s: %w", loanID, err)
	}

	guarantors, err := r.findGuarantors(ctx, loanID)
	if err != nil {
		return nil, err
	}
	comments, err := r.findComments(ctx, loanID)
	if err != nil {
		return nil, err
	}

	loan := mapping.ToDomainLoan(m, guarantors, comments)
	return &loan, nil
}

// ListLoans retrieves a paginated list of loans, newest applications first,
// optionally filtered by the derived status. Listed loans carry their stage
// records but not the guarantor and comment detail; FindLoanByID loads those.
func (r *PgxLoanRepository) ListLoans(ctx context.Context, status *domain.LoanStatus, limit int, nextToken *string) ([]domain.LoanApplication, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + loanColumns + ` FROM loans`
	conditions := ""
	args := []any{}
	argNum := 1

	if status != nil {
		conditions += fmt.Sprintf(" WHERE %s = $%d", derivedStatusSQL, argNum)
		args = append(args, string(*status))
		argNum++
	}

	if nextToken != nil && *nextToken != "" {
		lastAppliedAt, lastLoanID, decodeErr := pagination.DecodeCursor(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		keyword := " WHERE"
		if conditions != "" {
			keyword = " AND"
		}
		conditions += fmt.Sprintf("%s (applied_at, loan_id) < ($%d, $%d)", keyword, argNum, argNum+1)
		args = append(args, lastAppliedAt, lastLoanID)
		argNum += 2
	}

	// Fetch one extra row to know whether another page exists.
	query += conditions + fmt.Sprintf(" ORDER BY applied_at DESC, loan_id DESC LIMIT $%d;", argNum)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query loans: %w", err)
	}
	defer rows.Close()

	modelLoans := []models.Loan{}
	for rows.Next() {
		m, err := scanLoanRow(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan loan row: %w", err)
		}
		modelLoans = append(modelLoans, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating loan rows: %w", err)
	}

	var nextTokenVal *string
	if len(modelLoans) > limit {
		modelLoans = modelLoans[:limit]
		last := modelLoans[len(modelLoans)-1]
		token := pagination.EncodeCursor(last.AppliedAt, last.LoanID)
		nextTokenVal = &token
	}

	loans := make([]domain.LoanApplication, len(modelLoans))
	for i, m := range modelLoans {
		loans[i] = mapping.ToDomainLoan(m, nil, nil)
	}
	return loans, nextTokenVal, nil
}

// CountLoansAppliedInYear returns how many loans were submitted in the given
// calendar year.
func (r *PgxLoanRepository) CountLoansAppliedInYear(ctx context.Context, year int) (int, error) {
	query := `SELECT COUNT(*) FROM loans WHERE date_part('year', applied_at) = $1;`
	var count int
	if err := r.Pool.QueryRow(ctx, query, year).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count loans for year %d: %w", year, err)
	}
	return count, nil
}

func (r *PgxLoanRepository) findGuarantors(ctx context.Context, loanID string) ([]models.LoanGuarantor, error) {
	query := `
		SELECT loan_id, position, name, phone, pledged_amount
		FROM loan_guarantors
		WHERE loan_id = $1
		ORDER BY position;
	`
	rows, err := r.Pool.Query(ctx, query, loanID)
	if err != nil {
		return nil, fmt.Errorf("failed to query guarantors for loan %s: %w", loanID, err)
	}
	defer rows.Close()

	guarantors := []models.LoanGuarantor{}
	for rows.Next() {
		var g models.LoanGuarantor
		if err := rows.Scan(&g.LoanID, &g.Position, &g.Name, &g.Phone, &g.PledgedAmount); err != nil {
			return nil, fmt.Errorf("failed to scan guarantor row: %w", err)
		}
		guarantors = append(guarantors, g)
	}
	return guarantors, rows.Err()
}

func (r *PgxLoanRepository) findComments(ctx context.Context, loanID string) ([]models.LoanComment, error) {
	query := `
		SELECT comment_id, loan_id, author_id, author_name, author_role, text, timestamp
		FROM loan_comments
		WHERE loan_id = $1
		ORDER BY timestamp, comment_id;
	`
	rows, err := r.Pool.Query(ctx, query, loanID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments for loan %s: %w", loanID, err)
	}
	defer rows.Close()

	comments := []models.LoanComment{}
	for rows.Next() {
		var c models.LoanComment
		if err := rows.Scan(&c.CommentID, &c.LoanID, &c.AuthorID, &c.AuthorName, &c.AuthorRole, &c.Text, &c.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func scanLoanRow(row pgx.Row) (models.Loan, error) {
	var m models.Loan
	err := row.Scan(
		&m.LoanID, &m.LoanNumber, &m.MemberID, &m.MemberName, &m.MonthlyIncome,
		&m.Amount, &m.Purpose, &m.TermMonths, &m.InterestRate, &m.MonthlyInstallment,
		&m.Collateral, &m.AppliedAt,
		&m.TreasurerOutcome, &m.TreasurerComment, &m.TreasurerReviewedBy, &m.TreasurerReviewedAt,
		&m.SecretaryOutcome, &m.SecretaryComment, &m.SecretaryReviewedBy, &m.SecretaryReviewedAt,
		&m.ChairmanOutcome, &m.ChairmanComment, &m.ChairmanReviewedBy, &m.ChairmanReviewedAt,
		&m.RejectedByStage, &m.DecidedAt,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}
