package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"terrasense-service/aggregate"
	"terrasense-service/models"

	"github.com/apex/log"
)

// UserService owns reads and writes of the users table. The unique email
// index is the only cross-record invariant the store enforces.
type UserService struct {
	db *sql.DB
}

func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

const userColumns = `id, name, email, role, region, phone, data_reports,
	projects_joined, verified, created_at, updated_at`

func scanUser(rows *sql.Rows) (*models.User, error) {
	var u models.User
	var name, role, region, phone sql.NullString

	err := rows.Scan(
		&u.ID,
		&name,
		&u.Email,
		&role,
		&region,
		&phone,
		&u.Contributions.DataReports,
		&u.Contributions.ProjectsJoined,
		&u.Verified,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	u.Name = name.String
	u.Role = role.String
	u.Region = region.String
	u.Phone = phone.String
	return &u, nil
}

func (s *UserService) queryUsers(ctx context.Context, where string, args []any) ([]models.User, error) {
	q := "SELECT " + userColumns + " FROM users" + where + " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	r := make([]models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		r = append(r, *u)
	}
	return r, rows.Err()
}

// ListUsers returns users matching the filters, newest first.
func (s *UserService) ListUsers(ctx context.Context, f UserFilters) ([]models.User, error) {
	where, args := f.Where()
	return s.queryUsers(ctx, where, args)
}

// GetUserByEmail looks one user up by their unique email.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = ?", email)
	if err != nil {
		return nil, fmt.Errorf("failed to query user %q: %w", email, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrNotFound
	}
	return scanUser(rows)
}

// GetUser looks one user up by id.
func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to query user %d: %w", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrNotFound
	}
	return scanUser(rows)
}

// CreateUser inserts one user. A duplicate email yields ErrDuplicateEmail.
func (s *UserService) CreateUser(ctx context.Context, u *models.User) error {
	result, err := s.db.ExecContext(ctx, `INSERT
		INTO users (name, email, role, region, phone, data_reports,
			projects_joined, verified)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.Name, u.Email, u.Role, u.Region, u.Phone,
		u.Contributions.DataReports, u.Contributions.ProjectsJoined,
		u.Verified)
	if err != nil {
		if isDuplicateEntry(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted user id: %w", err)
	}
	u.ID = id
	log.Infof("Registered user %d (%s)", id, u.Email)
	return nil
}

// IncrementContributions applies the counter increments as a single
// server-side update so concurrent callers never lose an increment, then
// returns the updated record. Missing ids yield ErrNotFound.
func (s *UserService) IncrementContributions(ctx context.Context, id int64, upd *models.ContributionsUpdate) (*models.User, error) {
	sets := make([]string, 0, 2)
	args := make([]any, 0, 3)

	if upd.DataReports != nil {
		sets = append(sets, "data_reports = data_reports + ?")
		args = append(args, *upd.DataReports)
	}
	if upd.ProjectsJoined != nil {
		sets = append(sets, "projects_joined = projects_joined + ?")
		args = append(args, *upd.ProjectsJoined)
	}

	if len(sets) > 0 {
		args = append(args, id)
		_, err := s.db.ExecContext(ctx,
			"UPDATE users SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
		if err != nil {
			return nil, fmt.Errorf("failed to update contributions for user %d: %w", id, err)
		}
	}

	return s.GetUser(ctx, id)
}

// RoleStats groups users by role with contribution totals.
func (s *UserService) RoleStats(ctx context.Context) ([]aggregate.RoleStat, error) {
	users, err := s.queryUsers(ctx, "", nil)
	if err != nil {
		return nil, err
	}
	return aggregate.RoleBreakdown(users), nil
}

// CountVerified is the user section of the dashboard snapshot.
func (s *UserService) CountVerified(ctx context.Context) (int64, error) {
	var cnt int64
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE verified = true").Scan(&cnt)
	if err != nil {
		return 0, fmt.Errorf("failed to count verified users: %w", err)
	}
	return cnt, nil
}
