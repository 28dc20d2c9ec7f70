package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/SNcodeur2001/projet-final-todo/internal/core/domain"
	"github.com/SNcodeur2001/projet-final-todo/internal/core/ports"
)

const mysqlErrDuplicateEntry = 1062

const selectUserColumns = `
SELECT id, nom, prenom, login, password, role, created_at
FROM users
`

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID        uint64    `db:"id"`
	Nom       string    `db:"nom"`
	Prenom    string    `db:"prenom"`
	Login     string    `db:"login"`
	Password  string    `db:"password"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	result, err := r.db.ExecContext(ctx, `
INSERT INTO users (nom, prenom, login, password, role)
VALUES (?, ?, ?, ?, ?)`,
		user.Nom, user.Prenom, user.Login, user.PasswordHash, string(user.Role),
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return domain.User{}, domain.ErrLoginTaken
		}
		return domain.User{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}

	created, err := r.FindByID(ctx, uint64(id))
	if err != nil {
		return domain.User{}, err
	}
	return *created, nil
}

func (r *UserRepository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, selectUserColumns+"WHERE login = ?", login)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	user := mapUserRow(row)
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint64) (*domain.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, selectUserColumns+"WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	user := mapUserRow(row)
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, selectUserColumns+"ORDER BY id"); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUserRow(row))
	}
	return users, nil
}

func mapUserRow(row userRow) domain.User {
	return domain.User{
		ID:           row.ID,
		Nom:          row.Nom,
		Prenom:       row.Prenom,
		Login:        row.Login,
		PasswordHash: row.Password,
		Role:         domain.Role(row.Role),
		CreatedAt:    row.CreatedAt,
	}
}
