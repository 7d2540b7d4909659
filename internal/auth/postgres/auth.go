package postgres

import (
	"database/sql"

	"gorm.io/gorm"

	"github.com/dome-hr/dome-backend/internal"
	"github.com/dome-hr/dome-backend/internal/auth"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetCredentials(username string) (string, *auth.User, error) {
	var passwordHash string
	var user auth.User

	query := `SELECT id, username, name, id_roles, password_hash FROM users WHERE username = ? AND is_active = true`

	row := r.db.Raw(query, username).Row()
	if err := row.Scan(&user.ID, &user.Username, &user.Name, &user.IDRoles, &passwordHash); err != nil {
		if err == sql.ErrNoRows {
			return "", nil, internal.ErrInvalidCredentials
		}
		return "", nil, err
	}

	return passwordHash, &user, nil
}

func (r *Repository) GetUserByID(userID int64) (*auth.User, error) {
	var user auth.User

	query := `SELECT id, username, name, id_roles FROM users WHERE id = ? AND is_active = true`

	row := r.db.Raw(query, userID).Row()
	if err := row.Scan(&user.ID, &user.Username, &user.Name, &user.IDRoles); err != nil {
		if err == sql.ErrNoRows {
			return nil, internal.ErrInvalidCredentials
		}
		return nil, err
	}

	return &user, nil
}
