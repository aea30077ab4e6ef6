package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository     *UserRepository
	TokenRepository    *TokenRepository
	StudentRepository  *StudentRepository
	CompanyRepository  *CompanyRepository
	DriveRepository    *DriveRepository
	ResultRepository   *ResultRepository
	BlogRepository     *BlogRepository
	SettingsRepository *SettingsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db),
		TokenRepository:    NewTokenRepository(db),
		StudentRepository:  NewStudentRepository(db),
		CompanyRepository:  NewCompanyRepository(db),
		DriveRepository:    NewDriveRepository(db),
		ResultRepository:   NewResultRepository(db),
		BlogRepository:     NewBlogRepository(db),
		SettingsRepository: NewSettingsRepository(db),
	}
}
