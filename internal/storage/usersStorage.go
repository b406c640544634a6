package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/crypto-assets/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	InsertUser = `INSERT INTO USERS (id, username, password, email)
						VALUES ($1, $2, $3, $4)
						RETURNING id;`
	GetUser = `SELECT id, username, password, email FROM USERS WHERE username=$1;`
)

type UserDatabase struct {
	DB *Database
}

// Создание хранилища
func NewUsersStorage(db *Database) UsersStorage {
	return &UserDatabase{DB: db}
}

func (s *UserDatabase) GetUser(ctx context.Context, username string) (*models.UserData, error) {
	var (
		userID     string
		dbUsername string
		password   string
		email      string
	)
	err := s.DB.Pool.QueryRow(ctx, GetUser, username).Scan(&userID, &dbUsername, &password, &email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &models.UserData{
		UserID:       userID,
		Username:     dbUsername,
		PasswordHash: password,
		Email:        email,
	}, nil
}

// AddUser - добавление пользователя, возвращает идентификатор нового пользователя
func (s *UserDatabase) AddUser(ctx context.Context, username string, passwordHash string, email string) (string, error) {
	var insertedID string
	userID := uuid.New().String()

	err := s.DB.Pool.QueryRow(ctx, InsertUser, userID, username, passwordHash, email).Scan(&insertedID)

	// Успешное добавление
	if err == nil {
		return insertedID, nil
	}

	// Проверяем именно нарушение уникальности (код 23505),
	// по имени ограничения различаем логин и почту
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == "users_email_key" {
			return "", ErrEmailExists
		}
		return "", ErrUsernameExists
	}

	// Все остальные ошибки
	return "", fmt.Errorf("failed to add user: %w", err)
}
