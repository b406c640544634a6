package validators

import (
	"net/mail"
	"unicode"

	"github.com/denmor86/crypto-assets/internal/models"
)

const MinPasswordLength = 8

// FieldErrors - ошибки валидации по полям запроса
type FieldErrors map[string][]string

func (e FieldErrors) Add(field string, message string) {
	e[field] = append(e[field], message)
}

// Empty - проверка отсутствия ошибок валидации
func (e FieldErrors) Empty() bool {
	return len(e) == 0
}

// ValidateRegistration проверяет данные регистрации пользователя.
// Возвращает карту ошибок по полям, пустую при валидных данных.
func ValidateRegistration(request models.RegisterRequest) FieldErrors {
	errors := make(FieldErrors)

	if request.Username == "" {
		errors.Add("username", "This field is required.")
	}
	if request.Email == "" {
		errors.Add("email", "This field is required.")
	} else if !CheckEmail(request.Email) {
		errors.Add("email", "Enter a valid email address.")
	}
	if request.Password1 == "" {
		errors.Add("password1", "This field is required.")
		return errors
	}
	if request.Password2 != request.Password1 {
		errors.Add("password2", "The two password fields didn't match.")
	}
	if len(request.Password1) < MinPasswordLength {
		errors.Add("password1", "This password is too short. It must contain at least 8 characters.")
	}
	if CheckNumeric(request.Password1) {
		errors.Add("password1", "This password is entirely numeric.")
	}
	return errors
}

// CheckEmail проверяет формат адреса электронной почты
func CheckEmail(email string) bool {
	address, err := mail.ParseAddress(email)
	return err == nil && address.Address == email
}

// CheckNumeric проверяет, что строка состоит только из цифр
func CheckNumeric(value string) bool {
	for _, r := range value {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(value) > 0
}
