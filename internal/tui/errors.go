// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/clip-keeper/internal/clipboard"
	"github.com/MKhiriev/clip-keeper/internal/service"
	"github.com/MKhiriev/clip-keeper/internal/store"
	"github.com/MKhiriev/clip-keeper/internal/validators"
)

// humanizeError maps well-known service errors onto the Russian strings
// shown in the forms. Unknown errors pass through unchanged.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Неверный логин или пароль"
	case errors.Is(err, store.ErrUserAlreadyExists):
		return "Пользователь с таким именем уже существует"
	case errors.Is(err, store.ErrSessionAlreadyExists):
		return "Сессия с таким именем уже существует"
	case errors.Is(err, store.ErrSessionNotFound):
		return "Сессия не найдена"
	case errors.Is(err, store.ErrEntryNotFound):
		return "Запись не найдена"
	case errors.Is(err, validators.ErrUserNameTooShort):
		return "Логин должен быть не короче 3 символов"
	case errors.Is(err, validators.ErrUserNameHasSpaces):
		return "Логин не должен содержать пробелы"
	case errors.Is(err, validators.ErrPasswordTooShort):
		return "Пароль должен быть не короче 6 символов"
	case errors.Is(err, validators.ErrEmptySessionName):
		return "Название сессии не может быть пустым"
	case errors.Is(err, clipboard.ErrUnsupportedContent):
		return "Буфер обмена не поддерживает этот тип содержимого"
	case errors.Is(err, clipboard.ErrUnavailable):
		return "Буфер обмена недоступен"
	}

	return err.Error()
}
