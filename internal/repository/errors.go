package repository

import "errors"

var (
	// ErrActivityNotFound возвращается, если активность не найдена в БД.
	ErrActivityNotFound = errors.New("activity not found")

	// ErrActivityExists возвращается при попытке создать дубликат активности.
	ErrActivityExists = errors.New("activity already exists")

	// ErrAlreadySignedUp возвращается, если участник уже записан на активность.
	ErrAlreadySignedUp = errors.New("participant already signed up")

	// ErrNotSignedUp возвращается, если участник не записан на активность.
	ErrNotSignedUp = errors.New("participant not signed up")
)
