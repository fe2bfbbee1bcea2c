package service

import "errors"

var (
	ErrNameInUse          = errors.New("username already in use")
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrTitleTaken         = errors.New("game title already taken")
	ErrInvalidRate        = errors.New("rate must be a half step between 0.5 and 10.0")
	ErrUnknownWish        = errors.New("unknown wish level")
)
