package entity

import "errors"

var (
	// ErrEmailAlreadyExists: violação do UNIQUE de email_primario.
	ErrEmailAlreadyExists = errors.New("já existe um lead com este email")

	// ErrLeadNotFound: o id referenciado não existe no banco.
	ErrLeadNotFound = errors.New("lead não encontrado")
)
