package insighting

import "errors"

var (
	// ErrProjectNotFound indica que o projeto informado não existe
	ErrProjectNotFound = errors.New("projeto não encontrado")

	// ErrPaginationLimitExceeded indica que a paginação do armazenamento de
	// linhas diárias ultrapassou o máximo de páginas configurado. Protege
	// contra laços de busca descontrolados em intervalos de datas corrompidos.
	ErrPaginationLimitExceeded = errors.New("limite de páginas da busca excedido")
)
