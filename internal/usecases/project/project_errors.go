package project

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de projetos
var (
	ErrProjectIDRequired = errors.New("project ID is required")
	ErrProjectNotFound   = errors.New("project not found")
	ErrInvalidTimezone   = errors.New("invalid timezone identifier")
	ErrInvalidCurrency   = errors.New("invalid currency code")

	ErrFetchProjects = errors.New("error fetching projects from database")
	ErrUpdateProject = errors.New("error updating project")
)

// ProjectError é um erro com contexto adicional para projetos
type ProjectError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	ProjectID string // ID do projeto envolvido (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ProjectError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ProjectError) Unwrap() error {
	return e.Err
}

// NewProjectError cria um novo ProjectError
func NewProjectError(err error, code string, details string) *ProjectError {
	return &ProjectError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
