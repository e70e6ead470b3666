package perioding

import "errors"

var (
	// ErrInvalidPreset indica que o preset de período informado não é reconhecido
	ErrInvalidPreset = errors.New("preset de período inválido")

	// ErrInvalidRange indica um período customizado sem as duas datas ou com início após o fim
	ErrInvalidRange = errors.New("intervalo de datas inválido")
)
