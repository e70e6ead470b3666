package insighting

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adboard-api/internal/domain"
)

// fetchAllRows busca todas as linhas diárias de um projeto dentro de um
// intervalo, paginando sequencialmente pelo armazenamento. O tamanho de página
// é o teto rígido do repositório; a busca termina quando uma página retorna
// menos linhas que o teto.
//
// Em caso de falha no meio da paginação o prefixo já coletado é retornado
// junto com o erro: o agregador opera corretamente sobre qualquer subconjunto
// das linhas e o chamador decide como sinalizar o resultado incompleto.
func (s *Service) fetchAllRows(projectID string, rng domain.DateRange) ([]*domain.DailyRow, error) {
	pageSize := s.cfg.Insights.PageSize
	maxPages := s.cfg.Insights.MaxPages

	rows := make([]*domain.DailyRow, 0, pageSize)
	offset := 0

	for page := 0; ; page++ {
		if page >= maxPages {
			logrus.WithFields(logrus.Fields{
				"project_id": projectID,
				"max_pages":  maxPages,
				"rows":       len(rows),
			}).Error("insights: paginação excedeu o máximo de páginas")

			return rows, fmt.Errorf("%w: %d páginas", ErrPaginationLimitExceeded, maxPages)
		}

		batch, err := s.dailyRowRepository.GetPageByDateRange(projectID, rng.Since, rng.Until, offset, pageSize)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"project_id": projectID,
				"offset":     offset,
				"rows":       len(rows),
			}).Warn("insights: falha ao buscar página de linhas diárias, retornando prefixo parcial")

			return rows, errors.Wrap(err, "erro ao buscar página de linhas diárias")
		}

		rows = append(rows, batch...)

		// Página incompleta significa que o intervalo foi esgotado
		if len(batch) < pageSize {
			return rows, nil
		}

		offset += pageSize
	}
}
