package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adboard-api/pkg/utils"
)

// Garante que os identificadores de registros seguem o mesmo esquema de
// nanoid textual usado por Project, inclusive nos tipos gerados pelo helper.
func TestRecordIDs_EsquemaNanoid(t *testing.T) {
	id, err := utils.GenerateID()
	require.NoError(t, err)
	require.Len(t, id, 6)

	row := DailyRow{ID: id, ProjectID: "prj001", EntityID: "camp_01"}
	aggregate := MonthlyAggregate{ID: id, ProjectID: "prj001"}
	project := Project{ID: id, ExternalID: "prj_lojas_sul"}

	assert.Equal(t, row.ID, aggregate.ID)
	assert.Equal(t, row.ID, project.ID)
	assert.NotEmpty(t, row.ID)
}
