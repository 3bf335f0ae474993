package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asistenciapp/backend/internal/domain"
)

func TestLoadActaTemplate(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		tpl, err := LoadActaTemplate(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultActaTemplate(), tpl)
	})

	t.Run("partial file keeps defaults for omitted fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "acta.yaml")
		require.NoError(t, os.WriteFile(path, []byte("city: Monterrey, México\n"), 0664))

		tpl, err := LoadActaTemplate(path)
		require.NoError(t, err)
		assert.Equal(t, "Monterrey, México", tpl.City)
		assert.Equal(t, DefaultActaTemplate().SignerTitle, tpl.SignerTitle)
	})

	t.Run("unparseable file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "acta.yaml")
		require.NoError(t, os.WriteFile(path, []byte("city: [unclosed"), 0664))

		_, err := LoadActaTemplate(path)
		require.Error(t, err)
	})
}

func TestRenderActaLateRecord(t *testing.T) {
	record := domain.AttendanceRecord{
		ID:         "r1",
		EmployeeID: "1",
		Timestamp:  time.Date(2026, 3, 2, 9, 47, 12, 0, time.Local),
	}
	now := time.Date(2026, 3, 4, 11, 30, 0, 0, time.Local)

	doc := RenderActa(DefaultActaTemplate(), testEmployee, record, now)

	assert.Contains(t, doc, "ACTA ADMINISTRATIVA LABORAL")
	assert.Contains(t, doc, "Lugar: Ciudad de México, México.")
	assert.Contains(t, doc, "Fecha: 4 de marzo de 2026.")
	assert.Contains(t, doc, "C. CARLOS RODRÍGUEZ")
	assert.Contains(t, doc, "el puesto de VENTAS")
	assert.Contains(t, doc, "lunes, 2 de marzo de 2026")
	assert.Contains(t, doc, "09:47:12")
	assert.Contains(t, doc, "un retardo injustificado")
}

func TestRenderActaOnTimeRecord(t *testing.T) {
	record := domain.AttendanceRecord{
		ID:         "r1",
		EmployeeID: "1",
		Timestamp:  time.Date(2026, 3, 2, 8, 58, 0, 0, time.Local),
	}

	doc := RenderActa(DefaultActaTemplate(), testEmployee, record, time.Now())
	assert.Contains(t, doc, "un registro de asistencia")
	assert.NotContains(t, doc, "retardo injustificado")
}
