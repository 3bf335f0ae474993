package export

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/asistenciapp/backend/internal/domain"
)

// ActaTemplate holds the parts of the acta administrativa that vary per
// company. The legal body text is fixed.
type ActaTemplate struct {
	City           string `yaml:"city"`
	Representative string `yaml:"representative"`
	SignerTitle    string `yaml:"signer_title"`
}

// DefaultActaTemplate matches the document the tool originally printed.
func DefaultActaTemplate() ActaTemplate {
	return ActaTemplate{
		City:           "Ciudad de México, México",
		Representative: "C. REPRESENTANTE LEGAL/JEFE DE RECURSOS HUMANOS",
		SignerTitle:    "JEFE DE RECURSOS HUMANOS",
	}
}

// LoadActaTemplate reads the YAML template. A missing file falls back to
// the default template; a present but unparseable file is an error.
func LoadActaTemplate(path string) (ActaTemplate, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultActaTemplate(), nil
	}
	if err != nil {
		return ActaTemplate{}, fmt.Errorf("failed to read acta template: %w", err)
	}

	tpl := DefaultActaTemplate()
	if err := yaml.Unmarshal(data, &tpl); err != nil {
		return ActaTemplate{}, fmt.Errorf("failed to parse acta template: %w", err)
	}
	return tpl, nil
}

// RenderActa produces the printable acta for one record as plain text.
// now is the drafting instant shown in the place-and-date block.
func RenderActa(tpl ActaTemplate, employee domain.Employee, record domain.AttendanceRecord, now time.Time) string {
	verdict := "un registro de asistencia"
	if domain.IsLate(record.Timestamp) {
		verdict = "un retardo injustificado respecto a su horario laboral establecido"
	}

	var b strings.Builder
	b.WriteString("ACTA ADMINISTRATIVA LABORAL\n")
	b.WriteString("POR RETARDOS Y/O FALTAS DE ASISTENCIA\n\n")

	fmt.Fprintf(&b, "Lugar: %s.\n", tpl.City)
	fmt.Fprintf(&b, "Fecha: %s.\n", FormatShortDate(now))
	fmt.Fprintf(&b, "Hora: %s.\n\n", FormatTime(now))

	fmt.Fprintf(&b,
		"En la ciudad antes mencionada, se reúnen en el domicilio de la empresa, "+
			"por una parte el %s en su carácter de patrón o representante patronal, "+
			"y por la otra el trabajador C. %s, quien ocupa el puesto de %s, "+
			"así como dos testigos de asistencia.\n\n",
		tpl.Representative, strings.ToUpper(employee.Name), strings.ToUpper(employee.Department))

	fmt.Fprintf(&b,
		"El motivo de la presente acta es hacer constar los hechos ocurridos el día %s.\n\n",
		FormatDate(record.Timestamp))

	b.WriteString("HECHOS:\n")
	fmt.Fprintf(&b,
		"Se hace constar que el trabajador mencionado registró su entrada a las %s horas, "+
			"lo cual constituye %s.\n\n",
		FormatTimeSeconds(record.Timestamp), verdict)

	b.WriteString(
		"Dicha conducta contraviene las normas internas de trabajo de la empresa y lo " +
			"dispuesto en la Ley Federal del Trabajo (LFT), afectando la operación y disciplina " +
			"del centro de trabajo. Se exhorta al trabajador a cumplir cabalmente con sus " +
			"horarios establecidos para evitar la acumulación de sanciones que puedan derivar " +
			"en la rescisión de la relación laboral conforme al Artículo 47 de la Ley Federal " +
			"del Trabajo.\n\n")

	b.WriteString(
		"El trabajador en este acto hace uso de la voz para manifestar lo que a su derecho " +
			"convenga respecto a los hechos imputados:\n\n" +
			"_______________________________________________\n\n" +
			"_______________________________________________\n\n")

	b.WriteString(
		"No habiendo otro asunto que tratar, se cierra la presente acta, firmando al calce " +
			"los que en ella intervinieron para su debida constancia y efectos legales a que " +
			"haya lugar.\n\n")

	fmt.Fprintf(&b, "EL TRABAJADOR: %s\n", strings.ToUpper(employee.Name))
	fmt.Fprintf(&b, "POR LA EMPRESA: %s\n", tpl.SignerTitle)
	b.WriteString("TESTIGO 1: ____________________\n")
	b.WriteString("TESTIGO 2: ____________________\n")

	return b.String()
}
