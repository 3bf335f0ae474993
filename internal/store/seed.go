package store

import "github.com/asistenciapp/backend/internal/domain"

// DefaultRoster returns the six employees the roster is seeded with on
// first use. Callers get a fresh slice each time.
func DefaultRoster() []domain.Employee {
	return []domain.Employee{
		{
			ID:             "1",
			Name:           "Carlos Rodríguez",
			EmployeeNumber: "EMP001",
			Department:     "Ventas",
			Avatar:         "https://picsum.photos/seed/carlos/200/200",
		},
		{
			ID:             "2",
			Name:           "Ana García",
			EmployeeNumber: "EMP002",
			Department:     "Recursos Humanos",
			Avatar:         "https://picsum.photos/seed/ana/200/200",
		},
		{
			ID:             "3",
			Name:           "Miguel Ángel Torres",
			EmployeeNumber: "EMP003",
			Department:     "Desarrollo",
			Avatar:         "https://picsum.photos/seed/miguel/200/200",
		},
		{
			ID:             "4",
			Name:           "Lucía Fernández",
			EmployeeNumber: "EMP004",
			Department:     "Marketing",
			Avatar:         "https://picsum.photos/seed/lucia/200/200",
		},
		{
			ID:             "5",
			Name:           "Roberto Sánchez",
			EmployeeNumber: "EMP005",
			Department:     "Logística",
			Avatar:         "https://picsum.photos/seed/roberto/200/200",
		},
		{
			ID:             "6",
			Name:           "Elena Díaz",
			EmployeeNumber: "EMP006",
			Department:     "Desarrollo",
			Avatar:         "https://picsum.photos/seed/elena/200/200",
		},
	}
}
