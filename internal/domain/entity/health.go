package entity

// HealthStatus состояние сервиса
type HealthStatus string

const (
	HealthOK HealthStatus = "OK"
)

// Valid проверяет, что статус входит в перечисление
func (s HealthStatus) Valid() bool {
	switch s {
	case HealthOK:
		return true
	default:
		return false
	}
}
