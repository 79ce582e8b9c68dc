package entity

// Example шаблонная сущность запроса/ответа, к эндпоинтам не подключена
type Example struct {
	// запрос
	Name string

	// ответ
	Message *string
}
