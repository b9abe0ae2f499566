package domain

// Тело ответа с сообщением (и текстом ошибки, если есть)
type APIMessage struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Ответ на успешную загрузку
type UploadResult struct {
	Message string `json:"message"`
	Music   Music  `json:"music"`
}

// Утилиты для сборки ответов
func Msg(text string) APIMessage { return APIMessage{Message: text} }
func Fail(text string, err error) APIMessage {
	m := APIMessage{Message: text}
	if err != nil {
		m.Error = err.Error()
	}
	return m
}
