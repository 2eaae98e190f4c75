package domain

// Общий конверт ответа
type APIError struct {
	Code int    `json:"code,omitempty"`
	Text string `json:"text,omitempty"`
}

type APIEnvelope struct {
	Error    *APIError `json:"error,omitempty"`
	Response any       `json:"response,omitempty"`
	Data     any       `json:"data,omitempty"`
	// Нефатальный сбой (осиротевший блоб) — операция при этом успешна
	Warning *APIError `json:"warning,omitempty"`
}

// Утилиты для сборки конвертов
func OkResponse(resp any) APIEnvelope { return APIEnvelope{Response: resp} }
func OkData(data any) APIEnvelope     { return APIEnvelope{Data: data} }
func Fail(code int, text string) APIEnvelope {
	return APIEnvelope{Error: &APIError{Code: code, Text: text}}
}

func (e APIEnvelope) WithWarning(w *CleanupWarning) APIEnvelope {
	if w != nil {
		e.Warning = &APIError{Code: ErrCodeStore, Text: w.String()}
	}
	return e
}
