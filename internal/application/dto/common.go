package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NoticeResponse aviso no-fatal (ej. exportación sin datos).
type NoticeResponse struct {
	Notice string `json:"notice"`
}
