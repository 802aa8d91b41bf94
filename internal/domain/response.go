package domain

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Count   *int        `json:"count,omitempty"`
}

func OK(data interface{}) *Response {
	return &Response{Success: true, Data: data}
}

func OKMessage(data interface{}, msg string) *Response {
	return &Response{Success: true, Data: data, Message: msg}
}

// OKList attaches the item count the dashboard expects on collections.
func OKList(data interface{}, count int) *Response {
	return &Response{Success: true, Data: data, Count: &count}
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}
