package apimodels

type Response struct {
	Status string      `json:"status"`          //результат обработки fail/success
	Error  string      `json:"error,omitempty"` //сообщение ошибки
	Data   interface{} `json:"data,omitempty"`  //данные ответа
}

func NewError(message string) Response {
	return Response{
		Status: "fail",
		Error:  message,
	}
}

// NewErrorWithData ошибка с деталями, например список ошибок полей
func NewErrorWithData(message string, data interface{}) Response {
	return Response{
		Status: "fail",
		Error:  message,
		Data:   data,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}
