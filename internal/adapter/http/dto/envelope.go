package dto

// SuccessEnvelope wraps every successful response body.
type SuccessEnvelope struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data"`
}

func Success(data interface{}) SuccessEnvelope {
	return SuccessEnvelope{Status: "success", Data: data}
}
