package response

// OKResponse 처리 결과만 알리는 성공 응답
type OKResponse struct {
	OK bool `json:"ok" example:"true"`
}
