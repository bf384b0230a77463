package response

// ContactRequest 문의 양식 요청 본문 (문서용)
//
// 핸들러는 본문을 직접 해석하며, 문자열이 아닌 값은 빈 값으로 취급합니다.
type ContactRequest struct {
	Name    string `json:"name" example:"Jane Doe"`
	Email   string `json:"email" example:"jane@example.com"`
	Message string `json:"message" example:"Do you ship 15 oz mugs to Canada?"`
}
