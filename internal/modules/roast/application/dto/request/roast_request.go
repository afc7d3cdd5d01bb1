package request

// RoastRequest 生成吐槽的请求体，roast_intensity 为空时默认 medium
type RoastRequest struct {
	Name             string `json:"name" binding:"required"`
	Age              string `json:"age" binding:"required"`
	Appearance       string `json:"appearance"`
	Hobbies          string `json:"hobbies"`
	Personality      string `json:"personality"`
	Occupation       string `json:"occupation"`
	EmbarrassingFact string `json:"embarrassing_fact"`
	RoastIntensity   string `json:"roast_intensity"`
}
