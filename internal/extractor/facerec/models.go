package facerec

// EncodingsRequest for POST /encodings
type EncodingsRequest struct {
	Img   string `json:"img"`   // base64 encoded image
	Model string `json:"model"` // "hog" or "cnn"
}

// EncodingsResponse from POST /encodings
type EncodingsResponse struct {
	Encodings [][]float64 `json:"encodings"`
}
