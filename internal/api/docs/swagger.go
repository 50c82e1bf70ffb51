package docs

import (
	"github.com/go-swagno/swagno"
	"github.com/go-swagno/swagno/components/endpoint"
	"github.com/go-swagno/swagno/components/http/response"
	"github.com/go-swagno/swagno/components/mime"
	"github.com/go-swagno/swagno/components/parameter"
)

// MatchResult represents a single known face matched within the threshold
type MatchResult struct {
	ID       string  `json:"id" example:"alice"`
	Distance float64 `json:"dist" example:"0.42"`
}

// RecognizeResponse represents the result of a recognition request
type RecognizeResponse struct {
	DetectedCount      int           `json:"detected_count" example:"3"`
	Matches            []MatchResult `json:"matches"`
	AttendanceReported bool          `json:"attendance_reported" example:"true"`
	CapturedAt         string        `json:"captured_at" example:"2026-03-14T09:30:00Z"`
}

// EncodingResponse represents the encoding of a single-face image
type EncodingResponse struct {
	Encoding []float64 `json:"encoding"`
}

// ListFacesResponse represents the registered face identifiers
type ListFacesResponse struct {
	Faces []string `json:"faces" example:"alice,bob"`
}

// RegisterFaceResponse represents the response for a successful registration
type RegisterFaceResponse struct {
	ID string `json:"id" example:"alice"`
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Code    string `json:"code" example:"VALIDATION_FAILED"`
	Message string `json:"message" example:"Request validation failed"`
}

// EmptyResponse represents no content response (204)
type EmptyResponse struct{}

// NewSwagger creates and configures the Swagger documentation
func NewSwagger() *swagno.Swagger {
	sw := swagno.New(swagno.Config{
		Title:       "Face Recognition API",
		Version:     "v1.0.0",
		Description: "Face-matching and attendance-reporting service: identifies known people in a photograph and reports them as present to the attendance API",
		Host:        "localhost:8080",
		Path:        "/v1",
	})

	endpoints := []*endpoint.EndPoint{
		// POST /v1/recognize - Recognize faces in a capture
		endpoint.New(
			endpoint.POST,
			"/recognize",
			endpoint.WithTags("Recognition"),
			endpoint.WithSummary("Recognize known faces in a photograph"),
			endpoint.WithDescription("Extracts every face in the image, matches each one against the known faces of the given context and reports everyone recognized as present."),
			endpoint.WithConsume([]mime.MIME{mime.MIME("multipart/form-data")}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(RecognizeResponse{}, "200", "Recognition completed successfully"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "VALIDATION_FAILED", Message: "context_id is required"}, "422", "Unprocessable Entity"),
				response.New(ErrorResponse{Code: "INVALID_IMAGE", Message: "Invalid or corrupted image"}, "422", "Unprocessable Entity"),
				response.New(ErrorResponse{Code: "UPSTREAM_UNAVAILABLE", Message: "Known faces could not be loaded"}, "502", "Bad Gateway"),
				response.New(ErrorResponse{Code: "INTERNAL_ERROR", Message: "An unexpected error occurred"}, "500", "Internal Server Error"),
			}),
		),

		// POST /v1/encoding - Compute the encoding of a single face
		endpoint.New(
			endpoint.POST,
			"/encoding",
			endpoint.WithTags("Recognition"),
			endpoint.WithSummary("Compute the face encoding of an image"),
			endpoint.WithDescription("Returns the encoding vector of the single face in the image. Images with zero or more than one face are rejected."),
			endpoint.WithConsume([]mime.MIME{mime.MIME("multipart/form-data")}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(EncodingResponse{}, "200", "Encoding computed successfully"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "NO_FACE_DETECTED", Message: "No face detected in image"}, "422", "Unprocessable Entity"),
				response.New(ErrorResponse{Code: "MULTIPLE_FACES", Message: "Multiple faces detected"}, "422", "Unprocessable Entity"),
				response.New(ErrorResponse{Code: "INVALID_IMAGE", Message: "Invalid or corrupted image"}, "422", "Unprocessable Entity"),
				response.New(ErrorResponse{Code: "INTERNAL_ERROR", Message: "An unexpected error occurred"}, "500", "Internal Server Error"),
			}),
		),

		// GET /v1/faces - List registered faces
		endpoint.New(
			endpoint.GET,
			"/faces",
			endpoint.WithTags("Faces"),
			endpoint.WithSummary("List registered face identifiers"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithParams(
				parameter.StrParam("scope", parameter.Query, parameter.WithDescription("Enrollment scope (ignored by the local registry)")),
			),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(ListFacesResponse{}, "200", "Identifiers retrieved successfully"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "INTERNAL_ERROR", Message: "An unexpected error occurred"}, "500", "Internal Server Error"),
			}),
		),

		// POST /v1/faces - Register a known face
		endpoint.New(
			endpoint.POST,
			"/faces",
			endpoint.WithTags("Faces"),
			endpoint.WithSummary("Register or replace a known face"),
			endpoint.WithDescription("Stores the reference image under the given identifier and computes its encoding. A prior entry with the same identifier is replaced."),
			endpoint.WithConsume([]mime.MIME{mime.MIME("multipart/form-data")}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(RegisterFaceResponse{}, "201", "Face registered successfully"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "VALIDATION_FAILED", Message: "id is required"}, "422", "Unprocessable Entity"),
				response.New(ErrorResponse{Code: "NO_FACE_DETECTED", Message: "No face detected in image"}, "422", "Unprocessable Entity"),
				response.New(ErrorResponse{Code: "MULTIPLE_FACES", Message: "Multiple faces detected"}, "422", "Unprocessable Entity"),
				response.New(ErrorResponse{Code: "INTERNAL_ERROR", Message: "An unexpected error occurred"}, "500", "Internal Server Error"),
			}),
		),

		// DELETE /v1/faces/:id - Remove a known face
		endpoint.New(
			endpoint.DELETE,
			"/faces/{id}",
			endpoint.WithTags("Faces"),
			endpoint.WithSummary("Remove a registered face"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithParams(
				parameter.StrParam("id", parameter.Path, parameter.WithDescription("Face identifier")),
			),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(EmptyResponse{}, "204", "Face removed successfully"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "FACE_NOT_FOUND", Message: "Face not found"}, "404", "Not Found"),
				response.New(ErrorResponse{Code: "INTERNAL_ERROR", Message: "An unexpected error occurred"}, "500", "Internal Server Error"),
			}),
		),
	}

	sw.AddEndpoints(endpoints)

	return sw
}
