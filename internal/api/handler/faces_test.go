package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gianca04/face-recognition/internal/domain"
)

// MockFaceRegistry is a mock implementation of FaceRegistry
type MockFaceRegistry struct {
	mock.Mock
}

func (m *MockFaceRegistry) Add(ctx context.Context, scope, id string, image []byte) error {
	args := m.Called(ctx, scope, id, image)
	return args.Error(0)
}

func (m *MockFaceRegistry) Remove(ctx context.Context, scope, id string) error {
	args := m.Called(ctx, scope, id)
	return args.Error(0)
}

func (m *MockFaceRegistry) List(ctx context.Context, scope string) ([]string, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func TestFacesHandler_List(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*MockFaceRegistry)
		expectedStatus int
		wantFaces      []string
	}{
		{
			name: "lists registered identifiers",
			setupMock: func(m *MockFaceRegistry) {
				m.On("List", mock.Anything, "").Return([]string{"alice", "bob"}, nil)
			},
			expectedStatus: 200,
			wantFaces:      []string{"alice", "bob"},
		},
		{
			name: "empty registry yields empty list",
			setupMock: func(m *MockFaceRegistry) {
				m.On("List", mock.Anything, "").Return(nil, nil)
			},
			expectedStatus: 200,
			wantFaces:      []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRegistry := &MockFaceRegistry{}
			tt.setupMock(mockRegistry)

			handler := NewFacesHandler(mockRegistry, testLogger())
			app := createTestApp()
			app.Get("/v1/faces", handler.List)

			req := httptest.NewRequest("GET", "/v1/faces", nil)
			resp, err := app.Test(req)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			body, _ := io.ReadAll(resp.Body)
			var result ListResponse
			assert.NoError(t, json.Unmarshal(body, &result))
			assert.Equal(t, tt.wantFaces, result.Faces)

			mockRegistry.AssertExpectations(t)
		})
	}
}

func TestFacesHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		withImage      bool
		setupMock      func(*MockFaceRegistry)
		expectedStatus int
	}{
		{
			name:      "successful registration",
			id:        "alice",
			withImage: true,
			setupMock: func(m *MockFaceRegistry) {
				m.On("Add", mock.Anything, "", "alice", mock.Anything).Return(nil)
			},
			expectedStatus: 201,
		},
		{
			name:           "missing id",
			id:             "",
			withImage:      true,
			setupMock:      func(m *MockFaceRegistry) {},
			expectedStatus: 422,
		},
		{
			name:           "missing image",
			id:             "alice",
			withImage:      false,
			setupMock:      func(m *MockFaceRegistry) {},
			expectedStatus: 422,
		},
		{
			name:      "reference image has no face",
			id:        "alice",
			withImage: true,
			setupMock: func(m *MockFaceRegistry) {
				m.On("Add", mock.Anything, "", "alice", mock.Anything).Return(domain.ErrNoFaceDetected)
			},
			expectedStatus: 422,
		},
		{
			name:      "reference image has many faces",
			id:        "alice",
			withImage: true,
			setupMock: func(m *MockFaceRegistry) {
				m.On("Add", mock.Anything, "", "alice", mock.Anything).Return(domain.ErrMultipleFaces)
			},
			expectedStatus: 422,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRegistry := &MockFaceRegistry{}
			tt.setupMock(mockRegistry)

			handler := NewFacesHandler(mockRegistry, testLogger())
			app := createTestApp()
			app.Post("/v1/faces", handler.Register)

			fields := map[string]string{}
			if tt.id != "" {
				fields["id"] = tt.id
			}
			var imageContent []byte
			if tt.withImage {
				imageContent = pngImage(t)
			}
			body, contentType, _ := createMultipartRequest(fields, imageContent, "image/png")

			req := httptest.NewRequest("POST", "/v1/faces", body)
			req.Header.Set("Content-Type", contentType)

			resp, err := app.Test(req)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			mockRegistry.AssertExpectations(t)
		})
	}
}

func TestFacesHandler_Delete(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		setupMock      func(*MockFaceRegistry)
		expectedStatus int
	}{
		{
			name: "successful removal",
			id:   "alice",
			setupMock: func(m *MockFaceRegistry) {
				m.On("Remove", mock.Anything, "", "alice").Return(nil)
			},
			expectedStatus: 204,
		},
		{
			name: "unknown identifier",
			id:   "ghost",
			setupMock: func(m *MockFaceRegistry) {
				m.On("Remove", mock.Anything, "", "ghost").Return(domain.ErrFaceNotFound)
			},
			expectedStatus: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRegistry := &MockFaceRegistry{}
			tt.setupMock(mockRegistry)

			handler := NewFacesHandler(mockRegistry, testLogger())
			app := createTestApp()
			app.Delete("/v1/faces/:id", handler.Delete)

			req := httptest.NewRequest("DELETE", "/v1/faces/"+tt.id, nil)
			resp, err := app.Test(req)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			mockRegistry.AssertExpectations(t)
		})
	}
}
