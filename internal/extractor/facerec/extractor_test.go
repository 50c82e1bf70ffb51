package facerec

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gianca04/face-recognition/internal/domain"
)

func newTestExtractor(t *testing.T, encodings [][]float64, status int) (*Extractor, func()) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(EncodingsResponse{Encodings: encodings})
	}))

	config := DefaultConfig()
	config.BaseURL = server.URL
	config.RetryCount = 0

	return New(config), server.Close
}

func TestExtractor_ExtractAll(t *testing.T) {
	tests := []struct {
		name      string
		encodings [][]float64
		want      int
	}{
		{
			name:      "no faces yields empty slice not error",
			encodings: [][]float64{},
			want:      0,
		},
		{
			name:      "one face",
			encodings: [][]float64{make([]float64, 128)},
			want:      1,
		},
		{
			name:      "many faces",
			encodings: [][]float64{make([]float64, 128), make([]float64, 128), make([]float64, 128)},
			want:      3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, cleanup := newTestExtractor(t, tt.encodings, http.StatusOK)
			defer cleanup()

			embeddings, err := e.ExtractAll(context.Background(), []byte("image-bytes"))
			require.NoError(t, err)
			assert.Len(t, embeddings, tt.want)
			for _, emb := range embeddings {
				assert.Len(t, emb, 128)
			}
		})
	}
}

func TestExtractor_ExtractAll_BadDimension(t *testing.T) {
	e, cleanup := newTestExtractor(t, [][]float64{make([]float64, 512)}, http.StatusOK)
	defer cleanup()

	_, err := e.ExtractAll(context.Background(), []byte("image-bytes"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadDimension)
}

func TestExtractor_ExtractOne(t *testing.T) {
	tests := []struct {
		name      string
		encodings [][]float64
		wantErr   error
	}{
		{
			name:      "exactly one face succeeds",
			encodings: [][]float64{make([]float64, 128)},
			wantErr:   nil,
		},
		{
			name:      "zero faces",
			encodings: [][]float64{},
			wantErr:   domain.ErrNoFaceDetected,
		},
		{
			name:      "multiple faces",
			encodings: [][]float64{make([]float64, 128), make([]float64, 128)},
			wantErr:   domain.ErrMultipleFaces,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, cleanup := newTestExtractor(t, tt.encodings, http.StatusOK)
			defer cleanup()

			embedding, err := e.ExtractOne(context.Background(), []byte("image-bytes"))

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, embedding)
				return
			}

			require.NoError(t, err)
			assert.Len(t, embedding, 128)
		})
	}
}

func TestExtractor_InvalidImageMapsToAppError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "cannot decode image", http.StatusBadRequest)
	}))
	defer server.Close()

	config := DefaultConfig()
	config.BaseURL = server.URL
	config.RetryCount = 0

	e := New(config)
	_, err := e.ExtractAll(context.Background(), []byte("not-an-image"))

	var appErr *domain.AppError
	require.Error(t, err)
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domain.ErrInvalidImage.Code, appErr.Code)
}
