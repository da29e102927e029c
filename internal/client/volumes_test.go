package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	internalhttp "github.com/k5ops/k5go/internal/http"
	"github.com/k5ops/k5go/pkg/k5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVolumesClient_GetInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/"+testProjectID+"/volumes/vol-1", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]k5.Volume{
			"volume": {
				ID:       "vol-1",
				Name:     "data",
				Status:   "available",
				Size:     100,
				Bootable: "false",
			},
		})
	}))
	defer server.Close()

	volumes := NewVolumesClient(internalhttp.NewClient(server.URL, nil), testProjectID)

	volume, err := volumes.GetInfo(context.Background(), "vol-1")
	require.NoError(t, err)
	assert.Equal(t, "data", volume.Name)
	assert.Equal(t, 100, volume.Size)
}

func TestVolumesClient_CloneToImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/"+testProjectID+"/volumes/vol-1/action", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var body struct {
			UploadImage map[string]interface{} `json:"os-volume_upload_image"`
		}

		err := json.NewDecoder(r.Body).Decode(&body)
		assert.NoError(t, err)
		assert.Equal(t, "data-image", body.UploadImage["image_name"])
		assert.Equal(t, "bare", body.UploadImage["container_format"])
		assert.Equal(t, "raw", body.UploadImage["disk_format"])
		assert.Equal(t, true, body.UploadImage["force"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(map[string]k5.VolumeUploadImage{
			"os-volume_upload_image": {
				ImageID:   "img-9",
				ImageName: "data-image",
				Status:    "uploading",
			},
		})
	}))
	defer server.Close()

	volumes := NewVolumesClient(internalhttp.NewClient(server.URL, nil), testProjectID)

	result, err := volumes.CloneToImage(context.Background(), "vol-1", "data-image")
	require.NoError(t, err)
	assert.Equal(t, "img-9", result.ImageID)
	assert.Equal(t, "uploading", result.Status)
}
