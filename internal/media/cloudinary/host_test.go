package cloudinary

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/machinery-catalog/internal/app/product/contracts"
	"github.com/light-bringer/machinery-catalog/internal/app/product/domain"
)

type fakeAPI struct {
	uploadParams  uploader.UploadParams
	uploadBody    []byte
	uploadResult  *uploader.UploadResult
	uploadErr     error
	destroyParams uploader.DestroyParams
	destroyResult *uploader.DestroyResult
	destroyErr    error
}

func (f *fakeAPI) Upload(_ context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error) {
	f.uploadParams = params
	if r, ok := file.(io.Reader); ok {
		f.uploadBody, _ = io.ReadAll(r)
	}
	return f.uploadResult, f.uploadErr
}

func (f *fakeAPI) Destroy(_ context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error) {
	f.destroyParams = params
	return f.destroyResult, f.destroyErr
}

func TestHost_Upload(t *testing.T) {
	fake := &fakeAPI{uploadResult: &uploader.UploadResult{
		SecureURL: "https://res.cloudinary.com/demo/video/upload/products/product_1.mp4",
		PublicID:  "products/product_1",
	}}
	host := newHost(fake, "")

	res, err := host.Upload(context.Background(), contracts.UploadInput{
		Data:     []byte("video"),
		PublicID: "products/product_1",
		Kind:     domain.MediaVideo,
	})
	require.NoError(t, err)

	assert.Equal(t, "products/product_1", res.AssetID)
	assert.Equal(t, "https://res.cloudinary.com/demo/video/upload/products/product_1.mp4", res.URL)
	assert.Equal(t, "product_1", fake.uploadParams.PublicID, "folder prefix is not repeated")
	assert.Equal(t, DefaultFolder, fake.uploadParams.Folder)
	assert.Equal(t, "video", fake.uploadParams.ResourceType)
	assert.Equal(t, []byte("video"), fake.uploadBody)
}

func TestHost_UploadErrors(t *testing.T) {
	tests := []struct {
		name string
		api  *fakeAPI
	}{
		{"transport error", &fakeAPI{uploadErr: errors.New("timeout")}},
		{"api error", &fakeAPI{uploadResult: &uploader.UploadResult{Error: api.ErrorResp{Message: "Invalid image file"}}}},
		{"no url", &fakeAPI{uploadResult: &uploader.UploadResult{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := newHost(tt.api, "products")
			_, err := host.Upload(context.Background(), contracts.UploadInput{Data: []byte("x"), PublicID: "p", Kind: domain.MediaImage})
			assert.Error(t, err)
		})
	}
}

func TestHost_Delete(t *testing.T) {
	tests := []struct {
		name    string
		result  *uploader.DestroyResult
		err     error
		wantErr bool
	}{
		{"ok", &uploader.DestroyResult{Result: "ok"}, nil, false},
		{"already gone", &uploader.DestroyResult{Result: "not found"}, nil, false},
		{"unexpected result", &uploader.DestroyResult{Result: "error"}, nil, true},
		{"api error", &uploader.DestroyResult{Error: api.ErrorResp{Message: "denied"}}, nil, true},
		{"transport error", nil, errors.New("timeout"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeAPI{destroyResult: tt.result, destroyErr: tt.err}
			host := newHost(fake, "products")

			err := host.Delete(context.Background(), "products/old123", domain.MediaImage)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, "products/old123", fake.destroyParams.PublicID)
			assert.Equal(t, "image", fake.destroyParams.ResourceType)
		})
	}
}
