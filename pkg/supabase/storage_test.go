package supabase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/savioruz/turfics/pkg/supabase/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const endpoint = "https://proj.supabase.co/storage/v1/s3"

func TestUpload(t *testing.T) {
	t.Run("success: returns the public url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mock.NewMockObjectAPI(ctrl)
		c := NewWithAPI(api, "turfics", endpoint)

		api.EXPECT().PutObject(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
				assert.Equal(t, "turfics", *in.Bucket)
				assert.True(t, strings.HasPrefix(*in.Key, "invoices/"))
				assert.True(t, strings.HasSuffix(*in.Key, ".pdf"))
				assert.Equal(t, "application/pdf", *in.ContentType)

				return &s3.PutObjectOutput{}, nil
			})

		url, err := c.Upload(context.Background(), InvoicesStoragePath, "pdf", "application/pdf", strings.NewReader("%PDF-"))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, "https://proj.supabase.co/storage/v1/object/public/turfics/invoices/"))
	})

	t.Run("error: put fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mock.NewMockObjectAPI(ctrl)
		c := NewWithAPI(api, "turfics", endpoint)

		api.EXPECT().PutObject(gomock.Any(), gomock.Any()).Return(nil, errors.New("denied"))

		_, err := c.Upload(context.Background(), PostersStoragePath, ".pdf", "", strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrFailedToUploadFile)
	})
}

func TestDelete(t *testing.T) {
	t.Run("success: deletes by key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mock.NewMockObjectAPI(ctrl)
		c := NewWithAPI(api, "turfics", endpoint)

		api.EXPECT().DeleteObject(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
				assert.Equal(t, "posters/a.pdf", *in.Key)

				return &s3.DeleteObjectOutput{}, nil
			})

		require.NoError(t, c.Delete(context.Background(), c.GetPublicURL("posters/a.pdf")))
	})

	t.Run("error: url outside the bucket", func(t *testing.T) {
		c := NewWithAPI(mock.NewMockObjectAPI(gomock.NewController(t)), "turfics", endpoint)

		assert.ErrorIs(t, c.Delete(context.Background(), "https://elsewhere/x"), ErrInvalidFileURL)
	})
}
