package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"animal-rescue/internal/ports/blob"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObject struct {
	data        []byte
	contentType string
}

type fakeS3 struct {
	objects map[string]fakeObject
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string]fakeObject{}}
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = fakeObject{data: data, contentType: aws.ToString(in.ContentType)}
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	obj, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{
		Body:          io.NopCloser(bytes.NewReader(obj.data)),
		ContentLength: aws.Int64(int64(len(obj.data))),
		ContentType:   aws.String(obj.contentType),
	}, nil
}

func (f *fakeS3) HeadObject(ctx context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	obj, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, errors.New("not found")
	}
	return &s3.HeadObjectOutput{
		ContentLength: aws.Int64(int64(len(obj.data))),
		ContentType:   aws.String(obj.contentType),
	}, nil
}

func TestStore_PutThenGet(t *testing.T) {
	st := NewWithClient(newFakeS3(), "rescue-images")
	ctx := context.Background()

	info, err := st.Put(ctx, "reports/x.png", strings.NewReader("png"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, int64(3), info.Size)
	assert.Equal(t, "image/png", info.ContentType)

	got, rc, err := st.Get(ctx, "reports/x.png")
	require.NoError(t, err)
	defer rc.Close()
	body, _ := io.ReadAll(rc)
	assert.Equal(t, "png", string(body))
	assert.Equal(t, "image/png", got.ContentType)
}

func TestStore_PutIsCreateOnly(t *testing.T) {
	st := NewWithClient(newFakeS3(), "rescue-images")
	ctx := context.Background()

	_, err := st.Put(ctx, "k", strings.NewReader("1"), "")
	require.NoError(t, err)
	_, err = st.Put(ctx, "k", strings.NewReader("2"), "")
	assert.Error(t, err)
}

func TestStore_GetMissingMapsToNotFound(t *testing.T) {
	st := NewWithClient(newFakeS3(), "rescue-images")
	_, _, err := st.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, blob.ErrNotFound)
}

func TestNew_RequiresBucket(t *testing.T) {
	_, err := New(context.Background(), Config{})
	assert.Error(t, err)
}
