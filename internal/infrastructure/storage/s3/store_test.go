package s3

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/internintelligence/portfolio-api/internal/core/ports"
)

type fakePutter struct {
	inputs []*s3.PutObjectInput
	bodies []string
	err    error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, _ := io.ReadAll(in.Body)
	f.inputs = append(f.inputs, in)
	f.bodies = append(f.bodies, string(body))
	return &s3.PutObjectOutput{}, nil
}

func textUpload(name, contentType, body string) ports.Upload {
	return ports.Upload{
		Filename:    name,
		ContentType: contentType,
		Size:        int64(len(body)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(body)), nil
		},
	}
}

func TestStore_Upload(t *testing.T) {
	putter := &fakePutter{}
	store := newStore(putter, Config{Bucket: "portfolio", PublicBaseURL: "https://cdn.example.com/"})
	store.newKey = func() string { return "fixed" }

	url, err := store.Upload(context.Background(), "products", textUpload("Shot.PNG", "image/png", "pixels"))
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/products/fixed.png", url)
	require.Len(t, putter.inputs, 1)
	assert.Equal(t, "portfolio", aws.ToString(putter.inputs[0].Bucket))
	assert.Equal(t, "products/fixed.png", aws.ToString(putter.inputs[0].Key))
	assert.Equal(t, "image/png", aws.ToString(putter.inputs[0].ContentType))
	assert.Equal(t, "pixels", putter.bodies[0])
}

func TestStore_UploadGuessesContentType(t *testing.T) {
	putter := &fakePutter{}
	store := newStore(putter, Config{Bucket: "portfolio", Region: "eu-west-1"})

	url, err := store.Upload(context.Background(), "skills", textUpload("go.svg", "", "<svg/>"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "https://portfolio.s3.eu-west-1.amazonaws.com/skills/"))
	assert.True(t, strings.HasSuffix(url, ".svg"))
	assert.Equal(t, "image/svg+xml", aws.ToString(putter.inputs[0].ContentType))
}

func TestStore_UploadErrors(t *testing.T) {
	store := newStore(&fakePutter{err: errors.New("access denied")}, Config{Bucket: "portfolio"})
	_, err := store.Upload(context.Background(), "about", textUpload("me.jpg", "image/jpeg", "x"))
	assert.ErrorContains(t, err, "access denied")

	broken := ports.Upload{
		Filename: "me.jpg",
		Open:     func() (io.ReadCloser, error) { return nil, errors.New("gone") },
	}
	_, err = store.Upload(context.Background(), "about", broken)
	assert.ErrorContains(t, err, "open upload")
}

func TestPublicBaseURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"explicit", Config{Bucket: "b", PublicBaseURL: "https://cdn.test/"}, "https://cdn.test"},
		{"custom endpoint", Config{Bucket: "b", Endpoint: "http://localhost:9000/"}, "http://localhost:9000/b"},
		{"aws", Config{Bucket: "b", Region: "us-east-1"}, "https://b.s3.us-east-1.amazonaws.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, publicBaseURL(tt.cfg))
		})
	}
}
