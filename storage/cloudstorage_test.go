package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jumptake/backend/apperror"
	"github.com/jumptake/backend/config"
)

func TestResumeObjectName(t *testing.T) {
	name := resumeObjectName("../../etc/My CV.PDF", time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC))

	assert.Regexp(t, `^resumes/2024/03/[0-9a-f-]{36}\.pdf$`, name)
	assert.NotEqual(t, name, resumeObjectName("My CV.PDF", time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)))
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "application/pdf", contentTypeFor("cv.PDF"))
	assert.Equal(t, "text/plain; charset=utf-8", contentTypeFor("cv.txt"))
	assert.Equal(t, "application/octet-stream", contentTypeFor("cv"))
}

func TestObjectURL(t *testing.T) {
	assert.Equal(t, "https://storage.googleapis.com/cv-bucket/resumes/2024/03/a.pdf",
		objectURL("cv-bucket", "resumes/2024/03/a.pdf"))
}

func TestNewCloudStorageClientRequiresBucket(t *testing.T) {
	_, err := NewCloudStorageClient(context.Background(), &config.Config{})

	assert.Equal(t, apperror.Configuration, apperror.KindOf(err))
}
