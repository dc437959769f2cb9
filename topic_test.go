package devdocs_test

import (
	"testing"

	"github.com/fwojciec/devdocs"
	"github.com/stretchr/testify/assert"
)

func TestTopic_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid topic passes", func(t *testing.T) {
		t.Parallel()

		topic := &devdocs.Topic{
			Name:      "Laravel Docs",
			SourceURL: "https://github.com/laravel/docs",
		}

		assert.NoError(t, topic.Validate())
	})

	t.Run("missing name fails", func(t *testing.T) {
		t.Parallel()

		topic := &devdocs.Topic{SourceURL: "https://github.com/laravel/docs"}

		err := topic.Validate()
		assert.Equal(t, devdocs.EINVALID, devdocs.ErrorCode(err))
	})

	t.Run("missing source URL fails", func(t *testing.T) {
		t.Parallel()

		topic := &devdocs.Topic{Name: "Laravel Docs"}

		err := topic.Validate()
		assert.Equal(t, devdocs.EINVALID, devdocs.ErrorCode(err))
	})
}
