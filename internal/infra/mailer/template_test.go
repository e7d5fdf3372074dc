//go:build unit

package mailer

import (
	"testing"

	"alert-engine/internal/domain/posting"
	"alert-engine/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDigest(t *testing.T) {
	t.Run("single posting", func(t *testing.T) {
		post := builder.NewPostingBuilder().Build()

		html, err := renderDigest("Asha", []*posting.Posting{post})
		require.NoError(t, err)

		assert.Contains(t, html, "Hello Asha,")
		assert.Contains(t, html, "1 new job matching your alert")
		assert.Contains(t, html, "React Developer")
		assert.Contains(t, html, "Acme")
		assert.Contains(t, html, "Bangalore, India")
		assert.Contains(t, html, post.ApplyURL)
	})

	t.Run("plural phrasing", func(t *testing.T) {
		posts := []*posting.Posting{
			builder.NewPostingBuilder().Build(),
			builder.NewPostingBuilder().WithTitle("Senior React Developer").Build(),
		}

		html, err := renderDigest("Asha", posts)
		require.NoError(t, err)

		assert.Contains(t, html, "2 new jobs matching your alert")
		assert.Contains(t, html, "Senior React Developer")
	})

	t.Run("optional fields are omitted when empty", func(t *testing.T) {
		post := builder.NewPostingBuilder().
			WithLocation("").
			WithExperience("").
			Build()
		post.ApplyURL = ""
		post.EmploymentType = ""

		html, err := renderDigest("Asha", []*posting.Posting{post})
		require.NoError(t, err)

		assert.NotContains(t, html, "📍")
		assert.NotContains(t, html, "🕒")
		assert.NotContains(t, html, "💼")
		assert.NotContains(t, html, "View job")
	})

	t.Run("titles are escaped", func(t *testing.T) {
		post := builder.NewPostingBuilder().
			WithTitle(`Engineer <script>alert("x")</script>`).
			Build()

		html, err := renderDigest("Asha", []*posting.Posting{post})
		require.NoError(t, err)

		assert.NotContains(t, html, "<script>")
	})
}
