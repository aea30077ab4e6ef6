package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderBody(t *testing.T) {
	t.Run("converts newlines to br tags", func(t *testing.T) {
		html := RenderBody("", "Drive Update", "line one\nline two\nline three")

		assert.Contains(t, html, "line one<br>line two<br>line three")
		assert.Contains(t, html, "<h2 style=\"color: #333;\">Drive Update</h2>")
		assert.NotContains(t, html, "<img")
	})

	t.Run("escapes html in body before conversion", func(t *testing.T) {
		html := RenderBody("", "Hi", "<script>alert(1)</script>\nnext")

		assert.NotContains(t, html, "<script>")
		assert.Contains(t, html, "&lt;script&gt;")
		assert.Contains(t, html, "<br>next")
	})

	t.Run("includes banner when configured", func(t *testing.T) {
		html := RenderBody("https://cdn.example.edu/banner.png", "Hi", "body")

		assert.Contains(t, html, `<img src="https://cdn.example.edu/banner.png"`)
	})
}
