package digest_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/deadline/pkg/digest"
	"github.com/dmitrymomot/deadline/pkg/schedule"
)

func TestHTMLRenderer_Render(t *testing.T) {
	t.Parallel()

	text := digest.New().Text("縫製納期", []schedule.Alert{
		alert("山田", "BRAND-A", "A-1", 7),
		alert("山田", "BRAND-A", "A-2", -1),
	})

	out, err := digest.NewHTMLRenderer().Render(text)
	require.NoError(t, err)
	require.Contains(t, out, "<!DOCTYPE html>")
	require.Contains(t, out, "縫製納期アラート")
	require.Contains(t, out, "BRAND-A")
	require.Contains(t, out, "A-1")
	require.Contains(t, out, "<br")
}

func TestHTMLRenderer_StripsMarkup(t *testing.T) {
	t.Parallel()

	text := digest.New().Text("x", []schedule.Alert{
		alert("p", "b", `<script>alert(1)</script>`, 7),
		alert("p", "b", `<img src=x onerror=alert(2)>`, 7),
	})

	out, err := digest.NewHTMLRenderer().Render(text)
	require.NoError(t, err)
	require.NotContains(t, out, "<script")
	require.NotContains(t, out, "<img")
}
