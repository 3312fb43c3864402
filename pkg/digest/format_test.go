package digest_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/deadline/pkg/digest"
	"github.com/dmitrymomot/deadline/pkg/schedule"
)

var today = schedule.NewDate(2025, time.August, 1)

func alert(person, brand, item string, delta int) schedule.Alert {
	return schedule.Alert{
		Person: person,
		Brand:  brand,
		Item:   item,
		Due:    today.AddDays(delta),
		Delta:  delta,
	}
}

func TestFormatter_Subject(t *testing.T) {
	t.Parallel()
	require.Equal(t, "[縫製納期アラート]", digest.New().Subject("縫製納期"))
}

func TestFormatter_Text_Empty(t *testing.T) {
	t.Parallel()

	f := digest.New()
	want := "【量産納期アラート】\n\n該当する品番はありません。"
	require.Equal(t, want, f.Text("量産納期", nil))
	require.Equal(t, want, f.Text("量産納期", []schedule.Alert{}))
}

func TestFormatter_Text(t *testing.T) {
	t.Parallel()

	alerts := []schedule.Alert{
		alert("山田", "BRAND-A", "A-1", 7),
		alert("佐藤", "BRAND-B", "B-1", -2),
		alert("山田", "BRAND-C", "C-1", -1),
		alert("山田", "BRAND-A", "A-2", 7),
	}

	want := strings.Join([]string{
		"【縫製納期アラート】",
		"",
		"【担当: 山田】",
		"*〔BRAND-A〕*",
		"• 品番: A-1 — 出荷まで 7 日 (2025-08-08)",
		"• 品番: A-2 — 出荷まで 7 日 (2025-08-08)",
		"",
		"*〔BRAND-C〕*",
		"⚠️ 品番: C-1 — 出荷日超過 1 日 (2025-07-31)",
		"",
		"",
		"【担当: 佐藤】",
		"*〔BRAND-B〕*",
		"⚠️ 品番: B-1 — 出荷日超過 2 日 (2025-07-30)",
		"",
		"",
	}, "\n")

	require.Equal(t, want, digest.New().Text("縫製納期", alerts))
}

func TestFormatter_Text_Placeholder(t *testing.T) {
	t.Parallel()

	body := digest.New().Text("生産職出し", []schedule.Alert{alert(" ", "", "", 1)})
	require.Contains(t, body, "【担当: 不明】")
	require.Contains(t, body, "*〔不明〕*")
	require.Contains(t, body, "• 品番: 不明 — 出荷まで 1 日 (2025-08-02)")
}

func TestFormatter_Text_StableOrder(t *testing.T) {
	t.Parallel()

	body := digest.New().Text("x", []schedule.Alert{
		alert("p", "b", "FIRST", 7),
		alert("p", "b", "SECOND", -1),
	})
	require.Less(t, strings.Index(body, "FIRST"), strings.Index(body, "SECOND"))
}

func TestFormatter_WithMessages(t *testing.T) {
	t.Parallel()

	msgs := digest.Messages{
		Subject:     "%s alert",
		Header:      "%s alert",
		Empty:       "No matching items.",
		Person:      "Owner: %s",
		Brand:       "Brand: %s",
		Upcoming:    "- %s: %d days until due (%s)",
		Overdue:     "! %s: overdue by %d days (%s)",
		Placeholder: "unknown",
	}
	f := digest.New(digest.WithMessages(msgs))

	require.Equal(t, "Sewing alert\n\nNo matching items.", f.Text("Sewing", nil))

	body := f.Text("Sewing", []schedule.Alert{
		alert("p", "b", "ABC123", 7),
		alert("p", "b", "XYZ789", -2),
	})
	require.Contains(t, body, "- ABC123: 7 days until due (2025-08-08)")
	require.Contains(t, body, "! XYZ789: overdue by 2 days (2025-07-30)")
}
