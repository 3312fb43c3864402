package smtp

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/textproto"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/deadline/pkg/mailer"
)

// buildMessage renders email as an RFC 5322 message.
// Text-only emails are a single quoted-printable part; emails with HTML
// become multipart/alternative.
func buildMessage(from, domain string, email *mailer.Email, now time.Time) ([]byte, error) {
	var buf bytes.Buffer

	h := textproto.MIMEHeader{}
	h.Set("From", from)
	h.Set("To", strings.Join(email.To, ", "))
	if len(email.CC) > 0 {
		h.Set("Cc", strings.Join(email.CC, ", "))
	}
	if email.ReplyTo != "" {
		h.Set("Reply-To", email.ReplyTo)
	}
	h.Set("Subject", mime.BEncoding.Encode("UTF-8", email.Subject))
	h.Set("Date", now.Format(time.RFC1123Z))
	h.Set("Message-ID", fmt.Sprintf("<%s@%s>", uuid.NewString(), domain))
	h.Set("MIME-Version", "1.0")
	for k, v := range email.Headers {
		h.Set(k, v)
	}

	if email.HTML == "" {
		h.Set("Content-Type", "text/plain; charset=utf-8")
		h.Set("Content-Transfer-Encoding", "quoted-printable")
		writeHeader(&buf, h)
		if err := writeQP(&buf, email.Text); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	h.Set("Content-Type", "multipart/alternative; boundary="+mw.Boundary())
	writeHeader(&buf, h)

	parts := []struct{ contentType, content string }{
		{"text/plain; charset=utf-8", email.Text},
		{"text/html; charset=utf-8", email.HTML},
	}
	for _, p := range parts {
		if p.content == "" {
			continue
		}
		w, err := mw.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {p.contentType},
			"Content-Transfer-Encoding": {"quoted-printable"},
		})
		if err != nil {
			return nil, err
		}
		if err := writeQP(w, p.content); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	buf.Write(body.Bytes())
	return buf.Bytes(), nil
}

func writeHeader(w *bytes.Buffer, h textproto.MIMEHeader) {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range h[k] {
			fmt.Fprintf(w, "%s: %s\r\n", k, v)
		}
	}
	w.WriteString("\r\n")
}

func writeQP(w io.Writer, s string) error {
	qp := quotedprintable.NewWriter(w)
	if _, err := io.WriteString(qp, strings.ReplaceAll(s, "\n", "\r\n")); err != nil {
		return err
	}
	return qp.Close()
}
