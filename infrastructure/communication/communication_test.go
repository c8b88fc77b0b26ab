package communication

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"net/mail"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEmailBuffer(t *testing.T) {
	content := bytes.Repeat([]byte("xlsx"), 100)
	buf, err := BuildEmailBuffer(&EmailInfo{
		From:    "hr@hrdesk.co.kr",
		To:      []string{"kim@hrdesk.co.kr"},
		Subject: "출장 여비 정산서",
		Text:    "첨부 파일을 확인해주세요.",
		Attachments: []Attachment{{
			Filename:    "expense_report_E100_2025-03-02.xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Content:     content,
		}},
	})
	require.NoError(t, err)

	msg, err := mail.ReadMessage(buf)
	require.NoError(t, err)

	subject, err := new(mime.WordDecoder).DecodeHeader(msg.Header.Get("Subject"))
	require.NoError(t, err)
	assert.Equal(t, "출장 여비 정산서", subject)
	assert.Equal(t, "kim@hrdesk.co.kr", msg.Header.Get("To"))

	mediaType, params, err := mime.ParseMediaType(msg.Header.Get("Content-Type"))
	require.NoError(t, err)
	assert.Equal(t, "multipart/mixed", mediaType)

	reader := multipart.NewReader(msg.Body, params["boundary"])

	alt, err := reader.NextPart()
	require.NoError(t, err)
	assert.Contains(t, alt.Header.Get("Content-Type"), "multipart/alternative")

	att, err := reader.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "base64", att.Header.Get("Content-Transfer-Encoding"))
	assert.Equal(t, "expense_report_E100_2025-03-02.xlsx", att.FileName())

	_, err = reader.NextPart()
	assert.ErrorIs(t, err, io.EOF)
}

func TestSlackWithoutToken(t *testing.T) {
	s := NewSlack("", SlackOption{InfoChannelID: "C1"})
	assert.False(t, s.Enabled())
	assert.NoError(t, s.Info("started"))
	assert.NoError(t, s.Error("failed"))

	var nilSlack *Slack
	assert.False(t, nilSlack.Enabled())
}
