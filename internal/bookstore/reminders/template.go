package reminders

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/template"
	"time"
)

// MessageData is what an email template can reference, e.g.
// "Книга «{{.BookTitle}}» должна быть возвращена {{.EndDate}}".
type MessageData struct {
	UserID    string
	BookID    string
	BookTitle string
	EndDate   string // 02.01.2006
	DaysLeft  int
}

// ParseTemplate はテンプレート文字列を検証する。プレーンテキストもそのまま通る
func ParseTemplate(text string) (*template.Template, error) {
	t, err := template.New("reminder").Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("テンプレートの解析失敗: %w", err)
	}
	return t, nil
}

// ValidateTemplate parses text and executes it once against empty data, so
// references to unknown fields are rejected before they are stored.
func ValidateTemplate(text string) error {
	t, err := ParseTemplate(text)
	if err != nil {
		return err
	}
	if err := t.Execute(io.Discard, MessageData{}); err != nil {
		return fmt.Errorf("テンプレートの展開失敗: %w", err)
	}
	return nil
}

func render(text string, data MessageData) (string, error) {
	t, err := ParseTemplate(text)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("テンプレートの展開失敗: %w", err)
	}
	return sb.String(), nil
}

// daysLeft rounds up, so anything due later today or tomorrow counts as 1.
func daysLeft(end, now time.Time) int {
	d := end.Sub(now)
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Hours() / 24))
}
