package input

import (
	"context"
	"strings"
)

// FormPrompter answers prompts from a pre-filled form such as an HTTP body.
// Each key is answered once: a field that is asked again was rejected, and
// since a form cannot be re-typed the collection is abandoned instead.
type FormPrompter struct {
	values   map[string]string
	asked    map[string]bool
	messages []string
}

func NewFormPrompter(values map[string]string) *FormPrompter {
	return &FormPrompter{
		values: values,
		asked:  make(map[string]bool, len(values)),
	}
}

func (f *FormPrompter) Prompt(ctx context.Context, field Field) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if f.asked[field.Key] {
		return "", ErrAbandoned
	}
	f.asked[field.Key] = true
	return f.values[field.Key], nil
}

func (f *FormPrompter) Notify(message string) {
	f.messages = append(f.messages, message)
}

// Rejections returns only the validation feedback, without banners and summaries.
func (f *FormPrompter) Rejections() []string {
	var out []string
	for _, m := range f.messages {
		if r, ok := strings.CutPrefix(m, "❌ "); ok {
			out = append(out, r)
		}
	}
	return out
}
