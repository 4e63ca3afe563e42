// internal/report/output.go
// Jawaban akhir agent: teks polos atau daftar fragmen.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Output adalah tagged union: PlainText | FragmentList
type Output interface {
	isOutput()
}

type PlainText string

type FragmentList []Fragment

func (PlainText) isOutput()    {}
func (FragmentList) isOutput() {}

// Fragment: TextFragment atau OpaqueFragment
type Fragment interface {
	String() string
}

type TextFragment struct {
	Text string
}

func (f TextFragment) String() string { return f.Text }

// OpaqueFragment: nilai apa pun selain teks, diubah ke string apa adanya
type OpaqueFragment struct {
	Value any
}

func (f OpaqueFragment) String() string { return fmt.Sprint(f.Value) }

// FromMessage: MultiContent -> FragmentList, selain itu PlainText
func FromMessage(msg openai.ChatCompletionMessage) Output {
	if len(msg.MultiContent) == 0 {
		return PlainText(msg.Content)
	}
	out := make(FragmentList, 0, len(msg.MultiContent))
	for _, part := range msg.MultiContent {
		if part.Type == openai.ChatMessagePartTypeText {
			out = append(out, TextFragment{Text: part.Text})
			continue
		}
		out = append(out, OpaqueFragment{Value: opaquePart(part)})
	}
	return out
}

// bagian non-teks direpresentasikan sebagai JSON-nya
func opaquePart(p openai.ChatMessagePart) string {
	b, err := json.Marshal(p)
	if err != nil {
		return string(p.Type)
	}
	return string(b)
}

func ToMarkdown(o Output) string {
	switch v := o.(type) {
	case PlainText:
		return string(v)
	case FragmentList:
		var sb strings.Builder
		for _, f := range v {
			if f == nil {
				continue
			}
			sb.WriteString(f.String())
		}
		return sb.String()
	default:
		return ""
	}
}
