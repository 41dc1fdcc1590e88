package quiz

import (
	"errors"
	"strings"
)

// Choice is one of the four option keys. The zero value means nothing selected.
type Choice string

const (
	None Choice = ""
	A    Choice = "a"
	B    Choice = "b"
	C    Choice = "c"
	D    Choice = "d"
)

var Choices = []Choice{A, B, C, D}

var ErrInvalidChoice = errors.New("choice must be one of a, b, c, d")

func ParseChoice(s string) (Choice, error) {
	c := Choice(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return None, ErrInvalidChoice
	}
	return c, nil
}

func (c Choice) Valid() bool {
	switch c {
	case A, B, C, D:
		return true
	}
	return false
}

// Question is read-only to a session.
type Question struct {
	ID      uint   `json:"id"`
	Module  string `json:"module_name"`
	Text    string `json:"question"`
	OptionA string `json:"option_a"`
	OptionB string `json:"option_b"`
	OptionC string `json:"option_c"`
	OptionD string `json:"option_d"`
	Correct Choice `json:"correct_answer"`
	Points  int    `json:"points"`
}

func (q Question) Option(c Choice) string {
	switch c {
	case A:
		return q.OptionA
	case B:
		return q.OptionB
	case C:
		return q.OptionC
	case D:
		return q.OptionD
	}
	return ""
}

// Option is a question option as shown before the answer is revealed.
type Option struct {
	Key  Choice `json:"key"`
	Text string `json:"text"`
}

// OptionMark is an option after reveal.
type OptionMark struct {
	Key      Choice `json:"key"`
	Text     string `json:"text"`
	Correct  bool   `json:"correct"`
	Selected bool   `json:"selected"`
}

func (q Question) options() []Option {
	out := make([]Option, 0, len(Choices))
	for _, c := range Choices {
		out = append(out, Option{Key: c, Text: q.Option(c)})
	}
	return out
}

func (q Question) marks(selected Choice) []OptionMark {
	out := make([]OptionMark, 0, len(Choices))
	for _, c := range Choices {
		out = append(out, OptionMark{
			Key:      c,
			Text:     q.Option(c),
			Correct:  c == q.Correct,
			Selected: c == selected,
		})
	}
	return out
}
