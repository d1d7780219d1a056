package services

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseJSONResponse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[string]any
	}{
		{
			name: "plain object",
			raw:  `{"name":"A"}`,
			want: map[string]any{"name": "A"},
		},
		{
			name: "surrounding whitespace",
			raw:  "\n\t {\"name\":\"A\"}  \n",
			want: map[string]any{"name": "A"},
		},
		{
			name: "chatty wrapper",
			raw:  `Sure! Here is the result: {"name":"A"} Thanks.`,
			want: map[string]any{"name": "A"},
		},
		{
			name: "markdown fence",
			raw:  "```json\n{\"name\":\"A\",\"skills\":[\"Go\"]}\n```",
			want: map[string]any{"name": "A", "skills": []any{"Go"}},
		},
		{
			name: "nested braces kept",
			raw:  `result: {"contact":{"email":null}} done`,
			want: map[string]any{"contact": map[string]any{"email": nil}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseJSONResponse(tt.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParseJSONResponseRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "no braces", raw: "I could not read this CV."},
		{name: "empty", raw: "   "},
		{name: "closing before opening", raw: "} oops {"},
		{name: "broken span", raw: `here: {"name": "A",} end`},
		{name: "two objects", raw: `{"a":1} and {"b":2}`},
		{name: "top-level array", raw: `[1, 2, 3]`},
		{name: "json null", raw: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseJSONResponse(tt.raw)
			if err == nil {
				t.Fatalf("expected error, got %#v", got)
			}
			if kind := KindOf(err); kind != KindNotParseable {
				t.Fatalf("expected kind %q, got %q", KindNotParseable, kind)
			}
			if !errors.Is(err, &Error{Kind: KindNotParseable}) {
				t.Fatalf("errors.Is did not match kind for %v", err)
			}
		})
	}
}
