package draft

import (
	"errors"
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		want     Result
		wantErr  bool
	}{
		{
			name: "plain JSON object",
			raw:  `{"response":"Thanks for your review!","keyConcerns":["shipping damage"]}`,
			want: Result{Text: "Thanks for your review!", KeyConcerns: []string{"shipping damage"}},
		},
		{
			name: "fenced JSON with language tag",
			raw:  "```json\n{\"response\":\"ok\"}\n```",
			want: Result{Text: "ok", KeyConcerns: []string{}},
		},
		{
			name: "fenced without language tag",
			raw:  "```\n{\"response\":\"ok\",\"keyConcerns\":[]}\n```",
			want: Result{Text: "ok", KeyConcerns: []string{}},
		},
		{
			name:    "fenced invalid JSON",
			raw:     "```json\n{not valid}\n```",
			wantErr: true,
		},
		{
			name:    "empty payload",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "fences around nothing",
			raw:     "```json\n```",
			wantErr: true,
		},
		{
			name:    "missing response field",
			raw:     `{"keyConcerns":["a"]}`,
			wantErr: true,
		},
		{
			name:    "whitespace-only response field",
			raw:     `{"response":"   "}`,
			wantErr: true,
		},
		{
			name: "wrong-typed keyConcerns defaults to empty",
			raw:  `{"response":"ok","keyConcerns":"not a list"}`,
			want: Result{Text: "ok", KeyConcerns: []string{}},
		},
		{
			name: "null keyConcerns defaults to empty",
			raw:  `{"response":"ok","keyConcerns":null}`,
			want: Result{Text: "ok", KeyConcerns: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				var malformed *MalformedError
				if !errors.As(err, &malformed) {
					t.Fatalf("expected *MalformedError, got %T", err)
				}
				if malformed.Raw != tt.raw {
					t.Errorf("error should carry the raw payload, got %q", malformed.Raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract() = %+v, expected %+v", got, tt.want)
			}
		})
	}
}

func TestExtract_KeyConcernsNeverNil(t *testing.T) {
	got, err := Extract(`{"response":"ok"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.KeyConcerns == nil {
		t.Error("KeyConcerns must never be nil")
	}
}
