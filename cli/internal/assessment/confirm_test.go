package assessment

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	bonsai "github.com/faisalkhan91/bonsai-cli/sdk"
)

func TestStdinConfirmer(t *testing.T) {
	tests := []struct {
		input     string
		confirmed bool
		wantErr   bool
	}{
		{input: "y\n", confirmed: true},
		{input: "yes\n", confirmed: true},
		{input: "Y\n", confirmed: true},
		{input: "YES\n", confirmed: true},
		{input: "n\n", confirmed: false},
		{input: "no\n", confirmed: false},
		{input: "No\n", confirmed: false},
		{input: "maybe\n", wantErr: true},
		{input: "\n", wantErr: true},
		{input: "y", confirmed: true}, // EOF without newline still counts
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			confirmer := &StdinConfirmer{In: strings.NewReader(tt.input), Out: &out}

			confirmed, err := confirmer.Confirm("delete?")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				var valErr *bonsai.ValidationError
				if !errors.As(err, &valErr) {
					t.Fatalf("expected ValidationError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if confirmed != tt.confirmed {
				t.Errorf("expected confirmed=%v, got %v", tt.confirmed, confirmed)
			}
			if !strings.Contains(out.String(), "delete?") {
				t.Error("expected prompt to be written to Out")
			}
		})
	}
}
