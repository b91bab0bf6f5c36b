package task

import "testing"

func TestParseStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Status
		wantErr string
	}{
		{name: "incomplete", input: "incomplete", want: StatusIncomplete},
		{name: "complete", input: "complete", want: StatusComplete},
		{name: "upper case", input: "COMPLETE", want: StatusComplete},
		{name: "mixed case with padding", input: "  InComplete ", want: StatusIncomplete},
		{name: "typo", input: "xomplete", wantErr: "invalid status string: xomplete"},
		{name: "empty", input: "", wantErr: "invalid status string: "},
		{name: "whitespace only", input: "   ", wantErr: "invalid status string: "},
		{name: "done is not a status", input: "done", wantErr: "invalid status string: done"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseStatus(tt.input)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("ParseStatus(%q) = %v, want error", tt.input, got)
				}
				if err.Error() != tt.wantErr {
					t.Errorf("ParseStatus(%q) error = %q, want %q", tt.input, err.Error(), tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStatus(%q) error = %v, want nil", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStatus_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status Status
		want   string
	}{
		{StatusIncomplete, "incomplete"},
		{StatusComplete, "complete"},
		{Status(0), "Status(0)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			if got := tt.status.String(); got != tt.want {
				t.Errorf("Status.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatus_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []Status{StatusIncomplete, StatusComplete} {
		got, err := ParseStatus(s.String())
		if err != nil {
			t.Fatalf("ParseStatus(%q) error = %v", s.String(), err)
		}
		if got != s {
			t.Errorf("ParseStatus(%q) = %v, want %v", s.String(), got, s)
		}
	}
}

func TestStatus_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status Status
		want   bool
	}{
		{name: "incomplete is valid", status: StatusIncomplete, want: true},
		{name: "complete is valid", status: StatusComplete, want: true},
		{name: "zero value is invalid", status: 0, want: false},
		{name: "out of range is invalid", status: 7, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("Status(%d).IsValid() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestTask_IsComplete(t *testing.T) {
	t.Parallel()

	if (&Task{Status: StatusIncomplete}).IsComplete() {
		t.Error("IsComplete() = true for incomplete task")
	}
	if !(&Task{Status: StatusComplete}).IsComplete() {
		t.Error("IsComplete() = false for complete task")
	}
}
