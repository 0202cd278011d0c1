package llm

import "testing"

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "clean object",
			in:   `{"a":1}`,
			want: `{"a":1}`,
		},
		{
			name: "fenced json",
			in:   "```json\n{\"a\":1}\n```",
			want: `{"a":1}`,
		},
		{
			name: "bare fence",
			in:   "```\n[1,2]\n```",
			want: `[1,2]`,
		},
		{
			name: "leading commentary",
			in:   "Here is the outline you asked for:\n{\"steps\":[]}",
			want: `{"steps":[]}`,
		},
		{
			name: "trailing commentary",
			in:   "{\"steps\":[]}\nLet me know if you need changes.",
			want: `{"steps":[]}`,
		},
		{
			name: "array before object text",
			in:   "[{\"q\":\"x\"}] and that's all",
			want: `[{"q":"x"}]`,
		},
		{
			name: "no json at all",
			in:   "sorry, I cannot do that",
			want: "sorry, I cannot do that",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractJSON(tt.in); got != tt.want {
				t.Errorf("ExtractJSON(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
