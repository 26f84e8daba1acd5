package utils

import (
	"strings"
	"testing"
)

func TestSanitizeFilenameReplacesUnsafeChars(t *testing.T) {
	in := `a\b/c*d?e:f"g<h>i|j`
	got := SanitizeFilename(in)

	if got != "a_b_c_d_e_f_g_h_i_j" {
		t.Fatalf("unexpected result: %q", got)
	}
	if strings.ContainsAny(got, `\/*?:"<>|`) {
		t.Fatalf("result still contains unsafe characters: %q", got)
	}
}

func TestSanitizeFilenameTruncates(t *testing.T) {
	in := strings.Repeat("a", 90) + `\\\\\` + strings.Repeat("b", 60)
	got := SanitizeFilename(in)

	if len(got) != 100 {
		t.Fatalf("expected length 100, got %d", len(got))
	}

	full := strings.NewReplacer(`\`, "_").Replace(in)
	if !strings.HasPrefix(full, got) {
		t.Fatalf("truncation is not a prefix of the substituted string: %q", got)
	}
}

func TestSanitizeFilenamePassesThroughSafeInput(t *testing.T) {
	for _, in := range []string{"", "1234", "hello world.png", "ABC-123_x"} {
		if got := SanitizeFilename(in); got != in {
			t.Fatalf("SanitizeFilename(%q) = %q, want unchanged", in, got)
		}
	}
}
