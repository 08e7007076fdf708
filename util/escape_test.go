package util

import "testing"

func TestGuardEscapesRoundTrip(t *testing.T) {
	tests := []string{
		`Line one\nLine two`,
		`Tab\there`,
		`Say \"hello\"`,
		`A backslash: \\`,
		`Carriage\rreturn`,
		`All of them: \n \t \" \\ \r`,
		`Literal backslash before n: \\n`,
		`No escapes at all`,
		``,
	}
	for _, text := range tests {
		if got := UnguardEscapes(GuardEscapes(text)); got != text {
			t.Errorf("round trip failed:\n  text:    %q\n  guarded: %q\n  got:     %q",
				text, GuardEscapes(text), got)
		}
	}
}

func TestGuardEscapesUsesSentinels(t *testing.T) {
	guarded := GuardEscapes(`one\ntwo\tthree`)
	want := "one<!NEWLINE!>two<!TAB!>three"
	if guarded != want {
		t.Errorf("GuardEscapes() = %q, want %q", guarded, want)
	}
}

func TestGuardEscapesLeavesRealNewlinesAlone(t *testing.T) {
	// Only the literal two-character sequences are guarded, not actual
	// control characters.
	text := "real\nnewline"
	if got := GuardEscapes(text); got != text {
		t.Errorf("GuardEscapes() = %q, want unchanged", got)
	}
}
