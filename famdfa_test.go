package famdfa

import "testing"

func TestCompile(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr bool
	}{
		{"simple literal", "hello", false},
		{"alternation in group", "(foo|bar)", false},
		{"repetition", "a+", false},
		{"char class", "[a-z0-9]+", false},
		{"unclosed group", "(", true},
		{"dangling quantifier", "*", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Compile(tt.pattern)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Compile(%q) error = %v, wantErr %v", tt.pattern, err, tt.wantErr)
			}
			if !tt.wantErr && g == nil {
				t.Fatal("Compile() returned a nil Graph with a nil error")
			}
		})
	}
}

func TestMustCompilePanicsOnInvalidPattern(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("MustCompile did not panic on an invalid pattern")
		}
	}()
	MustCompile("(")
}

func TestMatchAcrossMultiplePatterns(t *testing.T) {
	g, err := Compile("a+", "ab", "(a|b)+")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	m, ok := g.Match([]byte("aab"))
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Length != 3 {
		t.Fatalf("expected length 3, got %d", m.Length)
	}
	if len(m.IDs) != 1 || m.IDs[0] != 2 {
		t.Fatalf("expected id [2], got %v", m.IDs)
	}
}

func TestMatchNoMatch(t *testing.T) {
	g, err := Compile("a+")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if _, ok := g.Match([]byte("zzz")); ok {
		t.Fatal("expected no match")
	}
}

func TestMatchWithLiteralAccelerator(t *testing.T) {
	g, err := Compile("hello", "world")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	m, ok := g.Match([]byte("hello there"))
	if !ok || m.Length != 5 || len(m.IDs) != 1 || m.IDs[0] != 0 {
		t.Fatalf("expected match {5,[0]}, got %+v ok=%v", m, ok)
	}
}

func TestCompileWithConfigDisablingLiteralAccel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnableLiteralAccel = false
	g, err := CompileWithConfig(cfg, "hello")
	if err != nil {
		t.Fatalf("CompileWithConfig: %v", err)
	}
	m, ok := g.Match([]byte("hello"))
	if !ok || m.Length != 5 {
		t.Fatalf("expected a match of length 5 even without acceleration, got %+v ok=%v", m, ok)
	}
}

func TestMinLiteralPatternsGatesAccelerator(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinLiteralPatterns = 2
	g, err := CompileWithConfig(cfg, "hello", "a+")
	if err != nil {
		t.Fatalf("CompileWithConfig: %v", err)
	}
	if g.lit != nil {
		t.Fatal("expected no accelerator to be built with only one literal family below MinLiteralPatterns")
	}
	m, ok := g.Match([]byte("hello"))
	if !ok || m.Length != 5 {
		t.Fatalf("expected a match of length 5 via the DFA even with acceleration gated off, got %+v ok=%v", m, ok)
	}
}

func TestMinLiteralPatternsAllowsAcceleratorOnceThresholdMet(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinLiteralPatterns = 2
	g, err := CompileWithConfig(cfg, "hello", "world")
	if err != nil {
		t.Fatalf("CompileWithConfig: %v", err)
	}
	if g.lit == nil {
		t.Fatal("expected an accelerator once two literal families meet MinLiteralPatterns")
	}
}

func TestCompileWithConfigMaxStateLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxState = 1
	if _, err := CompileWithConfig(cfg, "(a|b)(c|d)(e|f)(g|h)"); err == nil {
		t.Fatal("expected a state-limit error for a tiny MaxState")
	}
}

func TestAmbiguitiesReportsSharedAcceptance(t *testing.T) {
	g, err := Compile("b(a?){2}b", "ba{,2}b")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	ambiguities := g.Ambiguities()
	if len(ambiguities) == 0 {
		t.Fatal("expected at least one ambiguity between these two patterns")
	}
	for _, a := range ambiguities {
		if a.Witness == "" {
			t.Fatal("expected a non-empty witness")
		}
	}
}

func TestStringIsNonEmpty(t *testing.T) {
	g, err := Compile("a+")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if g.String() == "" {
		t.Fatal("expected a non-empty debug dump")
	}
}

func TestConfigValidateRejectsNegativeMaxState(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxState = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error for a negative MaxState")
	}
}
