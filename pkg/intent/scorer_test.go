package intent

import (
	"testing"
)

func TestScores(t *testing.T) {
	tests := []struct {
		name          string
		message       string
		wantDatabase  bool
		wantKnowledge bool
	}{
		{
			name:         "stock question scores database",
			message:      "¿Cuántos laptops hay en stock?",
			wantDatabase: true,
		},
		{
			name:         "price question scores database",
			message:      "¿Cuál es el precio del iPhone 15 Pro?",
			wantDatabase: true,
		},
		{
			name:          "release date question scores knowledge",
			message:       "¿Cuándo salió la Nintendo Switch?",
			wantKnowledge: true,
		},
		{
			name:          "definition question scores knowledge",
			message:       "¿Qué es un SSD?",
			wantKnowledge: true,
		},
		{
			name:    "greeting scores nothing",
			message: "hola",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scoreDB, scoreKnowledge := Scores(tt.message)

			if tt.wantDatabase && !(scoreDB > scoreKnowledge && scoreDB >= 3) {
				t.Errorf("Scores(%q) = (%d, %d), want conclusive database score", tt.message, scoreDB, scoreKnowledge)
			}
			if tt.wantKnowledge && !(scoreKnowledge > scoreDB && scoreKnowledge >= 3) {
				t.Errorf("Scores(%q) = (%d, %d), want conclusive knowledge score", tt.message, scoreDB, scoreKnowledge)
			}
			if !tt.wantDatabase && !tt.wantKnowledge && (scoreDB >= 3 || scoreKnowledge >= 3) {
				t.Errorf("Scores(%q) = (%d, %d), want inconclusive scores", tt.message, scoreDB, scoreKnowledge)
			}
		})
	}
}

func TestScoresPatternBonus(t *testing.T) {
	// "hay en stock" is a full database pattern on top of the "stock" stem weight.
	withPattern, _ := Scores("¿hay en stock?")
	withoutPattern, _ := Scores("stock")

	if withPattern-withoutPattern != PatternBonus {
		t.Errorf("pattern bonus = %d, want %d", withPattern-withoutPattern, PatternBonus)
	}
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("¿Cuántos laptops hay en stock?")
	want := []string{"cuántos", "laptops", "hay", "en", "stock"}

	if len(tokens) != len(want) {
		t.Fatalf("Tokenize returned %v, want %v", tokens, want)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, tokens[i], want[i])
		}
	}
}
