package ast_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/creachadair/jspan/ast"
)

func BenchmarkParse(b *testing.B) {
	input, err := os.ReadFile("testdata/input.json")
	if err != nil {
		b.Fatalf("Reading test input: %v", err)
	}
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Unmarshal", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var v any
			if err := json.Unmarshal(input, &v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Parse", func(b *testing.B) {
		text := string(input)
		for i := 0; i < b.N; i++ {
			if _, err := ast.Parse(text); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}
