package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/tools/go/analysis/analysistest"
)

func TestOsExitAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), OsExitAnalyzer, "osexit")
}

func TestNoPrintAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), NoPrintAnalyzer, "noprint")
}

func TestAnalyzersIncludeCustomChecks(t *testing.T) {
	checks := analyzers()
	assert.Contains(t, checks, OsExitAnalyzer)
	assert.Contains(t, checks, NoPrintAnalyzer)
}

func TestAnalyzersSkipLowLevelPasses(t *testing.T) {
	names := make(map[string]bool)
	for _, a := range analyzers() {
		names[a.Name] = true
	}
	for _, name := range []string{"asmdecl", "atomicalign", "cgocall", "unsafeptr", "fieldalignment"} {
		assert.False(t, names[name], name)
	}
	assert.True(t, names["printf"])
	assert.True(t, names["errcheck"])
}
