package sarif

import (
	"strings"
	"testing"
)

const wantVersion = "2.1.0"

// minimalSARIF is the smallest valid SARIF document.
const minimalSARIF = `{"version":"` + wantVersion + `","runs":[{"tool":{"driver":{"name":"test"}},"results":[]}]}`

func TestRead_ValidDocument(t *testing.T) {
	doc, err := Read(strings.NewReader(minimalSARIF))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Version != wantVersion {
		t.Errorf("expected version %s, got %s", wantVersion, doc.Version)
	}
}

func TestRead_ValidWithTrailingWhitespace(t *testing.T) {
	input := minimalSARIF + "   \n\t\n  "
	doc, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("trailing whitespace should be accepted, got error: %v", err)
	}
	if doc.Version != wantVersion {
		t.Errorf("expected version %s, got %s", wantVersion, doc.Version)
	}
}

func TestRead_TrailingGarbageText(t *testing.T) {
	input := minimalSARIF + `garbage`
	_, err := Read(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected error for trailing garbage text, got nil")
	}
	if !strings.Contains(err.Error(), "trailing data") {
		t.Errorf("expected trailing data error, got: %v", err)
	}
}

func TestRead_TrailingJSONObject(t *testing.T) {
	input := minimalSARIF + `{"extra":"object"}`
	_, err := Read(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected error for trailing JSON object, got nil")
	}
	if !strings.Contains(err.Error(), "trailing data") {
		t.Errorf("expected trailing data error, got: %v", err)
	}
}

func TestRead_InvalidJSON(t *testing.T) {
	_, err := Read(strings.NewReader(`not json`))
	if err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestRead_MissingVersion(t *testing.T) {
	_, err := Read(strings.NewReader(`{"runs":[]}`))
	if err == nil {
		t.Fatal("expected error for missing version, got nil")
	}
}

func TestReadBytes_ValidDocument(t *testing.T) {
	doc, err := ReadBytes([]byte(minimalSARIF))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Version != wantVersion {
		t.Errorf("expected version %s, got %s", wantVersion, doc.Version)
	}
}

func TestReadBytes_TrailingGarbage(t *testing.T) {
	input := minimalSARIF + `{"extra":true}`
	_, err := ReadBytes([]byte(input))
	if err == nil {
		t.Fatal("expected error for trailing garbage via ReadBytes, got nil")
	}
}

const lintSARIF = `{"version":"2.1.0","runs":[{"tool":{"driver":{"name":"eslint"}},"results":[
	{"ruleId":"semi","level":"error","message":{"text":"Missing semicolon."},"locations":[{"physicalLocation":{"artifactLocation":{"uri":"file:///repo/a.ts"},"region":{"startLine":3,"startColumn":9,"endLine":3,"endColumn":10}}}]},
	{"ruleId":"no-console","level":"warning","message":{"text":"Unexpected console."},"locations":[{"physicalLocation":{"artifactLocation":{"uri":"src/b.ts"},"region":{"startLine":1,"startColumn":1}}}]},
	{"level":"note","message":{"text":"Parse note"},"locations":[{"physicalLocation":{"artifactLocation":{"uri":"file:///repo/a.ts"},"region":{"startLine":7}}}]},
	{"ruleId":"quiet","level":"none","message":{"text":"suppressed"},"locations":[{"physicalLocation":{"artifactLocation":{"uri":"src/b.ts"}}}]},
	{"ruleId":"global","level":"warning","message":{"text":"no location"}}
]}]}`

func TestFileReports_GroupsByFile(t *testing.T) {
	doc, err := ReadBytes([]byte(lintSARIF))
	if err != nil {
		t.Fatal(err)
	}
	reports := FileReports(doc)
	if len(reports) != 3 {
		t.Fatalf("expected 3 file reports, got %d", len(reports))
	}

	a := reports[0]
	if a.Path != "/repo/a.ts" {
		t.Errorf("expected normalized path, got %q", a.Path)
	}
	if a.ErrorCount != 1 || a.WarningCount != 1 {
		t.Errorf("a.ts counts = %d errors, %d warnings", a.ErrorCount, a.WarningCount)
	}
	if a.Diagnostics[0].Rule() != "semi" || a.Diagnostics[0].EndColumn != 10 {
		t.Errorf("unexpected first diagnostic: %+v", a.Diagnostics[0])
	}
	if a.Diagnostics[1].RuleID != nil {
		t.Error("result without ruleId should be unattributed")
	}

	b := reports[1]
	if len(b.Diagnostics) != 1 {
		t.Errorf("level none should be dropped, got %d diagnostics", len(b.Diagnostics))
	}
	if reports[2].Path != "unknown" {
		t.Errorf("expected unknown bucket, got %q", reports[2].Path)
	}
}
