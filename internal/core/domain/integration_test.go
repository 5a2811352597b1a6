package domain_test

import (
	"errors"
	"testing"

	"go.trai.ch/xcsync/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestExecutionPosition_Validate(t *testing.T) {
	valid := []domain.ExecutionPosition{
		"", domain.PositionAny,
		domain.PositionBeforeCompile, domain.PositionAfterCompile,
		domain.PositionBeforeHeaders, domain.PositionAfterHeaders,
	}
	for _, p := range valid {
		if err := p.Validate(); err != nil {
			t.Errorf("expected %q to be valid, got %v", p, err)
		}
	}

	err := domain.ExecutionPosition("before_link").Validate()
	if err == nil {
		t.Fatal("expected error for unknown position, got nil")
	}
	if !errors.Is(err, domain.ErrUnknownExecutionPosition) {
		t.Fatalf("expected ErrUnknownExecutionPosition, got %v", err)
	}
	var zErr *zerr.Error
	if !errors.As(err, &zErr) {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	if pos, ok := zErr.Metadata()["position"].(string); !ok || pos != "before_link" {
		t.Errorf("expected position metadata, got %v", zErr.Metadata())
	}
}

func TestScriptPhaseSpec_ShowEnvVarsDefault(t *testing.T) {
	spec := domain.ScriptPhaseSpec{Name: "Lint"}
	if !spec.ShowEnvVarsInLog() {
		t.Error("expected show-env-vars to default to true")
	}

	off := false
	spec.ShowEnvVars = &off
	if spec.ShowEnvVarsInLog() {
		t.Error("expected explicit false to be honored")
	}
}

func TestIntegrationTarget_HasFrameworks(t *testing.T) {
	target := &domain.IntegrationTarget{}
	if target.HasFrameworks() {
		t.Error("empty target has no frameworks")
	}

	target.XCFrameworks = map[string][]domain.XCFramework{
		"Debug": {{Name: "Static", Dynamic: false}},
	}
	if target.HasFrameworks() {
		t.Error("static-only cross-platform bundles do not warrant an embed phase")
	}

	target.XCFrameworks["Debug"] = append(target.XCFrameworks["Debug"],
		domain.XCFramework{Name: "Dyn", Dynamic: true})
	if !target.HasFrameworks() {
		t.Error("a dynamic cross-platform bundle warrants an embed phase")
	}

	target = &domain.IntegrationTarget{
		Frameworks: map[string][]domain.FrameworkPath{
			"Release": {{Path: "${BUILT_PRODUCTS_DIR}/A.framework"}},
		},
	}
	if !target.HasFrameworks() {
		t.Error("a framework product warrants an embed phase")
	}
}

func TestConfigPathLists_Flatten(t *testing.T) {
	lists := domain.ConfigPathLists{
		{Config: "Release"}: {"b", "a"},
		{Config: "Debug"}:   {"a", "c"},
	}

	flat := lists.Flatten()
	want := []string{"a", "c", "b"}
	if len(flat) != len(want) {
		t.Fatalf("expected %v, got %v", want, flat)
	}
	for i := range want {
		if flat[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, flat)
		}
	}
	if lists.TotalLen() != 3 {
		t.Errorf("expected total length 3, got %d", lists.TotalLen())
	}
}
