package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/faisalkhan91/bonsai-cli/cli/internal/assessment"
	"github.com/faisalkhan91/bonsai-cli/sdk/models"
)

func decodeJSON(t *testing.T, out *bytes.Buffer) map[string]any {
	t.Helper()
	var v map[string]any
	if err := json.Unmarshal(out.Bytes(), &v); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out.String())
	}
	return v
}

func assertKeys(t *testing.T, v map[string]any, keys ...string) {
	t.Helper()
	if len(v) != len(keys) {
		t.Errorf("expected %d keys, got %d: %v", len(keys), len(v), v)
	}
	for _, k := range keys {
		if _, ok := v[k]; !ok {
			t.Errorf("missing key %q in %v", k, v)
		}
	}
}

func TestStartJSON(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, true, false)

	r.Start(&assessment.StartResult{
		Name:         "a1",
		BrainName:    "cartpole",
		BrainVersion: 3,
		APIStatus:    models.APIStatus{Status: "201 Created", StatusCode: 201},
	})

	v := decodeJSON(t, &out)
	assertKeys(t, v, "status", "statusCode", "statusMessage")
	if v["statusMessage"] != "Started assessment a1 of brain cartpole version 3." {
		t.Errorf("unexpected message: %v", v["statusMessage"])
	}
	if v["statusCode"] != float64(201) {
		t.Errorf("unexpected status code: %v", v["statusCode"])
	}
}

func TestStartJSONTestMode(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, true, true)

	r.Start(&assessment.StartResult{
		Name: "a1", BrainName: "b", BrainVersion: 1,
		APIStatus: models.APIStatus{
			Status: "200 OK", StatusCode: 200,
			Elapsed: 120 * time.Millisecond, TimeTaken: 125 * time.Millisecond,
		},
	})

	v := decodeJSON(t, &out)
	assertKeys(t, v, "status", "statusCode", "statusMessage", "elapsed", "timeTaken")
	if v["elapsed"] != "120ms" {
		t.Errorf("unexpected elapsed: %v", v["elapsed"])
	}
}

func TestStartHuman(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, false, false)

	r.Start(&assessment.StartResult{Name: "a1", BrainName: "cartpole", BrainVersion: 3})

	if out.String() != "Started assessment a1 of brain cartpole version 3.\n" {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestListJSON(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, true, false)

	r.List(&assessment.ListResult{
		BrainName:    "cartpole",
		BrainVersion: 2,
		Rows: []assessment.ListRow{
			{AssessmentName: "a1", Status: assessment.StatusInProgress, Description: "first"},
		},
		APIStatus: models.APIStatus{Status: "200 OK", StatusCode: 200},
	})

	v := decodeJSON(t, &out)
	assertKeys(t, v, "value", "status", "statusCode", "statusMessage")
	rows, ok := v["value"].([]any)
	if !ok || len(rows) != 1 {
		t.Fatalf("expected one row in value, got %v", v["value"])
	}
	row := rows[0].(map[string]any)
	if row["assessmentName"] != "a1" || row["status"] != "In progress" || row["description"] != "first" {
		t.Errorf("unexpected row: %v", row)
	}
}

func TestListJSONEmptyIsArrayNotNull(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, true, false)

	r.List(&assessment.ListResult{BrainName: "b", BrainVersion: 1, Empty: true})

	if !strings.Contains(out.String(), `"value": []`) {
		t.Errorf("expected empty array, got %s", out.String())
	}
}

func TestListHumanEmpty(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, false, false)

	r.List(&assessment.ListResult{BrainName: "cartpole", BrainVersion: 2, Empty: true})

	if out.String() != "No assessments exist for brain cartpole version 2\n" {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestListHumanTable(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, false, false)

	r.List(&assessment.ListResult{
		BrainName: "cartpole", BrainVersion: 2,
		Rows: []assessment.ListRow{
			{AssessmentName: "a1", Status: assessment.StatusComplete, Description: "done"},
		},
	})

	got := out.String()
	for _, want := range []string{"Assessment Name", "Status", "Description", "a1", "Complete", "done"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected table to contain %q:\n%s", want, got)
		}
	}
}

func TestShowJSONKeySet(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, true, false)

	r.Show(&assessment.ShowResult{
		AssessmentName: "a1",
		DisplayName:    "Assessment One",
		Status:         assessment.StatusInProgress,
		Concept:        "balance",
		ConceptLesson:  1,
		APIStatus:      models.APIStatus{StatusCode: 200},
	})

	v := decodeJSON(t, &out)
	assertKeys(t, v,
		"assessmentName", "displayName", "description", "status", "runTime",
		"concept", "conceptLesson", "createdOn", "modifiedOn",
		"statusCode", "statusMessage")
	if v["status"] != "In progress" {
		t.Errorf("unexpected status: %v", v["status"])
	}
}

func TestConfigurationSavedMessage(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, false, false)

	r.Configuration(&assessment.ConfigurationResult{
		Name: "a1", BrainName: "cartpole", BrainVersion: 2, SavedTo: "out.json",
	})

	want := "Assessment configuration saved from assessment a1 brain cartpole version 2 to out.json.\n"
	if out.String() != want {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestConfigurationDirectEmission(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, false, false)

	r.Configuration(&assessment.ConfigurationResult{
		Configuration: json.RawMessage(`{"scenarios": []}`),
	})

	if out.String() != "{\"scenarios\": []}\n" {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestConfigurationJSONDirect(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, true, false)

	r.Configuration(&assessment.ConfigurationResult{
		Configuration: json.RawMessage(`{"scenarios": [1]}`),
		APIStatus:     models.APIStatus{Status: "200 OK", StatusCode: 200},
	})

	v := decodeJSON(t, &out)
	assertKeys(t, v, "status", "statusCode", "configuration")
	cfg, ok := v["configuration"].(map[string]any)
	if !ok {
		t.Fatalf("expected configuration object, got %v", v["configuration"])
	}
	if _, ok := cfg["scenarios"]; !ok {
		t.Error("expected scenarios in configuration")
	}
}

func TestDeleteDeclinedIsSilent(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, false, false)

	r.Delete(&assessment.DeleteResult{Name: "a1", Deleted: false})

	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}

func TestDeleteConfirmed(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, false, false)

	r.Delete(&assessment.DeleteResult{Name: "a1", BrainName: "b", BrainVersion: 1, Deleted: true})

	if out.String() != "Deleted assessment a1 of brain b version 1.\n" {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestJSONIndentation(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, true, false)

	r.Stop(&assessment.StopResult{Name: "a1", BrainName: "b", BrainVersion: 1})

	if !strings.Contains(out.String(), "\n    \"status\"") {
		t.Errorf("expected 4-space indentation:\n%s", out.String())
	}
}

func TestErrorAndNoticeContainMessage(t *testing.T) {
	if !strings.Contains(Error(json.Unmarshal([]byte("x"), &struct{}{})), "Error:") {
		t.Error("expected error prefix")
	}
	if !strings.Contains(Notice("new version available"), "new version available") {
		t.Error("expected notice text")
	}
}
