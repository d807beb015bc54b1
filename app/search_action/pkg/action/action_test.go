package action

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/iWorld-y/search_action/app/search_action/pkg/search"
)

// mockSearcher 记录请求并返回固定结果
type mockSearcher struct {
	got     *search.Request
	results search.Results
	err     error
}

func (m *mockSearcher) Search(ctx context.Context, req *search.Request) (search.Results, error) {
	m.got = req
	return m.results, m.err
}

func TestGoogleSearch_Info(t *testing.T) {
	info, err := New(&mockSearcher{}, true).Info(context.Background())
	if err != nil {
		t.Fatalf("Info() error = %v", err)
	}
	if info.Name != ToolName {
		t.Errorf("Name = %q, want %q", info.Name, ToolName)
	}
	js, err := info.ParamsOneOf.ToJSONSchema()
	if err != nil {
		t.Fatalf("ToJSONSchema() error = %v", err)
	}
	if len(js.Required) != 1 || js.Required[0] != "query" {
		t.Errorf("Required = %v, want [query]", js.Required)
	}
}

func TestGoogleSearch_InvokableRun(t *testing.T) {
	date := "2023-01-05"
	m := &mockSearcher{results: search.Results{
		0: {URL: "https://a.com", Summ: "a <b>", Title: "A", Date: &date},
		1: {URL: "https://b.com", Summ: "b", Title: "B"},
	}}
	a := New(m, true)

	out, err := a.InvokableRun(context.Background(), `{"query":"golang","date_restrict":"w1"}`)
	if err != nil {
		t.Fatalf("InvokableRun() error = %v", err)
	}
	if m.got.Query != "golang" || m.got.NumResults != DefaultNumResults || m.got.DateRestrict != "w1" {
		t.Errorf("request = %+v", m.got)
	}

	var decoded map[string]map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v (%s)", err, out)
	}
	if decoded["0"]["url"] != "https://a.com" || decoded["0"]["date"] != date {
		t.Errorf("decoded[0] = %v", decoded["0"])
	}
	if v, ok := decoded["1"]["date"]; !ok || v != nil {
		t.Errorf("decoded[1].date = %v, want null", v)
	}
}

func TestGoogleSearch_InvokableRunErrors(t *testing.T) {
	cause := stderrors.New("upstream down")

	tests := []struct {
		name    string
		action  *GoogleSearch
		args    string
		wantErr error
	}{
		{"disabled", New(&mockSearcher{}, false), `{"query":"q"}`, ErrActionDisabled},
		{"bad json", New(&mockSearcher{}, true), `not json`, ErrInvalidArguments},
		{"empty query", New(&mockSearcher{}, true), `{"query":"  "}`, ErrEmptyQuery},
		{"search failure", New(&mockSearcher{err: search.ErrRetriesExhausted.WithCause(cause)}, true), `{"query":"q"}`, search.ErrRetriesExhausted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.action.InvokableRun(context.Background(), tt.args)
			if !stderrors.Is(err, tt.wantErr) {
				t.Fatalf("InvokableRun() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEncodeResultsEmpty(t *testing.T) {
	out, err := EncodeResults(nil)
	if err != nil {
		t.Fatalf("EncodeResults() error = %v", err)
	}
	if out != "{}" {
		t.Errorf("EncodeResults(nil) = %q, want {}", out)
	}
}
