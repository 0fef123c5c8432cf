package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mobile-todo-backend/pkg/gemini"
)

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.URL.Query().Get("key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req gemini.Request
		json.NewDecoder(r.Body).Decode(&req)
		prompt := req.Contents[0].Parts[0].Text

		if strings.Contains(prompt, "fail_500") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(gemini.Response{
			Candidates: []gemini.Candidate{
				{Content: gemini.Content{Parts: []gemini.Part{
					{Text: `{"action":"create","title":"Buy milk","description":"","dueDate":""}`},
				}}},
			},
		})
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-key", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		resp, err := client.GenerateContent(ctx, &gemini.Request{
			Contents: []gemini.Content{{Parts: []gemini.Part{{Text: "buy milk"}}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Candidates) != 1 {
			t.Fatalf("expected 1 candidate, got %d", len(resp.Candidates))
		}
		text := resp.Candidates[0].Content.Parts[0].Text
		if !strings.Contains(text, `"action":"create"`) {
			t.Errorf("unexpected candidate text: %s", text)
		}
	})

	t.Run("API error", func(t *testing.T) {
		_, err := client.GenerateContent(ctx, &gemini.Request{
			Contents: []gemini.Content{{Parts: []gemini.Part{{Text: "fail_500"}}}},
		})
		if err == nil {
			t.Error("expected error on 500 response")
		}
	})

	t.Run("default model", func(t *testing.T) {
		if client.Model() != gemini.DefaultModel {
			t.Errorf("expected default model, got %s", client.Model())
		}
	})
}

func TestConfigValidate(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); err == nil {
		t.Error("expected error for missing api key")
	}
}

func TestTaskActionValidate(t *testing.T) {
	cases := []struct {
		name    string
		action  gemini.TaskAction
		wantErr bool
	}{
		{"create ok", gemini.TaskAction{Action: gemini.ActionCreate, Title: "Buy milk"}, false},
		{"update tag valid", gemini.TaskAction{Action: gemini.ActionUpdate, Title: "x"}, false},
		{"unknown action", gemini.TaskAction{Action: "archive", Title: "x"}, true},
		{"missing title", gemini.TaskAction{Action: gemini.ActionCreate}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.action.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
