package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetKeysAlwaysSendsAllSixFilters(t *testing.T) {
	var rawQuery string
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/projects/p1/keys" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		rawQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"data":[{"id":"1","name":"key1"}]}`))
	}))
	defer hs.Close()

	c := New("a", "b", WithBaseURL(hs.URL))
	res, err := c.GetKeys(context.Background(), "p1", KeyFilter{})
	if err != nil {
		t.Fatalf("GetKeys returned error: %v", err)
	}
	if !res.OK() {
		t.Fatalf("unexpected error result %+v", res.Err)
	}

	want := "case_sensitive=false&only_html_enabled=false&only_untranslated=false&only_with_overwrites=false&page=1&per_page=10"
	if rawQuery != want {
		t.Fatalf("query = %q, want %q", rawQuery, want)
	}
}

func TestGetKeysCallerFilters(t *testing.T) {
	var rawQuery string
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer hs.Close()

	c := New("a", "b", WithBaseURL(hs.URL))
	_, err := c.GetKeys(context.Background(), "p1", KeyFilter{
		Page:               2,
		PerPage:            50,
		CaseSensitive:      true,
		OnlyUntranslated:   true,
		OnlyWithOverwrites: true,
	})
	if err != nil {
		t.Fatalf("GetKeys returned error: %v", err)
	}

	want := "case_sensitive=true&only_html_enabled=false&only_untranslated=true&only_with_overwrites=true&page=2&per_page=50"
	if rawQuery != want {
		t.Fatalf("query = %q, want %q", rawQuery, want)
	}
}

func TestCreateKey(t *testing.T) {
	var body []byte
	translationCalls := 0
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/projects/p1/keys":
			body, _ = io.ReadAll(r.Body)
			_, _ = w.Write([]byte(`{"data":{"attributes":{"id":"1","name":"key1"}}}`))
		case r.Method == http.MethodPost && r.URL.Path == "/projects/p1/translations":
			translationCalls++
			_, _ = w.Write([]byte(`{"data":{"id":"t1"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer hs.Close()

	c := New("a", "b", WithBaseURL(hs.URL))
	res, err := c.CreateKey(context.Background(), "p1", CreateKeyRequest{Name: "key1", Description: "description"})
	if err != nil {
		t.Fatalf("CreateKey returned error: %v", err)
	}
	if !res.Key.OK() || res.TranslationErr != nil {
		t.Fatalf("unexpected result %+v", res)
	}
	if string(body) != `{"description":"description","name":"key1"}` {
		t.Fatalf("unexpected body %q", string(body))
	}
	if translationCalls != 0 {
		t.Fatalf("no follow-up translation expected, got %d", translationCalls)
	}
}

func TestCreateKeyWithDefaultLanguageTranslation(t *testing.T) {
	var translationBody []byte
	translationCalls := 0
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/projects/p1/keys":
			_, _ = w.Write([]byte(`{"data":{"attributes":{"id":"1"}}}`))
		case r.Method == http.MethodPost && r.URL.Path == "/projects/p1/translations":
			translationCalls++
			translationBody, _ = io.ReadAll(r.Body)
			_, _ = w.Write([]byte(`{"data":{"id":"t1"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer hs.Close()

	c := New("a", "b", WithBaseURL(hs.URL))
	res, err := c.CreateKey(context.Background(), "p1", CreateKeyRequest{
		Name:                       "key1",
		Description:                "description",
		DefaultLanguageTranslation: "hello",
	})
	if err != nil {
		t.Fatalf("CreateKey returned error: %v", err)
	}
	if translationCalls != 1 {
		t.Fatalf("expected exactly one follow-up translation call, got %d", translationCalls)
	}
	want := `{"key_id":"1","language_id":null,"translation":{"content":"hello"}}`
	if string(translationBody) != want {
		t.Fatalf("translation body = %q, want %q", string(translationBody), want)
	}
	if res.TranslationErr != nil {
		t.Fatalf("unexpected translation error %+v", res.TranslationErr)
	}
}

func TestCreateKeySwallowsNoDefaultLanguage(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/projects/p1/keys":
			_, _ = w.Write([]byte(`{"data":{"attributes":{"id":"1"}}}`))
		case r.Method == http.MethodPost && r.URL.Path == "/projects/p1/translations":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"NO_DEFAULT_LANGUAGE_SPECIFIED"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer hs.Close()

	c := New("a", "b", WithBaseURL(hs.URL))
	res, err := c.CreateKey(context.Background(), "p1", CreateKeyRequest{
		Name:                       "key1",
		DefaultLanguageTranslation: "hello",
	})
	if err != nil {
		t.Fatalf("secondary failure must not fail key creation: %v", err)
	}
	if !res.Key.OK() {
		t.Fatalf("primary result must stay intact, got %+v", res.Key.Err)
	}
	if res.TranslationErr == nil || res.TranslationErr.Code != "NO_DEFAULT_LANGUAGE_SPECIFIED" {
		t.Fatalf("expected recorded translation error, got %+v", res.TranslationErr)
	}
}

func TestCreateKeyProceedsOnEmptyStringError(t *testing.T) {
	translationCalls := 0
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/projects/p1/keys":
			_, _ = w.Write([]byte(`{"error":"","data":{"attributes":{"id":"1"}}}`))
		case r.Method == http.MethodPost && r.URL.Path == "/projects/p1/translations":
			translationCalls++
			_, _ = w.Write([]byte(`{"data":{"id":"t1"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer hs.Close()

	c := New("a", "b", WithBaseURL(hs.URL))
	res, err := c.CreateKey(context.Background(), "p1", CreateKeyRequest{
		Name:                       "key1",
		DefaultLanguageTranslation: "hello",
	})
	if err != nil {
		t.Fatalf("CreateKey returned error: %v", err)
	}
	if !res.Key.OK() {
		t.Fatalf("empty-string error must not reject the key, got %+v", res.Key.Err)
	}
	if translationCalls != 1 {
		t.Fatalf("expected the follow-up translation to fire, got %d calls", translationCalls)
	}
}

func TestCreateKeySkipsTranslationOnErrorResult(t *testing.T) {
	translationCalls := 0
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/projects/p1/keys":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"KEY_TAKEN"}`))
		case r.URL.Path == "/projects/p1/translations":
			translationCalls++
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer hs.Close()

	c := New("a", "b", WithBaseURL(hs.URL))
	res, err := c.CreateKey(context.Background(), "p1", CreateKeyRequest{
		Name:                       "key1",
		DefaultLanguageTranslation: "hello",
	})
	if err != nil {
		t.Fatalf("CreateKey returned error: %v", err)
	}
	if res.Key.OK() {
		t.Fatalf("expected rejected key creation")
	}
	if translationCalls != 0 {
		t.Fatalf("no translation call expected after rejected key, got %d", translationCalls)
	}
}

func TestUpdateKey(t *testing.T) {
	var body []byte
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/projects/p1/keys/1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		body, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"data":{"attributes":{"id":"1","name":"key1_updated"}}}`))
	}))
	defer hs.Close()

	c := New("a", "b", WithBaseURL(hs.URL))
	res, err := c.UpdateKey(context.Background(), "p1", "1", "key1_updated", "description_updated")
	if err != nil {
		t.Fatalf("UpdateKey returned error: %v", err)
	}
	if !res.OK() {
		t.Fatalf("unexpected error result %+v", res.Err)
	}
	if string(body) != `{"description":"description_updated","name":"key1_updated"}` {
		t.Fatalf("unexpected body %q", string(body))
	}
}

func TestDeleteKeys(t *testing.T) {
	var body []byte
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/projects/p1/keys" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		body, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"data":{"message":"keys deleted"}}`))
	}))
	defer hs.Close()

	c := New("a", "b", WithBaseURL(hs.URL))
	res, err := c.DeleteKeys(context.Background(), "p1", []string{"1", "2"})
	if err != nil {
		t.Fatalf("DeleteKeys returned error: %v", err)
	}
	if !res.OK() {
		t.Fatalf("unexpected error result %+v", res.Err)
	}
	if string(body) != `{"keys":["1","2"]}` {
		t.Fatalf("unexpected body %q", string(body))
	}
}
