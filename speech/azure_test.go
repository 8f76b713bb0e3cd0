package speech

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hncast/config"
	"hncast/types"
)

func newTestAzure(endpoint string) *Azure {
	a := NewAzure(&config.Config{SpeechKey: "test-key", SpeechRegion: "eastus"})
	a.endpoint = endpoint
	return a
}

func TestAzureSynthesize(t *testing.T) {
	wav := []byte("RIFF....WAVEfmt ")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Ocp-Apim-Subscription-Key"); got != "test-key" {
			t.Errorf("subscription key = %q", got)
		}
		if got := r.Header.Get("X-Microsoft-OutputFormat"); got != "riff-16khz-16bit-mono-pcm" {
			t.Errorf("output format = %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/ssml+xml" {
			t.Errorf("content type = %q", got)
		}

		body, _ := io.ReadAll(r.Body)
		ssml := string(body)
		if !strings.Contains(ssml, "en-US-JennyNeural") {
			t.Errorf("ssml missing voice: %s", ssml)
		}
		if !strings.Contains(ssml, "Hello &amp; welcome.") {
			t.Errorf("ssml text not escaped: %s", ssml)
		}

		w.Write(wav)
	}))
	defer srv.Close()

	clip, err := newTestAzure(srv.URL).Synthesize(context.Background(), "101", "Hello & welcome.", types.LangPrimary)
	if err != nil {
		t.Fatalf("Synthesize error: %v", err)
	}

	if clip.StoryID != "101" || clip.Lang != types.LangPrimary || clip.Format != "wav" {
		t.Errorf("unexpected clip: %+v", clip)
	}
	if string(clip.Data) != string(wav) {
		t.Errorf("clip data = %q", clip.Data)
	}
}

func TestAzureSynthesizeServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestAzure(srv.URL).Synthesize(context.Background(), "101", "text", types.LangPrimary)
	if !errors.Is(err, ErrSynthesis) {
		t.Fatalf("err = %v; want ErrSynthesis", err)
	}
}

func TestAzureSynthesizeUnsupportedLanguage(t *testing.T) {
	// No request should be issued for an unmapped tag.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected request")
	}))
	defer srv.Close()

	_, err := newTestAzure(srv.URL).Synthesize(context.Background(), "101", "text", "fr-FR")
	if !errors.Is(err, ErrSynthesis) {
		t.Fatalf("err = %v; want ErrSynthesis", err)
	}
}

func TestVoiceFor(t *testing.T) {
	cases := []struct {
		lang string
		want string
		ok   bool
	}{
		{types.LangPrimary, "en-US-JennyNeural", true},
		{types.LangSecondary, "zh-CN-XiaoxiaoNeural", true},
		{"fr-FR", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := VoiceFor(c.lang)
		if got != c.want || ok != c.ok {
			t.Errorf("VoiceFor(%q) = %q, %v; want %q, %v", c.lang, got, ok, c.want, c.ok)
		}
	}
}

func TestSupportedLanguages(t *testing.T) {
	langs := SupportedLanguages()
	if len(langs) != 2 || langs[0] != types.LangPrimary || langs[1] != types.LangSecondary {
		t.Errorf("SupportedLanguages() = %v", langs)
	}
}
