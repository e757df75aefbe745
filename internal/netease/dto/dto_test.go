package dto

import (
	"encoding/json"
	"testing"
)

func TestFlexInt_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{`3`, 3, false},
		{`"3"`, 3, false},
		{`"01"`, 1, false},
		{`""`, 0, false},
		{`null`, 0, false},
		{`2.0`, 2, false},
		{`"A"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var f FlexInt
			err := json.Unmarshal([]byte(tt.input), &f)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %s", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if f.Int() != tt.want {
				t.Errorf("FlexInt(%s) = %d, want %d", tt.input, f.Int(), tt.want)
			}
		})
	}
}

func TestCleanTitle(t *testing.T) {
	if got := CleanTitle("Hello\u00a0World"); got != "Hello World" {
		t.Errorf("CleanTitle() = %q", got)
	}
}

func TestJSONSong_ToSongInfoMissingArtist(t *testing.T) {
	song := JSONSong{
		Name:  "Untitled",
		Album: JSONSongAlb{Name: "Album", PicURL: "https://example.com/a.jpg"},
	}
	if _, err := song.ToSongInfo(1, "2000"); err == nil {
		t.Error("expected validation error for song without artists")
	}
}
