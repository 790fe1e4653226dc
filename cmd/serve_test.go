package cmd

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsphweid/goscales/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func do(t *testing.T, method, target, body string) *http.Response {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	NewRouter().ServeHTTP(w, req)
	return w.Result()
}

func decode[T any](t *testing.T, resp *http.Response) T {
	defer resp.Body.Close()
	var res T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return res
}

func TestHandleNote(t *testing.T) {
	resp := do(t, http.MethodGet, "/notes/A4", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	res := decode[model.NoteResponse](t, resp)
	assert := assert.New(t)
	assert.Equal("A", res.Name)
	assert.Equal(4, res.Octave)
	require.NotNil(t, res.Midi)
	assert.Equal(69, *res.Midi)
	assert.Equal(440.0, res.Frequency)
}

func TestHandleNoteSharpAndFlat(t *testing.T) {
	res := decode[model.NoteResponse](t, do(t, http.MethodGet, "/notes/Db4", ""))
	assert.Equal(t, "C#", res.Name)
	assert.Equal(t, "Db", res.FlatName)
	require.NotNil(t, res.Midi)
	assert.Equal(t, 61, *res.Midi)

	res = decode[model.NoteResponse](t, do(t, http.MethodGet, "/notes/C%234", ""))
	assert.Equal(t, "C#", res.Name)
}

func TestHandleNoteOutsideMidiRange(t *testing.T) {
	resp := do(t, http.MethodGet, "/notes/C12", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	res := decode[model.NoteResponse](t, resp)
	assert.Nil(t, res.Midi)
	assert.Equal(t, 12, res.Octave)
}

func TestHandleNoteInvalid(t *testing.T) {
	resp := do(t, http.MethodGet, "/notes/H4", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	res := decode[model.ErrorResponse](t, resp)
	assert.Contains(t, res.Error, "invalid note name")
}

func TestHandleScale(t *testing.T) {
	resp := do(t, http.MethodGet, "/scales/A4/natural-minor", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	res := decode[model.ScaleResponse](t, resp)
	assert := assert.New(t)
	assert.Equal("A Natural Minor", res.Name)
	assert.Equal("A4", res.Root)
	assert.Equal("whwwhww", res.Pattern)
	assert.Equal([]string{"A4", "B4", "C5", "D5", "E5", "F5", "G5"}, res.Notes)
	assert.Equal([]string{"A#4", "C#5", "D#5", "F#5", "G#5"}, res.NotesNotInScale)
}

func TestHandleScaleFromPattern(t *testing.T) {
	res := decode[model.ScaleResponse](t, do(t, http.MethodGet, "/scales/C/wwhwwwh", ""))
	assert.Equal(t, []string{"C4", "D4", "E4", "F4", "G4", "A4", "B4"}, res.Notes)
	assert.Equal(t, "Unnamed", res.Formula)
}

func TestHandleScaleUnknownFormula(t *testing.T) {
	resp := do(t, http.MethodGet, "/scales/C4/bogus", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandleInterval(t *testing.T) {
	cases := []struct {
		body       string
		name       string
		notation   string
		semitones  int
		staff      int
		consonance string
	}{
		{`{"note1":"F4","note2":"B4","root":"C4","formula":"major"}`, "Augmented Fourth", "A4", 6, 3, "dissonance"},
		{`{"note1":"C4","note2":"G4"}`, "Perfect Fifth", "P5", 7, 4, "perfect consonance"},
		{`{"note1":"A4","note2":"C5","root":"A","formula":"minor"}`, "Minor Third", "m3", 3, 2, "imperfect consonance"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			resp := do(t, http.MethodPost, "/intervals", c.body)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			res := decode[model.IntervalResponse](t, resp)
			assert := assert.New(t)
			assert.Equal(c.name, res.Name)
			assert.Equal(c.notation, res.Notation)
			assert.Equal(c.semitones, res.Semitones)
			assert.Equal(c.staff, res.StaffPositions)
			assert.Equal(c.consonance, res.Consonance)
		})
	}
}

func TestHandleIntervalErrors(t *testing.T) {
	resp := do(t, http.MethodPost, "/intervals", `{"note1":"C#4","note2":"C4","root":"C","formula":"major"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	res := decode[model.ErrorResponse](t, resp)
	assert.Contains(t, res.Error, "C Major (Ionian)")

	resp = do(t, http.MethodPost, "/intervals", `{"note1":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, http.MethodGet, "/intervals", "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHandleTune(t *testing.T) {
	resp := do(t, http.MethodGet, "/keyboards/op-1/tune/D/major", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	res := decode[model.TuneResponse](t, resp)
	assert := assert.New(t)
	assert.Equal("Teenage Engineering OP-1", res.Keyboard)
	assert.Equal("D Major (Ionian)", res.Scale)
	assert.Equal(2, res.Tuning)
	assert.True(strings.HasPrefix(res.Keys, "_   #   _"))
	assert.True(strings.HasPrefix(res.Notes, "G       A       B"))
}

func TestHandleTuneNotFound(t *testing.T) {
	resp := do(t, http.MethodGet, "/keyboards/theremin/tune/C/major", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, http.MethodGet, "/keyboards/op-1/tune/C/chromatic", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	res := decode[model.ErrorResponse](t, resp)
	assert.Contains(t, res.Error, "no tuning")
}
