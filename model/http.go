package model

type NoteResponse struct {
	Name      string  `json:"name"`
	FlatName  string  `json:"flat_name"`
	Octave    int     `json:"octave"`
	Midi      *int    `json:"midi"`
	Frequency float64 `json:"frequency"`
}

type ScaleResponse struct {
	Name            string   `json:"name"`
	Root            string   `json:"root"`
	Formula         string   `json:"formula"`
	Pattern         string   `json:"pattern"`
	Notes           []string `json:"notes"`
	NotesNotInScale []string `json:"notes_not_in_scale"`
}

type IntervalRequestBody struct {
	Note1   string `json:"note1"`
	Note2   string `json:"note2"`
	Root    string `json:"root"`
	Formula string `json:"formula"`
}

type IntervalResponse struct {
	Name           string `json:"name"`
	Notation       string `json:"notation"`
	Quality        string `json:"quality"`
	StaffPositions int    `json:"staff_positions"`
	Semitones      int    `json:"semitones"`
	Consonance     string `json:"consonance"`
}

type TuneResponse struct {
	Keyboard string `json:"keyboard"`
	Scale    string `json:"scale"`
	Tuning   int    `json:"tuning"`
	Keys     string `json:"keys"`
	Notes    string `json:"notes"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
