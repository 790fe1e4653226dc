package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jsphweid/goscales/constants"
	"github.com/jsphweid/goscales/model"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default $SCALES_ADDR or :8080)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves notes, scales, intervals and keyboard tunings over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		if serveAddr == "" {
			serveAddr = constants.GetListenAddr()
		}
		logrus.WithField("addr", serveAddr).Info("serving")
		return http.ListenAndServe(serveAddr, NewRouter())
	},
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/notes/{note}", HandleNote).Methods("GET")
	router.HandleFunc("/scales/{root}/{formula}", HandleScale).Methods("GET")
	router.HandleFunc("/intervals", HandleInterval).Methods("POST")
	router.HandleFunc("/keyboards/{keyboard}/tune/{root}/{formula}", HandleTune).Methods("GET")
	router.Use(logRequests)
	return cors.Default().Handler(router)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.WithFields(logrus.Fields{"method": r.Method, "path": r.URL.Path}).Debug("request")
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("could not encode response")
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, ErrUnknownFormula) || errors.Is(err, ErrUnknownKeyboard) {
		status = http.StatusNotFound
	}
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func HandleNote(w http.ResponseWriter, r *http.Request) {
	n, err := parseNote(mux.Vars(r)["note"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, describeNote(n))
}

func HandleScale(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	s, err := parseScale(vars["root"], vars["formula"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, describeScale(s))
}

func HandleInterval(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, fmt.Errorf("could not read request body: %w", err))
		return
	}

	var input model.IntervalRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, fmt.Errorf("could not unmarshal request body: %w", err))
		return
	}

	res, err := classify(input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleTune(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	kb, err := parseKeyboard(vars["keyboard"])
	if err != nil {
		writeError(w, err)
		return
	}
	s, err := parseScale(vars["root"], vars["formula"])
	if err != nil {
		writeError(w, err)
		return
	}

	res, ok := tune(kb, s)
	if !ok {
		writeJSON(w, http.StatusNotFound, model.ErrorResponse{
			Error: fmt.Sprintf("no tuning puts %v on the white keys of %v", s.Name(), kb.Name),
		})
		return
	}
	writeJSON(w, http.StatusOK, res)
}
