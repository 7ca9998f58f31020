package cmd

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jsphweid/chromatic/chord"
	"github.com/jsphweid/chromatic/constants"
	"github.com/jsphweid/chromatic/key"
	"github.com/jsphweid/chromatic/logging"
	"github.com/jsphweid/chromatic/model"
	"github.com/jsphweid/chromatic/render"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error(err, "could not encode response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error(), RequestId: RequestId(r)})
}

func isStrict(r *http.Request) bool {
	strict, _ := strconv.ParseBool(r.URL.Query().Get("strict"))
	return strict
}

func HandleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, model.ErrorResponse{Error: "not found", RequestId: RequestId(r)})
}

func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.HealthResponse{Status: "ok", Version: constants.Version})
}

func HandleChord(w http.ResponseWriter, r *http.Request) {
	t, err := parseChord(mux.Vars(r)["token"], isStrict(r))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, render.ChordView(t))
}

func HandleScale(w http.ResponseWriter, r *http.Request) {
	s, err := parseScale(mux.Vars(r)["token"], isStrict(r))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, render.ScaleView(s))
}

func HandleProgression(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	strict := isStrict(r)

	s, err := parseScale(q.Get("scale"), strict)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	p, err := parseProgression(s, q.Get("chords"), strict)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, render.ProgressionView(p))
}

func HandleIdentify(w http.ResponseWriter, r *http.Request) {
	tokens := splitList(r.URL.Query().Get("notes"))
	strict := isStrict(r)
	if strict && len(tokens) == 0 {
		writeError(w, r, http.StatusBadRequest, &model.ParseError{Kind: model.EmptyInput})
		return
	}

	notes, err := parseNotes(tokens, strict)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, render.IdentificationView(notes, chord.Identify(notes)))
}

func HandleKey(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tokens := splitList(q.Get("chords"))
	strict := isStrict(r)
	if strict && len(tokens) == 0 {
		writeError(w, r, http.StatusBadRequest, &model.ParseError{Kind: model.EmptyInput})
		return
	}

	chords, err := parseChords(tokens, strict)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	top := 3
	if v := q.Get("top"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			top = n
		}
	}
	writeJSON(w, http.StatusOK, render.KeyView(key.Estimate(chords), top))
}
