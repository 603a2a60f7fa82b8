package api

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dw/centidb/pkg/keycoder"
	"github.com/dw/centidb/pkg/store"
)

// Server holds the API's dependencies: the store it operates on and the
// metrics it instruments requests with.
type Server struct {
	store   IStore
	metrics *Metrics
}

// NewServer creates a new API server over store.
func NewServer(s IStore, metrics *Metrics) *Server {
	return &Server{store: s, metrics: metrics}
}

// handleHealth godoc
//
//	@Summary	Liveness probe
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/healthz [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, map[string]string{"status": "ok"})
}

// handlePut godoc
//
//	@Summary	Store a tuple-keyed value
//	@Accept		json
//	@Produce	json
//	@Param		body	body		PutRequest	true	"tuple and base64 value"
//	@Success	200		{object}	APIResponse
//	@Failure	400		{object}	APIResponse
//	@Router		/v1/keys [put]
func (s *Server) handlePut(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req PutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.finish("put", false, start)
		sendError(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	tuple, err := jsonToTuple(req.Tuple)
	if err != nil {
		s.finish("put", false, start)
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	value, err := base64.StdEncoding.DecodeString(req.Value)
	if err != nil {
		s.finish("put", false, start)
		sendError(w, fmt.Sprintf("value is not valid base64: %v", err), http.StatusBadRequest)
		return
	}

	if err := s.store.Put(tuple, value); err != nil {
		s.finish("put", false, start)
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.finish("put", true, start)
	sendSuccess(w, map[string]string{"status": "stored"})
}

// handleGet godoc
//
//	@Summary	Fetch a tuple-keyed value
//	@Produce	json
//	@Param		tuple	query		string	true	"JSON-encoded tuple, e.g. [\"users\",42]"
//	@Success	200		{object}	APIResponse
//	@Failure	404		{object}	APIResponse
//	@Router		/v1/keys [get]
func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	tuple, err := parseTupleParam(r, "tuple")
	if err != nil {
		s.finish("get", false, start)
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	value, writtenAt, err := s.store.GetWithTimestamp(tuple)
	if err != nil {
		s.finish("get", false, start)
		if errors.Is(err, store.ErrKeyNotFound) {
			sendError(w, "key not found", http.StatusNotFound)
			return
		}
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.finish("get", true, start)
	sendSuccess(w, map[string]string{
		"value":      base64.StdEncoding.EncodeToString(value),
		"written_at": writtenAt.UTC().Format(time.RFC3339Nano),
	})
}

// handleDelete godoc
//
//	@Summary	Delete a tuple-keyed value
//	@Produce	json
//	@Param		tuple	query		string	true	"JSON-encoded tuple"
//	@Success	200		{object}	APIResponse
//	@Router		/v1/keys [delete]
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	tuple, err := parseTupleParam(r, "tuple")
	if err != nil {
		s.finish("delete", false, start)
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.store.Delete(tuple); err != nil {
		s.finish("delete", false, start)
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.finish("delete", true, start)
	sendSuccess(w, map[string]string{"status": "deleted"})
}

// scanResult is one line of the newline-delimited JSON stream handleScan
// writes.
type scanResult struct {
	Tuple []interface{} `json:"tuple"`
	Value string        `json:"value"`
}

// handleScan godoc
//
//	@Summary	Stream every entry whose tuple begins with prefix
//	@Produce	json-seq
//	@Param		prefix	query	string	true	"JSON-encoded tuple prefix"
//	@Router		/v1/scan [get]
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	prefix, err := parseTupleParam(r, "prefix")
	if err != nil {
		s.finish("scan", false, start)
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/x-ndjson")
	enc := json.NewEncoder(w)

	err = s.store.Scan(prefix, func(tuple keycoder.Tuple, value []byte) error {
		return enc.Encode(scanResult{
			Tuple: tupleToJSON(tuple),
			Value: base64.StdEncoding.EncodeToString(value),
		})
	})
	if err != nil {
		s.finish("scan", false, start)
		return
	}
	s.finish("scan", true, start)
}

func (s *Server) finish(op string, success bool, start time.Time) {
	if s.metrics != nil {
		s.metrics.RecordDBOperation(op, success, time.Since(start))
	}
}

// jsonToTuple converts the array decoded from a JSON body or query
// parameter into a keycoder.Tuple: JSON numbers that are whole become
// int64, everything else (string, bool, nil) passes through unchanged.
func jsonToTuple(elems []interface{}) (keycoder.Tuple, error) {
	tuple := make(keycoder.Tuple, len(elems))
	for i, e := range elems {
		switch v := e.(type) {
		case float64:
			if v != float64(int64(v)) {
				return nil, fmt.Errorf("tuple element %d is not an integer: %v", i, v)
			}
			tuple[i] = int64(v)
		default:
			tuple[i] = v
		}
	}
	return tuple, nil
}

func tupleToJSON(tuple keycoder.Tuple) []interface{} {
	out := make([]interface{}, len(tuple))
	copy(out, tuple)
	return out
}

// parseTupleParam reads query parameter name as a JSON array and converts
// it to a keycoder.Tuple.
func parseTupleParam(r *http.Request, name string) (keycoder.Tuple, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, fmt.Errorf("missing %q query parameter", name)
	}
	var elems []interface{}
	if err := json.Unmarshal([]byte(raw), &elems); err != nil {
		return nil, fmt.Errorf("%s is not a JSON array: %w", name, err)
	}
	return jsonToTuple(elems)
}
