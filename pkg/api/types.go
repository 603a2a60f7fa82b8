// Package api exposes the store's get/put/delete/scan operations over HTTP.
//
// @title           centidb REST API
// @version         1.0.0
// @description     HTTP surface for an embeddable ordered key-value store keyed with a tuple codec.
// @BasePath        /v1
package api

import (
	"time"

	"github.com/dw/centidb/pkg/keycoder"
)

// APIResponse is the envelope every handler writes, success or failure.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// PutRequest is the body of PUT /v1/keys.
type PutRequest struct {
	Tuple []interface{} `json:"tuple"`
	Value string        `json:"value"` // base64-encoded
}

// ServerConfig holds the listen address the HTTP server binds.
type ServerConfig struct {
	ListenAddr string
}

// IStore is the subset of *store.Store the API depends on, so handlers can
// be tested against a fake without opening a real Pebble instance.
type IStore interface {
	Put(tuple keycoder.Tuple, value []byte) error
	Get(tuple keycoder.Tuple) ([]byte, error)
	GetWithTimestamp(tuple keycoder.Tuple) ([]byte, time.Time, error)
	Delete(tuple keycoder.Tuple) error
	Scan(prefix keycoder.Tuple, fn func(tuple keycoder.Tuple, value []byte) error) error
}
