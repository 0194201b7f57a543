// Package subgraph decodes raw pool-source payloads. Payloads arrive as
// files or byte streams; fetching them is outside this module.
package subgraph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/bogdoslavik/balancer-sor/internal/model"
)

type envelope struct {
	Data struct {
		Pools []model.RawPool `json:"pools"`
	} `json:"data"`
}

// Decode reads raw pool records from either a GraphQL response envelope
// ({"data":{"pools":[...]}}) or a bare JSON array of pools.
func Decode(r io.Reader) ([]model.RawPool, error) {
	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}

	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty payload")
	}

	if trimmed[0] == '[' {
		var pools []model.RawPool
		if err := json.Unmarshal(trimmed, &pools); err != nil {
			return nil, fmt.Errorf("decode pool array: %w", err)
		}
		return pools, nil
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("decode pool envelope: %w", err)
	}
	if env.Data.Pools == nil {
		return nil, fmt.Errorf("payload has no pools field")
	}
	return env.Data.Pools, nil
}

// DecodeFile reads raw pool records from a file.
func DecodeFile(path string) ([]model.RawPool, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open payload: %w", err)
	}
	defer file.Close()

	return Decode(file)
}
