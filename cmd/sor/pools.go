package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bogdoslavik/balancer-sor/internal/model"
	"github.com/bogdoslavik/balancer-sor/internal/storage"
)

// loadCanonicalPools reads canonical pools from a JSONL file produced by
// the normalize command.
func loadCanonicalPools(path string) ([]model.Pool, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	pools := make([]model.Pool, 0)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var record storage.PoolRecord
		if err := json.Unmarshal(line, &record); err != nil {
			return nil, fmt.Errorf("decode pool record: %w", err)
		}
		pool, err := record.ToPool()
		if err != nil {
			return nil, err
		}
		pools = append(pools, pool)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan input: %w", err)
	}

	return pools, nil
}
