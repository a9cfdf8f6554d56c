package types

import (
	"bytes"
	"encoding/json"
)

// Paginated tolerates both shapes the remote API serves for list
// endpoints: a DRF page envelope with a results array, or a bare array.
type Paginated[T any] struct {
	Count    int
	Next     string
	Previous string
	Results  []T
}

func (p *Paginated[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(data, &p.Results); err != nil {
			return err
		}
		p.Count = len(p.Results)
		p.Next = ""
		p.Previous = ""
		return nil
	}

	var envelope struct {
		Count    int     `json:"count"`
		Next     *string `json:"next"`
		Previous *string `json:"previous"`
		Results  []T     `json:"results"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	p.Count = envelope.Count
	p.Results = envelope.Results
	if envelope.Next != nil {
		p.Next = *envelope.Next
	}
	if envelope.Previous != nil {
		p.Previous = *envelope.Previous
	}
	return nil
}
