package match

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Odds errors.
var (
	ErrOddsNotObject  = errors.New("odds must be a JSON object")
	ErrOddsNotNumeric = errors.New("odds value must be a number")
)

// Odds is the ordered set of odds categories for a record.
// It decodes from and encodes to a JSON object of objects, preserving key order.
type Odds []Category

// Category returns the category with the given name.
func (o Odds) Category(name string) (Category, bool) {
	for _, c := range o {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// Names returns the category names in document order.
func (o Odds) Names() []string {
	names := make([]string, len(o))
	for i, c := range o {
		names[i] = c.Name
	}
	return names
}

// UnmarshalJSON decodes a {"category": {"label": number}} object in document order.
// A repeated key keeps its first position and takes the last value.
func (o *Odds) UnmarshalJSON(data []byte) error {
	if o == nil {
		return errors.New("cannot unmarshal into nil Odds")
	}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if err := expectDelim(dec, '{'); err != nil {
		return err
	}

	var out Odds
	for dec.More() {
		name, err := readKey(dec)
		if err != nil {
			return err
		}

		outcomes, err := readOutcomes(dec)
		if err != nil {
			return fmt.Errorf("category %q: %w", name, err)
		}

		if idx := indexOfCategory(out, name); idx >= 0 {
			out[idx].Outcomes = outcomes
			continue
		}
		out = append(out, Category{Name: name, Outcomes: outcomes})
	}

	if err := expectDelim(dec, '}'); err != nil {
		return err
	}

	*o = out
	return nil
}

// MarshalJSON encodes the categories as a JSON object in their current order.
func (o Odds) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(&buf, c.Name); err != nil {
			return nil, err
		}
		buf.WriteByte('{')
		for j, outcome := range c.Outcomes {
			if j > 0 {
				buf.WriteByte(',')
			}
			if err := writeKey(&buf, outcome.Label); err != nil {
				return nil, err
			}
			value, err := json.Marshal(outcome.Value)
			if err != nil {
				return nil, fmt.Errorf("category %q outcome %q: %w", c.Name, outcome.Label, err)
			}
			buf.Write(value)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// readOutcomes reads one {"label": number} object from the decoder.
func readOutcomes(dec *json.Decoder) ([]Outcome, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var outcomes []Outcome
	for dec.More() {
		label, err := readKey(dec)
		if err != nil {
			return nil, err
		}

		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		value, ok := tok.(float64)
		if !ok {
			return nil, fmt.Errorf("%w: outcome %q has %v", ErrOddsNotNumeric, label, tok)
		}

		replaced := false
		for i := range outcomes {
			if outcomes[i].Label == label {
				outcomes[i].Value = value
				replaced = true
				break
			}
		}
		if !replaced {
			outcomes = append(outcomes, Outcome{Label: label, Value: value})
		}
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func indexOfCategory(categories Odds, name string) int {
	for i, c := range categories {
		if c.Name == name {
			return i
		}
	}
	return -1
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != want {
		return fmt.Errorf("%w: expected %q, got %v", ErrOddsNotObject, want, tok)
	}
	return nil
}

func readKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("%w: expected key, got %v", ErrOddsNotObject, tok)
	}
	return key, nil
}

func writeKey(buf *bytes.Buffer, key string) error {
	encoded, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(encoded)
	buf.WriteByte(':')
	return nil
}
